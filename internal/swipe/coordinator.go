package swipe

// Coordinator remembers which row, if any, is swiped open.
type Coordinator struct {
	active    string
	hasActive bool
}

func (c *Coordinator) NotifyOpen(id string) {
	c.active = id
	c.hasActive = true
}

// NotifyClosed clears the active row only when id is the active one.
func (c *Coordinator) NotifyClosed(id string) {
	if c.hasActive && c.active == id {
		c.ResetAll()
	}
}

func (c *Coordinator) ResetAll() {
	c.active = ""
	c.hasActive = false
}

func (c *Coordinator) Active() (string, bool) {
	return c.active, c.hasActive
}

func (c *Coordinator) IsActive(id string) bool {
	return c.hasActive && c.active == id
}
