package models

import "github.com/Rorical/RoriShell/internal/auth"

// AppModel is the UI state shared by the root model and the screens.
type AppModel struct {
	Route       string        // Path of the mounted screen
	Status      string        // Status bar text
	StatusErr   bool          // Status shows an error
	Loading     bool          // A background command is running
	LoadingDots int           // Animation counter for loading dots
	Width       int           // Terminal width
	Height      int           // Terminal height
	AppName     string        // Active client's display name
	Session     *auth.Session // Signed-in user, nil on the login screen
	Messages    []Message     // Recent notifications, newest last
}

// SetStatus replaces the status bar text.
func (m *AppModel) SetStatus(text string) {
	m.Status = text
	m.StatusErr = false
}

func (m *AppModel) SetError(err error) {
	m.Status = "Error: " + err.Error()
	m.StatusErr = true
}

// UserName is the signed-in user's display name, or empty.
func (m *AppModel) UserName() string {
	if m.Session == nil {
		return ""
	}
	return m.Session.User.Name
}
