package models

import "time"

// MaxMessages bounds the notification history.
const MaxMessages = 20

type MessageType int

const (
	Toast MessageType = iota
	Alert
	ActionSheet
)

func (t MessageType) String() string {
	switch t {
	case Toast:
		return "toast"
	case Alert:
		return "alert"
	case ActionSheet:
		return "sheet"
	}
	return "unknown"
}

// Message is one notification that was raised through the center.
type Message struct {
	Content string
	Type    MessageType
	Level   string // Toast type, empty for alerts and sheets
	At      time.Time
}

// Record appends msg to the history, dropping the oldest past MaxMessages.
func (m *AppModel) Record(msg Message) {
	m.Messages = append(m.Messages, msg)
	if over := len(m.Messages) - MaxMessages; over > 0 {
		m.Messages = append([]Message(nil), m.Messages[over:]...)
	}
}

// Recent returns up to n messages, newest first.
func (m *AppModel) Recent(n int) []Message {
	out := make([]Message, 0, min(n, len(m.Messages)))
	for i := len(m.Messages) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.Messages[i])
	}
	return out
}
