package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriShell/internal/auth"
)

func TestRecordKeepsNewest(t *testing.T) {
	var m AppModel
	for i := range MaxMessages + 5 {
		m.Record(Message{Content: fmt.Sprint(i), Type: Toast})
	}
	require.Len(t, m.Messages, MaxMessages)
	require.Equal(t, "5", m.Messages[0].Content)

	recent := m.Recent(3)
	require.Len(t, recent, 3)
	require.Equal(t, fmt.Sprint(MaxMessages+4), recent[0].Content)
}

func TestRecentOnEmptyHistory(t *testing.T) {
	var m AppModel
	require.Empty(t, m.Recent(5))
}

func TestStatusAndUser(t *testing.T) {
	var m AppModel
	m.SetError(errors.New("boom"))
	require.True(t, m.StatusErr)
	require.Equal(t, "Error: boom", m.Status)
	m.SetStatus("Ready")
	require.False(t, m.StatusErr)

	require.Empty(t, m.UserName())
	m.Session = &auth.Session{User: auth.User{Name: "john"}}
	require.Equal(t, "john", m.UserName())
}
