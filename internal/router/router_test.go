package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushAndBack(t *testing.T) {
	r := New(Tabs)
	msg, err := r.Push(Trade)
	require.NoError(t, err)
	require.Equal(t, ChangedMsg{Path: Trade, From: Tabs}, msg)
	require.Equal(t, 2, r.Depth())

	msg, ok := r.Back()
	require.True(t, ok)
	require.Equal(t, Tabs, msg.Path)

	_, ok = r.Back()
	require.False(t, ok, "the root cannot be popped")
	require.Equal(t, Tabs, r.Current())
}

func TestReplaceClearsStack(t *testing.T) {
	r := New(Tabs)
	_, _ = r.Push(Help)
	msg, err := r.Replace(Login)
	require.NoError(t, err)
	require.Equal(t, Help, msg.From)
	require.Equal(t, 1, r.Depth())
	require.Equal(t, Login, r.Current())
}

func TestUnknownRoute(t *testing.T) {
	r := New(Login)
	_, err := r.Push("/nowhere")
	require.Error(t, err)
	_, err = r.Replace("")
	require.Error(t, err)
	require.Equal(t, Login, r.Current())
}

func TestNavigateCommands(t *testing.T) {
	r := New(Tabs)

	msg := PushCmd(Chart)().(NavigateMsg)
	require.Equal(t, OpPush, msg.Op)
	changed, ok, err := r.Navigate(msg)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Chart, changed.Path)

	changed, ok, err = r.Navigate(BackCmd()().(NavigateMsg))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Tabs, changed.Path)

	_, ok, err = r.Navigate(BackCmd()().(NavigateMsg))
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = r.Navigate(ReplaceCmd("/nowhere")().(NavigateMsg))
	require.Error(t, err)
	require.False(t, ok)
}
