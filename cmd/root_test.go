package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeShell struct {
	err   error
	calls   []string
}

func (f *fakeShell) Start() error {
	f.calls = append(f.calls, "start")
	return f.err
}

func (f *fakeShell) Stop() {
	f.calls = append(f.calls, "stop")
}

func TestRunShellStopsAfterFailure(t *testing.T) {
	boom := errors.New("terminal gone")
	s := &fakeShell{err: boom}
	require.ErrorIs(t, runShell(s), boom)
	require.Equal(t, []string{"start", "stop"}, s.calls)
}

func TestRunShellStopsAfterCleanExit(t *testing.T) {
	s := &fakeShell{}
	require.NoError(t, runShell(s))
	require.Equal(t, []string{"start", "stop"}, s.calls)
}

func TestRootCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"client", "list"}, {"client", "show"}, {"client", "add"},
		{"client", "delete"}, {"client", "use"},
		{"theme", "get"}, {"theme", "set"}, {"theme", "toggle"},
	} {
		c, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		require.Equal(t, path[len(path)-1], c.Name())
	}
	for _, name := range []string{"client", "theme", "debug", "no-mouse"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}
