package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInDir(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetSetDelete(t *testing.T) {
	s := openTemp(t)

	_, ok, err := s.Get("app_theme")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("app_theme", "dark"))
	require.NoError(t, s.Set("app_theme", "moonlight"))
	v, ok, err := s.Get("app_theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "moonlight", v)

	require.NoError(t, s.Set("auth_token", "t"))
	require.NoError(t, s.Delete("app_theme", "auth_token", "missing"))
	_, ok, err = s.Get("auth_token")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKeysByPrefix(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Set("users/b@x.io", "{}"))
	require.NoError(t, s.Set("users/a@x.io", "{}"))
	require.NoError(t, s.Set("user_data", "{}"))

	keys, err := s.Keys("users/")
	require.NoError(t, err)
	require.Equal(t, []string{"users/a@x.io", "users/b@x.io"}, keys)
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}
