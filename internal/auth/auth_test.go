package auth

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	data map[string]string
	fail error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(key string) (string, bool, error) {
	if m.fail != nil {
		return "", false, m.fail
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	if m.fail != nil {
		return m.fail
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memStore) keys() []string {
	var ks []string
	for k := range m.data {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, Validate("", "pw"), ErrMissingFields)
	require.ErrorIs(t, Validate("a@b.c", ""), ErrMissingFields)
	require.ErrorIs(t, Validate("nobody", "pw"), ErrInvalidEmail)
	require.NoError(t, Validate("a@b.c", "pw"))
}

func TestDemoLoginPersistsSession(t *testing.T) {
	st := newMemStore()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := New(st, WithClock(func() time.Time { return now }))

	sess, err := svc.Login("alice@example.com", "anything")
	require.NoError(t, err)
	require.Equal(t, "alice", sess.User.Name)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, []string{KeyAuthToken, KeyLastLogin, KeyUserData}, st.keys())
	require.Equal(t, "2024-05-01T12:00:00Z", st.data[KeyLastLogin])

	restored, ok := svc.Restore()
	require.True(t, ok)
	require.Equal(t, sess.User, restored.User)
	require.Equal(t, sess.Token, restored.Token)
}

func TestRegisteredUserNeedsPassword(t *testing.T) {
	st := newMemStore()
	svc := New(st)

	_, err := svc.Register("bob@example.com", "s3cret", "Bob")
	require.NoError(t, err)
	_, err = svc.Register("bob@example.com", "other", "Bob")
	require.ErrorIs(t, err, ErrUserExists)

	require.NoError(t, svc.Logout())
	_, err = svc.Login("bob@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	sess, err := svc.Login("bob@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "Bob", sess.User.Name)
}

func TestRestoreExpiresOldSessions(t *testing.T) {
	st := newMemStore()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := New(st, WithClock(func() time.Time { return now }))
	_, err := svc.Login("c@d.e", "pw")
	require.NoError(t, err)

	now = now.Add(SessionTTL + time.Hour)
	_, ok := svc.Restore()
	require.False(t, ok)
	require.Empty(t, st.keys())
}

func TestRestoreClearsCorruptSession(t *testing.T) {
	st := newMemStore()
	st.data[KeyUserData] = "{not json"
	st.data[KeyAuthToken] = "t"
	svc := New(st)

	_, ok := svc.Restore()
	require.False(t, ok)
	require.Empty(t, st.keys())
}

func TestUpdateUser(t *testing.T) {
	svc := New(newMemStore())
	_, err := svc.UpdateUser(func(u *User) { u.Name = "x" })
	require.ErrorIs(t, err, ErrNoSession)

	_, err = svc.Login("e@f.g", "pw")
	require.NoError(t, err)
	sess, err := svc.UpdateUser(func(u *User) { u.Name = "Eve" })
	require.NoError(t, err)
	require.Equal(t, "Eve", sess.User.Name)

	restored, ok := svc.Restore()
	require.True(t, ok)
	require.Equal(t, "Eve", restored.User.Name)
}

func TestLoginCmdRunsOffLoop(t *testing.T) {
	svc := New(newMemStore(), WithLatency(time.Millisecond))
	msg := svc.LoginCmd("a@b.c", "pw")()
	res, ok := msg.(ResultMsg)
	require.True(t, ok)
	require.NoError(t, res.Err)
	require.Equal(t, "a@b.c", res.Session.User.Email)

	res = svc.LoginCmd("", "")().(ResultMsg)
	require.ErrorIs(t, res.Err, ErrMissingFields)
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	st := newMemStore()
	st.fail = errors.New("disk gone")
	svc := New(st)
	_, err := svc.Login("a@b.c", "pw")
	require.ErrorIs(t, err, st.fail)
}
