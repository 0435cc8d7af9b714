// Package auth keeps the signed-in user of the shell. Credentials are checked
// locally: registered users need their password, anyone else is let in as a
// demo user.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingFields is returned when email or password is empty.
	ErrMissingFields = errors.New("please fill in all fields")
	// ErrInvalidEmail is returned when the email has no @.
	ErrInvalidEmail = errors.New("please enter a valid email address")
	// ErrInvalidCredentials is returned when a registered user's password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned by Register for a taken email.
	ErrUserExists = errors.New("user already exists")
	// ErrNoSession is returned when nobody is signed in.
	ErrNoSession = errors.New("not signed in")
)

// Storage keys.
const (
	KeyUserData  = "user_data"
	KeyAuthToken = "auth_token"
	KeyLastLogin = "last_login"
	userPrefix   = "users/"
)

// SessionTTL is how long a stored session stays valid.
const SessionTTL = 30 * 24 * time.Hour

// DefaultLatency simulates the round trip of a remote login.
const DefaultLatency = 600 * time.Millisecond

// Store is the key-value store sessions and users are persisted in.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(keys ...string) error
}

// User is the signed-in account.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Session is a user with the token issued at login.
type Session struct {
	User      User
	Token     string
	LastLogin time.Time
}

type account struct {
	User User   `json:"user"`
	Hash string `json:"hash"`
}

// Service signs users in and out.
type Service struct {
	store   Store
	latency time.Duration
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLatency sets the simulated network delay of the login commands.
func WithLatency(d time.Duration) Option {
	return func(s *Service) { s.latency = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service backed by store.
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		latency: DefaultLatency,
		now:     time.Now,
		log:     slog.Default().With("component", "auth"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks the login form before anything is sent.
func Validate(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingFields
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Register creates an account and signs it in.
func (s *Service) Register(email, password, name string) (Session, error) {
	email = strings.TrimSpace(email)
	if err := Validate(email, password); err != nil {
		return Session{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Session{}, ErrMissingFields
	}
	if _, ok, err := s.store.Get(userPrefix + email); err != nil {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	} else if ok {
		return Session{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}
	acc := account{User: newUser(email, name), Hash: string(hash)}
	data, err := json.Marshal(acc)
	if err != nil {
		return Session{}, err
	}
	if err := s.store.Set(userPrefix+email, string(data)); err != nil {
		return Session{}, fmt.Errorf("save user: %w", err)
	}
	s.log.Info("user registered", "email", email)
	return s.save(acc.User)
}

// Login checks the credentials and persists a new session.
func (s *Service) Login(email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if err := Validate(email, password); err != nil {
		return Session{}, err
	}

	raw, ok, err := s.store.Get(userPrefix + email)
	if err != nil {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}
	user := newUser(email, strings.SplitN(email, "@", 2)[0])
	if ok {
		var acc account
		if err := json.Unmarshal([]byte(raw), &acc); err != nil {
			return Session{}, fmt.Errorf("decode user: %w", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(acc.Hash), []byte(password)); err != nil {
			return Session{}, ErrInvalidCredentials
		}
		user = acc.User
	}
	return s.save(user)
}

// Restore loads the stored session. Expired or unreadable sessions are
// cleared and reported as absent.
func (s *Service) Restore() (Session, bool) {
	sess, err := s.load()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			s.log.Warn("clearing stored session", "err", err)
			s.clear()
		}
		return Session{}, false
	}
	if !sess.LastLogin.IsZero() && s.now().Sub(sess.LastLogin) > SessionTTL {
		s.log.Info("session expired", "last_login", sess.LastLogin)
		s.clear()
		return Session{}, false
	}
	return sess, true
}

// UpdateUser changes the stored profile of the current session.
func (s *Service) UpdateUser(update func(*User)) (Session, error) {
	sess, err := s.load()
	if err != nil {
		return Session{}, err
	}
	update(&sess.User)
	data, err := json.Marshal(sess.User)
	if err != nil {
		return Session{}, err
	}
	if err := s.store.Set(KeyUserData, string(data)); err != nil {
		return Session{}, fmt.Errorf("save user: %w", err)
	}
	return sess, nil
}

// Logout removes the stored session.
func (s *Service) Logout() error {
	if err := s.store.Delete(KeyUserData, KeyAuthToken, KeyLastLogin); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Service) save(user User) (Session, error) {
	sess := Session{User: user, Token: uuid.New().String(), LastLogin: s.now().UTC()}
	data, err := json.Marshal(user)
	if err != nil {
		return Session{}, err
	}
	for _, kv := range [][2]string{
		{KeyUserData, string(data)},
		{KeyAuthToken, sess.Token},
		{KeyLastLogin, sess.LastLogin.Format(time.RFC3339)},
	} {
		if err := s.store.Set(kv[0], kv[1]); err != nil {
			return Session{}, fmt.Errorf("save session: %w", err)
		}
	}
	s.log.Info("signed in", "email", user.Email)
	return sess, nil
}

func (s *Service) load() (Session, error) {
	raw, ok, err := s.store.Get(KeyUserData)
	if err != nil {
		return Session{}, err
	}
	token, hasToken, err := s.store.Get(KeyAuthToken)
	if err != nil {
		return Session{}, err
	}
	if !ok || !hasToken {
		return Session{}, ErrNoSession
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess.User); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	sess.Token = token
	if last, ok, err := s.store.Get(KeyLastLogin); err != nil {
		return Session{}, err
	} else if ok {
		if sess.LastLogin, err = time.Parse(time.RFC3339, last); err != nil {
			return Session{}, fmt.Errorf("decode last login: %w", err)
		}
	}
	return sess, nil
}

func (s *Service) clear() {
	if err := s.Logout(); err != nil {
		s.log.Error("clear session", "err", err)
	}
}

func newUser(email, name string) User {
	return User{
		ID:     uuid.New().String(),
		Email:  email,
		Name:   name,
		Avatar: "https://ui-avatars.com/api/?name=" + name + "&background=007AFF&color=fff",
	}
}

// ResultMsg reports the outcome of LoginCmd or RegisterCmd.
type ResultMsg struct {
	Session Session
	Err     error
}

// LoginCmd runs Login after the simulated latency, off the UI loop.
func (s *Service) LoginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(s.latency)
		sess, err := s.Login(email, password)
		return ResultMsg{Session: sess, Err: err}
	}
}

// RegisterCmd is LoginCmd for Register.
func (s *Service) RegisterCmd(email, password, name string) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(s.latency)
		sess, err := s.Register(email, password, name)
		return ResultMsg{Session: sess, Err: err}
	}
}
