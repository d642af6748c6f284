// Package auth implements the landing page's mock account: one registered
// user kept in the local key/value store, compared in plain text.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/store"
)

const (
	KeyRegisteredUser = "registeredUser"
	KeyLoggedInUser   = "loggedInUser"
)

var (
	ErrNoUser             = errors.New("no registered user")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// KV is the slice of the store the service needs. Get must wrap
// store.ErrNotFound for missing keys.
type KV interface {
	Get(key string, v any) error
	Set(key string, v any) error
	Delete(key string) error
}

type User struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the loggedInUser record: a copy of the registered user plus
// when and under which id the login happened.
type Session struct {
	User
	SessionID  string    `json:"sessionId,omitempty"`
	LoggedInAt time.Time `json:"loggedInAt,omitempty"`
}

type Service struct {
	kv     KV
	logger *zap.Logger
	now    func() time.Time
}

func NewService(kv KV, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{kv: kv, logger: logger, now: time.Now}
}

// Register stores u as the single registered user, replacing any previous
// one.
func (s *Service) Register(u User) error {
	if err := s.kv.Set(KeyRegisteredUser, u); err != nil {
		return fmt.Errorf("saving registered user: %w", err)
	}
	s.logger.Info("user registered", zap.String("email", u.Email))
	return nil
}

// Login checks email and password against the registered user. On success
// the logged-in marker is written and returned.
func (s *Service) Login(email, password string) (*Session, error) {
	var registered User
	err := s.kv.Get(KeyRegisteredUser, &registered)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Info("login without registered user", zap.String("email", email))
		return nil, ErrNoUser
	}
	if err != nil {
		return nil, fmt.Errorf("reading registered user: %w", err)
	}

	if email != registered.Email || password != registered.Password {
		s.logger.Info("login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		User:       registered,
		SessionID:  uuid.NewString(),
		LoggedInAt: s.now(),
	}
	if err := s.kv.Set(KeyLoggedInUser, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	s.logger.Info("user logged in", zap.String("email", email), zap.String("session", session.SessionID))
	return session, nil
}

// Current returns the logged-in user, or nil when nobody is logged in.
func (s *Service) Current() (*Session, error) {
	var session Session
	err := s.kv.Get(KeyLoggedInUser, &session)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return &session, nil
}

func (s *Service) Logout() error {
	if err := s.kv.Delete(KeyLoggedInUser); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.logger.Info("user logged out")
	return nil
}
