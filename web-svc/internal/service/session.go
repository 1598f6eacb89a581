package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"orderflow/web-svc/internal/apiclient"
	"orderflow/web-svc/internal/domain"
)

var ErrNoToken = errors.New("login response did not include a token")

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

var loginMessages = map[string]string{
	"Email":    "a valid email is required",
	"Password": "password is required",
}

// SessionManager is the only writer of visitor sessions.
type SessionManager struct {
	api   AuthAPI
	store SessionStore
}

func NewSessionManager(api AuthAPI, store SessionStore) *SessionManager {
	return &SessionManager{
		api:   api,
		store: store,
	}
}

// Current returns the stored session. A store failure yields an anonymous session.
func (m *SessionManager) Current(ctx context.Context, visitorID string) domain.Session {
	session, err := m.store.Load(ctx, visitorID)
	if err != nil {
		log.Printf("[session] WARNING: failed to load session for %s: %v", visitorID, err)
		return domain.Session{}
	}
	return session
}

func (m *SessionManager) Login(ctx context.Context, visitorID, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if err := validateStruct(loginInput{Email: email, Password: password}, loginMessages); err != nil {
		return domain.Session{}, err
	}

	result, err := m.api.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}
	if result.Token == "" {
		return domain.Session{}, ErrNoToken
	}

	session := result.Session()
	if session.Email == "" {
		session.Email = email
	}
	if err := m.store.Save(ctx, visitorID, session); err != nil {
		return domain.Session{}, err
	}

	log.Printf("[session] %s logged in as %s", session.Email, session.Role)
	return session, nil
}

// Logout always clears the local session, whatever the remote call returns.
func (m *SessionManager) Logout(ctx context.Context, visitorID string) error {
	session := m.Current(ctx, visitorID)
	if session.Authenticated() {
		if err := m.api.Logout(apiclient.WithToken(ctx, session.Token)); err != nil {
			log.Printf("[session] WARNING: remote logout failed: %v", err)
		}
	}
	return m.store.Clear(ctx, visitorID)
}
