package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a login name or password does not
// match a stored account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Auth handles signup and login against a profile store. Passwords are hashed
// with bcrypt; the plaintext never touches the store.
type Auth struct {
	store Store
}

// NewAuth creates an authenticator backed by the given store.
func NewAuth(store Store) *Auth {
	return &Auth{store: store}
}

// Signup creates a new account with zeroed skill scores and a streak of 1 for
// the signup day. The name must be unused.
func (a *Auth) Signup(ctx context.Context, name, classSection, password string, role Role) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if role == "" {
		role = RoleStudent
	}

	if _, err := a.store.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("name already taken: %s", name)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("check name: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p := &Profile{
		Name:             name,
		ClassSection:     strings.TrimSpace(classSection),
		Role:             role,
		PasswordHash:     string(hash),
		Scores:           Scores{}.Clamped(),
		CompletedModules: []string{},
		Streak:           1,
		CreatedAt:        time.Now(),
	}
	if _, err := a.store.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// Login verifies a name and password pair. A missing account and a wrong
// password both return ErrInvalidCredentials so the two are indistinguishable
// to the caller.
func (a *Auth) Login(ctx context.Context, name, password string) (*Profile, error) {
	p, err := a.store.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup profile: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}
