package local

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"rescue-animals/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

var ErrUserExists = errors.New("user already exists")

var _ auth.Authenticator = (*Store)(nil)

type user struct {
	role         auth.Role
	passwordHash []byte
}

// Store guarda credenciales en memoria; solo hashes bcrypt, nunca la contraseña.
type Store struct {
	mu    sync.RWMutex
	users map[string]user
	cost  int
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]user),
		cost:  bcrypt.DefaultCost,
	}
}

// NewStoreWithCost permite bajar el costo de bcrypt (tests).
func NewStoreWithCost(cost int) *Store {
	s := NewStore()
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		s.cost = cost
	}
	return s
}

func (s *Store) AddUser(username, password string, role auth.Role) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New("username and password required")
	}
	if _, ok := auth.ParseRole(string(role)); !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrUserExists
	}
	s.users[username] = user{role: role, passwordHash: hash}
	return nil
}

func (s *Store) Authenticate(ctx context.Context, username, password string) (auth.Principal, error) {
	username = strings.TrimSpace(username)

	s.mu.RLock()
	u, ok := s.users[username]
	s.mu.RUnlock()

	if !ok {
		return auth.Principal{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return auth.Principal{}, auth.ErrInvalidCredentials
		}
		return auth.Principal{}, fmt.Errorf("could not verify password: %w", err)
	}

	return auth.Principal{Username: username, Role: u.role}, nil
}
