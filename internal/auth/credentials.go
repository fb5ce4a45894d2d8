package auth

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/cyberhub/community-platform/backend/internal/models"
	"github.com/cyberhub/community-platform/backend/internal/store"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ConflictError reports that a unique user field is already taken.
type ConflictError struct {
	Field string // "username" or "email"
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// Hasher hashes passwords with bcrypt at a tunable cost.
type Hasher struct {
	Cost int
}

// Hash returns a salted bcrypt hash of plaintext.
func (h Hasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash.
func (h Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Credentials registers and authenticates users against the store.
type Credentials struct {
	store  *store.Store
	hasher Hasher

	// mu serializes the uniqueness check and insert of new users.
	mu sync.Mutex
}

func NewCredentials(s *store.Store, hasher Hasher) *Credentials {
	return &Credentials{store: s, hasher: hasher}
}

// Register creates a non-admin user after checking that neither username
// nor email is taken.
func (c *Credentials) Register(req models.RegisterRequest) (models.User, error) {
	return c.create(req.Username, req.Email, req.Password, false)
}

// SeedAdmin creates the operator account. It does nothing when the username
// already exists.
func (c *Credentials) SeedAdmin(username, email, password string) (models.User, error) {
	if u, ok := c.store.UserByUsername(username); ok {
		return u, nil
	}
	u, err := c.create(username, email, password, true)
	if err != nil {
		return models.User{}, fmt.Errorf("seed admin: %w", err)
	}
	log.Printf("seeded administrator %q", u.Username)
	return u, nil
}

func (c *Credentials) create(username, email, password string, admin bool) (models.User, error) {
	// Hash outside the lock; bcrypt is the slow part.
	hashed, err := c.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, taken := c.store.UserByUsername(username); taken {
		return models.User{}, &ConflictError{Field: "username"}
	}
	if _, taken := c.store.UserByEmail(email); taken {
		return models.User{}, &ConflictError{Field: "email"}
	}
	return c.store.Users.Create(models.NewUser{
		Username: username,
		Email:    email,
		Password: hashed,
		IsAdmin:  admin,
	}), nil
}

// Authenticate returns the user when username and password match.
func (c *Credentials) Authenticate(username, password string) (models.User, error) {
	u, ok := c.store.UserByUsername(username)
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if !c.hasher.Verify(password, u.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}
