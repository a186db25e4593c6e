package fakeapi

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken   = errors.New("email already in use")
	ErrUserNotFound = errors.New("user not found")
	ErrBadPassword  = errors.New("invalid email or password")
	ErrNoChanges    = errors.New("no fields to update")
)

// User is a registered account. PasswordHash is a bcrypt hash.
type User struct {
	ID              string
	Username        string
	Email           string
	PasswordHash    []byte
	CreatedAt       time.Time
	PackagesCreated []string
}

// File is one file of a published package.
type File struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Package is a published package.
type Package struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Files       []File `json:"files"`
}

// Store holds users and packages in memory. It is safe for concurrent use.
type Store struct {
	cost int

	mu       sync.RWMutex
	users    map[string]*User
	byEmail  map[string]string
	packages []Package
}

// NewStore returns an empty Store hashing passwords at the given bcrypt cost.
func NewStore(cost int) *Store {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Store{
		cost:    cost,
		users:   make(map[string]*User),
		byEmail: make(map[string]string),
	}
}

// CreateUser registers a new account.
func (s *Store) CreateUser(username, email, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		return User{}, ErrEmailTaken
	}
	u := &User{
		ID:              uuid.NewString(),
		Username:        username,
		Email:           email,
		PasswordHash:    hash,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
		PackagesCreated: []string{},
	}
	s.users[u.ID] = u
	s.byEmail[email] = u.ID
	return *u, nil
}

// Authenticate checks email and password.
func (s *Store) Authenticate(email, password string) (User, error) {
	s.mu.RLock()
	id, found := s.byEmail[email]
	var u User
	if found {
		u = *s.users[id]
	}
	s.mu.RUnlock()

	if !found {
		return User{}, ErrBadPassword
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return User{}, ErrBadPassword
	}
	return u, nil
}

// UserByID returns a copy of the user with the given id.
func (s *Store) UserByID(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, found := s.users[id]
	if !found {
		return User{}, ErrUserNotFound
	}
	return *u, nil
}

// UserUpdate lists the fields to change. Blank fields are left alone.
type UserUpdate struct {
	Username string
	Email    string
	Password string
}

// UpdateUser applies the non-blank fields of up to the user id.
func (s *Store) UpdateUser(id string, up UserUpdate) (User, error) {
	var hash []byte
	if strings.TrimSpace(up.Password) != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(up.Password), s.cost)
		if err != nil {
			return User{}, err
		}
		hash = h
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, found := s.users[id]
	if !found {
		return User{}, ErrUserNotFound
	}

	changeName := strings.TrimSpace(up.Username) != ""
	changeEmail := strings.TrimSpace(up.Email) != ""
	if !changeName && !changeEmail && hash == nil {
		return User{}, ErrNoChanges
	}

	if changeEmail {
		if owner, taken := s.byEmail[up.Email]; taken && owner != id {
			return User{}, ErrEmailTaken
		}
	}

	if changeName {
		u.Username = up.Username
	}
	if changeEmail {
		delete(s.byEmail, u.Email)
		u.Email = up.Email
		s.byEmail[u.Email] = id
	}
	if hash != nil {
		u.PasswordHash = hash
	}
	return *u, nil
}

// Publish adds pkg and credits it to owner.
func (s *Store) Publish(ownerID string, pkg Package) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, found := s.users[ownerID]
	if !found {
		return ErrUserNotFound
	}
	if pkg.Files == nil {
		pkg.Files = []File{}
	}
	s.packages = append(s.packages, pkg)
	u.PackagesCreated = append(u.PackagesCreated, pkg.Name)
	return nil
}

// Packages returns a copy of every published package.
func (s *Store) Packages() []Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Package, len(s.packages))
	copy(out, s.packages)
	return out
}
