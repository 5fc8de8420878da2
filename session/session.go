// Package session persists the bearer token between runs and reads the
// claims the backend put into it.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession is returned when no usable token is stored.
var ErrNoSession = errors.New("not logged in")

// Store loads, saves and clears the session token.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a single file readable only by the user.
type FileStore struct {
	path string
}

// DefaultPath is the session file under the XDG state directory.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("fintui", "session"))
}

// NewFileStore returns a store backed by path. An empty path uses DefaultPath.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve session path: %w", err)
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the token is stored in.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored token or ErrNoSession.
func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session file %s: %w", s.path, err)
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Save writes token, replacing any previous one.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent session is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is a Store that never touches disk.
type MemoryStore struct {
	Token string
}

func (s *MemoryStore) Load() (string, error) {
	if s.Token == "" {
		return "", ErrNoSession
	}
	return s.Token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.Token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.Token = ""
	return nil
}

// Claims is what the client can learn from a token without the signing key.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseClaims reads the subject and expiry of a JWT without verifying its
// signature. Only the backend can verify it.
func ParseClaims(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, fmt.Errorf("failed to parse token: %w", err)
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// Expired reports whether the claims carry an expiry that is before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Usable reports whether token is worth sending. Opaque (non-JWT) tokens are
// always usable; the backend decides.
func Usable(token string, now time.Time) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}

	c, err := ParseClaims(token)
	if err != nil {
		return true
	}
	return !c.Expired(now)
}
