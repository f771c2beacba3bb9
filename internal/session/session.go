// Package session holds the client-local record of the logged-in state: the
// authenticated user snapshot and the bearer token. The record lives in an
// injected key/value storage so view code never touches ambient state and
// tests can substitute an in-memory fake.
package session

import (
	"encoding/json"
	"errors"

	"github.com/patric-chuzhbe/myflix/internal/logger"
	"github.com/patric-chuzhbe/myflix/internal/models"
)

const (
	userKey  = "user"
	tokenKey = "token"
)

// ErrIncompleteSession is returned by Set when either the user snapshot or
// the token is missing. A session exists only with both.
var ErrIncompleteSession = errors.New("a session requires both a user and a token")

type keyValue interface {
	Get(key string) (string, bool)
	Put(key, value string)
	Delete(key string)
	Flush() error
}

// Session reads and writes the persisted login state.
// Writing a new session overwrites the prior one, last write wins.
type Session struct {
	storage keyValue
}

func New(storage keyValue) *Session {
	return &Session{storage: storage}
}

// Set records a fresh login: it serializes the user snapshot and stores it
// together with the token. The two writes carry no transactional guarantee.
func (s *Session) Set(user *models.User, token string) error {
	if user == nil || user.Username == "" || token == "" {
		return ErrIncompleteSession
	}

	serialized, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.storage.Put(userKey, string(serialized))
	s.storage.Put(tokenKey, token)

	return s.storage.Flush()
}

// User returns the cached user snapshot, or nil when the session is absent
// or the stored snapshot does not parse. Corrupted local state degrades to
// logged out instead of failing the caller.
func (s *Session) User() *models.User {
	raw, found := s.storage.Get(userKey)
	if !found {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Log.Warnln("stored user snapshot is malformed, treating as logged out", "error", err)
		return nil
	}

	return &user
}

// CurrentUsername returns the username of the logged-in user, or "" when
// there is no usable session.
func (s *Session) CurrentUsername() string {
	user := s.User()
	if user == nil {
		return ""
	}

	return user.Username
}

// Token returns the stored bearer token verbatim, or "" when unset.
// It satisfies the API client's token source interface.
func (s *Session) Token() string {
	token, found := s.storage.Get(tokenKey)
	if !found {
		return ""
	}

	return token
}

// Clear removes both session keys. Used by logout and account deletion.
func (s *Session) Clear() error {
	s.storage.Delete(userKey)
	s.storage.Delete(tokenKey)

	return s.storage.Flush()
}
