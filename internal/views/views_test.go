package views

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/myflix/internal/db/memorykv"
	"github.com/patric-chuzhbe/myflix/internal/models"
	"github.com/patric-chuzhbe/myflix/internal/session"
)

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(message string) {
	f.messages = append(f.messages, message)
}

type fakeNavigator struct {
	routes []string
}

func (f *fakeNavigator) NavigateTo(route string) {
	f.routes = append(f.routes, route)
}

type fakePresentation struct {
	closed bool
}

func (f *fakePresentation) Close() {
	f.closed = true
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	storage, err := memorykv.New()
	require.NoError(t, err)
	return session.New(storage)
}

func newLoggedInSession(t *testing.T, username, token string) *session.Session {
	t.Helper()
	sess := newTestSession(t)
	require.NoError(t, sess.Set(&models.User{
		Username:       username,
		Email:          username + "@example.com",
		FavoriteMovies: []string{"42"},
	}, token))
	return sess
}
