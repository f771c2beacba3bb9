package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/myflix/internal/api"
	"github.com/patric-chuzhbe/myflix/internal/mockapi"
	"github.com/patric-chuzhbe/myflix/internal/models"
)

func TestProfileActivatePrefillsFromSession(t *testing.T) {
	sess := newLoggedInSession(t, "testuser", "abc123")

	view := NewProfile(&mockapi.ClientMock{}, &mockapi.ClientMock{}, sess, &fakeNotifier{}, &fakeNavigator{})
	view.Activate()

	assert.Equal(t, "testuser", view.Username())
	assert.Equal(t, "testuser@example.com", view.Email())
}

func TestProfileActivateWithoutSessionStaysEmpty(t *testing.T) {
	sess := newTestSession(t)

	view := NewProfile(&mockapi.ClientMock{}, &mockapi.ClientMock{}, sess, &fakeNotifier{}, &fakeNavigator{})
	view.Activate()

	assert.Empty(t, view.Username())
	assert.Empty(t, view.Email())
}

func TestSubmitUpdateRefreshesSessionSnapshot(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("UpdateUser", mock.Anything, "testuser", models.UserUpdate{Email: "new@example.com"}).
		Return(&models.User{Username: "testuser", Email: "new@example.com"}, nil)

	sess := newLoggedInSession(t, "testuser", "abc123")
	notifier := &fakeNotifier{}

	view := NewProfile(apiMock, apiMock, sess, notifier, &fakeNavigator{})
	view.Activate()
	view.SubmitUpdate(context.Background(), models.UserUpdate{Email: "new@example.com"})

	assert.Contains(t, notifier.messages, "Profile updated")
	assert.Equal(t, "new@example.com", view.Email())

	stored := sess.User()
	require.NotNil(t, stored)
	assert.Equal(t, "new@example.com", stored.Email)
	// the token survives a profile update
	assert.Equal(t, "abc123", sess.Token())
	apiMock.AssertExpectations(t)
}

func TestSubmitUpdateWithoutSessionMakesNoAPICall(t *testing.T) {
	apiMock := &mockapi.ClientMock{}

	sess := newTestSession(t)
	notifier := &fakeNotifier{}

	view := NewProfile(apiMock, apiMock, sess, notifier, &fakeNavigator{})
	view.Activate()
	view.SubmitUpdate(context.Background(), models.UserUpdate{Email: "new@example.com"})

	assert.Contains(t, notifier.messages, "Please log in first.")
	apiMock.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitUpdateFailureKeepsOldSnapshot(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("UpdateUser", mock.Anything, "testuser", mock.Anything).
		Return(nil, api.ErrRequestFailed)

	sess := newLoggedInSession(t, "testuser", "abc123")
	notifier := &fakeNotifier{}

	view := NewProfile(apiMock, apiMock, sess, notifier, &fakeNavigator{})
	view.Activate()
	view.SubmitUpdate(context.Background(), models.UserUpdate{Email: "new@example.com"})

	require.NotEmpty(t, notifier.messages)
	assert.Contains(t, notifier.messages[0], "request failed; try again later")
	assert.Equal(t, "testuser@example.com", sess.User().Email)
}

func TestFavoritesMembership(t *testing.T) {
	sess := newLoggedInSession(t, "testuser", "abc123") // favorites: ["42"]

	view := NewProfile(&mockapi.ClientMock{}, &mockapi.ClientMock{}, sess, &fakeNotifier{}, &fakeNavigator{})
	view.Activate()

	assert.True(t, view.IsFavorite("42"))
	assert.False(t, view.IsFavorite("7"))

	catalog := []models.Movie{
		{ID: "42", Title: "The Dark Knight"},
		{ID: "7", Title: "Inception"},
	}
	favorites := view.FavoriteMovies(catalog)
	require.Len(t, favorites, 1)
	assert.Equal(t, "The Dark Knight", favorites[0].Title)
}

func TestRemoveFromFavoritesUpdatesSnapshot(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("RemoveFavorite", mock.Anything, "testuser", "42").Return(nil)

	sess := newLoggedInSession(t, "testuser", "abc123")
	notifier := &fakeNotifier{}

	view := NewProfile(apiMock, apiMock, sess, notifier, &fakeNavigator{})
	view.Activate()
	view.RemoveFromFavorites(context.Background(), "42")

	assert.Contains(t, notifier.messages, "Removed from favorites")
	assert.False(t, view.IsFavorite("42"))
	apiMock.AssertExpectations(t)
}

func TestDeleteAccountClearsSessionAndNavigatesToWelcome(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("DeleteUser", mock.Anything, "testuser").Return(nil)

	sess := newLoggedInSession(t, "testuser", "abc123")
	notifier := &fakeNotifier{}
	navigator := &fakeNavigator{}

	view := NewProfile(apiMock, apiMock, sess, notifier, navigator)
	view.Activate()
	view.DeleteAccount(context.Background())

	assert.Empty(t, sess.CurrentUsername())
	assert.Empty(t, sess.Token())
	assert.Contains(t, notifier.messages, "Account deleted")
	assert.Equal(t, []string{RouteWelcome}, navigator.routes)
	apiMock.AssertExpectations(t)
}

func TestLogoutClearsSession(t *testing.T) {
	sess := newLoggedInSession(t, "testuser", "abc123")
	navigator := &fakeNavigator{}

	view := NewProfile(&mockapi.ClientMock{}, &mockapi.ClientMock{}, sess, &fakeNotifier{}, navigator)
	view.Activate()
	view.Logout()

	assert.Empty(t, sess.CurrentUsername())
	assert.Empty(t, sess.Token())
	assert.Equal(t, []string{RouteWelcome}, navigator.routes)
}
