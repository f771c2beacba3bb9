package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/myflix/internal/api"
	"github.com/patric-chuzhbe/myflix/internal/mockapi"
	"github.com/patric-chuzhbe/myflix/internal/models"
)

var testMovie = models.Movie{
	ID:          "42",
	Title:       "The Dark Knight",
	Description: "A vigilante fights crime in Gotham.",
	Genre:       models.Genre{Name: "Action", Description: "Fast-paced films."},
	Director: models.Director{
		Name:      "Christopher Nolan",
		Bio:       "British-American director",
		BirthDate: "1970-07-30",
	},
}

func newMovieListUnderTest(
	t *testing.T,
	apiMock *mockapi.ClientMock,
	loggedIn bool,
) (*MovieList, *fakeNotifier, *fakeNavigator, *bytes.Buffer) {
	t.Helper()

	sess := newTestSession(t)
	if loggedIn {
		sess = newLoggedInSession(t, "testuser", "abc123")
	}

	notifier := &fakeNotifier{}
	navigator := &fakeNavigator{}
	out := &bytes.Buffer{}

	view := NewMovieList(apiMock, apiMock, sess, notifier, navigator, NewDialog(out), out)
	return view, notifier, navigator, out
}

func TestActivateFetchesMoviesAndCachesUsername(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("ListMovies", mock.Anything).Return([]models.Movie{testMovie}, nil)

	view, _, _, _ := newMovieListUnderTest(t, apiMock, true)
	view.Activate(context.Background())

	require.Len(t, view.Movies(), 1)
	assert.Equal(t, "The Dark Knight", view.Movies()[0].Title)
	apiMock.AssertExpectations(t)
}

func TestActivateFailureKeepsEmptyListAndNotifies(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("ListMovies", mock.Anything).Return(nil, api.ErrRequestFailed)

	view, notifier, _, _ := newMovieListUnderTest(t, apiMock, false)
	view.Activate(context.Background())

	assert.Empty(t, view.Movies())
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "request failed; try again later")
}

func TestAddToFavoritesWithoutSessionMakesNoAPICall(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("ListMovies", mock.Anything).Return([]models.Movie{testMovie}, nil)

	view, notifier, _, _ := newMovieListUnderTest(t, apiMock, false)
	view.Activate(context.Background())

	view.AddToFavorites(context.Background(), testMovie)

	assert.Contains(t, notifier.messages, "Please log in first.")
	apiMock.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToFavoritesCallsAPIWhenLoggedIn(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("ListMovies", mock.Anything).Return([]models.Movie{testMovie}, nil)
	apiMock.On("AddFavorite", mock.Anything, "testuser", "42").Return(nil)

	view, notifier, _, _ := newMovieListUnderTest(t, apiMock, true)
	view.Activate(context.Background())

	view.AddToFavorites(context.Background(), testMovie)

	assert.Contains(t, notifier.messages, "The Dark Knight has been added to your favorites!")
	apiMock.AssertExpectations(t)
}

func TestAddToFavoritesFailureNotifies(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("ListMovies", mock.Anything).Return([]models.Movie{testMovie}, nil)
	apiMock.On("AddFavorite", mock.Anything, "testuser", "42").Return(api.ErrRequestFailed)

	view, notifier, _, _ := newMovieListUnderTest(t, apiMock, true)
	view.Activate(context.Background())

	view.AddToFavorites(context.Background(), testMovie)

	require.NotEmpty(t, notifier.messages)
	assert.Contains(t, notifier.messages[len(notifier.messages)-1], "request failed; try again later")
}

func TestFilterByGenreReplacesList(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("ListMovies", mock.Anything).Return([]models.Movie{testMovie}, nil)
	apiMock.On("GetMoviesByGenre", mock.Anything, "Drama").Return([]models.Movie{}, nil)

	view, _, _, _ := newMovieListUnderTest(t, apiMock, false)
	view.Activate(context.Background())
	view.FilterByGenre(context.Background(), "Drama")

	assert.Empty(t, view.Movies())
}

func TestFilterByGenreFailureKeepsCurrentList(t *testing.T) {
	apiMock := &mockapi.ClientMock{}
	apiMock.On("ListMovies", mock.Anything).Return([]models.Movie{testMovie}, nil)
	apiMock.On("GetMoviesByGenre", mock.Anything, "Drama").Return(nil, api.ErrRequestFailed)

	view, notifier, _, _ := newMovieListUnderTest(t, apiMock, false)
	view.Activate(context.Background())
	view.FilterByGenre(context.Background(), "Drama")

	require.Len(t, view.Movies(), 1)
	assert.Contains(t, notifier.messages[len(notifier.messages)-1], "request failed; try again later")
}

func TestDialogsRenderMovieData(t *testing.T) {
	apiMock := &mockapi.ClientMock{}

	view, _, _, out := newMovieListUnderTest(t, apiMock, false)

	view.ShowGenre(testMovie)
	assert.Contains(t, out.String(), "Action")
	assert.Contains(t, out.String(), "Fast-paced films.")

	out.Reset()
	view.ShowDirector(testMovie)
	assert.Contains(t, out.String(), "Christopher Nolan")
	assert.Contains(t, out.String(), "Born: 1970-07-30")

	out.Reset()
	view.ShowDetails(testMovie)
	assert.Contains(t, out.String(), "The Dark Knight")
	assert.Contains(t, out.String(), "A vigilante fights crime in Gotham.")

	// dialogs never touch the API
	apiMock.AssertNotCalled(t, "GetDirector", mock.Anything, mock.Anything)
}

func TestGoToProfileNavigates(t *testing.T) {
	apiMock := &mockapi.ClientMock{}

	view, _, navigator, _ := newMovieListUnderTest(t, apiMock, false)
	view.GoToProfile()

	assert.Equal(t, []string{RouteProfile}, navigator.routes)
}
