package views

import (
	"context"
	"fmt"
	"io"

	"github.com/patric-chuzhbe/myflix/internal/models"
	"github.com/patric-chuzhbe/myflix/internal/session"
)

type catalogAPI interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMoviesByGenre(ctx context.Context, genre string) ([]models.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error)
}

type favoritesAdder interface {
	AddFavorite(ctx context.Context, username, movieID string) error
}

// MovieList shows the catalog and dispatches the per-movie actions: genre,
// director, details, and add-to-favorites.
//
// The session username is read once on activation, not re-checked per click.
type MovieList struct {
	catalog   catalogAPI
	favorites favoritesAdder
	session   *session.Session
	notifier  Notifier
	navigator Navigator
	dialogs   *Dialog
	out       io.Writer

	movies   []models.Movie
	username string
}

func NewMovieList(
	catalog catalogAPI,
	favorites favoritesAdder,
	sess *session.Session,
	notifier Notifier,
	navigator Navigator,
	dialogs *Dialog,
	out io.Writer,
) *MovieList {
	return &MovieList{
		catalog:   catalog,
		favorites: favorites,
		session:   sess,
		notifier:  notifier,
		navigator: navigator,
		dialogs:   dialogs,
		out:       out,
	}
}

// Activate fetches the catalog and caches the session username.
func (v *MovieList) Activate(ctx context.Context) {
	movies, err := v.catalog.ListMovies(ctx)
	if err != nil {
		v.notifier.Notify(err.Error())
	} else {
		v.movies = movies
	}

	v.username = v.session.CurrentUsername()
}

// Movies returns the currently displayed catalog slice.
func (v *MovieList) Movies() []models.Movie {
	return v.movies
}

// Render lists the displayed movies.
func (v *MovieList) Render() {
	for i, movie := range v.movies {
		fmt.Fprintf(v.out, "%d. %s (%s)\n", i+1, movie.Title, movie.Genre.Name)
	}
}

// FilterByGenre replaces the displayed list with the movies of one genre.
// On failure the current list stays as it was.
func (v *MovieList) FilterByGenre(ctx context.Context, genre string) {
	movies, err := v.catalog.GetMoviesByGenre(ctx, genre)
	if err != nil {
		v.notifier.Notify(err.Error())
		return
	}

	v.movies = movies
}

// FindByTitle looks a movie up by exact title and shows its details dialog.
func (v *MovieList) FindByTitle(ctx context.Context, title string) {
	movie, err := v.catalog.GetMovieByTitle(ctx, title)
	if err != nil {
		v.notifier.Notify(err.Error())
		return
	}

	v.ShowDetails(*movie)
}

// ShowGenre opens the genre dialog for one movie. No API call: the data is
// already on the movie record.
func (v *MovieList) ShowGenre(movie models.Movie) {
	v.dialogs.Open(DialogContent{
		Kind:    DialogGenre,
		Title:   movie.Genre.Name,
		Content: movie.Genre.Description,
	})
}

// ShowDirector opens the director dialog for one movie.
func (v *MovieList) ShowDirector(movie models.Movie) {
	v.dialogs.Open(DialogContent{
		Kind:      DialogDirector,
		Title:     movie.Director.Name,
		Content:   movie.Director.Bio,
		BirthDate: movie.Director.BirthDate,
		DeathYear: movie.Director.DeathYear,
	})
}

// ShowDetails opens the details dialog for one movie.
func (v *MovieList) ShowDetails(movie models.Movie) {
	v.dialogs.Open(DialogContent{
		Kind:     DialogMovie,
		Title:    movie.Title,
		Content:  movie.Description,
		ImageURL: movie.ImageURL,
	})
}

// AddToFavorites adds one movie to the logged-in user's favorites. Without a
// session username the action short-circuits with a login prompt and no API
// call is made.
func (v *MovieList) AddToFavorites(ctx context.Context, movie models.Movie) {
	if v.username == "" {
		v.notifier.Notify("Please log in first.")
		return
	}

	if err := v.favorites.AddFavorite(ctx, v.username, movie.ID); err != nil {
		v.notifier.Notify(err.Error())
		return
	}

	v.notifier.Notify(movie.Title + " has been added to your favorites!")
}

// GoToProfile navigates to the profile view.
func (v *MovieList) GoToProfile() {
	v.navigator.NavigateTo(RouteProfile)
}
