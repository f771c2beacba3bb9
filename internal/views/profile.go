package views

import (
	"context"

	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/myflix/internal/models"
	"github.com/patric-chuzhbe/myflix/internal/session"
)

type accountAPI interface {
	UpdateUser(ctx context.Context, username string, update models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

type favoritesRemover interface {
	RemoveFavorite(ctx context.Context, username, movieID string) error
}

// Profile shows the logged-in user's data, the editable username/email form,
// and the favorites list, and offers logout and account deletion.
type Profile struct {
	account   accountAPI
	favorites favoritesRemover
	session   *session.Session
	notifier  Notifier
	navigator Navigator

	username string
	email    string
}

func NewProfile(
	account accountAPI,
	favorites favoritesRemover,
	sess *session.Session,
	notifier Notifier,
	navigator Navigator,
) *Profile {
	return &Profile{
		account:   account,
		favorites: favorites,
		session:   sess,
		notifier:  notifier,
		navigator: navigator,
	}
}

// Activate pre-fills the form from the session snapshot. An absent or
// unusable snapshot leaves the form empty (logged out).
func (v *Profile) Activate() {
	user := v.session.User()
	if user == nil {
		v.username = ""
		v.email = ""
		return
	}

	v.username = user.Username
	v.email = user.Email
}

func (v *Profile) Username() string {
	return v.username
}

func (v *Profile) Email() string {
	return v.email
}

// SubmitUpdate sends the edited profile fields to the server and refreshes
// the stored snapshot on success, keeping the existing token.
func (v *Profile) SubmitUpdate(ctx context.Context, update models.UserUpdate) {
	if v.username == "" {
		v.notifier.Notify("Please log in first.")
		return
	}

	updated, err := v.account.UpdateUser(ctx, v.username, update)
	if err != nil {
		v.notifier.Notify(err.Error())
		return
	}

	if updated.Username == "" {
		// lenient server response, keep the known identity
		updated.Username = v.username
	}
	if err := v.session.Set(updated, v.session.Token()); err != nil {
		v.notifier.Notify(err.Error())
		return
	}

	v.username = updated.Username
	v.email = updated.Email
	v.notifier.Notify("Profile updated")
}

// IsFavorite reports whether the movie id is in the cached favorites set.
func (v *Profile) IsFavorite(movieID string) bool {
	user := v.session.User()
	if user == nil {
		return false
	}

	return funk.ContainsString(user.FavoriteMovies, movieID)
}

// FavoriteMovies filters a catalog slice down to the user's favorites.
func (v *Profile) FavoriteMovies(catalog []models.Movie) []models.Movie {
	user := v.session.User()
	if user == nil {
		return nil
	}

	result := []models.Movie{}
	for _, movie := range catalog {
		if funk.ContainsString(user.FavoriteMovies, movie.ID) {
			result = append(result, movie)
		}
	}

	return result
}

// RemoveFromFavorites removes one movie from the favorites and drops it from
// the cached snapshot.
func (v *Profile) RemoveFromFavorites(ctx context.Context, movieID string) {
	if v.username == "" {
		v.notifier.Notify("Please log in first.")
		return
	}

	if err := v.favorites.RemoveFavorite(ctx, v.username, movieID); err != nil {
		v.notifier.Notify(err.Error())
		return
	}

	user := v.session.User()
	if user != nil {
		user.FavoriteMovies = funk.FilterString(user.FavoriteMovies, func(id string) bool {
			return id != movieID
		})
		if err := v.session.Set(user, v.session.Token()); err != nil {
			v.notifier.Notify(err.Error())
			return
		}
	}

	v.notifier.Notify("Removed from favorites")
}

// DeleteAccount removes the account on the server, clears the session, and
// returns to the welcome screen.
func (v *Profile) DeleteAccount(ctx context.Context) {
	if v.username == "" {
		v.notifier.Notify("Please log in first.")
		return
	}

	if err := v.account.DeleteUser(ctx, v.username); err != nil {
		v.notifier.Notify(err.Error())
		return
	}

	if err := v.session.Clear(); err != nil {
		v.notifier.Notify(err.Error())
	}
	v.username = ""
	v.email = ""
	v.notifier.Notify("Account deleted")
	v.navigator.NavigateTo(RouteWelcome)
}

// Logout clears the session and returns to the welcome screen.
func (v *Profile) Logout() {
	if err := v.session.Clear(); err != nil {
		v.notifier.Notify(err.Error())
	}
	v.username = ""
	v.email = ""
	v.navigator.NavigateTo(RouteWelcome)
}
