package views

import (
	"context"

	"github.com/patric-chuzhbe/myflix/internal/models"
	"github.com/patric-chuzhbe/myflix/internal/session"
)

type loginAPI interface {
	Login(ctx context.Context, credentials models.Credentials) (*models.LoginResult, error)
}

// LoginFormState tracks the login flow: Idle, Submitting, Authenticated.
// A failed submit returns the form to Idle.
type LoginFormState int

const (
	LoginIdle LoginFormState = iota
	LoginSubmitting
	LoginAuthenticated
)

// LoginForm authenticates the user. On success it writes the session,
// closes its presentation, and navigates to the movie list.
type LoginForm struct {
	api          loginAPI
	session      *session.Session
	notifier     Notifier
	navigator    Navigator
	presentation Presentation
	state        LoginFormState
}

func NewLoginForm(
	api loginAPI,
	sess *session.Session,
	notifier Notifier,
	navigator Navigator,
	presentation Presentation,
) *LoginForm {
	return &LoginForm{
		api:          api,
		session:      sess,
		notifier:     notifier,
		navigator:    navigator,
		presentation: presentation,
		state:        LoginIdle,
	}
}

func (f *LoginForm) State() LoginFormState {
	return f.state
}

// Submit runs one login attempt. Fire-and-forget from the caller's
// perspective: both outcomes are reported through the notifier.
func (f *LoginForm) Submit(ctx context.Context, credentials models.Credentials) {
	if err := validate.Struct(credentials); err != nil {
		f.notifier.Notify("Please enter both username and password.")
		return
	}

	f.state = LoginSubmitting

	result, err := f.api.Login(ctx, credentials)
	if err != nil {
		f.notifier.Notify(err.Error())
		f.state = LoginIdle
		return
	}

	if err := f.session.Set(&result.User, result.Token); err != nil {
		f.notifier.Notify(err.Error())
		f.state = LoginIdle
		return
	}

	f.presentation.Close()
	f.notifier.Notify("Login successful")
	f.navigator.NavigateTo(RouteMovies)
	f.state = LoginAuthenticated
}
