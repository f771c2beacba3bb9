package views

import (
	"context"

	validator "github.com/go-playground/validator/v10"

	"github.com/patric-chuzhbe/myflix/internal/models"
)

type registrationAPI interface {
	RegisterUser(ctx context.Context, registration models.Registration) (*models.User, error)
}

var validate = validator.New()

// RegistrationFormState tracks the sign-up flow: Idle, Submitting, Done.
type RegistrationFormState int

const (
	RegistrationIdle RegistrationFormState = iota
	RegistrationSubmitting
	RegistrationDone
)

// RegistrationForm creates a new account. Registration does not imply login:
// a successful submit never writes the session and never navigates.
type RegistrationForm struct {
	api          registrationAPI
	notifier     Notifier
	presentation Presentation
	state        RegistrationFormState
}

func NewRegistrationForm(
	api registrationAPI,
	notifier Notifier,
	presentation Presentation,
) *RegistrationForm {
	return &RegistrationForm{
		api:          api,
		notifier:     notifier,
		presentation: presentation,
		state:        RegistrationIdle,
	}
}

func (f *RegistrationForm) State() RegistrationFormState {
	return f.state
}

// Submit validates the form input and runs one registration attempt.
// Invalid input never reaches the API.
func (f *RegistrationForm) Submit(ctx context.Context, registration models.Registration) {
	if err := validate.Struct(registration); err != nil {
		f.notifier.Notify("Please fill in username (min 3), password (min 8), and a valid email.")
		return
	}

	f.state = RegistrationSubmitting

	_, err := f.api.RegisterUser(ctx, registration)
	if err != nil {
		f.notifier.Notify(err.Error())
		f.state = RegistrationIdle
		return
	}

	f.presentation.Close()
	f.notifier.Notify(registration.Username + " successfully registered")
	f.state = RegistrationDone
}
