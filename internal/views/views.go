// Package views contains the terminal view components of the myFlix client.
//
// Each view composes the API client (through a consumer-defined interface)
// and the session store, renders through an injected writer, and dispatches
// exactly one API operation per user action. Success updates local state
// and/or the session; failure surfaces the normalized error through the
// notifier and leaves the view in its pre-action state. Views never retry,
// queue, or batch.
package views

// Routes the navigator understands.
const (
	RouteWelcome = "welcome"
	RouteMovies  = "movies"
	RouteProfile = "profile"
)

// Notifier shows a transient notification to the user.
type Notifier interface {
	Notify(message string)
}

// Navigator switches the active screen.
type Navigator interface {
	NavigateTo(route string)
}

// Presentation is the modal hosting a form view; Close dismisses it.
type Presentation interface {
	Close()
}
