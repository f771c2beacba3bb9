// Package app initializes and runs the interactive myFlix client.
// It configures logging, the session storage, the API client, and the view
// components, and drives the screen loop until the user quits.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/patric-chuzhbe/myflix/internal/api"
	"github.com/patric-chuzhbe/myflix/internal/config"
	"github.com/patric-chuzhbe/myflix/internal/db/jsonfile"
	"github.com/patric-chuzhbe/myflix/internal/db/memorykv"
	"github.com/patric-chuzhbe/myflix/internal/logger"
	"github.com/patric-chuzhbe/myflix/internal/models"
	"github.com/patric-chuzhbe/myflix/internal/session"
	"github.com/patric-chuzhbe/myflix/internal/views"
)

type sessionStorage interface {
	Get(key string) (string, bool)
	Put(key, value string)
	Delete(key string)
	Flush() error
	Close() error
}

// App encapsulates the configuration, session storage, API client, and view
// components of the interactive client.
type App struct {
	cfg     *config.Config
	storage sessionStorage
	session *session.Session
	client  *api.Client

	in  io.Reader
	out io.Writer

	route string
}

// New initializes a new App by:
// - loading configuration
// - initializing the logger
// - opening the session storage (file-backed unless persistence is disabled)
// - building the API client bound to the session's token
func New() (*App, error) {
	var err error
	app := &App{
		in:    os.Stdin,
		out:   os.Stdout,
		route: views.RouteWelcome,
	}

	app.cfg, err = config.New()
	if err != nil {
		return nil, err
	}

	err = logger.Init(app.cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app.storage, err = getStorageByConfig(app.cfg)
	if err != nil {
		return nil, err
	}

	app.session = session.New(app.storage)
	app.client = api.New(
		app.cfg.APIBaseURL,
		app.session,
		api.WithTimeout(app.cfg.RequestTimeout),
	)

	return app, nil
}

func getStorageByConfig(cfg *config.Config) (sessionStorage, error) {
	if cfg.NoPersist {
		return memorykv.New()
	}

	return jsonfile.New(cfg.SessionFile)
}

// Notify renders a transient notification, the terminal analog of a
// snackbar.
func (a *App) Notify(message string) {
	fmt.Fprintf(a.out, "[!] %s\n", message)
}

// NavigateTo switches the active screen on the next loop iteration.
func (a *App) NavigateTo(route string) {
	a.route = route
}

type presentationFunc func()

func (f presentationFunc) Close() { f() }

// Run drives the screen loop until quit, EOF, or an interrupt signal. The
// signal context is handed to every API call, so an interrupt mid-request
// cancels it.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Log.Infoln("client started", "APIBaseURL", a.cfg.APIBaseURL)

	scanner := bufio.NewScanner(a.in)

	welcome := views.NewWelcome(a.out)
	dialogs := views.NewDialog(a.out)
	movieList := views.NewMovieList(a.client, a.client, a.session, a, a, dialogs, a.out)
	profile := views.NewProfile(a.client, a.client, a.session, a, a)

	for ctx.Err() == nil {
		switch a.route {
		case views.RouteWelcome:
			welcome.Render()
			command, ok := a.prompt(scanner, "> ")
			if !ok {
				return a.shutdown()
			}
			switch command {
			case "signup":
				a.runRegistration(ctx, scanner)
			case "login":
				a.runLogin(ctx, scanner)
			case "movies":
				a.route = views.RouteMovies
			case "quit":
				return a.shutdown()
			}

		case views.RouteMovies:
			movieList.Activate(ctx)
			movieList.Render()
			if !a.runMovieListActions(ctx, scanner, movieList) {
				return a.shutdown()
			}

		case views.RouteProfile:
			profile.Activate()
			a.renderProfile(profile, movieList.Movies())
			if !a.runProfileActions(ctx, scanner, profile) {
				return a.shutdown()
			}

		default:
			a.route = views.RouteWelcome
		}
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	logger.Log.Infoln("shutting down, saving session storage")
	return a.storage.Close()
}

// Close finalizes resources used by App such as logging.
func (a *App) Close() {
	if err := logger.Sync(); err != nil {
		fmt.Fprintln(os.Stderr, "Logger sync error:", err)
	}
}

func (a *App) prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}

func (a *App) runLogin(ctx context.Context, scanner *bufio.Scanner) {
	username, ok := a.prompt(scanner, "Username: ")
	if !ok {
		return
	}
	password, ok := a.prompt(scanner, "Password: ")
	if !ok {
		return
	}

	form := views.NewLoginForm(a.client, a.session, a, a, presentationFunc(func() {
		fmt.Fprintln(a.out, "(login form closed)")
	}))
	form.Submit(ctx, models.Credentials{Username: username, Password: password})
}

func (a *App) runRegistration(ctx context.Context, scanner *bufio.Scanner) {
	username, ok := a.prompt(scanner, "Username: ")
	if !ok {
		return
	}
	password, ok := a.prompt(scanner, "Password: ")
	if !ok {
		return
	}
	email, ok := a.prompt(scanner, "Email: ")
	if !ok {
		return
	}
	birthday, ok := a.prompt(scanner, "Birthday (YYYY-MM-DD, optional): ")
	if !ok {
		return
	}

	form := views.NewRegistrationForm(a.client, a, presentationFunc(func() {
		fmt.Fprintln(a.out, "(registration form closed)")
	}))
	form.Submit(ctx, models.Registration{
		Username: username,
		Password: password,
		Email:    email,
		Birthday: birthday,
	})
}

// runMovieListActions handles one action on the movie list screen. It
// returns false when the loop should stop.
func (a *App) runMovieListActions(ctx context.Context, scanner *bufio.Scanner, movieList *views.MovieList) bool {
	fmt.Fprintln(a.out, "actions: genre <n> | director <n> | details <n> | fav <n> | filter <genre> | title <title> | profile | back | quit")
	line, ok := a.prompt(scanner, "movies> ")
	if !ok {
		return false
	}

	command, argument, _ := strings.Cut(line, " ")
	switch command {
	case "genre", "director", "details", "fav":
		index, err := strconv.Atoi(argument)
		if err != nil || index < 1 || index > len(movieList.Movies()) {
			a.Notify("Unknown movie number")
			return true
		}
		movie := movieList.Movies()[index-1]
		switch command {
		case "genre":
			movieList.ShowGenre(movie)
		case "director":
			movieList.ShowDirector(movie)
		case "details":
			movieList.ShowDetails(movie)
		case "fav":
			movieList.AddToFavorites(ctx, movie)
		}
	case "filter":
		movieList.FilterByGenre(ctx, argument)
	case "title":
		movieList.FindByTitle(ctx, argument)
	case "profile":
		movieList.GoToProfile()
	case "back":
		a.route = views.RouteWelcome
	case "quit":
		return false
	}

	return true
}

func (a *App) renderProfile(profile *views.Profile, catalog []models.Movie) {
	if profile.Username() == "" {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	fmt.Fprintf(a.out, "Username: %s\nEmail: %s\n", profile.Username(), profile.Email())
	fmt.Fprintln(a.out, "Favorites:")
	for _, movie := range profile.FavoriteMovies(catalog) {
		fmt.Fprintf(a.out, "  %s (%s)\n", movie.Title, movie.ID)
	}
}

// runProfileActions handles one action on the profile screen. It returns
// false when the loop should stop.
func (a *App) runProfileActions(ctx context.Context, scanner *bufio.Scanner, profile *views.Profile) bool {
	fmt.Fprintln(a.out, "actions: update | rmfav <id> | delete | logout | back | quit")
	line, ok := a.prompt(scanner, "profile> ")
	if !ok {
		return false
	}

	command, argument, _ := strings.Cut(line, " ")
	switch command {
	case "update":
		username, ok := a.prompt(scanner, "New username (blank to keep): ")
		if !ok {
			return false
		}
		email, ok := a.prompt(scanner, "New email (blank to keep): ")
		if !ok {
			return false
		}
		profile.SubmitUpdate(ctx, models.UserUpdate{Username: username, Email: email})
	case "rmfav":
		profile.RemoveFromFavorites(ctx, argument)
	case "delete":
		profile.DeleteAccount(ctx)
	case "logout":
		profile.Logout()
	case "back":
		a.route = views.RouteMovies
	case "quit":
		return false
	}

	return true
}
