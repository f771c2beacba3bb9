// Package api implements the HTTP client for the myFlix REST API.
//
// Every operation collapses its failures into the single sentinel
// ErrRequestFailed: transport errors, non-2xx statuses, and undecodable
// response bodies are indistinguishable to callers. The underlying status and
// body are recorded on the diagnostic channel (the zap logger) together with
// the request id, and never propagated.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/patric-chuzhbe/myflix/internal/logger"
	"github.com/patric-chuzhbe/myflix/internal/models"
)

// ErrRequestFailed is the one error kind callers can observe. Check it with
// errors.Is; the wrapped prefix only names the failed operation.
var ErrRequestFailed = errors.New("request failed; try again later")

// TokenSource yields the current bearer token, or "" when nobody is logged
// in. An empty token means the request goes out unauthenticated; it never
// fails fast.
type TokenSource interface {
	Token() string
}

// Client issues requests against a single fixed base URL.
type Client struct {
	http    *resty.Client
	tokens  TokenSource
	baseURL string
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets a per-request timeout. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.SetTimeout(timeout)
		}
	}
}

func New(baseURL string, tokens TokenSource, options ...Option) *Client {
	client := &Client{
		http:    resty.New(),
		tokens:  tokens,
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

func (c *Client) newRequest(ctx context.Context) (*resty.Request, string) {
	requestID := uuid.NewString()

	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID)

	if token := c.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}

	return req, requestID
}

func fail(operation, requestID string, resp *resty.Response, err error) error {
	if err != nil {
		logger.Log.Errorln(
			"request failed",
			"operation", operation,
			"request_id", requestID,
			"error", err,
		)
	} else {
		logger.Log.Errorln(
			"backend returned an error response",
			"operation", operation,
			"request_id", requestID,
			"status", resp.StatusCode(),
			"body", string(resp.Body()),
		)
	}

	return fmt.Errorf("%s: %w", operation, ErrRequestFailed)
}

// do runs one request/response cycle. A non-nil out gets the decoded JSON
// body; a nil out means the body is ignored.
func (c *Client) do(
	ctx context.Context,
	operation string,
	method string,
	path string,
	body interface{},
	out interface{},
) error {
	req, requestID := c.newRequest(ctx)

	if body != nil || method == http.MethodPost {
		req.SetHeader("Content-Type", "application/json")
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, c.baseURL+path)
	if err != nil || resp.IsError() {
		return fail(operation, requestID, resp, err)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			logger.Log.Errorln(
				"response body could not be decoded",
				"operation", operation,
				"request_id", requestID,
				"status", resp.StatusCode(),
				"error", err,
			)
			return fmt.Errorf("%s: %w", operation, ErrRequestFailed)
		}
	}

	return nil
}

// RegisterUser creates a new account. Registration never creates a session;
// only Login does.
func (c *Client) RegisterUser(ctx context.Context, registration models.Registration) (*models.User, error) {
	created := &models.User{}
	err := c.do(ctx, "register user", http.MethodPost, "/users", registration, created)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login exchanges credentials for a user snapshot and a bearer token.
func (c *Client) Login(ctx context.Context, credentials models.Credentials) (*models.LoginResult, error) {
	result := &models.LoginResult{}
	err := c.do(ctx, "login", http.MethodPost, "/login", credentials, result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateUser submits edited profile fields and returns the updated snapshot.
func (c *Client) UpdateUser(ctx context.Context, username string, update models.UserUpdate) (*models.User, error) {
	updated := &models.User{}
	err := c.do(
		ctx,
		"update user",
		http.MethodPut,
		"/users/"+url.PathEscape(username),
		update,
		updated,
	)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteUser removes the account. The response body is ignored.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	return c.do(
		ctx,
		"delete user",
		http.MethodDelete,
		"/users/"+url.PathEscape(username),
		nil,
		nil,
	)
}

// ListUsers returns all registered users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, "list users", http.MethodGet, "/users", nil, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// ListMovies returns the whole catalog.
func (c *Client) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := c.do(ctx, "list movies", http.MethodGet, "/movies", nil, &movies)
	if err != nil {
		return nil, err
	}

	return movies, nil
}

// GetMovieByTitle returns a single movie looked up by exact title.
func (c *Client) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	movie := &models.Movie{}
	err := c.do(
		ctx,
		"get movie by title",
		http.MethodGet,
		"/movies/title/"+url.PathEscape(title),
		nil,
		movie,
	)
	if err != nil {
		return nil, err
	}

	return movie, nil
}

// GetMoviesByGenre returns the movies of one genre.
func (c *Client) GetMoviesByGenre(ctx context.Context, genre string) ([]models.Movie, error) {
	var movies []models.Movie
	err := c.do(
		ctx,
		"get movies by genre",
		http.MethodGet,
		"/movies/genres/"+url.PathEscape(genre),
		nil,
		&movies,
	)
	if err != nil {
		return nil, err
	}

	return movies, nil
}

// GetDirector returns a director looked up by name.
func (c *Client) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	director := &models.Director{}
	err := c.do(
		ctx,
		"get director",
		http.MethodGet,
		"/directors/"+url.PathEscape(name),
		nil,
		director,
	)
	if err != nil {
		return nil, err
	}

	return director, nil
}

// AddFavorite associates a movie with the user's favorites.
// The server response body is ignored.
func (c *Client) AddFavorite(ctx context.Context, username, movieID string) error {
	return c.do(
		ctx,
		"add favorite",
		http.MethodPost,
		"/users/"+url.PathEscape(username)+"/movie/"+url.PathEscape(movieID),
		nil,
		nil,
	)
}

// RemoveFavorite removes a movie from the user's favorites.
func (c *Client) RemoveFavorite(ctx context.Context, username, movieID string) error {
	return c.do(
		ctx,
		"remove favorite",
		http.MethodDelete,
		"/users/"+url.PathEscape(username)+"/movie/"+url.PathEscape(movieID),
		nil,
		nil,
	)
}
