// Package mockapi provides a testify-based mock implementation of the API
// client surface consumed by the view components.
//
// Use it in view tests to simulate backend behavior without a network.
package mockapi

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/patric-chuzhbe/myflix/internal/models"
)

// ClientMock is a testify mock that implements every API operation the views
// depend on.
type ClientMock struct {
	mock.Mock
}

// RegisterUser mocks POST /users.
func (m *ClientMock) RegisterUser(ctx context.Context, registration models.Registration) (*models.User, error) {
	args := m.Called(ctx, registration)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

// Login mocks POST /login.
func (m *ClientMock) Login(ctx context.Context, credentials models.Credentials) (*models.LoginResult, error) {
	args := m.Called(ctx, credentials)
	result, _ := args.Get(0).(*models.LoginResult)
	return result, args.Error(1)
}

// UpdateUser mocks PUT /users/{username}.
func (m *ClientMock) UpdateUser(ctx context.Context, username string, update models.UserUpdate) (*models.User, error) {
	args := m.Called(ctx, username, update)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

// DeleteUser mocks DELETE /users/{username}.
func (m *ClientMock) DeleteUser(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// ListUsers mocks GET /users.
func (m *ClientMock) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

// ListMovies mocks GET /movies.
func (m *ClientMock) ListMovies(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Error(1)
}

// GetMovieByTitle mocks GET /movies/title/{title}.
func (m *ClientMock) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	args := m.Called(ctx, title)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

// GetMoviesByGenre mocks GET /movies/genres/{genre}.
func (m *ClientMock) GetMoviesByGenre(ctx context.Context, genre string) ([]models.Movie, error) {
	args := m.Called(ctx, genre)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Error(1)
}

// GetDirector mocks GET /directors/{name}.
func (m *ClientMock) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	args := m.Called(ctx, name)
	director, _ := args.Get(0).(*models.Director)
	return director, args.Error(1)
}

// AddFavorite mocks POST /users/{username}/movie/{movieID}.
func (m *ClientMock) AddFavorite(ctx context.Context, username, movieID string) error {
	args := m.Called(ctx, username, movieID)
	return args.Error(0)
}

// RemoveFavorite mocks DELETE /users/{username}/movie/{movieID}.
func (m *ClientMock) RemoveFavorite(ctx context.Context, username, movieID string) error {
	args := m.Called(ctx, username, movieID)
	return args.Error(0)
}
