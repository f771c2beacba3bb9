// Package models defines the wire-level data structures exchanged with the
// myFlix API. Field spelling follows the server: user fields are capitalized,
// movie fields are lowercase.
package models

// Credentials carries the login form input.
type Credentials struct {
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

// Registration carries the sign-up form input.
type Registration struct {
	Username string `json:"Username" validate:"required,min=3"`
	Password string `json:"Password" validate:"required,min=8"`
	Email    string `json:"Email" validate:"required,email"`
	Birthday string `json:"Birthday,omitempty"`
}

// User is the client-side snapshot of a server user record.
// Password is write-only: the server never echoes it back.
type User struct {
	Username       string   `json:"Username"`
	Password       string   `json:"Password,omitempty"`
	Email          string   `json:"Email"`
	Birthday       string   `json:"Birthday,omitempty"`
	FavoriteMovies []string `json:"FavoriteMovies,omitempty"`
}

// UserUpdate carries the editable profile fields for PUT /users/{username}.
type UserUpdate struct {
	Username string `json:"Username,omitempty"`
	Email    string `json:"Email,omitempty" validate:"omitempty,email"`
	Birthday string `json:"Birthday,omitempty"`
}

// LoginResult is the successful response of POST /login.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Genre describes a movie genre.
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Director describes a movie director.
type Director struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birth_date,omitempty"`
	DeathYear string `json:"death_year,omitempty"`
}

// Movie is a catalog entry. Read-only from the client's perspective.
type Movie struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url,omitempty"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
}
