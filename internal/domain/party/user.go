// Package party holds the people the office works with: the users who run
// the console (agents and admins) and the clients they represent.
package party

import (
	"errors"
	"time"
)

// Role defines the access level of a console user
type Role string

const (
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// Common errors
var (
	ErrInvalidRole    = errors.New("role must be agent or admin")
	ErrEmptyName      = errors.New("first and last name cannot be empty")
	ErrEmptyEmail     = errors.New("email cannot be empty")
	ErrInvalidClient  = errors.New("client type must be buyer, seller or renter")
	ErrEmptyPassword  = errors.New("password hash cannot be empty")
)

// User represents an office employee with console access
type User struct {
	ID           int64     `json:"id"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a user after validating the required fields. The caller is
// responsible for hashing the password before it reaches this constructor.
func NewUser(role Role, firstName, lastName, email, phone, passwordHash string) (*User, error) {
	if role != RoleAgent && role != RoleAdmin {
		return nil, ErrInvalidRole
	}
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if passwordHash == "" {
		return nil, ErrEmptyPassword
	}

	return &User{
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}, nil
}

// FullName returns the display name used across the console
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsAgent reports whether the user can be assigned properties and clients
func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}
