package party

import (
	"context"
	"strconv"
)

// UserRepository defines user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

// ClientRepository defines client persistence operations
type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id int64) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id int64) error
}

// ErrUserNotFound indicates a missing user
type ErrUserNotFound struct {
	ID int64
}

func (e ErrUserNotFound) Error() string {
	return "user not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrUserNotFound when the target carries a zero ID
func (e ErrUserNotFound) Is(target error) bool {
	t, ok := target.(ErrUserNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}

// ErrClientNotFound indicates a missing client
type ErrClientNotFound struct {
	ID int64
}

func (e ErrClientNotFound) Error() string {
	return "client not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrClientNotFound when the target carries a zero ID
func (e ErrClientNotFound) Is(target error) bool {
	t, ok := target.(ErrClientNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}

// ErrDuplicateEmail indicates the user email uniqueness violation
type ErrDuplicateEmail struct {
	Email string
}

func (e ErrDuplicateEmail) Error() string {
	return "user with email already exists: " + e.Email
}
