package realty

import (
	"context"
	"strconv"
)

// PropertyRepository defines property persistence operations
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id int64) (*Property, error)
	List(ctx context.Context) ([]Property, error)
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id int64) error
}

// PropertyImageRepository defines property image persistence operations.
// Images have no update path; a photo is replaced by deleting and re-adding.
type PropertyImageRepository interface {
	Create(ctx context.Context, image *PropertyImage) error
	GetByID(ctx context.Context, id int64) (*PropertyImage, error)
	List(ctx context.Context) ([]PropertyImage, error)
	Delete(ctx context.Context, id int64) error
}

// ListingRepository defines listing persistence operations. Listings are
// create-and-read only; the console deliberately exposes no edit path.
type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	GetByID(ctx context.Context, id int64) (*Listing, error)
	List(ctx context.Context) ([]Listing, error)
}

// ErrPropertyNotFound indicates a missing property
type ErrPropertyNotFound struct {
	ID int64
}

func (e ErrPropertyNotFound) Error() string {
	return "property not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrPropertyNotFound when the target carries a zero ID
func (e ErrPropertyNotFound) Is(target error) bool {
	t, ok := target.(ErrPropertyNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}

// ErrImageNotFound indicates a missing property image
type ErrImageNotFound struct {
	ID int64
}

func (e ErrImageNotFound) Error() string {
	return "property image not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrImageNotFound when the target carries a zero ID
func (e ErrImageNotFound) Is(target error) bool {
	t, ok := target.(ErrImageNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}

// ErrListingNotFound indicates a missing listing
type ErrListingNotFound struct {
	ID int64
}

func (e ErrListingNotFound) Error() string {
	return "listing not found: " + strconv.FormatInt(e.ID, 10)
}

// Is matches any ErrListingNotFound when the target carries a zero ID
func (e ErrListingNotFound) Is(target error) bool {
	t, ok := target.(ErrListingNotFound)
	if !ok {
		return false
	}
	return t.ID == 0 || t.ID == e.ID
}
