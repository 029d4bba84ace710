// Package realty holds the office's property inventory: the properties
// themselves, their images and the listings that put them on the market.
package realty

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PropertyType categorizes a property
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyStatus tracks where a property stands in its sales cycle
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
	PropertyStatusPending   PropertyStatus = "pending"
)

// Common errors
var (
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrEmptyAddress        = errors.New("address cannot be empty")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrInvalidPropertyType = errors.New("property type must be house, apartment, land or commercial")
	ErrEmptyImageURL       = errors.New("image url cannot be empty")
	ErrInvalidListingType  = errors.New("listing type must be sale or rent")
)

// Property represents a property managed by the office. Owner and agent
// assignments are optional and survive deletion of the referenced record.
type Property struct {
	ID           int64           `json:"id"`
	OwnerID      *int64          `json:"owner_id,omitempty"`
	AgentID      *int64          `json:"agent_id,omitempty"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	PropertyType PropertyType    `json:"property_type"`
	Address      string          `json:"address"`
	City         string          `json:"city,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Bedrooms     int             `json:"bedrooms,omitempty"`
	Bathrooms    int             `json:"bathrooms,omitempty"`
	AreaSqft     int             `json:"area_sqft,omitempty"`
	Status       PropertyStatus  `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewProperty creates a property in the available state after validating
// required fields
func NewProperty(ownerID, agentID *int64, title, description string, propertyType PropertyType, address, city string, price decimal.Decimal, bedrooms, bathrooms, areaSqft int) (*Property, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	switch propertyType {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeLand, PropertyTypeCommercial:
	default:
		return nil, ErrInvalidPropertyType
	}

	return &Property{
		OwnerID:      ownerID,
		AgentID:      agentID,
		Title:        title,
		Description:  description,
		PropertyType: propertyType,
		Address:      address,
		City:         city,
		Price:        price,
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		AreaSqft:     areaSqft,
		Status:       PropertyStatusAvailable,
		CreatedAt:    time.Now(),
	}, nil
}

// PropertyImage is a photo attached to a property
type PropertyImage struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"property_id"`
	ImageURL   string `json:"image_url"`
	IsPrimary  bool   `json:"is_primary"`
}

// NewPropertyImage creates an image record for a property
func NewPropertyImage(propertyID int64, imageURL string, isPrimary bool) (*PropertyImage, error) {
	if imageURL == "" {
		return nil, ErrEmptyImageURL
	}
	return &PropertyImage{
		PropertyID: propertyID,
		ImageURL:   imageURL,
		IsPrimary:  isPrimary,
	}, nil
}
