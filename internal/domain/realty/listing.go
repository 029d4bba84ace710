package realty

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingType distinguishes sale listings from rentals
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// Listing puts a property on the market at a price. Expiry is optional; an
// open-ended listing has no expiry date.
type Listing struct {
	ID          int64           `json:"id"`
	PropertyID  int64           `json:"property_id"`
	ListingType ListingType     `json:"listing_type"`
	ListedPrice decimal.Decimal `json:"listed_price"`
	ListingDate time.Time       `json:"listing_date"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
}

// NewListing creates a listing after validating the type and price
func NewListing(propertyID int64, listingType ListingType, listedPrice decimal.Decimal, listingDate time.Time, expiryDate *time.Time) (*Listing, error) {
	switch listingType {
	case ListingTypeSale, ListingTypeRent:
	default:
		return nil, ErrInvalidListingType
	}
	if listedPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Listing{
		PropertyID:  propertyID,
		ListingType: listingType,
		ListedPrice: listedPrice,
		ListingDate: listingDate,
		ExpiryDate:  expiryDate,
	}, nil
}
