package realty

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty(t *testing.T) {
	t.Run("SuccessfulCreation", func(t *testing.T) {
		ownerID := int64(2)
		p, err := NewProperty(&ownerID, nil, "Sunny Villa", "3-bed with garden", PropertyTypeHouse,
			"12 Palm Street", "Marbella", decimal.NewFromInt(450000), 3, 2, 1800)

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, PropertyStatusAvailable, p.Status, "new properties start available")
		assert.True(t, p.Price.Equal(decimal.NewFromInt(450000)))
		assert.Nil(t, p.AgentID)
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		_, err := NewProperty(nil, nil, "", "", PropertyTypeHouse, "12 Palm Street", "", decimal.NewFromInt(1), 0, 0, 0)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("EmptyAddress", func(t *testing.T) {
		_, err := NewProperty(nil, nil, "Sunny Villa", "", PropertyTypeHouse, "", "", decimal.NewFromInt(1), 0, 0, 0)
		assert.ErrorIs(t, err, ErrEmptyAddress)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		_, err := NewProperty(nil, nil, "Sunny Villa", "", PropertyTypeHouse, "12 Palm Street", "", decimal.NewFromInt(-1), 0, 0, 0)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := NewProperty(nil, nil, "Sunny Villa", "", "castle", "12 Palm Street", "", decimal.NewFromInt(1), 0, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidPropertyType)
	})
}

func TestNewPropertyImage(t *testing.T) {
	t.Run("SuccessfulCreation", func(t *testing.T) {
		img, err := NewPropertyImage(4, "https://img.example/villa.jpg", true)
		require.NoError(t, err)
		assert.Equal(t, int64(4), img.PropertyID)
		assert.True(t, img.IsPrimary)
	})

	t.Run("EmptyURL", func(t *testing.T) {
		_, err := NewPropertyImage(4, "", false)
		assert.ErrorIs(t, err, ErrEmptyImageURL)
	})
}

func TestNewListing(t *testing.T) {
	listingDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("SuccessfulCreation", func(t *testing.T) {
		expiry := listingDate.AddDate(0, 6, 0)
		l, err := NewListing(4, ListingTypeSale, decimal.NewFromInt(475000), listingDate, &expiry)
		require.NoError(t, err)
		assert.Equal(t, ListingTypeSale, l.ListingType)
		require.NotNil(t, l.ExpiryDate)
		assert.Equal(t, expiry, *l.ExpiryDate)
	})

	t.Run("OpenEnded", func(t *testing.T) {
		l, err := NewListing(4, ListingTypeRent, decimal.NewFromInt(1500), listingDate, nil)
		require.NoError(t, err)
		assert.Nil(t, l.ExpiryDate)
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := NewListing(4, "lease", decimal.NewFromInt(1500), listingDate, nil)
		assert.ErrorIs(t, err, ErrInvalidListingType)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		_, err := NewListing(4, ListingTypeSale, decimal.NewFromInt(-5), listingDate, nil)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})
}
