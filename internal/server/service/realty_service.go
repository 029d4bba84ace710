package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AllanRye9/ort-backend/internal/domain/party"
	"github.com/AllanRye9/ort-backend/internal/domain/realty"
)

// PropertyServiceImpl implements the PropertyService interface
type PropertyServiceImpl struct {
	propertyRepo realty.PropertyRepository
	imageRepo    realty.PropertyImageRepository
	listingRepo  realty.ListingRepository
	userRepo     party.UserRepository
	clientRepo   party.ClientRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(
	propertyRepo realty.PropertyRepository,
	imageRepo realty.PropertyImageRepository,
	listingRepo realty.ListingRepository,
	userRepo party.UserRepository,
	clientRepo party.ClientRepository,
) PropertyService {
	return &PropertyServiceImpl{
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		listingRepo:  listingRepo,
		userRepo:     userRepo,
		clientRepo:   clientRepo,
	}
}

// CreateProperty stores a new property after verifying its owner and agent
// references
func (s *PropertyServiceImpl) CreateProperty(ctx context.Context, params PropertyParams) (*realty.Property, error) {
	if err := s.checkReferences(ctx, params); err != nil {
		return nil, err
	}

	property, err := realty.NewProperty(
		params.OwnerID, params.AgentID,
		params.Title, params.Description, params.PropertyType,
		params.Address, params.City, params.Price,
		params.Bedrooms, params.Bathrooms, params.AreaSqft,
	)
	if err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// GetProperty retrieves a property by ID
func (s *PropertyServiceImpl) GetProperty(ctx context.Context, id int64) (*realty.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

// ListProperties retrieves all properties
func (s *PropertyServiceImpl) ListProperties(ctx context.Context) ([]realty.Property, error) {
	return s.propertyRepo.List(ctx)
}

// UpdateProperty rewrites a property's fields and status
func (s *PropertyServiceImpl) UpdateProperty(ctx context.Context, id int64, params PropertyParams, status realty.PropertyStatus) (*realty.Property, error) {
	existing, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, params); err != nil {
		return nil, err
	}

	property, err := realty.NewProperty(
		params.OwnerID, params.AgentID,
		params.Title, params.Description, params.PropertyType,
		params.Address, params.City, params.Price,
		params.Bedrooms, params.Bathrooms, params.AreaSqft,
	)
	if err != nil {
		return nil, err
	}
	property.ID = id
	property.Status = status
	property.CreatedAt = existing.CreatedAt

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// DeleteProperty removes a property along with its dependent records
func (s *PropertyServiceImpl) DeleteProperty(ctx context.Context, id int64) error {
	return s.propertyRepo.Delete(ctx, id)
}

// AddImage attaches a photo to an existing property
func (s *PropertyServiceImpl) AddImage(ctx context.Context, propertyID int64, imageURL string, isPrimary bool) (*realty.PropertyImage, error) {
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	image, err := realty.NewPropertyImage(propertyID, imageURL, isPrimary)
	if err != nil {
		return nil, err
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}

	return image, nil
}

// GetImage retrieves a property image by ID
func (s *PropertyServiceImpl) GetImage(ctx context.Context, id int64) (*realty.PropertyImage, error) {
	return s.imageRepo.GetByID(ctx, id)
}

// ListImages retrieves all property images
func (s *PropertyServiceImpl) ListImages(ctx context.Context) ([]realty.PropertyImage, error) {
	return s.imageRepo.List(ctx)
}

// DeleteImage removes a property image
func (s *PropertyServiceImpl) DeleteImage(ctx context.Context, id int64) error {
	return s.imageRepo.Delete(ctx, id)
}

// CreateListing puts an existing property on the market
func (s *PropertyServiceImpl) CreateListing(ctx context.Context, propertyID int64, listingType realty.ListingType, listedPrice decimal.Decimal, listingDate time.Time, expiryDate *time.Time) (*realty.Listing, error) {
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	if listingDate.IsZero() {
		listingDate = time.Now()
	}

	listing, err := realty.NewListing(propertyID, listingType, listedPrice, listingDate, expiryDate)
	if err != nil {
		return nil, err
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// GetListing retrieves a listing by ID
func (s *PropertyServiceImpl) GetListing(ctx context.Context, id int64) (*realty.Listing, error) {
	return s.listingRepo.GetByID(ctx, id)
}

// ListListings retrieves all listings
func (s *PropertyServiceImpl) ListListings(ctx context.Context) ([]realty.Listing, error) {
	return s.listingRepo.List(ctx)
}

func (s *PropertyServiceImpl) checkReferences(ctx context.Context, params PropertyParams) error {
	if params.OwnerID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *params.OwnerID); err != nil {
			return err
		}
	}
	if params.AgentID != nil {
		if _, err := s.userRepo.GetByID(ctx, *params.AgentID); err != nil {
			return err
		}
	}
	return nil
}
