package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/AllanRye9/ort-backend/internal/domain/realty"
	"github.com/AllanRye9/ort-backend/internal/platform/persistence"
)

// PropertyRepository implements realty.PropertyRepository for PostgreSQL
type PropertyRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewPropertyRepository creates a new PostgreSQL property repository
func NewPropertyRepository(logger *slog.Logger, db *persistence.PostgresDB) realty.PropertyRepository {
	return &PropertyRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new property and fills in its generated ID
func (r *PropertyRepository) Create(ctx context.Context, property *realty.Property) error {
	query := `
		INSERT INTO properties (owner_id, agent_id, title, description, property_type, address, city, price, bedrooms, bathrooms, area_sqft, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		property.OwnerID,
		property.AgentID,
		property.Title,
		property.Description,
		property.PropertyType,
		property.Address,
		property.City,
		property.Price,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaSqft,
		property.Status,
		property.CreatedAt,
	).Scan(&property.ID)
	if err != nil {
		r.logger.Error("Failed to create property", "error", err)
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

// GetByID retrieves a property by its ID
func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*realty.Property, error) {
	query := `
		SELECT id, owner_id, agent_id, title, description, property_type, address, city, price, bedrooms, bathrooms, area_sqft, status, created_at
		FROM properties
		WHERE id = $1
	`

	var p realty.Property
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.OwnerID,
		&p.AgentID,
		&p.Title,
		&p.Description,
		&p.PropertyType,
		&p.Address,
		&p.City,
		&p.Price,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.AreaSqft,
		&p.Status,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, realty.ErrPropertyNotFound{ID: id}
		}
		r.logger.Error("Failed to get property", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return &p, nil
}

// List retrieves all properties ordered by ID
func (r *PropertyRepository) List(ctx context.Context) ([]realty.Property, error) {
	query := `
		SELECT id, owner_id, agent_id, title, description, property_type, address, city, price, bedrooms, bathrooms, area_sqft, status, created_at
		FROM properties
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list properties", "error", err)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var properties []realty.Property
	for rows.Next() {
		var p realty.Property
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.AgentID,
			&p.Title,
			&p.Description,
			&p.PropertyType,
			&p.Address,
			&p.City,
			&p.Price,
			&p.Bedrooms,
			&p.Bathrooms,
			&p.AreaSqft,
			&p.Status,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	return properties, nil
}

// Update rewrites a property's mutable fields
func (r *PropertyRepository) Update(ctx context.Context, property *realty.Property) error {
	query := `
		UPDATE properties
		SET owner_id = $2, agent_id = $3, title = $4, description = $5, property_type = $6, address = $7, city = $8, price = $9, bedrooms = $10, bathrooms = $11, area_sqft = $12, status = $13
		WHERE id = $1
	`

	tag, err := r.querier.Exec(ctx, query,
		property.ID,
		property.OwnerID,
		property.AgentID,
		property.Title,
		property.Description,
		property.PropertyType,
		property.Address,
		property.City,
		property.Price,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaSqft,
		property.Status,
	)
	if err != nil {
		r.logger.Error("Failed to update property", "id", property.ID, "error", err)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return realty.ErrPropertyNotFound{ID: property.ID}
	}

	return nil
}

// Delete removes a property. Its images, listings, inquiries, appointments
// and transactions go with it through the schema's cascade rules.
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM properties WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete property", "id", id, "error", err)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return realty.ErrPropertyNotFound{ID: id}
	}

	return nil
}

// PropertyImageRepository implements realty.PropertyImageRepository for PostgreSQL
type PropertyImageRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewPropertyImageRepository creates a new PostgreSQL property image repository
func NewPropertyImageRepository(logger *slog.Logger, db *persistence.PostgresDB) realty.PropertyImageRepository {
	return &PropertyImageRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new property image and fills in its generated ID
func (r *PropertyImageRepository) Create(ctx context.Context, image *realty.PropertyImage) error {
	query := `
		INSERT INTO property_images (property_id, image_url, is_primary)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		image.PropertyID,
		image.ImageURL,
		image.IsPrimary,
	).Scan(&image.ID)
	if err != nil {
		r.logger.Error("Failed to create property image", "error", err)
		return fmt.Errorf("failed to create property image: %w", err)
	}

	return nil
}

// GetByID retrieves a property image by its ID
func (r *PropertyImageRepository) GetByID(ctx context.Context, id int64) (*realty.PropertyImage, error) {
	query := `
		SELECT id, property_id, image_url, is_primary
		FROM property_images
		WHERE id = $1
	`

	var img realty.PropertyImage
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&img.ID,
		&img.PropertyID,
		&img.ImageURL,
		&img.IsPrimary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, realty.ErrImageNotFound{ID: id}
		}
		r.logger.Error("Failed to get property image", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get property image: %w", err)
	}

	return &img, nil
}

// List retrieves all property images ordered by ID
func (r *PropertyImageRepository) List(ctx context.Context) ([]realty.PropertyImage, error) {
	query := `
		SELECT id, property_id, image_url, is_primary
		FROM property_images
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list property images", "error", err)
		return nil, fmt.Errorf("failed to list property images: %w", err)
	}
	defer rows.Close()

	var images []realty.PropertyImage
	for rows.Next() {
		var img realty.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.ImageURL, &img.IsPrimary); err != nil {
			return nil, fmt.Errorf("failed to scan property image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate property images: %w", err)
	}

	return images, nil
}

// Delete removes a property image
func (r *PropertyImageRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM property_images WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete property image", "id", id, "error", err)
		return fmt.Errorf("failed to delete property image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return realty.ErrImageNotFound{ID: id}
	}

	return nil
}

// ListingRepository implements realty.ListingRepository for PostgreSQL
type ListingRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewListingRepository creates a new PostgreSQL listing repository
func NewListingRepository(logger *slog.Logger, db *persistence.PostgresDB) realty.ListingRepository {
	return &ListingRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new listing and fills in its generated ID
func (r *ListingRepository) Create(ctx context.Context, listing *realty.Listing) error {
	query := `
		INSERT INTO listings (property_id, listing_type, listed_price, listing_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		listing.PropertyID,
		listing.ListingType,
		listing.ListedPrice,
		listing.ListingDate,
		listing.ExpiryDate,
	).Scan(&listing.ID)
	if err != nil {
		r.logger.Error("Failed to create listing", "error", err)
		return fmt.Errorf("failed to create listing: %w", err)
	}

	return nil
}

// GetByID retrieves a listing by its ID
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*realty.Listing, error) {
	query := `
		SELECT id, property_id, listing_type, listed_price, listing_date, expiry_date
		FROM listings
		WHERE id = $1
	`

	var l realty.Listing
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.PropertyID,
		&l.ListingType,
		&l.ListedPrice,
		&l.ListingDate,
		&l.ExpiryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, realty.ErrListingNotFound{ID: id}
		}
		r.logger.Error("Failed to get listing", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &l, nil
}

// List retrieves all listings ordered by ID
func (r *ListingRepository) List(ctx context.Context) ([]realty.Listing, error) {
	query := `
		SELECT id, property_id, listing_type, listed_price, listing_date, expiry_date
		FROM listings
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list listings", "error", err)
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	var listings []realty.Listing
	for rows.Next() {
		var l realty.Listing
		if err := rows.Scan(
			&l.ID,
			&l.PropertyID,
			&l.ListingType,
			&l.ListedPrice,
			&l.ListingDate,
			&l.ExpiryDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}

	return listings, nil
}
