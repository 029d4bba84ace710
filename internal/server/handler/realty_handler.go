package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AllanRye9/ort-backend/internal/domain/realty"
	"github.com/AllanRye9/ort-backend/internal/server/service"
)

// PropertyHandler handles HTTP requests for properties, their images and
// their listings
type PropertyHandler struct {
	propertyService service.PropertyService
	logger          *slog.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(logger *slog.Logger, propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		logger:          logger,
	}
}

func propertyParams(req CreatePropertyRequest) service.PropertyParams {
	return service.PropertyParams{
		OwnerID:      req.OwnerID,
		AgentID:      req.AgentID,
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: realty.PropertyType(req.PropertyType),
		Address:      req.Address,
		City:         req.City,
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqft:     req.AreaSqft,
	}
}

// Create handles creation of a new property
func (h *PropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), propertyParams(req))
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, property)
}

// GetByID retrieves a property by its ID
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, property)
}

// List retrieves all properties
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.propertyService.ListProperties(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list properties", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, properties)
}

// Update rewrites a property's fields and status
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	property, err := h.propertyService.UpdateProperty(c.Request.Context(), id, propertyParams(req.CreatePropertyRequest), realty.PropertyStatus(req.Status))
	if err != nil {
		if errors.Is(err, realty.ErrPropertyNotFound{}) {
			RespondNotFound(c, "Property not found")
			return
		}
		respondWriteError(c, h.logger, err)
		return
	}

	RespondOK(c, property)
}

// Delete removes a property and its dependent records
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.propertyService.DeleteProperty(c.Request.Context(), id); err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondNoContent(c)
}

// CreateImage attaches a photo to a property
func (h *PropertyHandler) CreateImage(c *gin.Context) {
	var req CreatePropertyImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	image, err := h.propertyService.AddImage(c.Request.Context(), req.PropertyID, req.ImageURL, req.IsPrimary)
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, image)
}

// GetImageByID retrieves a property image by its ID
func (h *PropertyHandler) GetImageByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	image, err := h.propertyService.GetImage(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, image)
}

// ListImages retrieves all property images
func (h *PropertyHandler) ListImages(c *gin.Context) {
	images, err := h.propertyService.ListImages(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list property images", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, images)
}

// DeleteImage removes a property image
func (h *PropertyHandler) DeleteImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.propertyService.DeleteImage(c.Request.Context(), id); err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondNoContent(c)
}

// CreateListing puts a property on the market
func (h *PropertyHandler) CreateListing(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	listingDate, err := parseDate(req.ListingDate)
	if err != nil {
		RespondBadRequest(c, "Invalid listing_date: "+err.Error())
		return
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := parseDate(req.ExpiryDate)
		if err != nil {
			RespondBadRequest(c, "Invalid expiry_date: "+err.Error())
			return
		}
		expiryDate = &parsed
	}

	listing, err := h.propertyService.CreateListing(c.Request.Context(), req.PropertyID, realty.ListingType(req.ListingType), req.ListedPrice, listingDate, expiryDate)
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, listing)
}

// GetListingByID retrieves a listing by its ID
func (h *PropertyHandler) GetListingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	listing, err := h.propertyService.GetListing(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, listing)
}

// ListListings retrieves all listings
func (h *PropertyHandler) ListListings(c *gin.Context) {
	listings, err := h.propertyService.ListListings(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list listings", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, listings)
}
