package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/AllanRye9/ort-backend/internal/server/service"
)

// EngagementHandler handles HTTP requests for inquiries and appointments
type EngagementHandler struct {
	engagementService service.EngagementService
	logger            *slog.Logger
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(logger *slog.Logger, engagementService service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
		logger:            logger,
	}
}

// CreateInquiry records a prospect message
func (h *EngagementHandler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inquiry, err := h.engagementService.CreateInquiry(c.Request.Context(), req.PropertyID, req.ClientID, req.Message)
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, inquiry)
}

// GetInquiryByID retrieves an inquiry by its ID
func (h *EngagementHandler) GetInquiryByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	inquiry, err := h.engagementService.GetInquiry(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, inquiry)
}

// ListInquiries retrieves all inquiries
func (h *EngagementHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.engagementService.ListInquiries(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list inquiries", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, inquiries)
}

// CreateAppointment books a viewing
func (h *EngagementHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	appointment, err := h.engagementService.CreateAppointment(c.Request.Context(), req.PropertyID, req.AgentID, req.ClientID, req.AppointmentDate)
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, appointment)
}

// GetAppointmentByID retrieves an appointment by its ID
func (h *EngagementHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	appointment, err := h.engagementService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, appointment)
}

// ListAppointments retrieves all appointments
func (h *EngagementHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.engagementService.ListAppointments(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list appointments", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, appointments)
}
