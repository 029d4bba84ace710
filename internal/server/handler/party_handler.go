package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AllanRye9/ort-backend/internal/domain/party"
	"github.com/AllanRye9/ort-backend/internal/server/service"
)

// parseIDParam reads the :id path parameter as a positive integer
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondBadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(logger *slog.Logger, userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Create handles creation of a new user
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), party.Role(req.Role), req.FirstName, req.LastName, req.Email, req.Phone, req.Password)
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, user)
}

// GetByID retrieves a user by its ID
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, user)
}

// List retrieves all users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list users", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, users)
}

// Update rewrites a user's fields
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, party.Role(req.Role), req.FirstName, req.LastName, req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, party.ErrUserNotFound{}) {
			RespondNotFound(c, "User not found")
			return
		}
		respondWriteError(c, h.logger, err)
		return
	}

	RespondOK(c, user)
}

// Delete removes a user
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondNoContent(c)
}

// ClientHandler handles HTTP requests for client operations
type ClientHandler struct {
	clientService service.ClientService
	logger        *slog.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(logger *slog.Logger, clientService service.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

// Create handles creation of a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req.AgentID, req.FirstName, req.LastName, req.Email, req.Phone, party.ClientType(req.ClientType))
	if err != nil {
		respondWriteError(c, h.logger, err)
		return
	}

	RespondCreated(c, client)
}

// GetByID retrieves a client by its ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondOK(c, client)
}

// List retrieves all clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list clients", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, clients)
}

// Update rewrites a client's fields
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, req.AgentID, req.FirstName, req.LastName, req.Email, req.Phone, party.ClientType(req.ClientType))
	if err != nil {
		if errors.Is(err, party.ErrClientNotFound{}) {
			RespondNotFound(c, "Client not found")
			return
		}
		respondWriteError(c, h.logger, err)
		return
	}

	RespondOK(c, client)
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		respondLookupError(c, h.logger, err)
		return
	}

	RespondNoContent(c)
}
