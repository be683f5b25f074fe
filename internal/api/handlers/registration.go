package handlers

import (
	"net/http"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for team registration
type RegistrationHandler struct {
	registrationService service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// Submit handles POST /registrations
// @Summary Submit a team registration request
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body service.SubmitRegistrationRequest true "Registration details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Router /registrations [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req service.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	request, err := h.registrationService.Submit(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, request)
}

// Get handles GET /registrations/:id
// @Summary Get a registration request
// @Tags registrations
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /registrations/{id} [get]
func (h *RegistrationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.registrationService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, request)
}

// List handles GET /registrations
// @Summary List registration requests
// @Tags registrations
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Router /registrations [get]
func (h *RegistrationHandler) List(c *gin.Context) {
	var status *models.RegistrationStatus
	if raw := c.Query("status"); raw != "" {
		s := models.RegistrationStatus(raw)
		status = &s
	}
	page, pageSize := pageParams(c)

	requests, total, err := h.registrationService.List(status, page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	respondList(c, requests, page, pageSize, total)
}

// Approve handles POST /registrations/:id/approve
// @Summary Approve a registration request
// @Description Approves a pending request and creates the team
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body service.ReviewRequest true "Review details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Router /registrations/{id}/approve [post]
func (h *RegistrationHandler) Approve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	team, err := h.registrationService.Approve(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, team)
}

// Reject handles POST /registrations/:id/reject
// @Summary Reject a registration request
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body service.ReviewRequest true "Review details"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Router /registrations/{id}/reject [post]
func (h *RegistrationHandler) Reject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.registrationService.Reject(id, &req); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "registration request rejected")
}
