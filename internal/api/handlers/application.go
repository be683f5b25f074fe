package handlers

import (
	"net/http"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles HTTP requests for application operations
type ApplicationHandler struct {
	applicationService service.ApplicationServiceInterface
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService service.ApplicationServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Create handles POST /applications
// @Summary Create an application
// @Tags applications
// @Accept json
// @Produce json
// @Param request body service.CreateApplicationRequest true "Application details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req service.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	app, err := h.applicationService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, app)
}

// Get handles GET /applications/:id
// @Summary Get an application with its sub-applications
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.applicationService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, app)
}

// ListByTeam handles GET /teams/:id/applications
// @Summary List a team's applications
// @Tags applications
// @Produce json
// @Param id path string true "Team ID"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Router /teams/{id}/applications [get]
func (h *ApplicationHandler) ListByTeam(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var status *models.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ApplicationStatus(raw)
		status = &s
	}
	page, pageSize := pageParams(c)

	apps, total, err := h.applicationService.GetByTeam(teamID, status, page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	respondList(c, apps, page, pageSize, total)
}

// Update handles PUT /applications/:id
// @Summary Update an application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body service.UpdateApplicationRequest true "Application details"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Router /applications/{id} [put]
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	app, err := h.applicationService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, app)
}

// Delete handles DELETE /applications/:id
// @Summary Soft-delete an application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "application deleted")
}

// Archive handles POST /applications/:id/archive
// @Summary Archive an application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /applications/{id}/archive [post]
func (h *ApplicationHandler) Archive(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Archive(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "application archived")
}

// AddFromCentralAPI handles POST /applications/import
// @Summary Import an application from the Central API
// @Description Fetches the asset by id and creates the application with its ownership roles
// @Tags applications
// @Accept json
// @Produce json
// @Param request body service.AddFromCentralAPIRequest true "Import details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Failure 502 {object} handlers.Response
// @Router /applications/import [post]
func (h *ApplicationHandler) AddFromCentralAPI(c *gin.Context) {
	var req service.AddFromCentralAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	app, err := h.applicationService.AddFromCentralAPI(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, app)
}

// SyncFromCentralAPI handles POST /applications/:id/sync
// @Summary Refresh an application from the Central API
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 502 {object} handlers.Response
// @Router /applications/{id}/sync [post]
func (h *ApplicationHandler) SyncFromCentralAPI(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.applicationService.SyncFromCentralAPI(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, app)
}
