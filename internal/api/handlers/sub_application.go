package handlers

import (
	"net/http"

	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubApplicationHandler handles HTTP requests for sub-application operations
type SubApplicationHandler struct {
	subApplicationService service.SubApplicationServiceInterface
}

// NewSubApplicationHandler creates a new sub-application handler
func NewSubApplicationHandler(subApplicationService service.SubApplicationServiceInterface) *SubApplicationHandler {
	return &SubApplicationHandler{subApplicationService: subApplicationService}
}

// Create handles POST /sub-applications
// @Summary Create a sub-application
// @Tags sub-applications
// @Accept json
// @Produce json
// @Param request body service.CreateSubApplicationRequest true "Sub-application details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Router /sub-applications [post]
func (h *SubApplicationHandler) Create(c *gin.Context) {
	var req service.CreateSubApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sub, err := h.subApplicationService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, sub)
}

// Get handles GET /sub-applications/:id
// @Summary Get a sub-application
// @Tags sub-applications
// @Produce json
// @Param id path string true "Sub-application ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /sub-applications/{id} [get]
func (h *SubApplicationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := h.subApplicationService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, sub)
}

// ListByApplication handles GET /applications/:id/sub-applications
// @Summary List an application's sub-applications
// @Tags sub-applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.Response
// @Router /applications/{id}/sub-applications [get]
func (h *SubApplicationHandler) ListByApplication(c *gin.Context) {
	applicationID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	subs, err := h.subApplicationService.GetByApplication(applicationID)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, subs)
}

// Update handles PUT /sub-applications/:id
// @Summary Update a sub-application
// @Tags sub-applications
// @Accept json
// @Produce json
// @Param id path string true "Sub-application ID"
// @Param request body service.UpdateSubApplicationRequest true "Sub-application details"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Router /sub-applications/{id} [put]
func (h *SubApplicationHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSubApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sub, err := h.subApplicationService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, sub)
}

// Delete handles DELETE /sub-applications/:id
// @Summary Delete a sub-application
// @Tags sub-applications
// @Produce json
// @Param id path string true "Sub-application ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /sub-applications/{id} [delete]
func (h *SubApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.subApplicationService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "sub-application deleted")
}
