package handlers

import (
	"net/http"

	"ensemble-backend/internal/auth"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ToolSettingsHandler handles HTTP requests for tool settings operations
type ToolSettingsHandler struct {
	toolSettingsService service.ToolSettingsServiceInterface
}

// NewToolSettingsHandler creates a new tool settings handler
func NewToolSettingsHandler(toolSettingsService service.ToolSettingsServiceInterface) *ToolSettingsHandler {
	return &ToolSettingsHandler{toolSettingsService: toolSettingsService}
}

// ListTools handles GET /tools
// @Summary List tool settings templates
// @Tags tools
// @Produce json
// @Success 200 {object} handlers.Response
// @Router /tools [get]
func (h *ToolSettingsHandler) ListTools(c *gin.Context) {
	tools, err := h.toolSettingsService.ListTools()
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, tools)
}

// GetEffective handles GET /teams/:id/tools/:tool
// @Summary Get a team's effective settings for a tool
// @Description Merges the template, global and team layers, later layers winning per key
// @Tags tools
// @Produce json
// @Param id path string true "Team ID"
// @Param tool path string true "Tool name"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /teams/{id}/tools/{tool} [get]
func (h *ToolSettingsHandler) GetEffective(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	effective, err := h.toolSettingsService.GetEffective(teamID, c.Param("tool"))
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, effective)
}

// UpdateGlobal handles PUT /tools/:tool/global
// @Summary Replace a tool's global override layer
// @Tags tools
// @Accept json
// @Produce json
// @Param tool path string true "Tool name"
// @Param request body service.UpdateSettingsRequest true "Settings document"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /tools/{tool}/global [put]
func (h *ToolSettingsHandler) UpdateGlobal(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UpdatedBy == "" {
		req.UpdatedBy = auth.CurrentUser(c)
	}

	settings, err := h.toolSettingsService.UpdateGlobal(c.Param("tool"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, settings)
}

// UpdateTeam handles PUT /teams/:id/tools/:tool
// @Summary Replace one team's override layer for a tool
// @Tags tools
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param tool path string true "Tool name"
// @Param request body service.UpdateSettingsRequest true "Settings document"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /teams/{id}/tools/{tool} [put]
func (h *ToolSettingsHandler) UpdateTeam(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UpdatedBy == "" {
		req.UpdatedBy = auth.CurrentUser(c)
	}

	settings, err := h.toolSettingsService.UpdateTeam(teamID, c.Param("tool"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, settings)
}
