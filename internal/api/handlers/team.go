package handlers

import (
	"net/http"
	"strconv"

	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List handles GET /teams
// @Summary List teams
// @Description List teams with pagination, optionally active only
// @Tags teams
// @Produce json
// @Param active_only query bool false "Only active teams"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.Response
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"
	page, pageSize := pageParams(c)

	teams, total, err := h.teamService.List(activeOnly, page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	respondList(c, teams, page, pageSize, total)
}

// Get handles GET /teams/:id
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /teams/{id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, team)
}

// GetByName handles GET /teams/by-name/:name
// @Summary Get a team by name
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /teams/by-name/{name} [get]
func (h *TeamHandler) GetByName(c *gin.Context) {
	team, err := h.teamService.GetByName(c.Param("name"))
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, team)
}

// Update handles PUT /teams/:id
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body service.UpdateTeamRequest true "Team details"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /teams/{id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, team)
}

// Deactivate handles POST /teams/:id/deactivate
// @Summary Deactivate a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /teams/{id}/deactivate [post]
func (h *TeamHandler) Deactivate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Deactivate(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "team deactivated")
}

// Reactivate handles POST /teams/:id/reactivate
// @Summary Reactivate a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /teams/{id}/reactivate [post]
func (h *TeamHandler) Reactivate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Reactivate(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "team reactivated")
}

// pageParams reads page/page_size query parameters with defaults
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
