package handlers

import (
	"net/http"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TurnoverHandler handles HTTP requests for turnover operations
type TurnoverHandler struct {
	turnoverService service.TurnoverServiceInterface
}

// NewTurnoverHandler creates a new turnover handler
func NewTurnoverHandler(turnoverService service.TurnoverServiceInterface) *TurnoverHandler {
	return &TurnoverHandler{turnoverService: turnoverService}
}

// Create handles POST /turnovers
// @Summary Create a turnover
// @Tags turnovers
// @Accept json
// @Produce json
// @Param request body service.CreateTurnoverRequest true "Turnover details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /turnovers [post]
func (h *TurnoverHandler) Create(c *gin.Context) {
	var req service.CreateTurnoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	turnover, err := h.turnoverService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, turnover)
}

// Get handles GET /turnovers/:id
// @Summary Get a turnover with its entries
// @Tags turnovers
// @Produce json
// @Param id path string true "Turnover ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /turnovers/{id} [get]
func (h *TurnoverHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	turnover, err := h.turnoverService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, turnover)
}

// ListByTeam handles GET /teams/:id/turnovers
// @Summary List a team's turnovers
// @Tags turnovers
// @Produce json
// @Param id path string true "Team ID"
// @Param application_id query string false "Filter by application"
// @Param sub_application_id query string false "Filter by sub-application"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Router /teams/{id}/turnovers [get]
func (h *TurnoverHandler) ListByTeam(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	applicationID, ok := parseUUIDQuery(c, "application_id")
	if !ok {
		return
	}
	subApplicationID, ok := parseUUIDQuery(c, "sub_application_id")
	if !ok {
		return
	}

	var status *models.TurnoverStatus
	if raw := c.Query("status"); raw != "" {
		s := models.TurnoverStatus(raw)
		status = &s
	}
	page, pageSize := pageParams(c)

	turnovers, total, err := h.turnoverService.List(teamID, applicationID, subApplicationID, status, page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	respondList(c, turnovers, page, pageSize, total)
}

// Complete handles POST /turnovers/:id/complete
// @Summary Complete a turnover
// @Description Marks the turnover completed and discards the scope's working draft
// @Tags turnovers
// @Produce json
// @Param id path string true "Turnover ID"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /turnovers/{id}/complete [post]
func (h *TurnoverHandler) Complete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	turnover, err := h.turnoverService.Complete(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, turnover)
}

// Archive handles POST /turnovers/:id/archive
// @Summary Archive a turnover
// @Tags turnovers
// @Produce json
// @Param id path string true "Turnover ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /turnovers/{id}/archive [post]
func (h *TurnoverHandler) Archive(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.turnoverService.Archive(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "turnover archived")
}

// AddEntry handles POST /turnovers/:id/entries
// @Summary Add an entry to a turnover
// @Tags turnovers
// @Accept json
// @Produce json
// @Param id path string true "Turnover ID"
// @Param request body service.CreateEntryRequest true "Entry details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /turnovers/{id}/entries [post]
func (h *TurnoverHandler) AddEntry(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	entry, err := h.turnoverService.AddEntry(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, entry)
}

// GetEntry handles GET /entries/:id
// @Summary Get a turnover entry
// @Tags turnovers
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /entries/{id} [get]
func (h *TurnoverHandler) GetEntry(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.turnoverService.GetEntry(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, entry)
}

// UpdateEntry handles PUT /entries/:id
// @Summary Update a turnover entry
// @Tags turnovers
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body service.UpdateEntryRequest true "Entry details"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /entries/{id} [put]
func (h *TurnoverHandler) UpdateEntry(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	entry, err := h.turnoverService.UpdateEntry(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, entry)
}

// DeleteEntry handles DELETE /entries/:id
// @Summary Delete a turnover entry
// @Tags turnovers
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /entries/{id} [delete]
func (h *TurnoverHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.turnoverService.DeleteEntry(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "entry deleted")
}
