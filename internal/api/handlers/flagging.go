package handlers

import (
	"net/http"

	"ensemble-backend/internal/auth"
	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FlaggingHandler handles HTTP requests for entry flagging operations
type FlaggingHandler struct {
	flaggingService service.FlaggingServiceInterface
}

// NewFlaggingHandler creates a new flagging handler
func NewFlaggingHandler(flaggingService service.FlaggingServiceInterface) *FlaggingHandler {
	return &FlaggingHandler{flaggingService: flaggingService}
}

// Flag handles POST /entries/:id/flag
// @Summary Set an entry's priority
// @Tags flagging
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body service.FlagEntryRequest true "Priority and optional comment"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /entries/{id}/flag [post]
func (h *FlaggingHandler) Flag(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.FlagEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.EntryID = id
	req.SetBy = auth.CurrentUser(c)

	if err := h.flaggingService.FlagEntry(&req); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "entry flagged")
}

// Unflag handles POST /entries/:id/unflag
// @Summary Reset an entry's priority to normal
// @Tags flagging
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /entries/{id}/unflag [post]
func (h *FlaggingHandler) Unflag(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.flaggingService.UnflagEntry(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "entry unflagged")
}

// BulkFlag handles POST /entries/bulk-flag
// @Summary Set priority on several entries at once
// @Tags flagging
// @Accept json
// @Produce json
// @Param request body service.BulkFlagRequest true "Entry ids, priority and optional comment"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Router /entries/bulk-flag [post]
func (h *FlaggingHandler) BulkFlag(c *gin.Context) {
	var req service.BulkFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.SetBy = auth.CurrentUser(c)

	result, err := h.flaggingService.BulkFlagEntries(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, result)
}

// ListFlagged handles GET /teams/:id/flagged
// @Summary List a team's flagged entries
// @Tags flagging
// @Produce json
// @Param id path string true "Team ID"
// @Param application_id query string false "Application scope"
// @Param sub_application_id query string false "Sub-application scope"
// @Param priority query string false "Filter by priority"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Router /teams/{id}/flagged [get]
func (h *FlaggingHandler) ListFlagged(c *gin.Context) {
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

	var priority *models.EntryPriority
	if raw := c.Query("priority"); raw != "" {
		p := models.EntryPriority(raw)
		priority = &p
	}

	entries, err := h.flaggingService.GetFlaggedEntries(teamID, applicationID, subApplicationID, priority)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, entries)
}

// FlaggedCounts handles GET /teams/:id/flagged/counts
// @Summary Count a team's flagged entries by priority and type
// @Tags flagging
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} handlers.Response
// @Router /teams/{id}/flagged/counts [get]
func (h *FlaggingHandler) FlaggedCounts(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	counts, err := h.flaggingService.GetFlaggedCounts(teamID)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, counts)
}
