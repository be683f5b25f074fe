package handlers

import (
	"net/http"
	"time"

	"ensemble-backend/internal/repository"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SnapshotHandler handles HTTP requests for turnover snapshot operations
type SnapshotHandler struct {
	snapshotService service.SnapshotServiceInterface
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(snapshotService service.SnapshotServiceInterface) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// Create handles POST /snapshots
// @Summary Snapshot a scope's latest completed turnover
// @Description One snapshot per scope per day; a repeat attempt conflicts
// @Tags snapshots
// @Accept json
// @Produce json
// @Param request body service.CreateSnapshotRequest true "Snapshot scope and date"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Failure 409 {object} handlers.Response
// @Router /snapshots [post]
func (h *SnapshotHandler) Create(c *gin.Context) {
	var req service.CreateSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	snapshot, err := h.snapshotService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, snapshot)
}

// Get handles GET /snapshots/:id
// @Summary Get a snapshot
// @Tags snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /snapshots/{id} [get]
func (h *SnapshotHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	snapshot, err := h.snapshotService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, snapshot)
}

// GetByDate handles GET /teams/:id/snapshots/:date
// @Summary Get a scope's snapshot for a date
// @Tags snapshots
// @Produce json
// @Param id path string true "Team ID"
// @Param date path string true "Snapshot date (YYYY-MM-DD)"
// @Param application_id query string false "Application scope"
// @Param sub_application_id query string false "Sub-application scope"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /teams/{id}/snapshots/{date} [get]
func (h *SnapshotHandler) GetByDate(c *gin.Context) {
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

	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}

	scope := repository.TurnoverScope{
		TeamID:           teamID,
		ApplicationID:    applicationID,
		SubApplicationID: subApplicationID,
	}
	snapshot, err := h.snapshotService.GetByDate(scope, date)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, snapshot)
}

// ListByTeam handles GET /teams/:id/snapshots
// @Summary List a team's snapshots
// @Tags snapshots
// @Produce json
// @Param id path string true "Team ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Router /teams/{id}/snapshots [get]
func (h *SnapshotHandler) ListByTeam(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
			return
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
			return
		}
		to = &parsed
	}
	page, pageSize := pageParams(c)

	snapshots, total, err := h.snapshotService.ListByTeam(teamID, from, to, page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	respondList(c, snapshots, page, pageSize, total)
}
