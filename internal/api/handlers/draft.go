package handlers

import (
	"net/http"

	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DraftHandler handles HTTP requests for turnover draft operations
type DraftHandler struct {
	draftService service.DraftServiceInterface
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService service.DraftServiceInterface) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Save handles PUT /drafts
// @Summary Save a turnover draft
// @Description Upserts the scope's single working draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body service.SaveDraftRequest true "Draft payload"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /drafts [put]
func (h *DraftHandler) Save(c *gin.Context) {
	var req service.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.draftService.SaveDraft(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, result)
}

// AutoSave handles PUT /drafts/autosave
// @Summary Auto-save a turnover draft
// @Description Same semantics as save, recorded separately in metrics
// @Tags drafts
// @Accept json
// @Produce json
// @Param request body service.SaveDraftRequest true "Draft payload"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /drafts/autosave [put]
func (h *DraftHandler) AutoSave(c *gin.Context) {
	var req service.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.draftService.AutoSaveDraft(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, result)
}

// Get handles GET /teams/:id/draft
// @Summary Get a scope's working draft
// @Description Returns null data when the scope has no draft
// @Tags drafts
// @Produce json
// @Param id path string true "Team ID"
// @Param application_id query string false "Application scope"
// @Param sub_application_id query string false "Sub-application scope"
// @Success 200 {object} handlers.Response
// @Router /teams/{id}/draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
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

	draft, err := h.draftService.GetDraft(teamID, applicationID, subApplicationID)
	if err != nil {
		handleError(c, err)
		return
	}
	if draft == nil {
		respondOK(c, nil)
		return
	}
	respondOK(c, draft)
}

// List handles GET /teams/:id/drafts
// @Summary List a team's drafts
// @Tags drafts
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} handlers.Response
// @Router /teams/{id}/drafts [get]
func (h *DraftHandler) List(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	drafts, err := h.draftService.ListDrafts(teamID)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, drafts)
}

// Delete handles DELETE /drafts/:id
// @Summary Discard a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.draftService.DeleteDraft(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "draft discarded")
}

// Prefill handles GET /teams/:id/prefill
// @Summary Get prefill data for the turnover form
// @Description Falls back from the scope's draft to its latest completed turnover to an empty shell
// @Tags drafts
// @Produce json
// @Param id path string true "Team ID"
// @Param application_id query string false "Application scope"
// @Param sub_application_id query string false "Sub-application scope"
// @Param handover_from query string false "Default outgoing person"
// @Param handover_to query string false "Default incoming person"
// @Success 200 {object} handlers.Response
// @Router /teams/{id}/prefill [get]
func (h *DraftHandler) Prefill(c *gin.Context) {
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

	prefill, err := h.draftService.GetPrefillData(teamID, applicationID, subApplicationID, c.Query("handover_from"), c.Query("handover_to"))
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, prefill)
}
