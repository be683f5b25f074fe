package handlers

import (
	"net/http"
	"strconv"

	"ensemble-backend/internal/auth"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles HTTP requests for link operations
type LinkHandler struct {
	linkService service.LinkServiceInterface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkService service.LinkServiceInterface) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// tagRequest carries a tag name in attach/detach payloads
type tagRequest struct {
	Name string `json:"name"`
}

// Create handles POST /links
// @Summary Create a link
// @Tags links
// @Accept json
// @Produce json
// @Param request body service.CreateLinkRequest true "Link details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req service.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	link, err := h.linkService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, link)
}

// Get handles GET /links/:id
// @Summary Get a link with its tags
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /links/{id} [get]
func (h *LinkHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	link, err := h.linkService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, link)
}

// ListByTeam handles GET /teams/:id/links
// @Summary List a team's links
// @Tags links
// @Produce json
// @Param id path string true "Team ID"
// @Param category_id query string false "Filter by category"
// @Param tag query string false "Filter by tag name"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Router /teams/{id}/links [get]
func (h *LinkHandler) ListByTeam(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	categoryID, ok := parseUUIDQuery(c, "category_id")
	if !ok {
		return
	}

	links, err := h.linkService.GetByTeam(teamID, categoryID, c.Query("tag"))
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, links)
}

// Update handles PUT /links/:id
// @Summary Update a link
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param request body service.UpdateLinkRequest true "Link details"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /links/{id} [put]
func (h *LinkHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	link, err := h.linkService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, link)
}

// Delete handles DELETE /links/:id
// @Summary Delete a link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.linkService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "link deleted")
}

// AddTag handles POST /links/:id/tags
// @Summary Attach a tag to a link
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param request body handlers.tagRequest true "Tag name"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /links/{id}/tags [post]
func (h *LinkHandler) AddTag(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	link, err := h.linkService.AddTag(id, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, link)
}

// RemoveTag handles DELETE /links/:id/tags/:name
// @Summary Detach a tag from a link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Param name path string true "Tag name"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /links/{id}/tags/{name} [delete]
func (h *LinkHandler) RemoveTag(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.linkService.RemoveTag(id, c.Param("name")); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "tag removed")
}

// CreateCategory handles POST /link-categories
// @Summary Create a link category
// @Description A category without a team id is shared across teams
// @Tags links
// @Accept json
// @Produce json
// @Param request body service.CreateCategoryRequest true "Category details"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /link-categories [post]
func (h *LinkHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	category, err := h.linkService.CreateCategory(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondCreated(c, category)
}

// ListCategories handles GET /teams/:id/link-categories
// @Summary List a team's categories plus the shared ones
// @Tags links
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} handlers.Response
// @Router /teams/{id}/link-categories [get]
func (h *LinkHandler) ListCategories(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	categories, err := h.linkService.GetCategories(teamID)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, categories)
}

// DeleteCategory handles DELETE /link-categories/:id
// @Summary Delete a category, leaving its links uncategorized
// @Tags links
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /link-categories/{id} [delete]
func (h *LinkHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.linkService.DeleteCategory(id); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "category deleted")
}

// RecordAccess handles POST /links/:id/access
// @Summary Record one access of a link
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.Response
// @Router /links/{id}/access [post]
func (h *LinkHandler) RecordAccess(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.linkService.RecordAccess(id, auth.CurrentUser(c)); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, "access recorded")
}

// Popular handles GET /teams/:id/links/popular
// @Summary List a team's most accessed links
// @Tags links
// @Produce json
// @Param id path string true "Team ID"
// @Param limit query int false "Maximum links to return"
// @Success 200 {object} handlers.Response
// @Router /teams/{id}/links/popular [get]
func (h *LinkHandler) Popular(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	popular, err := h.linkService.GetPopular(teamID, limit)
	if err != nil {
		handleError(c, err)
		return
	}
	respondOK(c, popular)
}
