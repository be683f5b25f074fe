package handlers

import (
	"errors"
	"net/http"

	apperrors "ensemble-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Response is the envelope wrapping every API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

// ListMeta carries pagination details for list responses
type ListMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func respondList(c *gin.Context, data interface{}, page, pageSize int, total int64) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    &ListMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Error: message})
}

// handleError maps service errors onto HTTP status codes
func handleError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidEntryType),
		errors.Is(err, apperrors.ErrInvalidPriority),
		errors.Is(err, apperrors.ErrNoEntryIDs),
		errors.Is(err, apperrors.ErrTeamInactive):
		respondError(c, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		respondError(c, http.StatusConflict, err.Error())
	case apperrors.IsExternal(err):
		respondError(c, http.StatusBadGateway, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

// parseUUIDParam reads a uuid path parameter, responding 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDQuery reads an optional uuid query parameter
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+name+" format")
		return nil, false
	}
	return &id, true
}
