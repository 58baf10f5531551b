package handlers

import (
	"net/http"

	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/logger"
	"admin-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope every API endpoint answers with
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ListEnvelope is the envelope of list endpoints
type ListEnvelope struct {
	Success    bool               `json:"success"`
	Data       interface{}        `json:"data"`
	Pagination service.Pagination `json:"pagination"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func respondList[T any](c *gin.Context, page *service.ListResponse[T]) {
	c.JSON(http.StatusOK, ListEnvelope{Success: true, Data: page.Items, Pagination: page.Pagination})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Error: message})
}

// handleError maps a service error onto the HTTP status taxonomy. Unexpected errors
// are logged and answered with a generic message.
func handleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err):
		respondError(c, http.StatusBadRequest, apperrors.PublicMessage(err))
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, apperrors.PublicMessage(err))
	default:
		_ = c.Error(err)
		logger.WithContext(c.Request.Context()).WithError(err).WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"route":  c.FullPath(),
		}).Error("request failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseID reads the :id path parameter; on failure it answers 400 and returns false
func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body; on failure it answers 400 and returns false
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// bindListQuery decodes the list query string; on failure it answers 400 and returns false
func bindListQuery(c *gin.Context, q *service.ListQuery) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return false
	}
	return true
}
