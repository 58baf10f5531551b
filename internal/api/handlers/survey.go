package handlers

import (
	"net/http"

	"admin-console-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SurveyHandler handles HTTP requests for surveys
type SurveyHandler struct {
	service service.SurveyServiceInterface
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(service service.SurveyServiceInterface) *SurveyHandler {
	return &SurveyHandler{service: service}
}

// ListSurveys returns a page of surveys
// @Summary List surveys
// @Description List surveys with pagination, search on name and a status filter
// @Tags surveys
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Case-insensitive match on name"
// @Param status query string false "Status filter" Enums(active, inactive, completed)
// @Success 200 {object} ListEnvelope "Page of surveys"
// @Failure 400 {object} Response "Invalid query parameters"
// @Failure 500 {object} Response "Internal server error"
// @Router /surveys [get]
func (h *SurveyHandler) ListSurveys(c *gin.Context) {
	var q service.ListQuery
	if !bindListQuery(c, &q) {
		return
	}

	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}

	respondList(c, page)
}

// GetSurvey retrieves a survey by ID
// @Summary Get survey by ID
// @Tags surveys
// @Produce json
// @Param id path string true "Survey ID (UUID)"
// @Success 200 {object} Response{data=service.SurveyResponse} "Survey with events"
// @Failure 400 {object} Response "Invalid survey ID"
// @Failure 404 {object} Response "Survey not found"
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	id, ok := parseID(c, "survey")
	if !ok {
		return
	}

	survey, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, survey)
}

// CreateSurvey creates a new survey
// @Summary Create a new survey
// @Tags surveys
// @Accept json
// @Produce json
// @Param survey body service.CreateSurveyRequest true "Survey data"
// @Success 201 {object} Response{data=service.SurveyResponse} "Created survey"
// @Failure 400 {object} Response "Validation failed or invalid form"
// @Failure 500 {object} Response "Internal server error"
// @Router /surveys [post]
func (h *SurveyHandler) CreateSurvey(c *gin.Context) {
	var req service.CreateSurveyRequest
	if !bindJSON(c, &req) {
		return
	}

	survey, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, survey)
}

// UpdateSurvey updates the provided fields of a survey
// @Summary Update survey
// @Tags surveys
// @Accept json
// @Produce json
// @Param id path string true "Survey ID (UUID)"
// @Param survey body service.UpdateSurveyRequest true "Fields to change"
// @Success 200 {object} Response{data=service.SurveyResponse} "Updated survey"
// @Failure 400 {object} Response "Invalid request"
// @Failure 404 {object} Response "Survey not found"
// @Router /surveys/{id} [put]
func (h *SurveyHandler) UpdateSurvey(c *gin.Context) {
	id, ok := parseID(c, "survey")
	if !ok {
		return
	}

	var req service.UpdateSurveyRequest
	if !bindJSON(c, &req) {
		return
	}

	survey, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, survey)
}

// DeleteSurvey deletes a survey
// @Summary Delete survey
// @Tags surveys
// @Produce json
// @Param id path string true "Survey ID (UUID)"
// @Success 200 {object} Response "Survey deleted"
// @Failure 400 {object} Response "Invalid survey ID"
// @Failure 404 {object} Response "Survey not found"
// @Router /surveys/{id} [delete]
func (h *SurveyHandler) DeleteSurvey(c *gin.Context) {
	id, ok := parseID(c, "survey")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, "Survey deleted successfully")
}
