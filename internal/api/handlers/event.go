package handlers

import (
	"net/http"

	"admin-console-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	service service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(service service.EventServiceInterface) *EventHandler {
	return &EventHandler{service: service}
}

// ListEvents returns a page of events
// @Summary List events
// @Description List events with pagination, search on name and description, and a status filter
// @Tags events
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Case-insensitive match on name or description"
// @Param status query string false "Status filter" Enums(scheduled, active, completed, cancelled)
// @Success 200 {object} ListEnvelope "Page of events"
// @Failure 400 {object} Response "Invalid query parameters"
// @Failure 500 {object} Response "Internal server error"
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
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

// GetEvent retrieves a event by ID
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} Response{data=service.EventResponse} "Event with groups and surveys"
// @Failure 400 {object} Response "Invalid event ID"
// @Failure 404 {object} Response "Event not found"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	event, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, event)
}

// CreateEvent creates a new event
// @Summary Create a new event
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} Response{data=service.EventResponse} "Created event"
// @Failure 400 {object} Response "Validation failed or end time not after start time"
// @Failure 500 {object} Response "Internal server error"
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, event)
}

// UpdateEvent updates the provided fields of a event
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body service.UpdateEventRequest true "Fields to change"
// @Success 200 {object} Response{data=service.EventResponse} "Updated event"
// @Failure 400 {object} Response "Invalid request"
// @Failure 404 {object} Response "Event not found"
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, event)
}

// DeleteEvent deletes a event
// @Summary Delete event
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} Response "Event deleted"
// @Failure 400 {object} Response "Invalid event ID"
// @Failure 404 {object} Response "Event not found"
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, "Event deleted successfully")
}
