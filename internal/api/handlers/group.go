package handlers

import (
	"net/http"

	"admin-console-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// ListGroups returns a page of groups
// @Summary List groups
// @Description List groups with pagination and search on name and description
// @Tags groups
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Case-insensitive match on name or description"
// @Success 200 {object} ListEnvelope "Page of groups"
// @Failure 400 {object} Response "Invalid query parameters"
// @Failure 500 {object} Response "Internal server error"
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
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

// GetGroup retrieves a group by ID
// @Summary Get group by ID
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} Response{data=service.GroupResponse} "Group with users and events"
// @Failure 400 {object} Response "Invalid group ID"
// @Failure 404 {object} Response "Group not found"
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := parseID(c, "group")
	if !ok {
		return
	}

	group, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, group)
}

// CreateGroup creates a new group
// @Summary Create a new group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} Response{data=service.GroupResponse} "Created group"
// @Failure 400 {object} Response "Validation failed or group name taken"
// @Failure 500 {object} Response "Internal server error"
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, group)
}

// UpdateGroup updates the provided fields of a group
// @Summary Update group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param group body service.UpdateGroupRequest true "Fields to change"
// @Success 200 {object} Response{data=service.GroupResponse} "Updated group"
// @Failure 400 {object} Response "Invalid request"
// @Failure 404 {object} Response "Group not found"
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := parseID(c, "group")
	if !ok {
		return
	}

	var req service.UpdateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, group)
}

// DeleteGroup deletes a group
// @Summary Delete group
// @Tags groups
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} Response "Group deleted"
// @Failure 400 {object} Response "Invalid group ID"
// @Failure 404 {object} Response "Group not found"
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseID(c, "group")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, "Group deleted successfully")
}
