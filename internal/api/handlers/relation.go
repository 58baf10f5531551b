package handlers

import (
	"context"

	"admin-console-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RelationHandler handles the link endpoints between users, groups, events and surveys
type RelationHandler struct {
	service service.RelationServiceInterface
}

// NewRelationHandler creates a new relation handler
func NewRelationHandler(service service.RelationServiceInterface) *RelationHandler {
	return &RelationHandler{service: service}
}

// AddUserToGroup links a user to a group
// @Summary Add user to group
// @Tags relations
// @Accept json
// @Produce json
// @Param link body service.UserGroupRequest true "User and group IDs"
// @Success 200 {object} Response "User added to group"
// @Failure 400 {object} Response "Missing or malformed IDs"
// @Failure 404 {object} Response "User or group not found"
// @Router /users/group [post]
func (h *RelationHandler) AddUserToGroup(c *gin.Context) {
	var req service.UserGroupRequest
	link(c, &req, h.service.AddUserToGroup, "User added to group")
}

// RemoveUserFromGroup unlinks a user from a group
// @Summary Remove user from group
// @Tags relations
// @Accept json
// @Produce json
// @Param link body service.UserGroupRequest true "User and group IDs"
// @Success 200 {object} Response "User removed from group"
// @Failure 400 {object} Response "Missing or malformed IDs"
// @Router /users/group [delete]
func (h *RelationHandler) RemoveUserFromGroup(c *gin.Context) {
	var req service.UserGroupRequest
	link(c, &req, h.service.RemoveUserFromGroup, "User removed from group")
}

// AddGroupToEvent links a group to an event
// @Summary Add group to event
// @Tags relations
// @Accept json
// @Produce json
// @Param link body service.GroupEventRequest true "Group and event IDs"
// @Success 200 {object} Response "Group added to event"
// @Failure 400 {object} Response "Missing or malformed IDs"
// @Failure 404 {object} Response "Group or event not found"
// @Router /groups/event [post]
func (h *RelationHandler) AddGroupToEvent(c *gin.Context) {
	var req service.GroupEventRequest
	link(c, &req, h.service.AddGroupToEvent, "Group added to event")
}

// RemoveGroupFromEvent unlinks a group from an event
// @Summary Remove group from event
// @Tags relations
// @Accept json
// @Produce json
// @Param link body service.GroupEventRequest true "Group and event IDs"
// @Success 200 {object} Response "Group removed from event"
// @Failure 400 {object} Response "Missing or malformed IDs"
// @Router /groups/event [delete]
func (h *RelationHandler) RemoveGroupFromEvent(c *gin.Context) {
	var req service.GroupEventRequest
	link(c, &req, h.service.RemoveGroupFromEvent, "Group removed from event")
}

// AddSurveyToEvent links a survey to an event
// @Summary Add survey to event
// @Tags relations
// @Accept json
// @Produce json
// @Param link body service.EventSurveyRequest true "Event and survey IDs with optional final file"
// @Success 200 {object} Response "Survey added to event"
// @Failure 400 {object} Response "Missing or malformed IDs"
// @Failure 404 {object} Response "Event or survey not found"
// @Router /events/survey [post]
func (h *RelationHandler) AddSurveyToEvent(c *gin.Context) {
	var req service.EventSurveyRequest
	link(c, &req, h.service.AddSurveyToEvent, "Survey added to event")
}

// RemoveSurveyFromEvent unlinks a survey from an event
// @Summary Remove survey from event
// @Tags relations
// @Accept json
// @Produce json
// @Param link body service.EventSurveyRequest true "Event and survey IDs"
// @Success 200 {object} Response "Survey removed from event"
// @Failure 400 {object} Response "Missing or malformed IDs"
// @Router /events/survey [delete]
func (h *RelationHandler) RemoveSurveyFromEvent(c *gin.Context) {
	var req service.EventSurveyRequest
	link(c, &req, h.service.RemoveSurveyFromEvent, "Survey removed from event")
}

// link binds req, runs op and answers with message on success
func link[R any](c *gin.Context, req *R, op func(context.Context, *R) error, message string) {
	if !bindJSON(c, req) {
		return
	}
	if err := op(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}
	respondMessage(c, message)
}
