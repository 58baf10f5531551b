package handlers

import (
	"net/http"

	"admin-console-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers returns a page of users
// @Summary List users
// @Description List users with pagination, search on username and email, and role/status filters
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Case-insensitive match on username or email"
// @Param role query string false "Role filter" Enums(admin, moderator, user)
// @Param status query string false "Status filter" Enums(active, inactive)
// @Success 200 {object} ListEnvelope "Page of users"
// @Failure 400 {object} Response "Invalid query parameters"
// @Failure 500 {object} Response "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
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

// GetUser retrieves a user by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Response{data=service.UserResponse} "User with groups"
// @Failure 400 {object} Response "Invalid user ID"
// @Failure 404 {object} Response "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}

// CreateUser creates a new user
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} Response{data=service.UserResponse} "Created user"
// @Failure 400 {object} Response "Validation failed or username/email taken"
// @Failure 500 {object} Response "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, user)
}

// UpdateUser updates the provided fields of a user
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} Response{data=service.UserResponse} "Updated user"
// @Failure 400 {object} Response "Invalid request"
// @Failure 404 {object} Response "User not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}

// DeleteUser deletes a user
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Response "User deleted"
// @Failure 400 {object} Response "Invalid user ID"
// @Failure 404 {object} Response "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	respondMessage(c, "User deleted successfully")
}
