package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"admin-console-backend/internal/api/handlers"
	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/mocks"
	"admin-console-backend/internal/service"
	"admin-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockUserServiceInterface
	http    *testutils.HTTPTestSuite
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	h := handlers.NewUserHandler(suite.service)
	users := suite.http.Router.Group("/api/users")
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.POST("", h.CreateUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleUser() *service.UserResponse {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &service.UserResponse{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      models.RoleUser,
		Status:    true,
		Groups:    []service.GroupRef{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	user := sampleUser()
	suite.service.EXPECT().
		List(gomock.Any(), service.ListQuery{Page: 2, Limit: 5, Search: "ali", Role: "user", Status: "active"}).
		Return(&service.ListResponse[service.UserResponse]{
			Items:      []service.UserResponse{*user},
			Pagination: service.Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2},
		}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/users?page=2&limit=5&search=ali&role=user&status=active", nil)

	var items []service.UserResponse
	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, &items)
	suite.True(env.Success)
	suite.Require().Len(items, 1)
	suite.Equal("alice", items[0].Username)
	suite.Require().NotNil(env.Pagination)
	suite.Equal(6, int(env.Pagination.Total))
	suite.Equal(2, env.Pagination.TotalPages)
}

func (suite *UserHandlerTestSuite) TestListUsersBadQuery() {
	rec := suite.http.MakeRequest(http.MethodGet, "/api/users?page=abc", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid query parameters")
}

func (suite *UserHandlerTestSuite) TestListUsersInvalidFilter() {
	suite.service.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("role", "role must be one of: admin, moderator, user"))

	rec := suite.http.MakeRequest(http.MethodGet, "/api/users?role=root", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "role must be one of: admin, moderator, user")
}

func (suite *UserHandlerTestSuite) TestGetUser() {
	user := sampleUser()
	suite.service.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/users/"+user.ID.String(), nil)

	var got service.UserResponse
	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, &got)
	suite.True(env.Success)
	suite.Equal(user.ID, got.ID)
	suite.NotContains(rec.Body.String(), "password")
}

func (suite *UserHandlerTestSuite) TestGetUserInvalidID() {
	rec := suite.http.MakeRequest(http.MethodGet, "/api/users/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid user ID")
}

func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	id := uuid.New()
	suite.service.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrUserNotFound)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/users/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "User not found")
}

func (suite *UserHandlerTestSuite) TestCreateUser() {
	user := sampleUser()
	req := &service.CreateUserRequest{Username: "alice", Email: "alice@example.com", Password: "secret"}
	suite.service.EXPECT().Create(gomock.Any(), req).Return(user, nil)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/users", map[string]interface{}{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret",
	})

	var got service.UserResponse
	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusCreated, &got)
	suite.True(env.Success)
	suite.Equal("alice", got.Username)
}

func (suite *UserHandlerTestSuite) TestCreateUserMalformedBody() {
	rec := suite.http.MakeRequest(http.MethodPost, "/api/users", `{"username":`)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid request body")
}

func (suite *UserHandlerTestSuite) TestCreateUserErrors() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.NewValidationError("email", "Invalid email format"), http.StatusBadRequest, "Invalid email format"},
		{"duplicate email", apperrors.ErrEmailExists, http.StatusBadRequest, "Email already exists"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := suite.http.MakeRequest(http.MethodPost, "/api/users", map[string]string{"username": "alice"})

			testutils.AssertErrorResponse(suite.T(), rec, tt.status, tt.message)
			suite.NotContains(rec.Body.String(), "connection reset")
		})
	}
}

func (suite *UserHandlerTestSuite) TestUpdateUser() {
	user := sampleUser()
	user.Status = false
	inactive := false
	suite.service.EXPECT().
		Update(gomock.Any(), user.ID, &service.UpdateUserRequest{Status: &inactive}).
		Return(user, nil)

	rec := suite.http.MakeRequest(http.MethodPut, "/api/users/"+user.ID.String(), `{"status":false}`)

	var got service.UserResponse
	testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, &got)
	suite.False(got.Status)
}

func (suite *UserHandlerTestSuite) TestUpdateUserNothingToUpdate() {
	id := uuid.New()
	suite.service.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrNothingToUpdate)

	rec := suite.http.MakeRequest(http.MethodPut, "/api/users/"+id.String(), `{}`)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "No fields to update")
}

func (suite *UserHandlerTestSuite) TestUpdateUserInvalidID() {
	rec := suite.http.MakeRequest(http.MethodPut, "/api/users/123", `{"status":false}`)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid user ID")
}

func (suite *UserHandlerTestSuite) TestDeleteUser() {
	id := uuid.New()
	suite.service.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rec := suite.http.MakeRequest(http.MethodDelete, "/api/users/"+id.String(), nil)

	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil)
	suite.True(env.Success)
	suite.Equal("User deleted successfully", env.Message)
}

func (suite *UserHandlerTestSuite) TestDeleteUserNotFound() {
	id := uuid.New()
	suite.service.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrUserNotFound)

	rec := suite.http.MakeRequest(http.MethodDelete, "/api/users/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "User not found")
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
