package handlers_test

import (
	"net/http"
	"testing"

	"admin-console-backend/internal/api/handlers"
	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/mocks"
	"admin-console-backend/internal/service"
	"admin-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GroupHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockGroupServiceInterface
	http    *testutils.HTTPTestSuite
}

func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	h := handlers.NewGroupHandler(suite.service)
	groups := suite.http.Router.Group("/api/groups")
	groups.GET("", h.ListGroups)
	groups.GET("/:id", h.GetGroup)
	groups.POST("", h.CreateGroup)
	groups.PUT("/:id", h.UpdateGroup)
	groups.DELETE("/:id", h.DeleteGroup)
}

func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupHandlerTestSuite) TestListGroupsEmptyPage() {
	suite.service.EXPECT().List(gomock.Any(), service.ListQuery{Page: 9}).
		Return(&service.ListResponse[service.GroupResponse]{
			Items:      []service.GroupResponse{},
			Pagination: service.Pagination{Page: 9, Limit: 10, Total: 3, TotalPages: 1},
		}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/groups?page=9", nil)

	suite.Contains(rec.Body.String(), `"data":[]`)
	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil)
	suite.True(env.Success)
	suite.Equal(9, env.Pagination.Page)
}

func (suite *GroupHandlerTestSuite) TestGetGroup() {
	id := uuid.New()
	suite.service.EXPECT().GetByID(gomock.Any(), id).Return(&service.GroupResponse{
		ID:     id,
		Name:   "engineering",
		Users:  []service.UserRef{{ID: uuid.New(), Username: "alice"}},
		Events: []service.EventRef{},
	}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/groups/"+id.String(), nil)

	var got service.GroupResponse
	testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, &got)
	suite.Equal("engineering", got.Name)
	suite.Len(got.Users, 1)
}

func (suite *GroupHandlerTestSuite) TestCreateGroupDuplicate() {
	suite.service.EXPECT().
		Create(gomock.Any(), &service.CreateGroupRequest{Name: "engineering"}).
		Return(nil, apperrors.ErrGroupNameExists)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/groups", map[string]string{"name": "engineering"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Group name already exists")
}

func (suite *GroupHandlerTestSuite) TestCreateGroupMissingName() {
	suite.service.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "name is required"))

	rec := suite.http.MakeRequest(http.MethodPost, "/api/groups", `{}`)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "name is required")
}

func (suite *GroupHandlerTestSuite) TestUpdateGroup() {
	id := uuid.New()
	name := "platform"
	suite.service.EXPECT().
		Update(gomock.Any(), id, &service.UpdateGroupRequest{Name: &name}).
		Return(&service.GroupResponse{ID: id, Name: name}, nil)

	rec := suite.http.MakeRequest(http.MethodPut, "/api/groups/"+id.String(), map[string]string{"name": name})

	var got service.GroupResponse
	testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, &got)
	suite.Equal("platform", got.Name)
}

func (suite *GroupHandlerTestSuite) TestDeleteGroup() {
	id := uuid.New()
	suite.service.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rec := suite.http.MakeRequest(http.MethodDelete, "/api/groups/"+id.String(), nil)

	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil)
	suite.Equal("Group deleted successfully", env.Message)
}

func (suite *GroupHandlerTestSuite) TestDeleteGroupInvalidID() {
	rec := suite.http.MakeRequest(http.MethodDelete, "/api/groups/xyz", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid group ID")
}

func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
