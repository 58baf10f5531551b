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

type RelationHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockRelationServiceInterface
	http    *testutils.HTTPTestSuite
}

func (suite *RelationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockRelationServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	h := handlers.NewRelationHandler(suite.service)
	api := suite.http.Router.Group("/api")
	api.POST("/users/group", h.AddUserToGroup)
	api.DELETE("/users/group", h.RemoveUserFromGroup)
	api.POST("/groups/event", h.AddGroupToEvent)
	api.DELETE("/groups/event", h.RemoveGroupFromEvent)
	api.POST("/events/survey", h.AddSurveyToEvent)
	api.DELETE("/events/survey", h.RemoveSurveyFromEvent)
}

func (suite *RelationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RelationHandlerTestSuite) TestAddUserToGroup() {
	req := &service.UserGroupRequest{UserID: uuid.NewString(), GroupID: uuid.NewString()}
	suite.service.EXPECT().AddUserToGroup(gomock.Any(), req).Return(nil)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/users/group", req)

	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil)
	suite.True(env.Success)
	suite.Equal("User added to group", env.Message)
}

func (suite *RelationHandlerTestSuite) TestAddUserToGroupMissingGroup() {
	suite.service.EXPECT().AddUserToGroup(gomock.Any(), gomock.Any()).Return(apperrors.ErrGroupNotFound)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/users/group", map[string]string{
		"user_id":  uuid.NewString(),
		"group_id": uuid.NewString(),
	})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "Group not found")
}

func (suite *RelationHandlerTestSuite) TestRemoveUserFromGroup() {
	suite.service.EXPECT().RemoveUserFromGroup(gomock.Any(), gomock.Any()).Return(nil)

	rec := suite.http.MakeRequest(http.MethodDelete, "/api/users/group", map[string]string{
		"user_id":  uuid.NewString(),
		"group_id": uuid.NewString(),
	})

	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil)
	suite.Equal("User removed from group", env.Message)
}

func (suite *RelationHandlerTestSuite) TestGroupEventLinks() {
	body := map[string]string{"group_id": uuid.NewString(), "event_id": uuid.NewString()}

	suite.service.EXPECT().AddGroupToEvent(gomock.Any(), gomock.Any()).Return(nil)
	rec := suite.http.MakeRequest(http.MethodPost, "/api/groups/event", body)
	suite.Equal("Group added to event", testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil).Message)

	suite.service.EXPECT().RemoveGroupFromEvent(gomock.Any(), gomock.Any()).Return(nil)
	rec = suite.http.MakeRequest(http.MethodDelete, "/api/groups/event", body)
	suite.Equal("Group removed from event", testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil).Message)
}

func (suite *RelationHandlerTestSuite) TestAddSurveyToEventWithFinalFile() {
	file := "results/final.pdf"
	req := &service.EventSurveyRequest{EventID: uuid.NewString(), SurveyID: uuid.NewString(), FinalFile: &file}
	suite.service.EXPECT().AddSurveyToEvent(gomock.Any(), req).Return(nil)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/events/survey", req)

	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil)
	suite.Equal("Survey added to event", env.Message)
}

func (suite *RelationHandlerTestSuite) TestRemoveSurveyFromEvent() {
	suite.service.EXPECT().RemoveSurveyFromEvent(gomock.Any(), gomock.Any()).Return(nil)

	rec := suite.http.MakeRequest(http.MethodDelete, "/api/events/survey", map[string]string{
		"event_id":  uuid.NewString(),
		"survey_id": uuid.NewString(),
	})

	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil)
	suite.Equal("Survey removed from event", env.Message)
}

func (suite *RelationHandlerTestSuite) TestInvalidIDs() {
	suite.service.EXPECT().AddGroupToEvent(gomock.Any(), gomock.Any()).
		Return(apperrors.NewValidationError("group_id", "group_id must be a valid UUID"))

	rec := suite.http.MakeRequest(http.MethodPost, "/api/groups/event", map[string]string{
		"group_id": "nope",
		"event_id": uuid.NewString(),
	})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "group_id must be a valid UUID")
}

func (suite *RelationHandlerTestSuite) TestMalformedBody() {
	rec := suite.http.MakeRequest(http.MethodPost, "/api/events/survey", `[`)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid request body")
}

func TestRelationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RelationHandlerTestSuite))
}
