package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

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

type SurveyHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockSurveyServiceInterface
	http    *testutils.HTTPTestSuite
}

func (suite *SurveyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockSurveyServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	h := handlers.NewSurveyHandler(suite.service)
	surveys := suite.http.Router.Group("/api/surveys")
	surveys.GET("", h.ListSurveys)
	surveys.GET("/:id", h.GetSurvey)
	surveys.POST("", h.CreateSurvey)
	surveys.PUT("/:id", h.UpdateSurvey)
	surveys.DELETE("/:id", h.DeleteSurvey)
}

func (suite *SurveyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SurveyHandlerTestSuite) TestCreateSurveyPassesRawForm() {
	body := `{"name":"Feedback","form":[{"id":"q1","type":"text","label":"Name"}]}`
	suite.service.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateSurveyRequest) (*service.SurveyResponse, error) {
			suite.Equal("Feedback", req.Name)
			suite.JSONEq(`[{"id":"q1","type":"text","label":"Name"}]`, string(req.Form))
			return &service.SurveyResponse{
				ID:     uuid.New(),
				Name:   req.Name,
				Form:   []models.FormField{{ID: "q1", Type: models.FieldTypeText, Label: "Name"}},
				Status: models.SurveyStatusActive,
				Events: []service.EventRef{},
			}, nil
		})

	rec := suite.http.MakeRequest(http.MethodPost, "/api/surveys", body)

	var got service.SurveyResponse
	testutils.ParseEnvelope(suite.T(), rec, http.StatusCreated, &got)
	suite.Require().Len(got.Form, 1)
	suite.Equal(models.SurveyStatusActive, got.Status)
}

func (suite *SurveyHandlerTestSuite) TestCreateSurveyInvalidForm() {
	suite.service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidForm)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/surveys", map[string]interface{}{
		"name": "Broken",
		"form": "{not json",
	})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid form JSON")
}

func (suite *SurveyHandlerTestSuite) TestUpdateSurveyStatus() {
	id := uuid.New()
	completed := models.SurveyStatusCompleted
	suite.service.EXPECT().
		Update(gomock.Any(), id, &service.UpdateSurveyRequest{Status: &completed}).
		Return(&service.SurveyResponse{ID: id, Status: completed, Form: []models.FormField{}}, nil)

	rec := suite.http.MakeRequest(http.MethodPut, "/api/surveys/"+id.String(), `{"status":"completed"}`)

	var got service.SurveyResponse
	testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, &got)
	suite.Equal(completed, got.Status)
}

func (suite *SurveyHandlerTestSuite) TestGetSurvey() {
	id := uuid.New()
	file := "results.csv"
	suite.service.EXPECT().GetByID(gomock.Any(), id).Return(&service.SurveyResponse{
		ID:     id,
		Name:   "Feedback",
		Form:   []models.FormField{},
		Events: []service.EventRef{{ID: uuid.New(), Name: "Kickoff", FinalFile: &file}},
	}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/surveys/"+id.String(), nil)

	var got map[string]json.RawMessage
	testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, &got)
	suite.JSONEq(`[]`, string(got["form"]))
	suite.Contains(string(got["events"]), `"final_file":"results.csv"`)
}

func (suite *SurveyHandlerTestSuite) TestDeleteSurveyNotFound() {
	id := uuid.New()
	suite.service.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrSurveyNotFound)

	rec := suite.http.MakeRequest(http.MethodDelete, "/api/surveys/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "Survey not found")
}

func TestSurveyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SurveyHandlerTestSuite))
}
