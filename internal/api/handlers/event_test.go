package handlers_test

import (
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

type EventHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockEventServiceInterface
	http    *testutils.HTTPTestSuite
}

func (suite *EventHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockEventServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	h := handlers.NewEventHandler(suite.service)
	events := suite.http.Router.Group("/api/events")
	events.GET("", h.ListEvents)
	events.GET("/:id", h.GetEvent)
	events.POST("", h.CreateEvent)
	events.PUT("/:id", h.UpdateEvent)
	events.DELETE("/:id", h.DeleteEvent)
}

func (suite *EventHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EventHandlerTestSuite) TestListEventsByStatus() {
	suite.service.EXPECT().List(gomock.Any(), service.ListQuery{Status: "active"}).
		Return(&service.ListResponse[service.EventResponse]{
			Items:      []service.EventResponse{{ID: uuid.New(), Name: "Kickoff", Status: models.EventStatusActive}},
			Pagination: service.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
		}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/events?status=active", nil)

	var items []service.EventResponse
	testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, &items)
	suite.Require().Len(items, 1)
	suite.Equal(models.EventStatusActive, items[0].Status)
}

func (suite *EventHandlerTestSuite) TestCreateEvent() {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	req := &service.CreateEventRequest{
		Name:      "Kickoff",
		TimeStart: "2024-06-01T09:00:00Z",
		TimeEnd:   "2024-06-01T11:00:00Z",
	}
	suite.service.EXPECT().Create(gomock.Any(), req).Return(&service.EventResponse{
		ID:        uuid.New(),
		Name:      "Kickoff",
		TimeStart: start,
		TimeEnd:   start.Add(2 * time.Hour),
		Status:    models.EventStatusScheduled,
	}, nil)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/events", req)

	var got service.EventResponse
	testutils.ParseEnvelope(suite.T(), rec, http.StatusCreated, &got)
	suite.Equal(models.EventStatusScheduled, got.Status)
	suite.True(start.Equal(got.TimeStart))
}

func (suite *EventHandlerTestSuite) TestCreateEventInvalidRange() {
	suite.service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidTimeRange)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/events", map[string]string{
		"name":       "Backwards",
		"time_start": "2024-06-01T11:00:00Z",
		"time_end":   "2024-06-01T09:00:00Z",
	})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "End time must be after start time")
}

func (suite *EventHandlerTestSuite) TestGetEventNotFound() {
	id := uuid.New()
	suite.service.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrEventNotFound)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/events/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "Event not found")
}

func (suite *EventHandlerTestSuite) TestUpdateEventInvalidID() {
	rec := suite.http.MakeRequest(http.MethodPut, "/api/events/nope", `{"name":"x"}`)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid event ID")
}

func (suite *EventHandlerTestSuite) TestDeleteEvent() {
	id := uuid.New()
	suite.service.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rec := suite.http.MakeRequest(http.MethodDelete, "/api/events/"+id.String(), nil)

	env := testutils.ParseEnvelope(suite.T(), rec, http.StatusOK, nil)
	suite.Equal("Event deleted successfully", env.Message)
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
