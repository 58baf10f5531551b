package service_test

import (
	"context"
	"testing"
	"time"

	"admin-console-backend/internal/audit"
	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/mocks"
	"admin-console-backend/internal/repository"
	"admin-console-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EventServiceTestSuite defines the test suite for EventService
type EventServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEventRepo *mocks.MockEventRepositoryInterface
	eventService  *service.EventService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *EventServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.eventService = service.NewEventService(suite.mockEventRepo, service.NewValidator(), audit.NewNoopPublisher())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *EventServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EventServiceTestSuite) storedEvent(id uuid.UUID) *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Kickoff",
		TimeStart: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		TimeEnd:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Status:    models.EventStatusScheduled,
	}
}

// TestCreateEventParsesLocalTimes tests zone-less input read as UTC
func (suite *EventServiceTestSuite) TestCreateEventParsesLocalTimes() {
	suite.mockEventRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) error {
			assert.Equal(suite.T(), time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), e.TimeStart)
			assert.Equal(suite.T(), time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), e.TimeEnd)
			assert.Equal(suite.T(), models.EventStatusScheduled, e.Status)
			return nil
		})

	_, err := suite.eventService.Create(suite.ctx, &service.CreateEventRequest{
		Name:      "Kickoff",
		TimeStart: "2024-01-01T10:00",
		TimeEnd:   "2024-01-01T12:00",
	})

	assert.NoError(suite.T(), err)
}

// TestCreateEventRejectsInvertedRange tests the end-after-start rule
func (suite *EventServiceTestSuite) TestCreateEventRejectsInvertedRange() {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"end before start", "2024-01-01T12:00", "2024-01-01T10:00"},
		{"end equals start", "2024-01-01T10:00:00Z", "2024-01-01T10:00:00Z"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.eventService.Create(suite.ctx, &service.CreateEventRequest{
				Name: "Kickoff", TimeStart: tt.start, TimeEnd: tt.end,
			})

			assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
			assert.Equal(suite.T(), "End time must be after start time", apperrors.PublicMessage(err))
		})
	}
}

// TestCreateEventRejectsMalformedTime tests unparsable time input
func (suite *EventServiceTestSuite) TestCreateEventRejectsMalformedTime() {
	_, err := suite.eventService.Create(suite.ctx, &service.CreateEventRequest{
		Name: "Kickoff", TimeStart: "tomorrow", TimeEnd: "2024-01-01T12:00",
	})

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	assert.Equal(suite.T(), "time_start", verr.Field)
}

// TestCreateEventRejectsUnknownStatus tests the closed status set
func (suite *EventServiceTestSuite) TestCreateEventRejectsUnknownStatus() {
	_, err := suite.eventService.Create(suite.ctx, &service.CreateEventRequest{
		Name: "Kickoff", TimeStart: "2024-01-01T10:00", TimeEnd: "2024-01-01T12:00", Status: "postponed",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateEventValidatesMergedRange tests a single bound checked against the stored one
func (suite *EventServiceTestSuite) TestUpdateEventValidatesMergedRange() {
	id := uuid.New()
	suite.mockEventRepo.EXPECT().GetByID(gomock.Any(), id).Return(suite.storedEvent(id), nil)

	_, err := suite.eventService.Update(suite.ctx, id, &service.UpdateEventRequest{TimeEnd: strPtr("2024-01-01T09:00")})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

// TestUpdateEventMovesEnd tests a valid single-bound update
func (suite *EventServiceTestSuite) TestUpdateEventMovesEnd() {
	id := uuid.New()
	newEnd := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)

	suite.mockEventRepo.EXPECT().GetByID(gomock.Any(), id).Return(suite.storedEvent(id), nil)
	suite.mockEventRepo.EXPECT().
		Update(gomock.Any(), id, repository.EventUpdate{TimeEnd: &newEnd}).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upd repository.EventUpdate) (*models.Event, error) {
			e := suite.storedEvent(id)
			e.TimeEnd = *upd.TimeEnd
			return e, nil
		})

	response, err := suite.eventService.Update(suite.ctx, id, &service.UpdateEventRequest{TimeEnd: strPtr("2024-01-01T14:00:00Z")})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), newEnd, response.TimeEnd)
	assert.Equal(suite.T(), "Kickoff", response.Name)
}

// TestUpdateEventEmptyRequest tests the empty update set
func (suite *EventServiceTestSuite) TestUpdateEventEmptyRequest() {
	_, err := suite.eventService.Update(suite.ctx, uuid.New(), &service.UpdateEventRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNothingToUpdate)
}

// TestGetEventProjectsSurveyLinks tests surveys carrying their final file
func (suite *EventServiceTestSuite) TestGetEventProjectsSurveyLinks() {
	id := uuid.New()
	event := suite.storedEvent(id)
	event.SurveyLinks = []models.EventSurvey{
		{EventID: id, SurveyID: uuid.New(), FinalFile: strPtr("results.pdf"), Survey: &models.Survey{Name: "Feedback", Status: models.SurveyStatusActive}},
	}
	suite.mockEventRepo.EXPECT().GetByID(gomock.Any(), id).Return(event, nil)

	response, err := suite.eventService.GetByID(suite.ctx, id)

	suite.Require().NoError(err)
	suite.Require().Len(response.Surveys, 1)
	assert.Equal(suite.T(), "Feedback", response.Surveys[0].Name)
	assert.Equal(suite.T(), "results.pdf", *response.Surveys[0].FinalFile)
	assert.NotNil(suite.T(), response.Groups)
}

// TestListEventsRejectsUnknownStatus tests the status filter
func (suite *EventServiceTestSuite) TestListEventsRejectsUnknownStatus() {
	_, err := suite.eventService.List(suite.ctx, service.ListQuery{Status: "done"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestEventServiceTestSuite runs the test suite
func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
