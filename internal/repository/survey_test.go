//go:build integration

package repository

import (
	"context"
	"testing"

	"admin-console-backend/internal/database/models"
	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SurveyRepositoryTestSuite tests the SurveyRepository
type SurveyRepositoryTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	repo      *SurveyRepository
	factories *testutils.FactorySet
	ctx       context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *SurveyRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSurveyRepository(suite.base.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// SetupTest runs before each test
func (suite *SurveyRepositoryTestSuite) SetupTest() {
	suite.base.CleanTestDB()
}

// TestFormRoundTrip tests that the jsonb form survives storage intact
func (suite *SurveyRepositoryTestSuite) TestFormRoundTrip() {
	survey := suite.factories.Survey.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, survey))

	found, err := suite.repo.GetByID(suite.ctx, survey.ID)

	suite.Require().NoError(err)
	suite.Require().Len(found.Form, 2)
	suite.Equal(models.FieldTypeRadio, found.Form[0].Type)
	suite.Equal([]string{"1", "2", "3"}, found.Form[0].Options)
	suite.True(found.Form[0].Required)
	suite.Empty(found.EventLinks)
}

// TestGetByIDNotFound tests retrieving a missing survey
func (suite *SurveyRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListFilters tests the name search and status filter
func (suite *SurveyRepositoryTestSuite) TestListFilters() {
	feedback := suite.factories.Survey.Create()
	feedback.Name = "Feedback"
	suite.Require().NoError(suite.repo.Create(suite.ctx, feedback))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Survey.WithStatus(models.SurveyStatusCompleted)))

	surveys, total, err := suite.repo.List(suite.ctx, ListFilter{Page: 1, Limit: 10, Search: "feed"})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Feedback", surveys[0].Name)

	_, total, err = suite.repo.List(suite.ctx, ListFilter{Page: 1, Limit: 10, Status: "completed"})
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestUpdateForm tests replacing the form and clearing the set point
func (suite *SurveyRepositoryTestSuite) TestUpdateForm() {
	survey := suite.factories.Survey.Create()
	setPoint := "80"
	survey.SetPoint = &setPoint
	suite.Require().NoError(suite.repo.Create(suite.ctx, survey))

	form := []models.FormField{{ID: "email", Type: models.FieldTypeEmail, Label: "Email", Required: true}}
	empty := ""
	updated, err := suite.repo.Update(suite.ctx, survey.ID, SurveyUpdate{Form: form, SetPoint: &empty})

	suite.Require().NoError(err)
	suite.Require().Len(updated.Form, 1)
	suite.Equal("email", updated.Form[0].ID)
	suite.Nil(updated.SetPoint)
}

// TestUpdateEmpty tests that an empty update is rejected
func (suite *SurveyRepositoryTestSuite) TestUpdateEmpty() {
	survey := suite.factories.Survey.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, survey))

	_, err := suite.repo.Update(suite.ctx, survey.ID, SurveyUpdate{})

	suite.ErrorIs(err, apperrors.ErrNothingToUpdate)
}

// TestDelete tests deleting a survey drops its event links
func (suite *SurveyRepositoryTestSuite) TestDelete() {
	survey := suite.factories.Survey.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, survey))
	event := suite.factories.Event.Create()
	suite.Require().NoError(NewEventRepository(suite.base.DB).Create(suite.ctx, event))
	suite.Require().NoError(NewRelationRepository(suite.base.DB).AddSurveyToEvent(suite.ctx, event.ID, survey.ID, nil))

	suite.NoError(suite.repo.Delete(suite.ctx, survey.ID))

	found, err := NewEventRepository(suite.base.DB).GetByID(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Empty(found.SurveyLinks)
}

// TestSurveyRepositoryTestSuite runs the test suite
func TestSurveyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SurveyRepositoryTestSuite))
}
