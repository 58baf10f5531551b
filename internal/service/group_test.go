package service_test

import (
	"context"
	"testing"

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
	"gorm.io/gorm"
)

// GroupServiceTestSuite defines the test suite for GroupService
type GroupServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGroupRepo *mocks.MockGroupRepositoryInterface
	groupService  *service.GroupService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *GroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.groupService = service.NewGroupService(suite.mockGroupRepo, service.NewValidator(), audit.NewNoopPublisher())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *GroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup tests creating a group; an empty description is stored as NULL
func (suite *GroupServiceTestSuite) TestCreateGroup() {
	suite.mockGroupRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.Group) error {
			assert.Nil(suite.T(), g.Description)
			g.ID = uuid.New()
			return nil
		})

	response, err := suite.groupService.Create(suite.ctx, &service.CreateGroupRequest{Name: "Engineering", Description: strPtr("")})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Engineering", response.Name)
	assert.NotNil(suite.T(), response.Users)
	assert.NotNil(suite.T(), response.Events)
}

// TestCreateGroupMissingName tests the required name
func (suite *GroupServiceTestSuite) TestCreateGroupMissingName() {
	_, err := suite.groupService.Create(suite.ctx, &service.CreateGroupRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateGroupDuplicateName tests the name conflict message
func (suite *GroupServiceTestSuite) TestCreateGroupDuplicateName() {
	suite.mockGroupRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrGroupNameExists)

	_, err := suite.groupService.Create(suite.ctx, &service.CreateGroupRequest{Name: "Engineering"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNameExists)
	assert.Equal(suite.T(), "Group name already exists", apperrors.PublicMessage(err))
}

// TestGetGroupIncludesMembers tests member and event projection
func (suite *GroupServiceTestSuite) TestGetGroupIncludesMembers() {
	id := uuid.New()
	group := &models.Group{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Engineering",
		Users: []models.User{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice", Email: "alice@example.com", Role: models.RoleAdmin},
		},
		Events: []models.Event{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Kickoff", Status: models.EventStatusScheduled},
		},
	}
	suite.mockGroupRepo.EXPECT().GetByID(gomock.Any(), id).Return(group, nil)

	response, err := suite.groupService.GetByID(suite.ctx, id)

	suite.Require().NoError(err)
	suite.Require().Len(response.Users, 1)
	assert.Equal(suite.T(), "alice", response.Users[0].Username)
	suite.Require().Len(response.Events, 1)
	assert.Equal(suite.T(), "Kickoff", response.Events[0].Name)
}

// TestUpdateGroupClearsDescription tests that "" clears a stored description
func (suite *GroupServiceTestSuite) TestUpdateGroupClearsDescription() {
	id := uuid.New()
	current := &models.Group{BaseModel: models.BaseModel{ID: id}, Name: "Engineering", Description: strPtr("Builders")}
	empty := ""

	suite.mockGroupRepo.EXPECT().GetByID(gomock.Any(), id).Return(current, nil)
	suite.mockGroupRepo.EXPECT().
		Update(gomock.Any(), id, repository.GroupUpdate{Description: &empty}).
		Return(&models.Group{BaseModel: models.BaseModel{ID: id}, Name: "Engineering"}, nil)

	response, err := suite.groupService.Update(suite.ctx, id, &service.UpdateGroupRequest{Description: &empty})

	suite.Require().NoError(err)
	assert.Nil(suite.T(), response.Description)
}

// TestUpdateGroupEmptyRequest tests the empty update set
func (suite *GroupServiceTestSuite) TestUpdateGroupEmptyRequest() {
	_, err := suite.groupService.Update(suite.ctx, uuid.New(), &service.UpdateGroupRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNothingToUpdate)
}

// TestUpdateGroupRenameConflict tests a rename onto an existing name
func (suite *GroupServiceTestSuite) TestUpdateGroupRenameConflict() {
	id := uuid.New()
	suite.mockGroupRepo.EXPECT().GetByID(gomock.Any(), id).Return(&models.Group{BaseModel: models.BaseModel{ID: id}, Name: "Ops"}, nil)
	suite.mockGroupRepo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrGroupNameExists)

	_, err := suite.groupService.Update(suite.ctx, id, &service.UpdateGroupRequest{Name: strPtr("Engineering")})

	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNameExists)
}

// TestDeleteGroupNotFound tests deleting a missing group
func (suite *GroupServiceTestSuite) TestDeleteGroupNotFound() {
	id := uuid.New()
	suite.mockGroupRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(suite.T(), suite.groupService.Delete(suite.ctx, id), apperrors.ErrGroupNotFound)
}

// TestGroupServiceTestSuite runs the test suite
func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}
