package service_test

import (
	"context"
	"testing"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/mocks"
	"ensemble-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ApplicationServiceTestSuite defines the test suite for ApplicationService
type ApplicationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockApplicationRepositoryInterface
	teamRepo *mocks.MockTeamRepositoryInterface
	central  *mocks.MockCentralAPIClientInterface
	service  *service.ApplicationService
}

// SetupTest sets up the test suite
func (suite *ApplicationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockApplicationRepositoryInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.central = mocks.NewMockCentralAPIClientInterface(suite.ctrl)
	suite.service = service.NewApplicationService(suite.repo, suite.teamRepo, suite.central, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ApplicationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func activeTeam(id uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: id},
		Name:      "payments",
		IsActive:  true,
	}
}

// TestCreate tests application creation
func (suite *ApplicationServiceTestSuite) TestCreate() {
	suite.T().Run("Success_UppercasesTLA", func(t *testing.T) {
		teamID := uuid.New()
		suite.teamRepo.EXPECT().GetByID(teamID).Return(activeTeam(teamID), nil)
		suite.repo.EXPECT().ActiveTLAExists(teamID, "PGW", nil).Return(false, nil)
		suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

		app, err := suite.service.Create(&service.CreateApplicationRequest{
			TeamID: teamID,
			Name:   "Payment Gateway",
			TLA:    "pgw",
		})

		assert.NoError(t, err)
		assert.Equal(t, "PGW", app.TLA)
		assert.Equal(t, models.ApplicationStatusActive, app.Status)
	})

	suite.T().Run("TLAConflict", func(t *testing.T) {
		teamID := uuid.New()
		suite.teamRepo.EXPECT().GetByID(teamID).Return(activeTeam(teamID), nil)
		suite.repo.EXPECT().ActiveTLAExists(teamID, "PGW", nil).Return(true, nil)

		_, err := suite.service.Create(&service.CreateApplicationRequest{
			TeamID: teamID,
			Name:   "Payment Gateway",
			TLA:    "PGW",
		})

		assert.ErrorIs(t, err, apperrors.ErrTLAExists)
	})

	suite.T().Run("InactiveTeam", func(t *testing.T) {
		teamID := uuid.New()
		team := activeTeam(teamID)
		team.IsActive = false
		suite.teamRepo.EXPECT().GetByID(teamID).Return(team, nil)

		_, err := suite.service.Create(&service.CreateApplicationRequest{
			TeamID: teamID,
			Name:   "Payment Gateway",
			TLA:    "PGW",
		})

		assert.ErrorIs(t, err, apperrors.ErrTeamInactive)
	})

	suite.T().Run("TLAWrongLength", func(t *testing.T) {
		_, err := suite.service.Create(&service.CreateApplicationRequest{
			TeamID: uuid.New(),
			Name:   "Payment Gateway",
			TLA:    "PAYM",
		})

		assert.Error(t, err)
	})
}

// TestAddFromCentralAPI tests importing an application by asset id
func (suite *ApplicationServiceTestSuite) TestAddFromCentralAPI() {
	suite.T().Run("Success_MapsOwnership", func(t *testing.T) {
		teamID := uuid.New()
		suite.teamRepo.EXPECT().GetByID(teamID).Return(activeTeam(teamID), nil)
		suite.repo.EXPECT().ActiveTLAExists(teamID, "PGW", nil).Return(false, nil)
		suite.central.EXPECT().FetchApplication(gomock.Any(), "APP-1234").Return(&service.CentralApplication{
			Name:            "Payment Gateway",
			AssetID:         "APP-1234",
			LifeCycleStatus: "live",
			Tier:            "tier-1",
			Roles: map[string]service.CentralRole{
				"productOwner": {Name: "Ada Okafor", Email: "ada.okafor@example.com", Band: "B7"},
				"techLead":     {Name: "Li Wei", Email: "li.wei@example.com", Band: "B6"},
			},
		}, nil)
		suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

		app, err := suite.service.AddFromCentralAPI(context.Background(), &service.AddFromCentralAPIRequest{
			TeamID:  teamID,
			AssetID: "APP-1234",
			TLA:     "pgw",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Payment Gateway", app.Name)
		assert.Equal(t, "APP-1234", app.AssetID)
		assert.Equal(t, models.SyncStatusSuccess, app.CentralAPISyncStatus)
		assert.Equal(t, "Ada Okafor", app.ProductOwner.Name)
		assert.Equal(t, "li.wei@example.com", app.TechLead.Email)
		assert.Empty(t, app.ServiceOwner.Name)
	})

	suite.T().Run("FetchFails", func(t *testing.T) {
		teamID := uuid.New()
		suite.teamRepo.EXPECT().GetByID(teamID).Return(activeTeam(teamID), nil)
		suite.repo.EXPECT().ActiveTLAExists(teamID, "PGW", nil).Return(false, nil)
		suite.central.EXPECT().FetchApplication(gomock.Any(), "APP-1234").
			Return(nil, apperrors.NewExternalError("central api", "status 502"))

		_, err := suite.service.AddFromCentralAPI(context.Background(), &service.AddFromCentralAPIRequest{
			TeamID:  teamID,
			AssetID: "APP-1234",
			TLA:     "PGW",
		})

		assert.True(t, apperrors.IsExternal(err))
	})
}

// TestSyncFromCentralAPI tests refreshing mirrored fields
func (suite *ApplicationServiceTestSuite) TestSyncFromCentralAPI() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		app := &models.Application{
			BaseModel: models.BaseModel{ID: id},
			Name:      "Old Name",
			AssetID:   "APP-1234",
		}
		suite.repo.EXPECT().GetByID(id).Return(app, nil)
		suite.central.EXPECT().FetchApplication(gomock.Any(), "APP-1234").Return(&service.CentralApplication{
			Name:            "New Name",
			AssetID:         "APP-1234",
			LifeCycleStatus: "live",
			Tier:            "tier-2",
		}, nil)
		suite.repo.EXPECT().Update(gomock.Any()).Return(nil)

		synced, err := suite.service.SyncFromCentralAPI(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, "New Name", synced.Name)
		assert.Equal(t, models.SyncStatusSuccess, synced.CentralAPISyncStatus)
		assert.NotNil(t, synced.CentralAPISyncedAt)
	})

	suite.T().Run("FetchFailureRecordedOnRow", func(t *testing.T) {
		id := uuid.New()
		app := &models.Application{
			BaseModel: models.BaseModel{ID: id},
			AssetID:   "APP-1234",
		}
		suite.repo.EXPECT().GetByID(id).Return(app, nil)
		suite.central.EXPECT().FetchApplication(gomock.Any(), "APP-1234").
			Return(nil, apperrors.NewExternalError("central api", "status 502"))
		suite.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Application) error {
			assert.Equal(t, models.SyncStatusFailed, a.CentralAPISyncStatus)
			assert.NotNil(t, a.CentralAPISyncedAt)
			return nil
		})

		_, err := suite.service.SyncFromCentralAPI(context.Background(), id)

		assert.True(t, apperrors.IsExternal(err))
	})

	suite.T().Run("NoAssetID", func(t *testing.T) {
		id := uuid.New()
		suite.repo.EXPECT().GetByID(id).Return(&models.Application{
			BaseModel: models.BaseModel{ID: id},
		}, nil)

		_, err := suite.service.SyncFromCentralAPI(context.Background(), id)

		assert.True(t, apperrors.IsValidation(err))
	})
}

// TestDelete tests soft-deleting an application
func (suite *ApplicationServiceTestSuite) TestDelete() {
	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.repo.EXPECT().SetStatus(id, models.ApplicationStatusDeleted).Return(gorm.ErrRecordNotFound)

		err := suite.service.Delete(id)

		assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	})
}

// TestApplicationServiceTestSuite runs the test suite
func TestApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}
