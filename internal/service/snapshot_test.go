package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/mocks"
	"ensemble-backend/internal/repository"
	"ensemble-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SnapshotServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	repo         *mocks.MockSnapshotRepositoryInterface
	turnoverRepo *mocks.MockTurnoverRepositoryInterface
	service      *service.SnapshotService
}

func (suite *SnapshotServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockSnapshotRepositoryInterface(suite.ctrl)
	suite.turnoverRepo = mocks.NewMockTurnoverRepositoryInterface(suite.ctrl)
	suite.service = service.NewSnapshotService(suite.repo, suite.turnoverRepo, validator.New())
}

func (suite *SnapshotServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SnapshotServiceTestSuite) TestCreate() {
	teamID := uuid.New()
	scope := repository.TurnoverScope{TeamID: teamID}

	completed := &models.Turnover{
		TeamID:       teamID,
		HandoverFrom: "morning shift",
		HandoverTo:   "evening shift",
		TurnoverDate: time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC),
		Summary:      "quiet shift, one open incident",
		Entries: []models.TurnoverEntry{
			{EntryType: models.EntryTypeINC, Title: "Payment retries elevated", ReferenceID: "INC0012345"},
			{EntryType: models.EntryTypeRFC, Title: "Gateway cert rotation", ReferenceID: "RFC0007001"},
		},
	}
	completed.ID = uuid.New()

	suite.T().Run("Success_FreezesLatestCompleted", func(t *testing.T) {
		suite.turnoverRepo.EXPECT().GetLatestCompleted(scope).Return(completed, nil)
		suite.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(snapshot *models.TurnoverSnapshot) error {
			suite.Equal(teamID, snapshot.TeamID)
			suite.Equal(2, snapshot.EntryCount)

			var data map[string]interface{}
			suite.Require().NoError(json.Unmarshal(snapshot.TurnoverData, &data))
			suite.Equal(completed.ID.String(), data["turnover_id"])
			suite.Equal("morning shift", data["handover_from"])
			return nil
		})

		snapshot, err := suite.service.Create(&service.CreateSnapshotRequest{TeamID: teamID})

		suite.NoError(err)
		suite.NotNil(snapshot)
	})

	suite.T().Run("DuplicateDateIsConflict", func(t *testing.T) {
		suite.turnoverRepo.EXPECT().GetLatestCompleted(scope).Return(completed, nil)
		suite.repo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

		snapshot, err := suite.service.Create(&service.CreateSnapshotRequest{TeamID: teamID})

		suite.Nil(snapshot)
		suite.ErrorIs(err, apperrors.ErrSnapshotExists)
	})

	suite.T().Run("NoCompletedTurnover", func(t *testing.T) {
		suite.turnoverRepo.EXPECT().GetLatestCompleted(scope).Return(nil, gorm.ErrRecordNotFound)

		snapshot, err := suite.service.Create(&service.CreateSnapshotRequest{TeamID: teamID})

		suite.Nil(snapshot)
		suite.ErrorIs(err, apperrors.ErrTurnoverNotFound)
	})

	suite.T().Run("SubApplicationWithoutApplication", func(t *testing.T) {
		subAppID := uuid.New()

		snapshot, err := suite.service.Create(&service.CreateSnapshotRequest{
			TeamID:           teamID,
			SubApplicationID: &subAppID,
		})

		suite.Nil(snapshot)
		suite.True(apperrors.IsValidation(err))
	})

	suite.T().Run("ExplicitDateTruncatedToDay", func(t *testing.T) {
		requested := time.Date(2026, 8, 28, 17, 45, 3, 0, time.UTC)

		suite.turnoverRepo.EXPECT().GetLatestCompleted(scope).Return(completed, nil)
		suite.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(snapshot *models.TurnoverSnapshot) error {
			suite.Equal(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), snapshot.SnapshotDate)
			return nil
		})

		_, err := suite.service.Create(&service.CreateSnapshotRequest{
			TeamID:       teamID,
			SnapshotDate: &requested,
		})

		suite.NoError(err)
	})
}

func (suite *SnapshotServiceTestSuite) TestGetByID() {
	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		snapshot, err := suite.service.GetByID(id)

		suite.Nil(snapshot)
		suite.ErrorIs(err, apperrors.ErrSnapshotNotFound)
	})
}

func (suite *SnapshotServiceTestSuite) TestListByTeam() {
	teamID := uuid.New()

	suite.T().Run("RejectsInvertedDateRange", func(t *testing.T) {
		from := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, -3)

		_, _, err := suite.service.ListByTeam(teamID, &from, &to, 1, 20)

		suite.True(apperrors.IsValidation(err))
	})

	suite.T().Run("DefaultsPaging", func(t *testing.T) {
		suite.repo.EXPECT().ListByTeam(teamID, nil, nil, 20, 0).Return([]models.TurnoverSnapshot{}, int64(0), nil)

		_, total, err := suite.service.ListByTeam(teamID, nil, nil, 0, 0)

		suite.NoError(err)
		suite.Equal(int64(0), total)
	})
}

func TestSnapshotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotServiceTestSuite))
}
