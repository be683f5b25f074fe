package service_test

import (
	"testing"
	"time"

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

// FlaggingServiceTestSuite defines the test suite for FlaggingService
type FlaggingServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	entryRepo *mocks.MockTurnoverEntryRepositoryInterface
	service   *service.FlaggingService
}

// SetupTest sets up the test suite
func (suite *FlaggingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.entryRepo = mocks.NewMockTurnoverEntryRepositoryInterface(suite.ctrl)
	suite.service = service.NewFlaggingService(suite.entryRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *FlaggingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestFlagEntry tests setting entry priority
func (suite *FlaggingServiceTestSuite) TestFlagEntry() {
	suite.T().Run("Success", func(t *testing.T) {
		entryID := uuid.New()
		suite.entryRepo.EXPECT().
			SetPriority(entryID, models.EntryPriorityNeedsAction, "please pick this up", "carol@example.com").
			Return(nil)

		err := suite.service.FlagEntry(&service.FlagEntryRequest{
			EntryID:  entryID,
			Priority: models.EntryPriorityNeedsAction,
			Comment:  "please pick this up",
			SetBy:    "carol@example.com",
		})

		assert.NoError(t, err)
	})

	suite.T().Run("InvalidPriority", func(t *testing.T) {
		err := suite.service.FlagEntry(&service.FlagEntryRequest{
			EntryID:  uuid.New(),
			Priority: models.EntryPriority("urgent"),
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidPriority)
	})

	suite.T().Run("EntryMissing", func(t *testing.T) {
		entryID := uuid.New()
		suite.entryRepo.EXPECT().
			SetPriority(entryID, models.EntryPriorityFlagged, "", "").
			Return(gorm.ErrRecordNotFound)

		err := suite.service.FlagEntry(&service.FlagEntryRequest{
			EntryID:  entryID,
			Priority: models.EntryPriorityFlagged,
		})

		assert.ErrorIs(t, err, apperrors.ErrTurnoverEntryNotFound)
	})
}

// TestUnflagEntry tests the reset to normal priority
func (suite *FlaggingServiceTestSuite) TestUnflagEntry() {
	entryID := uuid.New()
	suite.entryRepo.EXPECT().
		SetPriority(entryID, models.EntryPriorityNormal, "", "").
		Return(nil)

	err := suite.service.UnflagEntry(entryID)

	assert.NoError(suite.T(), err)
}

// TestBulkFlagEntries tests flagging several entries at once
func (suite *FlaggingServiceTestSuite) TestBulkFlagEntries() {
	suite.T().Run("Success", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		suite.entryRepo.EXPECT().
			BulkSetPriority(ids, models.EntryPriorityImportant, "", "carol@example.com").
			Return(int64(3), nil)

		resp, err := suite.service.BulkFlagEntries(&service.BulkFlagRequest{
			EntryIDs: ids,
			Priority: models.EntryPriorityImportant,
			SetBy:    "carol@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.Updated)
	})

	suite.T().Run("EmptyIDs", func(t *testing.T) {
		_, err := suite.service.BulkFlagEntries(&service.BulkFlagRequest{
			EntryIDs: []uuid.UUID{},
			Priority: models.EntryPriorityImportant,
		})

		assert.Error(t, err)
	})
}

// TestGetFlaggedCounts tests the aggregate counts
func (suite *FlaggingServiceTestSuite) TestGetFlaggedCounts() {
	teamID := uuid.New()
	suite.entryRepo.EXPECT().CountByPriority(teamID).Return(map[models.EntryPriority]int64{
		models.EntryPriorityFlagged:     2,
		models.EntryPriorityNeedsAction: 1,
	}, nil)
	suite.entryRepo.EXPECT().CountByType(teamID).Return(map[models.EntryType]int64{
		models.EntryTypeINC: 3,
	}, nil)

	resp, err := suite.service.GetFlaggedCounts(teamID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), resp.Total)
	assert.Equal(suite.T(), int64(2), resp.ByPriority[models.EntryPriorityFlagged])
	assert.Equal(suite.T(), int64(3), resp.ByType[models.EntryTypeINC])
}

// TestFlaggingServiceTestSuite runs the test suite
func TestFlaggingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FlaggingServiceTestSuite))
}

func entryWithAge(now time.Time, age time.Duration) models.TurnoverEntry {
	at := now.Add(-age)
	return models.TurnoverEntry{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: at},
		FlaggedAt: &at,
	}
}

// TestGroupByAge tests the fixed age bucket partitioning
func TestGroupByAge(t *testing.T) {
	now := time.Now()
	entries := []models.TurnoverEntry{
		entryWithAge(now, 30*time.Minute),
		entryWithAge(now, 5*time.Hour),
		entryWithAge(now, 48*time.Hour),
		entryWithAge(now, 100*time.Hour),
		entryWithAge(now, 300*time.Hour),
	}

	groups := service.GroupByAge(entries, now)

	assert.Len(t, groups[service.AgeBucketUnderHour], 1)
	assert.Len(t, groups[service.AgeBucketUnderDay], 1)
	assert.Len(t, groups[service.AgeBucketUnderThree], 1)
	assert.Len(t, groups[service.AgeBucketUnderWeek], 1)
	assert.Len(t, groups[service.AgeBucketOverWeek], 1)
}

// TestAgeBucket tests the bucket boundaries
func TestAgeBucket(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{0, service.AgeBucketUnderHour},
		{59 * time.Minute, service.AgeBucketUnderHour},
		{time.Hour, service.AgeBucketUnderDay},
		{23 * time.Hour, service.AgeBucketUnderDay},
		{24 * time.Hour, service.AgeBucketUnderThree},
		{72 * time.Hour, service.AgeBucketUnderWeek},
		{168 * time.Hour, service.AgeBucketOverWeek},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, service.AgeBucket(tt.age), "age %s", tt.age)
	}
}

// TestGroupByDate tests flag-time grouping with creation fallback
func TestGroupByDate(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	flagged := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	entries := []models.TurnoverEntry{
		{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: created}},
		{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: created}, FlaggedAt: &flagged},
	}

	groups := service.GroupByDate(entries)

	assert.Len(t, groups["2026-03-01"], 1)
	assert.Len(t, groups["2026-03-02"], 1)
}

// TestGroupByPriority tests priority partitioning
func TestGroupByPriority(t *testing.T) {
	entries := []models.TurnoverEntry{
		{Priority: models.EntryPriorityFlagged},
		{Priority: models.EntryPriorityFlagged},
		{Priority: models.EntryPriorityNormal},
	}

	groups := service.GroupByPriority(entries)

	assert.Len(t, groups[models.EntryPriorityFlagged], 2)
	assert.Len(t, groups[models.EntryPriorityNormal], 1)
}
