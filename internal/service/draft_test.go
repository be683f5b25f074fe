package service_test

import (
	"encoding/json"
	"testing"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/mocks"
	"ensemble-backend/internal/repository"
	"ensemble-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DraftServiceTestSuite defines the test suite for DraftService
type DraftServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	draftRepo    *mocks.MockDraftRepositoryInterface
	turnoverRepo *mocks.MockTurnoverRepositoryInterface
	teamRepo     *mocks.MockTeamRepositoryInterface
	service      *service.DraftService
}

// SetupTest sets up the test suite
func (suite *DraftServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.draftRepo = mocks.NewMockDraftRepositoryInterface(suite.ctrl)
	suite.turnoverRepo = mocks.NewMockTurnoverRepositoryInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.service = service.NewDraftService(suite.draftRepo, suite.turnoverRepo, suite.teamRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *DraftServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func teamScope(teamID uuid.UUID) repository.TurnoverScope {
	return repository.TurnoverScope{TeamID: teamID}
}

// TestSaveDraft tests draft saving
func (suite *DraftServiceTestSuite) TestSaveDraft() {
	suite.T().Run("CreatesWhenAbsent", func(t *testing.T) {
		teamID := uuid.New()
		suite.teamRepo.EXPECT().GetByID(teamID).Return(&models.Team{IsActive: true}, nil)
		suite.draftRepo.EXPECT().GetByScope(teamScope(teamID)).Return(nil, gorm.ErrRecordNotFound)
		suite.draftRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(d *models.TurnoverDraft) error {
			d.ID = uuid.New()
			return nil
		})

		resp, err := suite.service.SaveDraft(&service.SaveDraftRequest{
			TeamID:       teamID,
			HandoverFrom: "alice@example.com",
			HandoverTo:   "bob@example.com",
			Entries: []models.DraftEntry{
				{EntryType: models.EntryTypeINC, Title: "Open incident"},
			},
		})

		assert.NoError(t, err)
		assert.True(t, resp.IsNewDraft)
		assert.NotEqual(t, uuid.Nil, resp.DraftID)
	})

	suite.T().Run("UpdatesInPlace", func(t *testing.T) {
		teamID := uuid.New()
		existingID := uuid.New()
		suite.teamRepo.EXPECT().GetByID(teamID).Return(&models.Team{IsActive: true}, nil)
		suite.draftRepo.EXPECT().GetByScope(teamScope(teamID)).Return(&models.TurnoverDraft{
			BaseModel: models.BaseModel{ID: existingID},
			TeamID:    teamID,
		}, nil)
		suite.draftRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(d *models.TurnoverDraft) error {
			assert.Equal(t, existingID, d.ID)
			return nil
		})

		resp, err := suite.service.SaveDraft(&service.SaveDraftRequest{
			TeamID:  teamID,
			Entries: []models.DraftEntry{},
		})

		assert.NoError(t, err)
		assert.False(t, resp.IsNewDraft)
		assert.Equal(t, existingID, resp.DraftID)
	})

	suite.T().Run("RejectsUnknownEntryType", func(t *testing.T) {
		_, err := suite.service.SaveDraft(&service.SaveDraftRequest{
			TeamID: uuid.New(),
			Entries: []models.DraftEntry{
				{EntryType: models.EntryType("ticket"), Title: "bad"},
			},
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidEntryType)
	})

	suite.T().Run("RejectsUnknownPriority", func(t *testing.T) {
		_, err := suite.service.SaveDraft(&service.SaveDraftRequest{
			TeamID: uuid.New(),
			Entries: []models.DraftEntry{
				{EntryType: models.EntryTypeFYI, Priority: models.EntryPriority("urgent"), Title: "bad"},
			},
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidPriority)
	})

	suite.T().Run("TeamMissing", func(t *testing.T) {
		teamID := uuid.New()
		suite.teamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.SaveDraft(&service.SaveDraftRequest{TeamID: teamID})

		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

// TestGetDraft tests draft retrieval
func (suite *DraftServiceTestSuite) TestGetDraft() {
	suite.T().Run("NilWhenAbsent", func(t *testing.T) {
		teamID := uuid.New()
		suite.draftRepo.EXPECT().GetByScope(teamScope(teamID)).Return(nil, gorm.ErrRecordNotFound)

		resp, err := suite.service.GetDraft(teamID, nil, nil)

		assert.NoError(t, err)
		assert.Nil(t, resp)
	})

	suite.T().Run("DecodesEntries", func(t *testing.T) {
		teamID := uuid.New()
		entries, _ := json.Marshal([]models.DraftEntry{
			{EntryType: models.EntryTypeRFC, Title: "Change window"},
		})
		suite.draftRepo.EXPECT().GetByScope(teamScope(teamID)).Return(&models.TurnoverDraft{
			BaseModel: models.BaseModel{ID: uuid.New()},
			TeamID:    teamID,
			Entries:   entries,
		}, nil)

		resp, err := suite.service.GetDraft(teamID, nil, nil)

		require.NoError(t, err)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "Change window", resp.Entries[0].Title)
	})
}

// TestGetPrefillData tests the three-tier prefill fallback
func (suite *DraftServiceTestSuite) TestGetPrefillData() {
	suite.T().Run("DraftWins", func(t *testing.T) {
		teamID := uuid.New()
		entries, _ := json.Marshal([]models.DraftEntry{
			{EntryType: models.EntryTypeINC, Title: "From draft"},
		})
		suite.draftRepo.EXPECT().GetByScope(teamScope(teamID)).Return(&models.TurnoverDraft{
			TeamID:       teamID,
			HandoverFrom: "draft-from@example.com",
			HandoverTo:   "draft-to@example.com",
			Entries:      entries,
		}, nil)

		resp, err := suite.service.GetPrefillData(teamID, nil, nil, "q@example.com", "r@example.com")

		require.NoError(t, err)
		assert.Equal(t, service.PrefillSourceDraft, resp.Source)
		assert.Equal(t, "draft-from@example.com", resp.HandoverFrom)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "From draft", resp.Entries[0].Title)
	})

	suite.T().Run("FallsBackToPreviousTurnover", func(t *testing.T) {
		teamID := uuid.New()
		suite.draftRepo.EXPECT().GetByScope(teamScope(teamID)).Return(nil, gorm.ErrRecordNotFound)
		suite.turnoverRepo.EXPECT().GetLatestCompleted(teamScope(teamID)).Return(&models.Turnover{
			TeamID:       teamID,
			HandoverFrom: "prev-from@example.com",
			HandoverTo:   "prev-to@example.com",
			Entries: []models.TurnoverEntry{
				{EntryType: models.EntryTypeAlert, Priority: models.EntryPriorityFlagged, Title: "Carried alert"},
			},
		}, nil)

		resp, err := suite.service.GetPrefillData(teamID, nil, nil, "q@example.com", "r@example.com")

		require.NoError(t, err)
		assert.Equal(t, service.PrefillSourcePrevious, resp.Source)
		assert.Equal(t, "prev-from@example.com", resp.HandoverFrom)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, models.EntryPriorityFlagged, resp.Entries[0].Priority)
	})

	suite.T().Run("DefaultShellWhenNothingExists", func(t *testing.T) {
		teamID := uuid.New()
		suite.draftRepo.EXPECT().GetByScope(teamScope(teamID)).Return(nil, gorm.ErrRecordNotFound)
		suite.turnoverRepo.EXPECT().GetLatestCompleted(teamScope(teamID)).Return(nil, gorm.ErrRecordNotFound)

		resp, err := suite.service.GetPrefillData(teamID, nil, nil, "q@example.com", "r@example.com")

		require.NoError(t, err)
		assert.Equal(t, service.PrefillSourceDefault, resp.Source)
		assert.Equal(t, "q@example.com", resp.HandoverFrom)
		assert.Equal(t, "r@example.com", resp.HandoverTo)
		assert.Empty(t, resp.Entries)
	})
}

// TestDeleteDraft tests draft deletion
func (suite *DraftServiceTestSuite) TestDeleteDraft() {
	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.draftRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

		err := suite.service.DeleteDraft(id)

		assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
	})
}

// TestDraftServiceTestSuite runs the test suite
func TestDraftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DraftServiceTestSuite))
}
