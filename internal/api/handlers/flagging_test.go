package handlers_test

import (
	"net/http"
	"testing"

	"ensemble-backend/internal/api/handlers"
	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/mocks"
	"ensemble-backend/internal/service"
	"ensemble-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FlaggingHandlerTestSuite struct {
	suite.Suite
	http    *testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	service *mocks.MockFlaggingServiceInterface
}

func (suite *FlaggingHandlerTestSuite) SetupTest() {
	suite.http = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockFlaggingServiceInterface(suite.ctrl)

	handler := handlers.NewFlaggingHandler(suite.service)
	suite.http.Router.POST("/entries/:id/flag", handler.Flag)
	suite.http.Router.POST("/entries/:id/unflag", handler.Unflag)
	suite.http.Router.POST("/entries/bulk-flag", handler.BulkFlag)
	suite.http.Router.GET("/teams/:id/flagged", handler.ListFlagged)
	suite.http.Router.GET("/teams/:id/flagged/counts", handler.FlaggedCounts)
}

func (suite *FlaggingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FlaggingHandlerTestSuite) TestFlag() {
	entryID := uuid.New()

	suite.T().Run("Success_FillsIDAndIdentity", func(t *testing.T) {
		suite.service.EXPECT().FlagEntry(gomock.Any()).DoAndReturn(func(req *service.FlagEntryRequest) error {
			suite.Equal(entryID, req.EntryID)
			suite.Equal(models.EntryPriorityNeedsAction, req.Priority)
			suite.Equal("anonymous", req.SetBy)
			return nil
		})

		recorder := suite.http.MakeRequest(http.MethodPost, "/entries/"+entryID.String()+"/flag",
			map[string]interface{}{"priority": "needs_action", "comment": "follow up next shift"})

		env := testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, nil)
		suite.Contains(env.Message, "flagged")
	})

	suite.T().Run("EntryMissing", func(t *testing.T) {
		suite.service.EXPECT().FlagEntry(gomock.Any()).Return(apperrors.ErrTurnoverEntryNotFound)

		recorder := suite.http.MakeRequest(http.MethodPost, "/entries/"+entryID.String()+"/flag",
			map[string]interface{}{"priority": "needs_action"})

		testutils.AssertErrorEnvelope(t, recorder, http.StatusNotFound, "")
	})

	suite.T().Run("InvalidPriority", func(t *testing.T) {
		suite.service.EXPECT().FlagEntry(gomock.Any()).Return(apperrors.ErrInvalidPriority)

		recorder := suite.http.MakeRequest(http.MethodPost, "/entries/"+entryID.String()+"/flag",
			map[string]interface{}{"priority": "shiny"})

		testutils.AssertErrorEnvelope(t, recorder, http.StatusBadRequest, "")
	})
}

func (suite *FlaggingHandlerTestSuite) TestUnflag() {
	suite.T().Run("Success", func(t *testing.T) {
		entryID := uuid.New()
		suite.service.EXPECT().UnflagEntry(entryID).Return(nil)

		recorder := suite.http.MakeRequest(http.MethodPost, "/entries/"+entryID.String()+"/unflag", nil)

		env := testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, nil)
		suite.Contains(env.Message, "unflagged")
	})
}

func (suite *FlaggingHandlerTestSuite) TestBulkFlag() {
	suite.T().Run("Success", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		suite.service.EXPECT().BulkFlagEntries(gomock.Any()).DoAndReturn(
			func(req *service.BulkFlagRequest) (*service.BulkFlagResponse, error) {
				suite.Len(req.EntryIDs, 3)
				suite.Equal(models.EntryPriorityImportant, req.Priority)
				return &service.BulkFlagResponse{Updated: 3}, nil
			})

		recorder := suite.http.MakeRequest(http.MethodPost, "/entries/bulk-flag",
			map[string]interface{}{"entry_ids": ids, "priority": "important"})

		var got service.BulkFlagResponse
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Equal(int64(3), got.Updated)
	})
}

func (suite *FlaggingHandlerTestSuite) TestListFlagged() {
	teamID := uuid.New()

	suite.T().Run("FiltersByPriority", func(t *testing.T) {
		entries := []models.TurnoverEntry{{EntryType: models.EntryTypeINC, Priority: models.EntryPriorityNeedsAction, Title: "Payment retries elevated"}}
		suite.service.EXPECT().GetFlaggedEntries(teamID, nil, nil, gomock.Any()).DoAndReturn(
			func(_ uuid.UUID, _, _ *uuid.UUID, priority *models.EntryPriority) ([]models.TurnoverEntry, error) {
				suite.Require().NotNil(priority)
				suite.Equal(models.EntryPriorityNeedsAction, *priority)
				return entries, nil
			})

		recorder := suite.http.MakeRequest(http.MethodGet,
			"/teams/"+teamID.String()+"/flagged?priority=needs_action", nil)

		var got []models.TurnoverEntry
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Len(got, 1)
	})
}

func (suite *FlaggingHandlerTestSuite) TestFlaggedCounts() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		counts := &service.FlaggedCountsResponse{
			Total: 4,
			ByPriority: map[models.EntryPriority]int64{
				models.EntryPriorityNeedsAction:     3,
				models.EntryPriorityImportant: 1,
			},
			ByType: map[models.EntryType]int64{models.EntryTypeINC: 4},
		}
		suite.service.EXPECT().GetFlaggedCounts(teamID).Return(counts, nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/teams/"+teamID.String()+"/flagged/counts", nil)

		var got service.FlaggedCountsResponse
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Equal(int64(4), got.Total)
		suite.Equal(int64(3), got.ByPriority[models.EntryPriorityNeedsAction])
	})
}

func TestFlaggingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FlaggingHandlerTestSuite))
}
