package handlers_test

import (
	"net/http"
	"testing"
	"time"

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

type DraftHandlerTestSuite struct {
	suite.Suite
	http    *testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	service *mocks.MockDraftServiceInterface
}

func (suite *DraftHandlerTestSuite) SetupTest() {
	suite.http = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockDraftServiceInterface(suite.ctrl)

	handler := handlers.NewDraftHandler(suite.service)
	suite.http.Router.PUT("/drafts", handler.Save)
	suite.http.Router.PUT("/drafts/autosave", handler.AutoSave)
	suite.http.Router.DELETE("/drafts/:id", handler.Delete)
	suite.http.Router.GET("/teams/:id/draft", handler.Get)
	suite.http.Router.GET("/teams/:id/drafts", handler.List)
	suite.http.Router.GET("/teams/:id/prefill", handler.Prefill)
}

func (suite *DraftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func draftBody(teamID uuid.UUID) *service.SaveDraftRequest {
	return &service.SaveDraftRequest{
		TeamID:       teamID,
		HandoverFrom: "morning shift",
		HandoverTo:   "evening shift",
		Entries: []models.DraftEntry{
			{EntryType: models.EntryTypeINC, Title: "Payment retries elevated", ReferenceID: "INC0012345"},
		},
	}
}

func (suite *DraftHandlerTestSuite) TestSave() {
	teamID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		response := &service.SaveDraftResponse{
			DraftID:    uuid.New(),
			IsNewDraft: true,
			SavedAt:    time.Now(),
		}
		suite.service.EXPECT().SaveDraft(gomock.Any()).Return(response, nil)

		recorder := suite.http.MakeRequest(http.MethodPut, "/drafts", draftBody(teamID))

		var got service.SaveDraftResponse
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Equal(response.DraftID, got.DraftID)
		suite.True(got.IsNewDraft)
	})

	suite.T().Run("TeamMissing", func(t *testing.T) {
		suite.service.EXPECT().SaveDraft(gomock.Any()).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.http.MakeRequest(http.MethodPut, "/drafts", draftBody(teamID))

		testutils.AssertErrorEnvelope(t, recorder, http.StatusNotFound, "")
	})

	suite.T().Run("MalformedBody", func(t *testing.T) {
		recorder := suite.http.MakeRequest(http.MethodPut, "/drafts", []string{"nope"})

		testutils.AssertErrorEnvelope(t, recorder, http.StatusBadRequest, "invalid request body")
	})
}

func (suite *DraftHandlerTestSuite) TestAutoSave() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		response := &service.SaveDraftResponse{DraftID: uuid.New(), SavedAt: time.Now()}
		suite.service.EXPECT().AutoSaveDraft(gomock.Any()).Return(response, nil)

		recorder := suite.http.MakeRequest(http.MethodPut, "/drafts/autosave", draftBody(teamID))

		var got service.SaveDraftResponse
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.False(got.IsNewDraft)
	})
}

func (suite *DraftHandlerTestSuite) TestGet() {
	teamID := uuid.New()

	suite.T().Run("NullDataWhenAbsent", func(t *testing.T) {
		suite.service.EXPECT().GetDraft(teamID, nil, nil).Return(nil, nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/teams/"+teamID.String()+"/draft", nil)

		env := testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, nil)
		suite.Equal("null", string(env.Data))
	})

	suite.T().Run("ScopedByApplication", func(t *testing.T) {
		appID := uuid.New()
		draft := &service.DraftResponse{ID: uuid.New(), TeamID: teamID, ApplicationID: &appID}
		suite.service.EXPECT().GetDraft(teamID, gomock.Any(), nil).DoAndReturn(
			func(_ uuid.UUID, applicationID, _ *uuid.UUID) (*service.DraftResponse, error) {
				suite.Require().NotNil(applicationID)
				suite.Equal(appID, *applicationID)
				return draft, nil
			})

		recorder := suite.http.MakeRequest(http.MethodGet,
			"/teams/"+teamID.String()+"/draft?application_id="+appID.String(), nil)

		var got service.DraftResponse
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Equal(draft.ID, got.ID)
	})

	suite.T().Run("InvalidScopeID", func(t *testing.T) {
		recorder := suite.http.MakeRequest(http.MethodGet,
			"/teams/"+teamID.String()+"/draft?application_id=not-a-uuid", nil)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusBadRequest, "")
	})
}

func (suite *DraftHandlerTestSuite) TestDelete() {
	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.service.EXPECT().DeleteDraft(id).Return(apperrors.ErrDraftNotFound)

		recorder := suite.http.MakeRequest(http.MethodDelete, "/drafts/"+id.String(), nil)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusNotFound, "")
	})
}

func (suite *DraftHandlerTestSuite) TestPrefill() {
	teamID := uuid.New()

	suite.T().Run("PassesHandoverDefaults", func(t *testing.T) {
		prefill := &service.PrefillResponse{
			Source:       service.PrefillSourceDefault,
			HandoverFrom: "alice",
			HandoverTo:   "bob",
			Entries:      []models.DraftEntry{},
		}
		suite.service.EXPECT().GetPrefillData(teamID, nil, nil, "alice", "bob").Return(prefill, nil)

		recorder := suite.http.MakeRequest(http.MethodGet,
			"/teams/"+teamID.String()+"/prefill?handover_from=alice&handover_to=bob", nil)

		var got service.PrefillResponse
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Equal(service.PrefillSourceDefault, got.Source)
		suite.Equal("alice", got.HandoverFrom)
	})
}

func TestDraftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}
