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

type TeamHandlerTestSuite struct {
	suite.Suite
	http    *testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	service *mocks.MockTeamServiceInterface
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.http = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockTeamServiceInterface(suite.ctrl)

	handler := handlers.NewTeamHandler(suite.service)
	suite.http.Router.GET("/teams", handler.List)
	suite.http.Router.GET("/teams/by-name/:name", handler.GetByName)
	suite.http.Router.GET("/teams/:id", handler.Get)
	suite.http.Router.PUT("/teams/:id", handler.Update)
	suite.http.Router.POST("/teams/:id/deactivate", handler.Deactivate)
	suite.http.Router.POST("/teams/:id/reactivate", handler.Reactivate)
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestList() {
	suite.T().Run("ActiveOnlyFlag", func(t *testing.T) {
		teams := []models.Team{{Name: "payments", IsActive: true}}
		suite.service.EXPECT().List(true, 1, 20).Return(teams, int64(1), nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/teams?active_only=true", nil)

		var got []models.Team
		env := testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Len(got, 1)
		suite.Require().NotNil(env.Meta)
		suite.Equal(int64(1), env.Meta.Total)
	})
}

func (suite *TeamHandlerTestSuite) TestGet() {
	suite.T().Run("Success", func(t *testing.T) {
		team := &models.Team{Name: "payments", IsActive: true}
		team.ID = uuid.New()
		suite.service.EXPECT().GetByID(team.ID).Return(team, nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/teams/"+team.ID.String(), nil)

		var got models.Team
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Equal(team.ID, got.ID)
		suite.Equal("payments", got.Name)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.service.EXPECT().GetByID(id).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.http.MakeRequest(http.MethodGet, "/teams/"+id.String(), nil)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusNotFound, "")
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.http.MakeRequest(http.MethodGet, "/teams/nope", nil)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusBadRequest, "")
	})
}

func (suite *TeamHandlerTestSuite) TestGetByName() {
	suite.T().Run("Success", func(t *testing.T) {
		team := &models.Team{Name: "payments"}
		suite.service.EXPECT().GetByName("payments").Return(team, nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/teams/by-name/payments", nil)

		var got models.Team
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Equal("payments", got.Name)
	})
}

func (suite *TeamHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	body := &service.UpdateTeamRequest{
		UserGroup:    "payments-users",
		AdminGroup:   "payments-admins",
		ContactName:  "Dana Levi",
		ContactEmail: "dana.levi@example.com",
	}

	suite.T().Run("Success", func(t *testing.T) {
		updated := &models.Team{Name: "payments", UserGroup: body.UserGroup}
		updated.ID = id
		suite.service.EXPECT().Update(id, gomock.Any()).Return(updated, nil)

		recorder := suite.http.MakeRequest(http.MethodPut, "/teams/"+id.String(), body)

		var got models.Team
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Equal("payments-users", got.UserGroup)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.service.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.http.MakeRequest(http.MethodPut, "/teams/"+id.String(), body)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusNotFound, "")
	})
}

func (suite *TeamHandlerTestSuite) TestDeactivate() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.service.EXPECT().Deactivate(id).Return(nil)

		recorder := suite.http.MakeRequest(http.MethodPost, "/teams/"+id.String()+"/deactivate", nil)

		env := testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, nil)
		suite.Contains(env.Message, "deactivated")
	})
}

func (suite *TeamHandlerTestSuite) TestReactivate() {
	suite.T().Run("AlreadyInactiveConflict", func(t *testing.T) {
		id := uuid.New()
		suite.service.EXPECT().Reactivate(id).Return(apperrors.NewConflictError("team is already active"))

		recorder := suite.http.MakeRequest(http.MethodPost, "/teams/"+id.String()+"/reactivate", nil)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusConflict, "already active")
	})
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
