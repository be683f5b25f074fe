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

type RegistrationHandlerTestSuite struct {
	suite.Suite
	http    *testutils.HTTPTestSuite
	ctrl    *gomock.Controller
	service *mocks.MockRegistrationServiceInterface
}

func (suite *RegistrationHandlerTestSuite) SetupTest() {
	suite.http = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.service = mocks.NewMockRegistrationServiceInterface(suite.ctrl)

	handler := handlers.NewRegistrationHandler(suite.service)
	suite.http.Router.POST("/registrations", handler.Submit)
	suite.http.Router.GET("/registrations", handler.List)
	suite.http.Router.GET("/registrations/:id", handler.Get)
	suite.http.Router.POST("/registrations/:id/approve", handler.Approve)
	suite.http.Router.POST("/registrations/:id/reject", handler.Reject)
}

func (suite *RegistrationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func submitBody() *service.SubmitRegistrationRequest {
	return &service.SubmitRegistrationRequest{
		TeamName:     "payments",
		UserGroup:    "payments-users",
		AdminGroup:   "payments-admins",
		ContactName:  "Dana Levi",
		ContactEmail: "dana.levi@example.com",
		RequestedBy:  "dana.levi",
	}
}

func (suite *RegistrationHandlerTestSuite) TestSubmit() {
	suite.T().Run("Success", func(t *testing.T) {
		body := submitBody()
		created := &models.TeamRegistrationRequest{
			TeamName: body.TeamName,
			Status:   models.RegistrationStatusPending,
		}
		created.ID = uuid.New()
		suite.service.EXPECT().Submit(gomock.Any()).Return(created, nil)

		recorder := suite.http.MakeRequest(http.MethodPost, "/registrations", body)

		var got models.TeamRegistrationRequest
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusCreated, &got)
		suite.Equal(created.ID, got.ID)
		suite.Equal(models.RegistrationStatusPending, got.Status)
	})

	suite.T().Run("TeamNameTaken", func(t *testing.T) {
		suite.service.EXPECT().Submit(gomock.Any()).Return(nil, apperrors.ErrTeamExists)

		recorder := suite.http.MakeRequest(http.MethodPost, "/registrations", submitBody())

		testutils.AssertErrorEnvelope(t, recorder, http.StatusConflict, "team")
	})

	suite.T().Run("MalformedBody", func(t *testing.T) {
		recorder := suite.http.MakeRequest(http.MethodPost, "/registrations", "not an object")

		testutils.AssertErrorEnvelope(t, recorder, http.StatusBadRequest, "invalid request body")
	})
}

func (suite *RegistrationHandlerTestSuite) TestGet() {
	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.service.EXPECT().GetByID(id).Return(nil, apperrors.ErrRegistrationRequestNotFound)

		recorder := suite.http.MakeRequest(http.MethodGet, "/registrations/"+id.String(), nil)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusNotFound, "")
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.http.MakeRequest(http.MethodGet, "/registrations/not-a-uuid", nil)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusBadRequest, "")
	})
}

func (suite *RegistrationHandlerTestSuite) TestList() {
	suite.T().Run("Success_WithMeta", func(t *testing.T) {
		pending := models.RegistrationStatusPending
		requests := []models.TeamRegistrationRequest{{TeamName: "payments", Status: pending}}
		suite.service.EXPECT().List(&pending, 2, 10).Return(requests, int64(11), nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/registrations?status=pending&page=2&page_size=10", nil)

		var got []models.TeamRegistrationRequest
		env := testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &got)
		suite.Len(got, 1)
		suite.Require().NotNil(env.Meta)
		suite.Equal(2, env.Meta.Page)
		suite.Equal(10, env.Meta.PageSize)
		suite.Equal(int64(11), env.Meta.Total)
	})

	suite.T().Run("InvalidStatus", func(t *testing.T) {
		suite.service.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), apperrors.ErrInvalidStatus)

		recorder := suite.http.MakeRequest(http.MethodGet, "/registrations?status=bogus", nil)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusBadRequest, "")
	})
}

func (suite *RegistrationHandlerTestSuite) TestApprove() {
	id := uuid.New()
	review := &service.ReviewRequest{ReviewedBy: "admin.user", Comment: "looks good"}

	suite.T().Run("Success_ReturnsTeam", func(t *testing.T) {
		team := &models.Team{Name: "payments", IsActive: true}
		team.ID = uuid.New()
		suite.service.EXPECT().Approve(id, gomock.Any()).Return(team, nil)

		recorder := suite.http.MakeRequest(http.MethodPost, "/registrations/"+id.String()+"/approve", review)

		var got models.Team
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusCreated, &got)
		suite.Equal(team.ID, got.ID)
	})

	suite.T().Run("AlreadyDecided", func(t *testing.T) {
		suite.service.EXPECT().Approve(id, gomock.Any()).Return(nil, apperrors.ErrRequestNotPending)

		recorder := suite.http.MakeRequest(http.MethodPost, "/registrations/"+id.String()+"/approve", review)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusConflict, "")
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.service.EXPECT().Approve(id, gomock.Any()).Return(nil, apperrors.ErrRegistrationRequestNotFound)

		recorder := suite.http.MakeRequest(http.MethodPost, "/registrations/"+id.String()+"/approve", review)

		testutils.AssertErrorEnvelope(t, recorder, http.StatusNotFound, "")
	})
}

func (suite *RegistrationHandlerTestSuite) TestReject() {
	id := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.service.EXPECT().Reject(id, gomock.Any()).Return(nil)

		recorder := suite.http.MakeRequest(http.MethodPost, "/registrations/"+id.String()+"/reject",
			&service.ReviewRequest{ReviewedBy: "admin.user"})

		env := testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, nil)
		suite.Contains(env.Message, "rejected")
	})
}

func TestRegistrationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}
