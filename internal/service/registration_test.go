package service_test

import (
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

// RegistrationServiceTestSuite defines the test suite for RegistrationService
type RegistrationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockRegistrationRepositoryInterface
	teamRepo *mocks.MockTeamRepositoryInterface
	service  *service.RegistrationService
}

// SetupTest sets up the test suite
func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockRegistrationRepositoryInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.service = service.NewRegistrationService(suite.repo, suite.teamRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *RegistrationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validSubmit() *service.SubmitRegistrationRequest {
	return &service.SubmitRegistrationRequest{
		TeamName:     "checkout",
		UserGroup:    "checkout-users",
		AdminGroup:   "checkout-admins",
		ContactName:  "Priya Nair",
		ContactEmail: "priya.nair@example.com",
		RequestedBy:  "priya.nair@example.com",
	}
}

// TestSubmit tests registration submission
func (suite *RegistrationServiceTestSuite) TestSubmit() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.teamRepo.EXPECT().NameExists("checkout").Return(false, nil)
		suite.repo.EXPECT().PendingExistsForName("checkout").Return(false, nil)
		suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

		request, err := suite.service.Submit(validSubmit())

		assert.NoError(t, err)
		assert.Equal(t, "checkout", request.TeamName)
		assert.Equal(t, models.RegistrationStatusPending, request.Status)
	})

	suite.T().Run("TeamNameTaken", func(t *testing.T) {
		suite.teamRepo.EXPECT().NameExists("checkout").Return(true, nil)

		_, err := suite.service.Submit(validSubmit())

		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
	})

	suite.T().Run("PendingRequestExists", func(t *testing.T) {
		suite.teamRepo.EXPECT().NameExists("checkout").Return(false, nil)
		suite.repo.EXPECT().PendingExistsForName("checkout").Return(true, nil)

		_, err := suite.service.Submit(validSubmit())

		assert.ErrorIs(t, err, apperrors.ErrRegistrationPending)
	})

	suite.T().Run("InvalidEmail", func(t *testing.T) {
		req := validSubmit()
		req.ContactEmail = "not-an-email"

		_, err := suite.service.Submit(req)

		assert.Error(t, err)
		var vErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &vErrs)
	})
}

// TestApprove tests the approval decision
func (suite *RegistrationServiceTestSuite) TestApprove() {
	review := &service.ReviewRequest{ReviewedBy: "admin@example.com", Comment: "looks good"}

	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		team := &models.Team{Name: "checkout", IsActive: true}
		suite.repo.EXPECT().Approve(id, "admin@example.com", "looks good").Return(team, nil)

		created, err := suite.service.Approve(id, review)

		assert.NoError(t, err)
		assert.Equal(t, "checkout", created.Name)
	})

	suite.T().Run("AlreadyDecided", func(t *testing.T) {
		// The conditional update matches no rows; re-fetch shows the
		// request was decided by someone else.
		id := uuid.New()
		suite.repo.EXPECT().Approve(id, "admin@example.com", "looks good").Return(nil, gorm.ErrRecordNotFound)
		suite.repo.EXPECT().GetByID(id).Return(&models.TeamRegistrationRequest{
			Status: models.RegistrationStatusRejected,
		}, nil)

		_, err := suite.service.Approve(id, review)

		assert.ErrorIs(t, err, apperrors.ErrRequestNotPending)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.repo.EXPECT().Approve(id, "admin@example.com", "looks good").Return(nil, gorm.ErrRecordNotFound)
		suite.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.Approve(id, review)

		assert.ErrorIs(t, err, apperrors.ErrRegistrationRequestNotFound)
	})

	suite.T().Run("TeamNameRaced", func(t *testing.T) {
		// A team with the requested name was created between submission
		// and approval.
		id := uuid.New()
		suite.repo.EXPECT().Approve(id, "admin@example.com", "looks good").Return(nil, gorm.ErrDuplicatedKey)

		_, err := suite.service.Approve(id, review)

		assert.ErrorIs(t, err, apperrors.ErrTeamExists)
	})

	suite.T().Run("MissingReviewer", func(t *testing.T) {
		_, err := suite.service.Approve(uuid.New(), &service.ReviewRequest{})

		assert.Error(t, err)
	})
}

// TestReject tests the rejection decision
func (suite *RegistrationServiceTestSuite) TestReject() {
	review := &service.ReviewRequest{ReviewedBy: "admin@example.com", Comment: "duplicate of platform team"}

	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.repo.EXPECT().Reject(id, "admin@example.com", "duplicate of platform team").Return(nil)

		err := suite.service.Reject(id, review)

		assert.NoError(t, err)
	})

	suite.T().Run("AlreadyDecided", func(t *testing.T) {
		id := uuid.New()
		suite.repo.EXPECT().Reject(id, "admin@example.com", "duplicate of platform team").Return(gorm.ErrRecordNotFound)
		suite.repo.EXPECT().GetByID(id).Return(&models.TeamRegistrationRequest{
			Status: models.RegistrationStatusApproved,
		}, nil)

		err := suite.service.Reject(id, review)

		assert.ErrorIs(t, err, apperrors.ErrRequestNotPending)
	})
}

// TestList tests listing with status filter
func (suite *RegistrationServiceTestSuite) TestList() {
	suite.T().Run("InvalidStatus", func(t *testing.T) {
		status := models.RegistrationStatus("bogus")

		_, _, err := suite.service.List(&status, 1, 20)

		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	suite.T().Run("DefaultsPaging", func(t *testing.T) {
		status := models.RegistrationStatusPending
		suite.repo.EXPECT().List(&status, 20, 0).Return([]models.TeamRegistrationRequest{}, int64(0), nil)

		_, total, err := suite.service.List(&status, 0, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

// TestRegistrationServiceTestSuite runs the test suite
func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
