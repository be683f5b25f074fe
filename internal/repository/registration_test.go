//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RegistrationRepositoryTestSuite tests the RegistrationRepository
type RegistrationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RegistrationRepository
	registrations *testutils.RegistrationFactory
	teams         *testutils.TeamFactory
}

func (suite *RegistrationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRegistrationRepository(suite.baseTestSuite.DB)
	suite.registrations = testutils.NewRegistrationFactory()
	suite.teams = testutils.NewTeamFactory()
}

func (suite *RegistrationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RegistrationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RegistrationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RegistrationRepositoryTestSuite) TestApprove() {
	req := suite.registrations.Create()
	suite.NoError(suite.repo.Create(req))

	team, err := suite.repo.Approve(req.ID, "admin.user", "welcome aboard")

	suite.NoError(err)
	suite.Equal(req.TeamName, team.Name)
	suite.Equal(req.UserGroup, team.UserGroup)
	suite.True(team.IsActive)

	// the request row flips to approved with reviewer metadata
	updated, err := suite.repo.GetByID(req.ID)
	suite.NoError(err)
	suite.Equal(models.RegistrationStatusApproved, updated.Status)
	suite.Equal("admin.user", updated.ReviewedBy)
	suite.NotNil(updated.ReviewedAt)

	// the created team is queryable
	var stored models.Team
	suite.NoError(suite.baseTestSuite.DB.First(&stored, "name = ?", req.TeamName).Error)
	suite.Equal(team.ID, stored.ID)
}

func (suite *RegistrationRepositoryTestSuite) TestApproveAlreadyDecided() {
	req := suite.registrations.Create()
	suite.NoError(suite.repo.Create(req))

	_, err := suite.repo.Approve(req.ID, "first.reviewer", "")
	suite.NoError(err)

	// the conditional update affects no row the second time
	_, err = suite.repo.Approve(req.ID, "second.reviewer", "")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))

	// no second team row was created
	var count int64
	suite.baseTestSuite.DB.Model(&models.Team{}).Where("name = ?", req.TeamName).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *RegistrationRepositoryTestSuite) TestApproveRolledBackOnDuplicateTeamName() {
	existing := suite.teams.WithName("payments-core")
	suite.NoError(suite.baseTestSuite.DB.Create(existing).Error)

	req := suite.registrations.WithTeamName("payments-core")
	suite.NoError(suite.repo.Create(req))

	_, err := suite.repo.Approve(req.ID, "admin.user", "")
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))

	// the transaction rolled back, so the request is still pending
	updated, getErr := suite.repo.GetByID(req.ID)
	suite.NoError(getErr)
	suite.Equal(models.RegistrationStatusPending, updated.Status)
}

func (suite *RegistrationRepositoryTestSuite) TestReject() {
	req := suite.registrations.Create()
	suite.NoError(suite.repo.Create(req))

	suite.NoError(suite.repo.Reject(req.ID, "admin.user", "name policy"))

	updated, err := suite.repo.GetByID(req.ID)
	suite.NoError(err)
	suite.Equal(models.RegistrationStatusRejected, updated.Status)
	suite.Equal("name policy", updated.ReviewComment)

	// no team was created
	var count int64
	suite.baseTestSuite.DB.Model(&models.Team{}).Where("name = ?", req.TeamName).Count(&count)
	suite.Equal(int64(0), count)

	// a second decision finds no pending row
	err = suite.repo.Reject(req.ID, "other.admin", "")
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *RegistrationRepositoryTestSuite) TestPendingExistsForName() {
	req := suite.registrations.WithTeamName("fraud-ops")
	suite.NoError(suite.repo.Create(req))

	exists, err := suite.repo.PendingExistsForName("fraud-ops")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.PendingExistsForName("someone-else")
	suite.NoError(err)
	suite.False(exists)

	// decided requests no longer claim the name
	suite.NoError(suite.repo.Reject(req.ID, "admin.user", ""))
	exists, err = suite.repo.PendingExistsForName("fraud-ops")
	suite.NoError(err)
	suite.False(exists)
}

func (suite *RegistrationRepositoryTestSuite) TestList() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.registrations.Create()))
	}
	rejected := suite.registrations.WithStatus(models.RegistrationStatusRejected)
	suite.NoError(suite.repo.Create(rejected))

	pending := models.RegistrationStatusPending
	requests, total, err := suite.repo.List(&pending, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(requests, 2)

	requests, total, err = suite.repo.List(nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(requests, 4)
}

func (suite *RegistrationRepositoryTestSuite) TestCountByStatus() {
	suite.NoError(suite.repo.Create(suite.registrations.Create()))
	suite.NoError(suite.repo.Create(suite.registrations.Create()))
	suite.NoError(suite.repo.Create(suite.registrations.WithStatus(models.RegistrationStatusApproved)))

	counts, err := suite.repo.CountByStatus()
	suite.NoError(err)
	suite.Equal(int64(2), counts[models.RegistrationStatusPending])
	suite.Equal(int64(1), counts[models.RegistrationStatusApproved])
}

func TestRegistrationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationRepositoryTestSuite))
}
