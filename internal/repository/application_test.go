//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ApplicationRepositoryTestSuite tests the ApplicationRepository
type ApplicationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ApplicationRepository
	teams         *testutils.TeamFactory
	applications  *testutils.ApplicationFactory
}

func (suite *ApplicationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewApplicationRepository(suite.baseTestSuite.DB)
	suite.teams = testutils.NewTeamFactory()
	suite.applications = testutils.NewApplicationFactory()
}

func (suite *ApplicationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ApplicationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ApplicationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ApplicationRepositoryTestSuite) createTeam() *models.Team {
	team := suite.teams.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

func (suite *ApplicationRepositoryTestSuite) TestActiveTLAUniquePerTeam() {
	team := suite.createTeam()

	first := suite.applications.WithTLA(team.ID, "PGW")
	suite.NoError(suite.repo.Create(first))

	// the partial unique index rejects a second active app with the TLA
	dup := suite.applications.WithTLA(team.ID, "PGW")
	err := suite.repo.Create(dup)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))

	// a different team may use the same TLA
	other := suite.createTeam()
	suite.NoError(suite.repo.Create(suite.applications.WithTLA(other.ID, "PGW")))
}

func (suite *ApplicationRepositoryTestSuite) TestDeletedApplicationFreesTLA() {
	team := suite.createTeam()

	first := suite.applications.WithTLA(team.ID, "PGW")
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.SetStatus(first.ID, models.ApplicationStatusDeleted))

	// the index only covers active rows
	suite.NoError(suite.repo.Create(suite.applications.WithTLA(team.ID, "PGW")))

	exists, err := suite.repo.ActiveTLAExists(team.ID, "PGW", nil)
	suite.NoError(err)
	suite.True(exists)
}

func (suite *ApplicationRepositoryTestSuite) TestActiveTLAExists() {
	team := suite.createTeam()
	app := suite.applications.WithTLA(team.ID, "PGW")
	suite.NoError(suite.repo.Create(app))

	exists, err := suite.repo.ActiveTLAExists(team.ID, "PGW", nil)
	suite.NoError(err)
	suite.True(exists)

	// an update pre-check excludes the row being updated
	exists, err = suite.repo.ActiveTLAExists(team.ID, "PGW", &app.ID)
	suite.NoError(err)
	suite.False(exists)

	exists, err = suite.repo.ActiveTLAExists(team.ID, "XYZ", nil)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *ApplicationRepositoryTestSuite) TestSetStatus() {
	team := suite.createTeam()
	app := suite.applications.Create(team.ID)
	suite.NoError(suite.repo.Create(app))

	suite.NoError(suite.repo.SetStatus(app.ID, models.ApplicationStatusArchived))

	stored, err := suite.repo.GetByID(app.ID)
	suite.NoError(err)
	suite.Equal(models.ApplicationStatusArchived, stored.Status)

	// unknown id reports not found
	err = suite.repo.SetStatus(uuid.New(), models.ApplicationStatusArchived)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *ApplicationRepositoryTestSuite) TestGetByTeamID() {
	team := suite.createTeam()
	suite.NoError(suite.repo.Create(suite.applications.WithTLA(team.ID, "PGW")))
	suite.NoError(suite.repo.Create(suite.applications.WithTLA(team.ID, "FRD")))
	archived := suite.applications.WithTLA(team.ID, "OLD")
	suite.NoError(suite.repo.Create(archived))
	suite.NoError(suite.repo.SetStatus(archived.ID, models.ApplicationStatusArchived))

	active := models.ApplicationStatusActive
	apps, total, err := suite.repo.GetByTeamID(team.ID, &active, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(apps, 2)

	apps, total, err = suite.repo.GetByTeamID(team.ID, nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
}

func TestApplicationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationRepositoryTestSuite))
}
