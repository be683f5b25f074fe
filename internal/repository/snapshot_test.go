//go:build integration
// +build integration

package repository

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SnapshotRepositoryTestSuite tests the SnapshotRepository
type SnapshotRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SnapshotRepository
	teams         *testutils.TeamFactory
	applications  *testutils.ApplicationFactory
}

func (suite *SnapshotRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSnapshotRepository(suite.baseTestSuite.DB)
	suite.teams = testutils.NewTeamFactory()
	suite.applications = testutils.NewApplicationFactory()
}

func (suite *SnapshotRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SnapshotRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *SnapshotRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SnapshotRepositoryTestSuite) createTeam() *models.Team {
	team := suite.teams.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

func (suite *SnapshotRepositoryTestSuite) newSnapshot(teamID uuid.UUID, date time.Time) *models.TurnoverSnapshot {
	data, _ := json.Marshal(map[string]interface{}{"summary": "frozen"})
	return &models.TurnoverSnapshot{
		TeamID:       teamID,
		SnapshotDate: date,
		TurnoverData: data,
		EntryCount:   1,
	}
}

func (suite *SnapshotRepositoryTestSuite) TestOneSnapshotPerScopePerDay() {
	team := suite.createTeam()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	suite.NoError(suite.repo.Create(suite.newSnapshot(team.ID, day)))

	// second insert for the same team-wide scope and day collides even
	// though both scope columns are NULL
	err := suite.repo.Create(suite.newSnapshot(team.ID, day))
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))

	// a different day is fine
	suite.NoError(suite.repo.Create(suite.newSnapshot(team.ID, day.AddDate(0, 0, 1))))

	// an application scope on the same day is a distinct snapshot
	app := suite.applications.Create(team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(app).Error)
	scoped := suite.newSnapshot(team.ID, day)
	scoped.ApplicationID = &app.ID
	suite.NoError(suite.repo.Create(scoped))
}

func (suite *SnapshotRepositoryTestSuite) TestGetByScopeAndDate() {
	team := suite.createTeam()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	snapshot := suite.newSnapshot(team.ID, day)
	suite.NoError(suite.repo.Create(snapshot))

	stored, err := suite.repo.GetByScopeAndDate(TurnoverScope{TeamID: team.ID}, day)
	suite.NoError(err)
	suite.Equal(snapshot.ID, stored.ID)
	suite.Equal(1, stored.EntryCount)

	_, err = suite.repo.GetByScopeAndDate(TurnoverScope{TeamID: team.ID}, day.AddDate(0, 0, 1))
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *SnapshotRepositoryTestSuite) TestListByTeam() {
	team := suite.createTeam()
	base := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.newSnapshot(team.ID, base.AddDate(0, 0, i))))
	}

	// unbounded, newest first
	snapshots, total, err := suite.repo.ListByTeam(team.ID, nil, nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(snapshots, 5)

	// bounded by date range, inclusive
	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 3)
	snapshots, total, err = suite.repo.ListByTeam(team.ID, &from, &to, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)

	// paged
	snapshots, total, err = suite.repo.ListByTeam(team.ID, nil, nil, 2, 2)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(snapshots, 2)
}

func TestSnapshotRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepositoryTestSuite))
}
