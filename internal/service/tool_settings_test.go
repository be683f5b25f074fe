package service_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"ensemble-backend/internal/database/models"
	apperrors "ensemble-backend/internal/errors"
	"ensemble-backend/internal/mocks"
	"ensemble-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ToolSettingsServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockToolSettingsRepositoryInterface
	teamRepo *mocks.MockTeamRepositoryInterface
	service  *service.ToolSettingsService
}

func (suite *ToolSettingsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockToolSettingsRepositoryInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.service = service.NewToolSettingsService(suite.repo, suite.teamRepo, validator.New())
}

func (suite *ToolSettingsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func mustSettings(suite *ToolSettingsServiceTestSuite, settings map[string]interface{}) json.RawMessage {
	data, err := json.Marshal(settings)
	suite.Require().NoError(err)
	return data
}

func (suite *ToolSettingsServiceTestSuite) TestGetEffective() {
	teamID := uuid.New()

	suite.T().Run("MergesAllThreeLayers", func(t *testing.T) {
		suite.repo.EXPECT().GetSchema("turnover").Return(&models.ToolSettingsSchema{
			ToolName: "turnover",
			Version:  3,
			Settings: mustSettings(suite, map[string]interface{}{
				"enabled":   true,
				"page_size": float64(20),
				"theme":     "light",
			}),
		}, nil)
		suite.repo.EXPECT().GetGlobal("turnover").Return(&models.GlobalToolSettings{
			ToolName: "turnover",
			Settings: mustSettings(suite, map[string]interface{}{
				"page_size": float64(50),
				"banner":    "maintenance friday",
			}),
		}, nil)
		suite.repo.EXPECT().GetTeam(teamID, "turnover").Return(&models.TeamToolSettings{
			TeamID:   teamID,
			ToolName: "turnover",
			Settings: mustSettings(suite, map[string]interface{}{
				"theme": "dark",
			}),
		}, nil)

		effective, err := suite.service.GetEffective(teamID, "turnover")

		suite.NoError(err)
		suite.Equal("turnover", effective.ToolName)
		suite.Equal(3, effective.Version)
		suite.Equal(true, effective.Settings["enabled"])
		suite.Equal(float64(50), effective.Settings["page_size"])
		suite.Equal("dark", effective.Settings["theme"])
		suite.Equal("maintenance friday", effective.Settings["banner"])
	})

	suite.T().Run("TemplateOnlyWhenNoOverrides", func(t *testing.T) {
		suite.repo.EXPECT().GetSchema("links").Return(&models.ToolSettingsSchema{
			ToolName: "links",
			Version:  1,
			Settings: mustSettings(suite, map[string]interface{}{"enabled": true}),
		}, nil)
		suite.repo.EXPECT().GetGlobal("links").Return(nil, gorm.ErrRecordNotFound)
		suite.repo.EXPECT().GetTeam(teamID, "links").Return(nil, gorm.ErrRecordNotFound)

		effective, err := suite.service.GetEffective(teamID, "links")

		suite.NoError(err)
		suite.Equal(map[string]interface{}{"enabled": true}, effective.Settings)
	})

	suite.T().Run("UnknownTool", func(t *testing.T) {
		suite.repo.EXPECT().GetSchema("ghost").Return(nil, gorm.ErrRecordNotFound)

		effective, err := suite.service.GetEffective(teamID, "ghost")

		suite.Nil(effective)
		suite.ErrorIs(err, apperrors.ErrToolSettingsNotFound)
	})
}

func (suite *ToolSettingsServiceTestSuite) TestUpdateGlobal() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.repo.EXPECT().GetSchema("turnover").Return(&models.ToolSettingsSchema{ToolName: "turnover"}, nil)
		suite.repo.EXPECT().UpsertGlobal(gomock.Any()).DoAndReturn(func(settings *models.GlobalToolSettings) error {
			suite.Equal("turnover", settings.ToolName)
			suite.Equal("admin.user", settings.UpdatedBy)
			return nil
		})

		saved, err := suite.service.UpdateGlobal("turnover", &service.UpdateSettingsRequest{
			Settings:  map[string]interface{}{"page_size": 50},
			UpdatedBy: "admin.user",
		})

		suite.NoError(err)
		suite.JSONEq(`{"page_size":50}`, string(saved.Settings))
	})

	suite.T().Run("UnknownTool", func(t *testing.T) {
		suite.repo.EXPECT().GetSchema("ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.UpdateGlobal("ghost", &service.UpdateSettingsRequest{
			Settings: map[string]interface{}{"enabled": false},
		})

		suite.ErrorIs(err, apperrors.ErrToolSettingsNotFound)
	})

	suite.T().Run("MissingSettings", func(t *testing.T) {
		_, err := suite.service.UpdateGlobal("turnover", &service.UpdateSettingsRequest{})

		suite.Error(err)
	})
}

func (suite *ToolSettingsServiceTestSuite) TestUpdateTeam() {
	teamID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.repo.EXPECT().GetSchema("turnover").Return(&models.ToolSettingsSchema{ToolName: "turnover"}, nil)
		suite.teamRepo.EXPECT().GetByID(teamID).Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil)
		suite.repo.EXPECT().UpsertTeam(gomock.Any()).DoAndReturn(func(settings *models.TeamToolSettings) error {
			suite.Equal(teamID, settings.TeamID)
			suite.Equal("turnover", settings.ToolName)
			return nil
		})

		saved, err := suite.service.UpdateTeam(teamID, "turnover", &service.UpdateSettingsRequest{
			Settings: map[string]interface{}{"theme": "dark"},
		})

		suite.NoError(err)
		suite.JSONEq(`{"theme":"dark"}`, string(saved.Settings))
	})

	suite.T().Run("TeamMissing", func(t *testing.T) {
		suite.repo.EXPECT().GetSchema("turnover").Return(&models.ToolSettingsSchema{ToolName: "turnover"}, nil)
		suite.teamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.UpdateTeam(teamID, "turnover", &service.UpdateSettingsRequest{
			Settings: map[string]interface{}{"theme": "dark"},
		})

		suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	})
}

func (suite *ToolSettingsServiceTestSuite) TestSeedFromFile() {
	suite.T().Run("SeedsWhenEmpty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tool_settings.yaml")
		seed := "tools:\n" +
			"  - name: turnover\n" +
			"    description: Shift turnover defaults\n" +
			"    settings:\n" +
			"      enabled: true\n" +
			"      page_size: 20\n" +
			"  - name: links\n" +
			"    settings:\n" +
			"      enabled: true\n"
		suite.Require().NoError(os.WriteFile(path, []byte(seed), 0o644))

		suite.repo.EXPECT().CountSchemas().Return(int64(0), nil)
		suite.repo.EXPECT().UpsertSchema(gomock.Any()).DoAndReturn(func(schema *models.ToolSettingsSchema) error {
			suite.Equal(1, schema.Version)
			return nil
		}).Times(2)

		seeded, err := suite.service.SeedFromFile(path)

		suite.NoError(err)
		suite.Equal(2, seeded)
	})

	suite.T().Run("SkipsWhenSchemasExist", func(t *testing.T) {
		suite.repo.EXPECT().CountSchemas().Return(int64(4), nil)

		seeded, err := suite.service.SeedFromFile("/nope/tool_settings.yaml")

		suite.NoError(err)
		suite.Equal(0, seeded)
	})

	suite.T().Run("MissingFileIsNotAnError", func(t *testing.T) {
		suite.repo.EXPECT().CountSchemas().Return(int64(0), nil)

		seeded, err := suite.service.SeedFromFile(filepath.Join(suite.T().TempDir(), "absent.yaml"))

		suite.NoError(err)
		suite.Equal(0, seeded)
	})
}

func TestToolSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ToolSettingsServiceTestSuite))
}
