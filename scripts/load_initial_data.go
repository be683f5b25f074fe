package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"ensemble-backend/internal/config"
	"ensemble-backend/internal/database"
	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	UserGroup    string            `yaml:"user_group"`
	AdminGroup   string            `yaml:"admin_group"`
	ContactName  string            `yaml:"contact_name"`
	ContactEmail string            `yaml:"contact_email"`
	Applications []ApplicationData `yaml:"applications,omitempty"`
	Links        []LinkData        `yaml:"links,omitempty"`
}

type ApplicationData struct {
	Name            string   `yaml:"name"`
	TLA             string   `yaml:"tla"`
	Description     string   `yaml:"description"`
	AssetID         string   `yaml:"asset_id,omitempty"`
	SubApplications []string `yaml:"sub_applications,omitempty"`
}

type LinkData struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Category    string `yaml:"category,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type CategoryData struct {
	Name   string `yaml:"name"`
	Icon   string `yaml:"icon,omitempty"`
	Shared bool   `yaml:"shared,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type CategoriesFile struct {
	Categories []CategoryData `yaml:"categories"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // suppress SQL and "record not found" noise during loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	categories, err := loadCategories(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	sharedCategories := make(map[string]*models.LinkCategory)
	categoriesCreated := 0
	for _, categoryData := range categories {
		if !categoryData.Shared {
			continue // team categories are created alongside their team
		}
		category, created, err := createSharedCategory(db, categoryData)
		if err != nil {
			log.Printf("Failed to create category %s: %v", categoryData.Name, err)
			continue
		}
		sharedCategories[categoryData.Name] = category
		if created {
			categoriesCreated++
		}
	}
	log.Printf("Shared categories: %d created, %d total", categoriesCreated, len(sharedCategories))

	teamsCreated := 0
	appsCreated := 0
	linksCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			log.Printf("Failed to create team %s: %v", teamData.Name, err)
			continue
		}
		if created {
			teamsCreated++
		}

		for _, appData := range teamData.Applications {
			created, err := createApplication(db, team, appData)
			if err != nil {
				log.Printf("Failed to create application %s for team %s: %v", appData.Name, team.Name, err)
				continue
			}
			if created {
				appsCreated++
			}
		}

		for _, linkData := range teamData.Links {
			created, err := createLink(db, team, linkData, sharedCategories)
			if err != nil {
				log.Printf("Failed to create link %s for team %s: %v", linkData.Name, team.Name, err)
				continue
			}
			if created {
				linksCreated++
			}
		}
	}
	log.Printf("Teams: %d created, %d total", teamsCreated, len(teams))
	log.Printf("Applications: %d created", appsCreated)
	log.Printf("Links: %d created", linksCreated)

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadCategories(dataDir string) ([]CategoryData, error) {
	var allCategories []CategoryData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "categories") {
			var file CategoriesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCategories = append(allCategories, file.Categories...)
		}
		return nil
	})

	return allCategories, err
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:         teamData.Name,
				Description:  teamData.Description,
				UserGroup:    teamData.UserGroup,
				AdminGroup:   teamData.AdminGroup,
				ContactName:  teamData.ContactName,
				ContactEmail: teamData.ContactEmail,
				IsActive:     true,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil // created = false (existing)
}

func createApplication(db *gorm.DB, team *models.Team, appData ApplicationData) (bool, error) {
	tla := strings.ToUpper(appData.TLA)

	var app models.Application
	if err := db.Where("team_id = ? AND tla = ? AND status = ?", team.ID, tla, models.ApplicationStatusActive).First(&app).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return false, fmt.Errorf("failed to query application: %w", err)
		}

		app = models.Application{
			TeamID:               team.ID,
			Name:                 appData.Name,
			TLA:                  tla,
			Description:          appData.Description,
			Status:               models.ApplicationStatusActive,
			AssetID:              appData.AssetID,
			CentralAPISyncStatus: models.SyncStatusNever,
		}
		if err := db.Create(&app).Error; err != nil {
			return false, fmt.Errorf("failed to create application: %w", err)
		}

		for _, subName := range appData.SubApplications {
			sub := models.SubApplication{
				ApplicationID: app.ID,
				Name:          subName,
				Status:        models.SubApplicationStatusActive,
			}
			if err := db.Where("application_id = ? AND name = ?", app.ID, subName).FirstOrCreate(&sub, sub).Error; err != nil {
				log.Printf("Failed to create sub-application %s: %v", subName, err)
			}
		}
		return true, nil
	}

	return false, nil
}

func createLink(db *gorm.DB, team *models.Team, linkData LinkData, sharedCategories map[string]*models.LinkCategory) (bool, error) {
	var categoryID *uuid.UUID
	if linkData.Category != "" {
		if shared, ok := sharedCategories[linkData.Category]; ok {
			categoryID = &shared.ID
		} else {
			category, _, err := createTeamCategory(db, team, linkData.Category)
			if err != nil {
				return false, err
			}
			categoryID = &category.ID
		}
	}

	var link models.Link
	if err := db.Where("team_id = ? AND url = ?", team.ID, linkData.URL).First(&link).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return false, fmt.Errorf("failed to query link: %w", err)
		}

		link = models.Link{
			TeamID:      team.ID,
			CategoryID:  categoryID,
			Name:        linkData.Name,
			URL:         linkData.URL,
			Description: linkData.Description,
		}
		if err := db.Create(&link).Error; err != nil {
			return false, fmt.Errorf("failed to create link: %w", err)
		}
		return true, nil
	}

	return false, nil
}

func createSharedCategory(db *gorm.DB, categoryData CategoryData) (*models.LinkCategory, bool, error) {
	var category models.LinkCategory
	if err := db.Where("name = ? AND team_id IS NULL", categoryData.Name).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			category = models.LinkCategory{
				Name: categoryData.Name,
				Icon: categoryData.Icon,
			}
			if err := db.Create(&category).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create category: %w", err)
			}
			return &category, true, nil
		}
		return nil, false, fmt.Errorf("failed to query category: %w", err)
	}

	return &category, false, nil
}

func createTeamCategory(db *gorm.DB, team *models.Team, name string) (*models.LinkCategory, bool, error) {
	var category models.LinkCategory
	if err := db.Where("name = ? AND team_id = ?", name, team.ID).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			category = models.LinkCategory{
				TeamID: &team.ID,
				Name:   name,
			}
			if err := db.Create(&category).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create category: %w", err)
			}
			return &category, true, nil
		}
		return nil, false, fmt.Errorf("failed to query category: %w", err)
	}

	return &category, false, nil
}
