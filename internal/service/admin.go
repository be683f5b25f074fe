package service

import (
	"fmt"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/repository"
)

// AdminService aggregates counts for the admin dashboard
type AdminService struct {
	teamRepo         repository.TeamRepositoryInterface
	appRepo          repository.ApplicationRepositoryInterface
	registrationRepo repository.RegistrationRepositoryInterface
	entryRepo        repository.TurnoverEntryRepositoryInterface
}

// NewAdminService creates a new admin service
func NewAdminService(teamRepo repository.TeamRepositoryInterface, appRepo repository.ApplicationRepositoryInterface, registrationRepo repository.RegistrationRepositoryInterface, entryRepo repository.TurnoverEntryRepositoryInterface) *AdminService {
	return &AdminService{
		teamRepo:         teamRepo,
		appRepo:          appRepo,
		registrationRepo: registrationRepo,
		entryRepo:        entryRepo,
	}
}

// DashboardCounts holds the portal-wide totals shown on the admin dashboard
type DashboardCounts struct {
	Teams                int64                               `json:"teams"`
	Applications         int64                               `json:"applications"`
	FlaggedEntries       int64                               `json:"flagged_entries"`
	PendingRegistrations int64                               `json:"pending_registrations"`
	Registrations        map[models.RegistrationStatus]int64 `json:"registrations"`
}

// GetDashboardCounts collects the totals in one pass
func (s *AdminService) GetDashboardCounts() (*DashboardCounts, error) {
	teams, err := s.teamRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}

	apps, err := s.appRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	flagged, err := s.entryRepo.CountFlagged()
	if err != nil {
		return nil, fmt.Errorf("failed to count flagged entries: %w", err)
	}

	registrations, err := s.registrationRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}

	return &DashboardCounts{
		Teams:                teams,
		Applications:         apps,
		FlaggedEntries:       flagged,
		PendingRegistrations: registrations[models.RegistrationStatusPending],
		Registrations:        registrations,
	}, nil
}
