package repository

import (
	"time"

	"ensemble-backend/internal/database/models"
	"ensemble-backend/internal/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TurnoverEntryRepository handles database operations for turnover entries
type TurnoverEntryRepository struct {
	db *gorm.DB
}

// NewTurnoverEntryRepository creates a new turnover entry repository
func NewTurnoverEntryRepository(db *gorm.DB) *TurnoverEntryRepository {
	return &TurnoverEntryRepository{db: db}
}

// Create inserts a new entry
func (r *TurnoverEntryRepository) Create(entry *models.TurnoverEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves an entry by ID
func (r *TurnoverEntryRepository) GetByID(id uuid.UUID) (*models.TurnoverEntry, error) {
	var entry models.TurnoverEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByTurnoverID retrieves all entries of a turnover
func (r *TurnoverEntryRepository) GetByTurnoverID(turnoverID uuid.UUID) ([]models.TurnoverEntry, error) {
	var entries []models.TurnoverEntry
	err := r.db.Where("turnover_id = ?", turnoverID).Order("created_at").Find(&entries).Error
	return entries, err
}

// Update updates an entry
func (r *TurnoverEntryRepository) Update(entry *models.TurnoverEntry) error {
	return r.db.Save(entry).Error
}

// Delete removes an entry
func (r *TurnoverEntryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.TurnoverEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetPriority updates the flagging state of one entry
func (r *TurnoverEntryRepository) SetPriority(id uuid.UUID, priority models.EntryPriority, comment, flaggedBy string) error {
	updates := map[string]interface{}{
		"priority":   priority,
		"flagged_by": flaggedBy,
		"flagged_at": time.Now(),
	}
	if comment != "" {
		updates["comments"] = comment
	}
	if priority == models.EntryPriorityNormal {
		updates["flagged_by"] = ""
		updates["flagged_at"] = nil
	}

	result := r.db.Model(&models.TurnoverEntry{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BulkSetPriority updates the flagging state of the given entries in one
// statement with bound parameters. Returns the number of rows touched.
func (r *TurnoverEntryRepository) BulkSetPriority(ids []uuid.UUID, priority models.EntryPriority, comment, flaggedBy string) (int64, error) {
	defer metrics.TrackDBOperation("entry_bulk_set_priority")(time.Now())

	updates := map[string]interface{}{
		"priority":   priority,
		"flagged_by": flaggedBy,
		"flagged_at": time.Now(),
	}
	if comment != "" {
		updates["comments"] = comment
	}
	if priority == models.EntryPriorityNormal {
		updates["flagged_by"] = ""
		updates["flagged_at"] = nil
	}

	result := r.db.Model(&models.TurnoverEntry{}).Where("id IN ?", ids).Updates(updates)
	return result.RowsAffected, result.Error
}

// GetFlagged retrieves entries in scope whose priority is not normal,
// optionally narrowed to one priority. Scope narrowing joins through turnovers.
func (r *TurnoverEntryRepository) GetFlagged(teamID uuid.UUID, applicationID, subApplicationID *uuid.UUID, priority *models.EntryPriority) ([]models.TurnoverEntry, error) {
	defer metrics.TrackDBOperation("entry_get_flagged")(time.Now())

	query := r.db.Model(&models.TurnoverEntry{}).
		Joins("JOIN turnovers ON turnover_entries.turnover_id = turnovers.id").
		Where("turnovers.team_id = ?", teamID)
	if applicationID != nil {
		query = query.Where("turnovers.application_id = ?", *applicationID)
	}
	if subApplicationID != nil {
		query = query.Where("turnovers.sub_application_id = ?", *subApplicationID)
	}
	if priority != nil {
		query = query.Where("turnover_entries.priority = ?", *priority)
	} else {
		query = query.Where("turnover_entries.priority != ?", models.EntryPriorityNormal)
	}

	var entries []models.TurnoverEntry
	err := query.Order("turnover_entries.flagged_at DESC NULLS LAST").Find(&entries).Error
	return entries, err
}

// CountByPriority returns flagged-entry counts per priority for a team
func (r *TurnoverEntryRepository) CountByPriority(teamID uuid.UUID) (map[models.EntryPriority]int64, error) {
	type row struct {
		Priority models.EntryPriority
		Count    int64
	}
	var rows []row
	err := r.db.Model(&models.TurnoverEntry{}).
		Joins("JOIN turnovers ON turnover_entries.turnover_id = turnovers.id").
		Where("turnovers.team_id = ? AND turnover_entries.priority != ?", teamID, models.EntryPriorityNormal).
		Select("turnover_entries.priority, COUNT(*) as count").
		Group("turnover_entries.priority").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.EntryPriority]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Priority] = rw.Count
	}
	return counts, nil
}

// CountByType returns flagged-entry counts per entry type for a team
func (r *TurnoverEntryRepository) CountByType(teamID uuid.UUID) (map[models.EntryType]int64, error) {
	type row struct {
		EntryType models.EntryType
		Count     int64
	}
	var rows []row
	err := r.db.Model(&models.TurnoverEntry{}).
		Joins("JOIN turnovers ON turnover_entries.turnover_id = turnovers.id").
		Where("turnovers.team_id = ? AND turnover_entries.priority != ?", teamID, models.EntryPriorityNormal).
		Select("turnover_entries.entry_type, COUNT(*) as count").
		Group("turnover_entries.entry_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.EntryType]int64, len(rows))
	for _, rw := range rows {
		counts[rw.EntryType] = rw.Count
	}
	return counts, nil
}

// CountFlagged returns the total number of flagged entries across all teams
func (r *TurnoverEntryRepository) CountFlagged() (int64, error) {
	var count int64
	err := r.db.Model(&models.TurnoverEntry{}).
		Where("priority != ?", models.EntryPriorityNormal).
		Count(&count).Error
	return count, err
}
