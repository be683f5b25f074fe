package repository

import (
	"time"

	"ensemble-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkRepository handles database operations for links, categories, tags
// and the append-only access log
type LinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Create inserts a new link
func (r *LinkRepository) Create(link *models.Link) error {
	return r.db.Create(link).Error
}

// GetByID retrieves a link with its tags
func (r *LinkRepository) GetByID(id uuid.UUID) (*models.Link, error) {
	var link models.Link
	err := r.db.Preload("Tags").First(&link, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByTeamID retrieves a team's links with tags, optionally narrowed to a
// category or a tag name
func (r *LinkRepository) GetByTeamID(teamID uuid.UUID, categoryID *uuid.UUID, tag string) ([]models.Link, error) {
	query := r.db.Model(&models.Link{}).Where("links.team_id = ?", teamID)
	if categoryID != nil {
		query = query.Where("links.category_id = ?", *categoryID)
	}
	if tag != "" {
		query = query.
			Joins("JOIN link_tag_assignments lta ON lta.link_id = links.id").
			Joins("JOIN link_tags lt ON lt.id = lta.link_tag_id").
			Where("lt.name = ?", tag)
	}

	var links []models.Link
	err := query.Preload("Tags").Order("links.name").Find(&links).Error
	return links, err
}

// Update updates a link
func (r *LinkRepository) Update(link *models.Link) error {
	return r.db.Save(link).Error
}

// Delete removes a link and its tag assignments
func (r *LinkRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		link := models.Link{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&link).Association("Tags").Clear(); err != nil {
			return err
		}
		result := tx.Delete(&models.Link{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetOrCreateTag finds a tag by name, creating it on first use
func (r *LinkRepository) GetOrCreateTag(name string) (*models.LinkTag, error) {
	var tag models.LinkTag
	err := r.db.Where("name = ?", name).FirstOrCreate(&tag, models.LinkTag{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// AttachTag assigns a tag to a link
func (r *LinkRepository) AttachTag(linkID, tagID uuid.UUID) error {
	link := models.Link{BaseModel: models.BaseModel{ID: linkID}}
	tag := models.LinkTag{BaseModel: models.BaseModel{ID: tagID}}
	return r.db.Model(&link).Association("Tags").Append(&tag)
}

// DetachTag removes a tag assignment from a link
func (r *LinkRepository) DetachTag(linkID, tagID uuid.UUID) error {
	link := models.Link{BaseModel: models.BaseModel{ID: linkID}}
	tag := models.LinkTag{BaseModel: models.BaseModel{ID: tagID}}
	return r.db.Model(&link).Association("Tags").Delete(&tag)
}

// CreateCategory inserts a new link category
func (r *LinkRepository) CreateCategory(category *models.LinkCategory) error {
	return r.db.Create(category).Error
}

// GetCategoryByID retrieves a category by ID
func (r *LinkRepository) GetCategoryByID(id uuid.UUID) (*models.LinkCategory, error) {
	var category models.LinkCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategories retrieves the categories visible to a team: its own plus shared ones
func (r *LinkRepository) GetCategories(teamID uuid.UUID) ([]models.LinkCategory, error) {
	var categories []models.LinkCategory
	err := r.db.Where("team_id = ? OR team_id IS NULL", teamID).Order("name").Find(&categories).Error
	return categories, err
}

// DeleteCategory removes a category; links keep a dangling nil category
func (r *LinkRepository) DeleteCategory(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Link{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.LinkCategory{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// RecordAccess appends an access log row for a link
func (r *LinkRepository) RecordAccess(linkID uuid.UUID, accessedBy string) error {
	log := models.LinkAccessLog{
		LinkID:     linkID,
		AccessedBy: accessedBy,
		AccessedAt: time.Now(),
	}
	return r.db.Create(&log).Error
}

// TopByAccess returns a team's most accessed links with their access counts
func (r *LinkRepository) TopByAccess(teamID uuid.UUID, limit int) ([]models.Link, []int64, error) {
	type row struct {
		LinkID uuid.UUID
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.LinkAccessLog{}).
		Joins("JOIN links ON links.id = link_access_logs.link_id").
		Where("links.team_id = ?", teamID).
		Select("link_access_logs.link_id, COUNT(*) as count").
		Group("link_access_logs.link_id").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	links := make([]models.Link, 0, len(rows))
	counts := make([]int64, 0, len(rows))
	for _, rw := range rows {
		link, err := r.GetByID(rw.LinkID)
		if err != nil {
			return nil, nil, err
		}
		links = append(links, *link)
		counts = append(counts, rw.Count)
	}
	return links, counts, nil
}
