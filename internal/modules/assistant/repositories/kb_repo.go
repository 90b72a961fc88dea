package repositories

import (
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/models"
	"gorm.io/gorm"
)

type KBRepo interface {
	GetActiveProfile() (*models.CompanyProfile, error)
	ListActiveEntries() ([]models.KnowledgeBaseEntry, error)
}

type kbRepo struct {
	db *gorm.DB
}

func NewKBRepo(db *gorm.DB) KBRepo {
	return &kbRepo{db: db}
}

// GetActiveProfile returns the most recently updated active company profile
func (r *kbRepo) GetActiveProfile() (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListActiveEntries returns all active entries ordered by type then position
func (r *kbRepo) ListActiveEntries() ([]models.KnowledgeBaseEntry, error) {
	var entries []models.KnowledgeBaseEntry
	err := r.db.Where("is_active = ?", true).
		Order("type ASC").
		Order("position ASC").
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
