package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Knowledge base entry types
const (
	EntryTypeService = "service"
	EntryTypePlan    = "plan"
	EntryTypeFAQ     = "faq"
)

// CompanyProfile holds the single company record the assistant speaks for
type CompanyProfile struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string         `gorm:"type:text;not null" json:"name"`
	Mission        string         `gorm:"type:text" json:"mission"`
	Description    string         `gorm:"type:text" json:"description"`
	Email          string         `gorm:"type:text;not null" json:"email"`
	Phone          string         `gorm:"type:text" json:"phone"`
	Address        string         `gorm:"type:text" json:"address"`
	Hours          string         `gorm:"type:text" json:"hours"`
	Values         datatypes.JSON `gorm:"type:jsonb" json:"values"` // [{"title": "...", "description": "..."}]
	PricingDetails string         `gorm:"type:text" json:"pricing_details"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (CompanyProfile) TableName() string {
	return "assistant_company_profile"
}

// BeforeCreate sets UUID before creating
func (p *CompanyProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// KnowledgeBaseEntry is one service, pricing plan or FAQ.
// Title holds the service title, plan name or FAQ question; Body holds the
// service description, plan price label or FAQ answer.
type KnowledgeBaseEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Type      string         `gorm:"type:text;not null;index:idx_kb_type_position" json:"type"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Body      string         `gorm:"type:text" json:"body"`
	Features  pq.StringArray `gorm:"type:text[]" json:"features"`
	Position  int            `gorm:"default:0;index:idx_kb_type_position" json:"position"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (KnowledgeBaseEntry) TableName() string {
	return "assistant_kb_entries"
}

// BeforeCreate sets UUID before creating
func (e *KnowledgeBaseEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
