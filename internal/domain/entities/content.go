package entities

import (
	"time"

	"github.com/google/uuid"
)

// Content statuses
const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "publish"
)

// FAQ is one question and answer pair in a post
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GeneratedContent is an assembled blog package ready for publishing
type GeneratedContent struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FactID          uuid.UUID `json:"fact_id" gorm:"type:uuid;index"`
	Title           string    `json:"title" gorm:"type:varchar(255)"`
	Slug            string    `json:"slug" gorm:"type:varchar(255);index"`
	PrimaryKeyword  string    `json:"primary_keyword" gorm:"type:varchar(100)"`
	TargetAudience  string    `json:"target_audience" gorm:"type:varchar(100)"`
	MetaDescription string    `json:"meta_description" gorm:"type:varchar(255)"`
	ContentMarkdown string    `json:"content_markdown" gorm:"type:text"`
	ContentHTML     string    `json:"content_html" gorm:"type:text"`
	Tags            []string  `json:"tags" gorm:"type:jsonb;serializer:json"`
	FAQList         []FAQ     `json:"faq_list" gorm:"type:jsonb;serializer:json"`
	ImagePrompts    []string  `json:"image_prompts" gorm:"type:jsonb;serializer:json"`
	ImageURLs       []string  `json:"image_urls" gorm:"type:jsonb;serializer:json"`
	Violations      []string  `json:"violations" gorm:"type:jsonb;serializer:json"`
	CTAButtonText   string    `json:"cta_button_text" gorm:"type:varchar(100)"`
	ReadingMinutes  int       `json:"reading_minutes"`
	SEOScore        float64   `json:"seo_score"`
	ComplianceScore float64   `json:"compliance_score"`
	WPPostID        int       `json:"wp_post_id"`
	WPPostURL       string    `json:"wp_post_url" gorm:"type:varchar(512)"`
	WPEditURL       string    `json:"wp_edit_url" gorm:"type:varchar(512)"`
	Status          string    `json:"status" gorm:"type:varchar(20);default:'draft'"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (GeneratedContent) TableName() string {
	return "generated_contents"
}

// NewGeneratedContent creates a draft content package for a fact
func NewGeneratedContent(factID uuid.UUID) *GeneratedContent {
	return &GeneratedContent{
		ID:           uuid.New(),
		FactID:       factID,
		Tags:         []string{},
		FAQList:      []FAQ{},
		ImagePrompts: []string{},
		ImageURLs:    []string{},
		Violations:   []string{},
		Status:       ContentStatusDraft,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// IsPublished reports whether the package has been pushed to WordPress
func (c *GeneratedContent) IsPublished() bool {
	return c.WPPostID > 0
}
