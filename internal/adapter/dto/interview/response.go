package interview

import (
	"time"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
)

// FactResponse is the API view of an interview fact
type FactResponse struct {
	ID              string    `json:"id"`
	EmployeeName    string    `json:"employee_name"`
	Position        string    `json:"position"`
	Department      string    `json:"department"`
	ExperienceYears int       `json:"experience_years"`
	SpecialtyAreas  []string  `json:"specialty_areas"`
	ToneStyle       string    `json:"tone_style"`
	FormalityLevel  string    `json:"formality_level"`
	ExpertiseLevel  string    `json:"expertise_level"`
	ConfidenceScore float64   `json:"confidence_score"`
	AIEnhanced      bool      `json:"ai_enhanced"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewFactResponse maps an entity to the API view
func NewFactResponse(fact *entities.InterviewFact) *FactResponse {
	return &FactResponse{
		ID:              fact.ID.String(),
		EmployeeName:    fact.Employee.Name,
		Position:        fact.Employee.Position,
		Department:      fact.Employee.Department,
		ExperienceYears: fact.Employee.ExperienceYears,
		SpecialtyAreas:  fact.Employee.SpecialtyAreas,
		ToneStyle:       fact.Personality.ToneStyle,
		FormalityLevel:  fact.Personality.FormalityLevel,
		ExpertiseLevel:  fact.Knowledge.ExpertiseLevel,
		ConfidenceScore: fact.Metadata.ConfidenceScore,
		AIEnhanced:      fact.Metadata.AIEnhancementUsed,
		CreatedAt:       fact.CreatedAt,
	}
}

// ContentResponse is the API view of a content package
type ContentResponse struct {
	ID              string         `json:"id"`
	FactID          string         `json:"fact_id"`
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	PrimaryKeyword  string         `json:"primary_keyword"`
	MetaDescription string         `json:"meta_description"`
	ContentMarkdown string         `json:"content_markdown"`
	ContentHTML     string         `json:"content_html"`
	Tags            []string       `json:"tags"`
	FAQList         []entities.FAQ `json:"faq_list"`
	ImagePrompts    []string       `json:"image_prompts"`
	ImageURLs       []string       `json:"image_urls"`
	Violations      []string       `json:"violations"`
	CTAButtonText   string         `json:"cta_button_text"`
	ReadingMinutes  int            `json:"reading_minutes"`
	SEOScore        float64        `json:"seo_score"`
	ComplianceScore float64        `json:"compliance_score"`
	WPPostID        int            `json:"wp_post_id,omitempty"`
	WPPostURL       string         `json:"wp_post_url,omitempty"`
	WPEditURL       string         `json:"wp_edit_url,omitempty"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

// NewContentResponse maps an entity to the API view
func NewContentResponse(content *entities.GeneratedContent) *ContentResponse {
	return &ContentResponse{
		ID:              content.ID.String(),
		FactID:          content.FactID.String(),
		Title:           content.Title,
		Slug:            content.Slug,
		PrimaryKeyword:  content.PrimaryKeyword,
		MetaDescription: content.MetaDescription,
		ContentMarkdown: content.ContentMarkdown,
		ContentHTML:     content.ContentHTML,
		Tags:            content.Tags,
		FAQList:         content.FAQList,
		ImagePrompts:    content.ImagePrompts,
		ImageURLs:       content.ImageURLs,
		Violations:      content.Violations,
		CTAButtonText:   content.CTAButtonText,
		ReadingMinutes:  content.ReadingMinutes,
		SEOScore:        content.SEOScore,
		ComplianceScore: content.ComplianceScore,
		WPPostID:        content.WPPostID,
		WPPostURL:       content.WPPostURL,
		WPEditURL:       content.WPEditURL,
		Status:          content.Status,
		CreatedAt:       content.CreatedAt,
	}
}

// RunResponse is the API view of a full pipeline run
type RunResponse struct {
	Fact      *FactResponse    `json:"fact"`
	Content   *ContentResponse `json:"content"`
	ImageURLs []string         `json:"image_urls"`
	Published bool             `json:"published"`
}
