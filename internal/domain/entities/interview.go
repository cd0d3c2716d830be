package entities

import (
	"time"

	"github.com/google/uuid"
)

// Formality levels
const (
	FormalityFormal = "formal"
	FormalityCasual = "casual"
	FormalityMixed  = "mixed"
)

// Expertise levels
const (
	ExpertiseExpert      = "전문가"
	ExpertiseSkilled     = "숙련자"
	ExpertiseExperienced = "경험자"
	ExpertiseGeneral     = "일반"
)

// EmployeeProfile holds the identity facts extracted from an interview
type EmployeeProfile struct {
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	Department      string   `json:"department"`
	ExperienceYears int      `json:"experience_years"`
	CareerHistory   []string `json:"career_history"`
	SpecialtyAreas  []string `json:"specialty_areas"`
}

// PersonalityTraits holds tone and speech-style signals
type PersonalityTraits struct {
	ToneStyle           string   `json:"tone_style"`
	FrequentExpressions []string `json:"frequent_expressions"`
	CommunicationStyle  string   `json:"communication_style"`
	PersonalityKeywords []string `json:"personality_keywords"`
	FormalityLevel      string   `json:"formality_level"`
}

// ProfessionalKnowledge holds procedures, equipment and terminology signals
type ProfessionalKnowledge struct {
	Procedures     []string `json:"procedures"`
	Equipment      []string `json:"equipment"`
	Processes      []string `json:"processes"`
	TechnicalTerms []string `json:"technical_terms"`
	ExpertiseLevel string   `json:"expertise_level"`
}

// CustomerInsights holds customer-facing signals
type CustomerInsights struct {
	FrequentQuestions  []string `json:"frequent_questions"`
	CustomerFeedback   []string `json:"customer_feedback"`
	PainPoints         []string `json:"pain_points"`
	SuccessStories     []string `json:"success_stories"`
	TargetDemographics []string `json:"target_demographics"`
}

// HospitalStrengths holds clinic differentiation signals
type HospitalStrengths struct {
	CompetitiveAdvantages []string `json:"competitive_advantages"`
	UniqueServices        []string `json:"unique_services"`
	EquipmentAdvantages   []string `json:"equipment_advantages"`
	LocationBenefits      []string `json:"location_benefits"`
	TeamStrengths         []string `json:"team_strengths"`
}

// AnalysisMetadata describes how an analysis was produced
type AnalysisMetadata struct {
	AnalysisDate      time.Time `json:"analysis_date"`
	ConfidenceScore   float64   `json:"confidence_score"`
	ContentLength     int       `json:"content_length"`
	ComplianceChecked bool      `json:"medical_compliance_checked"`
	AIEnhancementUsed bool      `json:"ai_enhancement_used"`
}

// InterviewFact is the stored structured result of one interview analysis
type InterviewFact struct {
	ID               uuid.UUID             `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SourceHash       string                `json:"source_hash,omitempty" gorm:"type:varchar(64);index"`
	Employee         EmployeeProfile       `json:"employee" gorm:"type:jsonb;serializer:json"`
	Personality      PersonalityTraits     `json:"personality" gorm:"type:jsonb;serializer:json"`
	Knowledge        ProfessionalKnowledge `json:"knowledge" gorm:"type:jsonb;serializer:json"`
	CustomerInsights CustomerInsights      `json:"customer_insights" gorm:"type:jsonb;serializer:json"`
	Strengths        HospitalStrengths     `json:"hospital_strengths" gorm:"type:jsonb;serializer:json"`
	Metadata         AnalysisMetadata      `json:"analysis_metadata" gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time             `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time             `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (InterviewFact) TableName() string {
	return "interview_facts"
}

// NewInterviewFact creates an empty fact with every collection initialized.
// Downstream template code iterates these fields, so none may be nil.
func NewInterviewFact() *InterviewFact {
	return &InterviewFact{
		ID: uuid.New(),
		Employee: EmployeeProfile{
			CareerHistory:  []string{},
			SpecialtyAreas: []string{},
		},
		Personality: PersonalityTraits{
			FrequentExpressions: []string{},
			PersonalityKeywords: []string{},
		},
		Knowledge: ProfessionalKnowledge{
			Procedures:     []string{},
			Equipment:      []string{},
			Processes:      []string{},
			TechnicalTerms: []string{},
		},
		CustomerInsights: CustomerInsights{
			FrequentQuestions:  []string{},
			CustomerFeedback:   []string{},
			PainPoints:         []string{},
			SuccessStories:     []string{},
			TargetDemographics: []string{},
		},
		Strengths: HospitalStrengths{
			CompetitiveAdvantages: []string{},
			UniqueServices:        []string{},
			EquipmentAdvantages:   []string{},
			LocationBenefits:      []string{},
			TeamStrengths:         []string{},
		},
		Metadata: AnalysisMetadata{
			AnalysisDate: time.Now(),
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// PlaceholderFact is the degraded result for too-short or failed analyses.
// Confidence stays at zero so callers can tell it apart from a real extraction.
func PlaceholderFact() *InterviewFact {
	fact := NewInterviewFact()
	fact.Employee.Name = "직원"
	fact.Employee.Department = "일반"
	return fact
}

// Enhancement is the optional AI pass result merged into a base fact
type Enhancement struct {
	Employee struct {
		Name            string   `json:"name"`
		Position        string   `json:"position"`
		Department      string   `json:"department"`
		ExperienceYears int      `json:"experience_years"`
		SpecialtyAreas  []string `json:"specialty_areas"`
	} `json:"employee"`
	Personality struct {
		ToneStyle           string   `json:"tone_style"`
		FrequentExpressions []string `json:"frequent_expressions"`
		CommunicationStyle  string   `json:"communication_style"`
		PersonalityKeywords []string `json:"personality_keywords"`
	} `json:"personality"`
	CustomerInsights struct {
		FrequentQuestions  []string `json:"frequent_questions"`
		CustomerFeedback   []string `json:"customer_feedback"`
		TargetDemographics []string `json:"target_demographics"`
	} `json:"customer_insights"`
	Strengths struct {
		CompetitiveAdvantages []string `json:"competitive_advantages"`
		UniqueServices        []string `json:"unique_services"`
	} `json:"hospital_strengths"`
}

// MergeEnhancement folds an AI enhancement into the fact.
// Collections merge with union semantics, scalars are first-write-wins:
// a value already extracted by the pattern pass is never overwritten.
func (f *InterviewFact) MergeEnhancement(enh *Enhancement) {
	if enh == nil {
		return
	}

	if f.Employee.Name == "" {
		f.Employee.Name = enh.Employee.Name
	}
	if f.Employee.Position == "" {
		f.Employee.Position = enh.Employee.Position
	}
	if f.Employee.Department == "" {
		f.Employee.Department = enh.Employee.Department
	}
	if f.Employee.ExperienceYears == 0 {
		f.Employee.ExperienceYears = enh.Employee.ExperienceYears
	}
	f.Employee.SpecialtyAreas = unionStrings(f.Employee.SpecialtyAreas, enh.Employee.SpecialtyAreas)

	if f.Personality.ToneStyle == "" {
		f.Personality.ToneStyle = enh.Personality.ToneStyle
	}
	if f.Personality.CommunicationStyle == "" {
		f.Personality.CommunicationStyle = enh.Personality.CommunicationStyle
	}
	f.Personality.FrequentExpressions = unionStrings(f.Personality.FrequentExpressions, enh.Personality.FrequentExpressions)
	f.Personality.PersonalityKeywords = unionStrings(f.Personality.PersonalityKeywords, enh.Personality.PersonalityKeywords)

	f.CustomerInsights.FrequentQuestions = unionStrings(f.CustomerInsights.FrequentQuestions, enh.CustomerInsights.FrequentQuestions)
	f.CustomerInsights.CustomerFeedback = unionStrings(f.CustomerInsights.CustomerFeedback, enh.CustomerInsights.CustomerFeedback)
	f.CustomerInsights.TargetDemographics = unionStrings(f.CustomerInsights.TargetDemographics, enh.CustomerInsights.TargetDemographics)

	f.Strengths.CompetitiveAdvantages = unionStrings(f.Strengths.CompetitiveAdvantages, enh.Strengths.CompetitiveAdvantages)
	f.Strengths.UniqueServices = unionStrings(f.Strengths.UniqueServices, enh.Strengths.UniqueServices)

	f.Metadata.AIEnhancementUsed = true
}

// unionStrings appends missing values from extra, preserving base order
func unionStrings(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base))
	for _, v := range base {
		seen[v] = struct{}{}
	}
	for _, v := range extra {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		base = append(base, v)
	}
	return base
}
