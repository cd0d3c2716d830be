package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
	"github.com/bgnclinic/blog-automation/internal/usecase/compliance"
	"github.com/bgnclinic/blog-automation/pkg/config"
)

// Extractor derives a structured InterviewFact from raw interview text
// using pattern tables. It never returns an error: inputs that are too
// short or that trip a pattern fall back to a placeholder fact with
// zero confidence.
type Extractor struct {
	patterns *Patterns
	checker  *compliance.Checker
	cfg      config.AnalyzerConfig
	logger   *zap.Logger
}

// NewExtractor creates an extractor with the default pattern tables
func NewExtractor(cfg config.AnalyzerConfig, logger *zap.Logger) *Extractor {
	return &Extractor{
		patterns: DefaultPatterns(),
		checker:  compliance.NewChecker(logger),
		cfg:      cfg,
		logger:   logger,
	}
}

// Extract analyzes interview text and returns a populated fact.
// Every collection in the result is non-nil.
func (e *Extractor) Extract(raw string) (fact *entities.InterviewFact) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("interview extraction panicked, returning placeholder",
				zap.Any("panic", r))
			fact = entities.PlaceholderFact()
		}
	}()

	text := Normalize(raw)
	length := utf8.RuneCountInString(text)

	if length < e.cfg.MinTextLength {
		e.logger.Warn("interview text too short for analysis",
			zap.Int("length", length),
			zap.Int("min_length", e.cfg.MinTextLength))
		fact = entities.PlaceholderFact()
		fact.Metadata.ContentLength = length
		return fact
	}

	fact = entities.NewInterviewFact()
	fact.Employee = e.extractEmployee(text)
	fact.Personality = e.extractPersonality(text)
	fact.Knowledge = e.extractKnowledge(text)
	fact.CustomerInsights = e.extractInsights(text)
	fact.Strengths = e.extractStrengths(text)

	check := e.checker.Check(text)
	if len(check.Violations) > 0 {
		e.logger.Warn("interview text contains ad-law risk phrases",
			zap.Strings("violations", check.Violations))
	}

	fact.Metadata = entities.AnalysisMetadata{
		AnalysisDate:      time.Now(),
		ConfidenceScore:   e.confidence(fact),
		ContentLength:     length,
		ComplianceChecked: true,
	}

	e.logger.Info("interview analysis complete",
		zap.String("employee", fact.Employee.Name),
		zap.String("department", fact.Employee.Department),
		zap.Float64("confidence", fact.Metadata.ConfidenceScore))

	return fact
}

func (e *Extractor) extractEmployee(text string) entities.EmployeeProfile {
	profile := entities.EmployeeProfile{
		CareerHistory:  []string{},
		SpecialtyAreas: []string{},
	}

	for _, re := range e.patterns.NamePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			profile.Name = m[1]
			break
		}
	}

	if m := e.patterns.PositionPattern.FindStringSubmatch(text); m != nil {
		profile.Position = m[1]
	}

	for _, rule := range e.patterns.DepartmentRules {
		if containsAny(text, rule.Any) {
			profile.Department = rule.Department
			break
		}
	}

	for _, re := range e.patterns.ExperiencePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				profile.ExperienceYears = years
				break
			}
		}
	}

	for _, rule := range e.patterns.SpecialtyRules {
		if containsAll(text, rule.All) {
			profile.SpecialtyAreas = append(profile.SpecialtyAreas, rule.Specialty)
		}
	}

	return profile
}

func (e *Extractor) extractPersonality(text string) entities.PersonalityTraits {
	traits := entities.PersonalityTraits{
		FrequentExpressions: []string{},
		PersonalityKeywords: []string{},
	}

	bestScore := 0
	for _, rule := range e.patterns.ToneRules {
		score := 0
		for _, marker := range rule.Markers {
			if strings.Contains(text, marker) {
				score++
			}
			if strings.Count(text, marker) >= 2 {
				traits.FrequentExpressions = append(traits.FrequentExpressions, marker)
			}
		}
		if score > 0 {
			traits.PersonalityKeywords = append(traits.PersonalityKeywords, rule.Category)
		}
		if score > bestScore {
			bestScore = score
			traits.ToneStyle = rule.Category
		}
	}

	traits.FormalityLevel = e.formality(text)
	traits.CommunicationStyle = communicationStyle(text)

	return traits
}

func (e *Extractor) formality(text string) string {
	formal := 0
	for _, m := range e.patterns.FormalMarkers {
		formal += strings.Count(text, m)
	}
	casual := 0
	for _, m := range e.patterns.CasualMarkers {
		casual += strings.Count(text, m)
	}

	switch {
	case float64(formal) > float64(casual)*e.cfg.FormalityRatio:
		return entities.FormalityFormal
	case float64(casual) > float64(formal)*e.cfg.FormalityRatio:
		return entities.FormalityCasual
	default:
		return entities.FormalityMixed
	}
}

func communicationStyle(text string) string {
	switch {
	case strings.Contains(text, "경험") && strings.Contains(text, "실제"):
		return "경험 중심"
	case strings.Contains(text, "예를 들어") || strings.Contains(text, "예시"):
		return "예시 중심"
	case strings.Contains(text, "데이터") || strings.Contains(text, "통계"):
		return "데이터 중심"
	default:
		return "일반적"
	}
}

func (e *Extractor) extractKnowledge(text string) entities.ProfessionalKnowledge {
	knowledge := entities.ProfessionalKnowledge{
		Procedures:     []string{},
		Equipment:      []string{},
		Processes:      []string{},
		TechnicalTerms: []string{},
	}

	for _, term := range e.patterns.MedicalTerms {
		if !strings.Contains(text, term) {
			continue
		}
		if containsAny(term, e.patterns.ExamMarkers) || containsAny(term, e.patterns.SurgeryMarkers) {
			knowledge.Procedures = append(knowledge.Procedures, term)
		} else {
			knowledge.TechnicalTerms = append(knowledge.TechnicalTerms, term)
		}
	}

	for _, kw := range e.patterns.EquipmentKeywords {
		re := regexp.MustCompile(regexp.QuoteMeta(kw) + `[^.]*`)
		if m := re.FindString(text); m != "" {
			knowledge.Equipment = append(knowledge.Equipment, strings.TrimSpace(m))
		}
	}

	for _, kw := range e.patterns.ProcessKeywords {
		if strings.Contains(text, kw) {
			knowledge.Processes = append(knowledge.Processes, kw)
		}
	}

	knowledge.ExpertiseLevel = e.expertiseLevel(
		len(knowledge.Procedures) + len(knowledge.TechnicalTerms))

	return knowledge
}

func (e *Extractor) expertiseLevel(termCount int) string {
	switch {
	case termCount >= e.cfg.ExpertThreshold:
		return entities.ExpertiseExpert
	case termCount >= e.cfg.SkilledThreshold:
		return entities.ExpertiseSkilled
	case termCount >= 1:
		return entities.ExpertiseExperienced
	default:
		return entities.ExpertiseGeneral
	}
}

func (e *Extractor) extractInsights(text string) entities.CustomerInsights {
	insights := entities.CustomerInsights{
		FrequentQuestions:  []string{},
		CustomerFeedback:   []string{},
		PainPoints:         []string{},
		SuccessStories:     []string{},
		TargetDemographics: []string{},
	}

	for _, re := range e.patterns.QuestionPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			insights.FrequentQuestions = append(insights.FrequentQuestions,
				window(text, loc[0], loc[1], 50, 100))
		}
	}

	for _, re := range e.patterns.FeedbackPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			insights.CustomerFeedback = append(insights.CustomerFeedback,
				window(text, loc[0], loc[1], 30, 50))
		}
	}

	for _, rule := range e.patterns.DemographicRules {
		if containsAny(text, rule.Any) {
			insights.TargetDemographics = append(insights.TargetDemographics, rule.Demographic)
		}
	}

	return insights
}

func (e *Extractor) extractStrengths(text string) entities.HospitalStrengths {
	strengths := entities.HospitalStrengths{
		CompetitiveAdvantages: []string{},
		UniqueServices:        []string{},
		EquipmentAdvantages:   []string{},
		LocationBenefits:      []string{},
		TeamStrengths:         []string{},
	}

	for _, kw := range e.patterns.LocationKeywords {
		if strings.Contains(text, kw) {
			strengths.LocationBenefits = append(strengths.LocationBenefits,
				fmt.Sprintf("%s 관련 장점", kw))
		}
	}

	hasEquipment := strings.Contains(text, "장비") || strings.Contains(text, "기계")
	for _, kw := range e.patterns.EquipmentAdvantage {
		if strings.Contains(text, kw) && hasEquipment {
			strengths.EquipmentAdvantages = append(strengths.EquipmentAdvantages,
				fmt.Sprintf("%s 장비", kw))
		}
	}

	if strings.Contains(text, "개인별") &&
		(strings.Contains(text, "케어") || strings.Contains(text, "관리")) {
		strengths.UniqueServices = append(strengths.UniqueServices, "개인별 맞춤 케어")
	}
	if strings.Contains(text, "갤러리") {
		strengths.UniqueServices = append(strengths.UniqueServices, "갤러리 운영")
	}

	if strings.Contains(text, "무사고") || strings.Contains(text, "사고") {
		strengths.CompetitiveAdvantages = append(strengths.CompetitiveAdvantages, "안전한 시술 기록")
	}

	for _, kw := range e.patterns.TeamworkKeywords {
		if strings.Contains(text, kw) {
			strengths.TeamStrengths = append(strengths.TeamStrengths,
				fmt.Sprintf("%s 우수", kw))
		}
	}

	return strengths
}

// confidence scores how much of the fact was actually extracted.
// Weights sum to 1.0.
func (e *Extractor) confidence(fact *entities.InterviewFact) float64 {
	score := 0.0
	if fact.Employee.Name != "" {
		score += 0.2
	}
	if fact.Employee.Position != "" {
		score += 0.15
	}
	if fact.Employee.ExperienceYears > 0 {
		score += 0.15
	}
	if len(fact.Employee.SpecialtyAreas) > 0 {
		score += 0.1
	}
	if fact.Personality.ToneStyle != "" {
		score += 0.15
	}
	if len(fact.Personality.FrequentExpressions) > 0 {
		score += 0.1
	}
	if len(fact.Knowledge.Procedures) > 0 {
		score += 0.1
	}
	if len(fact.Knowledge.TechnicalTerms) > 0 {
		score += 0.05
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsAll(text string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

// window returns the text around a match, expanded by rune counts and
// snapped to rune boundaries so multi-byte Hangul never gets split.
func window(text string, start, end, before, after int) string {
	b := start
	for i := 0; i < before && b > 0; i++ {
		b--
		for b > 0 && !utf8.RuneStart(text[b]) {
			b--
		}
	}
	e := end
	for i := 0; i < after && e < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[e:])
		e += size
	}
	return strings.TrimSpace(text[b:e])
}
