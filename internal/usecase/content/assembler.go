package content

import (
	"math"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
	"github.com/bgnclinic/blog-automation/internal/usecase/compliance"
)

// runesPerMinute is the assumed Korean reading speed for blog copy
const runesPerMinute = 300

// Assembler turns an InterviewFact plus an optional drafted body into a
// publishable content package. When body text is empty the built-in
// template body is used, so assembly always succeeds without any
// external call.
type Assembler struct {
	checker *compliance.Checker
	logger  *zap.Logger
}

// NewAssembler creates an assembler
func NewAssembler(checker *compliance.Checker, logger *zap.Logger) *Assembler {
	return &Assembler{
		checker: checker,
		logger:  logger,
	}
}

// Assemble derives the full content package from a fact.
// bodyMarkdown may be empty, in which case the fallback template is used.
func (a *Assembler) Assemble(fact *entities.InterviewFact, bodyMarkdown string) *entities.GeneratedContent {
	plan := planFor(fact)

	if strings.TrimSpace(bodyMarkdown) == "" {
		bodyMarkdown = fallbackBody(fact, plan)
	}

	pkg := entities.NewGeneratedContent(fact.ID)
	pkg.Title = plan.Title
	pkg.Slug = slugify(plan.Title)
	pkg.PrimaryKeyword = plan.PrimaryKeyword
	pkg.TargetAudience = plan.TargetAudience
	pkg.MetaDescription = metaDescription(plan.Title)
	pkg.ContentMarkdown = bodyMarkdown
	pkg.ContentHTML = MarkdownToHTML(bodyMarkdown)
	pkg.Tags = buildTags(fact)
	pkg.FAQList = faqsFor(fact)
	pkg.ImagePrompts = imagePrompts(plan)
	pkg.CTAButtonText = plan.CTAButtonText
	pkg.ReadingMinutes = readingMinutes(bodyMarkdown)

	check := a.checker.Check(bodyMarkdown)
	pkg.ComplianceScore = check.Score
	pkg.Violations = check.Violations

	pkg.SEOScore = seoScore(pkg)

	a.logger.Info("content package assembled",
		zap.String("title", pkg.Title),
		zap.String("slug", pkg.Slug),
		zap.Int("reading_minutes", pkg.ReadingMinutes),
		zap.Float64("seo_score", pkg.SEOScore),
		zap.Float64("compliance_score", pkg.ComplianceScore))

	return pkg
}

// metaDescription appends the clinic boilerplate, capped by rune count
func metaDescription(title string) string {
	desc := title + "." + metaDescriptionSuffix
	if utf8.RuneCountInString(desc) <= maxMetaDescriptionRunes {
		return desc
	}
	runes := []rune(desc)
	return string(runes[:maxMetaDescriptionRunes])
}

// buildTags unions the base tags with specialty and procedure tags
func buildTags(fact *entities.InterviewFact) []string {
	tags := make([]string, 0, maxTags)
	seen := map[string]struct{}{}

	add := func(tag string) {
		if tag == "" || len(tags) >= maxTags {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, tag := range baseTags {
		add(tag)
	}
	for _, specialty := range fact.Employee.SpecialtyAreas {
		add(specialty)
	}
	for _, procedure := range fact.Knowledge.Procedures {
		add(procedure)
	}
	return tags
}

// readingMinutes estimates reading time from rune count, minimum one
func readingMinutes(body string) int {
	count := utf8.RuneCountInString(body)
	minutes := int(math.Ceil(float64(count) / runesPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// seoScore is an additive heuristic over the assembled package
func seoScore(pkg *entities.GeneratedContent) float64 {
	score := 0.0

	if strings.Contains(pkg.Title, pkg.PrimaryKeyword) ||
		containsAllWords(pkg.Title, pkg.PrimaryKeyword) {
		score += 0.2
	}
	if strings.Contains(pkg.ContentMarkdown, pkg.PrimaryKeyword) ||
		containsAllWords(pkg.ContentMarkdown, pkg.PrimaryKeyword) {
		score += 0.2
	}

	descLen := utf8.RuneCountInString(pkg.MetaDescription)
	if descLen >= 80 && descLen <= maxMetaDescriptionRunes {
		score += 0.15
	}
	if pkg.Slug != "" && pkg.Slug != fallbackSlug {
		score += 0.15
	}
	if len(pkg.Tags) >= 5 {
		score += 0.1
	}
	if len(pkg.FAQList) >= 3 {
		score += 0.1
	}
	if pkg.ReadingMinutes >= 3 && pkg.ReadingMinutes <= 10 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// containsAllWords checks each space-separated keyword word separately,
// so "대학생 시력교정" still counts when the words appear apart.
func containsAllWords(text, phrase string) bool {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		if !strings.Contains(text, word) {
			return false
		}
	}
	return true
}
