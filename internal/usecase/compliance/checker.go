package compliance

import (
	"strings"

	"go.uber.org/zap"
)

// Penalty weights per violation category
const (
	prohibitedPenalty = 0.2
	riskyPenalty      = 0.1
)

// Result is the outcome of one compliance check
type Result struct {
	Score       float64  `json:"score"`
	Violations  []string `json:"violations"`
	Suggestions []string `json:"suggestions"`
}

// Checker scores text against Korean medical advertising rules.
// Prohibited phrases are hard violations, risky phrases are softer
// claims that still invite review.
type Checker struct {
	prohibited    []string
	risky         []string
	substitutions map[string]string
	logger        *zap.Logger
}

// NewChecker creates a checker with the default phrase lists
func NewChecker(logger *zap.Logger) *Checker {
	return &Checker{
		prohibited: []string{
			"100% 성공",
			"완치",
			"부작용 없는",
			"무조건",
			"최고",
			"유일한",
			"효과 보장",
		},
		risky: []string{
			"전혀 아프지 않",
			"바로 효과",
			"확실한 효과",
			"누구나 가능",
			"할인 이벤트",
		},
		substitutions: map[string]string{
			"100% 성공": "높은 성공률",
			"완치":      "증상 개선",
			"부작용 없는":  "부작용이 적은",
			"무조건":     "대부분의 경우",
			"최고":      "우수한",
			"유일한":     "특화된",
			"효과 보장":   "효과 기대",
		},
		logger: logger,
	}
}

// Check scores the text. A clean text scores 1.0, each prohibited
// phrase present subtracts 0.2 and each risky phrase 0.1, floored at 0.
// Presence counts once per phrase regardless of repetition.
func (c *Checker) Check(text string) Result {
	result := Result{
		Score:       1.0,
		Violations:  []string{},
		Suggestions: []string{},
	}

	for _, phrase := range c.prohibited {
		if strings.Contains(text, phrase) {
			result.Score -= prohibitedPenalty
			result.Violations = append(result.Violations, phrase)
		}
	}
	for _, phrase := range c.risky {
		if strings.Contains(text, phrase) {
			result.Score -= riskyPenalty
			result.Violations = append(result.Violations, phrase)
		}
	}

	if result.Score < 0 {
		result.Score = 0
	}

	for _, v := range result.Violations {
		if alt, ok := c.substitutions[v]; ok {
			result.Suggestions = append(result.Suggestions, v+" → "+alt)
		}
	}

	if len(result.Violations) > 0 {
		c.logger.Warn("medical ad compliance violations found",
			zap.Int("count", len(result.Violations)),
			zap.Float64("score", result.Score))
	}

	return result
}

// Suggest rewrites prohibited phrases in the text with safer wording
func (c *Checker) Suggest(text string) string {
	for phrase, alt := range c.substitutions {
		text = strings.ReplaceAll(text, phrase, alt)
	}
	return text
}
