package compliance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCheck_CleanTextScoresFull(t *testing.T) {
	c := NewChecker(zap.NewNop())

	result := c.Check("정밀 검사 후 개인별 상담을 통해 적합한 시력교정 방법을 안내해 드립니다.")
	assert.Equal(t, 1.0, result.Score)
	assert.Empty(t, result.Violations)
}

func TestCheck_ProhibitedPhraseLowersScore(t *testing.T) {
	c := NewChecker(zap.NewNop())

	result := c.Check("저희 수술은 100% 성공을 약속드립니다.")
	assert.Less(t, result.Score, 1.0)
	assert.Contains(t, result.Violations, "100% 성공")
}

func TestCheck_ScoreMonotonicInViolations(t *testing.T) {
	c := NewChecker(zap.NewNop())

	one := c.Check("100% 성공")
	two := c.Check("100% 성공 그리고 완치")
	three := c.Check("100% 성공 그리고 완치, 부작용 없는 수술")

	assert.Greater(t, one.Score, two.Score)
	assert.Greater(t, two.Score, three.Score)
}

func TestCheck_RepetitionCountsOnce(t *testing.T) {
	c := NewChecker(zap.NewNop())

	once := c.Check("완치 가능합니다.")
	twice := c.Check("완치 가능합니다. 정말 완치됩니다.")
	assert.Equal(t, once.Score, twice.Score)
}

func TestCheck_ScoreFlooredAtZero(t *testing.T) {
	c := NewChecker(zap.NewNop())

	text := strings.Join([]string{
		"100% 성공", "완치", "부작용 없는", "무조건", "최고", "유일한", "효과 보장",
		"바로 효과", "확실한 효과",
	}, " ")
	result := c.Check(text)
	assert.Equal(t, 0.0, result.Score)
	assert.Len(t, result.Violations, 9)
}

func TestCheck_RiskyPhrase(t *testing.T) {
	c := NewChecker(zap.NewNop())

	result := c.Check("시술 후 바로 효과를 보실 수 있습니다.")
	assert.InDelta(t, 0.9, result.Score, 1e-9)
	assert.Contains(t, result.Violations, "바로 효과")
}

func TestSuggest_ReplacesProhibitedPhrases(t *testing.T) {
	c := NewChecker(zap.NewNop())

	got := c.Suggest("저희는 완치를 최고 수준으로 보장합니다.")
	assert.NotContains(t, got, "완치")
	assert.Contains(t, got, "증상 개선")
	assert.Contains(t, got, "우수한")
}
