package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/pkg/config"
)

func testAnalyzerConfig() config.AnalyzerConfig {
	return config.AnalyzerConfig{
		MinTextLength:    10,
		FormalityRatio:   1.5,
		SkilledThreshold: 3,
		ExpertThreshold:  5,
	}
}

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(testAnalyzerConfig(), zap.NewNop())
}

func TestExtract_PromotionTeamInterview(t *testing.T) {
	e := newTestExtractor(t)

	fact := e.Extract("저는 이예나 대리입니다. 홍보팀에서 10년째 근무하며 대학 제휴를 담당합니다.")
	require.NotNil(t, fact)

	assert.Contains(t, fact.Employee.Name, "이예나")
	assert.Equal(t, "대리", fact.Employee.Position)
	assert.Equal(t, "홍보팀", fact.Employee.Department)
	assert.Equal(t, 10, fact.Employee.ExperienceYears)
	assert.Contains(t, fact.Employee.SpecialtyAreas, "대학 제휴")
	assert.Greater(t, fact.Metadata.ConfidenceScore, 0.0)
}

func TestExtract_ShortInputReturnsPlaceholder(t *testing.T) {
	e := newTestExtractor(t)

	for _, in := range []string{"", "짧음", "   "} {
		fact := e.Extract(in)
		require.NotNil(t, fact, "input %q", in)
		assert.Equal(t, "직원", fact.Employee.Name)
		assert.Equal(t, "일반", fact.Employee.Department)
		assert.Zero(t, fact.Metadata.ConfidenceScore)
	}
}

func TestExtract_CollectionsNeverNil(t *testing.T) {
	e := newTestExtractor(t)

	for _, in := range []string{"", "충분히 길지만 아무 패턴도 없는 일반 문장입니다."} {
		fact := e.Extract(in)
		require.NotNil(t, fact)
		assert.NotNil(t, fact.Employee.SpecialtyAreas)
		assert.NotNil(t, fact.Employee.CareerHistory)
		assert.NotNil(t, fact.Personality.FrequentExpressions)
		assert.NotNil(t, fact.Personality.PersonalityKeywords)
		assert.NotNil(t, fact.Knowledge.Procedures)
		assert.NotNil(t, fact.Knowledge.Equipment)
		assert.NotNil(t, fact.Knowledge.Processes)
		assert.NotNil(t, fact.Knowledge.TechnicalTerms)
		assert.NotNil(t, fact.CustomerInsights.FrequentQuestions)
		assert.NotNil(t, fact.CustomerInsights.CustomerFeedback)
		assert.NotNil(t, fact.CustomerInsights.TargetDemographics)
		assert.NotNil(t, fact.Strengths.CompetitiveAdvantages)
		assert.NotNil(t, fact.Strengths.UniqueServices)
		assert.NotNil(t, fact.Strengths.TeamStrengths)
	}
}

func TestExtract_ConfidenceGrowsWithSignals(t *testing.T) {
	e := newTestExtractor(t)

	sparse := e.Extract("충분히 길지만 아무 패턴도 없는 일반 문장입니다.")
	rich := e.Extract("저는 이예나 대리입니다. 홍보팀에서 10년째 근무하며 대학 제휴와 출장 검진을 담당합니다. 스마일라식 상담도 자주 합니다.")

	assert.GreaterOrEqual(t,
		rich.Metadata.ConfidenceScore,
		sparse.Metadata.ConfidenceScore)
	assert.LessOrEqual(t, rich.Metadata.ConfidenceScore, 1.0)
}

func TestExtract_ToneAndFormality(t *testing.T) {
	e := newTestExtractor(t)

	text := "솔직하게 말씀드리면 사실 정말로 그렇습니다. 진짜 많이들 물어보십니다. " +
		"환자분들께 안내해 드립니다. 검사를 진행합니다. 결과를 설명해 드립니다."
	fact := e.Extract(text)

	assert.Equal(t, "솔직함", fact.Personality.ToneStyle)
	assert.Contains(t, fact.Personality.PersonalityKeywords, "솔직함")
	assert.Equal(t, "formal", fact.Personality.FormalityLevel)
}

func TestExtract_CasualFormality(t *testing.T) {
	e := newTestExtractor(t)

	fact := e.Extract("보통 이렇게 해요. 편하게 오시면 되거든요. 금방 끝나네요. 괜찮아요 정말.")
	assert.Equal(t, "casual", fact.Personality.FormalityLevel)
}

func TestExtract_MixedFormality(t *testing.T) {
	e := newTestExtractor(t)

	// Two formal endings against two casual endings, neither side
	// exceeds the other by the 1.5x ratio
	fact := e.Extract("결과는 아주 좋습니다. 장비도 잘 있습니다. 궁금하면 전화해요. 편하게 방문해요.")
	assert.Equal(t, "mixed", fact.Personality.FormalityLevel)
}

func TestExtract_ComplianceCheckedFlag(t *testing.T) {
	e := newTestExtractor(t)

	analyzed := e.Extract("저는 이예나 대리입니다. 홍보팀에서 10년째 근무합니다.")
	assert.True(t, analyzed.Metadata.ComplianceChecked)

	// Risk phrases do not fail extraction, the check only logs
	risky := e.Extract("저희 수술은 100% 성공 하고 부작용 없는 시술입니다.")
	assert.True(t, risky.Metadata.ComplianceChecked)

	placeholder := e.Extract("짧음")
	assert.False(t, placeholder.Metadata.ComplianceChecked)
}

func TestExtract_ExpertiseLadder(t *testing.T) {
	e := newTestExtractor(t)

	cases := []struct {
		text  string
		level string
	}{
		{"충분히 길지만 의학 용어가 없는 문장입니다.", "일반"},
		{"백내장 환자분들이 많이 오십니다. 그래서 설명을 드립니다.", "경험자"},
		{"백내장, 녹내장, 건성안 환자 응대를 모두 담당하고 있습니다.", "숙련자"},
		{"스마일라식, 라식, 라섹, 백내장, 녹내장 진료를 전부 지원합니다.", "전문가"},
	}
	for _, tc := range cases {
		fact := e.Extract(tc.text)
		assert.Equal(t, tc.level, fact.Knowledge.ExpertiseLevel, "text %q", tc.text)
	}
}

func TestExtract_FrequentQuestionsWindow(t *testing.T) {
	e := newTestExtractor(t)

	text := strings.Repeat("앞부분 문맥입니다. ", 10) +
		"환자분들이 자주 물어보시는 질문은 수술 후 회복 기간입니다. " +
		strings.Repeat("뒷부분 문맥입니다. ", 10)
	fact := e.Extract(text)

	require.NotEmpty(t, fact.CustomerInsights.FrequentQuestions)
	assert.Contains(t, fact.CustomerInsights.FrequentQuestions[0], "질문")
}

func TestExtract_HospitalStrengths(t *testing.T) {
	e := newTestExtractor(t)

	text := "저희는 잠실 롯데타워 근처라 접근성이 좋습니다. 최신 장비를 갖추고 있고 " +
		"개인별 케어를 제공합니다. 개원 이후 무사고 기록을 유지하고 있으며 팀워크도 좋습니다."
	fact := e.Extract(text)

	assert.Contains(t, fact.Strengths.LocationBenefits, "잠실 관련 장점")
	assert.Contains(t, fact.Strengths.EquipmentAdvantages, "최신 장비")
	assert.Contains(t, fact.Strengths.UniqueServices, "개인별 맞춤 케어")
	assert.Contains(t, fact.Strengths.CompetitiveAdvantages, "안전한 시술 기록")
	assert.Contains(t, fact.Strengths.TeamStrengths, "팀워크 우수")
}

func TestExtract_TargetDemographics(t *testing.T) {
	e := newTestExtractor(t)

	fact := e.Extract("대학생 분들과 근처 회사 직장인 분들이 많이 방문하십니다.")
	assert.Contains(t, fact.CustomerInsights.TargetDemographics, "대학생")
	assert.Contains(t, fact.CustomerInsights.TargetDemographics, "직장인")
}
