package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
	"github.com/bgnclinic/blog-automation/internal/usecase/compliance"
)

func newTestAssembler() *Assembler {
	return NewAssembler(compliance.NewChecker(zap.NewNop()), zap.NewNop())
}

func TestAssemble_UniversityPartnershipPlan(t *testing.T) {
	fact := entities.NewInterviewFact()
	fact.Employee.Name = "이예나"
	fact.Employee.SpecialtyAreas = []string{"대학 제휴", "출장검진"}
	fact.Knowledge.Procedures = []string{"스마일라식"}

	pkg := newTestAssembler().Assemble(fact, "")
	require.NotNil(t, pkg)

	assert.Equal(t, "대학생을 위한 시력교정술 완벽 가이드", pkg.Title)
	assert.Equal(t, "college-student-vision-correction-guide", pkg.Slug)
	assert.Equal(t, "대학생 시력교정", pkg.PrimaryKeyword)
	assert.Equal(t, "대학생 전용 상담 예약하기", pkg.CTAButtonText)
	assert.Contains(t, pkg.Tags, "밝은눈안과")
	assert.Contains(t, pkg.Tags, "대학 제휴")
	assert.Contains(t, pkg.Tags, "스마일라식")
	assert.Len(t, pkg.ImagePrompts, 3)
	assert.Len(t, pkg.FAQList, 4)
}

func TestAssemble_PlaceholderFactStillProducesContent(t *testing.T) {
	pkg := newTestAssembler().Assemble(entities.PlaceholderFact(), "")
	require.NotNil(t, pkg)

	assert.NotEmpty(t, pkg.Title)
	assert.NotEmpty(t, pkg.Slug)
	assert.NotEmpty(t, pkg.ContentHTML)
	assert.Contains(t, pkg.ContentHTML, "<h1>")
	assert.Len(t, pkg.FAQList, 3)
}

func TestAssemble_DraftBodyIsKept(t *testing.T) {
	fact := entities.NewInterviewFact()
	body := "# 제목\n\nAI가 작성한 본문입니다."

	pkg := newTestAssembler().Assemble(fact, body)
	assert.Equal(t, body, pkg.ContentMarkdown)
	assert.Contains(t, pkg.ContentHTML, "<h1>제목</h1>")
	assert.Contains(t, pkg.ContentHTML, "<p>AI가 작성한 본문입니다.</p>")
}

func TestAssemble_ComplianceViolationLowersScore(t *testing.T) {
	fact := entities.NewInterviewFact()

	pkg := newTestAssembler().Assemble(fact, "저희 수술은 100% 성공을 보장합니다.")
	assert.Less(t, pkg.ComplianceScore, 1.0)
	assert.Contains(t, pkg.Violations, "100% 성공")
}

func TestAssemble_MetaDescriptionCapped(t *testing.T) {
	pkg := newTestAssembler().Assemble(entities.NewInterviewFact(), "")
	assert.LessOrEqual(t, utf8.RuneCountInString(pkg.MetaDescription), 155)
	assert.True(t, strings.HasPrefix(pkg.MetaDescription, pkg.Title))
}

func TestAssemble_TagsCapped(t *testing.T) {
	fact := entities.NewInterviewFact()
	fact.Employee.SpecialtyAreas = []string{"대학 제휴", "출장검진", "축제 마케팅", "고객 상담"}
	fact.Knowledge.Procedures = []string{"스마일라식", "라식", "라섹", "백내장", "녹내장"}

	pkg := newTestAssembler().Assemble(fact, "")
	assert.LessOrEqual(t, len(pkg.Tags), 8)
}

func TestReadingMinutes(t *testing.T) {
	assert.Equal(t, 1, readingMinutes(""))
	assert.Equal(t, 1, readingMinutes("짧은 글"))
	assert.Equal(t, 1, readingMinutes(strings.Repeat("가", 300)))
	assert.Equal(t, 2, readingMinutes(strings.Repeat("가", 301)))
	assert.Equal(t, 4, readingMinutes(strings.Repeat("가", 1000)))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "college-student-vision-correction-guide",
		slugify("대학생을 위한 시력교정술 완벽 가이드"))
	assert.Equal(t, "office-worker-onsite-checkup-guide",
		slugify("직장인을 위한 출장 눈검진 안내"))
	assert.Equal(t, "clinic-guide", slugify("전혀 매칭되지 않는 제목"))
}
