package content

import (
	"fmt"
	"strings"

	"github.com/bgnclinic/blog-automation/internal/domain/entities"
)

// TopicPlan is the editorial plan chosen for a fact
type TopicPlan struct {
	Title             string
	PrimaryKeyword    string
	SecondaryKeywords []string
	TargetAudience    string
	CTAButtonText     string
	AudienceEN        string
	SubjectEN         string
}

// topicRule selects a plan when the keyword appears in any specialty area
type topicRule struct {
	keyword string
	plan    TopicPlan
}

// topicRules are checked in priority order, first match wins
var topicRules = []topicRule{
	{
		keyword: "대학",
		plan: TopicPlan{
			Title:             "대학생을 위한 시력교정술 완벽 가이드",
			PrimaryKeyword:    "대학생 시력교정",
			SecondaryKeywords: []string{"방학 수술", "학생 할인", "축제 상담"},
			TargetAudience:    "시력교정 고려 중인 대학생",
			CTAButtonText:     "대학생 전용 상담 예약하기",
			AudienceEN:        "university students",
			SubjectEN:         "vision correction surgery",
		},
	},
	{
		keyword: "출장",
		plan: TopicPlan{
			Title:             "직장인을 위한 출장 눈검진 안내",
			PrimaryKeyword:    "직장인 출장검진",
			SecondaryKeywords: []string{"기업 검진", "단체 눈검사"},
			TargetAudience:    "기업 단체 검진 담당자와 직장인",
			CTAButtonText:     "출장검진 문의하기",
			AudienceEN:        "office workers",
			SubjectEN:         "an on-site eye examination",
		},
	},
	{
		keyword: "상담",
		plan: TopicPlan{
			Title:             "안과 상담 전 알아두면 좋은 준비 사항",
			PrimaryKeyword:    "안과 상담 준비",
			SecondaryKeywords: []string{"상담 예약", "검사 준비"},
			TargetAudience:    "안과 방문을 준비하는 예비 환자",
			CTAButtonText:     "상담 예약하기",
			AudienceEN:        "patients",
			SubjectEN:         "an eye care consultation",
		},
	},
}

// defaultTopicPlan is the fallback when no specialty matches
var defaultTopicPlan = TopicPlan{
	Title:             "밝은눈안과가 알려주는 안과진료 가이드",
	PrimaryKeyword:    "안과진료",
	SecondaryKeywords: []string{"눈 건강", "정기 검진"},
	TargetAudience:    "눈 건강이 궁금한 일반 고객",
	CTAButtonText:     "상담 예약하기",
	AudienceEN:        "patients",
	SubjectEN:         "eye care",
}

// planFor picks the topic plan by specialty priority
func planFor(fact *entities.InterviewFact) TopicPlan {
	for _, rule := range topicRules {
		for _, specialty := range fact.Employee.SpecialtyAreas {
			if strings.Contains(specialty, rule.keyword) {
				return rule.plan
			}
		}
	}
	return defaultTopicPlan
}

// slugPair maps a Korean title keyword to its roman slug part.
// Ordered so longer terms win over their substrings.
type slugPair struct {
	korean string
	roman  string
}

var slugPairs = []slugPair{
	{"대학생", "college-student"},
	{"직장인", "office-worker"},
	{"스마일라식", "smile-lasik"},
	{"라식", "lasik"},
	{"라섹", "lasek"},
	{"시력교정", "vision-correction"},
	{"출장", "onsite"},
	{"검진", "checkup"},
	{"상담", "consultation"},
	{"준비", "preparation"},
	{"안과", "eye-clinic"},
	{"가이드", "guide"},
	{"안내", "guide"},
}

const fallbackSlug = "clinic-guide"

// slugify builds a roman slug from Korean keywords found in the title
func slugify(title string) string {
	parts := []string{}
	seen := map[string]struct{}{}
	for _, pair := range slugPairs {
		if !strings.Contains(title, pair.korean) {
			continue
		}
		if _, ok := seen[pair.roman]; ok {
			continue
		}
		seen[pair.roman] = struct{}{}
		parts = append(parts, pair.roman)
	}
	if len(parts) == 0 {
		return fallbackSlug
	}
	return strings.Join(parts, "-")
}

// baseTags appear on every post
var baseTags = []string{"밝은눈안과", "안과정보"}

const maxTags = 8

// baseFAQs appear on every post, specialty extras may follow
var baseFAQs = []entities.FAQ{
	{Question: "상담은 어떻게 받을 수 있나요?", Answer: "전화 또는 온라인으로 상담 예약이 가능합니다."},
	{Question: "검사는 얼마나 걸리나요?", Answer: "정밀 검사는 약 1-2시간 정도 소요됩니다."},
	{Question: "비용은 어떻게 되나요?", Answer: "상담을 통해 개별적으로 안내드립니다."},
}

var specialtyFAQs = map[string]entities.FAQ{
	"대학": {
		Question: "방학 중에 수술이 가능한가요?",
		Answer:   "방학 기간에 맞춘 수술 일정과 회복 계획을 함께 안내해 드립니다.",
	},
	"출장": {
		Question: "출장검진은 어떻게 신청하나요?",
		Answer:   "기업 담당자분께서 전화로 일정을 협의해 주시면 됩니다.",
	},
}

const maxFAQs = 4

const metaDescriptionSuffix = " 밝은눈안과 전문 의료진이 준비부터 사후 관리까지 자세히 안내해 드립니다."

const maxMetaDescriptionRunes = 155

// imagePrompts builds the three DALL-E prompt sentences for a plan
func imagePrompts(plan TopicPlan) []string {
	return []string{
		fmt.Sprintf("%s consulting about %s in a modern Korean eye clinic", plan.AudienceEN, plan.SubjectEN),
		"medical equipment for precise eye examination in a clean hospital room",
		fmt.Sprintf("smiling %s after successful %s", plan.AudienceEN, plan.SubjectEN),
	}
}

// fallbackBody renders the template body used when no AI draft is available
func fallbackBody(fact *entities.InterviewFact, plan TopicPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", plan.Title)
	fmt.Fprintf(&b, "%s에 대해 궁금하셨다면 이 글에서 핵심만 정리해 드립니다. ", plan.PrimaryKeyword)
	b.WriteString("밝은눈안과의 경험을 바탕으로 준비부터 사후 관리까지 차근차근 안내합니다.\n\n")

	b.WriteString("## 대상별 맞춤 정보를 안내드립니다\n\n")
	fmt.Fprintf(&b, "%s을 위해 꼭 필요한 정보를 모았습니다. ", plan.TargetAudience)
	b.WriteString("개인별 눈 상태에 따라 적합한 방법이 달라지므로 정밀 검사 후 상담을 권해 드립니다.\n\n")

	b.WriteString("## 전문 의료진의 상세한 설명\n\n")
	if len(fact.Knowledge.Procedures) > 0 {
		fmt.Fprintf(&b, "저희 병원은 **%s** 분야에서 풍부한 경험을 갖추고 있습니다. ",
			strings.Join(fact.Knowledge.Procedures, ", "))
	} else {
		b.WriteString("저희 병원은 다양한 안과 진료 분야에서 풍부한 경험을 갖추고 있습니다. ")
	}
	if len(fact.Strengths.LocationBenefits) > 0 || len(fact.Strengths.EquipmentAdvantages) > 0 {
		b.WriteString("정밀 장비와 편리한 접근성으로 처음 방문하시는 분도 편하게 진료받으실 수 있습니다.")
	} else {
		b.WriteString("의료진과의 충분한 상담을 통해 정확한 진단을 받으실 수 있습니다.")
	}
	b.WriteString("\n\n")

	b.WriteString("## 자주 묻는 질문\n\n")
	for _, faq := range faqsFor(fact) {
		fmt.Fprintf(&b, "**Q. %s**\n\n%s\n\n", faq.Question, faq.Answer)
	}

	b.WriteString("본 내용은 일반적인 안내사항으로, 개인별 상태에 따라 달라질 수 있습니다. ")
	b.WriteString("정확한 진단과 치료는 의료진과의 상담을 통해 받으시기 바랍니다.\n")

	return b.String()
}

// faqsFor returns the base FAQ set plus specialty extras, capped
func faqsFor(fact *entities.InterviewFact) []entities.FAQ {
	faqs := make([]entities.FAQ, len(baseFAQs))
	copy(faqs, baseFAQs)

	for _, rule := range topicRules {
		extra, ok := specialtyFAQs[rule.keyword]
		if !ok {
			continue
		}
		for _, specialty := range fact.Employee.SpecialtyAreas {
			if strings.Contains(specialty, rule.keyword) {
				faqs = append(faqs, extra)
				break
			}
		}
	}

	if len(faqs) > maxFAQs {
		faqs = faqs[:maxFAQs]
	}
	return faqs
}
