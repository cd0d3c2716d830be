package analyzer

import "regexp"

// ToneRule maps a tone category to its marker phrases.
// Rules are checked in order and the first highest-scoring category wins.
type ToneRule struct {
	Category string
	Markers  []string
}

// DepartmentRule assigns a department when any keyword appears in the text
type DepartmentRule struct {
	Any        []string
	Department string
}

// SpecialtyRule assigns a specialty when every keyword appears in the text
type SpecialtyRule struct {
	All       []string
	Specialty string
}

// DemographicRule assigns a target demographic when any keyword appears
type DemographicRule struct {
	Any         []string
	Demographic string
}

// Patterns bundles every extraction table used by the Extractor
type Patterns struct {
	NamePatterns       []*regexp.Regexp
	PositionPattern    *regexp.Regexp
	ExperiencePatterns []*regexp.Regexp
	DepartmentRules    []DepartmentRule

	ToneRules      []ToneRule
	FormalMarkers  []string
	CasualMarkers  []string
	MedicalTerms   []string
	ExamMarkers    []string
	SurgeryMarkers []string

	EquipmentKeywords []string
	ProcessKeywords   []string

	SpecialtyRules   []SpecialtyRule
	DemographicRules []DemographicRule

	QuestionPatterns []*regexp.Regexp
	FeedbackPatterns []*regexp.Regexp

	LocationKeywords   []string
	EquipmentAdvantage []string
	TeamworkKeywords   []string
}

// DefaultPatterns returns the extraction tables for Korean clinic interviews
func DefaultPatterns() *Patterns {
	return &Patterns{
		NamePatterns: []*regexp.Regexp{
			regexp.MustCompile(`저는\s*([가-힣]{2,4})\s*(?:대리|과장|팀장|부장)`),
			regexp.MustCompile(`([가-힣]{2,4})\s*(?:대리|과장|팀장|부장).*?입니다`),
			regexp.MustCompile(`홍보.*?([가-힣]{2,4})`),
		},
		PositionPattern: regexp.MustCompile(`(대리|과장|팀장|부장|원장)`),
		ExperiencePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)년\s*(?:정도|차|째|경력)`),
			regexp.MustCompile(`경력.*?(\d+)년`),
			regexp.MustCompile(`(\d+)년.*?(?:일|근무|경험)`),
		},
		DepartmentRules: []DepartmentRule{
			{Any: []string{"홍보", "마케팅"}, Department: "홍보팀"},
			{Any: []string{"상담", "접수"}, Department: "상담팀"},
			{Any: []string{"검안", "검사"}, Department: "검안팀"},
			{Any: []string{"간호", "케어"}, Department: "간호팀"},
			{Any: []string{"원장", "의사", "닥터"}, Department: "의료진"},
		},

		ToneRules: []ToneRule{
			{Category: "솔직함", Markers: []string{"솔직하게", "사실", "정말로", "진짜"}},
			{Category: "현실적", Markers: []string{"실제로", "경험상", "보통은", "일반적으로"}},
			{Category: "배려심", Markers: []string{"걱정하지 마시고", "편하게", "천천히", "괜찮아요"}},
			{Category: "전문성", Markers: []string{"의료진과", "정확한", "전문적으로", "임상적으로"}},
			{Category: "친근함", Markers: []string{"~해요", "~거든요", "~네요", "같아서"}},
			{Category: "겸손함", Markers: []string{"제가 알기로는", "아마도", "~인 것 같아요"}},
		},
		FormalMarkers: []string{"습니다", "됩니다", "드립니다"},
		CasualMarkers: []string{"해요", "거든요", "네요", "인데"},
		MedicalTerms: []string{
			"스마일라식", "라식", "라섹", "백내장", "녹내장", "망막", "각막",
			"시력교정", "검안", "안압", "시야검사", "OCT", "안저검사",
			"각막지형도", "눈물층", "마이봄샘", "건성안", "비문증",
			"황반변성", "당뇨망막병증", "자가혈청안약",
		},
		ExamMarkers:    []string{"검사", "OCT", "시야"},
		SurgeryMarkers: []string{"라식", "수술"},

		EquipmentKeywords: []string{"비즈맥스", "장비", "기계", "검사기", "레이저"},
		ProcessKeywords:   []string{"접수", "검안", "진료", "상담", "출장검진", "축제"},

		SpecialtyRules: []SpecialtyRule{
			{All: []string{"대학", "제휴"}, Specialty: "대학 제휴"},
			{All: []string{"출장", "검진"}, Specialty: "출장검진"},
			{All: []string{"축제"}, Specialty: "축제 마케팅"},
			{All: []string{"상담"}, Specialty: "고객 상담"},
		},
		DemographicRules: []DemographicRule{
			{Any: []string{"대학생"}, Demographic: "대학생"},
			{Any: []string{"직장인", "회사"}, Demographic: "직장인"},
			{Any: []string{"어르신", "노인"}, Demographic: "중장년층"},
			{Any: []string{"군인", "군부대"}, Demographic: "군인"},
		},

		QuestionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`자주\s*(?:물어|받는|하는).*?질문`),
			regexp.MustCompile(`많이\s*(?:물어|받는|하는).*?질문`),
			regexp.MustCompile(`궁금해.*?하(?:시는|는)`),
			regexp.MustCompile(`문의.*?많(?:이|은)`),
		},
		FeedbackPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:좋다|만족|감사|고맙다).*?[고하]`),
			regexp.MustCompile(`(?:섬세|친절|정확).*?(?:다고|하)`),
			regexp.MustCompile(`추천.*?(?:하는|받는)`),
		},

		LocationKeywords:   []string{"롯데타워", "잠실", "위치", "접근성", "교통"},
		EquipmentAdvantage: []string{"최신", "정밀", "고급", "첨단"},
		TeamworkKeywords:   []string{"팀워크", "협력", "소통", "친절"},
	}
}
