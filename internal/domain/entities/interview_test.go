package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEnhancement_ScalarsFirstWriteWins(t *testing.T) {
	fact := NewInterviewFact()
	fact.Employee.Name = "이예나"
	fact.Employee.Position = ""
	fact.Employee.ExperienceYears = 10

	enh := &Enhancement{}
	enh.Employee.Name = "김철수"
	enh.Employee.Position = "과장"
	enh.Employee.ExperienceYears = 3

	fact.MergeEnhancement(enh)

	// Values the pattern pass already extracted are never overwritten
	assert.Equal(t, "이예나", fact.Employee.Name)
	assert.Equal(t, 10, fact.Employee.ExperienceYears)
	// Empty scalars adopt the enhancement value
	assert.Equal(t, "과장", fact.Employee.Position)
}

func TestMergeEnhancement_EmptyScalarsAdopted(t *testing.T) {
	fact := NewInterviewFact()

	enh := &Enhancement{}
	enh.Employee.Name = "이예나"
	enh.Employee.Department = "홍보팀"
	enh.Personality.ToneStyle = "친근함"
	enh.Personality.CommunicationStyle = "예시 중심"

	fact.MergeEnhancement(enh)

	assert.Equal(t, "이예나", fact.Employee.Name)
	assert.Equal(t, "홍보팀", fact.Employee.Department)
	assert.Equal(t, "친근함", fact.Personality.ToneStyle)
	assert.Equal(t, "예시 중심", fact.Personality.CommunicationStyle)
}

func TestMergeEnhancement_CollectionsUnionWithoutDuplicates(t *testing.T) {
	fact := NewInterviewFact()
	fact.Employee.SpecialtyAreas = []string{"대학 제휴"}
	fact.Personality.PersonalityKeywords = []string{"솔직함"}

	enh := &Enhancement{}
	enh.Employee.SpecialtyAreas = []string{"대학 제휴", "출장검진", ""}
	enh.Personality.PersonalityKeywords = []string{"전문성", "솔직함"}
	enh.CustomerInsights.FrequentQuestions = []string{"라식 가격이 궁금해요"}

	fact.MergeEnhancement(enh)

	// Base order preserved, new values appended, duplicates and blanks dropped
	assert.Equal(t, []string{"대학 제휴", "출장검진"}, fact.Employee.SpecialtyAreas)
	assert.Equal(t, []string{"솔직함", "전문성"}, fact.Personality.PersonalityKeywords)
	assert.Equal(t, []string{"라식 가격이 궁금해요"}, fact.CustomerInsights.FrequentQuestions)
}

func TestMergeEnhancement_MarksAIEnhancementUsed(t *testing.T) {
	fact := NewInterviewFact()
	assert.False(t, fact.Metadata.AIEnhancementUsed)

	fact.MergeEnhancement(&Enhancement{})
	assert.True(t, fact.Metadata.AIEnhancementUsed)
}

func TestMergeEnhancement_NilIsNoOp(t *testing.T) {
	fact := NewInterviewFact()
	fact.Employee.Name = "이예나"

	fact.MergeEnhancement(nil)

	assert.Equal(t, "이예나", fact.Employee.Name)
	assert.False(t, fact.Metadata.AIEnhancementUsed)
}
