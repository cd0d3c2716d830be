package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsTranscriptArtifacts(t *testing.T) {
	in := "참석자 1 00:01 안녕하세요.\n참석자 2 00:15 네,   반갑습니다."
	got := Normalize(in)
	assert.Equal(t, "안녕하세요. 네, 반갑습니다.", got)
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("여러   칸의\n\n\n공백과    줄바꿈")
	assert.Equal(t, "여러 칸의 공백과 줄바꿈", got)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"참석자 1 00:01 안녕하세요.\n참석자 2 00:15 반갑습니다.",
		"  평범한   문장  ",
		"",
		"00:0112:34앞뒤 타임스탬프00:59",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\n  "))
}
