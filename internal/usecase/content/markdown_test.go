package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTML_HeadingBoldParagraph(t *testing.T) {
	got := MarkdownToHTML("# Title\n\nSome **bold** text.")
	assert.Contains(t, got, "<h1>Title</h1>")
	assert.Contains(t, got, "<strong>bold</strong>")
	assert.Contains(t, got, "<p>Some <strong>bold</strong> text.</p>")
}

func TestMarkdownToHTML_AllHeadingLevels(t *testing.T) {
	got := MarkdownToHTML("# 하나\n\n## 둘\n\n### 셋")
	assert.Contains(t, got, "<h1>하나</h1>")
	assert.Contains(t, got, "<h2>둘</h2>")
	assert.Contains(t, got, "<h3>셋</h3>")
}

func TestMarkdownToHTML_IdempotentOnOwnOutput(t *testing.T) {
	inputs := []string{
		"# Title\n\nSome **bold** text.",
		"## 자주 묻는 질문\n\n**Q. 비용은요?**\n\n상담 시 안내드립니다.",
		"문단 하나.\n\n문단 둘.",
	}
	for _, in := range inputs {
		once := MarkdownToHTML(in)
		assert.Equal(t, once, MarkdownToHTML(once), "input %q", in)
	}
}

func TestMarkdownToHTML_SkipsEmptyBlocks(t *testing.T) {
	got := MarkdownToHTML("문단.\n\n\n\n")
	assert.Equal(t, "<p>문단.</p>", got)
}
