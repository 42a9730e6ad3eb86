package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuizPrompt(t *testing.T) {
	prompt := BuildQuizPrompt("Article body text.", "Alan Turing", 8)

	assert.Contains(t, prompt, "Generate exactly 8 high-quality multiple-choice quiz questions")
	assert.Contains(t, prompt, `"Alan Turing"`)
	assert.Contains(t, prompt, "Article body text.")
	assert.Contains(t, prompt, "4 options labeled A, B, C, D")
	assert.Contains(t, prompt, "Easy (40%), Medium (40%), Hard (20%)")
	assert.Contains(t, prompt, `"correct_answer": "A"`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestBuildQuizPromptTruncatesContent(t *testing.T) {
	content := strings.Repeat("z", 6000)
	prompt := BuildQuizPrompt(content, "Long Article", 5)

	assert.Contains(t, prompt, strings.Repeat("z", 5000))
	assert.NotContains(t, prompt, strings.Repeat("z", 5001))
}

func TestBuildQuizPromptDeterministic(t *testing.T) {
	first := BuildQuizPrompt("content", "title", 8)
	second := BuildQuizPrompt("content", "title", 8)
	assert.Equal(t, first, second)
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := BuildSummaryPrompt("Some article content.", "Alan Turing")

	assert.Contains(t, prompt, `"Alan Turing"`)
	assert.Contains(t, prompt, "Some article content.")
	assert.Contains(t, prompt, "Summary:")
}

func TestBuildSummaryPromptTruncatesContent(t *testing.T) {
	content := strings.Repeat("z", 3000)
	prompt := BuildSummaryPrompt(content, "Long Article")

	assert.Contains(t, prompt, strings.Repeat("z", 2000))
	assert.NotContains(t, prompt, strings.Repeat("z", 2001))
}
