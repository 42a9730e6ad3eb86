package llm

import (
	"fmt"

	"wikiquiz/internal/util"
)

const (
	quizPromptMaxContent    = 5000
	summaryPromptMaxContent = 2000
)

// BuildQuizPrompt renders article content and generation parameters into the
// quiz-generation prompt. It is a pure function: same inputs, same prompt.
// Content is capped at 5000 characters to bound request size.
func BuildQuizPrompt(content, title string, numQuestions int) string {
	return fmt.Sprintf(`You are an expert educator. Generate exactly %d high-quality multiple-choice quiz questions based on the following Wikipedia article about "%s".

Article Content:
%s

Requirements:
1. Generate exactly %d questions
2. Each question should have 4 options labeled A, B, C, D
3. Mix difficulty levels: Easy (40%%), Medium (40%%), Hard (20%%)
4. Ground all questions in the article content
5. Provide a brief explanation for each correct answer
6. Ensure questions are educational and comprehensive

Return the response as a JSON array with this exact structure:
[
  {
    "id": 1,
    "question": "Question text here?",
    "topic": "Topic name",
    "difficulty": "easy|medium|hard",
    "options": [
      {"label": "A", "text": "Option A"},
      {"label": "B", "text": "Option B"},
      {"label": "C", "text": "Option C"},
      {"label": "D", "text": "Option D"}
    ],
    "correct_answer": "A",
    "explanation": "Explanation grounded in the article"
  }
]

IMPORTANT: Return ONLY valid JSON, no other text.`,
		numQuestions, title, util.Truncate(content, quizPromptMaxContent), numQuestions)
}

// BuildSummaryPrompt renders the article-summary prompt. Content is capped at
// 2000 characters.
func BuildSummaryPrompt(content, title string) string {
	return fmt.Sprintf(`Write a brief, educational summary (2-3 sentences) of this Wikipedia article about "%s":

%s

Summary:`, title, util.Truncate(content, summaryPromptMaxContent))
}
