package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"wikiquiz/internal/domain"
)

var requiredQuestionKeys = []string{"question", "options", "correct_answer", "explanation"}

// ParseQuestions turns raw generator output into a validated question set.
// The generation backend is untrusted free text, so this is the sole trust
// boundary between model output and persisted data: validation is strict and
// fails closed instead of attempting partial recovery.
//
// The requested question count is deliberately not checked against the
// returned count; shape is enforced, cardinality is not.
func ParseQuestions(raw string) ([]domain.QuizQuestion, error) {
	cleaned := stripCodeFence(raw)

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &elements); err != nil {
		return nil, domain.NewGenerationFormatError(
			fmt.Sprintf("Failed to parse LLM response as JSON: %v", err), err)
	}
	if len(elements) == 0 {
		return nil, domain.NewGenerationFormatError("Response contains no questions", nil)
	}

	for idx, element := range elements {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(element, &fields); err != nil {
			return nil, domain.NewGenerationFormatError(
				fmt.Sprintf("Question %d is not an object", idx+1), err)
		}

		var missing []string
		for _, key := range requiredQuestionKeys {
			if _, ok := fields[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, domain.NewGenerationFormatError(
				fmt.Sprintf("Question %d missing keys: %s", idx+1, strings.Join(missing, ", ")), nil)
		}

		var options []json.RawMessage
		if err := json.Unmarshal(fields["options"], &options); err != nil {
			return nil, domain.NewGenerationFormatError(
				fmt.Sprintf("Question %d has malformed options", idx+1), err)
		}
		if len(options) != 4 {
			return nil, domain.NewGenerationFormatError(
				fmt.Sprintf("Question %d has %d options, expected 4", idx+1, len(options)), nil)
		}
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, domain.NewGenerationFormatError(
			fmt.Sprintf("Failed to parse LLM response as JSON: %v", err), err)
	}
	return questions, nil
}

// stripCodeFence unwraps a markdown code fence around the payload. A fence
// tagged json wins over a generic fence; text without fences passes through.
func stripCodeFence(raw string) string {
	s := raw
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+len("```json"):]
		if end := strings.Index(s, "```"); end != -1 {
			s = s[:end]
		}
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+len("```"):]
		if end := strings.Index(s, "```"); end != -1 {
			s = s[:end]
		}
	}
	return strings.TrimSpace(s)
}
