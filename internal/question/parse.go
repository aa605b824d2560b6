package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParseFailed marks provider output that could not be turned into a
// valid question list. The batch is rejected as a whole; individually valid
// questions inside a malformed batch are not recovered.
var ErrParseFailed = errors.New("provider output unparsable")

type providerQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
}

// parseQuestions validates the provider's raw text against the expected
// schema: a JSON array of objects each carrying a question string, exactly
// four distinct options, and a correct value present among the options.
// All-or-nothing: any invalid entry fails the whole batch.
func parseQuestions(raw string) ([]Question, error) {
	payload := stripCodeFence(strings.TrimSpace(raw))
	if payload == "" {
		return nil, fmt.Errorf("%w: empty response", ErrParseFailed)
	}

	var items []providerQuestion
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty question list", ErrParseFailed)
	}

	out := make([]Question, 0, len(items))
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrParseFailed, i, err)
		}
		out = append(out, Question{
			Question: item.Question,
			Options:  item.Options,
			Correct:  item.Correct,
		})
	}
	return out, nil
}

func validateItem(item providerQuestion) error {
	if strings.TrimSpace(item.Question) == "" {
		return errors.New("missing question text")
	}
	if len(item.Options) != optionCount {
		return fmt.Errorf("expected %d options, got %d", optionCount, len(item.Options))
	}

	seen := make(map[string]struct{}, optionCount)
	for _, opt := range item.Options {
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = struct{}{}
	}

	if _, ok := seen[item.Correct]; !ok {
		return errors.New("correct answer not among options")
	}
	return nil
}

// stripCodeFence unwraps a ```...``` block (with or without a language tag)
// so fenced-but-valid JSON does not force a fallback.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop a language tag like "json" on the fence line.
		first := strings.TrimSpace(s[:idx])
		if !strings.HasPrefix(first, "[") && !strings.HasPrefix(first, "{") {
			s = s[idx+1:]
		}
	}
	return strings.TrimSpace(s)
}
