package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBatch = `[
  {"question": "Q1?", "options": ["A", "B", "C", "D"], "correct": "B"},
  {"question": "Q2?", "options": ["W", "X", "Y", "Z"], "correct": "Z"}
]`

func TestParseQuestionsValid(t *testing.T) {
	qs, err := parseQuestions(validBatch)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Q1?", qs[0].Question)
	assert.Equal(t, "B", qs[0].Correct)
	assert.Equal(t, []string{"W", "X", "Y", "Z"}, qs[1].Options)
}

func TestParseQuestionsStripsCodeFence(t *testing.T) {
	qs, err := parseQuestions("```json\n" + validBatch + "\n```")
	require.NoError(t, err)
	assert.Len(t, qs, 2)

	qs, err = parseQuestions("```\n" + validBatch + "\n```")
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}

func TestParseQuestionsRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose", "Sure! Here are your questions: 1. What is Go?"},
		{"empty", ""},
		{"empty array", "[]"},
		{"object not array", `{"question": "Q?", "options": ["A","B","C","D"], "correct": "A"}`},
		{"missing question", `[{"question": "", "options": ["A","B","C","D"], "correct": "A"}]`},
		{"three options", `[{"question": "Q?", "options": ["A","B","C"], "correct": "A"}]`},
		{"five options", `[{"question": "Q?", "options": ["A","B","C","D","E"], "correct": "A"}]`},
		{"duplicate options", `[{"question": "Q?", "options": ["A","A","C","D"], "correct": "A"}]`},
		{"correct not in options", `[{"question": "Q?", "options": ["A","B","C","D"], "correct": "E"}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseQuestions(tc.raw)
			assert.ErrorIs(t, err, ErrParseFailed)
		})
	}
}

func TestParseQuestionsAllOrNothing(t *testing.T) {
	// One bad entry poisons the whole batch; the valid entry is not
	// recovered.
	raw := `[
	  {"question": "Good?", "options": ["A","B","C","D"], "correct": "A"},
	  {"question": "Bad?", "options": ["A","B"], "correct": "A"}
	]`
	_, err := parseQuestions(raw)
	assert.ErrorIs(t, err, ErrParseFailed)
}
