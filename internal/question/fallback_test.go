package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackLookupCaseInsensitive(t *testing.T) {
	bank := NewFallbackBank()

	lower := bank.Lookup("python", 3)
	upper := bank.Lookup("PYTHON", 3)
	require.Len(t, lower, 3)
	require.Len(t, upper, 3)
	assert.Equal(t, lower[0].Question, upper[0].Question)
}

func TestFallbackUnknownTopicUsesDefault(t *testing.T) {
	bank := NewFallbackBank()

	qs := bank.Lookup("quantum basket weaving", 5)
	require.NotEmpty(t, qs)
	gk := bank.Lookup("gk", 5)
	assert.Equal(t, gk[0].Question, qs[0].Question)
}

func TestFallbackTruncatesNeverPads(t *testing.T) {
	bank := NewFallbackBank()

	assert.Len(t, bank.Lookup("java", 2), 2)
	// Asking for more than the set holds returns the whole set, no padding
	// and no error.
	assert.Len(t, bank.Lookup("civil", 50), 2)
}

func TestFallbackQuestionsAreWellFormed(t *testing.T) {
	bank := NewFallbackBank()

	for _, topic := range bank.Topics() {
		for _, q := range bank.Lookup(topic, 100) {
			assert.NotEmpty(t, q.ID)
			assert.NotEmpty(t, q.Question)
			assert.Len(t, q.Options, 4)
			assert.Contains(t, q.Options, q.Correct)
		}
	}
}
