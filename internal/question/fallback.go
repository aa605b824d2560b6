package question

import (
	"strings"

	"github.com/google/uuid"
)

// defaultTopic backs any topic the bank has no entries for.
const defaultTopic = "gk"

// FallbackBank is a static, topic-keyed catalog of vetted questions used
// whenever the provider is unavailable or returns malformed output.
type FallbackBank struct {
	sets map[string][]Question
}

// NewFallbackBank builds the curated catalog.
func NewFallbackBank() *FallbackBank {
	return &FallbackBank{sets: fallbackSets}
}

// Lookup matches the topic case-insensitively (exact match only, no fuzzy
// matching) and returns up to count questions in the bank's natural order.
// Unknown topics fall back to the default category. When the matched set
// has fewer entries than requested, fewer are returned.
func (b *FallbackBank) Lookup(topic string, count int) []Question {
	set, ok := b.sets[strings.ToLower(strings.TrimSpace(topic))]
	if !ok {
		set = b.sets[defaultTopic]
	}
	if count > len(set) {
		count = len(set)
	}

	out := make([]Question, count)
	for i, q := range set[:count] {
		q.ID = uuid.NewString()
		out[i] = q
	}
	return out
}

// Topics returns the bank's topic keys.
func (b *FallbackBank) Topics() []string {
	topics := make([]string, 0, len(b.sets))
	for k := range b.sets {
		topics = append(topics, k)
	}
	return topics
}

var fallbackSets = map[string][]Question{
	"java": {
		{
			Question: "Which method is the entry point for a Java program?",
			Options:  []string{"start()", "main()", "run()", "execute()"},
			Correct:  "main()",
		},
		{
			Question: "Which keyword is used to inherit a class in Java?",
			Options:  []string{"this", "extends", "super", "implements"},
			Correct:  "extends",
		},
		{
			Question: "What is the size of int in Java?",
			Options:  []string{"16 bits", "32 bits", "64 bits", "Depends on system"},
			Correct:  "32 bits",
		},
	},
	"python": {
		{
			Question: "Which keyword is used to define a function in Python?",
			Options:  []string{"func", "define", "def", "lambda"},
			Correct:  "def",
		},
		{
			Question: "Which data type is immutable in Python?",
			Options:  []string{"List", "Set", "Tuple", "Dictionary"},
			Correct:  "Tuple",
		},
		{
			Question: "What library is commonly used for data analysis in Python?",
			Options:  []string{"Pandas", "TensorFlow", "NumPy", "Matplotlib"},
			Correct:  "Pandas",
		},
	},
	"civil": {
		{
			Question: "What is the most common material used for building foundations?",
			Options:  []string{"Steel", "Concrete", "Wood", "Brick"},
			Correct:  "Concrete",
		},
		{
			Question: "Which test is used to determine the strength of concrete?",
			Options:  []string{"Slump test", "Compression test", "Tensile test", "Flexural test"},
			Correct:  "Compression test",
		},
	},
	"ai": {
		{
			Question: "What does AI stand for?",
			Options:  []string{"Artificial Integration", "Artificial Intelligence", "Automated Input", "Active Interface"},
			Correct:  "Artificial Intelligence",
		},
		{
			Question: "Which algorithm is used for decision trees?",
			Options:  []string{"ID3", "SVM", "CNN", "KNN"},
			Correct:  "ID3",
		},
		{
			Question: "Who is considered the father of AI?",
			Options:  []string{"Alan Turing", "Geoffrey Hinton", "John McCarthy", "Andrew Ng"},
			Correct:  "John McCarthy",
		},
	},
	"gk": {
		{
			Question: "Which planet is known as the Red Planet?",
			Options:  []string{"Earth", "Venus", "Mars", "Jupiter"},
			Correct:  "Mars",
		},
		{
			Question: "Who wrote the Indian National Anthem?",
			Options:  []string{"Rabindranath Tagore", "Bankim Chandra Chatterjee", "Mahatma Gandhi", "Jawaharlal Nehru"},
			Correct:  "Rabindranath Tagore",
		},
	},
}
