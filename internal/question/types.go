package question

// Pack sources reported to the client so it can signal degraded quality.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Defaults applied when the caller omits count or difficulty.
const (
	DefaultCount      = 5
	DefaultDifficulty = "basic"
)

// optionCount is the fixed number of choices per question.
const optionCount = 4

// Question is one multiple-choice question. The schema is identical whether
// the question came from the provider or the fallback bank, so downstream
// code is agnostic to provenance.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
}

// GenerateRequest asks for a question pack on a topic.
type GenerateRequest struct {
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
}

// Pack is an ordered set of questions plus its provenance.
type Pack struct {
	Topic     string     `json:"topic"`
	Source    string     `json:"source"`
	Questions []Question `json:"questions"`
}
