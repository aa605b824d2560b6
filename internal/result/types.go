package result

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Performance tiers, a pure function of score (see Score).
const (
	PerformanceExcellent = "Excellent"
	PerformanceGood      = "Good"
	PerformanceAverage   = "Average"
	PerformanceNeedsWork = "Needs Work"
)

// Level values accepted for an attempt.
const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// technologies is the allow-list for the technology tag.
var technologies = map[string]struct{}{
	"html":      {},
	"css":       {},
	"js":        {},
	"react":     {},
	"node":      {},
	"mongodb":   {},
	"java":      {},
	"python":    {},
	"cpp":       {},
	"bootstrap": {},
}

// ValidTechnology reports whether the tag is in the allow-list.
func ValidTechnology(tech string) bool {
	_, ok := technologies[tech]
	return ok
}

// ValidLevel reports whether the level is one of the fixed set.
func ValidLevel(level string) bool {
	switch level {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Result is one scored attempt, owned by exactly one user. Records are
// created once and never updated or deleted.
type Result struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user" json:"user"`
	Title          string             `bson:"title" json:"title"`
	Technology     string             `bson:"technology" json:"technology"`
	Level          string             `bson:"level" json:"level"`
	TotalQuestions int                `bson:"totalQuestions" json:"totalQuestions"`
	Correct        int                `bson:"correct" json:"correct"`
	Wrong          int                `bson:"wrong" json:"wrong"`
	Score          int                `bson:"score" json:"score"`
	Performance    string             `bson:"performance" json:"performance"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// SubmitRequest is the attempt submission payload. Numeric fields are
// pointers so that an absent field is distinguishable from zero.
type SubmitRequest struct {
	Title          string `json:"title"`
	Technology     string `json:"technology"`
	Level          string `json:"level"`
	TotalQuestions *int   `json:"totalQuestions"`
	Correct        *int   `json:"correct"`
	Wrong          *int   `json:"wrong"`
}
