package result

import "math"

// Outcome is the derived portion of an attempt record.
type Outcome struct {
	Wrong       int
	Score       int
	Performance string
}

// Score converts raw attempt counters into the stored outcome. It is pure
// and deterministic: the same counters always yield the same outcome, and
// it runs before every persist so stored score/performance always reflect
// the stored counters regardless of what the caller supplied.
//
// wrongOverride, when present, is kept verbatim (clamped to zero) even if
// it disagrees with totalQuestions-correct; score is computed only from
// correct and totalQuestions either way.
func Score(totalQuestions, correct int, wrongOverride *int) Outcome {
	wrong := 0
	if wrongOverride != nil {
		wrong = max(0, *wrongOverride)
	} else {
		wrong = max(0, totalQuestions-correct)
	}

	score := 0
	if totalQuestions > 0 {
		score = int(math.Round(float64(correct) * 100 / float64(totalQuestions)))
	}

	return Outcome{
		Wrong:       wrong,
		Score:       score,
		Performance: performanceFor(score),
	}
}

// performanceFor maps a score to its tier; thresholds are evaluated in
// descending order, first match wins.
func performanceFor(score int) string {
	switch {
	case score >= 85:
		return PerformanceExcellent
	case score >= 70:
		return PerformanceGood
	case score >= 50:
		return PerformanceAverage
	default:
		return PerformanceNeedsWork
	}
}
