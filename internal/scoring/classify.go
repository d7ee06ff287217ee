// Package scoring maps numeric AI fit scores to display categories.
package scoring

// Category buckets a fit score for badge rendering and auto-pilot copy.
type Category string

const (
	CategoryStrong   Category = "strong"
	CategoryModerate Category = "moderate"
	CategoryWeak     Category = "weak"
)

// Classification pairs a category with the labels shown alongside a score.
type Classification struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`   // short badge label
	Summary  string   `json:"summary"` // long-form match summary
}

// Classify buckets a fit score. Thresholds are fixed for compatibility with
// the dashboard badge rendering: >80 strong, 50-80 inclusive moderate,
// <50 weak. NaN fails both comparisons and lands in weak. Never fails.
func Classify(score float64) Classification {
	switch {
	case score > 80:
		return Classification{
			Category: CategoryStrong,
			Label:    "High match",
			Summary:  "Strong Match - Recommended for Interview",
		}
	case score >= 50:
		return Classification{
			Category: CategoryModerate,
			Label:    "Moderate",
			Summary:  "Moderate Match - Review Recommended",
		}
	default:
		return Classification{
			Category: CategoryWeak,
			Label:    "Low match",
			Summary:  "Low Match - May Not Meet Requirements",
		}
	}
}
