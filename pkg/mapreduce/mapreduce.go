package mapreduce

import (
	"github.com/dtnitsch/rrc-change-tracker/models"
	"github.com/dtnitsch/rrc-change-tracker/pkg/tracker"
)

// Map counts value changes per feature for a single document's result.
func Map(result models.AnalysisResult) map[string]int {
	counts := make(map[string]int, len(result))
	for name, history := range result {
		counts[name] = tracker.Changes(history)
	}
	return counts
}

// Reduce aggregates a slice of change count maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for name, count := range counts {
			finalResults[name] += count
		}
	}

	return finalResults
}
