// Package tracker records how a feature's value changes across a document.
package tracker

import (
	"regexp"

	"github.com/dtnitsch/rrc-change-tracker/models"
	"github.com/dtnitsch/rrc-change-tracker/pkg/decoder"
	"github.com/dtnitsch/rrc-change-tracker/pkg/extractor"
)

// History scans document with re and collapses consecutive equal values.
// A value that comes back after a different one starts a new run and is
// recorded again.
func History(document string, re *regexp.Regexp, isBlock bool) models.History {
	var (
		history models.History
		last    models.DecodedValue
		seen    bool
	)
	for _, occ := range extractor.Scan(document, re, isBlock) {
		current := models.ScalarValue(occ)
		if isBlock {
			current = models.BlockValue(decoder.Decode(occ))
		}
		if seen && current.Equal(last) {
			continue
		}
		history = append(history, current)
		last, seen = current, true
	}
	return history
}

// Changes returns the number of value changes in h, not counting the
// first value.
func Changes(h models.History) int {
	if len(h) == 0 {
		return 0
	}
	return len(h) - 1
}
