// Package extractor finds the raw occurrences of a feature pattern in an
// RRC log document.
package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

// Compile compiles a feature pattern. Block patterns are compiled with the
// s flag so that . matches newlines and a block body can span lines.
func Compile(pattern string, isBlock bool) (*regexp.Regexp, error) {
	expr := pattern
	if isBlock {
		expr = "(?s)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Scan returns every non-overlapping match of re in document order.
//
// For block patterns with a capturing group the first group is returned,
// otherwise the whole match. Values are trimmed. A group that did not take
// part in the match yields an empty string.
//
// Block bodies end at the first closing delimiter the pattern allows, so a
// nested block of the same kind truncates the capture.
func Scan(document string, re *regexp.Regexp, isBlock bool) []string {
	useGroup := isBlock && re.NumSubexp() > 0

	matches := re.FindAllStringSubmatchIndex(document, -1)
	occurrences := make([]string, 0, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		if useGroup {
			start, end = m[2], m[3]
		}
		if start < 0 {
			occurrences = append(occurrences, "")
			continue
		}
		occurrences = append(occurrences, strings.TrimSpace(document[start:end]))
	}
	return occurrences
}

// ScanPattern compiles pattern and scans document with it.
func ScanPattern(document, pattern string, isBlock bool) ([]string, error) {
	re, err := Compile(pattern, isBlock)
	if err != nil {
		return nil, err
	}
	return Scan(document, re, isBlock), nil
}
