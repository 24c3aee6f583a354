// Package decoder turns the body of a brace-delimited RRC block into a
// typed record.
package decoder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dtnitsch/rrc-change-tracker/models"
)

// fieldSeparator splits "key value", "key: value" and "key:value" at the
// leftmost separator.
var fieldSeparator = regexp.MustCompile(`\s+|:\s*`)

// lineBreak matches CRLF, LF, bare CR and the other Unicode line separators.
var lineBreak = regexp.MustCompile(`\r\n|[\n\r\v\f\x{1c}-\x{1e}\x{85}\x{2028}\x{2029}]`)

var braceStripper = strings.NewReplacer("{", "", "}", "")

// Decode parses blockText line by line. It never fails: values that are
// not numbers are kept as strings and empty lines are skipped.
func Decode(blockText string) models.Record {
	var rec models.Record
	if blockText == "" {
		return rec
	}

	for _, line := range lineBreak.Split(blockText, -1) {
		clean := cleanLine(line)
		if clean == "" {
			continue
		}

		name, raw, ok := splitField(clean)
		if !ok {
			rec.Set(name, models.Present)
			continue
		}
		rec.Set(name, parseValue(strings.Trim(raw, `"`)))
	}
	return rec
}

func cleanLine(line string) string {
	clean := strings.TrimSpace(line)
	clean = strings.TrimSuffix(clean, ",")
	clean = braceStripper.Replace(clean)
	return strings.TrimSpace(clean)
}

func splitField(line string) (name, value string, ok bool) {
	loc := fieldSeparator.FindStringIndex(line)
	if loc == nil {
		return line, "", false
	}
	return line[:loc[0]], line[loc[1]:], true
}

// parseValue types raw as float when it has a decimal point, int
// otherwise, falling back to string when the number does not parse.
// Hex literals stay strings; underscores between digits are allowed.
func parseValue(raw string) models.FieldValue {
	num, ok := normalizeNumber(raw)
	if !ok {
		return models.StringValue(raw)
	}
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(num, 64); err == nil {
			return models.FloatValue(f)
		}
		return models.StringValue(raw)
	}
	if i, err := strconv.ParseInt(num, 10, 64); err == nil {
		return models.IntValue(i)
	}
	return models.StringValue(raw)
}

// normalizeNumber trims raw and drops digit-group underscores. It rejects
// base prefixes and misplaced underscores.
func normalizeNumber(raw string) (string, bool) {
	num := strings.TrimSpace(raw)
	unsigned := strings.TrimLeft(num, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && strings.ContainsRune("xXoObB", rune(unsigned[1])) {
		return "", false
	}
	if !strings.Contains(num, "_") {
		return num, true
	}
	for i := 0; i < len(num); i++ {
		if num[i] != '_' {
			continue
		}
		if i == 0 || i == len(num)-1 || !isDigit(num[i-1]) || !isDigit(num[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(num, "_", ""), true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
