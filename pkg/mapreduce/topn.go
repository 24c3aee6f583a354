package mapreduce

import (
	"fmt"
	"io"
	"sort"
)

type kv struct {
	Key   string
	Value int
}

// sorted orders counts by value descending, then key, dropping zero counts.
func sorted(counts map[string]int) []kv {
	var ss []kv
	for k, v := range counts {
		if v > 0 {
			ss = append(ss, kv{k, v})
		}
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})
	return ss
}

// TopKeywords returns the top N features by change count as formatted strings.
// Each string is formatted as "feature:count" (e.g., "nr_band:3").
// Features that never changed are left out.
func TopKeywords(counts map[string]int, n int) []string {
	ss := sorted(counts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return keywords
}

// PrintTopKeywords writes the top N features in a numbered list format.
func PrintTopKeywords(w io.Writer, counts map[string]int, n int) {
	for i, s := range TopKeywords(counts, n) {
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
}
