package tracker

import (
	"strings"
	"testing"

	"github.com/dtnitsch/rrc-change-tracker/models"
	"github.com/dtnitsch/rrc-change-tracker/pkg/extractor"
)

func mustCompile(t *testing.T, pattern string, isBlock bool) func(string) models.History {
	t.Helper()
	re, err := extractor.Compile(pattern, isBlock)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return func(doc string) models.History { return History(doc, re, isBlock) }
}

func TestHistory_ScalarRuns(t *testing.T) {
	history := mustCompile(t, `\d+`, false)
	got := history("255 255 255 256")
	want := []string{"255", "256"}
	if len(got) != len(want) {
		t.Fatalf("History() = %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i].IsBlock() || got[i].Text() != w {
			t.Errorf("History()[%d] = %v, want %q", i, got[i], w)
		}
	}
}

func TestHistory_RepeatAfterChangeIsNewRun(t *testing.T) {
	history := mustCompile(t, `freqBandIndicatorNR\s+\d+`, false)
	doc := strings.Join([]string{
		"freqBandIndicatorNR 255",
		"freqBandIndicatorNR 256",
		"freqBandIndicatorNR 256",
		"freqBandIndicatorNR 255",
	}, "\n")
	got := history(doc)
	if len(got) != 3 {
		t.Fatalf("History() has %d entries, want 3: %v", len(got), got)
	}
	if got[0].Text() != got[2].Text() {
		t.Errorf("expected first and last runs to match: %q vs %q", got[0].Text(), got[2].Text())
	}
	if Changes(got) != 2 {
		t.Errorf("Changes() = %d, want 2", Changes(got))
	}
}

func TestHistory_BlockRuns(t *testing.T) {
	history := mustCompile(t, `ue-TimersAndConstants\s*\{(.*?)\}`, true)
	doc := "ue-TimersAndConstants {\nt300 2000\nt301 2000\n}\n" +
		"ue-TimersAndConstants {\nt300 2000\nt301 2000\n}\n" +
		"ue-TimersAndConstants {\nt300 4000\nt301 2000\n}\n"

	got := history(doc)
	if len(got) != 2 {
		t.Fatalf("History() has %d entries, want 2", len(got))
	}

	wants := []map[string]int64{
		{"t300": 2000, "t301": 2000},
		{"t300": 4000, "t301": 2000},
	}
	for i, want := range wants {
		rec := got[i].Record()
		if !got[i].IsBlock() || rec.Len() != len(want) {
			t.Fatalf("History()[%d] = %v, want %v", i, got[i], want)
		}
		for k, w := range want {
			v, _ := rec.Get(k)
			n, ok := v.Int()
			if !ok || n != w {
				t.Errorf("History()[%d][%s] = %v (%s), want int %d", i, k, v, v.Kind(), w)
			}
		}
	}
}

func TestHistory_EmptyBlockIsRecorded(t *testing.T) {
	history := mustCompile(t, `cfg\s*\{(.*?)\}`, true)
	got := history("cfg {}\ncfg { }\ncfg { a 1 }")
	if len(got) != 2 {
		t.Fatalf("History() has %d entries, want 2: %v", len(got), got)
	}
	if got[0].Record().Len() != 0 {
		t.Errorf("first entry should be an empty record, got %v", got[0])
	}
}

func TestHistory_NoConsecutiveDuplicates(t *testing.T) {
	history := mustCompile(t, `v=\w+`, false)
	got := history("v=a v=a v=b v=a v=a v=c v=c v=c v=b")
	for i := 1; i < len(got); i++ {
		if got[i].Equal(got[i-1]) {
			t.Errorf("entries %d and %d are equal: %v", i-1, i, got[i])
		}
	}
	if len(got) != 5 {
		t.Errorf("History() has %d entries, want 5", len(got))
	}
}

func TestHistory_NoMatches(t *testing.T) {
	history := mustCompile(t, `absent`, false)
	if got := history("nothing"); len(got) != 0 {
		t.Errorf("History() = %v, want empty", got)
	}
	if Changes(nil) != 0 {
		t.Error("Changes(nil) should be 0")
	}
}
