package analyze

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dtnitsch/rrc-change-tracker/pkg/analysis"
	"github.com/dtnitsch/rrc-change-tracker/pkg/catalog"
	"github.com/dtnitsch/rrc-change-tracker/pkg/storage"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestRun_KeepsInputOrderAndIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := analysis.NewService(catalog.Default())

	var files []string
	for i := 0; i < 6; i++ {
		doc := "freqBandIndicatorNR 255\nfreqBandIndicatorNR " + strconv.Itoa(256+i) + "\n"
		files = append(files, writeFile(t, dir, "log"+strconv.Itoa(i)+".txt", []byte(doc)))
	}
	files = append(files, writeFile(t, dir, "binary.bin", []byte{0xff, 0xfe, 0x00}))
	files = append(files, filepath.Join(dir, "missing.txt"))
	files = append(files, t.TempDir())

	results := run(logger, svc, &storage.Storage{}, files, []string{"nr_band", "timers"}, 3)
	if len(results) != len(files) {
		t.Fatalf("run() returned %d results, want %d", len(results), len(files))
	}

	for i := 0; i < 6; i++ {
		r := results[i]
		if r.File != files[i] {
			t.Errorf("results[%d].File = %q, want %q", i, r.File, files[i])
		}
		if r.Error != nil {
			t.Errorf("results[%d] error = %v", i, r.Error)
			continue
		}
		h := r.Result["nr_band"]
		if len(h) != 2 || h[1].Text() != "freqBandIndicatorNR "+strconv.Itoa(256+i) {
			t.Errorf("results[%d] nr_band = %v", i, h)
		}
		if _, ok := r.Result["timers"]; ok {
			t.Errorf("results[%d] timers should be absent", i)
		}
		if r.ContentHash == "" || r.FileSizeBytes == 0 || r.ModTime.IsZero() {
			t.Errorf("results[%d] missing file metadata: %+v", i, r)
		}
	}

	if results[6].ErrorType != "decode_error" {
		t.Errorf("binary file ErrorType = %q, want decode_error", results[6].ErrorType)
	}
	if results[7].ErrorType != "read_error" {
		t.Errorf("missing file ErrorType = %q, want read_error", results[7].ErrorType)
	}
	if results[8].ErrorType != "not_regular_file" || results[8].Error == nil {
		t.Errorf("directory result = %+v, want not_regular_file", results[8])
	}
}

func TestRun_WorkerCountBounds(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := analysis.NewService(catalog.Default())
	file := writeFile(t, dir, "one.txt", []byte("cellBarredNTN-r17 barred\n"))

	for _, workers := range []int{-1, 0, 1, 16} {
		results := run(logger, svc, &storage.Storage{}, []string{file}, []string{"cell_barred"}, workers)
		if len(results) != 1 || len(results[0].Result["cell_barred"]) != 1 {
			t.Errorf("workers=%d: results = %+v", workers, results)
		}
	}
}
