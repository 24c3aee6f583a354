package storage

import (
	"path/filepath"
	"testing"
)

func TestSaveAndReadFile(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "out", "manifest.json")

	if _, err := s.GetFileStats(path); err == nil {
		t.Fatal("GetFileStats() succeeded before save")
	}
	if err := s.SaveFile(path, []byte(`{"status":"success"}`)); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != `{"status":"success"}` {
		t.Errorf("ReadFile() = %q", data)
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != int64(len(data)) {
		t.Errorf("SizeBytes = %d, want %d", stats.SizeBytes, len(data))
	}
	if !stats.IsRegular || stats.ModTime.IsZero() {
		t.Errorf("stats = %+v, want regular file with mod time", stats)
	}
}

func TestGetFileStats_Directory(t *testing.T) {
	stats, err := (&Storage{}).GetFileStats(t.TempDir())
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.IsRegular {
		t.Error("directory reported as regular file")
	}
}

func TestReadFile_Missing(t *testing.T) {
	s := &Storage{}
	if _, err := s.ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ReadFile() should fail for a missing file")
	}
}
