package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtnitsch/rrc-change-tracker/models"
	"github.com/dtnitsch/rrc-change-tracker/pkg/mapreduce"
	"github.com/dtnitsch/rrc-change-tracker/pkg/storage"
	"gopkg.in/yaml.v3"
)

// FileResult is the outcome of analyzing a single log file.
// This is passed from the analyze worker to avoid circular dependencies.
type FileResult struct {
	File          string
	ContentHash   string
	Result        models.AnalysisResult
	Error         error
	ErrorType     string
	FileSizeBytes int64
	ModTime       time.Time
}

// TopChangedLimit caps the number of entries in Stats.MostChanged.
const TopChangedLimit = 10

// Build assembles the run manifest from per-file results, in input order.
func Build(results []FileResult, catalogName string, requested []string, elapsed time.Duration) SummaryManifest {
	m := SummaryManifest{
		Status:      "success",
		GeneratedAt: time.Now().Format(time.RFC3339),
		Catalog:     catalogName,
		Requested:   requested,
		Results:     make([]DocumentResult, 0, len(results)),
	}

	for _, r := range results {
		doc := DocumentResult{File: r.File, SHA256: r.ContentHash, SizeBytes: r.FileSizeBytes}
		if !r.ModTime.IsZero() {
			doc.ModifiedAt = r.ModTime.UTC().Format(time.RFC3339)
		}
		if r.Error != nil {
			m.Stats.Failed++
			doc.Status = "failed"
			doc.Error = r.Error.Error()
			doc.ErrorType = r.ErrorType
		} else {
			m.Stats.Successful++
			doc.Status = "success"
			doc.Features = r.Result
		}
		m.Results = append(m.Results, doc)
	}

	m.Stats.TotalFiles = len(results)
	m.Stats.TotalTimeSeconds = elapsed.Seconds()
	m.Stats.MostChanged = mapreduce.TopKeywords(ChangeCounts(results), TopChangedLimit)

	if m.Stats.Failed > 0 {
		m.Status = "partial"
		if m.Stats.Successful == 0 {
			m.Status = "failed"
		}
	}
	return m
}

// ChangeCounts sums per-feature value changes over the successful results.
func ChangeCounts(results []FileResult) map[string]int {
	intermediate := make([]map[string]int, 0, len(results))
	for _, r := range results {
		if r.Error == nil {
			intermediate = append(intermediate, mapreduce.Map(r.Result))
		}
	}
	return mapreduce.Reduce(intermediate)
}

// Encode renders the manifest as "json" (default) or "yaml".
func Encode(m SummaryManifest, format string) ([]byte, error) {
	switch format {
	case "", "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshalling manifest: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("error marshalling manifest: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
}

// Save encodes the manifest and writes it to path.
func Save(m SummaryManifest, path, format string, s *storage.Storage) error {
	data, err := Encode(m, format)
	if err != nil {
		return err
	}
	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}
	return nil
}
