package manifest

import "github.com/dtnitsch/rrc-change-tracker/models"

// SummaryManifest is the output of an analyze run: one entry per document
// plus run statistics.
type SummaryManifest struct {
	Status      string           `json:"status" yaml:"status"`
	GeneratedAt string           `json:"generated_at" yaml:"generated_at"`
	Catalog     string           `json:"catalog" yaml:"catalog"`
	Requested   []string         `json:"requested_features" yaml:"requested_features"`
	Results     []DocumentResult `json:"results" yaml:"results"`
	Stats       Stats            `json:"stats" yaml:"stats"`
}

// DocumentResult holds the analysis of a single log file.
type DocumentResult struct {
	File       string                `json:"file" yaml:"file"`
	SHA256     string                `json:"sha256,omitempty" yaml:"sha256,omitempty"`
	Status     string                `json:"status" yaml:"status"` // "success" or "failed"
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType  string                `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	SizeBytes  int64                 `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	ModifiedAt string                `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
	Features   models.AnalysisResult `json:"features,omitempty" yaml:"features,omitempty"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalFiles       int      `json:"total_files" yaml:"total_files"`
	Successful       int      `json:"successful" yaml:"successful"`
	Failed           int      `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64  `json:"total_time_seconds" yaml:"total_time_seconds"`
	MostChanged      []string `json:"most_changed,omitempty" yaml:"most_changed,omitempty"`
}
