// Package analysis runs catalog features against RRC log documents.
package analysis

import (
	"errors"
	"io"
	"log/slog"
	"regexp"
	"unicode/utf8"

	"github.com/dtnitsch/rrc-change-tracker/models"
	"github.com/dtnitsch/rrc-change-tracker/pkg/catalog"
	"github.com/dtnitsch/rrc-change-tracker/pkg/tracker"
)

// ErrInvalidEncoding is returned when a document is not valid UTF-8.
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// Service is safe for concurrent use; it only reads its catalog.
type Service struct {
	catalog *catalog.Catalog
	logger  *slog.Logger

	historyFn func(document string, re *regexp.Regexp, isBlock bool) models.History
}

type Option func(*Service)

// WithLogger sets the logger used for per-feature diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewService(c *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:   c,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		historyFn: tracker.History,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeBytes checks that data is UTF-8 text before analyzing it.
func (s *Service) AnalyzeBytes(data []byte, names []string) (models.AnalysisResult, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	return s.Analyze(string(data), names), nil
}

// Analyze computes the history of every requested feature. Unknown names
// and features with no occurrences are left out of the result.
func (s *Service) Analyze(document string, names []string) models.AnalysisResult {
	result := make(models.AnalysisResult)
	for _, name := range names {
		if _, done := result[name]; done {
			continue
		}
		entry, ok := s.catalog.Lookup(name)
		if !ok {
			s.logger.Debug("skipping unknown feature", "feature", name)
			continue
		}
		history, ok := s.history(document, entry)
		if !ok || len(history) == 0 {
			continue
		}
		result[name] = history
		s.logger.Debug("feature analyzed", "feature", name, "values", len(history))
	}
	return result
}

// history isolates one feature so a failure cannot abort the others.
func (s *Service) history(document string, entry catalog.Entry) (h models.History, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("feature extraction failed", "feature", entry.Name, "panic", r)
			h, ok = nil, false
		}
	}()
	return s.historyFn(document, entry.Matcher, entry.IsBlock), true
}
