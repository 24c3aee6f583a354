package analyze

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dtnitsch/rrc-change-tracker/internal/common"
	"github.com/dtnitsch/rrc-change-tracker/pkg/analysis"
	"github.com/dtnitsch/rrc-change-tracker/pkg/manifest"
	"github.com/dtnitsch/rrc-change-tracker/pkg/storage"
)

// Job defines a document for a worker to analyze.
type Job struct {
	Index int
	File  string
}

type jobResult struct {
	index  int
	result manifest.FileResult
}

// run analyzes every file with a bounded pool of workers and returns the
// results in input order.
func run(logger *slog.Logger, svc *analysis.Service, s *storage.Storage, files, features []string, workerCount int) []manifest.FileResult {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	logger.Info("Starting analysis", "file_count", len(files), "workers", workerCount, "features", len(features))
	var wg sync.WaitGroup
	jobs := make(chan Job, len(files))
	results := make(chan jobResult, len(files))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, svc, s, features, &wg, jobs, results)
	}

	for i, f := range files {
		jobs <- Job{Index: i, File: f}
	}
	close(jobs)

	wg.Wait()
	close(results)

	ordered := make([]manifest.FileResult, len(files))
	for r := range results {
		ordered[r.index] = r.result
	}
	return ordered
}

// worker is a goroutine that processes jobs from the jobs channel
// and sends results to the results channel.
func worker(id int, logger *slog.Logger, svc *analysis.Service, s *storage.Storage, features []string, wg *sync.WaitGroup, jobs <-chan Job, results chan<- jobResult) {
	defer wg.Done()
	for job := range jobs {
		logger.Debug("Worker started job", "worker", id, "file", job.File)
		results <- jobResult{index: job.Index, result: analyzeFile(logger, svc, s, job.File, features)}
		logger.Debug("Worker finished job", "worker", id, "file", job.File)
	}
}

func analyzeFile(logger *slog.Logger, svc *analysis.Service, s *storage.Storage, file string, features []string) manifest.FileResult {
	result := manifest.FileResult{File: file}

	stats, err := s.GetFileStats(file)
	if err != nil {
		logger.Error("Failed to stat log file", "file", file, "error", err)
		result.Error = err
		result.ErrorType = "read_error"
		return result
	}
	if !stats.IsRegular {
		err := fmt.Errorf("%s is not a regular file", file)
		logger.Error("Skipping log file", "file", file, "error", err)
		result.Error = err
		result.ErrorType = "not_regular_file"
		return result
	}
	result.ModTime = stats.ModTime

	data, err := s.ReadFile(file)
	if err != nil {
		logger.Error("Failed to read log file", "file", file, "error", err)
		result.Error = err
		result.ErrorType = "read_error"
		return result
	}
	result.FileSizeBytes = int64(len(data))
	result.ContentHash = common.ContentHash(data)

	res, err := svc.AnalyzeBytes(data, features)
	if err != nil {
		logger.Error("Failed to decode log file", "file", file, "error", err)
		result.Error = err
		result.ErrorType = "analysis_error"
		if errors.Is(err, analysis.ErrInvalidEncoding) {
			result.ErrorType = "decode_error"
		}
		return result
	}

	result.Result = res
	logger.Info("Analyzed log file", "file", file, "features_found", len(res))
	return result
}
