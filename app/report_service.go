package app

import (
	"context"
	"time"

	"countrystats/domain/core"
	"countrystats/domain/dataset"
	"countrystats/internal"
	"countrystats/internal/analysis/questions"
	"countrystats/internal/errors"
	"countrystats/ports"
)

// ReportStatus tells callers what a run produced
type ReportStatus string

const (
	StatusSuccess      ReportStatus = "success"       // report written
	StatusNoData       ReportStatus = "no_data"       // input had no rows, nothing written
	StatusSourceFailed ReportStatus = "source_failed" // input missing or unreadable, nothing written
	StatusWriteFailed  ReportStatus = "write_failed"  // report computed but not stored
)

// ReportService runs read, compute and write once per Generate call
type ReportService struct {
	source ports.RecordSource
	writer ports.ResultWriter
	opts   questions.Options
	logger *internal.Logger
}

// ReportRequest names where the finished report goes
type ReportRequest struct {
	OutputPath string
	RunID      core.RunID // optional, generated if empty
}

// ReportResult describes one run
type ReportResult struct {
	RunID    core.RunID          `json:"run_id"`
	Status   ReportStatus        `json:"status"`
	Sections []questions.Section `json:"sections,omitempty"`
	Output   string              `json:"output,omitempty"`
	RowCount int                 `json:"row_count"`
	Duration time.Duration       `json:"duration"`
}

// NewReportService creates a report service
func NewReportService(source ports.RecordSource, writer ports.ResultWriter, opts questions.Options, logger *internal.Logger) *ReportService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if opts.LanguageRanking == questions.RankRawSum {
		logger.Warn("[ReportService] raw language ranking is deprecated; shares are not normalized")
	}
	return &ReportService{
		source: source,
		writer: writer,
		opts:   opts,
		logger: logger,
	}
}

// Generate loads the dataset, answers every question and writes the
// report. The returned result is never nil; err is set for source and
// write failures. An empty dataset is StatusNoData with a nil error.
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (*ReportResult, error) {
	startTime := time.Now()

	runID := req.RunID
	if runID == "" {
		runID = core.NewRunID()
	}
	result := &ReportResult{RunID: runID}
	defer func() { result.Duration = time.Since(startTime) }()

	if req.OutputPath == "" {
		result.Status = StatusWriteFailed
		return result, errors.InvalidInput("output path is required")
	}

	ds, err := s.source.ReadDataset(ctx)
	if err != nil {
		result.Status = StatusSourceFailed
		return result, errors.Wrapf(err, "run %s: failed to load dataset", runID)
	}

	result.RowCount = ds.Len()
	if ds.IsEmpty() {
		s.logger.Warn("[ReportService] run %s: dataset is empty, nothing to report", runID)
		result.Status = StatusNoData
		return result, nil
	}

	result.Sections = BuildReport(ds, s.opts)
	result.Output = questions.Render(result.Sections)
	s.logger.Debug("[ReportService] run %s: computed %d sections from %d rows",
		runID, len(result.Sections), result.RowCount)

	if err := s.writer.Write(ctx, req.OutputPath, result.Output); err != nil {
		result.Status = StatusWriteFailed
		return result, errors.Wrapf(err, "run %s: failed to write report", runID)
	}

	result.Status = StatusSuccess
	s.logger.Info("[ReportService] run %s: report for %d rows written to '%s'",
		runID, result.RowCount, req.OutputPath)
	return result, nil
}

// BuildReport answers the questions without touching any I/O
func BuildReport(ds *dataset.Dataset, opts questions.Options) []questions.Section {
	return questions.Build(ds, opts)
}
