package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"spend-insights/internal/models"
)

const (
	SkipReasonNotFound      = "not_found"
	SkipReasonUnreadable    = "unreadable"
	SkipReasonUnknownFormat = "unknown_format"
	SkipReasonEmpty         = "empty"
)

var ErrEmptyFile = errors.New("file has no header row")

// SkippedFile records a file that contributed no rows and why.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

// IngestionStats summarizes one ingestion pass.
type IngestionStats struct {
	FilesRead    int           `json:"files_read"`
	FilesSkipped []SkippedFile `json:"files_skipped"`
	RowsRead     int           `json:"rows_read"`
	RowsDropped  int           `json:"rows_dropped"`
}

type ingestionService struct {
	metrics MetricsRecorderInterface
}

// NewIngestionService creates a new IngestionServiceInterface instance
func NewIngestionService(metrics MetricsRecorderInterface) IngestionServiceInterface {
	return &ingestionService{metrics: metrics}
}

// Ingest reads the given files in order and concatenates their rows
func (s *ingestionService) Ingest(ctx context.Context, paths []string) (*models.RawTransactionSet, IngestionStats, error) {
	set := models.NewRawTransactionSet()
	stats := IngestionStats{FilesSkipped: []SkippedFile{}}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, stats, fmt.Errorf("ingestion cancelled: %w", err)
		}

		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		parsed, err := s.parseFile(path)
		if err != nil {
			reason := skipReason(err)
			slog.Warn("skipping transaction file",
				"file", path,
				"reason", reason,
				"error", err,
			)
			stats.FilesSkipped = append(stats.FilesSkipped, SkippedFile{Path: path, Reason: reason, Error: err.Error()})
			s.metrics.IncrementCounter("ingest.file.skipped", map[string]string{"reason": reason})
			continue
		}

		stats.FilesRead++
		stats.RowsRead += parsed.rowsRead
		stats.RowsDropped += parsed.rowsRead - parsed.set.Len()
		s.metrics.IncrementCounter("ingest.file.read", map[string]string{"schema": string(parsed.schema)})

		if parsed.set.IsEmpty() {
			continue
		}
		set.AddColumns(parsed.set.Columns...)
		set.Rows = append(set.Rows, parsed.set.Rows...)
	}

	slog.Info("ingested transaction files",
		"files_read", stats.FilesRead,
		"files_skipped", len(stats.FilesSkipped),
		"rows", set.Len(),
		"rows_dropped", stats.RowsDropped,
	)
	s.metrics.RecordGauge("ingest.rows", float64(set.Len()), map[string]string{"stage": "ingested"})

	return set, stats, nil
}

// ParseFile reads a single export
func (s *ingestionService) ParseFile(path string) (*models.RawTransactionSet, error) {
	parsed, err := s.parseFile(path)
	if err != nil {
		return nil, err
	}
	return parsed.set, nil
}

type parsedFile struct {
	set      *models.RawTransactionSet
	schema   models.Schema
	rowsRead int
}

func (s *ingestionService) parseFile(path string) (*parsedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading %s: %w", path, ErrEmptyFile)
	}

	header := normalizeHeader(records[0])
	variant, err := detectVariant(header)
	if err != nil {
		return nil, err
	}

	rows := records[1:]
	set := buildRawSet(variant.canonical(header), rows, variant.schema, path)
	return &parsedFile{set: dropUndated(set), schema: variant.schema, rowsRead: len(rows)}, nil
}

func dropUndated(set *models.RawTransactionSet) *models.RawTransactionSet {
	kept := set.Rows[:0]
	for _, row := range set.Rows {
		if row.Date != nil {
			kept = append(kept, row)
		}
	}
	set.Rows = kept
	return set
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return SkipReasonNotFound
	case errors.Is(err, ErrUnknownSchema):
		return SkipReasonUnknownFormat
	case errors.Is(err, ErrEmptyFile):
		return SkipReasonEmpty
	default:
		return SkipReasonUnreadable
	}
}
