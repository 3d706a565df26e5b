package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RunStatusCompleted = "completed"
	RunStatusNoData    = "no_data"
	RunStatusFailed    = "failed"
)

// RunStatuses lists every status a run can finish with.
var RunStatuses = []string{RunStatusCompleted, RunStatusNoData, RunStatusFailed}

var ErrInvalidRunStatus = errors.New("invalid analysis run status")

// AnalysisRun records the metadata of one pipeline execution. Transactions and
// derived statistics are never persisted.
type AnalysisRun struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StartedAt           time.Time       `gorm:"not null;index" json:"started_at"`
	FinishedAt          time.Time       `gorm:"not null" json:"finished_at"`
	Status              string          `gorm:"type:varchar(20);not null;index" json:"status"`
	FilesRead           int             `gorm:"not null;default:0" json:"files_read"`
	FilesSkipped        int             `gorm:"not null;default:0" json:"files_skipped"`
	RowsIngested        int             `gorm:"not null;default:0" json:"rows_ingested"`
	RowsCleaned         int             `gorm:"not null;default:0" json:"rows_cleaned"`
	TotalSpent          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_spent"`
	TotalRecurring      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_recurring"`
	TotalUniquePatterns decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_unique_patterns"`
	OutlierMonthCount   int             `gorm:"not null;default:0" json:"outlier_month_count"`
	ErrorMessage        string          `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
}

func (AnalysisRun) TableName() string {
	return "analysis_runs"
}

// BeforeCreate hook for AnalysisRun
func (r *AnalysisRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.Status == "" {
		r.Status = RunStatusCompleted
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = now
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = now
	}

	return r.Validate()
}

// Validate checks the run status and counters.
func (r *AnalysisRun) Validate() error {
	switch r.Status {
	case RunStatusCompleted, RunStatusNoData, RunStatusFailed:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidRunStatus, r.Status)
	}

	if r.FilesRead < 0 || r.FilesSkipped < 0 || r.RowsIngested < 0 || r.RowsCleaned < 0 || r.OutlierMonthCount < 0 {
		return errors.New("analysis run counters cannot be negative")
	}

	if r.FinishedAt.Before(r.StartedAt) {
		return errors.New("analysis run cannot finish before it starts")
	}

	return nil
}

// Duration is the wall-clock time of the run.
func (r *AnalysisRun) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
