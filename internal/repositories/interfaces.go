package repositories

import (
	"time"

	"spend-insights/internal/models"

	"github.com/google/uuid"
)

// AnalysisRunRepositoryInterface defines the contract for analysis run history
type AnalysisRunRepositoryInterface interface {
	Create(run *models.AnalysisRun) error
	GetByID(id uuid.UUID) (*models.AnalysisRun, error)
	GetLatest() (*models.AnalysisRun, error)
	List(offset, limit int) ([]models.AnalysisRun, int64, error)
	CountByStatus(status string) (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
