package repositories

import (
	"errors"
	"fmt"
	"time"

	"spend-insights/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAnalysisRunNotFound = errors.New("analysis run not found")
)

// analysisRunRepository implements AnalysisRunRepositoryInterface
type analysisRunRepository struct {
	db *gorm.DB
}

// NewAnalysisRunRepository creates a new analysis run repository
func NewAnalysisRunRepository(db *gorm.DB) AnalysisRunRepositoryInterface {
	return &analysisRunRepository{
		db: db,
	}
}

// Create stores a finished run
func (r *analysisRunRepository) Create(run *models.AnalysisRun) error {
	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create analysis run: %w", err)
	}
	return nil
}

// GetByID retrieves a run by ID
func (r *analysisRunRepository) GetByID(id uuid.UUID) (*models.AnalysisRun, error) {
	var run models.AnalysisRun
	if err := r.db.Where("id = ?", id).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisRunNotFound
		}
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}
	return &run, nil
}

// GetLatest retrieves the most recently started run
func (r *analysisRunRepository) GetLatest() (*models.AnalysisRun, error) {
	var run models.AnalysisRun
	if err := r.db.Order("started_at DESC").First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisRunNotFound
		}
		return nil, fmt.Errorf("failed to get latest analysis run: %w", err)
	}
	return &run, nil
}

// List retrieves runs newest first with pagination
func (r *analysisRunRepository) List(offset, limit int) ([]models.AnalysisRun, int64, error) {
	var runs []models.AnalysisRun
	var total int64

	if err := r.db.Model(&models.AnalysisRun{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count analysis runs: %w", err)
	}

	if err := r.db.Order("started_at DESC").
		Offset(offset).Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list analysis runs: %w", err)
	}

	return runs, total, nil
}

// CountByStatus counts runs with the given status
func (r *analysisRunRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.AnalysisRun{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count analysis runs by status: %w", err)
	}
	return count, nil
}

// DeleteOlderThan removes runs started before cutoff and returns how many were removed
func (r *analysisRunRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("started_at < ?", cutoff).Delete(&models.AnalysisRun{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune analysis runs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
