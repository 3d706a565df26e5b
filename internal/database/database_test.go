package database

import (
	"path/filepath"
	"testing"

	"spend-insights/internal/config"
	"spend-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "mysql"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestInitialize_Sqlite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			Path:           filepath.Join(t.TempDir(), "runs.db"),
			MaxConnections: 4,
			MaxIdleConns:   1,
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.AnalysisRun{}))
	assert.True(t, db.Migrator().HasIndex(&models.AnalysisRun{}, "idx_analysis_runs_status"))
}

func TestGormLogLevel(t *testing.T) {
	tests := []struct {
		environment string
		want        logger.LogLevel
	}{
		{"development", logger.Warn},
		{"testing", logger.Silent},
		{"production", logger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			cfg := &config.Config{Server: config.ServerConfig{Environment: tt.environment}}
			assert.Equal(t, tt.want, gormLogLevel(cfg))
		})
	}
}

func TestInitialize_TestingEnvironment(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "testing"},
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			Path:           filepath.Join(t.TempDir(), "runs.db"),
			MaxConnections: 4,
			MaxIdleConns:   1,
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.True(t, db.Migrator().HasTable(&models.AnalysisRun{}))
}

func TestSetupTestDB(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.Create(&models.AnalysisRun{Status: models.RunStatusCompleted}).Error)

	var count int64
	require.NoError(t, db.Model(&models.AnalysisRun{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	CleanupTestDB(t, db)
	require.NoError(t, db.Model(&models.AnalysisRun{}).Count(&count).Error)
	assert.Zero(t, count)
}
