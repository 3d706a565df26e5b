package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"spend-insights/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func newTestMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txn(when time.Time, description, category, amount string) models.Transaction {
	return models.Transaction{
		Date:        when,
		Description: description,
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		Month:       models.MonthOf(when),
	}
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}
