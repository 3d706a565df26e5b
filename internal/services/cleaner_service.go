package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"spend-insights/internal/mappings"
	"spend-insights/internal/models"
)

var ErrSchema = errors.New("required transaction columns missing")

// Reference tokens such as "*AB12CD" or "#4471" and any digit run.
var noiseTokenPattern = regexp.MustCompile(`\s*[*#]\S+|\d+`)

type cleanerService struct {
	tables *mappings.Tables
}

// NewCleanerService creates a new CleanerServiceInterface instance
func NewCleanerService(tables *mappings.Tables) CleanerServiceInterface {
	if tables == nil {
		tables = mappings.Default()
	}
	return &cleanerService{tables: tables}
}

// Clean normalizes descriptions and categories, buckets rows by month and
// keeps expenses only. Cleaning an already cleaned set returns an equal set.
func (s *cleanerService) Clean(set *models.RawTransactionSet) (*models.TransactionSet, error) {
	if !set.HasColumn(models.ColumnTransactionDate, models.ColumnDate) {
		return nil, fmt.Errorf("%w: no %q or %q column", ErrSchema, models.ColumnTransactionDate, models.ColumnDate)
	}
	if !set.HasColumn(models.ColumnDescription, models.ColumnDescriptionAlt) {
		return nil, fmt.Errorf("%w: no %q or %q column", ErrSchema, models.ColumnDescription, models.ColumnDescriptionAlt)
	}
	hasCategory := set.HasColumn(models.ColumnCategory, models.ColumnCategoryAlt)

	cleaned := make([]models.Transaction, 0, set.Len())
	for _, row := range set.Rows {
		if row.Date == nil || !row.Amount.Valid || !row.Amount.Decimal.IsNegative() {
			continue
		}

		category := models.CategoryUncategorized
		if hasCategory && row.Category != nil {
			category = strings.ToLower(*row.Category)
		}

		date := calendarDate(*row.Date)
		cleaned = append(cleaned, models.Transaction{
			Date:        date,
			Description: strings.ToLower(s.CleanDescription(row.Description)),
			Category:    s.tables.Category(category),
			Amount:      row.Amount.Decimal,
			Month:       models.MonthOf(date),
			Type:        row.Type,
			Memo:        row.Memo,
			Source:      row.Source,
		})
	}

	return models.NewTransactionSet(cleaned), nil
}

// CleanTable cleans a generic table keyed by column name
func (s *cleanerService) CleanTable(columns []string, rows [][]string) (*models.TransactionSet, error) {
	return s.Clean(buildRawSet(normalizeHeader(columns), rows, "", ""))
}

// CleanDescription strips reference tokens and digits and trims the result
func (s *cleanerService) CleanDescription(description string) string {
	return strings.TrimSpace(noiseTokenPattern.ReplaceAllString(description, ""))
}
