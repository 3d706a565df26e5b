package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"spend-insights/internal/models"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

var ErrUnknownSchema = errors.New("unrecognized transaction file format")

// schemaVariant describes one supported export layout. A file belongs to the
// first variant whose marker column is present in its header.
type schemaVariant struct {
	schema  models.Schema
	marker  string
	renames map[string]string
}

var schemaVariants = []schemaVariant{
	{
		schema:  models.SchemaChecking,
		marker:  models.ColumnPostingDate,
		renames: map[string]string{models.ColumnPostingDate: models.ColumnTransactionDate},
	},
	{
		schema: models.SchemaCreditCard,
		marker: models.ColumnTransactionDate,
	},
}

// DetectSchema resolves the export layout of a CSV header.
func DetectSchema(header []string) (models.Schema, error) {
	variant, err := detectVariant(normalizeHeader(header))
	if err != nil {
		return "", err
	}
	return variant.schema, nil
}

func detectVariant(header []string) (schemaVariant, error) {
	for _, v := range schemaVariants {
		if slices.Contains(header, v.marker) {
			return v, nil
		}
	}
	return schemaVariant{}, fmt.Errorf("%w: columns %q", ErrUnknownSchema, header)
}

// canonical renames the header onto the canonical column set.
func (v schemaVariant) canonical(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if renamed, ok := v.renames[h]; ok {
			out[i] = renamed
			continue
		}
		out[i] = h
	}
	return out
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// Strict layouts tried in order against a whole date column. Single-digit
// months and days are accepted.
var dateLayouts = []string{
	"2006-1-2",
	"2-1-2006",
	"1/2/2006",
}

// parseDateColumn parses a column with the first strict layout under which
// every non-empty value parses. Otherwise each value is parsed leniently and
// failures become nil.
func parseDateColumn(values []string) []*time.Time {
	for _, layout := range dateLayouts {
		if parsed, ok := parseColumnWithLayout(values, layout); ok {
			return parsed
		}
	}

	out := make([]*time.Time, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		t, err := dateparse.ParseAny(v)
		if err != nil {
			continue
		}
		d := calendarDate(t)
		out[i] = &d
	}
	return out
}

func parseColumnWithLayout(values []string, layout string) ([]*time.Time, bool) {
	out := make([]*time.Time, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		t, err := time.Parse(layout, v)
		if err != nil {
			return nil, false
		}
		d := calendarDate(t)
		out[i] = &d
	}
	return out, true
}

// calendarDate drops the time of day and location.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseAmount(v string) decimal.NullDecimal {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// columnIndex maps column names to positions within a record.
type columnIndex map[string]int

func indexColumns(columns []string) columnIndex {
	idx := make(columnIndex, len(columns))
	for i, c := range columns {
		if _, exists := idx[c]; !exists {
			idx[c] = i
		}
	}
	return idx
}

// value returns the cell of the first named column present in the index.
// ok is false when none of the columns exist or the record is too short.
func (ci columnIndex) value(record []string, names ...string) (string, bool) {
	for _, name := range names {
		pos, exists := ci[name]
		if !exists {
			continue
		}
		if pos >= len(record) {
			return "", false
		}
		return record[pos], true
	}
	return "", false
}

// buildRawSet maps records onto raw transactions by column name. Rows keep
// their position; unparseable dates and amounts become explicit nulls.
func buildRawSet(columns []string, records [][]string, schema models.Schema, source string) *models.RawTransactionSet {
	idx := indexColumns(columns)

	dateValues := make([]string, len(records))
	postDateValues := make([]string, len(records))
	for i, record := range records {
		dateValues[i], _ = idx.value(record, models.ColumnTransactionDate, models.ColumnDate)
		postDateValues[i], _ = idx.value(record, models.ColumnPostDate)
	}
	dates := parseDateColumn(dateValues)
	postDates := parseDateColumn(postDateValues)

	set := models.NewRawTransactionSet()
	set.AddColumns(columns...)
	set.Rows = make([]models.RawTransaction, 0, len(records))

	for i, record := range records {
		row := models.RawTransaction{
			Date:     dates[i],
			PostDate: postDates[i],
			Source:   source,
			Schema:   schema,
		}
		row.Description, _ = idx.value(record, models.ColumnDescription, models.ColumnDescriptionAlt)
		if category, ok := idx.value(record, models.ColumnCategory, models.ColumnCategoryAlt); ok && strings.TrimSpace(category) != "" {
			row.Category = &category
		}
		row.Type, _ = idx.value(record, models.ColumnType)
		row.Memo, _ = idx.value(record, models.ColumnMemo)
		row.Details, _ = idx.value(record, models.ColumnDetails)
		row.CheckNumber, _ = idx.value(record, models.ColumnCheckNumber)

		amount, _ := idx.value(record, models.ColumnAmount, models.ColumnAmountAlt)
		row.Amount = parseAmount(amount)
		balance, _ := idx.value(record, models.ColumnBalance)
		row.Balance = parseAmount(balance)

		set.Rows = append(set.Rows, row)
	}

	return set
}
