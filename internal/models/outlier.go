package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MonthlySpending is a month by category table of summed amounts. Months and
// Categories are ascending; a missing cell means the category had no
// transactions that month and is distinct from a zero total.
type MonthlySpending struct {
	Months     []string
	Categories []string
	cells      map[string]map[string]decimal.Decimal
}

// NewMonthlySpending returns an empty table.
func NewMonthlySpending() *MonthlySpending {
	return &MonthlySpending{
		Months:     []string{},
		Categories: []string{},
		cells:      make(map[string]map[string]decimal.Decimal),
	}
}

// Set stores a cell value. Callers are responsible for keeping Months and
// Categories in sync.
func (m *MonthlySpending) Set(month, category string, value decimal.Decimal) {
	row, ok := m.cells[month]
	if !ok {
		row = make(map[string]decimal.Decimal)
		m.cells[month] = row
	}
	row[category] = value
}

// Value returns the cell for month and category; ok is false when the cell is missing.
func (m *MonthlySpending) Value(month, category string) (decimal.Decimal, bool) {
	if m == nil {
		return decimal.Zero, false
	}
	v, ok := m.cells[month][category]
	return v, ok
}

// ColumnValues returns the present values of a category in month order.
func (m *MonthlySpending) ColumnValues(category string) []decimal.Decimal {
	out := []decimal.Decimal{}
	for _, month := range m.Months {
		if v, ok := m.Value(month, category); ok {
			out = append(out, v)
		}
	}
	return out
}

// MonthVolume is the sum of absolute cell values across all categories of a month.
func (m *MonthlySpending) MonthVolume(month string) decimal.Decimal {
	volume := decimal.Zero
	for _, v := range m.cells[month] {
		volume = volume.Add(v.Abs())
	}
	return volume
}

func (m *MonthlySpending) IsEmpty() bool {
	return m == nil || len(m.Months) == 0
}

// MarshalJSON renders the table as {month: {category: value|null}}.
func (m *MonthlySpending) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]*decimal.Decimal, len(m.Months))
	for _, month := range m.Months {
		row := make(map[string]*decimal.Decimal, len(m.Categories))
		for _, category := range m.Categories {
			if v, ok := m.Value(month, category); ok {
				row[category] = &v
			} else {
				row[category] = nil
			}
		}
		out[month] = row
	}
	return json.Marshal(out)
}

// CategoryMonthStat describes the distribution of a category's monthly totals.
// Std and Threshold are nil when fewer than two months carry a value.
type CategoryMonthStat struct {
	Category  string   `json:"category"`
	Months    int      `json:"months"`
	Mean      float64  `json:"mean"`
	Std       *float64 `json:"std"`
	Threshold *float64 `json:"threshold"`
}

// OutlierMonth is a month whose category total fell below the category threshold
// while still carrying a significant share of that month's spend.
type OutlierMonth struct {
	Month         string          `json:"month"`
	Category      string          `json:"category"`
	Value         decimal.Decimal `json:"value"`
	Threshold     float64         `json:"threshold"`
	MonthlyVolume decimal.Decimal `json:"monthly_volume"`
}

// UniqueSpendPattern is a transaction whose amount is a z-score outlier within its category.
type UniqueSpendPattern struct {
	Transaction
	ZScore float64 `json:"z_score"`
}

// CategoryCount counts unique spend patterns per category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
