package services

import (
	"spend-insights/internal/models"

	"github.com/shopspring/decimal"
)

// OutlierConfig tunes outlier-month detection.
type OutlierConfig struct {
	// StdMultiplier is k in threshold = mean - k*std.
	StdMultiplier float64
	// SignificanceFloor is the minimum share of a month's absolute spend a
	// category must carry to be flagged.
	SignificanceFloor float64
}

func DefaultOutlierConfig() OutlierConfig {
	return OutlierConfig{StdMultiplier: 1.5, SignificanceFloor: 0.15}
}

type outlierService struct {
	cfg OutlierConfig
}

// NewOutlierService creates a new OutlierServiceInterface instance. A
// non-positive multiplier falls back to the default; a zero floor is kept.
func NewOutlierService(cfg OutlierConfig) OutlierServiceInterface {
	if cfg.StdMultiplier <= 0 {
		cfg.StdMultiplier = DefaultOutlierConfig().StdMultiplier
	}
	if cfg.SignificanceFloor < 0 {
		cfg.SignificanceFloor = DefaultOutlierConfig().SignificanceFloor
	}
	return &outlierService{cfg: cfg}
}

// MonthlySpending sums amounts per month and category
func (s *outlierService) MonthlySpending(set *models.TransactionSet) *models.MonthlySpending {
	table := models.NewMonthlySpending()
	if set.IsEmpty() {
		return table
	}

	type cell struct{ month, category string }
	sums := make(map[cell]decimal.Decimal)
	for _, t := range set.Transactions {
		key := cell{month: t.Month, category: t.Category}
		sums[key] = sums[key].Add(t.Amount)
	}

	table.Months = set.Months()
	table.Categories = set.Categories()
	for key, sum := range sums {
		table.Set(key.month, key.category, sum)
	}
	return table
}

// CategoryStats computes the mean and population standard deviation of each
// category's monthly totals over the months where it has spend.
func (s *outlierService) CategoryStats(table *models.MonthlySpending) []models.CategoryMonthStat {
	stats := []models.CategoryMonthStat{}
	if table.IsEmpty() {
		return stats
	}

	for _, category := range table.Categories {
		values := toFloats(table.ColumnValues(category))
		mean, std, ok := populationMeanStd(values)

		stat := models.CategoryMonthStat{
			Category: category,
			Months:   len(values),
			Mean:     mean,
		}
		if ok {
			threshold := mean - s.cfg.StdMultiplier*std
			stat.Std = &std
			stat.Threshold = &threshold
		}
		stats = append(stats, stat)
	}
	return stats
}

// OutlierMonths flags cells below their category threshold that also carry at
// least the significance floor of the month's absolute spend. Categories
// without a threshold are never flagged.
func (s *outlierService) OutlierMonths(table *models.MonthlySpending, stats []models.CategoryMonthStat) []models.OutlierMonth {
	outliers := []models.OutlierMonth{}
	if table.IsEmpty() {
		return outliers
	}

	thresholds := make(map[string]float64, len(stats))
	for _, st := range stats {
		if st.Threshold != nil {
			thresholds[st.Category] = *st.Threshold
		}
	}

	floorShare := decimal.NewFromFloat(s.cfg.SignificanceFloor)
	for _, month := range table.Months {
		volume := table.MonthVolume(month)
		floor := volume.Mul(floorShare)

		for _, category := range table.Categories {
			value, ok := table.Value(month, category)
			if !ok {
				continue
			}
			threshold, ok := thresholds[category]
			if !ok {
				continue
			}
			if value.Abs().GreaterThanOrEqual(floor) && value.InexactFloat64() < threshold {
				outliers = append(outliers, models.OutlierMonth{
					Month:         month,
					Category:      category,
					Value:         value,
					Threshold:     threshold,
					MonthlyVolume: volume,
				})
			}
		}
	}
	return outliers
}
