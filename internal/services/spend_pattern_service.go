package services

import (
	"errors"
	"math"
	"sort"

	"spend-insights/internal/models"
)

var ErrInvalidThreshold = errors.New("z-score threshold must be greater than zero")

const DefaultZScoreThreshold = 3.0

type categoryDistribution struct {
	mean float64
	std  float64
	ok   bool
}

type spendPatternService struct{}

// NewSpendPatternService creates a new SpendPatternServiceInterface instance
func NewSpendPatternService() SpendPatternServiceInterface {
	return &spendPatternService{}
}

// UniqueSpendPatterns returns transactions whose z-score within their category
// exceeds threshold in magnitude, most negative first. Categories with fewer
// than two transactions or no variance produce no z-scores.
func (s *spendPatternService) UniqueSpendPatterns(set *models.TransactionSet, threshold float64) ([]models.UniqueSpendPattern, error) {
	if math.IsNaN(threshold) || threshold <= 0 {
		return nil, ErrInvalidThreshold
	}

	patterns := []models.UniqueSpendPattern{}
	if set.IsEmpty() {
		return patterns, nil
	}

	distributions := make(map[string]categoryDistribution)
	for category, txns := range set.ByCategory() {
		amounts := make([]float64, len(txns))
		for i, t := range txns {
			amounts[i] = t.Amount.InexactFloat64()
		}
		mean, std, ok := sampleMeanStd(amounts)
		distributions[category] = categoryDistribution{mean: mean, std: std, ok: ok && std > 0}
	}

	for _, t := range set.Transactions {
		dist := distributions[t.Category]
		if !dist.ok {
			continue
		}
		z := (t.Amount.InexactFloat64() - dist.mean) / dist.std
		if math.Abs(z) > threshold {
			patterns = append(patterns, models.UniqueSpendPattern{Transaction: t, ZScore: z})
		}
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].ZScore < patterns[j].ZScore
	})
	return patterns, nil
}

// CountByCategory counts patterns per category, largest count first
func (s *spendPatternService) CountByCategory(patterns []models.UniqueSpendPattern) []models.CategoryCount {
	counts := make(map[string]int)
	for _, p := range patterns {
		counts[p.Category]++
	}

	out := make([]models.CategoryCount, 0, len(counts))
	for category, n := range counts {
		out = append(out, models.CategoryCount{Category: category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TopTransactions returns up to n of the most negative transactions of a month and category
func (s *spendPatternService) TopTransactions(set *models.TransactionSet, month, category string, n int) []models.Transaction {
	matched := []models.Transaction{}
	if set.IsEmpty() || n <= 0 {
		return matched
	}

	for _, t := range set.Transactions {
		if t.Month == month && t.Category == category {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Amount.LessThan(matched[j].Amount)
	})

	if len(matched) > n {
		matched = matched[:n]
	}
	return matched
}
