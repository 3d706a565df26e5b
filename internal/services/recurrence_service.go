package services

import (
	"sort"
	"strings"
	"time"

	"spend-insights/internal/mappings"
	"spend-insights/internal/models"

	"github.com/shopspring/decimal"
)

// cadenceRule matches a description history whose consecutive charges are
// exactly monthGap months apart and differ by at most maxDelta.
type cadenceRule struct {
	frequency      models.Frequency
	minOccurrences int
	monthGap       int
	maxDelta       decimal.Decimal
}

// Evaluated in order; the first rule matching the whole history wins.
var cadenceRules = []cadenceRule{
	{frequency: models.FrequencyMonthly, minOccurrences: 3, monthGap: 1, maxDelta: decimal.NewFromInt(1)},
	{frequency: models.FrequencyQuarterly, minOccurrences: 3, monthGap: 3, maxDelta: decimal.NewFromInt(5)},
	{frequency: models.FrequencySemiAnnual, minOccurrences: 2, monthGap: 6, maxDelta: decimal.Zero},
	{frequency: models.FrequencyAnnual, minOccurrences: 2, monthGap: 12, maxDelta: decimal.Zero},
}

type chargePoint struct {
	date   time.Time
	amount decimal.Decimal
}

func (r cadenceRule) matches(points []chargePoint) bool {
	if len(points) < r.minOccurrences {
		return false
	}
	for i := 0; i+1 < len(points); i++ {
		if monthGap(points[i].date, points[i+1].date) != r.monthGap {
			return false
		}
		if points[i].amount.Sub(points[i+1].amount).Abs().GreaterThan(r.maxDelta) {
			return false
		}
	}
	return true
}

// monthGap is the number of calendar months between the buckets of a and b.
func monthGap(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

type recurrenceService struct {
	tables *mappings.Tables
}

// NewRecurrenceService creates a new RecurrenceServiceInterface instance
func NewRecurrenceService(tables *mappings.Tables) RecurrenceServiceInterface {
	if tables == nil {
		tables = mappings.Default()
	}
	return &recurrenceService{tables: tables}
}

// Detect classifies each description's full history. Records are ordered by description.
func (s *recurrenceService) Detect(set *models.TransactionSet) []models.RecurringCharge {
	charges := []models.RecurringCharge{}
	if set.IsEmpty() {
		return charges
	}

	groups := make(map[string][]chargePoint)
	for _, t := range set.Transactions {
		groups[t.Description] = append(groups[t.Description], chargePoint{
			date:   t.Date,
			amount: t.Amount.Round(2),
		})
	}

	descriptions := make([]string, 0, len(groups))
	for d := range groups {
		descriptions = append(descriptions, d)
	}
	sort.Strings(descriptions)

	for _, description := range descriptions {
		points := groups[description]
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].date.Before(points[j].date)
		})

		for _, rule := range cadenceRules {
			if !rule.matches(points) {
				continue
			}
			total := decimal.Zero
			for _, p := range points {
				total = total.Add(p.amount)
			}
			charges = append(charges, models.RecurringCharge{
				Description: description,
				TotalAmount: total,
				Frequency:   rule.frequency,
				Occurrences: len(points),
			})
			break
		}
	}

	return charges
}

// Summarize standardizes descriptions through the description table and
// aggregates the charges per frequency.
func (s *recurrenceService) Summarize(charges []models.RecurringCharge) models.RecurringSummary {
	summary := models.RecurringSummary{
		Buckets:      make([]models.FrequencyBucket, len(models.Frequencies)),
		Descriptions: []models.RecurringDescription{},
	}
	position := make(map[models.Frequency]int, len(models.Frequencies))
	for i, f := range models.Frequencies {
		summary.Buckets[i] = models.FrequencyBucket{Frequency: f, TotalAmount: decimal.Zero}
		position[f] = i
	}

	seen := make(map[models.RecurringDescription]struct{})
	for _, c := range charges {
		if i, ok := position[c.Frequency]; ok {
			summary.Buckets[i].Count++
			summary.Buckets[i].TotalAmount = summary.Buckets[i].TotalAmount.Add(c.TotalAmount)
		}

		pair := models.RecurringDescription{
			Description: s.tables.Description(strings.TrimSpace(strings.ToLower(c.Description))),
			Frequency:   c.Frequency,
		}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		summary.Descriptions = append(summary.Descriptions, pair)
	}

	return summary
}
