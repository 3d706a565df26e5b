package services

import (
	"fmt"
	"strings"

	"spend-insights/internal/models"

	"github.com/shopspring/decimal"
)

func buildSummary(
	set *models.TransactionSet,
	recurring []models.RecurringCharge,
	recurringSummary models.RecurringSummary,
	patterns []models.UniqueSpendPattern,
	byCategory []models.CategoryCount,
	outliers []models.OutlierMonth,
) models.Summary {
	totalRecurring := decimal.Zero
	for _, c := range recurring {
		totalRecurring = totalRecurring.Add(c.TotalAmount)
	}

	totalPatterns := decimal.Zero
	for _, p := range patterns {
		totalPatterns = totalPatterns.Add(p.Amount)
	}

	summary := models.Summary{
		TotalSpent:               set.Total(),
		TotalRecurring:           totalRecurring,
		Recurring:                recurringSummary,
		TotalUniquePatterns:      totalPatterns,
		UniquePatternCount:       len(patterns),
		UniquePatternsByCategory: byCategory,
		OutlierMonthCount:        len(outliers),
	}
	summary.Text = renderSummary(summary, patterns)
	return summary
}

// renderSummary produces the plain-text block shown to users.
func renderSummary(summary models.Summary, patterns []models.UniqueSpendPattern) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total Spending: $%s\n", summary.TotalSpent.StringFixed(2))
	fmt.Fprintf(&b, "Total Recurring Charges: $%s\n\n", summary.TotalRecurring.StringFixed(2))

	b.WriteString("Recurring Charges Summary:\n")
	for _, f := range models.Frequencies {
		bucket := summary.Recurring.Bucket(f)
		if bucket.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s Charges: %d charges, Total Amount: $%s\n", f.Label(), bucket.Count, bucket.TotalAmount.StringFixed(2))
	}

	b.WriteString("\nUnique Recurring Charge Descriptions:\n")
	for _, d := range summary.Recurring.Descriptions {
		fmt.Fprintf(&b, "%s (%s)\n", d.Description, d.Frequency)
	}

	fmt.Fprintf(&b, "\nTotal Unique Spend Patterns: $%s\n", summary.TotalUniquePatterns.StringFixed(2))
	b.WriteString("Unique Spend Patterns Details:\n")
	for _, p := range patterns {
		fmt.Fprintf(&b, "%s  %-28s %-24s %10s  z=%.2f\n",
			p.Date.Format("2006-01-02"), p.Description, p.Category, p.Amount.StringFixed(2), p.ZScore)
	}

	b.WriteString("\nNumber of Unique Patterns by Category:\n")
	for _, c := range summary.UniquePatternsByCategory {
		fmt.Fprintf(&b, "%s: %d\n", c.Category, c.Count)
	}

	fmt.Fprintf(&b, "\nOutlier Months: %d\n", summary.OutlierMonthCount)
	return b.String()
}
