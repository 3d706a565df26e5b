package models

import (
	"github.com/shopspring/decimal"
)

// Frequency is the detected cadence of a recurring charge.
type Frequency string

const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiAnnual Frequency = "semi-annual"
	FrequencyAnnual     Frequency = "annual"
)

// Frequencies lists every cadence in detection priority order.
var Frequencies = []Frequency{
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencySemiAnnual,
	FrequencyAnnual,
}

func (f Frequency) IsValid() bool {
	for _, v := range Frequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Label returns the title-cased name used in rendered summaries.
func (f Frequency) Label() string {
	switch f {
	case FrequencyMonthly:
		return "Monthly"
	case FrequencyQuarterly:
		return "Quarterly"
	case FrequencySemiAnnual:
		return "Semi-Annual"
	case FrequencyAnnual:
		return "Annual"
	default:
		return string(f)
	}
}

// RecurringCharge is one description whose whole history matched a cadence.
type RecurringCharge struct {
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Frequency   Frequency       `json:"frequency"`
	Occurrences int             `json:"occurrences"`
}

// FrequencyBucket aggregates recurring charges of one cadence.
type FrequencyBucket struct {
	Frequency   Frequency       `json:"frequency"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// RecurringDescription is a standardized description paired with its cadence.
type RecurringDescription struct {
	Description string    `json:"description"`
	Frequency   Frequency `json:"frequency"`
}

// RecurringSummary holds one bucket per frequency, in priority order, and the
// distinct standardized descriptions in first-seen order.
type RecurringSummary struct {
	Buckets      []FrequencyBucket      `json:"buckets"`
	Descriptions []RecurringDescription `json:"descriptions"`
}

// Bucket returns the bucket for f, or a zero bucket when absent.
func (s RecurringSummary) Bucket(f Frequency) FrequencyBucket {
	for _, b := range s.Buckets {
		if b.Frequency == f {
			return b
		}
	}
	return FrequencyBucket{Frequency: f, TotalAmount: decimal.Zero}
}
