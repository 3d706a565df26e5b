package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Schema identifies which bank export layout a row was read from.
type Schema string

const (
	SchemaChecking   Schema = "checking"
	SchemaCreditCard Schema = "credit_card"
)

// Canonical column names after ingestion renaming. The lower-case variants are
// accepted by the cleaner for tables produced outside the CSV importer.
const (
	ColumnTransactionDate = "Transaction Date"
	ColumnPostingDate     = "Posting Date"
	ColumnPostDate        = "Post Date"
	ColumnDescription     = "Description"
	ColumnCategory        = "Category"
	ColumnType            = "Type"
	ColumnAmount          = "Amount"
	ColumnMemo            = "Memo"
	ColumnBalance         = "Balance"
	ColumnCheckNumber     = "Check or Slip #"
	ColumnDetails         = "Details"

	ColumnDate           = "date"
	ColumnDescriptionAlt = "description"
	ColumnCategoryAlt    = "category"
	ColumnAmountAlt      = "amount"
)

const (
	CategoryUncategorized = "uncategorized"

	MonthLayout = "2006-01"
)

// RawTransaction is a single ingested row before cleaning. Optional values are
// explicit: a nil pointer or an invalid NullDecimal means the source value was
// absent or could not be parsed.
type RawTransaction struct {
	Date        *time.Time          `json:"date"`
	PostDate    *time.Time          `json:"post_date,omitempty"`
	Description string              `json:"description"`
	Category    *string             `json:"category,omitempty"`
	Type        string              `json:"type,omitempty"`
	Memo        string              `json:"memo,omitempty"`
	Details     string              `json:"details,omitempty"`
	Balance     decimal.NullDecimal `json:"balance"`
	CheckNumber string              `json:"check_number,omitempty"`
	Amount      decimal.NullDecimal `json:"amount"`
	Source      string              `json:"source,omitempty"`
	Schema      Schema              `json:"schema,omitempty"`
}

// RawTransactionSet is the ingestion output. Columns lists the canonical column
// names present across all contributing files, in first-seen order.
type RawTransactionSet struct {
	Columns []string
	Rows    []RawTransaction
}

// NewRawTransactionSet returns an empty, non-nil set.
func NewRawTransactionSet() *RawTransactionSet {
	return &RawTransactionSet{Columns: []string{}, Rows: []RawTransaction{}}
}

func (s *RawTransactionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

func (s *RawTransactionSet) IsEmpty() bool {
	return s.Len() == 0
}

// HasColumn reports whether any of the given names is among the set's columns.
func (s *RawTransactionSet) HasColumn(names ...string) bool {
	if s == nil {
		return false
	}
	for _, c := range s.Columns {
		for _, n := range names {
			if c == n {
				return true
			}
		}
	}
	return false
}

// AddColumns appends column names that are not already present.
func (s *RawTransactionSet) AddColumns(columns ...string) {
	for _, c := range columns {
		if !s.HasColumn(c) {
			s.Columns = append(s.Columns, c)
		}
	}
}

// Transaction is a cleaned expense row.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Month       string          `json:"month"`
	Type        string          `json:"type"`
	Memo        string          `json:"memo"`
	Source      string          `json:"source,omitempty"`
}

// TransactionSet is an ordered collection of cleaned transactions. Pipeline
// stages never modify a set they receive.
type TransactionSet struct {
	Transactions []Transaction `json:"transactions"`
}

// NewTransactionSet returns a set wrapping txns; a nil slice yields an empty set.
func NewTransactionSet(txns []Transaction) *TransactionSet {
	if txns == nil {
		txns = []Transaction{}
	}
	return &TransactionSet{Transactions: txns}
}

func (s *TransactionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Transactions)
}

func (s *TransactionSet) IsEmpty() bool {
	return s.Len() == 0
}

// Total sums every amount in the set.
func (s *TransactionSet) Total() decimal.Decimal {
	total := decimal.Zero
	if s == nil {
		return total
	}
	for _, t := range s.Transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// Months returns the distinct month buckets in ascending order.
func (s *TransactionSet) Months() []string {
	return s.distinct(func(t Transaction) string { return t.Month })
}

// Categories returns the distinct categories in ascending order.
func (s *TransactionSet) Categories() []string {
	return s.distinct(func(t Transaction) string { return t.Category })
}

// ByCategory groups transactions by category, preserving set order within each group.
func (s *TransactionSet) ByCategory() map[string][]Transaction {
	groups := make(map[string][]Transaction)
	if s == nil {
		return groups
	}
	for _, t := range s.Transactions {
		groups[t.Category] = append(groups[t.Category], t)
	}
	return groups
}

// ToRaw converts the set back into the ingestion shape using the canonical columns.
func (s *TransactionSet) ToRaw() *RawTransactionSet {
	raw := NewRawTransactionSet()
	raw.AddColumns(ColumnTransactionDate, ColumnDescription, ColumnCategory, ColumnType, ColumnAmount, ColumnMemo)
	if s == nil {
		return raw
	}
	for _, t := range s.Transactions {
		date := t.Date
		category := t.Category
		raw.Rows = append(raw.Rows, RawTransaction{
			Date:        &date,
			Description: t.Description,
			Category:    &category,
			Type:        t.Type,
			Memo:        t.Memo,
			Amount:      decimal.NewNullDecimal(t.Amount),
			Source:      t.Source,
		})
	}
	return raw
}

func (s *TransactionSet) distinct(key func(Transaction) string) []string {
	out := []string{}
	if s == nil {
		return out
	}
	seen := make(map[string]struct{})
	for _, t := range s.Transactions {
		k := key(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MonthOf returns the YYYY-MM bucket of a date.
func MonthOf(t time.Time) string {
	return t.Format(MonthLayout)
}
