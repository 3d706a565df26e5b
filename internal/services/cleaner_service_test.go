package services

import (
	"context"
	"fmt"
	"testing"

	"spend-insights/internal/mappings"
	"spend-insights/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CleanerServiceTestSuite struct {
	suite.Suite
	service CleanerServiceInterface
}

func TestCleanerServiceSuite(t *testing.T) {
	suite.Run(t, new(CleanerServiceTestSuite))
}

func (s *CleanerServiceTestSuite) SetupTest() {
	s.service = NewCleanerService(mappings.Default())
}

func (s *CleanerServiceTestSuite) ingest(paths ...string) *models.RawTransactionSet {
	set, _, err := NewIngestionService(newTestMetrics()).Ingest(context.Background(), paths)
	s.Require().NoError(err)
	return set
}

func (s *CleanerServiceTestSuite) TestClean_Fixtures() {
	cleaned, err := s.service.Clean(s.ingest(fixture("checking.csv"), fixture("card.csv")))
	s.Require().NoError(err)

	// payroll, the refund and the unparseable amount are dropped
	s.Require().Equal(7, cleaned.Len())

	grocery := cleaned.Transactions[0]
	s.Equal("grocery outlet", grocery.Description)
	s.Equal(models.CategoryUncategorized, grocery.Category)
	s.Equal("2024-03", grocery.Month)

	water := cleaned.Transactions[1]
	s.Equal("city water", water.Description)

	netflix := cleaned.Transactions[2]
	s.Equal("netflix.com", netflix.Description)
	s.Equal("education & entertainment", netflix.Category)
	s.Equal("2024-01", netflix.Month)

	bistro := cleaned.Transactions[5]
	s.Equal("tst* corner bistro", bistro.Description)
	s.Equal("restaurants", bistro.Category)

	gas := cleaned.Transactions[6]
	s.Equal("shell oil", gas.Description)
	s.Equal("transportation", gas.Category)
}

func (s *CleanerServiceTestSuite) TestClean_CategoryLookup() {
	set := models.NewRawTransactionSet()
	set.AddColumns(models.ColumnTransactionDate, models.ColumnDescription, models.ColumnCategory, models.ColumnAmount)
	for _, category := range []string{"Dining Out", "unknown_xyz"} {
		when := day(2024, 5, 1)
		c := category
		set.Rows = append(set.Rows, models.RawTransaction{
			Date:        &when,
			Description: "Somewhere",
			Category:    &c,
			Amount:      decimal.NewNullDecimal(decimal.NewFromInt(-10)),
		})
	}

	cleaned, err := s.service.Clean(set)
	s.Require().NoError(err)
	s.Require().Equal(2, cleaned.Len())
	s.Equal("restaurants", cleaned.Transactions[0].Category)
	s.Equal("unknown_xyz", cleaned.Transactions[1].Category)
}

func (s *CleanerServiceTestSuite) TestClean_MissingColumns() {
	noDate := models.NewRawTransactionSet()
	noDate.AddColumns(models.ColumnDescription, models.ColumnAmount)
	_, err := s.service.Clean(noDate)
	s.ErrorIs(err, ErrSchema)

	noDescription := models.NewRawTransactionSet()
	noDescription.AddColumns(models.ColumnDate, models.ColumnAmount)
	_, err = s.service.Clean(noDescription)
	s.ErrorIs(err, ErrSchema)

	_, err = s.service.Clean(nil)
	s.ErrorIs(err, ErrSchema)
}

func (s *CleanerServiceTestSuite) TestCleanTable_LowerCaseColumns() {
	cleaned, err := s.service.CleanTable(
		[]string{"date", "description", "amount"},
		[][]string{
			{"2024-02-03", "Gym Membership #A77", "-30.00"},
			{"2024-02-04", "Refund", "30.00"},
			{"2024-02-05", "Mystery", ""},
		},
	)
	s.Require().NoError(err)
	s.Require().Equal(1, cleaned.Len())
	s.Equal("gym membership", cleaned.Transactions[0].Description)
	s.Equal(models.CategoryUncategorized, cleaned.Transactions[0].Category)
	s.Equal("2024-02", cleaned.Transactions[0].Month)

	_, err = s.service.CleanTable([]string{"amount", "memo"}, [][]string{{"-1", "x"}})
	s.ErrorIs(err, ErrSchema)
}

func (s *CleanerServiceTestSuite) TestCleanTable_UnparseableDateIsExcluded() {
	cleaned, err := s.service.CleanTable(
		[]string{"date", "description", "amount"},
		[][]string{
			{"2024-02-03", "ok", "-1"},
			{"someday", "bad", "-2"},
		},
	)
	s.Require().NoError(err)
	s.Require().Equal(1, cleaned.Len())
	s.Equal("ok", cleaned.Transactions[0].Description)
}

func (s *CleanerServiceTestSuite) TestCleanDescription() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"NETFLIX.COM*AB12CD", "NETFLIX.COM"},
		{"SQ *BALTIMORE 8812", "SQ"},
		{"AMAZON MKTPL#7788 ", "AMAZON MKTPL"},
		{"TST* CORNER BISTRO", "TST* CORNER BISTRO"},
		{"PAYMENT 12345 THANK YOU", "PAYMENT  THANK YOU"},
		{"   ", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			s.Equal(tc.expected, s.service.CleanDescription(tc.input))
		})
	}
}

func (s *CleanerServiceTestSuite) TestClean_IdempotentAndExpenseOnly() {
	faker := gofakeit.New(42)
	categories := []string{"Groceries", "Dining Out", "Gas", "Shopping", "Travel", "unknown_xyz", ""}

	set := models.NewRawTransactionSet()
	set.AddColumns(models.ColumnTransactionDate, models.ColumnDescription, models.ColumnCategory, models.ColumnAmount)
	for i := 0; i < 250; i++ {
		when := calendarDate(faker.DateRange(day(2023, 1, 1), day(2024, 12, 31)))
		description := fmt.Sprintf("%s %s%d %s", faker.Company(), faker.RandomString([]string{"*", "#", ""}), faker.Number(1, 99999), faker.Word())
		row := models.RawTransaction{
			Date:        &when,
			Description: description,
			Amount:      decimal.NewNullDecimal(decimal.NewFromFloat(faker.Float64Range(-500, 500)).Round(2)),
		}
		if category := faker.RandomString(categories); category != "" {
			row.Category = &category
		}
		set.Rows = append(set.Rows, row)
	}

	once, err := s.service.Clean(set)
	s.Require().NoError(err)
	s.Require().False(once.IsEmpty())
	for _, t := range once.Transactions {
		s.True(t.Amount.IsNegative(), "amount %s", t.Amount)
		s.NotEmpty(t.Category)
		s.Equal(models.MonthOf(t.Date), t.Month)
	}

	twice, err := s.service.Clean(once.ToRaw())
	s.Require().NoError(err)
	s.Equal(once, twice)
}
