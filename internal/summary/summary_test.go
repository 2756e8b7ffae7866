package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchant-dashboard/internal/models"
)

func txn(amount, currency, status string) models.Transaction {
	return models.Transaction{
		Amount:   decimal.RequireFromString(amount),
		Currency: currency,
		Status:   status,
	}
}

func TestSummarize_TotalsAndCounts(t *testing.T) {
	records := []models.Transaction{
		txn("10.00", "USD", "completed"),
		txn("5.50", "USD", "pending"),
	}

	s := Summarize(records, "USD")

	assert.True(t, decimal.RequireFromString("15.50").Equal(s.TotalAmount))
	assert.Equal(t, "15.50", s.TotalAmount.StringFixed(2))
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, map[string]int{"completed": 1, "pending": 1}, s.CountByStatus)
}

func TestSummarize_EmptyInput(t *testing.T) {
	s := Summarize([]models.Transaction{}, "")

	assert.True(t, s.TotalAmount.IsZero())
	assert.Equal(t, models.DefaultCurrency, s.Currency)
	assert.Equal(t, 0, s.Count)
	assert.Empty(t, s.CountByStatus)
}

func TestSummarize_NormalizesStatusKeys(t *testing.T) {
	records := []models.Transaction{
		txn("1", "eur", "Completed"),
		txn("2", "USD", " COMPLETED "),
		txn("3", "", ""),
	}

	s := Summarize(records, "USD")

	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, 2, s.CountFor("completed"))
	assert.Equal(t, 2, s.CountFor("Completed"))
	assert.Equal(t, 1, s.CountByStatus["unknown"])
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	records := []models.Transaction{txn("1.10", "USD", "Pending")}

	Summarize(records, "USD")

	assert.Equal(t, "Pending", records[0].Status)
	assert.Equal(t, "1.1", records[0].Amount.String())
}

func TestSummarize_ExactDecimalSum(t *testing.T) {
	records := make([]models.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, txn("0.10", "USD", "completed"))
	}

	s := Summarize(records, "USD")

	assert.True(t, decimal.NewFromInt(1).Equal(s.TotalAmount))
}

func TestFormatters_CachesPerLocaleAndCurrency(t *testing.T) {
	fs := NewFormatters()

	first := fs.Get("en-US", "USD")
	second := fs.Get("en-US", "usd")
	other := fs.Get("en-US", "EUR")

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, fs.Len())
}

func TestFormatter_Format(t *testing.T) {
	f := NewFormatters().Get("en-US", "USD")

	out := f.Format(decimal.RequireFromString("15.50"))

	assert.Contains(t, out, "15.5")
	assert.Equal(t, "USD", f.Currency())
}

func TestFormatter_RoundsInDecimal(t *testing.T) {
	f := NewFormatters().Get("en-US", "USD")

	// 2.675 has no exact float form and would print as 2.67
	out := f.Format(decimal.RequireFromString("2.675"))

	assert.Contains(t, out, "2.68")
}

func TestFormatter_UnknownCurrencyFallsBack(t *testing.T) {
	f := NewFormatters().Get("not a locale", "ZZZ1")

	assert.Equal(t, "ZZZ1 15.50", f.Format(decimal.RequireFromString("15.5")))
}
