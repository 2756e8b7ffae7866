package summary

import (
	"strings"

	"github.com/shopspring/decimal"

	"merchant-dashboard/internal/models"
)

// Amounted is a record the aggregator can total
type Amounted interface {
	MoneyAmount() decimal.Decimal
	MoneyCurrency() string
	MoneyStatus() string
}

// Summary totals one loaded page of records
type Summary struct {
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Currency      string          `json:"currency"`
	Count         int             `json:"totalTransactions"`
	CountByStatus map[string]int  `json:"byStatus"`
}

// CountFor returns the count of a status, ignoring case
func (s Summary) CountFor(status string) int {
	return s.CountByStatus[strings.ToLower(status)]
}

// Summarize totals records in one pass. The currency is taken from the first
// record that carries one and falls back to defaultCurrency. Status keys are
// lower-cased; records without a status are counted under "unknown".
func Summarize[T Amounted](records []T, defaultCurrency string) Summary {
	if defaultCurrency == "" {
		defaultCurrency = models.DefaultCurrency
	}

	s := Summary{
		TotalAmount:   decimal.Zero,
		CountByStatus: make(map[string]int),
		Count:         len(records),
	}
	for _, r := range records {
		s.TotalAmount = s.TotalAmount.Add(r.MoneyAmount())
		if s.Currency == "" {
			s.Currency = strings.ToUpper(strings.TrimSpace(r.MoneyCurrency()))
		}

		status := strings.ToLower(strings.TrimSpace(r.MoneyStatus()))
		if status == "" {
			status = "unknown"
		}
		s.CountByStatus[status]++
	}
	if s.Currency == "" {
		s.Currency = strings.ToUpper(defaultCurrency)
	}
	return s
}
