package models

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusRefunded  = "refunded"

	DefaultCurrency = "USD"
)

var (
	ErrInvalidAmount   = errors.New("transaction amount must be positive")
	ErrInvalidCurrency = errors.New("currency must be a three letter ISO code")
)

// Transaction is a card transaction belonging to one merchant
type Transaction struct {
	TxnID      int64           `json:"txnId"`
	MerchantID string          `json:"merchantId"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`
	CardType   string          `json:"cardType"`
	CardLast4  string          `json:"cardLast4"`
	AuthCode   string          `json:"authCode"`
	Acquirer   string          `json:"acquirer,omitempty"`
	Issuer     string          `json:"issuer,omitempty"`
	TxnDate    string          `json:"txnDate"`
	CreatedAt  string          `json:"createdAt"`

	Details []TransactionDetail `json:"details,omitempty"`
}

// TransactionDetail is one line (fee, tax, ...) of a transaction
type TransactionDetail struct {
	DetailID    int64           `json:"detailId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (t Transaction) RecordID() string {
	return strconv.FormatInt(t.TxnID, 10)
}

// SearchText covers the id and the card/merchant fields shown in the list
func (t Transaction) SearchText() []string {
	return []string{t.RecordID(), t.MerchantID, t.CardType, t.CardLast4, t.AuthCode}
}

func (t Transaction) Attribute(name string) string {
	switch name {
	case AttrStatus:
		return t.Status
	case AttrCategory:
		return t.CardType
	default:
		return ""
	}
}

// NormalizedStatus is the status key used for summary counts
func (t Transaction) NormalizedStatus() string {
	return strings.ToLower(strings.TrimSpace(t.Status))
}

func (t Transaction) MoneyAmount() decimal.Decimal {
	return t.Amount
}

func (t Transaction) MoneyCurrency() string {
	return t.Currency
}

func (t Transaction) MoneyStatus() string {
	return t.Status
}

// TransactionStatuses lists the statuses the upstream reports
func TransactionStatuses() []string {
	return []string{
		TransactionStatusCompleted,
		TransactionStatusPending,
		TransactionStatusFailed,
		TransactionStatusRefunded,
	}
}
