package dto

import (
	"github.com/shopspring/decimal"

	"merchant-dashboard/internal/models"
)

// TransactionListData is the payload of GET /merchants/{id}/transactions.
// Every field is optional on the wire; see ToPage for the defaults.
type TransactionListData struct {
	MerchantID   *string            `json:"merchantId"`
	DateRange    *DateRange         `json:"dateRange"`
	Summary      *TransactionTotals `json:"summary"`
	Transactions *[]RawTransaction  `json:"transactions"`
	Pagination   *RawPagination     `json:"pagination"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TransactionTotals is the server-side summary over the whole date range
type TransactionTotals struct {
	TotalTransactions *int             `json:"totalTransactions"`
	TotalAmount       *decimal.Decimal `json:"totalAmount"`
	Currency          *string          `json:"currency"`
	ByStatus          map[string]int   `json:"byStatus"`
}

type RawPagination struct {
	Page          *int `json:"page"`
	Size          *int `json:"size"`
	TotalPages    *int `json:"totalPages"`
	TotalElements *int `json:"totalElements"`
}

type RawTransactionDetail struct {
	DetailID    *int64           `json:"detailId"`
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

// RawTransaction is a transaction as sent by the upstream. The upstream calls
// the transaction date "timestamp".
type RawTransaction struct {
	TxnID      *int64                 `json:"txnId"`
	MerchantID *string                `json:"merchantId"`
	Amount     *decimal.Decimal       `json:"amount"`
	Currency   *string                `json:"currency"`
	Status     *string                `json:"status"`
	CardType   *string                `json:"cardType"`
	CardLast4  *string                `json:"cardLast4"`
	AuthCode   *string                `json:"authCode"`
	Acquirer   *string                `json:"acquirer"`
	Issuer     *string                `json:"issuer"`
	Timestamp  *string                `json:"timestamp"`
	CreatedAt  *string                `json:"createdAt"`
	Details    []RawTransactionDetail `json:"details"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num[N int | int64](p *N, fallback N) N {
	if p == nil {
		return fallback
	}
	return *p
}

func amount(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

// ToModel maps the raw record, filling missing fields with zero values. A
// missing merchant id falls back to the id of the list it came from.
func (r RawTransaction) ToModel(merchantID string) models.Transaction {
	t := models.Transaction{
		TxnID:      num(r.TxnID, 0),
		MerchantID: str(r.MerchantID),
		Amount:     amount(r.Amount),
		Currency:   str(r.Currency),
		Status:     str(r.Status),
		CardType:   str(r.CardType),
		CardLast4:  str(r.CardLast4),
		AuthCode:   str(r.AuthCode),
		Acquirer:   str(r.Acquirer),
		Issuer:     str(r.Issuer),
		TxnDate:    str(r.Timestamp),
		CreatedAt:  str(r.CreatedAt),
	}
	if t.MerchantID == "" {
		t.MerchantID = merchantID
	}
	for _, d := range r.Details {
		t.Details = append(t.Details, models.TransactionDetail{
			DetailID:    num(d.DetailID, 0),
			Type:        str(d.Type),
			Amount:      amount(d.Amount),
			Description: str(d.Description),
		})
	}
	return t
}

// HasRecords reports whether the transactions array was present at all
func (d *TransactionListData) HasRecords() bool {
	return d != nil && d.Transactions != nil
}

// ToPage maps the payload onto a page. The total count prefers the summary
// total, then pagination.totalElements, then the number of records. Page and
// size default to the requested values.
func (d *TransactionListData) ToPage(key models.TransactionKey) models.Page[models.Transaction] {
	merchantID := key.MerchantID
	if d.MerchantID != nil && *d.MerchantID != "" {
		merchantID = *d.MerchantID
	}

	var raw []RawTransaction
	if d.Transactions != nil {
		raw = *d.Transactions
	}
	records := make([]models.Transaction, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.ToModel(merchantID))
	}

	page := models.Page[models.Transaction]{
		Records: records,
		Page:    key.Page,
		Size:    key.Size,
	}
	if d.Pagination != nil {
		page.Page = num(d.Pagination.Page, key.Page)
		page.Size = num(d.Pagination.Size, key.Size)
		page.TotalCount = num(d.Pagination.TotalElements, 0)
	}
	if d.Summary != nil && d.Summary.TotalTransactions != nil {
		page.TotalCount = *d.Summary.TotalTransactions
	}
	if page.TotalCount < len(records) {
		page.TotalCount = len(records)
	}
	return page
}

// CreateTransactionRequest is the payload for adding a transaction to a
// merchant. Amount is in minor units as the upstream expects.
type CreateTransactionRequest struct {
	MerchantID   string `json:"merchantId" validate:"required,max=64"`
	GPAcquirerID int64  `json:"gpAcquirerId" validate:"required,gt=0"`
	GPIssuerID   int64  `json:"gpIssuerId" validate:"required,gt=0"`
	Amount       int64  `json:"amount" validate:"required,positive_amount"`
	Currency     string `json:"currency" validate:"required,iso4217"`
	CardType     string `json:"cardType" validate:"required,max=32"`
	CardLast4    string `json:"cardLast4" validate:"required,card_last4"`
	AuthCode     string `json:"authCode" validate:"required,max=32"`
	ResponseCode string `json:"responseCode" validate:"required,max=8"`
}

// CreateTransactionData is returned by transaction create
type CreateTransactionData struct {
	TransactionID   string `json:"transactionId"`
	ResponseMessage string `json:"responseMessage"`
}
