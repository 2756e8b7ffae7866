package mockapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"merchant-dashboard/internal/models"
)

const (
	businessHoursStart = 6
	businessHoursEnd   = 24
	historyDays        = 90
	feeRate            = 0.029
)

var (
	cardTypes = []string{"VISA", "MASTERCARD", "AMEX", "DISCOVER"}
	acquirers = []string{"Global Payments", "Worldpay", "Fiserv", "Adyen"}
	issuers   = []string{"Chase", "Bank of America", "Wells Fargo", "Citi", "Capital One"}

	paymentMethods = []string{"Credit Card", "Debit Card", "Bank Transfer", "Digital Wallet"}
)

// Generator produces deterministic merchant and transaction fixtures for a
// given seed.
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	now   time.Time
}

func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{
		faker: gofakeit.New(uint64(seed)),
		now:   now.UTC(),
	}
}

// TransactionMerchantID is the id the transaction endpoints use for merchant n
func TransactionMerchantID(n int64) string {
	return fmt.Sprintf("MCH-%05d", n)
}

// Merchants generates count merchants with ids 1..count
func (g *Generator) Merchants(count int) []models.Merchant {
	g.mu.Lock()
	defer g.mu.Unlock()

	merchants := make([]models.Merchant, 0, count)
	for i := 1; i <= count; i++ {
		merchants = append(merchants, g.merchant(int64(i)))
	}
	return merchants
}

func (g *Generator) merchant(id int64) models.Merchant {
	f := g.faker
	name := f.Company()
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))

	return models.Merchant{
		MerchantID:       id,
		MerchantName:     name,
		MerchantStatus:   g.weightedStatus(),
		ContactInfo:      f.Email(),
		MerchantCategory: f.RandomString(models.AllCategories()),
		MerchantLocation: f.City(),
		MerchantRating:   decimal.NewFromFloat(f.Float64Range(1, 5)).Round(1).InexactFloat64(),
		NumOrders:        f.IntRange(0, 5000),
		PaymentMethod:    f.RandomString(paymentMethods),
		MerchantLogo:     fmt.Sprintf("https://logo.example.com/%s.png", slug),
		MerchantWebsite:  fmt.Sprintf("https://www.%s.example.com", slug),
		MerchantType:     f.RandomString(models.MerchantTypes()),
		MerchantTags:     []string{f.RandomString(models.AllCategories()), "merchant"},
	}
}

// weightedStatus favours active merchants: 80% active, 15% inactive, 5%
// suspended
func (g *Generator) weightedStatus() string {
	roll := g.faker.Float64Range(0, 1)
	switch {
	case roll < 0.80:
		return models.MerchantStatusActive
	case roll < 0.95:
		return models.MerchantStatusInactive
	default:
		return models.MerchantStatusSuspended
	}
}

// Transactions generates count transactions for merchantID spread over the
// last historyDays days. category picks the amount range. IDs start at
// firstID.
func (g *Generator) Transactions(merchantID, category string, count int, firstID int64) []models.Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	start := g.now.AddDate(0, 0, -historyDays)
	txns := make([]models.Transaction, 0, count)
	detailID := firstID * 10
	for i := 0; i < count; i++ {
		txn := g.transaction(merchantID, category, firstID+int64(i), start, g.now)
		txn.Details, detailID = g.details(txn.Amount, detailID)
		txns = append(txns, txn)
	}
	return txns
}

func (g *Generator) transaction(merchantID, category string, id int64, start, end time.Time) models.Transaction {
	f := g.faker
	ts := g.timestamp(start, end).Format(time.RFC3339)

	return models.Transaction{
		TxnID:      id,
		MerchantID: merchantID,
		Amount:     g.amount(category),
		Currency:   models.DefaultCurrency,
		Status:     g.weightedTxnStatus(),
		CardType:   f.RandomString(cardTypes),
		CardLast4:  f.Numerify("####"),
		AuthCode:   strings.ToUpper(f.Numerify("A#####")),
		Acquirer:   f.RandomString(acquirers),
		Issuer:     f.RandomString(issuers),
		TxnDate:    ts,
		CreatedAt:  ts,
	}
}

// weightedTxnStatus: 70% completed, 15% pending, 10% failed, 5% refunded
func (g *Generator) weightedTxnStatus() string {
	roll := g.faker.Float64Range(0, 1)
	switch {
	case roll < 0.70:
		return models.TransactionStatusCompleted
	case roll < 0.85:
		return models.TransactionStatusPending
	case roll < 0.95:
		return models.TransactionStatusFailed
	default:
		return models.TransactionStatusRefunded
	}
}

func (g *Generator) amount(category string) decimal.Decimal {
	lo, hi := amountRange(category)
	return decimal.NewFromFloat(g.faker.Float64Range(lo, hi)).Round(2)
}

func amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryGroceries:      {15.00, 250.00},
		models.CategoryDining:         {8.00, 120.00},
		models.CategoryTransportation: {10.00, 80.00},
		models.CategoryShopping:       {25.00, 450.00},
		models.CategoryEntertainment:  {10.00, 60.00},
		models.CategoryBillsUtilities: {50.00, 250.00},
		models.CategoryHealthcare:     {20.00, 300.00},
		models.CategoryTravel:         {100.00, 800.00},
		models.CategoryEducation:      {30.00, 200.00},
	}

	if r, ok := ranges[category]; ok {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// details splits a processing fee line off the amount and sometimes adds a
// flat service fee
func (g *Generator) details(amount decimal.Decimal, nextID int64) ([]models.TransactionDetail, int64) {
	fee := amount.Mul(decimal.NewFromFloat(feeRate)).Round(2)
	lines := []models.TransactionDetail{{
		DetailID:    nextID,
		Type:        "fee",
		Amount:      fee,
		Description: "Processing fee",
	}}
	nextID++

	if g.faker.Float64Range(0, 1) < 0.2 {
		fees := []float64{0.25, 0.30, 0.50, 1.00}
		lines = append(lines, models.TransactionDetail{
			DetailID:    nextID,
			Type:        "service",
			Amount:      decimal.NewFromFloat(fees[g.faker.IntRange(0, len(fees)-1)]),
			Description: "Service fee",
		})
		nextID++
	}
	return lines, nextID
}

// timestamp picks a day in [start, end) and a time inside business hours
func (g *Generator) timestamp(start, end time.Time) time.Time {
	day := g.faker.DateRange(start, end)
	hour := g.faker.IntRange(businessHoursStart, businessHoursEnd-1)
	minute := g.faker.IntRange(0, 59)
	second := g.faker.IntRange(0, 59)

	ts := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, time.UTC)
	if ts.After(end) {
		ts = ts.AddDate(0, 0, -1)
	}
	return ts
}

// Chance returns a number in [0, 1) from the seeded source
func (g *Generator) Chance() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.faker.Float64Range(0, 1)
}
