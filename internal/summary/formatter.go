package summary

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts in one currency for one locale
type Formatter struct {
	locale  string
	code    string
	unit    currency.Unit
	known   bool
	printer *message.Printer
}

func newFormatter(locale, code string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	f := &Formatter{
		locale:  locale,
		code:    code,
		printer: message.NewPrinter(tag),
	}
	if unit, err := currency.ParseISO(code); err == nil {
		f.unit = unit
		f.known = true
	}
	return f
}

func (f *Formatter) Locale() string   { return f.locale }
func (f *Formatter) Currency() string { return f.code }

// Format renders amount with the currency symbol. Codes x/text does not know
// fall back to "CODE 12.34".
func (f *Formatter) Format(amount decimal.Decimal) string {
	if !f.known {
		return fmt.Sprintf("%s %s", f.code, amount.StringFixed(2))
	}
	// rounded in decimal first; the float only carries the display value
	shown := amount.Round(2).InexactFloat64()
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(shown)))
}

type formatterKey struct {
	locale   string
	currency string
}

// Formatters builds each (locale, currency) formatter once and reuses it
type Formatters struct {
	mu    sync.Mutex
	cache map[formatterKey]*Formatter
}

func NewFormatters() *Formatters {
	return &Formatters{cache: make(map[formatterKey]*Formatter)}
}

// Get returns the cached formatter, constructing it on first use
func (fs *Formatters) Get(locale, code string) *Formatter {
	key := formatterKey{locale: locale, currency: strings.ToUpper(code)}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if f, ok := fs.cache[key]; ok {
		return f
	}
	f := newFormatter(key.locale, key.currency)
	fs.cache[key] = f
	return f
}

// Len returns the number of formatters constructed so far
func (fs *Formatters) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.cache)
}
