package view

import (
	"strings"
	"unicode"

	"merchant-dashboard/internal/models"
)

// Predicate reports whether a record belongs in the view
type Predicate[T models.Record] func(T) bool

// NormalizeSearch lower-cases s and drops every whitespace rune, so
// "ABC Store" and "abc   store" compare equal.
func NormalizeSearch(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NewPredicate builds the predicate for filter. The search term is
// normalised once here rather than per record.
func NewPredicate[T models.Record](filter models.Filter) Predicate[T] {
	search := NormalizeSearch(filter.Search)
	status := strings.TrimSpace(filter.Status)
	category := strings.TrimSpace(filter.Category)

	return func(record T) bool {
		if status != "" && !strings.EqualFold(record.Attribute(models.AttrStatus), status) {
			return false
		}
		if category != "" && !strings.EqualFold(record.Attribute(models.AttrCategory), category) {
			return false
		}
		if search == "" {
			return true
		}
		for _, text := range record.SearchText() {
			if strings.Contains(NormalizeSearch(text), search) {
				return true
			}
		}
		return false
	}
}

// MatchAll is the predicate of an empty filter
func MatchAll[T models.Record]() Predicate[T] {
	return func(T) bool { return true }
}
