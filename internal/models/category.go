package models

// Merchant categories used by the upstream simulator and the list filter
const (
	CategoryGroceries      = "Groceries"
	CategoryDining         = "Dining"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryTravel         = "Travel"
	CategoryOther          = "Other"
)

// AllCategories returns all known merchant categories
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategoryOther,
	}
}

// IsValidCategory reports whether category is a known merchant category
func IsValidCategory(category string) bool {
	for _, c := range AllCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// DistinctCategories returns the categories present in merchants in first-seen
// order. The merchant list builds its category dropdown from this.
func DistinctCategories(merchants []Merchant) []string {
	seen := make(map[string]struct{}, len(merchants))
	categories := make([]string, 0)
	for _, m := range merchants {
		if m.MerchantCategory == "" {
			continue
		}
		if _, ok := seen[m.MerchantCategory]; ok {
			continue
		}
		seen[m.MerchantCategory] = struct{}{}
		categories = append(categories, m.MerchantCategory)
	}
	return categories
}
