package view

import "strconv"

const maxPagesWithoutGap = 7

// PageLink is one entry of the page navigation strip. Page is zero-based;
// Gap entries render as "..." and carry no page.
type PageLink struct {
	Page    int    `json:"page"`
	Label   string `json:"label"`
	Gap     bool   `json:"gap,omitempty"`
	Current bool   `json:"current,omitempty"`
}

// PageNumbers builds the navigation strip for a zero-based current page.
// Up to seven pages are listed in full; beyond that the strip keeps the
// first and last page plus two pages either side of the current one.
func PageNumbers(current, totalPages int) []PageLink {
	if totalPages <= 0 {
		return []PageLink{}
	}
	current = ClampPage(current, totalPages)

	// one-based from here on
	cp := current + 1
	links := make([]PageLink, 0, maxPagesWithoutGap+2)
	add := func(n int) {
		links = append(links, PageLink{Page: n - 1, Label: strconv.Itoa(n), Current: n == cp})
	}
	gap := func() {
		links = append(links, PageLink{Page: -1, Label: "...", Gap: true})
	}

	if totalPages <= maxPagesWithoutGap {
		for n := 1; n <= totalPages; n++ {
			add(n)
		}
		return links
	}

	add(1)
	if cp > 4 {
		gap()
	}
	start := cp - 2
	if start < 2 {
		start = 2
	}
	end := cp + 2
	if end > totalPages-1 {
		end = totalPages - 1
	}
	for n := start; n <= end; n++ {
		add(n)
	}
	if cp < totalPages-3 {
		gap()
	}
	add(totalPages)
	return links
}
