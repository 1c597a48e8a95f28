package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	domain "github.com/petra-home/storefront/internal/domain"
)

// ProductFilter narrows the catalog for display. Category and Search compose
// with AND; either may be given in the base or the overlay language.
type ProductFilter struct {
	Category string
	Search   string
	Language language.Tag
}

// VisibleProducts applies the filter to the raw catalog and returns localized
// records in their original order. The sentinel category and an empty search
// term each match everything.
//
// Category matching compares displayed forms: the selected key is resolved
// through the category table for the active language and compared against the
// product's localized category text. A product whose own category overlay is
// missing or diverges from the table therefore drops out of the overlay view
// rather than leaking through on its base key.
func VisibleProducts(catalog []domain.Product, categories []domain.Category, filter ProductFilter) []domain.Product {
	tag := filter.Language
	if tag == (language.Tag{}) {
		tag = domain.LanguageBase
	}

	selected := strings.TrimSpace(filter.Category)
	filterByCategory := selected != "" && selected != domain.CategoryAll && selected != "ALL"
	wanted := ""
	if filterByCategory {
		wanted = LocalizeCategoryName(selected, tag, categories)
	}

	search := strings.TrimSpace(filter.Search)
	var lower cases.Caser
	if search != "" {
		// Lowercasing follows the display language so dotted and dotless i
		// fold correctly for Turkish readers.
		lower = cases.Lower(tag)
		search = lower.String(search)
	}

	visible := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		localized := LocalizeProduct(p, tag)
		if filterByCategory && localized.Category != wanted {
			continue
		}
		if search != "" &&
			!strings.Contains(lower.String(localized.Name), search) &&
			!strings.Contains(lower.String(localized.Description), search) {
			continue
		}
		visible = append(visible, localized)
	}
	return visible
}
