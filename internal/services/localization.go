package services

import (
	"strings"

	"golang.org/x/text/language"

	domain "github.com/petra-home/storefront/internal/domain"
)

var languageMatcher = language.NewMatcher([]language.Tag{
	domain.LanguageBase,
	domain.LanguageOverlay,
})

// ResolveLanguage parses a raw language identifier against the supported set.
// Anything unparseable or unsupported resolves to the base language.
func ResolveLanguage(raw string) language.Tag {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.LanguageBase
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return domain.LanguageBase
	}
	_, index, _ := languageMatcher.Match(tags...)
	if index == 1 {
		return domain.LanguageOverlay
	}
	return domain.LanguageBase
}

// isOverlay reports whether tag resolves to the overlay language.
func isOverlay(tag language.Tag) bool {
	base, _ := tag.Base()
	overlayBase, _ := domain.LanguageOverlay.Base()
	return base == overlayBase
}

// LocalizeProduct resolves a raw record for display in the given language.
// The base language is the identity transform. For the overlay language each
// translated field replaces its base counterpart only when non-empty, so a
// partially translated record falls back field by field.
func LocalizeProduct(p domain.Product, tag language.Tag) domain.Product {
	out := p.Clone()
	if !isOverlay(tag) {
		return out
	}
	if p.NameEN != "" {
		out.Name = p.NameEN
	}
	if p.CategoryEN != "" {
		out.Category = p.CategoryEN
	}
	if p.DescriptionEN != "" {
		out.Description = p.DescriptionEN
	}
	if len(p.FeaturesEN) > 0 {
		out.Features = append([]string(nil), p.FeaturesEN...)
	}
	return out
}

// LocalizeCategoryName resolves a category key for display. The sentinel key
// always displays, even though it is never stored in the category table.
func LocalizeCategoryName(key string, tag language.Tag, categories []domain.Category) string {
	if !isOverlay(tag) {
		return key
	}
	if key == domain.CategoryAll {
		return "ALL"
	}
	for _, c := range categories {
		if c.Key == key {
			if c.NameEN != "" {
				return c.NameEN
			}
			return key
		}
	}
	return key
}
