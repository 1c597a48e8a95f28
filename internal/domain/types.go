package domain

import (
	"golang.org/x/text/language"
)

// LanguageBase is the language the catalog is authored in. Resolving a product
// against it is always the identity transform.
var LanguageBase = language.Turkish

// LanguageOverlay is the single supported translation overlay.
var LanguageOverlay = language.English

// CategoryAll is the reserved sentinel meaning "no category filter". It is
// never persisted to the categories collection.
const CategoryAll = "TÜMÜ"

// Product is a raw catalog record as held by the remote store. Fields with an
// EN suffix are the optional localized overlay; empty means "no translation,
// fall back to the base field".
type Product struct {
	ID            int
	Name          string
	NameEN        string
	Category      string
	CategoryEN    string
	Price         float64
	ImageMain     string
	ImageHover    string
	ImageDetail2  string
	ImageDetail3  string
	Description   string
	DescriptionEN string
	Features      []string
	FeaturesEN    []string
	PaymentLink   string
}

// Clone returns a deep copy; feature slices are the only reference fields.
func (p Product) Clone() Product {
	dup := p
	if p.Features != nil {
		dup.Features = append([]string(nil), p.Features...)
	}
	if p.FeaturesEN != nil {
		dup.FeaturesEN = append([]string(nil), p.FeaturesEN...)
	}
	return dup
}

// ProductPatch carries a partial update with merge semantics: nil fields are
// left untouched on the stored record.
type ProductPatch struct {
	Name          *string
	NameEN        *string
	Category      *string
	CategoryEN    *string
	Price         *float64
	ImageMain     *string
	ImageHover    *string
	ImageDetail2  *string
	ImageDetail3  *string
	Description   *string
	DescriptionEN *string
	Features      []string
	FeaturesEN    []string
	PaymentLink   *string
}

// IsZero reports whether the patch carries no field at all.
func (p ProductPatch) IsZero() bool {
	return p.Name == nil && p.NameEN == nil && p.Category == nil && p.CategoryEN == nil &&
		p.Price == nil && p.ImageMain == nil && p.ImageHover == nil && p.ImageDetail2 == nil &&
		p.ImageDetail3 == nil && p.Description == nil && p.DescriptionEN == nil &&
		p.Features == nil && p.FeaturesEN == nil && p.PaymentLink == nil
}

// ApplyTo overlays the supplied fields onto base and returns the result.
func (p ProductPatch) ApplyTo(base Product) Product {
	out := base.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.NameEN != nil {
		out.NameEN = *p.NameEN
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.CategoryEN != nil {
		out.CategoryEN = *p.CategoryEN
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.ImageMain != nil {
		out.ImageMain = *p.ImageMain
	}
	if p.ImageHover != nil {
		out.ImageHover = *p.ImageHover
	}
	if p.ImageDetail2 != nil {
		out.ImageDetail2 = *p.ImageDetail2
	}
	if p.ImageDetail3 != nil {
		out.ImageDetail3 = *p.ImageDetail3
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.DescriptionEN != nil {
		out.DescriptionEN = *p.DescriptionEN
	}
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	if p.FeaturesEN != nil {
		out.FeaturesEN = append([]string(nil), p.FeaturesEN...)
	}
	if p.PaymentLink != nil {
		out.PaymentLink = *p.PaymentLink
	}
	return out
}

// Category maps a base-language key to an optional display override for the
// overlay language.
type Category struct {
	Key    string
	NameEN string
}

// CartLine is one (product, quantity) pair inside a cart. Identity within a
// cart is ProductID; quantity never drops below one except by removal.
type CartLine struct {
	ProductID int
	Quantity  int
}

// CartDisplayLine is a cart line joined against the current localized catalog.
type CartDisplayLine struct {
	Product   Product
	Quantity  int
	LineTotal float64
}

// Address is one entry of a user's address book.
type Address struct {
	ID          string
	Title       string
	FullAddress string
	City        string
}

// User is the public identity projection. The credential secret lives only on
// the stored record and never crosses into this type.
type User struct {
	Email     string
	Name      string
	Surname   string
	Admin     bool
	Addresses []Address
}
