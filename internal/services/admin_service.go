package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	domain "github.com/petra-home/storefront/internal/domain"
)

var (
	// ErrAdminRequired marks catalog mutations attempted without an
	// administrator session.
	ErrAdminRequired = errors.New("admin service: administrator session required")
	// ErrInvalidProduct marks a product input rejected before any remote call.
	ErrInvalidProduct = errors.New("admin service: invalid product")
	// ErrInvalidCategory marks a category input rejected before any remote call.
	ErrInvalidCategory = errors.New("admin service: invalid category")
)

// adminSession is the slice of the identity service the gate needs.
type adminSession interface {
	Current() (domain.User, bool)
}

// AdminServiceDeps wires the admin service to its collaborators.
type AdminServiceDeps struct {
	Catalog *CatalogStore
	Session adminSession
	Logger  *zap.Logger
}

// ProductInput carries the fields of a new product. The id is assigned by
// the service; translated fields are optional overlays.
type ProductInput struct {
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

// Validate checks the input before any remote call.
func (in ProductInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Category, validation.Required),
		validation.Field(&in.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&in.ImageMain, validation.Required, is.URL),
		validation.Field(&in.ImageHover, validation.Required, is.URL),
		validation.Field(&in.ImageDetail2, validation.Required, is.URL),
		validation.Field(&in.ImageDetail3, validation.Required, is.URL),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.PaymentLink, is.URL),
	)
}

// AdminService is the gate in front of catalog mutations: every call checks
// the session for administrator rights, validates and sanitises its input,
// and only then reaches the catalog store.
type AdminService struct {
	catalog   *CatalogStore
	session   adminSession
	logger    *zap.Logger
	sanitizer *bluemonday.Policy
	upper     cases.Caser
}

// NewAdminService constructs the admin gate.
func NewAdminService(deps AdminServiceDeps) (*AdminService, error) {
	if deps.Catalog == nil {
		return nil, errors.New("admin service: catalog store is required")
	}
	if deps.Session == nil {
		return nil, errors.New("admin service: session is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{
		catalog:   deps.Catalog,
		session:   deps.Session,
		logger:    logger,
		sanitizer: bluemonday.StrictPolicy(),
		// Category keys are uppercased in the catalog's base language so
		// dotted and dotless i map correctly.
		upper: cases.Upper(domain.LanguageBase),
	}, nil
}

// CreateProduct validates the input, assigns the next free id and writes the
// record. Ids of deleted products are never handed out again.
func (s *AdminService) CreateProduct(ctx context.Context, input ProductInput) (domain.Product, error) {
	if err := s.guard(); err != nil {
		return domain.Product{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	product := s.cleanInput(input)
	product.ID = s.catalog.NextProductID()
	if err := s.catalog.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}
	s.logger.Info("product created", zap.Int("id", product.ID), zap.String("name", product.Name))
	return product, nil
}

// UpdateProduct merges the patch into the stored record. Only supplied fields
// are validated and written; everything else keeps its remote value.
func (s *AdminService) UpdateProduct(ctx context.Context, id int, patch domain.ProductPatch) error {
	if err := s.guard(); err != nil {
		return err
	}
	if patch.IsZero() {
		return fmt.Errorf("%w: empty patch", ErrInvalidProduct)
	}
	if err := validatePatch(patch); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	if err := s.catalog.UpdateProduct(ctx, id, s.cleanPatch(patch)); err != nil {
		return err
	}
	s.logger.Info("product updated", zap.Int("id", id))
	return nil
}

// DeleteProduct hard-deletes the record. Carts and favorites referencing it
// are untouched; their display joins simply stop resolving the id.
func (s *AdminService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.catalog.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.Int("id", id))
	return nil
}

// AddCategory registers a new category key, uppercased in the base language.
func (s *AdminService) AddCategory(ctx context.Context, key, nameEN string) error {
	if err := s.guard(); err != nil {
		return err
	}
	key = s.upper.String(strings.TrimSpace(s.sanitizer.Sanitize(key)))
	if key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidCategory)
	}
	category := domain.Category{
		Key:    key,
		NameEN: s.upper.String(strings.TrimSpace(s.sanitizer.Sanitize(nameEN))),
	}
	if err := s.catalog.AddCategory(ctx, category); err != nil {
		return err
	}
	s.logger.Info("category added", zap.String("key", key))
	return nil
}

// DeleteCategory removes a category key; the catalog refuses while products
// still reference it.
func (s *AdminService) DeleteCategory(ctx context.Context, key string) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.catalog.DeleteCategory(ctx, strings.TrimSpace(key)); err != nil {
		return err
	}
	s.logger.Info("category deleted", zap.String("key", key))
	return nil
}

func (s *AdminService) guard() error {
	user, ok := s.session.Current()
	if !ok || !user.Admin {
		return ErrAdminRequired
	}
	return nil
}

// cleanInput strips markup from free-text fields. Image and payment URLs are
// validated instead of rewritten.
func (s *AdminService) cleanInput(input ProductInput) domain.Product {
	return domain.Product{
		Name:          s.cleanText(input.Name),
		NameEN:        s.cleanText(input.NameEN),
		Category:      s.upper.String(s.cleanText(input.Category)),
		CategoryEN:    s.upper.String(s.cleanText(input.CategoryEN)),
		Price:         input.Price,
		ImageMain:     strings.TrimSpace(input.ImageMain),
		ImageHover:    strings.TrimSpace(input.ImageHover),
		ImageDetail2:  strings.TrimSpace(input.ImageDetail2),
		ImageDetail3:  strings.TrimSpace(input.ImageDetail3),
		Description:   s.cleanText(input.Description),
		DescriptionEN: s.cleanText(input.DescriptionEN),
		Features:      s.cleanList(input.Features),
		FeaturesEN:    s.cleanList(input.FeaturesEN),
		PaymentLink:   strings.TrimSpace(input.PaymentLink),
	}
}

func (s *AdminService) cleanPatch(patch domain.ProductPatch) domain.ProductPatch {
	out := patch
	if patch.Name != nil {
		out.Name = ptr(s.cleanText(*patch.Name))
	}
	if patch.NameEN != nil {
		out.NameEN = ptr(s.cleanText(*patch.NameEN))
	}
	if patch.Category != nil {
		out.Category = ptr(s.upper.String(s.cleanText(*patch.Category)))
	}
	if patch.CategoryEN != nil {
		out.CategoryEN = ptr(s.upper.String(s.cleanText(*patch.CategoryEN)))
	}
	if patch.Description != nil {
		out.Description = ptr(s.cleanText(*patch.Description))
	}
	if patch.DescriptionEN != nil {
		out.DescriptionEN = ptr(s.cleanText(*patch.DescriptionEN))
	}
	if patch.Features != nil {
		out.Features = s.cleanList(patch.Features)
	}
	if patch.FeaturesEN != nil {
		out.FeaturesEN = s.cleanList(patch.FeaturesEN)
	}
	return out
}

func (s *AdminService) cleanText(text string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}

func (s *AdminService) cleanList(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if cleaned := s.cleanText(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func validatePatch(patch domain.ProductPatch) error {
	return validation.ValidateStruct(&patch,
		validation.Field(&patch.Name, validation.NilOrNotEmpty),
		validation.Field(&patch.Category, validation.NilOrNotEmpty),
		validation.Field(&patch.Price, validation.Min(0.01)),
		validation.Field(&patch.ImageMain, validation.NilOrNotEmpty, is.URL),
		validation.Field(&patch.ImageHover, is.URL),
		validation.Field(&patch.ImageDetail2, is.URL),
		validation.Field(&patch.ImageDetail3, is.URL),
		validation.Field(&patch.Description, validation.NilOrNotEmpty),
		validation.Field(&patch.PaymentLink, is.URL),
	)
}

func ptr[T any](v T) *T { return &v }
