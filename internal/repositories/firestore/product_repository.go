package firestore

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/petra-home/storefront/internal/domain"
	pfirestore "github.com/petra-home/storefront/internal/platform/firestore"
	"github.com/petra-home/storefront/internal/repositories"
)

const (
	productCollection = "products"
	metaCollection    = "meta"
	seedMarkerDoc     = "catalog-seed"
)

// ProductRepository persists catalog records in the products collection,
// keyed by the decimal product id.
type ProductRepository struct {
	coll     *pfirestore.Collection[productDocument]
	provider *pfirestore.Provider
}

// NewProductRepository constructs a Firestore-backed product repository.
func NewProductRepository(provider *pfirestore.Provider) (*ProductRepository, error) {
	if provider == nil {
		return nil, errors.New("product repository requires firestore provider")
	}
	return &ProductRepository{
		coll:     pfirestore.NewCollection[productDocument](provider, productCollection, nil),
		provider: provider,
	}, nil
}

// List fetches the full product set ordered by ascending id.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("product repository not initialised")
	}
	docs, err := r.coll.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	return decodeProductDocs(docs), nil
}

// Watch streams full-replace snapshots of the product collection.
func (r *ProductRepository) Watch(ctx context.Context, fn func([]domain.Product)) error {
	if r == nil || r.coll == nil {
		return errors.New("product repository not initialised")
	}
	if fn == nil {
		return errors.New("product repository: watch callback is required")
	}
	return r.coll.Watch(ctx, nil, func(docs []pfirestore.Document[productDocument]) {
		fn(decodeProductDocs(docs))
	})
}

// Set writes the full record under its id.
func (r *ProductRepository) Set(ctx context.Context, product domain.Product) error {
	if r == nil || r.coll == nil {
		return errors.New("product repository not initialised")
	}
	if product.ID <= 0 {
		return errors.New("product repository: product id must be positive")
	}
	return r.coll.Set(ctx, strconv.Itoa(product.ID), fromDomainProduct(product))
}

// Merge overlays only the supplied patch fields onto the stored record.
func (r *ProductRepository) Merge(ctx context.Context, id int, patch domain.ProductPatch) error {
	if r == nil || r.coll == nil {
		return errors.New("product repository not initialised")
	}
	if id <= 0 {
		return errors.New("product repository: product id must be positive")
	}
	fields := patchFields(patch)
	if len(fields) == 0 {
		return nil
	}
	return r.coll.SetMerge(ctx, strconv.Itoa(id), fields)
}

// Delete hard-deletes the record by id.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	if r == nil || r.coll == nil {
		return errors.New("product repository not initialised")
	}
	if id <= 0 {
		return errors.New("product repository: product id must be positive")
	}
	return r.coll.Delete(ctx, strconv.Itoa(id))
}

// SeedOnce writes the built-in products inside a transaction guarded by a
// marker document, so concurrent first sessions seed at most once.
func (r *ProductRepository) SeedOnce(ctx context.Context, products []domain.Product) (bool, error) {
	if r == nil || r.provider == nil {
		return false, errors.New("product repository not initialised")
	}

	client, err := r.provider.Client(ctx)
	if err != nil {
		return false, err
	}

	marker := client.Collection(metaCollection).Doc(seedMarkerDoc)
	seeded := false
	err = r.provider.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(marker); err == nil {
			seeded = false
			return nil
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Create(marker, map[string]any{"seeded": true}); err != nil {
			return err
		}
		for _, product := range products {
			ref := client.Collection(productCollection).Doc(strconv.Itoa(product.ID))
			if err := tx.Set(ref, fromDomainProduct(product)); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, pfirestore.WrapError("products.seed", err)
	}
	return seeded, nil
}

// productDocument is the stored wire format. Document ids are decimal
// strings, so listings re-sort numerically after decode.
type productDocument struct {
	ID            int      `firestore:"id"`
	Name          string   `firestore:"name"`
	NameEN        string   `firestore:"name_en,omitempty"`
	Category      string   `firestore:"category"`
	CategoryEN    string   `firestore:"category_en,omitempty"`
	Price         float64  `firestore:"price"`
	ImageMain     string   `firestore:"imageMain"`
	ImageHover    string   `firestore:"imageHover"`
	ImageDetail2  string   `firestore:"imageDetail2"`
	ImageDetail3  string   `firestore:"imageDetail3"`
	Description   string   `firestore:"description"`
	DescriptionEN string   `firestore:"description_en,omitempty"`
	Features      []string `firestore:"features"`
	FeaturesEN    []string `firestore:"features_en,omitempty"`
	PaymentLink   string   `firestore:"paymentLink,omitempty"`
}

func fromDomainProduct(p domain.Product) productDocument {
	return productDocument{
		ID:            p.ID,
		Name:          p.Name,
		NameEN:        p.NameEN,
		Category:      p.Category,
		CategoryEN:    p.CategoryEN,
		Price:         p.Price,
		ImageMain:     p.ImageMain,
		ImageHover:    p.ImageHover,
		ImageDetail2:  p.ImageDetail2,
		ImageDetail3:  p.ImageDetail3,
		Description:   p.Description,
		DescriptionEN: p.DescriptionEN,
		Features:      p.Features,
		FeaturesEN:    p.FeaturesEN,
		PaymentLink:   p.PaymentLink,
	}
}

func toDomainProduct(id string, doc productDocument) domain.Product {
	product := domain.Product{
		ID:            doc.ID,
		Name:          doc.Name,
		NameEN:        doc.NameEN,
		Category:      doc.Category,
		CategoryEN:    doc.CategoryEN,
		Price:         doc.Price,
		ImageMain:     doc.ImageMain,
		ImageHover:    doc.ImageHover,
		ImageDetail2:  doc.ImageDetail2,
		ImageDetail3:  doc.ImageDetail3,
		Description:   doc.Description,
		DescriptionEN: doc.DescriptionEN,
		Features:      doc.Features,
		FeaturesEN:    doc.FeaturesEN,
		PaymentLink:   doc.PaymentLink,
	}
	// The document id is authoritative; legacy records may lack the id field.
	if parsed, err := strconv.Atoi(id); err == nil {
		product.ID = parsed
	}
	return product
}

func decodeProductDocs(docs []pfirestore.Document[productDocument]) []domain.Product {
	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, toDomainProduct(doc.ID, doc.Data))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

func patchFields(patch domain.ProductPatch) map[string]any {
	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.NameEN != nil {
		fields["name_en"] = *patch.NameEN
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.CategoryEN != nil {
		fields["category_en"] = *patch.CategoryEN
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.ImageMain != nil {
		fields["imageMain"] = *patch.ImageMain
	}
	if patch.ImageHover != nil {
		fields["imageHover"] = *patch.ImageHover
	}
	if patch.ImageDetail2 != nil {
		fields["imageDetail2"] = *patch.ImageDetail2
	}
	if patch.ImageDetail3 != nil {
		fields["imageDetail3"] = *patch.ImageDetail3
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.DescriptionEN != nil {
		fields["description_en"] = *patch.DescriptionEN
	}
	if patch.Features != nil {
		fields["features"] = patch.Features
	}
	if patch.FeaturesEN != nil {
		fields["features_en"] = patch.FeaturesEN
	}
	if patch.PaymentLink != nil {
		fields["paymentLink"] = *patch.PaymentLink
	}
	return fields
}

// Ensure interface compliance.
var _ repositories.ProductRepository = (*ProductRepository)(nil)
