package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"

	domain "github.com/petra-home/storefront/internal/domain"
	pfirestore "github.com/petra-home/storefront/internal/platform/firestore"
	"github.com/petra-home/storefront/internal/repositories"
)

const categoryCollection = "categories"

// CategoryRepository persists categories keyed by their base-language name.
type CategoryRepository struct {
	coll *pfirestore.Collection[categoryDocument]
}

// NewCategoryRepository constructs a Firestore-backed category repository.
func NewCategoryRepository(provider *pfirestore.Provider) (*CategoryRepository, error) {
	if provider == nil {
		return nil, errors.New("category repository requires firestore provider")
	}
	return &CategoryRepository{
		coll: pfirestore.NewCollection[categoryDocument](provider, categoryCollection, nil),
	}, nil
}

// List returns all categories sorted by key.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if r == nil || r.coll == nil {
		return nil, errors.New("category repository not initialised")
	}
	docs, err := r.coll.Query(ctx, nil)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, domain.Category{Key: doc.ID, NameEN: doc.Data.NameEN})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Key < categories[j].Key })
	return categories, nil
}

// Put upserts a category under its base-language key.
func (r *CategoryRepository) Put(ctx context.Context, category domain.Category) error {
	if r == nil || r.coll == nil {
		return errors.New("category repository not initialised")
	}
	key := strings.TrimSpace(category.Key)
	if key == "" {
		return errors.New("category repository: key is required")
	}
	return r.coll.Set(ctx, key, categoryDocument{Name: key, NameEN: strings.TrimSpace(category.NameEN)})
}

// Delete removes the category document by key.
func (r *CategoryRepository) Delete(ctx context.Context, key string) error {
	if r == nil || r.coll == nil {
		return errors.New("category repository not initialised")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("category repository: key is required")
	}
	return r.coll.Delete(ctx, key)
}

type categoryDocument struct {
	Name   string `firestore:"name"`
	NameEN string `firestore:"name_en,omitempty"`
}

// Ensure interface compliance.
var _ repositories.CategoryRepository = (*CategoryRepository)(nil)
