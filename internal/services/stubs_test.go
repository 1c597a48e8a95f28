package services

import (
	"context"
	"errors"
	"testing"

	domain "github.com/petra-home/storefront/internal/domain"
	"github.com/petra-home/storefront/internal/repositories"
)

func strPtr(v string) *string {
	return &v
}

type stubProductRepository struct {
	listFunc   func(ctx context.Context) ([]domain.Product, error)
	watchFunc  func(ctx context.Context, fn func([]domain.Product)) error
	setFunc    func(ctx context.Context, product domain.Product) error
	mergeFunc  func(ctx context.Context, id int, patch domain.ProductPatch) error
	deleteFunc func(ctx context.Context, id int) error
	seedFunc   func(ctx context.Context, products []domain.Product) (bool, error)
}

func (s *stubProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx)
	}
	return nil, nil
}

func (s *stubProductRepository) Watch(ctx context.Context, fn func([]domain.Product)) error {
	if s.watchFunc != nil {
		return s.watchFunc(ctx, fn)
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubProductRepository) Set(ctx context.Context, product domain.Product) error {
	if s.setFunc != nil {
		return s.setFunc(ctx, product)
	}
	return nil
}

func (s *stubProductRepository) Merge(ctx context.Context, id int, patch domain.ProductPatch) error {
	if s.mergeFunc != nil {
		return s.mergeFunc(ctx, id, patch)
	}
	return nil
}

func (s *stubProductRepository) Delete(ctx context.Context, id int) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id)
	}
	return nil
}

func (s *stubProductRepository) SeedOnce(ctx context.Context, products []domain.Product) (bool, error) {
	if s.seedFunc != nil {
		return s.seedFunc(ctx, products)
	}
	return false, errors.New("not implemented")
}

type stubCategoryRepository struct {
	listFunc   func(ctx context.Context) ([]domain.Category, error)
	putFunc    func(ctx context.Context, category domain.Category) error
	deleteFunc func(ctx context.Context, key string) error
}

func (s *stubCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx)
	}
	return nil, nil
}

func (s *stubCategoryRepository) Put(ctx context.Context, category domain.Category) error {
	if s.putFunc != nil {
		return s.putFunc(ctx, category)
	}
	return nil
}

func (s *stubCategoryRepository) Delete(ctx context.Context, key string) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, key)
	}
	return nil
}

type stubUserRepository struct {
	findFunc          func(ctx context.Context, email string) (repositories.UserRecord, error)
	createFunc        func(ctx context.Context, record repositories.UserRecord) error
	saveFavoritesFunc func(ctx context.Context, email string, favorites []int) error
	saveAddressesFunc func(ctx context.Context, email string, addresses []domain.Address) error
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (repositories.UserRecord, error) {
	if s.findFunc != nil {
		return s.findFunc(ctx, email)
	}
	return repositories.UserRecord{}, errors.New("not implemented")
}

func (s *stubUserRepository) Create(ctx context.Context, record repositories.UserRecord) error {
	if s.createFunc != nil {
		return s.createFunc(ctx, record)
	}
	return nil
}

func (s *stubUserRepository) SaveFavorites(ctx context.Context, email string, favorites []int) error {
	if s.saveFavoritesFunc != nil {
		return s.saveFavoritesFunc(ctx, email, favorites)
	}
	return nil
}

func (s *stubUserRepository) SaveAddresses(ctx context.Context, email string, addresses []domain.Address) error {
	if s.saveAddressesFunc != nil {
		return s.saveAddressesFunc(ctx, email, addresses)
	}
	return nil
}

type stubCatalogReader struct {
	products map[int]domain.Product
}

func (s *stubCatalogReader) Product(id int) (domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return domain.Product{}, ErrProductNotFound
}

type stubSessionFavorites struct {
	resetEmail   string
	resetPersist bool
	resetIDs     []int
	resets       int
	clears       int
}

func (s *stubSessionFavorites) Reset(email string, persist bool, ids []int) {
	s.resetEmail = email
	s.resetPersist = persist
	s.resetIDs = ids
	s.resets++
}

func (s *stubSessionFavorites) Clear() {
	s.clears++
}

type stubAdminSession struct {
	user     domain.User
	signedIn bool
}

func (s *stubAdminSession) Current() (domain.User, bool) {
	return s.user, s.signedIn
}

type repositoryErrorStub struct {
	notFound    bool
	conflict    bool
	unavailable bool
}

func (e *repositoryErrorStub) Error() string {
	return "repository error"
}

func (e *repositoryErrorStub) IsNotFound() bool {
	return e.notFound
}

func (e *repositoryErrorStub) IsConflict() bool {
	return e.conflict
}

func (e *repositoryErrorStub) IsUnavailable() bool {
	return e.unavailable
}

// newTestCatalog builds an initialised store over fixed stub data.
func newTestCatalog(t *testing.T, products []domain.Product, categories []domain.Category) *CatalogStore {
	t.Helper()
	store, err := NewCatalogStore(CatalogStoreDeps{
		Products: &stubProductRepository{
			listFunc: func(ctx context.Context) ([]domain.Product, error) {
				return products, nil
			},
		},
		Categories: &stubCategoryRepository{
			listFunc: func(ctx context.Context) ([]domain.Category, error) {
				return categories, nil
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error constructing catalog store: %v", err)
	}
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error initialising catalog store: %v", err)
	}
	return store
}
