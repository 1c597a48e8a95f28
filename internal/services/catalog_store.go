package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	domain "github.com/petra-home/storefront/internal/domain"
	"github.com/petra-home/storefront/internal/repositories"
)

var (
	// ErrCatalogUnavailable marks a mutation the remote store could not take
	// because it was unreachable.
	ErrCatalogUnavailable = errors.New("catalog service: remote store unavailable")
	// ErrProductNotFound marks lookups and mutations against an unknown id.
	ErrProductNotFound = errors.New("catalog service: product not found")
	// ErrCategoryExists marks an attempt to add a category key twice.
	ErrCategoryExists = errors.New("catalog service: category already exists")
	// ErrCategoryNotFound marks mutations against an unknown category key.
	ErrCategoryNotFound = errors.New("catalog service: category not found")
	// ErrCategoryReserved marks mutations against the sentinel key.
	ErrCategoryReserved = errors.New("catalog service: category name is reserved")
	// ErrCategoryInUse marks a deletion blocked by products still referencing
	// the category.
	ErrCategoryInUse = errors.New("catalog service: category still referenced by products")
)

// CatalogStoreDeps wires the catalog store to its collaborators.
type CatalogStoreDeps struct {
	Products   repositories.ProductRepository
	Categories repositories.CategoryRepository
	Logger     *zap.Logger
}

// CatalogStore holds the in-memory view of the remote catalog and brokers all
// reads and mutations against it. Reads are always served locally; mutations
// go to the remote store first and touch the local view only on success.
type CatalogStore struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	logger     *zap.Logger

	mu           sync.RWMutex
	catalog      []domain.Product
	categoryList []domain.Category
	maxID        int
	disconnected bool
	live         bool

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewCatalogStore constructs the store. It performs no remote calls; call
// Init before serving reads.
func NewCatalogStore(deps CatalogStoreDeps) (*CatalogStore, error) {
	if deps.Products == nil {
		return nil, errors.New("catalog service: product repository is required")
	}
	if deps.Categories == nil {
		return nil, errors.New("catalog service: category repository is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogStore{
		products:   deps.Products,
		categories: deps.Categories,
		logger:     logger,
		subs:       map[int]func(){},
	}, nil
}

// Init loads the remote catalog, seeding the built-in products when the store
// is empty. A failed load does not fail the session: reads fall back to the
// built-in catalog and the store reports disconnected, while mutations keep
// going to the remote store and surface its errors.
func (s *CatalogStore) Init(ctx context.Context) error {
	products, err := s.products.List(ctx)
	if err != nil {
		s.logger.Warn("catalog load failed, serving built-in fallback", zap.Error(err))
		s.replace(builtinProducts(), builtinCategories(), true)
		return nil
	}

	if len(products) == 0 {
		seeded, err := s.products.SeedOnce(ctx, builtinProducts())
		if err != nil {
			s.logger.Warn("catalog seed failed, serving built-in fallback", zap.Error(err))
			s.replace(builtinProducts(), builtinCategories(), true)
			return nil
		}
		if seeded {
			s.logger.Info("seeded built-in catalog", zap.Int("products", len(builtinProducts())))
			products = builtinProducts()
		} else {
			// Another session won the seed race; reload its result.
			products, err = s.products.List(ctx)
			if err != nil {
				s.logger.Warn("catalog reload failed, serving built-in fallback", zap.Error(err))
				s.replace(builtinProducts(), builtinCategories(), true)
				return nil
			}
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil || len(categories) == 0 {
		if err != nil {
			s.logger.Warn("category load failed, using defaults", zap.Error(err))
		}
		categories = builtinCategories()
	}

	s.replace(products, categories, false)
	s.logger.Info("catalog ready",
		zap.Int("products", len(products)),
		zap.Int("categories", len(categories)))
	return nil
}

// Watch subscribes to remote snapshots and replaces the local view on every
// notification. It blocks until ctx is cancelled or the stream fails; while
// it runs, successful mutations rely on the stream instead of patching the
// local view.
func (s *CatalogStore) Watch(ctx context.Context) error {
	s.mu.Lock()
	s.live = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.live = false
		s.mu.Unlock()
	}()

	return s.products.Watch(ctx, func(products []domain.Product) {
		s.mu.Lock()
		s.catalog = cloneProducts(products)
		s.bumpMaxLocked()
		s.disconnected = false
		s.mu.Unlock()
		s.logger.Debug("catalog snapshot applied", zap.Int("products", len(products)))
		s.notify()
	})
}

// Snapshot returns a copy of the full raw catalog ordered by ascending id.
func (s *CatalogStore) Snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.catalog)
}

// Product returns the raw record for id.
func (s *CatalogStore) Product(id int) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.catalog {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Categories returns a copy of the category table sorted by key. The sentinel
// key is never part of it.
func (s *CatalogStore) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.categoryList...)
}

// Disconnected reports whether the store serves the built-in fallback because
// the remote load failed.
func (s *CatalogStore) Disconnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disconnected
}

// NextProductID returns one past the highest id ever observed. The high-water
// mark never drops, so ids of deleted products are not handed out again.
func (s *CatalogStore) NextProductID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxID + 1
}

// Subscribe registers fn to run after every change to the local view. The
// returned cancel func unregisters it.
func (s *CatalogStore) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// CreateProduct writes a new record to the remote store. The local view is
// patched only when no live stream is running; on failure it stays untouched.
func (s *CatalogStore) CreateProduct(ctx context.Context, product domain.Product) error {
	if err := s.products.Set(ctx, product); err != nil {
		return translateCatalogError(err, ErrProductNotFound)
	}
	s.applyLocal(func() {
		s.catalog = upsertProduct(s.catalog, product)
	})
	return nil
}

// UpdateProduct merges the patch into the stored record. Unsupplied fields
// keep their remote value even when another session changed them since this
// session last read the record.
func (s *CatalogStore) UpdateProduct(ctx context.Context, id int, patch domain.ProductPatch) error {
	base, err := s.Product(id)
	if err != nil {
		return err
	}
	if patch.IsZero() {
		return nil
	}
	if err := s.products.Merge(ctx, id, patch); err != nil {
		return translateCatalogError(err, ErrProductNotFound)
	}
	s.applyLocal(func() {
		s.catalog = upsertProduct(s.catalog, patch.ApplyTo(base))
	})
	return nil
}

// DeleteProduct hard-deletes the record. Carts and favorites referencing the
// id are left alone; display joins drop the dangling reference.
func (s *CatalogStore) DeleteProduct(ctx context.Context, id int) error {
	if _, err := s.Product(id); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return translateCatalogError(err, ErrProductNotFound)
	}
	s.applyLocal(func() {
		out := s.catalog[:0]
		for _, p := range s.catalog {
			if p.ID != id {
				out = append(out, p)
			}
		}
		s.catalog = out
	})
	return nil
}

// AddCategory registers a new category key. The sentinel key and existing
// keys are rejected before any remote call.
func (s *CatalogStore) AddCategory(ctx context.Context, category domain.Category) error {
	if category.Key == domain.CategoryAll {
		return ErrCategoryReserved
	}
	s.mu.RLock()
	for _, c := range s.categoryList {
		if c.Key == category.Key {
			s.mu.RUnlock()
			return ErrCategoryExists
		}
	}
	s.mu.RUnlock()

	if err := s.categories.Put(ctx, category); err != nil {
		return translateCatalogError(err, ErrCategoryNotFound)
	}
	s.mu.Lock()
	s.categoryList = append(s.categoryList, category)
	sort.Slice(s.categoryList, func(i, j int) bool { return s.categoryList[i].Key < s.categoryList[j].Key })
	s.mu.Unlock()
	s.notify()
	return nil
}

// DeleteCategory removes a category key. Deletion is refused while any
// product in the current snapshot still references the key, so the catalog
// never shows products under a vanished category.
func (s *CatalogStore) DeleteCategory(ctx context.Context, key string) error {
	if key == domain.CategoryAll {
		return ErrCategoryReserved
	}

	s.mu.RLock()
	known := false
	for _, c := range s.categoryList {
		if c.Key == key {
			known = true
			break
		}
	}
	inUse := false
	for _, p := range s.catalog {
		if p.Category == key {
			inUse = true
			break
		}
	}
	s.mu.RUnlock()

	if !known {
		return ErrCategoryNotFound
	}
	if inUse {
		return ErrCategoryInUse
	}

	if err := s.categories.Delete(ctx, key); err != nil {
		return translateCatalogError(err, ErrCategoryNotFound)
	}
	s.mu.Lock()
	out := s.categoryList[:0]
	for _, c := range s.categoryList {
		if c.Key != key {
			out = append(out, c)
		}
	}
	s.categoryList = out
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *CatalogStore) replace(products []domain.Product, categories []domain.Category, disconnected bool) {
	s.mu.Lock()
	s.catalog = cloneProducts(products)
	s.bumpMaxLocked()
	s.categoryList = append([]domain.Category(nil), categories...)
	sort.Slice(s.categoryList, func(i, j int) bool { return s.categoryList[i].Key < s.categoryList[j].Key })
	s.disconnected = disconnected
	s.mu.Unlock()
	s.notify()
}

// applyLocal patches the local view after a confirmed remote write, but only
// in polling mode. A running live stream delivers the authoritative state by
// itself and a local patch would race it.
func (s *CatalogStore) applyLocal(mutate func()) {
	s.mu.Lock()
	if s.live {
		s.mu.Unlock()
		return
	}
	mutate()
	s.bumpMaxLocked()
	s.mu.Unlock()
	s.notify()
}

func (s *CatalogStore) bumpMaxLocked() {
	for _, p := range s.catalog {
		if p.ID > s.maxID {
			s.maxID = p.ID
		}
	}
}

func (s *CatalogStore) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func cloneProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.Clone())
	}
	return out
}

func upsertProduct(catalog []domain.Product, product domain.Product) []domain.Product {
	for i, p := range catalog {
		if p.ID == product.ID {
			catalog[i] = product
			return catalog
		}
	}
	catalog = append(catalog, product)
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].ID < catalog[j].ID })
	return catalog
}

func translateCatalogError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound():
			return notFound
		case repoErr.IsUnavailable():
			return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
	}
	return err
}
