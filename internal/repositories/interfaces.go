package repositories

import (
	"context"

	domain "github.com/petra-home/storefront/internal/domain"
)

// RepositoryError wraps low-level persistence failures with the
// categorisation services use to translate them into their own sentinels.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// ProductRepository is the remote document source for catalog records.
type ProductRepository interface {
	// List fetches the full current product set, ordered by ascending id.
	List(ctx context.Context) ([]domain.Product, error)
	// Watch streams full-replace snapshots of the product collection. It
	// blocks until ctx is cancelled or the stream fails; every notification
	// delivers the entire collection ordered by ascending id.
	Watch(ctx context.Context, fn func([]domain.Product)) error
	// Set writes the full record under its id.
	Set(ctx context.Context, product domain.Product) error
	// Merge overlays only the patch's supplied fields onto the stored record.
	Merge(ctx context.Context, id int, patch domain.ProductPatch) error
	// Delete hard-deletes the record; ids are never reused.
	Delete(ctx context.Context, id int) error
	// SeedOnce writes the built-in product list exactly once per backing
	// store, guarded by an atomic marker document. It reports whether this
	// call performed the seeding.
	SeedOnce(ctx context.Context, products []domain.Product) (bool, error)
}

// CategoryRepository persists category keys and their display overrides.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Put(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, key string) error
}

// UserRecord is the stored user shape: the public projection plus the
// credential secret and persisted favorites, which never leave this layer
// except through the identity and favorites services.
type UserRecord struct {
	User         domain.User
	PasswordHash string
	Favorites    []int
}

// UserRepository persists user records keyed by lowercase email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (UserRecord, error)
	// Create inserts a new record; an existing email surfaces as a conflict.
	Create(ctx context.Context, record UserRecord) error
	// SaveFavorites overwrites the user's whole favorite set.
	SaveFavorites(ctx context.Context, email string, favorites []int) error
	// SaveAddresses overwrites the user's address book.
	SaveAddresses(ctx context.Context, email string, addresses []domain.Address) error
}
