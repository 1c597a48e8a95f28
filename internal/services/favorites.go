package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"

	domain "github.com/petra-home/storefront/internal/domain"
	"github.com/petra-home/storefront/internal/repositories"
)

var (
	// ErrLoginRequired marks favorite mutations attempted while signed out.
	ErrLoginRequired = errors.New("favorites service: login required")
	// ErrFavoritesUnavailable marks a favorite mutation whose remote write
	// failed; the in-memory set is left unchanged.
	ErrFavoritesUnavailable = errors.New("favorites service: remote store unavailable")
)

// FavoriteSet is the identity-scoped favorite list of the signed-in user. It
// stores bare product ids; membership is toggled remote-first, so the local
// set never shows a state the store refused. Logout clears it entirely, and
// the next login replaces it with whatever the account last persisted.
type FavoriteSet struct {
	users   repositories.UserRepository
	catalog catalogReader

	mu      sync.Mutex
	email   string
	persist bool
	ids     []int
}

// NewFavoriteSet constructs an empty, signed-out set.
func NewFavoriteSet(users repositories.UserRepository, catalog catalogReader) (*FavoriteSet, error) {
	if users == nil {
		return nil, errors.New("favorites service: user repository is required")
	}
	if catalog == nil {
		return nil, errors.New("favorites service: catalog reader is required")
	}
	return &FavoriteSet{users: users, catalog: catalog}, nil
}

// Reset binds the set to a signed-in account and replaces its contents with
// the account's persisted ids. persist is false for the built-in operator
// account, which has no stored record to write back to.
func (f *FavoriteSet) Reset(email string, persist bool, ids []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = email
	f.persist = persist
	f.ids = append([]int(nil), ids...)
}

// Clear unbinds the set on logout. Favorites follow the identity, not the
// device.
func (f *FavoriteSet) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = ""
	f.persist = false
	f.ids = nil
}

// Toggle flips membership for the product id and reports the new state. The
// whole updated set is persisted before the local set changes; if the write
// fails, membership stays as it was.
func (f *FavoriteSet) Toggle(ctx context.Context, productID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.email == "" {
		return false, ErrLoginRequired
	}

	next := make([]int, 0, len(f.ids)+1)
	added := true
	for _, id := range f.ids {
		if id == productID {
			added = false
			continue
		}
		next = append(next, id)
	}
	if added {
		next = append(next, productID)
	}

	if f.persist {
		if err := f.users.SaveFavorites(ctx, f.email, next); err != nil {
			return !added, fmt.Errorf("%w: %v", ErrFavoritesUnavailable, err)
		}
	}
	f.ids = next
	return added, nil
}

// IDs returns a copy of the favorite ids in toggle order, dangling ids
// included.
func (f *FavoriteSet) IDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.ids...)
}

// Contains reports membership for the product id.
func (f *FavoriteSet) Contains(productID int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// ResolveDisplay joins the set against the current catalog, localized for
// tag. Ids whose product no longer resolves are omitted, not removed; the
// stored set is never mutated by a read.
func (f *FavoriteSet) ResolveDisplay(tag language.Tag) []domain.Product {
	ids := f.IDs()
	display := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		product, err := f.catalog.Product(id)
		if err != nil {
			continue
		}
		display = append(display, LocalizeProduct(product, tag))
	}
	return display
}
