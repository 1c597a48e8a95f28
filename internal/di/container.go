package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/petra-home/storefront/internal/platform/config"
	pfirestore "github.com/petra-home/storefront/internal/platform/firestore"
	fsrepos "github.com/petra-home/storefront/internal/repositories/firestore"
	"github.com/petra-home/storefront/internal/services"
)

// Services bundles the service layer a storefront session runs on.
type Services struct {
	Catalog   *services.CatalogStore
	Cart      *services.CartLedger
	Favorites *services.FavoriteSet
	Identity  *services.IdentityService
	Admin     *services.AdminService
}

// Container wires the Firestore provider, repositories and services for
// runtime use.
type Container struct {
	Config   config.Config
	Provider *pfirestore.Provider
	Services Services

	logger *zap.Logger
}

// NewContainer constructs the runtime dependencies. It performs no remote
// calls; the catalog store is initialised separately so a slow or failing
// backend cannot block construction.
func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	provider := pfirestore.NewProvider(cfg.Firestore)

	productRepo, err := fsrepos.NewProductRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("build product repository: %w", err)
	}
	categoryRepo, err := fsrepos.NewCategoryRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("build category repository: %w", err)
	}
	userRepo, err := fsrepos.NewUserRepository(provider)
	if err != nil {
		return nil, fmt.Errorf("build user repository: %w", err)
	}

	catalog, err := services.NewCatalogStore(services.CatalogStoreDeps{
		Products:   productRepo,
		Categories: categoryRepo,
		Logger:     logger.Named("catalog"),
	})
	if err != nil {
		return nil, fmt.Errorf("build catalog store: %w", err)
	}

	cart, err := services.NewCartLedger(catalog)
	if err != nil {
		return nil, fmt.Errorf("build cart ledger: %w", err)
	}

	favorites, err := services.NewFavoriteSet(userRepo, catalog)
	if err != nil {
		return nil, fmt.Errorf("build favorite set: %w", err)
	}

	identity, err := services.NewIdentityService(services.IdentityServiceDeps{
		Users:     userRepo,
		Favorites: favorites,
		Logger:    logger.Named("identity"),
		Now:       time.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("build identity service: %w", err)
	}

	admin, err := services.NewAdminService(services.AdminServiceDeps{
		Catalog: catalog,
		Session: identity,
		Logger:  logger.Named("admin"),
	})
	if err != nil {
		return nil, fmt.Errorf("build admin service: %w", err)
	}

	return &Container{
		Config:   cfg,
		Provider: provider,
		Services: Services{
			Catalog:   catalog,
			Cart:      cart,
			Favorites: favorites,
			Identity:  identity,
			Admin:     admin,
		},
		logger: logger,
	}, nil
}

// Close releases the Firestore client.
func (c *Container) Close(ctx context.Context) error {
	if c == nil || c.Provider == nil {
		return nil
	}
	if err := c.Provider.Close(ctx); err != nil && !errors.Is(err, pfirestore.ErrProviderClosed) {
		return err
	}
	return nil
}
