package services

import (
	"context"
	"errors"
	"testing"

	domain "github.com/petra-home/storefront/internal/domain"
)

func adminFixture(t *testing.T, session *stubAdminSession, products *stubProductRepository) (*AdminService, *CatalogStore) {
	t.Helper()
	if products.listFunc == nil {
		products.listFunc = func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: 5, Name: "MEVCUT", Category: "AYNA", Price: 100}}, nil
		}
	}
	store, err := NewCatalogStore(CatalogStoreDeps{
		Products: products,
		Categories: &stubCategoryRepository{
			listFunc: func(ctx context.Context) ([]domain.Category, error) {
				return []domain.Category{{Key: "AYNA", NameEN: "MIRRORS"}, {Key: "HALI", NameEN: "RUGS"}}, nil
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error constructing catalog store: %v", err)
	}
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	service, err := NewAdminService(AdminServiceDeps{Catalog: store, Session: session})
	if err != nil {
		t.Fatalf("unexpected error constructing admin service: %v", err)
	}
	return service, store
}

func validProductInput() ProductInput {
	return ProductInput{
		Name:         "YENİ ÜRÜN",
		Category:     "AYNA",
		Price:        1250,
		ImageMain:    "https://example.com/main.png",
		ImageHover:   "https://example.com/hover.png",
		ImageDetail2: "https://example.com/detail2.png",
		ImageDetail3: "https://example.com/detail3.png",
		Description:  "Yeni dekoratif ürün.",
	}
}

func TestAdminServiceRequiresAdminSession(t *testing.T) {
	cases := map[string]*stubAdminSession{
		"signed out": {},
		"plain user": {user: domain.User{Email: "ayse@example.com"}, signedIn: true},
	}
	for name, session := range cases {
		t.Run(name, func(t *testing.T) {
			service, _ := adminFixture(t, session, &stubProductRepository{
				setFunc: func(ctx context.Context, product domain.Product) error {
					t.Fatalf("unexpected remote write without admin rights")
					return nil
				},
			})

			if _, err := service.CreateProduct(context.Background(), validProductInput()); !errors.Is(err, ErrAdminRequired) {
				t.Fatalf("expected ErrAdminRequired, got %v", err)
			}
			if err := service.DeleteProduct(context.Background(), 5); !errors.Is(err, ErrAdminRequired) {
				t.Fatalf("expected ErrAdminRequired, got %v", err)
			}
			if err := service.AddCategory(context.Background(), "TABLO", "ARTWORKS"); !errors.Is(err, ErrAdminRequired) {
				t.Fatalf("expected ErrAdminRequired, got %v", err)
			}
		})
	}
}

func TestAdminServiceCreateProductValidatesBeforeRemote(t *testing.T) {
	session := &stubAdminSession{user: domain.User{Email: "admin@petrahome.com", Admin: true}, signedIn: true}
	service, _ := adminFixture(t, session, &stubProductRepository{
		setFunc: func(ctx context.Context, product domain.Product) error {
			t.Fatalf("unexpected remote write for invalid input")
			return nil
		},
	})

	cases := map[string]ProductInput{
		"missing name": func() ProductInput {
			in := validProductInput()
			in.Name = ""
			return in
		}(),
		"zero price": func() ProductInput {
			in := validProductInput()
			in.Price = 0
			return in
		}(),
		"negative price": func() ProductInput {
			in := validProductInput()
			in.Price = -10
			return in
		}(),
		"image not a url": func() ProductInput {
			in := validProductInput()
			in.ImageMain = "not-a-url"
			return in
		}(),
		"missing description": func() ProductInput {
			in := validProductInput()
			in.Description = ""
			return in
		}(),
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := service.CreateProduct(context.Background(), input); !errors.Is(err, ErrInvalidProduct) {
				t.Fatalf("expected ErrInvalidProduct, got %v", err)
			}
		})
	}
}

func TestAdminServiceCreateProductAssignsNextIDAndSanitises(t *testing.T) {
	session := &stubAdminSession{user: domain.User{Email: "admin@petrahome.com", Admin: true}, signedIn: true}
	var written domain.Product
	service, store := adminFixture(t, session, &stubProductRepository{
		setFunc: func(ctx context.Context, product domain.Product) error {
			written = product
			return nil
		},
	})

	input := validProductInput()
	input.Name = "YENİ <script>alert(1)</script>ÜRÜN"
	input.Category = "ayna"
	product, err := service.CreateProduct(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.ID != 6 {
		t.Fatalf("expected next id 6, got %d", product.ID)
	}
	if written.ID != 6 {
		t.Fatalf("expected written id 6, got %d", written.ID)
	}
	if written.Name != "YENİ ÜRÜN" {
		t.Fatalf("expected markup stripped, got %q", written.Name)
	}
	if written.Category != "AYNA" {
		t.Fatalf("expected category uppercased, got %q", written.Category)
	}

	if _, err := store.Product(6); err != nil {
		t.Fatalf("expected new product in local view: %v", err)
	}
}

func TestAdminServiceUpdateRejectsEmptyPatch(t *testing.T) {
	session := &stubAdminSession{user: domain.User{Email: "admin@petrahome.com", Admin: true}, signedIn: true}
	service, _ := adminFixture(t, session, &stubProductRepository{
		mergeFunc: func(ctx context.Context, id int, patch domain.ProductPatch) error {
			t.Fatalf("unexpected remote write for empty patch")
			return nil
		},
	})

	err := service.UpdateProduct(context.Background(), 5, domain.ProductPatch{})
	if !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}
}

func TestAdminServiceUpdateValidatesSuppliedFields(t *testing.T) {
	session := &stubAdminSession{user: domain.User{Email: "admin@petrahome.com", Admin: true}, signedIn: true}
	service, _ := adminFixture(t, session, &stubProductRepository{
		mergeFunc: func(ctx context.Context, id int, patch domain.ProductPatch) error {
			t.Fatalf("unexpected remote write for invalid patch")
			return nil
		},
	})

	bad := -5.0
	err := service.UpdateProduct(context.Background(), 5, domain.ProductPatch{Price: &bad})
	if !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}

	empty := ""
	err = service.UpdateProduct(context.Background(), 5, domain.ProductPatch{Name: &empty})
	if !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct for blanked name, got %v", err)
	}
}

func TestAdminServiceUpdateMergesValidPatch(t *testing.T) {
	session := &stubAdminSession{user: domain.User{Email: "admin@petrahome.com", Admin: true}, signedIn: true}
	var mergedID int
	service, store := adminFixture(t, session, &stubProductRepository{
		mergeFunc: func(ctx context.Context, id int, patch domain.ProductPatch) error {
			mergedID = id
			return nil
		},
	})

	price := 199.90
	if err := service.UpdateProduct(context.Background(), 5, domain.ProductPatch{Price: &price}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mergedID != 5 {
		t.Fatalf("expected merge against id 5, got %d", mergedID)
	}

	got, err := store.Product(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Price != 199.90 || got.Name != "MEVCUT" {
		t.Fatalf("expected merged record, got %+v", got)
	}
}

func TestAdminServiceCategoryLifecycle(t *testing.T) {
	session := &stubAdminSession{user: domain.User{Email: "admin@petrahome.com", Admin: true}, signedIn: true}
	var putKey string
	store, err := NewCatalogStore(CatalogStoreDeps{
		Products: &stubProductRepository{
			listFunc: func(ctx context.Context) ([]domain.Product, error) {
				return []domain.Product{{ID: 1, Name: "A", Category: "HALI", Price: 10}}, nil
			},
		},
		Categories: &stubCategoryRepository{
			listFunc: func(ctx context.Context) ([]domain.Category, error) {
				return []domain.Category{{Key: "HALI", NameEN: "RUGS"}, {Key: "AYNA"}}, nil
			},
			putFunc: func(ctx context.Context, category domain.Category) error {
				putKey = category.Key
				return nil
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error constructing catalog store: %v", err)
	}
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	service, err := NewAdminService(AdminServiceDeps{Catalog: store, Session: session})
	if err != nil {
		t.Fatalf("unexpected error constructing admin service: %v", err)
	}

	// Keys are uppercased in the base language before they reach the store.
	if err := service.AddCategory(context.Background(), "aydınlatma", "lighting"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if putKey != "AYDINLATMA" {
		t.Fatalf("expected Turkish uppercasing, got %q", putKey)
	}

	if err := service.AddCategory(context.Background(), "tümü", ""); !errors.Is(err, ErrCategoryReserved) {
		t.Fatalf("expected ErrCategoryReserved, got %v", err)
	}
	if err := service.AddCategory(context.Background(), "<b></b>", ""); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	if err := service.DeleteCategory(context.Background(), "HALI"); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
	if err := service.DeleteCategory(context.Background(), "AYNA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
