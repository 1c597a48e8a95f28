package services

import (
	"errors"
	"testing"

	domain "github.com/petra-home/storefront/internal/domain"
)

func cartCatalog() *stubCatalogReader {
	return &stubCatalogReader{products: map[int]domain.Product{
		1: {ID: 1, Name: "LINEN CALM JÜT HALI", NameEN: "LINEN CALM JUTE RUG", Price: 4899},
		5: {ID: 5, Name: "NOIR CALM DOĞAL MUM", NameEN: "NOIR CALM NATURAL CANDLE", Price: 599},
	}}
}

func TestCartLedgerAddMergesLines(t *testing.T) {
	cart, err := NewCartLedger(cartCatalog())
	if err != nil {
		t.Fatalf("unexpected error constructing cart: %v", err)
	}

	if err := cart.Add(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.Add(5, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.Add(1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := cart.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != 1 || lines[0].Quantity != 4 {
		t.Fatalf("expected merged line (1,4), got %+v", lines[0])
	}
	if cart.Size() != 6 {
		t.Fatalf("expected 6 items total, got %d", cart.Size())
	}
}

func TestCartLedgerRejectsNonPositiveAdd(t *testing.T) {
	cart, err := NewCartLedger(cartCatalog())
	if err != nil {
		t.Fatalf("unexpected error constructing cart: %v", err)
	}

	if err := cart.Add(1, 0); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
	if err := cart.Add(1, -2); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
	if len(cart.Lines()) != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestCartLedgerUpdateQuantityFloorsAtOne(t *testing.T) {
	cart, err := NewCartLedger(cartCatalog())
	if err != nil {
		t.Fatalf("unexpected error constructing cart: %v", err)
	}
	if err := cart.Add(1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart.UpdateQuantity(1, -5)
	lines := cart.Lines()
	if lines[0].Quantity != 1 {
		t.Fatalf("expected quantity floored at 1, got %d", lines[0].Quantity)
	}

	cart.UpdateQuantity(1, 2)
	if cart.Lines()[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", cart.Lines()[0].Quantity)
	}

	// Adjusting an absent line does nothing.
	cart.UpdateQuantity(99, 1)
	if len(cart.Lines()) != 1 {
		t.Fatalf("expected no phantom line, got %+v", cart.Lines())
	}
}

func TestCartLedgerRemove(t *testing.T) {
	cart, err := NewCartLedger(cartCatalog())
	if err != nil {
		t.Fatalf("unexpected error constructing cart: %v", err)
	}
	if err := cart.Add(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.Add(5, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart.Remove(1)
	lines := cart.Lines()
	if len(lines) != 1 || lines[0].ProductID != 5 {
		t.Fatalf("expected only product 5 left, got %+v", lines)
	}
}

func TestCartLedgerDisplayDropsDanglingLines(t *testing.T) {
	cart, err := NewCartLedger(cartCatalog())
	if err != nil {
		t.Fatalf("unexpected error constructing cart: %v", err)
	}
	if err := cart.Add(1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Product 99 does not exist in the catalog.
	if err := cart.Add(99, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	display := cart.ResolveDisplay(domain.LanguageOverlay)
	if len(display) != 1 {
		t.Fatalf("expected dangling line dropped from display, got %d lines", len(display))
	}
	if display[0].Product.Name != "LINEN CALM JUTE RUG" {
		t.Fatalf("expected localized name, got %q", display[0].Product.Name)
	}
	if display[0].LineTotal != 2*4899 {
		t.Fatalf("expected line total %v, got %v", 2*4899, display[0].LineTotal)
	}

	// The ledger itself keeps the dangling line.
	if len(cart.Lines()) != 2 {
		t.Fatalf("expected ledger untouched by display, got %+v", cart.Lines())
	}

	if got := cart.Subtotal(); got != 2*4899 {
		t.Fatalf("expected subtotal to skip dangling line, got %v", got)
	}
}

func TestCartLedgerCheckoutClears(t *testing.T) {
	cart, err := NewCartLedger(cartCatalog())
	if err != nil {
		t.Fatalf("unexpected error constructing cart: %v", err)
	}
	if err := cart.Add(1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := cart.Checkout()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected checkout to return the lines, got %+v", lines)
	}
	if len(cart.Lines()) != 0 {
		t.Fatalf("expected empty cart after checkout")
	}
	if cart.Subtotal() != 0 {
		t.Fatalf("expected zero subtotal after checkout")
	}
}
