package services

import (
	"errors"
	"sync"

	"golang.org/x/text/language"

	domain "github.com/petra-home/storefront/internal/domain"
)

// ErrQuantityInvalid marks an attempt to add a non-positive quantity.
var ErrQuantityInvalid = errors.New("cart service: quantity must be positive")

// catalogReader is the slice of the catalog store the cart needs to resolve
// its lines for display.
type catalogReader interface {
	Product(id int) (domain.Product, error)
}

// CartLedger is the device-scoped cart. It stores bare (id, quantity) pairs
// and joins them against the live catalog only at display time, so a line
// whose product vanished stays in the ledger but drops out of the rendered
// cart. The ledger survives login and logout; only checkout clears it.
type CartLedger struct {
	catalog catalogReader

	mu    sync.Mutex
	lines []domain.CartLine
}

// NewCartLedger constructs an empty ledger over the given catalog view.
func NewCartLedger(catalog catalogReader) (*CartLedger, error) {
	if catalog == nil {
		return nil, errors.New("cart service: catalog reader is required")
	}
	return &CartLedger{catalog: catalog}, nil
}

// Add merges quantity into the existing line for the product, or appends a
// new line at the end. The product does not need to exist in the catalog.
func (c *CartLedger) Add(productID, quantity int) error {
	if quantity <= 0 {
		return ErrQuantityInvalid
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, domain.CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

// UpdateQuantity adjusts a line by delta, flooring at one. Adjusting an
// absent line is a no-op; removal is only ever explicit.
func (c *CartLedger) UpdateQuantity(productID, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range c.lines {
		if line.ProductID == productID {
			next := line.Quantity + delta
			if next < 1 {
				next = 1
			}
			c.lines[i].Quantity = next
			return
		}
	}
}

// Remove drops the line for the product if present.
func (c *CartLedger) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	c.lines = out
}

// Lines returns a copy of the raw ledger in insertion order, dangling ids
// included.
func (c *CartLedger) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartLine(nil), c.lines...)
}

// Size returns the total item count across all lines.
func (c *CartLedger) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// ResolveDisplay joins the ledger against the current catalog, localized for
// tag. Lines whose product no longer resolves are omitted, not deleted; the
// ledger itself is never mutated by a read.
func (c *CartLedger) ResolveDisplay(tag language.Tag) []domain.CartDisplayLine {
	lines := c.Lines()
	display := make([]domain.CartDisplayLine, 0, len(lines))
	for _, line := range lines {
		product, err := c.catalog.Product(line.ProductID)
		if err != nil {
			continue
		}
		localized := LocalizeProduct(product, tag)
		display = append(display, domain.CartDisplayLine{
			Product:   localized,
			Quantity:  line.Quantity,
			LineTotal: localized.Price * float64(line.Quantity),
		})
	}
	return display
}

// Subtotal sums price times quantity over resolvable lines only; a dangling
// line contributes nothing.
func (c *CartLedger) Subtotal() float64 {
	total := 0.0
	for _, line := range c.Lines() {
		product, err := c.catalog.Product(line.ProductID)
		if err != nil {
			continue
		}
		total += product.Price * float64(line.Quantity)
	}
	return total
}

// Checkout empties the ledger and returns the lines it held. This is the only
// bulk clear; identity changes never touch the cart.
func (c *CartLedger) Checkout() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.lines
	c.lines = nil
	return out
}
