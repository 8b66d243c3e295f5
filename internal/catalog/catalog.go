package catalog

import (
	"errors"
	"fmt"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// Handle identifies one catalog entry. Handles are comparable: two handles are
// equal only when they point at the same slot of the same catalog, regardless
// of what the products in those slots look like. The zero Handle is invalid.
type Handle struct {
	catalog *Catalog
	index   int
}

// Index returns the position of the entry in its catalog.
func (h Handle) Index() int { return h.index }

// Valid reports whether h was issued by a catalog.
func (h Handle) Valid() bool { return h.catalog != nil }

// Entry pairs a product with the handle it was issued under.
type Entry struct {
	Handle  Handle
	Product models.Product
}

// Catalog is the fixed list of purchasable products. It is built once at
// startup and never grows or shrinks, so any Handle it issues stays valid for
// the life of the process.
type Catalog struct {
	products []models.Product
}

func New(products ...models.Product) *Catalog {
	c := &Catalog{products: make([]models.Product, len(products))}
	copy(c.products, products)
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(
		models.Product{ProductID: "ABC1", Name: "AirPods1stGen", Description: "First Generation", Price: 8000.00},
		models.Product{ProductID: "ABC2", Name: "AirPods2ndGen", Description: "Second Generation", Price: 10000.00},
		models.Product{ProductID: "ABC3", Name: "AirPods3rdGen", Description: "Third Generation", Price: 12000.00},
		models.Product{ProductID: "ABCPRO", Name: "AirPodsPro", Description: "First Generation of Pro ", Price: 15000.00},
		models.Product{ProductID: "ABCMAX", Name: "AirPodsMax", Description: "First Generation of AirPodsMax ", Price: 30000.00},
	)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the catalog in catalog order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Entries returns every product together with its handle.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.products))
	for i, p := range c.products {
		out[i] = Entry{Handle: Handle{catalog: c, index: i}, Product: p}
	}
	return out
}

// Lookup finds the first product whose id matches productID exactly.
func (c *Catalog) Lookup(productID string) (Entry, error) {
	for i, p := range c.products {
		if p.ProductID == productID {
			return Entry{Handle: Handle{catalog: c, index: i}, Product: p}, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}

// Resolve returns the product behind h. It fails when h was not issued by c.
func (c *Catalog) Resolve(h Handle) (models.Product, bool) {
	if h.catalog != c || h.index < 0 || h.index >= len(c.products) {
		return models.Product{}, false
	}
	return c.products[h.index], true
}
