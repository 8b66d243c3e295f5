package cart

import (
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

// CartItem is one line of a cart: a catalog entry and how many of it.
//
// Quantities are not validated. Zero and negative values are stored as given.
type CartItem struct {
	entry    catalog.Entry
	quantity int
}

func NewCartItem(entry catalog.Entry, quantity int) CartItem {
	return CartItem{entry: entry, quantity: quantity}
}

func (i CartItem) Handle() catalog.Handle   { return i.entry.Handle }
func (i CartItem) Product() models.Product { return i.entry.Product }
func (i CartItem) Quantity() int           { return i.quantity }

// AddQuantity adds amount (which may be negative) to the line quantity.
func (i *CartItem) AddQuantity(amount int) {
	i.quantity += amount
}

// Subtotal is price times quantity, unrounded.
func (i CartItem) Subtotal() float64 {
	return i.entry.Product.Price * float64(i.quantity)
}
