package cart

import "github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"

// ShoppingCart keeps items in insertion order with at most one item per
// catalog entry.
type ShoppingCart struct {
	items []CartItem
}

func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{}
}

// AddProduct merges quantity into the item for entry, or appends a new item.
// Items match on catalog handle only: two entries carrying identical product
// fields under different handles stay on separate lines.
func (c *ShoppingCart) AddProduct(entry catalog.Entry, quantity int) {
	for i := range c.items {
		if c.items[i].Handle() == entry.Handle {
			c.items[i].AddQuantity(quantity)
			return
		}
	}
	c.items = append(c.items, NewCartItem(entry, quantity))
}

// Items returns a snapshot of the cart lines.
func (c *ShoppingCart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ShoppingCart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

func (c *ShoppingCart) Len() int {
	return len(c.items)
}

func (c *ShoppingCart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *ShoppingCart) Clear() {
	c.items = nil
}

// Clone returns an independent copy of the cart.
func (c *ShoppingCart) Clone() *ShoppingCart {
	return &ShoppingCart{items: c.Items()}
}
