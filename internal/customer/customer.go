package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/cart"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

// Customer owns exactly one shopping cart for its whole lifetime.
type Customer struct {
	ID      int
	Name    string
	Email   string
	Address string

	cart *cart.ShoppingCart
}

func New(id int, name, email, address string) *Customer {
	return &Customer{
		ID:      id,
		Name:    name,
		Email:   email,
		Address: address,
		cart:    cart.NewShoppingCart(),
	}
}

// AddToCart adds quantity of entry to the customer's cart.
func (c *Customer) AddToCart(entry catalog.Entry, quantity int) {
	c.cart.AddProduct(entry, quantity)
}

// ShoppingCart returns a copy of the customer's cart. Changes made to the copy
// do not reach the customer; each call reflects the current contents.
func (c *Customer) ShoppingCart() *cart.ShoppingCart {
	return c.cart.Clone()
}

// ClearCart empties the cart without placing an order.
func (c *Customer) ClearCart() {
	c.cart.Clear()
}

// PlaceOrder turns the cart into a receipt and empties the cart. It always
// succeeds, including on an empty cart.
func (c *Customer) PlaceOrder() models.Order {
	items := c.cart.Items()
	order := models.Order{
		ID:           uuid.NewString(),
		CustomerID:   c.ID,
		CustomerName: c.Name,
		TotalAmount:  c.cart.Total(),
		Items:        make([]models.OrderItem, 0, len(items)),
		PlacedAt:     time.Now().UTC(),
	}

	for _, item := range items {
		p := item.Product()
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   p.ProductID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		})
	}

	c.cart.Clear()
	return order
}
