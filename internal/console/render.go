package console

import "strconv"

func (c *Console) displayMenu() {
	c.printf("\nMenu:\n")
	c.printf("1. View Products\n")
	c.printf("2. Add Product to Cart\n")
	c.printf("3. View Shopping Cart\n")
	c.printf("4. Checkout\n")
	c.printf("5. Exit\n")
}

func (c *Console) displayProducts() {
	c.printf("\nProducts:\n")
	c.printf("%15s%20s%15s\n", "Product ID", "Name", "Price")
	c.printf("----------------------------------------\n")
	for _, p := range c.shop.Products() {
		c.printf("%15s%20s%15s\n", p.ProductID, p.Name, formatPrice(p.Price))
	}
}

func (c *Console) displayShoppingCart() {
	c.printf("\nShopping Cart:\n")
	c.printf("%15s%20s%15s%15s\n", "Product ID", "Name", "Price", "Quantity")
	c.printf("--------------------------------------------------------------------\n")
	for _, item := range c.shop.Cart().Items() {
		p := item.Product()
		c.printf("%15s%20s%15s%15d\n", p.ProductID, p.Name, formatPrice(p.Price), item.Quantity())
	}
}

// formatPrice prints at most six significant digits and drops trailing zeros,
// so 8000.00 shows as 8000.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
