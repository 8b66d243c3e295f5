package models

import "fmt"

// Product is a catalog record. It is handed around by value and never mutated
// once the catalog is built.
type Product struct {
	ProductID   string  `json:"product_id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
}

// Details returns the labelled multi-line description of the product.
func (p Product) Details() string {
	return fmt.Sprintf("Product ID: %s\nName: %s\nDescription: %s\nPrice: $%f\n",
		p.ProductID, p.Name, p.Description, p.Price)
}
