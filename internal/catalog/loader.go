package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

type catalogFile struct {
	Products []models.Product `yaml:"products"`
}

// LoadFile builds a catalog from a YAML document of the form
//
//	products:
//	  - id: ABC1
//	    name: AirPods1stGen
//	    description: First Generation
//	    price: 8000
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return FromProducts(f.Products)
}

// FromProducts builds a catalog from a product listing, rejecting empty
// listings and repeated product ids.
func FromProducts(products []models.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}

	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if seen[p.ProductID] {
			return nil, fmt.Errorf("duplicate product id %q", p.ProductID)
		}
		seen[p.ProductID] = true
	}

	return New(products...), nil
}
