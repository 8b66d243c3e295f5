package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/shop"
)

const (
	choiceViewProducts = 1
	choiceAddToCart    = 2
	choiceViewCart     = 3
	choiceCheckout     = 4
	choiceExit         = 5
)

// Console is the menu-driven front end. Input is read as whitespace separated
// tokens, so "2 ABC1 3 n" on one line drives a whole add flow.
type Console struct {
	shop *shop.Shop
	in   *bufio.Scanner
	out  io.Writer
}

func New(s *shop.Shop, in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{shop: s, in: scanner, out: out}
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c.displayMenu()
		c.printf("Enter your choice: ")
		token, ok := c.next()
		if !ok {
			return c.in.Err()
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			c.printf("Invalid choice. Please try again.\n")
			continue
		}

		switch choice {
		case choiceViewProducts:
			c.displayProducts()
		case choiceAddToCart:
			if !c.addProducts(ctx) {
				return c.in.Err()
			}
		case choiceViewCart:
			c.displayShoppingCart()
		case choiceCheckout:
			if !c.checkout(ctx) {
				return c.in.Err()
			}
		case choiceExit:
			c.printf("Exiting...\n")
			return nil
		default:
			c.printf("Invalid choice. Please try again.\n")
		}
	}
}

// addProducts runs the add-to-cart prompt loop. It returns false when input
// ran out.
func (c *Console) addProducts(ctx context.Context) bool {
	for {
		c.printf("Enter the Product ID to add to cart: ")
		productID, ok := c.next()
		if !ok {
			return false
		}

		c.printf("Enter the quantity: ")
		token, ok := c.next()
		if !ok {
			return false
		}
		quantity, err := strconv.Atoi(token)
		if err != nil {
			c.printf("Invalid quantity.\n")
			continue
		}

		if err := c.shop.AddToCart(ctx, productID, quantity); err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.printf("Invalid Product ID.\n")
				continue
			}
			c.printf("Failed to add product: %v\n", err)
			continue
		}

		c.printf("Product added to cart. Do you want to add more products? (Y/N): ")
		yes, ok := c.confirm()
		if !ok {
			return false
		}
		if !yes {
			return true
		}
	}
}

// checkout returns false when input ran out.
func (c *Console) checkout(ctx context.Context) bool {
	cart := c.shop.Cart()
	if cart.IsEmpty() {
		c.printf("Your shopping cart is empty.\n")
		return true
	}

	c.printf("Total amount to pay: PHP%s\n", formatPrice(cart.Total()))
	c.printf("Do you want to proceed to checkout? (Y/N): ")
	yes, ok := c.confirm()
	if !ok {
		return false
	}
	if !yes {
		c.printf("Checkout canceled.\n")
		return true
	}

	if _, err := c.shop.Checkout(ctx); err != nil {
		if errors.Is(err, shop.ErrCartEmpty) {
			c.printf("Your shopping cart is empty.\n")
			return true
		}
		c.printf("Checkout failed: %v\n", err)
		return true
	}
	c.printf("Order placed successfully!\n")
	return true
}

func (c *Console) next() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// confirm reads a yes/no answer. Only the first character counts and it is
// compared case-insensitively to Y.
func (c *Console) confirm() (bool, bool) {
	token, ok := c.next()
	if !ok {
		return false, false
	}
	return strings.EqualFold(token[:1], "Y"), true
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
