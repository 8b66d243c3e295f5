package shop

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/cart"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/customer"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

var ErrCartEmpty = errors.New("your shopping cart is empty")

// OrderNotifier is told about every placed order.
type OrderNotifier interface {
	NotifyOrderPlaced(ctx context.Context, order models.Order) error
}

// Shop is the process state: one catalog, one customer. It is built once at
// startup and handed to whichever front end drives it.
type Shop struct {
	catalog  *catalog.Catalog
	customer *customer.Customer
	notifier OrderNotifier
	logger   *zap.Logger
}

type Option func(*Shop)

func WithNotifier(n OrderNotifier) Option {
	return func(s *Shop) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Shop) { s.logger = l }
}

func New(cat *catalog.Catalog, cust *customer.Customer, opts ...Option) *Shop {
	s := &Shop{
		catalog:  cat,
		customer: cust,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Shop) Customer() *customer.Customer {
	return s.customer
}

// Products returns the catalog in display order.
func (s *Shop) Products() []models.Product {
	return s.catalog.Products()
}

func (s *Shop) Lookup(productID string) (catalog.Entry, error) {
	return s.catalog.Lookup(productID)
}

// AddToCart looks productID up in the catalog and adds quantity of it to the
// customer's cart. An unknown id returns catalog.ErrProductNotFound and leaves
// the cart as it was.
func (s *Shop) AddToCart(ctx context.Context, productID string, quantity int) error {
	entry, err := s.catalog.Lookup(productID)
	if err != nil {
		s.logger.Warn("product lookup failed", zap.String("product_id", productID), zap.Error(err))
		return err
	}

	s.customer.AddToCart(entry, quantity)
	s.logger.Info("added to cart",
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
	)
	return nil
}

// Cart returns a snapshot of the customer's cart.
func (s *Shop) Cart() *cart.ShoppingCart {
	return s.customer.ShoppingCart()
}

// ClearCart drops everything in the cart without placing an order.
func (s *Shop) ClearCart() {
	s.customer.ClearCart()
	s.logger.Info("cart cleared", zap.Int("customer_id", s.customer.ID))
}

// Checkout places the order for a non-empty cart. The order is final once the
// customer has placed it; a failing notifier is logged but does not undo it.
func (s *Shop) Checkout(ctx context.Context) (models.Order, error) {
	if s.customer.ShoppingCart().IsEmpty() {
		return models.Order{}, ErrCartEmpty
	}

	order := s.customer.PlaceOrder()
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("customer_id", order.CustomerID),
		zap.Float64("total", order.TotalAmount),
		zap.Int("items", len(order.Items)),
	)

	if s.notifier != nil {
		if err := s.notifier.NotifyOrderPlaced(ctx, order); err != nil {
			s.logger.Warn("failed to publish order event", zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	return order, nil
}
