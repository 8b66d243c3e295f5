package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/customer"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyOrderPlaced(ctx context.Context, order models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func newTestShop(opts ...Option) *Shop {
	cat := catalog.New(models.Product{ProductID: "ABC1", Name: "AirPods1stGen", Description: "First Generation", Price: 8000.00})
	return New(cat, customer.New(1, "John Doe", "johndoe@example.com", "123 Main St"), opts...)
}

func TestShop_Scenario(t *testing.T) {
	ctx := context.Background()
	s := newTestShop()

	require.NoError(t, s.AddToCart(ctx, "ABC1", 2))
	assert.Equal(t, 16000.00, s.Cart().Total())

	require.NoError(t, s.AddToCart(ctx, "ABC1", 3))
	items := s.Cart().Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity())
	assert.Equal(t, 40000.00, s.Cart().Total())

	err := s.AddToCart(ctx, "ZZZ", 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	items = s.Cart().Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity())
}

func TestShop_Products(t *testing.T) {
	s := New(catalog.Default(), customer.New(1, "n", "e", "a"))

	products := s.Products()
	require.Len(t, products, 5)
	assert.Equal(t, "ABC1", products[0].ProductID)
}

func TestShop_CheckoutEmptyCart(t *testing.T) {
	notifier := new(MockNotifier)
	s := newTestShop(WithNotifier(notifier))

	_, err := s.Checkout(context.Background())

	assert.ErrorIs(t, err, ErrCartEmpty)
	notifier.AssertNotCalled(t, "NotifyOrderPlaced", mock.Anything, mock.Anything)
}

func TestShop_CheckoutNotifies(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockNotifier)
	notifier.On("NotifyOrderPlaced", ctx, mock.MatchedBy(func(o models.Order) bool {
		return o.TotalAmount == 16000.00 && len(o.Items) == 1
	})).Return(nil)
	s := newTestShop(WithNotifier(notifier))

	require.NoError(t, s.AddToCart(ctx, "ABC1", 2))
	order, err := s.Checkout(ctx)

	require.NoError(t, err)
	assert.Equal(t, 16000.00, order.TotalAmount)
	assert.True(t, s.Cart().IsEmpty())
	notifier.AssertExpectations(t)
}

func TestShop_CheckoutSurvivesNotifierFailure(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockNotifier)
	notifier.On("NotifyOrderPlaced", ctx, mock.AnythingOfType("models.Order")).Return(errors.New("broker down"))
	s := newTestShop(WithNotifier(notifier))

	require.NoError(t, s.AddToCart(ctx, "ABC1", 1))
	order, err := s.Checkout(ctx)

	require.NoError(t, err)
	assert.Equal(t, 8000.00, order.TotalAmount)
	assert.True(t, s.Cart().IsEmpty())
	notifier.AssertExpectations(t)
}

func TestShop_PlaceOrderOnEmptyCartStillSucceeds(t *testing.T) {
	s := newTestShop()

	order := s.Customer().PlaceOrder()

	assert.Empty(t, order.Items)
	assert.True(t, s.Cart().IsEmpty())
}
