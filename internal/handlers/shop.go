package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/cart"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/shop"
)

// ShopHandler serves one shop over HTTP. gin runs handlers concurrently, so
// every call into the shop holds mu.
type ShopHandler struct {
	mu     sync.Mutex
	shop   *shop.Shop
	logger *zap.Logger
}

func NewShopHandler(s *shop.Shop, logger *zap.Logger) *ShopHandler {
	return &ShopHandler{shop: s, logger: logger}
}

type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func newCartResponse(c *cart.ShoppingCart) CartResponse {
	items := c.Items()
	resp := CartResponse{
		Items: make([]CartItemResponse, 0, len(items)),
		Total: c.Total(),
	}
	for _, item := range items {
		p := item.Product()
		resp.Items = append(resp.Items, CartItemResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity(),
			Subtotal:  item.Subtotal(),
		})
	}
	return resp
}

// Register mounts the shop routes on r.
func (h *ShopHandler) Register(r gin.IRoutes) {
	r.GET("/health", h.HealthCheck)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddToCart)
	r.DELETE("/cart", h.ClearCart)
	r.POST("/checkout", h.Checkout)
}

// HealthCheck returns server status
func (h *ShopHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "shop-service"})
}

// ListProducts returns the catalog
func (h *ShopHandler) ListProducts(c *gin.Context) {
	h.mu.Lock()
	products := h.shop.Products()
	h.mu.Unlock()

	c.JSON(http.StatusOK, products)
}

// GetProduct returns one catalog product by its product id
func (h *ShopHandler) GetProduct(c *gin.Context) {
	h.mu.Lock()
	entry, err := h.shop.Lookup(c.Param("id"))
	h.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": entry.Product,
		"details": entry.Product.Details(),
	})
}

// GetCart returns the customer's cart
func (h *ShopHandler) GetCart(c *gin.Context) {
	h.mu.Lock()
	snapshot := h.shop.Cart()
	h.mu.Unlock()

	c.JSON(http.StatusOK, newCartResponse(snapshot))
}

// AddToCart adds a product to the customer's cart
func (h *ShopHandler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	err := h.shop.AddToCart(c.Request.Context(), req.ProductID, req.Quantity)
	snapshot := h.shop.Cart()
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newCartResponse(snapshot))
}

// ClearCart empties the customer's cart without placing an order
func (h *ShopHandler) ClearCart(c *gin.Context) {
	h.mu.Lock()
	h.shop.ClearCart()
	h.mu.Unlock()

	c.Status(http.StatusNoContent)
}

// Checkout places the order for the current cart
func (h *ShopHandler) Checkout(c *gin.Context) {
	h.mu.Lock()
	order, err := h.shop.Checkout(c.Request.Context())
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, shop.ErrCartEmpty) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("checkout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}
