package db

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/cache"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/models"
)

// ProductSource lists the catalog products.
type ProductSource interface {
	GetAll(ctx context.Context) ([]models.Product, error)
}

// Cache is the subset of cache.RedisCache the repository needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
}

type CachedProductRepository struct {
	repo   ProductSource
	cache  Cache
	logger *zap.Logger
}

func NewCachedProductRepository(repo ProductSource, cache Cache, logger *zap.Logger) *CachedProductRepository {
	return &CachedProductRepository{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func allProductsKey() string {
	return "products:all"
}

// GetAll returns all products, reading through the cache
func (r *CachedProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cacheKey := allProductsKey()

	var products []models.Product
	err := r.cache.Get(ctx, cacheKey, &products)
	if err == nil {
		r.logger.Debug("📦 Cache HIT: all products", zap.Int("count", len(products)))
		return products, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		r.logger.Warn("⚠️ Cache error", zap.Error(err))
	}

	r.logger.Debug("💾 Cache MISS: all products - fetching from DB")
	products, err = r.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, products); err != nil {
		r.logger.Warn("⚠️ Failed to cache products", zap.Error(err))
	}

	return products, nil
}
