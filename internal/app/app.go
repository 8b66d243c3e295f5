package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/cache"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/catalog"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/config"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/customer"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/db"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/messaging"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/publisher"
	"github.com/prudhivi99/Distributed-Systems/minishop-go/internal/shop"
)

// App owns the shop and every connection opened to build it.
type App struct {
	Shop    *shop.Shop
	closers []func()
}

// Build loads the catalog, connects the optional order publisher and
// assembles the shop. Call Close when done, even after an error.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{}

	cat, err := a.loadCatalog(ctx, cfg, logger)
	if err != nil {
		return a, err
	}
	logger.Info("catalog loaded", zap.String("source", cfg.Catalog.Source), zap.Int("products", cat.Len()))

	opts := []shop.Option{shop.WithLogger(logger)}
	if cfg.RabbitMQ.Enabled {
		mq, err := messaging.NewRabbitMQ(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, logger)
		if err != nil {
			return a, err
		}
		a.closers = append(a.closers, mq.Close)

		pub, err := publisher.NewOrderPublisher(mq, cfg.RabbitMQ.Queue)
		if err != nil {
			return a, err
		}
		opts = append(opts, shop.WithNotifier(pub))
	}

	cust := customer.New(cfg.Customer.ID, cfg.Customer.Name, cfg.Customer.Email, cfg.Customer.Address)
	a.Shop = shop.New(cat, cust, opts...)
	return a, nil
}

func (a *App) loadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogBuiltin:
		return catalog.Default(), nil
	case config.CatalogFile:
		return catalog.LoadFile(cfg.Catalog.File)
	case config.CatalogPostgres:
		return a.loadPostgresCatalog(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func (a *App) loadPostgresCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	pg := cfg.Postgres
	database, err := db.NewPostgresDB(ctx, pg.Host, pg.Port, pg.User, pg.Password, pg.DBName, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() { database.Close() })

	var source db.ProductSource = db.NewProductRepository(database)
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.TTL, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { redisCache.Close() })
		source = db.NewCachedProductRepository(source, redisCache, logger)
	}

	products, err := source.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.FromProducts(products)
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
