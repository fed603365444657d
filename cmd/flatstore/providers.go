package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/application/event"
	"github.com/xiebiao/flatstore/internal/infrastructure/config"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
	"github.com/xiebiao/flatstore/pkg/mq"
)

// provideCatalogBackend catalog服务的集合存储
func provideCatalogBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Backend, func(), error) {
	return newBackend(ctx, cfg, cfg.Catalog, log)
}

// provideLibraryBackend library服务的集合存储
func provideLibraryBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Backend, func(), error) {
	return newBackend(ctx, cfg, cfg.Library, log)
}

// newBackend 按storage.driver选择文件或Redis
// redis驱动下两个服务共用key前缀，集合名不重叠
func newBackend(ctx context.Context, cfg *config.Config, svc config.ServiceConfig, log *zap.Logger) (store.Backend, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Warn("关闭Redis连接失败", zap.Error(err))
			}
		}
		guarded := store.NewGuardedBackend(
			store.NewRedisBackend(client, cfg.Storage.KeyPrefix),
			"redis",
			store.BreakerOptions{
				MaxFailures: cfg.Storage.Breaker.MaxFailures,
				OpenTimeout: cfg.Storage.Breaker.OpenTimeout,
				Interval:    cfg.Storage.Breaker.Interval,
			},
			log,
		)
		return guarded, cleanup, nil
	case config.DriverFile, "":
		log.Info("使用文件存储", zap.String("data_dir", svc.DataDir))
		return store.NewFileBackend(svc.DataDir), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// provideEventPublisher 领域事件发布器
// events.enabled为false时事件直接丢弃
func provideEventPublisher(cfg *config.Config, log *zap.Logger) (event.Publisher, func(), error) {
	if !cfg.Events.Enabled {
		return event.NewNopPublisher(), func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Warn("关闭事件发布器失败", zap.Error(err))
		}
	}
	return publisher, cleanup, nil
}
