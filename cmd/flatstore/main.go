// flatstore 命令行入口
//
//	flatstore catalog   启动商品/购物车/订单服务（默认5079端口）
//	flatstore library   启动图书/读者服务（默认8000端口）
//	flatstore seed      初始化两个服务的数据集合
//	flatstore events    订阅并打印领域事件
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/infrastructure/config"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/jsonstore"
	"github.com/xiebiao/flatstore/pkg/logger"
	"github.com/xiebiao/flatstore/pkg/mq"
	"github.com/xiebiao/flatstore/pkg/tracing"
)

// shutdownTimeout 优雅关闭等待时间
const shutdownTimeout = 10 * time.Second

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "flatstore",
		Short:        "JSON文件存储的商城和图书馆HTTP服务",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认查找 ./config/config.yaml）")

	root.AddCommand(
		newServeCmd("catalog", "启动catalog服务", func(cfg *config.Config) config.ServiceConfig { return cfg.Catalog }, InitializeCatalog),
		newServeCmd("library", "启动library服务", func(cfg *config.Config) config.ServiceConfig { return cfg.Library }, InitializeLibrary),
		newSeedCmd(),
		newEventsCmd(),
	)
	return root
}

type injector func(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gin.Engine, func(), error)

func newServeCmd(name, short string, service func(*config.Config) config.ServiceConfig, initialize injector) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			svc := service(cfg)
			if port > 0 {
				svc.Port = port
			}
			log = log.With(zap.String("service", name))

			shutdownTracing, err := tracing.Init(cmd.Context(), tracing.Options{
				Enabled:     cfg.Tracing.Enabled,
				ServiceName: "flatstore-" + name,
				Endpoint:    cfg.Tracing.Endpoint,
				SampleRatio: cfg.Tracing.SampleRatio,
			})
			if err != nil {
				return fmt.Errorf("初始化追踪失败: %w", err)
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := shutdownTracing(ctx); err != nil {
					log.Warn("关闭追踪失败", zap.Error(err))
				}
			}()

			engine, cleanup, err := initialize(cmd.Context(), cfg, log)
			if err != nil {
				return fmt.Errorf("初始化%s服务失败: %w", name, err)
			}
			defer cleanup()

			return serve(svc.Addr(), engine, cfg.Server, log)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "监听端口（覆盖配置）")
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "创建缺失的数据集合并写入种子数据",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()

			catalogBackend, closeCatalog, err := provideCatalogBackend(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer closeCatalog()
			counts, err := jsonstore.EnsureCatalog(ctx, catalogBackend, log)
			if err != nil {
				return err
			}
			log.Info("catalog集合就绪", zap.Any("records", counts))

			libraryBackend, closeLibrary, err := provideLibraryBackend(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer closeLibrary()
			counts, err = jsonstore.EnsureLibrary(ctx, libraryBackend, log)
			if err != nil {
				return err
			}
			log.Info("library集合就绪", zap.Any("records", counts))
			return nil
		},
	}
}

// newEventsCmd 订阅交换机并逐条打印事件，用于排查
func newEventsCmd() *cobra.Command {
	var (
		keys  []string
		queue string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "订阅并打印领域事件",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			consumer, err := mq.NewConsumer(cfg.Events.URL, cfg.Events.Exchange, queue, keys, log)
			if err != nil {
				return err
			}
			defer func() { _ = consumer.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info("开始订阅事件",
				zap.String("exchange", cfg.Events.Exchange),
				zap.String("queue", consumer.Queue()),
				zap.Strings("keys", keys),
			)
			err = consumer.Consume(ctx, func(routingKey string, body []byte) error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", routingKey, body)
				return err
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&keys, "keys", "k", []string{"#"}, "绑定的routing key")
	cmd.Flags().StringVarP(&queue, "queue", "q", "", "队列名（为空时使用临时队列）")
	return cmd
}

// bootstrap 加载配置并创建日志
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	log, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	zap.ReplaceGlobals(log)
	return cfg, log, nil
}

// serve 启动HTTP服务，收到SIGINT/SIGTERM后优雅关闭
func serve(addr string, handler http.Handler, cfg config.ServerConfig, log *zap.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("服务启动", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("启动服务失败: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("正在关闭服务", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}
	log.Info("服务已退出")
	return nil
}
