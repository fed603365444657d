//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改后运行 `go generate ./cmd/flatstore` 重新生成wire_gen.go

package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	applibrary "github.com/xiebiao/flatstore/internal/application/library"
	apporder "github.com/xiebiao/flatstore/internal/application/order"
	appuser "github.com/xiebiao/flatstore/internal/application/user"
	"github.com/xiebiao/flatstore/internal/domain/book"
	"github.com/xiebiao/flatstore/internal/domain/cart"
	"github.com/xiebiao/flatstore/internal/domain/product"
	"github.com/xiebiao/flatstore/internal/domain/reader"
	"github.com/xiebiao/flatstore/internal/domain/user"
	"github.com/xiebiao/flatstore/internal/infrastructure/config"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/jsonstore"
	"github.com/xiebiao/flatstore/internal/interface/http/handler"
	"github.com/xiebiao/flatstore/internal/interface/http/router"
)

// ========================================
// catalog服务
// ========================================

var catalogRepositorySet = wire.NewSet(
	jsonstore.NewProductRepository,
	jsonstore.NewCartRepository,
	jsonstore.NewUserRepository,
	jsonstore.NewOrderRepository,
)

var catalogDomainSet = wire.NewSet(
	product.NewService,
	cart.NewService,
	user.NewService,
)

var catalogApplicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	apporder.NewCheckoutUseCase,
	apporder.NewListUserOrdersUseCase,
)

var catalogHandlerSet = wire.NewSet(
	handler.NewProductHandler,
	handler.NewCartHandler,
	handler.NewAuthHandler,
	handler.NewOrderHandler,
)

// InitializeCatalog 组装catalog服务
// cleanup关闭存储连接和事件发布器
func InitializeCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		provideCatalogBackend,
		provideEventPublisher,
		catalogRepositorySet,
		catalogDomainSet,
		catalogApplicationSet,
		catalogHandlerSet,
		router.NewCatalogRouter,
	)
	return nil, nil, nil
}

// ========================================
// library服务
// ========================================

var libraryRepositorySet = wire.NewSet(
	jsonstore.NewBookRepository,
	jsonstore.NewReaderRepository,
)

var libraryDomainSet = wire.NewSet(
	book.NewService,
	reader.NewService,
)

var libraryApplicationSet = wire.NewSet(
	applibrary.NewBorrowBookUseCase,
	applibrary.NewReturnBookUseCase,
	applibrary.NewCurrentBooksUseCase,
	applibrary.NewDeleteBookUseCase,
)

var libraryHandlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewReaderHandler,
)

// InitializeLibrary 组装library服务
func InitializeLibrary(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		provideLibraryBackend,
		provideEventPublisher,
		libraryRepositorySet,
		libraryDomainSet,
		libraryApplicationSet,
		libraryHandlerSet,
		router.NewLibraryRouter,
	)
	return nil, nil, nil
}
