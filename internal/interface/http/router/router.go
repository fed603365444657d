// Package router 组装两个服务的gin引擎
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/flatstore/docs"
	"github.com/xiebiao/flatstore/internal/infrastructure/config"
	"github.com/xiebiao/flatstore/internal/interface/http/handler"
	"github.com/xiebiao/flatstore/internal/interface/http/middleware"
)

// 服务名（metrics标签、swagger实例名）
const (
	CatalogService = "catalog"
	LibraryService = "library"
)

// newEngine 公共中间件和运维路由
func newEngine(cfg *config.Config, log *zap.Logger, service string) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Tracing(service),
		middleware.Logger(log.With(zap.String("service", service))),
		middleware.Metrics(service),
		middleware.CORS(cfg.CORS),
	)

	r.GET("/ping", handler.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(service)))

	return r
}

// NewCatalogRouter 商品/购物车/用户/订单服务
func NewCatalogRouter(
	cfg *config.Config,
	log *zap.Logger,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	authHandler *handler.AuthHandler,
	orderHandler *handler.OrderHandler,
) *gin.Engine {
	r := newEngine(cfg, log, CatalogService)

	api := r.Group("/api")
	{
		products := api.Group("/Products")
		{
			products.GET("/GetAllProducts", productHandler.GetAllProducts)
			products.GET("/GetProduct/:id", productHandler.GetProduct)
		}

		carts := api.Group("/Cart")
		{
			carts.GET("/GetCart/:userId", cartHandler.GetCart)
			carts.POST("/AddToCart/:userId/:productId/:qty", cartHandler.AddToCart)
			carts.PUT("/UpdateQuantity/:userId/:productId/:qty", cartHandler.UpdateQuantity)
			carts.DELETE("/RemoveFromCart/:userId/:productId", cartHandler.RemoveFromCart)
		}

		auth := api.Group("/Auth")
		{
			auth.GET("/Users", authHandler.Users)
			auth.POST("/Register", authHandler.Register)
			auth.POST("/Login", authHandler.Login)
		}

		orders := api.Group("/Orders")
		{
			orders.POST("/Checkout/:userId", orderHandler.Checkout)
			orders.GET("/GetUserOrders/:userId", orderHandler.GetUserOrders)
		}
	}

	return r
}

// NewLibraryRouter 图书/读者服务
func NewLibraryRouter(
	cfg *config.Config,
	log *zap.Logger,
	bookHandler *handler.BookHandler,
	readerHandler *handler.ReaderHandler,
) *gin.Engine {
	r := newEngine(cfg, log, LibraryService)

	r.GET("/", handler.LibraryRoot)

	books := r.Group("/books")
	{
		books.GET("/", bookHandler.ListBooks)
		books.POST("/", bookHandler.CreateBook)
		books.GET("/:code", bookHandler.GetBook)
		books.PUT("/:code", bookHandler.UpdateBook)
		books.DELETE("/:code", bookHandler.DeleteBook)
	}

	readers := r.Group("/readers")
	{
		readers.GET("/", readerHandler.ListReaders)
		readers.POST("/", readerHandler.CreateReader)
		readers.GET("/:ticket", readerHandler.GetReader)
		readers.PUT("/:ticket", readerHandler.UpdateReader)
		readers.DELETE("/:ticket", readerHandler.DeleteReader)
		readers.POST("/:ticket/borrow", readerHandler.Borrow)
		readers.POST("/:ticket/return", readerHandler.Return)
		readers.GET("/:ticket/current_books", readerHandler.CurrentBooks)
	}

	return r
}
