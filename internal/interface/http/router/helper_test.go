package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/application/event"
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
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
	"github.com/xiebiao/flatstore/internal/interface/http/handler"
)

// ErrorBody 错误响应
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		CORS: config.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		},
	}
}

// newCatalogServer 数据目录为临时目录的catalog引擎
func newCatalogServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	backend := store.NewFileBackend(dir)
	log := zap.NewNop()

	productRepo := jsonstore.NewProductRepository(backend, log)
	cartRepo := jsonstore.NewCartRepository(backend, log)
	userRepo := jsonstore.NewUserRepository(backend, log)
	orderRepo := jsonstore.NewOrderRepository(backend, log)

	userService := user.NewService(userRepo)

	r := NewCatalogRouter(testConfig(), log,
		handler.NewProductHandler(product.NewService(productRepo)),
		handler.NewCartHandler(cart.NewService(cartRepo)),
		handler.NewAuthHandler(userService, appuser.NewRegisterUseCase(userService), appuser.NewLoginUseCase(userService)),
		handler.NewOrderHandler(
			apporder.NewCheckoutUseCase(cartRepo, productRepo, orderRepo, event.NewNopPublisher(), log),
			apporder.NewListUserOrdersUseCase(orderRepo),
		),
	)
	return r, dir
}

// newLibraryServer 数据目录为临时目录的library引擎
func newLibraryServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	backend := store.NewFileBackend(dir)
	log := zap.NewNop()

	bookRepo := jsonstore.NewBookRepository(backend, log)
	readerRepo := jsonstore.NewReaderRepository(backend, log)

	r := NewLibraryRouter(testConfig(), log,
		handler.NewBookHandler(book.NewService(bookRepo), applibrary.NewDeleteBookUseCase(bookRepo, readerRepo)),
		handler.NewReaderHandler(
			reader.NewService(readerRepo),
			applibrary.NewBorrowBookUseCase(readerRepo, bookRepo, event.NewNopPublisher(), log),
			applibrary.NewReturnBookUseCase(readerRepo, event.NewNopPublisher(), log),
			applibrary.NewCurrentBooksUseCase(readerRepo, bookRepo),
		),
	)
	return r, dir
}

// doRequest 发送请求，body为nil时不带请求体
func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// parseBody 解析响应体
func parseBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "响应体: %s", w.Body.String())
}

// requireError 断言错误状态码和响应结构
func requireError(t *testing.T, w *httptest.ResponseRecorder, status int) ErrorBody {
	t.Helper()
	require.Equal(t, status, w.Code, "响应体: %s", w.Body.String())

	var body ErrorBody
	parseBody(t, w, &body)
	require.Equal(t, status, body.Code/100)
	require.NotEmpty(t, body.Message)
	require.Equal(t, body.Message, body.Detail)
	return body
}
