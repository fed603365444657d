package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestError_MapsStatus(t *testing.T) {
	w := perform(func(c *gin.Context) {
		Error(c, apperrors.New(apperrors.ErrCodeAlreadyBorrowed, "Book already borrowed"))
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.ErrCodeAlreadyBorrowed, body.Code)
	assert.Equal(t, "Book already borrowed", body.Detail)
}

func TestError_HidesInternalCause(t *testing.T) {
	w := perform(func(c *gin.Context) {
		Error(c, errors.New("open /data/books.json: permission denied"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "permission denied")
}

func TestSuccess_RawBody(t *testing.T) {
	w := perform(func(c *gin.Context) {
		Success(c, []int{1, 2})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[1,2]`, w.Body.String())
}
