package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/xiebiao/flatstore/internal/domain/product"
	"github.com/xiebiao/flatstore/internal/interface/http/dto"
	"github.com/xiebiao/flatstore/pkg/response"
)

// ProductHandler 商品HTTP处理器
type ProductHandler struct {
	productService product.Service
}

// NewProductHandler 创建商品处理器
func NewProductHandler(productService product.Service) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetAllProducts 商品列表
// @Summary      商品列表
// @Tags         Products
// @Produce      json
// @Success      200 {array} dto.ProductResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /api/Products/GetAllProducts [get]
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, lo.Map(products, func(p *product.Product, _ int) dto.ProductResponse {
		return toProductResponse(p)
	}))
}

// GetProduct 商品详情
// @Summary      商品详情
// @Tags         Products
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} dto.ProductResponse
// @Failure      404 {object} response.ErrorBody "Product not found"
// @Router       /api/Products/GetProduct/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	var uri dto.ProductURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	p, err := h.productService.GetProduct(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toProductResponse(p))
}
