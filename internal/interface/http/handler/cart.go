package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/flatstore/internal/domain/cart"
	"github.com/xiebiao/flatstore/internal/interface/http/dto"
	"github.com/xiebiao/flatstore/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	cartService cart.Service
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(cartService cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Description  用户没有购物车时返回空items
// @Tags         Cart
// @Produce      json
// @Param        userId path int true "用户ID"
// @Success      200 {object} dto.CartResponse
// @Router       /api/Cart/GetCart/{userId} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	userCart, err := h.cartService.GetCart(c.Request.Context(), uri.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCartResponse(userCart))
}

// AddToCart 加入购物车
// @Summary      加入购物车
// @Description  同一商品累加数量；不校验商品是否存在
// @Tags         Cart
// @Produce      json
// @Param        userId    path int true "用户ID"
// @Param        productId path int true "商品ID"
// @Param        qty       path int true "数量（>0）"
// @Success      200 {object} dto.CartMutationResponse
// @Failure      400 {object} response.ErrorBody "Quantity must be greater than 0"
// @Router       /api/Cart/AddToCart/{userId}/{productId}/{qty} [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var uri dto.CartQuantityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	userCart, err := h.cartService.AddItem(c.Request.Context(), uri.UserID, uri.ProductID, uri.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CartMutationResponse{
		Message: "Item added to cart successfully",
		Cart:    toCartResponse(userCart),
	})
}

// UpdateQuantity 修改数量
// @Summary      修改数量
// @Description  数量为0时移除该商品
// @Tags         Cart
// @Produce      json
// @Param        userId    path int true "用户ID"
// @Param        productId path int true "商品ID"
// @Param        qty       path int true "新数量（>=0）"
// @Success      200 {object} dto.CartMutationResponse
// @Failure      400 {object} response.ErrorBody "Quantity cannot be negative"
// @Failure      404 {object} response.ErrorBody "Cart not found for user / Item not found in cart"
// @Router       /api/Cart/UpdateQuantity/{userId}/{productId}/{qty} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var uri dto.CartQuantityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	userCart, err := h.cartService.UpdateQuantity(c.Request.Context(), uri.UserID, uri.ProductID, uri.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CartMutationResponse{
		Message: "Cart updated successfully",
		Cart:    toCartResponse(userCart),
	})
}

// RemoveFromCart 移除商品
// @Summary      移除商品
// @Tags         Cart
// @Produce      json
// @Param        userId    path int true "用户ID"
// @Param        productId path int true "商品ID"
// @Success      200 {object} dto.CartMutationResponse
// @Failure      404 {object} response.ErrorBody "Cart not found for user / Item not found in cart"
// @Router       /api/Cart/RemoveFromCart/{userId}/{productId} [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var uri dto.CartItemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	userCart, err := h.cartService.RemoveItem(c.Request.Context(), uri.UserID, uri.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CartMutationResponse{
		Message: "Item removed from cart successfully",
		Cart:    toCartResponse(userCart),
	})
}
