package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/flatstore/internal/application/order"
	"github.com/xiebiao/flatstore/internal/interface/http/dto"
	"github.com/xiebiao/flatstore/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	checkoutUseCase   *apporder.CheckoutUseCase
	listOrdersUseCase *apporder.ListUserOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	checkoutUseCase *apporder.CheckoutUseCase,
	listOrdersUseCase *apporder.ListUserOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		checkoutUseCase:   checkoutUseCase,
		listOrdersUseCase: listOrdersUseCase,
	}
}

// Checkout 结算
// @Summary      结算购物车
// @Description  购物车转为订单，成功后删除购物车
// @Tags         Orders
// @Produce      json
// @Param        userId path int true "用户ID"
// @Success      200 {object} apporder.CheckoutResponse
// @Failure      400 {object} response.ErrorBody "购物车为空 / 商品不存在"
// @Router       /api/Orders/Checkout/{userId} [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	resp, err := h.checkoutUseCase.Execute(c.Request.Context(), uri.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// GetUserOrders 用户订单列表
// @Summary      用户订单列表
// @Tags         Orders
// @Produce      json
// @Param        userId path int true "用户ID"
// @Success      200 {array} apporder.OrderResponse
// @Router       /api/Orders/GetUserOrders/{userId} [get]
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.InvalidParams(c, err)
		return
	}

	orders, err := h.listOrdersUseCase.Execute(c.Request.Context(), uri.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, orders)
}
