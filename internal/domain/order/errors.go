package order

import (
	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrEmptyCart 购物车为空或不存在，不能结算
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeEmptyCart, "Cart is empty or does not exist for user")
)

// ErrUnknownProduct 购物车中引用了不存在的商品
func ErrUnknownProduct(productID int) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeUnknownProduct, "Product with ID %d not found.", productID)
}
