package cart

import (
	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartNotFound 用户没有购物车
	ErrCartNotFound = apperrors.New(apperrors.ErrCodeCartNotFound, "Cart not found for user")

	// ErrItemNotFound 购物车中没有该商品
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "Item not found in cart")

	// ErrInvalidQuantity 加入数量必须>0
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "Quantity must be greater than 0")

	// ErrNegativeQuantity 修改数量不能为负
	ErrNegativeQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "Quantity cannot be negative")
)
