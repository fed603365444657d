package product

import (
	apperrors "github.com/xiebiao/flatstore/pkg/errors"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "Product not found")
