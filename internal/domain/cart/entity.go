package cart

import (
	"github.com/samber/lo"
)

// Item 购物车明细（商品ID + 数量）
type Item struct {
	ProductID int
	Quantity  int
}

// Cart 购物车实体
// 设计说明：
// 1. 每个用户最多一个购物车，以UserID为键
// 2. 同一商品只占一行，重复加入时累加数量
// 3. quantity>0只在写入时校验
type Cart struct {
	UserID int
	Items  []Item
}

// NewCart 创建空购物车
func NewCart(userID int) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []Item{},
	}
}

// AddItem 加入商品（领域行为）
// 业务规则：数量必须>0；已存在则累加，否则追加一行
func (c *Cart) AddItem(productID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if _, idx, ok := c.find(productID); ok {
		c.Items[idx].Quantity += quantity
		return nil
	}

	c.Items = append(c.Items, Item{ProductID: productID, Quantity: quantity})
	return nil
}

// UpdateQuantity 修改数量
// 业务规则：负数拒绝；0表示移除该行；否则直接替换
func (c *Cart) UpdateQuantity(productID, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	_, idx, ok := c.find(productID)
	if !ok {
		return ErrItemNotFound
	}

	if quantity == 0 {
		c.removeAt(idx)
		return nil
	}

	c.Items[idx].Quantity = quantity
	return nil
}

// RemoveItem 移除商品行
func (c *Cart) RemoveItem(productID int) error {
	_, idx, ok := c.find(productID)
	if !ok {
		return ErrItemNotFound
	}
	c.removeAt(idx)
	return nil
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) find(productID int) (Item, int, bool) {
	return lo.FindIndexOf(c.Items, func(item Item) bool {
		return item.ProductID == productID
	})
}

func (c *Cart) removeAt(idx int) {
	c.Items = append(c.Items[:idx:idx], c.Items[idx+1:]...)
}
