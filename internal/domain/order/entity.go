package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending 新订单的初始状态（原样写入数据文件）
const StatusPending = "Ожидание"

// DateLayout 订单时间格式（本地时间）
const DateLayout = "2006-01-02 15:04:05"

// Item 订单明细
// 设计说明：Name/Price/ImageURL是下单时的商品快照，之后商品改价不影响历史订单
type Item struct {
	ProductID int
	Quantity  int
	Name      string
	Price     float64
	ImageURL  string
}

// Order 订单实体（聚合根）
type Order struct {
	ID            int
	UserID        int
	Items         []Item
	TotalPrice    float64
	TotalQuantity int
	OrderDate     string
	Status        string
}

// NewOrder 创建订单（工厂方法）
// 业务规则：
// 1. TotalPrice = Σ price×quantity（decimal计算，避免浮点累加误差）
// 2. TotalQuantity = Σ quantity
// 3. 初始状态为StatusPending
// ID由仓储分配
func NewOrder(userID int, items []Item, now time.Time) *Order {
	total := decimal.Zero
	quantity := 0
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
		quantity += item.Quantity
	}

	return &Order{
		UserID:        userID,
		Items:         items,
		TotalPrice:    total.InexactFloat64(),
		TotalQuantity: quantity,
		OrderDate:     now.Format(DateLayout),
		Status:        StatusPending,
	}
}
