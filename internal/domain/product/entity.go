package product

// Product 商品实体
// 说明：商品创建后不可修改（没有更新接口），订单通过快照字段引用商品
type Product struct {
	ID          int
	Name        string
	Description string
	Category    string
	Price       float64
	ImageURL    string
}
