package dto

// =========================================
// 路径参数
// =========================================

// ProductURI /api/Products/GetProduct/:id
type ProductURI struct {
	ID int `uri:"id"`
}

// UserURI /…/:userId
type UserURI struct {
	UserID int `uri:"userId"`
}

// CartItemURI /api/Cart/RemoveFromCart/:userId/:productId
type CartItemURI struct {
	UserID    int `uri:"userId"`
	ProductID int `uri:"productId"`
}

// CartQuantityURI /api/Cart/AddToCart/:userId/:productId/:qty
// 数量的取值范围由领域层校验（AddToCart要求>0，UpdateQuantity要求>=0）
type CartQuantityURI struct {
	UserID    int `uri:"userId"`
	ProductID int `uri:"productId"`
	Quantity  int `uri:"qty"`
}

// =========================================
// 商品
// =========================================

type ProductResponse struct {
	ID          int     `json:"id" example:"1"`
	Name        string  `json:"name" example:"MF DOOM - Mm..Food"`
	Description string  `json:"description" example:"A classic hip-hop album featuring the iconic MF DOOM."`
	Category    string  `json:"category" example:"Music"`
	Price       float64 `json:"price" example:"12.99"`
	ImageURL    string  `json:"imageUrl" example:"https://upload.wikimedia.org/wikipedia/en/3/3a/Mmfood.jpg"`
}

// =========================================
// 购物车
// =========================================

type CartItemResponse struct {
	ProductID int `json:"productId" example:"1"`
	Quantity  int `json:"quantity" example:"2"`
}

// CartResponse items始终是数组，不会是null
type CartResponse struct {
	UserID int                `json:"userId" example:"1"`
	Items  []CartItemResponse `json:"items"`
}

// CartMutationResponse 加入/修改/移除后的响应
type CartMutationResponse struct {
	Message string       `json:"message" example:"Item added to cart successfully"`
	Cart    CartResponse `json:"cart"`
}

// =========================================
// 用户
// =========================================

// RegisterRequest 注册请求
// id字段为兼容旧客户端而保留，服务端会重新分配
type RegisterRequest struct {
	ID        int    `json:"id" example:"0"`
	Name      string `json:"name" binding:"required" example:"Jane Doe"`
	Email     string `json:"email" binding:"required" example:"jane@example.com"`
	BirthDate string `json:"birthDate" binding:"required" example:"1995-05-05"`
	Password  string `json:"password" binding:"required" example:"secret"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"john@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UserResponse 用户完整记录（包含密码，与旧接口保持一致）
type UserResponse struct {
	ID        int    `json:"id" example:"1"`
	Name      string `json:"name" example:"John Doe"`
	Email     string `json:"email" example:"john@example.com"`
	BirthDate string `json:"birthDate" example:"1990-01-01"`
	Password  string `json:"password" example:"password123"`
}
