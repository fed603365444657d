package jsonstore

// 持久化记录结构（JSON字段名与已有数据文件一致）
// 领域实体不带json tag，由各仓储负责转换

// 集合名（文件名）
const (
	ProductsCollection = "products.json"
	CartsCollection    = "cart.json"
	UsersCollection    = "users.json"
	OrdersCollection   = "orders.json"
	BooksCollection    = "books.json"
	ReadersCollection  = "readers.json"
)

type ProductRecord struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

type CartItemRecord struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type CartRecord struct {
	UserID int              `json:"userId"`
	Items  []CartItemRecord `json:"items"`
}

type UserRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	Password  string `json:"password"`
}

type OrderItemRecord struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
}

type OrderRecord struct {
	ID            int               `json:"id"`
	UserID        int               `json:"userId"`
	Items         []OrderItemRecord `json:"items"`
	TotalPrice    float64           `json:"totalPrice"`
	TotalQuantity int               `json:"totalQuantity"`
	OrderDate     string            `json:"orderDate"`
	Status        string            `json:"status"`
}

type BookRecord struct {
	BookCode        string  `json:"book_code"`
	Author          string  `json:"author"`
	Title           string  `json:"title"`
	PublicationYear int     `json:"publication_year"`
	Price           float64 `json:"price"`
	IsNew           bool    `json:"is_new"`
	Annotation      string  `json:"annotation"`
}

type LoanRecord struct {
	BookCode   string `json:"book_code"`
	BorrowDate string `json:"borrow_date"`
	ReturnDate string `json:"return_date"`
}

type ReaderRecord struct {
	TicketNumber  string       `json:"reader_ticket_number"`
	FullName      string       `json:"full_name"`
	Address       string       `json:"address"`
	Phone         string       `json:"phone"`
	BorrowedBooks []LoanRecord `json:"borrowed_books"`
}
