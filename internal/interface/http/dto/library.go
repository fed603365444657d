package dto

// BookURI /books/:code
type BookURI struct {
	Code string `uri:"code" binding:"required"`
}

// ReaderURI /readers/:ticket
type ReaderURI struct {
	Ticket string `uri:"ticket" binding:"required"`
}

// =========================================
// 图书
// =========================================

// BookRequest 新建/更新图书
// 更新时book_code必须与路径一致
type BookRequest struct {
	BookCode        string  `json:"book_code" binding:"required" example:"B001"`
	Author          string  `json:"author" binding:"required" example:"Михаил Булгаков"`
	Title           string  `json:"title" binding:"required" example:"Мастер и Маргарита"`
	PublicationYear int     `json:"publication_year" example:"1967"`
	Price           float64 `json:"price" binding:"min=0" example:"450"`
	IsNew           bool    `json:"is_new" example:"false"`
	Annotation      string  `json:"annotation" example:"Роман о визите дьявола в Москву"`
}

type BookResponse struct {
	BookCode        string  `json:"book_code" example:"B001"`
	Author          string  `json:"author" example:"Михаил Булгаков"`
	Title           string  `json:"title" example:"Мастер и Маргарита"`
	PublicationYear int     `json:"publication_year" example:"1967"`
	Price           float64 `json:"price" example:"450"`
	IsNew           bool    `json:"is_new" example:"false"`
	Annotation      string  `json:"annotation" example:"Роман о визите дьявола в Москву"`
}

// =========================================
// 读者
// =========================================

type LoanResponse struct {
	BookCode   string `json:"book_code" example:"B001"`
	BorrowDate string `json:"borrow_date" example:"2024-01-01"`
	ReturnDate string `json:"return_date" example:"2024-01-15"`
}

// ReaderRequest 新建/更新读者
// borrowed_books会被忽略：只能通过借书/还书接口修改
type ReaderRequest struct {
	TicketNumber  string         `json:"reader_ticket_number" binding:"required" example:"R001"`
	FullName      string         `json:"full_name" binding:"required" example:"Иван Петров"`
	Address       string         `json:"address" example:"Москва, ул. Ленина, 1"`
	Phone         string         `json:"phone" example:"+7 900 000-00-01"`
	BorrowedBooks []LoanResponse `json:"borrowed_books"`
}

type ReaderResponse struct {
	TicketNumber  string         `json:"reader_ticket_number" example:"R001"`
	FullName      string         `json:"full_name" example:"Иван Петров"`
	Address       string         `json:"address" example:"Москва, ул. Ленина, 1"`
	Phone         string         `json:"phone" example:"+7 900 000-00-01"`
	BorrowedBooks []LoanResponse `json:"borrowed_books"`
}

// BorrowRequest 借书请求
type BorrowRequest struct {
	BookCode   string `json:"book_code" binding:"required" example:"B001"`
	BorrowDate string `json:"borrow_date" example:"2024-01-01"`
	ReturnDate string `json:"return_date" example:"2024-01-15"`
}

// ReturnRequest 还书请求
type ReturnRequest struct {
	BookCode string `json:"book_code" binding:"required" example:"B001"`
}

// ServiceInfo GET / 的响应
type ServiceInfo struct {
	Message string `json:"message" example:"Library API"`
}
