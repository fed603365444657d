package reader

import (
	"github.com/samber/lo"
)

// Loan 借阅记录
// 日期是客户端提交的原始字符串
type Loan struct {
	BookCode   string
	BorrowDate string
	ReturnDate string
}

// Reader 读者实体（聚合根）
// 设计说明：
// 1. TicketNumber是调用方提供的自然键
// 2. Loans只能通过Borrow/Return修改，普通更新保留原有借阅记录
type Reader struct {
	TicketNumber string
	FullName     string
	Address      string
	Phone        string
	Loans        []Loan
}

// HasTicket 判断请求体中的借书证号是否与路径一致
func (r *Reader) HasTicket(ticket string) bool {
	return r.TicketNumber == ticket
}

// HasBorrowed 是否正在借阅该图书
func (r *Reader) HasBorrowed(bookCode string) bool {
	return lo.ContainsBy(r.Loans, func(l Loan) bool {
		return l.BookCode == bookCode
	})
}

// HasLoans 是否有未归还的图书
func (r *Reader) HasLoans() bool {
	return len(r.Loans) > 0
}

// Borrow 借书（领域行为）
// 业务规则：同一本书不能同时借两次
func (r *Reader) Borrow(bookCode, borrowDate, returnDate string) error {
	if r.HasBorrowed(bookCode) {
		return ErrAlreadyBorrowed
	}
	r.Loans = append(r.Loans, Loan{
		BookCode:   bookCode,
		BorrowDate: borrowDate,
		ReturnDate: returnDate,
	})
	return nil
}

// Return 还书（领域行为），返回被移除的借阅记录
func (r *Reader) Return(bookCode string) (Loan, error) {
	loan, idx, ok := lo.FindIndexOf(r.Loans, func(l Loan) bool {
		return l.BookCode == bookCode
	})
	if !ok {
		return Loan{}, ErrLoanNotFound
	}
	r.Loans = append(r.Loans[:idx:idx], r.Loans[idx+1:]...)
	return loan, nil
}
