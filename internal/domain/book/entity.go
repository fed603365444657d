package book

// Book 图书实体
// Code（book_code）是调用方提供的自然键，创建后不可修改
type Book struct {
	Code            string
	Author          string
	Title           string
	PublicationYear int
	Price           float64
	IsNew           bool
	Annotation      string
}

// HasCode 判断请求体中的编号是否与路径中的编号一致
func (b *Book) HasCode(code string) bool {
	return b.Code == code
}
