package jsonstore

// 种子数据：集合不存在或内容损坏时使用
// 每次调用返回新切片

func SeedProducts() []ProductRecord {
	return []ProductRecord{
		{
			ID:          1,
			Name:        "MF DOOM - Mm..Food",
			Description: "A classic hip-hop album featuring the iconic MF DOOM.",
			Category:    "Music",
			Price:       12.99,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/en/3/3a/Mmfood.jpg",
		},
		{
			ID:          2,
			Name:        "MF DOOM - Madvillainy",
			Description: "Collaboration album with Madlib, considered one of the greatest hip-hop albums.",
			Category:    "Music",
			Price:       14.99,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/en/6/65/Madvillain-madvillainy-album.jpg",
		},
	}
}

func SeedUsers() []UserRecord {
	return []UserRecord{
		{
			ID:        1,
			Name:      "John Doe",
			Email:     "john@example.com",
			BirthDate: "1990-01-01",
			Password:  "password123",
		},
	}
}

func SeedCarts() []CartRecord {
	return []CartRecord{}
}

func SeedOrders() []OrderRecord {
	return []OrderRecord{}
}

func SeedBooks() []BookRecord {
	return []BookRecord{
		{
			BookCode:        "B001",
			Author:          "Михаил Булгаков",
			Title:           "Мастер и Маргарита",
			PublicationYear: 1967,
			Price:           450,
			IsNew:           false,
			Annotation:      "Роман о визите дьявола в Москву 1930-х годов.",
		},
		{
			BookCode:        "B002",
			Author:          "Фёдор Достоевский",
			Title:           "Преступление и наказание",
			PublicationYear: 1866,
			Price:           390,
			IsNew:           true,
			Annotation:      "Психологический роман о студенте Раскольникове.",
		},
	}
}

func SeedReaders() []ReaderRecord {
	return []ReaderRecord{
		{
			TicketNumber:  "R001",
			FullName:      "Иван Петров",
			Address:       "Москва, ул. Ленина, 1",
			Phone:         "+7 900 000-00-01",
			BorrowedBooks: []LoanRecord{},
		},
	}
}
