package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/domain/book"
	"github.com/xiebiao/flatstore/internal/domain/cart"
	"github.com/xiebiao/flatstore/internal/domain/order"
	"github.com/xiebiao/flatstore/internal/domain/product"
	"github.com/xiebiao/flatstore/internal/domain/reader"
	"github.com/xiebiao/flatstore/internal/domain/user"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
)

func newBackend(t *testing.T) (*store.FileBackend, string) {
	t.Helper()
	dir := t.TempDir()
	return store.NewFileBackend(dir), dir
}

func TestNextID(t *testing.T) {
	id := func(r UserRecord) int { return r.ID }

	assert.Equal(t, 1, nextID([]UserRecord{}, id))
	assert.Equal(t, 1, nextID([]UserRecord{{ID: -3}}, id))
	assert.Equal(t, 8, nextID([]UserRecord{{ID: 2}, {ID: 7}, {ID: 5}}, id))
}

func TestProductRepository_SeedAndFind(t *testing.T) {
	backend, dir := newBackend(t)
	repo := NewProductRepository(backend, zap.NewNop())
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "MF DOOM - Mm..Food", products[0].Name)
	assert.FileExists(t, filepath.Join(dir, ProductsCollection))

	p, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 14.99, p.Price)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestCartRepository_SaveInPlaceAndDelete(t *testing.T) {
	backend, dir := newBackend(t)
	repo := NewCartRepository(backend, zap.NewNop())
	ctx := context.Background()

	for _, userID := range []int{1, 2, 3} {
		c := cart.NewCart(userID)
		require.NoError(t, c.AddItem(1, userID))
		require.NoError(t, repo.Save(ctx, c))
	}

	c, err := repo.FindByUserID(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(2, 1))
	require.NoError(t, repo.Save(ctx, c))

	carts := store.NewCollection(backend, CartsCollection, SeedCarts, nil)
	records, err := carts.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 2, records[1].UserID)
	assert.Len(t, records[1].Items, 2)

	require.NoError(t, repo.Delete(ctx, 2))
	_, err = repo.FindByUserID(ctx, 2)
	assert.ErrorIs(t, err, cart.ErrCartNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 2), cart.ErrCartNotFound)

	// 空购物车的items写成[]而不是null
	require.NoError(t, repo.Save(ctx, cart.NewCart(9)))
	data, err := os.ReadFile(filepath.Join(dir, CartsCollection))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items": []`)
	assert.NotContains(t, string(data), "null")
}

func TestUserRepository_Create(t *testing.T) {
	backend, _ := newBackend(t)
	repo := NewUserRepository(backend, zap.NewNop())
	ctx := context.Background()

	u := user.NewUser("Jane", "jane@example.com", "1995-05-05", "secret")
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, 2, u.ID)

	dup := user.NewUser("Other", "john@example.com", "2000-01-01", "x")
	assert.ErrorIs(t, repo.Create(ctx, dup), user.ErrEmailDuplicate)

	found, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "secret", found.Password)

	_, err = repo.FindByEmail(ctx, "JANE@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestOrderRepository(t *testing.T) {
	backend, _ := newBackend(t)
	repo := NewOrderRepository(backend, zap.NewNop())
	ctx := context.Background()

	orders, err := repo.ListByUserID(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	first := &order.Order{UserID: 1, Items: []order.Item{{ProductID: 1, Quantity: 1, Price: 12.99}}, Status: order.StatusPending}
	second := &order.Order{UserID: 2, Items: []order.Item{}, Status: order.StatusPending}
	third := &order.Order{UserID: 1, Items: []order.Item{}, Status: order.StatusPending}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, []int{1, 2, 3}, []int{first.ID, second.ID, third.ID})

	orders, err = repo.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 3, orders[1].ID)
	assert.Equal(t, "Ожидание", orders[0].Status)
}

func TestBookRepository_CRUD(t *testing.T) {
	backend, _ := newBackend(t)
	repo := NewBookRepository(backend, zap.NewNop())
	ctx := context.Background()

	b := &book.Book{Code: "B100", Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, Price: 10}
	require.NoError(t, repo.Create(ctx, b))
	assert.ErrorIs(t, repo.Create(ctx, b), book.ErrBookDuplicate)

	// 更新保持位置
	updated := &book.Book{Code: "B001", Title: "Новое название"}
	require.NoError(t, repo.Update(ctx, updated))
	books, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "Новое название", books[0].Title)
	assert.Equal(t, "B100", books[2].Code)

	assert.ErrorIs(t, repo.Update(ctx, &book.Book{Code: "nope"}), book.ErrBookNotFound)

	require.NoError(t, repo.Delete(ctx, "B100"))
	_, err = repo.FindByCode(ctx, "B100")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "B100"), book.ErrBookNotFound)
}

func TestReaderRepository_CRUD(t *testing.T) {
	backend, _ := newBackend(t)
	repo := NewReaderRepository(backend, zap.NewNop())
	ctx := context.Background()

	rd := &reader.Reader{TicketNumber: "R002", FullName: "Anna", Loans: []reader.Loan{}}
	require.NoError(t, repo.Create(ctx, rd))
	assert.ErrorIs(t, repo.Create(ctx, rd), reader.ErrReaderDuplicate)

	require.NoError(t, rd.Borrow("B001", "2024-01-01", "2024-01-10"))
	require.NoError(t, repo.Update(ctx, rd))

	got, err := repo.FindByTicket(ctx, "R002")
	require.NoError(t, err)
	assert.Equal(t, []reader.Loan{{BookCode: "B001", BorrowDate: "2024-01-01", ReturnDate: "2024-01-10"}}, got.Loans)

	require.NoError(t, repo.Delete(ctx, "R002"))
	_, err = repo.FindByTicket(ctx, "R002")
	assert.ErrorIs(t, err, reader.ErrReaderNotFound)
}

func TestEnsureCollections(t *testing.T) {
	backend, dir := newBackend(t)
	ctx := context.Background()

	counts, err := EnsureCatalog(ctx, backend, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		ProductsCollection: 2,
		CartsCollection:    0,
		UsersCollection:    1,
		OrdersCollection:   0,
	}, counts)

	counts, err = EnsureLibrary(ctx, backend, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, counts[BooksCollection])
	assert.Equal(t, 1, counts[ReadersCollection])

	for _, name := range []string{ProductsCollection, CartsCollection, UsersCollection, OrdersCollection, BooksCollection, ReadersCollection} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}
