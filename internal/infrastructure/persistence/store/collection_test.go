package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func seedRecords() []record {
	return []record{{ID: 1, Name: "seed"}}
}

func newTestCollection(t *testing.T) (*Collection[record], string) {
	t.Helper()
	dir := t.TempDir()
	return NewCollection(NewFileBackend(dir), "records.json", seedRecords, nil), dir
}

func TestCollection_Load_MissingWritesSeed(t *testing.T) {
	c, dir := newTestCollection(t)

	records, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seedRecords(), records)

	data, err := os.ReadFile(filepath.Join(dir, "records.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n    {\n        \"id\": 1,\n        \"name\": \"seed\"\n    }\n]", string(data))
}

func TestCollection_Load_CorruptReturnsSeedWithoutWriting(t *testing.T) {
	c, dir := newTestCollection(t)
	path := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	records, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seedRecords(), records)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestCollection_Load_Null(t *testing.T) {
	c, dir := newTestCollection(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte("null"), 0o644))

	records, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCollection_SaveThenLoad_KeepsOrder(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	want := []record{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	require.NoError(t, c.Save(ctx, want))

	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCollection_Save_LiteralUnicodeAndHTML(t *testing.T) {
	c, dir := newTestCollection(t)

	require.NoError(t, c.Save(context.Background(), []record{{ID: 1, Name: "Ожидание <b>&</b>"}}))

	data, err := os.ReadFile(filepath.Join(dir, "records.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Ожидание <b>&</b>"`)
}

func TestCollection_Save_NilIsEmptyArray(t *testing.T) {
	c, dir := newTestCollection(t)

	require.NoError(t, c.Save(context.Background(), nil))

	data, err := os.ReadFile(filepath.Join(dir, "records.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileBackend_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b := NewFileBackend(dir)
	ctx := context.Background()

	_, err := b.Read(ctx, "books.json")
	assert.ErrorIs(t, err, ErrNotExist)

	require.NoError(t, b.Write(ctx, "books.json", []byte("[]")))

	data, err := b.Read(ctx, "books.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// 不留下临时文件
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
