package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntriq/cart-service/internal/domain/model"
)

func newTestFileStore(t *testing.T) *FileCartStore {
	t.Helper()
	store, err := NewFileCartStore(t.TempDir(), "")
	require.NoError(t, err)
	return store
}

func testRecord(cartID string) *CartRecord {
	return &CartRecord{
		CartID: cartID,
		Items: []model.LineItem{
			{
				Product:  model.Product{ID: "3d-printers", Name: "3D Printers", BasePrice: model.Numeric(12999)},
				Quantity: 2,
			},
		},
		Discount: &model.DiscountPolicy{Code: "SYNTRIQ10", Type: model.DiscountPercentage, Value: 10},
	}
}

func TestFileCartStore_RoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testRecord("cart-1")))

	loaded, err := store.Load(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "3d-printers", loaded.Items[0].Product.ID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	require.NotNil(t, loaded.Discount)
	assert.Equal(t, "SYNTRIQ10", loaded.Discount.Code)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestFileCartStore_MissingSlotLoadsEmpty(t *testing.T) {
	store := newTestFileStore(t)

	loaded, err := store.Load(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Equal(t, "never-saved", loaded.CartID)
	assert.Empty(t, loaded.Items)
	assert.Nil(t, loaded.Discount)
}

func TestFileCartStore_CorruptSlotLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileCartStore(dir, "syntriq-cart")
	require.NoError(t, err)

	path := filepath.Join(dir, "syntriq-cart-cart-1.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	loaded, err := store.Load(context.Background(), "cart-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestFileCartStore_SaveOverwrites(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testRecord("cart-1")))

	updated := testRecord("cart-1")
	updated.Items[0].Quantity = 7
	updated.Discount = nil
	require.NoError(t, store.Save(ctx, updated))

	loaded, err := store.Load(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Items[0].Quantity)
	assert.Nil(t, loaded.Discount)
}

func TestFileCartStore_Delete(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testRecord("cart-1")))
	require.NoError(t, store.Delete(ctx, "cart-1"))

	loaded, err := store.Load(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)

	assert.NoError(t, store.Delete(ctx, "cart-1"), "deleting an absent slot is not an error")
}

func TestFileCartStore_SanitizesHostileKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileCartStore(dir, "")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testRecord("../../etc/passwd")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "slot file stays inside the data directory")

	loaded, err := store.Load(ctx, "../../etc/passwd")
	require.NoError(t, err)
	assert.Len(t, loaded.Items, 1)
}
