package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntriq/cart-service/internal/domain/model"
)

func TestNewDefaultCatalog(t *testing.T) {
	c := NewDefaultCatalog()

	products := c.Products()
	assert.Len(t, products, 6)
	assert.Len(t, c.ProductsByCategory("Hardware"), 3)
	assert.Len(t, c.ProductsByCategory("Software"), 3)
}

func TestStaticCatalog_ProductByID(t *testing.T) {
	c := NewDefaultCatalog()

	t.Run("known id", func(t *testing.T) {
		product := c.ProductByID("3d-printers")
		require.NotNil(t, product)
		assert.Equal(t, "3D Printers", product.Name)
		assert.Equal(t, 12999.0, product.BasePrice.Value())
		assert.Len(t, product.Variants, 3)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Nil(t, c.ProductByID("toaster"))
	})
}

func TestStaticCatalog_ProductBySlug(t *testing.T) {
	c := NewDefaultCatalog()

	product := c.ProductBySlug("slicer")
	require.NotNil(t, product)
	assert.Equal(t, "syntric-slicer", product.ID)

	assert.Nil(t, c.ProductBySlug("missing"))
}

func TestDefaultCatalog_SentinelPricesResolved(t *testing.T) {
	c := NewDefaultCatalog()

	zcad := c.ProductByID("zcad")
	require.NotNil(t, zcad)

	starter := zcad.Variant("Starter")
	require.NotNil(t, starter)
	assert.Equal(t, model.PriceFree, starter.Price.Kind)
	assert.Zero(t, starter.Price.Value())

	pro := zcad.Variant("Professional")
	require.NotNil(t, pro)
	assert.Equal(t, 49.0, pro.Price.Value())

	enterprise := zcad.Variant("Enterprise")
	require.NotNil(t, enterprise)
	assert.Equal(t, model.PriceCustom, enterprise.Price.Kind)
	assert.Zero(t, enterprise.Price.Value())
}

func TestStaticCatalog_ProductsReturnsCopy(t *testing.T) {
	c := NewDefaultCatalog()

	products := c.Products()
	products[0].Name = "mutated"

	assert.Equal(t, "3D Printers", c.Products()[0].Name)
}
