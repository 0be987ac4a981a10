// Package catalog serves the read-only product catalog. The data is a
// deployment-time constant; price fields go through the normalizer once
// here, at the catalog boundary, so the rest of the system only ever
// sees resolved Price values.
package catalog

import (
	"github.com/syntriq/cart-service/internal/domain/model"
)

// Service exposes read-only catalog lookups.
type Service interface {
	// Products returns every catalog product in display order.
	Products() []model.Product
	// ProductByID returns the product with the given id, or nil.
	ProductByID(id string) *model.Product
	// ProductBySlug returns the product with the given slug, or nil.
	ProductBySlug(slug string) *model.Product
	// ProductsByCategory returns the products in the given category.
	ProductsByCategory(category string) []model.Product
}

// StaticCatalog implements Service over an in-memory product list.
type StaticCatalog struct {
	products []model.Product
	byID     map[string]int
	bySlug   map[string]int
}

// NewStaticCatalog builds a catalog from a product list, indexing by
// id and slug.
func NewStaticCatalog(products []model.Product) *StaticCatalog {
	c := &StaticCatalog{
		products: products,
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	for i := range products {
		c.byID[products[i].ID] = i
		if products[i].Slug != "" {
			c.bySlug[products[i].Slug] = i
		}
	}
	return c
}

// NewDefaultCatalog builds the catalog from the built-in product data.
func NewDefaultCatalog() *StaticCatalog {
	return NewStaticCatalog(defaultProducts())
}

// Products returns a copy of the product list so callers cannot mutate
// catalog state.
func (c *StaticCatalog) Products() []model.Product {
	products := make([]model.Product, len(c.products))
	copy(products, c.products)
	return products
}

// ProductByID returns the product with the given id, or nil.
func (c *StaticCatalog) ProductByID(id string) *model.Product {
	if i, ok := c.byID[id]; ok {
		product := c.products[i]
		return &product
	}
	return nil
}

// ProductBySlug returns the product with the given slug, or nil.
func (c *StaticCatalog) ProductBySlug(slug string) *model.Product {
	if i, ok := c.bySlug[slug]; ok {
		product := c.products[i]
		return &product
	}
	return nil
}

// ProductsByCategory returns the products in the given category, in
// display order.
func (c *StaticCatalog) ProductsByCategory(category string) []model.Product {
	var products []model.Product
	for i := range c.products {
		if c.products[i].Category == category {
			products = append(products, c.products[i])
		}
	}
	return products
}
