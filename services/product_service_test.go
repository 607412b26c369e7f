package services

import (
	"testing"

	"mesalink_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuProduct(name string, status tables.ProductStatus) tables.Product {
	p := tables.Product{Name: name}
	p.SetStatus(status)
	return p
}

func TestMenuProductsDropsUnavailable(t *testing.T) {
	products := []tables.Product{
		menuProduct("Cerveza", tables.ProductStatusAvailable),
		menuProduct("Tortilla", tables.ProductStatusUnavailable),
		menuProduct("Agua", tables.ProductStatusAvailable),
	}

	menu := menuProducts(products)
	require.Len(t, menu, 2)
	for _, p := range menu {
		assert.NotEqual(t, "Tortilla", p.Name)
	}
}

func TestMenuProductsOrdersByName(t *testing.T) {
	products := []tables.Product{
		menuProduct("Tortilla", tables.ProductStatusAvailable),
		menuProduct("Agua", tables.ProductStatusAvailable),
		menuProduct("Cerveza", tables.ProductStatusAvailable),
	}

	menu := menuProducts(products)
	require.Len(t, menu, 3)
	assert.Equal(t, "Agua", menu[0].Name)
	assert.Equal(t, "Cerveza", menu[1].Name)
	assert.Equal(t, "Tortilla", menu[2].Name)
}

func TestMenuProductsStatusWinsOverStaleFlag(t *testing.T) {
	// A row whose flag drifted out of sync with its status must not render
	stale := tables.Product{Name: "Paella", Status: tables.ProductStatusUnavailable, IsAvailable: true}

	menu := menuProducts([]tables.Product{stale})
	assert.Empty(t, menu)
}
