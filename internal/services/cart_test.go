package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qapro_back_end/internal/models"
	"qapro_back_end/internal/services"
)

func TestReconcileCartPricesAtCurrentCatalog(t *testing.T) {
	catalog := []models.Product{
		{ID: "P1", Name: "Casque", Price: 10, Stock: 5},
		{ID: "P2", Name: "Clavier", Price: 25, Stock: 3},
	}
	cart := []models.CartItem{
		{ProductID: "P1", Quantity: 2},
		{ProductID: "P2", Quantity: 1},
	}

	lines, subtotal := services.ReconcileCart(cart, catalog)

	require.Len(t, lines, 2)
	assert.Equal(t, "Casque", lines[0].Product.Name)
	assert.Equal(t, 10.0, lines[0].UnitPrice)
	assert.Equal(t, 20.0, lines[0].LineTotal)
	assert.Equal(t, 25.0, lines[1].LineTotal)
	assert.Equal(t, 45.0, subtotal)
}

func TestReconcileCartDropsUnknownProducts(t *testing.T) {
	catalog := []models.Product{{ID: "P1", Name: "Casque", Price: 10, Stock: 5}}
	cart := []models.CartItem{
		{ProductID: "deleted", Quantity: 4},
		{ProductID: "P1", Quantity: 1},
	}

	lines, subtotal := services.ReconcileCart(cart, catalog)

	require.Len(t, lines, 1)
	assert.Equal(t, "P1", lines[0].Product.ID)
	assert.Equal(t, 10.0, subtotal)
}

func TestReconcileCartEmptyInputs(t *testing.T) {
	lines, subtotal := services.ReconcileCart(nil, nil)
	assert.Empty(t, lines)
	assert.Equal(t, 0.0, subtotal)

	lines, subtotal = services.ReconcileCart([]models.CartItem{{ProductID: "P1", Quantity: 1}}, nil)
	assert.Empty(t, lines)
	assert.Equal(t, 0.0, subtotal)
}
