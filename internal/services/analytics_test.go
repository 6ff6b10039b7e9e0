package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qapro_back_end/internal/models"
	"qapro_back_end/internal/services"
	"qapro_back_end/internal/store"
)

func TestComputeAnalyticsEmptyLedger(t *testing.T) {
	s := store.New(store.DefaultCatalog())

	report := services.ComputeAnalytics(s)

	assert.Equal(t, 0.0, report.Revenue)
	assert.Equal(t, 0, report.TotalOrders)
	// Seul le clavier (stock 0) est sous le seuil dans le catalogue de démo
	assert.Equal(t, 1, report.LowStock)
}

func TestComputeAnalyticsAfterOrders(t *testing.T) {
	s := store.New([]models.Product{
		{ID: "P1", Name: "Casque", Price: 10, Stock: 6},
		{ID: "P2", Name: "Clavier", Price: 25, Stock: 2},
	})
	checkout := services.NewCheckout(s, nil)

	_, err := checkout.PlaceOrder(context.Background(), "u1", []models.CartItem{{ProductID: "P1", Quantity: 3}}, 30)
	require.NoError(t, err)
	_, err = checkout.PlaceOrder(context.Background(), "u1", []models.CartItem{{ProductID: "P2", Quantity: 1}}, 25)
	require.NoError(t, err)

	report := services.ComputeAnalytics(s)

	assert.Equal(t, 55.0, report.Revenue)
	assert.Equal(t, 2, report.TotalOrders)
	// P1 est passé à 3, P2 à 1 : les deux sont sous le seuil de 5
	assert.Equal(t, 2, report.LowStock)
}
