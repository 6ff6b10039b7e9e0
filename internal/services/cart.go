package services

import "qapro_back_end/internal/models"

// ReconcileCart joint le panier client au catalogue : chaque ligne dont le
// produit existe encore est valorisée au prix courant, les autres sont
// silencieusement ignorées. Projection pure, recalculée à chaque appel —
// aucun état côté serveur.
func ReconcileCart(items []models.CartItem, catalog []models.Product) ([]models.CartLine, float64) {
	byID := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	var lines []models.CartLine
	subtotal := 0.0
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue // produit supprimé entre temps
		}
		line := models.CartLine{
			Product:   p,
			Quantity:  item.Quantity,
			UnitPrice: p.Price,
			LineTotal: p.Price * float64(item.Quantity),
		}
		subtotal += line.LineTotal
		lines = append(lines, line)
	}
	return lines, subtotal
}
