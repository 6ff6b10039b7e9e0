package services

import "qapro_back_end/internal/store"

// LowStockThreshold est le seuil en dessous duquel un produit est signalé
// en stock faible sur le dashboard.
const LowStockThreshold = 5

type AnalyticsReport struct {
	Revenue     float64 `json:"revenue"`
	TotalOrders int     `json:"totalOrders"`
	LowStock    int     `json:"lowStock"`
}

// ComputeAnalytics agrège le registre des commandes et le catalogue à la
// demande, dans un seul instantané cohérent. Pas de cache : le volume d'un
// démonstrateur ne le justifie pas. Un registre vide donne simplement des
// zéros, jamais une erreur.
func ComputeAnalytics(s *store.Store) AnalyticsReport {
	var report AnalyticsReport
	_ = s.Do(func(d *store.Data) error {
		for _, o := range d.Orders {
			report.Revenue += o.Total
			report.TotalOrders++
		}
		for _, p := range d.Products {
			if p.Stock < LowStockThreshold {
				report.LowStock++
			}
		}
		return nil
	})
	return report
}
