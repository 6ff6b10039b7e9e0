package store

import "qapro_back_end/internal/models"

// DefaultCatalog est le catalogue de démonstration chargé au démarrage.
// Le clavier est volontairement en rupture et le laptop au ras du seuil de
// stock faible : les scénarios QA s'appuient dessus.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Premium Wireless Headphones", Price: 299, Category: "Electronics", Stock: 50, Image: "https://picsum.photos/seed/headphones/400/300", Description: "Noise cancelling high fidelity audio."},
		{ID: "2", Name: "Smart Fitness Watch", Price: 199, Category: "Wearables", Stock: 12, Image: "https://picsum.photos/seed/watch/400/300", Description: "Track your health and activities 24/7."},
		{ID: "3", Name: "Mechanical Gaming Keyboard", Price: 149, Category: "Electronics", Stock: 0, Image: "https://picsum.photos/seed/keyboard/400/300", Description: "RGB backlit tactile switches."},
		{ID: "4", Name: "Ultra-slim Laptop Pro", Price: 1299, Category: "Electronics", Stock: 5, Image: "https://picsum.photos/seed/laptop/400/300", Description: "Power meets portability for professionals."},
		{ID: "5", Name: "Designer Leather Backpack", Price: 89, Category: "Fashion", Stock: 25, Image: "https://picsum.photos/seed/bag/400/300", Description: "Durable and stylish everyday carry."},
	}
}
