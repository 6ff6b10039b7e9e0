package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"qapro_back_end/internal/config"
	"qapro_back_end/internal/events"
	"qapro_back_end/internal/routes"
	"qapro_back_end/internal/services"
	"qapro_back_end/internal/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ Impossible de charger la configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	// 🗄️ Magasin en mémoire, seedé avec le catalogue de démonstration
	st := store.New(store.DefaultCatalog())
	logrus.Infof("✅ Catalogue seedé: %d produits", len(st.ListProducts()))

	// 🔄 Bus d'événements in-process (order.placed)
	bus := events.NewBus()
	defer bus.Close()

	checkout := services.NewCheckout(st, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := services.WatchLowStock(ctx, bus, st); err != nil {
		logrus.Fatalf("❌ Impossible de démarrer la surveillance de stock: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, st, checkout, bus)

	logrus.Infof("🚀 Serveur QA-Pro Shop lancé sur le port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("❌ Serveur arrêté: %v", err)
	}
}
