package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config regroupe tout le paramétrage du serveur. Les valeurs viennent des
// variables d'environnement, complétées par un éventuel fichier .env.
type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	// Secret de démo — à surcharger en dehors d'un poste de dev.
	JWTSecret string `envconfig:"JWT_SECRET" default:"qapro-demo-secret"`

	// Reproduit les délais réseau simulés de la maquette d'origine.
	SimulateLatency bool `envconfig:"SIMULATE_LATENCY" default:"false"`
}

// Load charge le .env s'il existe puis parse l'environnement.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		logrus.Info("✅ Fichier .env chargé avec succès")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "lecture de la configuration")
	}
	return &cfg, nil
}
