package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"qapro_back_end/internal/models"
)

const TopicOrderPlaced = "order.placed"

// OrderPlaced est publié après chaque commande validée.
type OrderPlaced struct {
	OrderID string            `json:"order_id"`
	UserID  string            `json:"user_id"`
	Total   float64           `json:"total"`
	Items   []models.CartItem `json:"items"`
}

// NewBus crée le bus d'événements in-process. Pas de broker : comme le
// reste du magasin, tout vit dans le processus.
func NewBus() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
}
