package services

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"qapro_back_end/internal/events"
	"qapro_back_end/internal/store"
)

// WatchLowStock consomme les événements order.placed et journalise les
// produits passés sous le seuil de stock faible. La boucle s'arrête quand
// le contexte est annulé.
func WatchLowStock(ctx context.Context, sub message.Subscriber, s *store.Store) error {
	msgs, err := sub.Subscribe(ctx, events.TopicOrderPlaced)
	if err != nil {
		return errors.Wrap(err, "souscription order.placed")
	}

	go func() {
		for msg := range msgs {
			var evt events.OrderPlaced
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				logrus.Warnf("⚠️ Événement order.placed illisible: %v", err)
				msg.Ack()
				continue
			}

			for _, item := range evt.Items {
				if p, ok := s.GetProduct(item.ProductID); ok && p.Stock < LowStockThreshold {
					logrus.Warnf("🚨 Stock faible pour %s après %s: %d restant(s)", p.Name, evt.OrderID, p.Stock)
				}
			}
			msg.Ack()
		}
	}()
	return nil
}
