package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"qapro_back_end/internal/events"
	"qapro_back_end/internal/models"
	"qapro_back_end/internal/store"
)

// GuestUserID est utilisé pour les checkouts anonymes.
const GuestUserID = "guest"

// UnknownProduct remplace le nom du produit quand la ligne de panier
// référence un produit qui n'existe plus.
const UnknownProduct = "produit inconnu"

// ErrTotalMismatch signale que le total envoyé par le client ne correspond
// plus au sous-total recalculé aux prix courants du catalogue.
var ErrTotalMismatch = errors.New("total mismatch")

// InsufficientStockError désigne la première ligne du panier (dans l'ordre
// d'envoi) dont la quantité cumulée dépasse le stock disponible.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuffisant pour %s", e.ProductName)
}

// Checkout est l'opération de fulfillment : valider un panier contre le
// catalogue puis, seulement si tout passe, déduire le stock et enregistrer
// la commande.
type Checkout struct {
	store     *store.Store
	publisher message.Publisher
}

func NewCheckout(s *store.Store, pub message.Publisher) *Checkout {
	return &Checkout{store: s, publisher: pub}
}

// PlaceOrder exécute la validation et le commit dans la même section
// critique : soit toutes les lignes sont servies et la commande enregistrée,
// soit rien n'est modifié. Les quantités sont cumulées par produit avant
// comparaison au stock, sinon deux lignes sur le même produit pourraient
// le faire passer en négatif.
func (c *Checkout) PlaceOrder(ctx context.Context, userID string, items []models.CartItem, expectedTotal float64) (models.Order, error) {
	if err := ctx.Err(); err != nil {
		return models.Order{}, err
	}
	if userID == "" {
		userID = GuestUserID
	}

	var order models.Order
	err := c.store.Do(func(d *store.Data) error {
		// 1️⃣ Passe de validation — aucun effet de bord
		requested := make(map[string]int, len(items))
		subtotal := 0.0
		for _, item := range items {
			if item.Quantity < 1 {
				return errors.Errorf("quantité invalide (%d) pour le produit %s", item.Quantity, item.ProductID)
			}
			p := d.FindProduct(item.ProductID)
			if p == nil {
				return &InsufficientStockError{ProductName: UnknownProduct}
			}
			requested[item.ProductID] += item.Quantity
			if requested[item.ProductID] > p.Stock {
				return &InsufficientStockError{ProductName: p.Name}
			}
			subtotal += p.Price * float64(item.Quantity)
		}

		// Le total client est recalculé côté serveur : un écart signifie que
		// les prix ont bougé depuis l'affichage du panier.
		if math.Abs(subtotal-expectedTotal) >= 0.01 {
			return errors.Wrapf(ErrTotalMismatch, "attendu %.2f, recalculé %.2f", expectedTotal, subtotal)
		}

		// 2️⃣ Passe de commit — déduction puis enregistrement
		for id, qty := range requested {
			d.FindProduct(id).Stock -= qty
		}

		now := time.Now().UTC()
		order = models.Order{
			ID:        d.NextOrderID(now),
			UserID:    userID,
			Items:     append([]models.CartItem(nil), items...),
			Total:     expectedTotal,
			Status:    models.OrderPaid,
			CreatedAt: now,
		}
		d.AppendOrder(order)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	c.publishOrderPlaced(order)
	logrus.Infof("✅ Commande %s enregistrée (%d ligne(s), total %.2f)", order.ID, len(order.Items), order.Total)
	return order, nil
}

func (c *Checkout) publishOrderPlaced(order models.Order) {
	if c.publisher == nil {
		return
	}

	payload, err := json.Marshal(events.OrderPlaced{
		OrderID: order.ID,
		UserID:  order.UserID,
		Total:   order.Total,
		Items:   order.Items,
	})
	if err != nil {
		logrus.Warnf("⚠️ Sérialisation order.placed impossible: %v", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := c.publisher.Publish(events.TopicOrderPlaced, msg); err != nil {
		logrus.Warnf("⚠️ Publication order.placed impossible: %v", err)
	}
}
