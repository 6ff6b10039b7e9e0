package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"qapro_back_end/internal/events"
	"qapro_back_end/internal/services"
	"qapro_back_end/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (environnement de démo)
		return true
	},
}

// DashboardWebSocket pousse les statistiques du dashboard en temps réel :
// un instantané à la connexion, puis un nouvel instantané après chaque
// commande validée.
func DashboardWebSocket(s *store.Store, sub message.Subscriber) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logrus.Errorf("❌ Erreur upgrade WebSocket: %v", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		msgs, err := sub.Subscribe(ctx, events.TopicOrderPlaced)
		if err != nil {
			logrus.Errorf("❌ Souscription order.placed impossible: %v", err)
			return
		}

		// Instantané initial
		if err := conn.WriteJSON(gin.H{"type": "analytics", "data": services.ComputeAnalytics(s)}); err != nil {
			return
		}

		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				msg.Ack()
				if err := conn.WriteJSON(gin.H{"type": "analytics", "data": services.ComputeAnalytics(s)}); err != nil {
					logrus.Errorf("❌ Erreur envoi WebSocket: %v", err)
					return
				}
			case <-time.After(30 * time.Second):
				// Ping pour garder la connexion active
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
