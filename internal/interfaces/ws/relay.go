package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
	"github.com/bvanacker/bestelportaal-api/pkg/logger"
)

// Wire events. The spelling of "recieved" is what the portal frontend
// matches on and cannot be corrected server-side alone.
const (
	EventNewConnection = "new_connection"
	EventNotification  = "notification_sent"
	EventPopup         = "notification_popup"

	StatusSent     = "sent"
	StatusReceived = "recieved"
)

// Message is the relay frame, both directions.
type Message struct {
	Event   string `json:"event"`
	BuyerID int64  `json:"klantId,omitempty"`
	Status  string `json:"status,omitempty"`
	Text    string `json:"tekst,omitempty"`
}

// Relay pushes popup frames between connected portal clients: a
// supplier fires notification_sent, the first buyer account of the
// target company gets a notification_popup.
type Relay struct {
	registry *Registry
	userRepo repository.UserRepository
	log      *logger.Logger
}

func NewRelay(registry *Registry, userRepo repository.UserRepository, log *logger.Logger) *Relay {
	return &Relay{registry: registry, userRepo: userRepo, log: log}
}

// Upgrade gates the route: only websocket upgrade requests pass.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler returns the websocket handler. The user id is taken from the
// auth middleware locals set during the upgrade request.
func (r *Relay) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("user_id").(int64)
		if userID == 0 {
			_ = conn.Close()
			return
		}
		// All writes go through the serialized wrapper; the registry hands
		// it to request goroutines pushing popups concurrently with the
		// read loop's own acks.
		wc := newSyncConn(conn)
		defer func() {
			r.registry.Remove(userID, wc)
			_ = conn.Close()
		}()

		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				r.log.Debug().Int64("user_id", userID).Err(err).Msg("websocket closed")
				return
			}
			switch msg.Event {
			case EventNewConnection:
				r.registry.Add(userID, wc)
			case EventNotification:
				r.relayNotification(userID, wc, msg)
			default:
				r.log.Warn().Str("event", msg.Event).Msg("unknown websocket event")
			}
		}
	})
}

func (r *Relay) relayNotification(senderID int64, sender Conn, msg Message) {
	if err := sender.WriteJSON(Message{Event: EventPopup, Status: StatusSent}); err != nil {
		r.log.Warn().Int64("user_id", senderID).Err(err).Msg("popup ack failed")
	}
	recipient, err := r.userRepo.FirstBuyerByCompany(msg.BuyerID)
	if err != nil || recipient == 0 {
		r.log.Warn().Int64("company_id", msg.BuyerID).Err(err).Msg("no buyer account to notify")
		return
	}
	conn := r.registry.Get(recipient)
	if conn == nil {
		return
	}
	if err := conn.WriteJSON(Message{Event: EventPopup, Status: StatusReceived, Text: msg.Text}); err != nil {
		r.log.Warn().Int64("user_id", recipient).Err(err).Msg("popup delivery failed")
	}
}

// NotifyUser implements the application notifier: a popup is pushed to
// the user when they have a live connection, silently dropped otherwise.
func (r *Relay) NotifyUser(userID int64, text string) {
	conn := r.registry.Get(userID)
	if conn == nil {
		return
	}
	if err := conn.WriteJSON(Message{Event: EventPopup, Status: StatusReceived, Text: text}); err != nil {
		r.log.Warn().Int64("user_id", userID).Err(err).Msg("popup delivery failed")
	}
}
