package ws

import (
	"net/http"
	"sync"
	"time"

	"littlelemon/entity"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// OrderEvent is what subscribers receive.
type OrderEvent struct {
	Type  string        `json:"type"`
	Order *entity.Order `json:"order"`
}

// Subscription is one websocket connection of one user.
type Subscription struct {
	Conn    *websocket.Conn
	UserID  uint
	Manager bool
}

// OrderHub fans committed order changes out to the order's owner, its
// delivery crew member and every connected manager.
type OrderHub struct {
	clients    map[*websocket.Conn]Subscription
	broadcast  chan OrderEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	roles      services.RoleDirectory
	log        logrus.FieldLogger
}

func NewOrderHub(roles services.RoleDirectory, log logrus.FieldLogger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]Subscription),
		broadcast:  make(chan OrderEvent, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		roles:      roles,
		log:        log,
	}
}

// OrderChanged implements services.OrderNotifier. It never blocks the
// request: when the queue is full the event is dropped.
func (h *OrderHub) OrderChanged(event string, o *entity.Order) {
	select {
	case h.broadcast <- OrderEvent{Type: event, Order: o}:
	default:
		h.log.WithFields(logrus.Fields{"event": event, "order_id": o.ID}).Warn("order event dropped")
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub.Conn] = sub
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Conn]; ok {
				delete(h.clients, sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn, sub := range h.clients {
				if !Receives(sub, ev.Order) {
					continue
				}
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteJSON(ev); err != nil {
					h.log.WithError(err).WithField("user_id", sub.UserID).Warn("ws write error")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Connected returns the number of open subscriptions.
func (h *OrderHub) Connected() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Receives reports whether sub may see changes of o.
func Receives(sub Subscription, o *entity.Order) bool {
	if sub.Manager {
		return true
	}
	if o.UserID == sub.UserID {
		return true
	}
	return o.DeliveryCrewID != nil && *o.DeliveryCrewID == sub.UserID
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves GET /ws/orders.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	role, err := services.ResolveCaller(h.roles, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade error")
		return
	}

	sub := Subscription{Conn: conn, UserID: userID, Manager: role == services.CallerManager}
	h.register <- sub

	go h.listen(sub)
}

// listen drains the client side until it goes away; clients do not send anything.
func (h *OrderHub) listen(sub Subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
