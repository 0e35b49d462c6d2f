package ws

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"

	"dushanbe-eats/repository"
	"dushanbe-eats/services"
	"dushanbe-eats/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeed streams order events to operator dashboards over WebSocket,
// one subscription set per restaurant.
type OrderFeed struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of conns
	broadcast  chan services.OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	users      *repository.UserRepository
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

func NewOrderFeed(users *repository.UserRepository) *OrderFeed {
	return &OrderFeed{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		users:      users,
	}
}

// Run listens for register/unregister/broadcast until the process exits.
func (h *OrderFeed) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishOrderEvent implements services.EventSink.
func (h *OrderFeed) PublishOrderEvent(_ context.Context, ev services.OrderEvent) error {
	h.broadcast <- ev
	return nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders?restaurant_id=
func (h *OrderFeed) HandleWebSocket(c *gin.Context) {
	restID64, err := strconv.ParseUint(c.Query("restaurant_id"), 10, 64)
	if err != nil || restID64 == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "restaurant_id is required"})
		return
	}
	restID := uint(restID64)

	user, err := h.users.FindByID(utils.CurrentUserID(c))
	if err != nil || !services.CanManageRestaurant(user, restID) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: restID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the read side alive so close frames are processed, and
// unregisters on disconnect.
func (h *OrderFeed) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
