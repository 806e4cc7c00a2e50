package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/BillyRonico412/brestau-sub000/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// KitchenHub fans order-item status changes out to every connected kitchen
// or floor display. It satisfies services.FulfillmentNotifier.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan ItemEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// ItemEvent is the wire shape pushed to displays.
type ItemEvent struct {
	Type string            `json:"type"`
	Item *entity.OrderItem `json:"item"`
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan ItemEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run listens for register/unregister/broadcast forever; start it in its own
// goroutine.
func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderItemChanged is called by the fulfillment engine after each successful
// transition.
func (h *KitchenHub) OrderItemChanged(item *entity.OrderItem) {
	h.broadcast <- ItemEvent{Type: "order_item", Item: item}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	// Displays only listen; the read loop just detects disconnects.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
