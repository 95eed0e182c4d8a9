// Package live pushes cart changes to connected browsers over websockets,
// so a cart edited in one tab updates every other open tab.
package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"mayamateul/cart"
	"mayamateul/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans cart events out to every connected client.
type Hub struct {
	mu         sync.Mutex
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	stop       chan struct{}
	stopOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 16),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					close(c.send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop shuts the hub down and disconnects every client.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

type cartEvent struct {
	Type       string            `json:"type"`
	Items      []models.CartLine `json:"items,omitempty"`
	Count      int               `json:"count"`
	TotalPrice float64           `json:"totalPrice"`
	Open       bool              `json:"open,omitempty"`
}

// Watch subscribes the hub to a cart store; every mutation and open/close
// toggle becomes a broadcast frame.
func (h *Hub) Watch(store *cart.Store) {
	store.Subscribe(func(lines []models.CartLine) {
		total := 0.0
		count := 0
		for _, l := range lines {
			total += l.LineTotal()
			count += l.Quantity
		}
		h.push(cartEvent{Type: "cart", Items: lines, Count: count, TotalPrice: total})
	})
	store.SubscribeOpen(func(open bool) {
		h.push(cartEvent{Type: "cartState", Open: open})
	})
}

func (h *Hub) push(evt cartEvent) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Println("live: marshal error:", err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.stop:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ServeWS upgrades the connection and sends the current cart state as the
// first frame.
func (h *Hub) ServeWS(store *cart.Store) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("live: upgrade error:", err)
			return
		}
		c := &client{conn: conn, send: make(chan []byte, 16)}

		lines := store.Snapshot()
		initial := cartEvent{Type: "cart", Items: lines, Count: store.Count(), TotalPrice: store.TotalPrice()}
		if data, err := json.Marshal(initial); err == nil {
			c.send <- data
		}

		select {
		case h.register <- c:
		case <-h.stop:
			conn.Close()
			return
		}
		go c.writePump()
		go c.readPump(h)
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump only drains control frames; clients never send cart data.
func (c *client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.stop:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}
