package demo

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Progress is one phase-boundary event streamed to a connected browser.
// The serve command sends "classify", "mincut" (the rampart count), then
// either "done" (the number of structures placed) or "error"; max-flow
// values, pruning counts and individual cluster commits are not streamed.
type Progress struct {
	Phase   string `json:"phase"`
	Detail  string `json:"detail"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Broadcaster fans Progress events out to every connected websocket
// client, serving the same "map generator paired with a live view" role
// a hackathon server/game pairing plays for a dungeon map.
type Broadcaster struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	events     chan Progress
}

// NewBroadcaster builds an idle Broadcaster; call Run in a goroutine to
// start serving.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		events:     make(chan Progress, 64),
	}
}

// Send queues a progress event for every connected client.
func (b *Broadcaster) Send(phase, detail string) {
	b.events <- Progress{Phase: phase, Detail: detail}
}

// Run serves the broadcast loop until the process exits.
func (b *Broadcaster) Run() {
	clients := map[*websocket.Conn]bool{}
	for {
		select {
		case c := <-b.register:
			clients[c] = true
		case c := <-b.unregister:
			delete(clients, c)
			c.Close()
		case ev := <-b.events:
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			for c := range clients {
				if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
					b.unregister <- c
				}
			}
		}
	}
}

// ServeHTTP upgrades a request to a websocket and registers it with the
// broadcaster for the connection's lifetime.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("demo: websocket upgrade failed: %v", err)
		return
	}
	b.register <- conn

	go func() {
		defer func() { b.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
