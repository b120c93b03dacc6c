// Package ws provides the realtime channel: clients can request a snapshot
// of all posts and receive a broadcast whenever a post is added.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/internal/post"
)

const (
	eventGetPosts    = "getPosts"
	eventUpdatePosts = "updatePosts"
	eventAddPost     = "addPost"
	eventError       = "error"
)

// Envelope is the wire format for every websocket message in both directions.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type errorData struct {
	Message string `json:"message"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // gorilla connections allow a single concurrent writer
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub upgrades connections, serves snapshot requests and fans out new-post
// events to every connected client.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}

	posts    post.PostStorage
	upgrader websocket.Upgrader
}

func NewHub(posts post.PostStorage) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		posts:   posts,
		upgrader: websocket.Upgrader{
			// browser clients connect from any origin, there is no auth layer
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	c := &client{conn: conn}
	h.register(c)
	defer func() {
		h.unregister(c)
		if cerr := conn.Close(); cerr != nil {
			log.Printf("websocket close error: %v", cerr)
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.handleMessage(c, msg)
	}
}

// handleMessage never closes the connection: a malformed or unknown message
// gets a structured error reply and the client stays connected.
func (h *Hub) handleMessage(c *client, msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		h.sendError(c, "invalid message: expected JSON")
		return
	}

	switch env.Event {
	case eventGetPosts:
		posts, err := h.posts.GetAllPosts()
		if err != nil {
			h.sendError(c, "could not load posts")
			return
		}
		reply := Envelope{
			Event: eventUpdatePosts,
			Data:  map[string]interface{}{"posts": posts},
		}
		if err := c.writeJSON(reply); err != nil {
			log.Printf("websocket write error: %v", err)
		}
	default:
		h.sendError(c, "unknown event: "+env.Event)
	}
}

// BroadcastNewPost sends the post to every connected client. A failed write
// only loses that client's message.
func (h *Hub) BroadcastNewPost(p *model.Post) {
	env := Envelope{
		Event: eventAddPost,
		Data:  map[string]interface{}{"newPost": p},
	}

	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.writeJSON(env); err != nil {
			log.Printf("websocket broadcast error: %v", err)
		}
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) sendError(c *client, message string) {
	env := Envelope{Event: eventError, Data: errorData{Message: message}}
	if err := c.writeJSON(env); err != nil {
		log.Printf("websocket write error: %v", err)
	}
}
