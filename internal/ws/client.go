package ws

import (
	"slices"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is one websocket subscriber. Messages from clients are read only to
// keep the connection alive and are otherwise ignored.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// entities limits delivery; empty means every entity
	entities map[string]struct{}
}

func NewClient(hub *Hub, conn *websocket.Conn, entities ...string) *Client {
	c := &Client{hub: hub, conn: conn, send: make(chan []byte, 64)}
	for _, e := range entities {
		if c.entities == nil {
			c.entities = make(map[string]struct{}, len(entities))
		}
		c.entities[e] = struct{}{}
	}
	return c
}

func (c *Client) wants(entity string) bool {
	if len(c.entities) == 0 || entity == "" {
		return true
	}
	_, ok := c.entities[entity]
	return ok
}

// Entities lists the subscription filter in sorted order.
func (c *Client) Entities() []string {
	out := make([]string, 0, len(c.entities))
	for e := range c.entities {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
