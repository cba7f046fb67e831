// Package handlers client.go
package handlers

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"

	"github.com/4cecoder/arena/game"
	"github.com/4cecoder/arena/models"
)

// maxFrameBytes caps inbound frames. The largest valid intent is well
// under 200 bytes; anything bigger is garbage and gets the connection
// dropped before the frame is buffered in full.
const maxFrameBytes = 4096

// Client is one websocket session. Frames to the client go through a
// buffered channel drained by writePump; a full buffer drops the frame
// rather than stalling the sender.
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	out  chan []byte
}

func newClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	return &Client{
		ID:   id,
		hub:  hub,
		conn: conn,
		out:  make(chan []byte, 256),
	}
}

func (c *Client) send(data []byte) {
	select {
	case c.out <- data:
	default:
		log.Printf("send buffer full, dropping frame for client %s", c.ID)
	}
}

// writePump serializes all writes to the connection.
func (c *Client) writePump() {
	for data := range c.out {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("write to %s: %v", c.ID, err)
			c.conn.Close()
			return
		}
	}
}

// readPump decodes inbound frames, validates them against the intent
// schema, and posts the matching typed intent to the engine. Invalid
// frames are dropped without a reply. Returns when the connection dies;
// the caller handles departure.
func (c *Client) readPump() {
	c.conn.SetReadLimit(maxFrameBytes)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read from %s: %v", c.ID, err)
			}
			return
		}
		if err := validateIntentFrame(data); err != nil {
			log.Printf("invalid frame from %s: %v", c.ID, err)
			continue
		}
		var msg models.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("decode frame from %s: %v", c.ID, err)
			continue
		}
		c.dispatch(msg)
	}
}

// dispatch maps one wire message onto its intent.
func (c *Client) dispatch(msg models.ClientMessage) {
	switch msg.Type {
	case models.MsgJoin:
		c.hub.engine.Post(game.JoinIntent{SessionID: c.ID, Name: msg.Name, Skin: msg.Skin})
	case models.MsgMove:
		c.hub.engine.Post(game.MoveIntent{SessionID: c.ID, Heading: msg.Heading})
	case models.MsgBoost:
		c.hub.engine.Post(game.BoostIntent{SessionID: c.ID, Active: msg.Active})
	case models.MsgRespawn:
		c.hub.engine.Post(game.RespawnIntent{SessionID: c.ID})
	case models.MsgEatFood:
		c.hub.engine.Post(game.EatFoodIntent{SessionID: c.ID, FoodID: msg.FoodID})
	case models.MsgPlayerDied:
		c.hub.engine.Post(game.DeathReportIntent{SessionID: c.ID, KillerID: msg.KillerID})
	default:
		// Schema already restricts the type set; nothing to do.
	}
}
