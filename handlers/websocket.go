package handlers

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/4cecoder/arena/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the connection, assigns a session id, and
// runs the read loop until the session ends. The player itself is only
// created once the client sends a join message; on disconnect a leave
// intent removes it and neutralizes its timers before the next tick
// reads it.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	client := newClient(h, conn, uuid.New().String())
	h.register(client)
	go client.writePump()

	client.readPump()

	h.unregister(client)
	h.engine.Post(game.LeaveIntent{SessionID: client.ID})
	if err := conn.Close(); err != nil {
		log.Println("close:", err)
	}
}
