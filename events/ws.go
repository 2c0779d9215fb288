package events

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// OrderFeed upgrades the connection and streams order events until the
// client goes away.
func OrderFeed(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("OrderFeed upgrade:", err)
			return
		}
		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
		}
		// a stopped hub no longer drains register
		select {
		case hub.register <- client:
		case <-hub.done:
			conn.Close()
			return
		}

		go func() {
			for msg := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
			conn.Close()
		}()

		// the read loop only detects disconnects; clients never send
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		select {
		case hub.unregister <- client:
		case <-hub.done:
		}
	}
}
