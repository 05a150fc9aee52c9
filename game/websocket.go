package game

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebsocketConn adapts a gorilla connection to the EventSink interface and
// carries the client's request stream. Writes are serialized: the session
// loop and the request handler can both emit events.
type WebsocketConn struct {
	socket *websocket.Conn
	locker sync.Mutex
}

func NewWebsocketConn(conn *websocket.Conn) *WebsocketConn {
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(time.Minute))
		return nil
	})
	return &WebsocketConn{socket: conn}
}

func (wc *WebsocketConn) Send(ev Event) error {
	wc.locker.Lock()
	defer wc.locker.Unlock()
	return wc.socket.WriteJSON(ev)
}

func (wc *WebsocketConn) ReadRequest() (Request, error) {
	var req Request
	err := wc.socket.ReadJSON(&req)
	return req, err
}

func (wc *WebsocketConn) Close(errCode string) {
	wc.locker.Lock()
	defer wc.locker.Unlock()
	wc.socket.SetWriteDeadline(time.Now().Add(time.Second * 20))
	wc.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, errCode))
	wc.socket.Close()
}
