package link

import "golang.org/x/net/websocket"

// WebsocketReadWriter implements PacketReadWriter with one binary
// websocket message per frame.
type WebsocketReadWriter websocket.Conn

// NewWebsocket wraps websocket.Conn.
func NewWebsocket(conn *websocket.Conn) *WebsocketReadWriter {
	return (*WebsocketReadWriter)(conn)
}

// DialWebsocket connects to a websocket endpoint.
func DialWebsocket(url, origin string) (*WebsocketReadWriter, error) {
	conn, err := websocket.Dial(url, "", origin)
	if err != nil {
		return nil, err
	}
	return NewWebsocket(conn), nil
}

// ReadPacket implements PacketReader.
func (p *WebsocketReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *WebsocketReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close implements io.Closer.
func (p *WebsocketReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}
