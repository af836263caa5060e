package link

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Dial opens a Conn to the rover.
//
//   udp://host:port   datagrams, bound to bind if not empty
//   tcp://host:port   length-prefixed stream
//   ws://host/path    websocket, one message per frame
//
// An address without scheme is treated as UDP.
func Dial(addr, bind string) (Conn, error) {
	if !strings.Contains(addr, "://") {
		return DialUDP(addr, bind)
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "udp":
		return DialUDP(u.Host, bind)
	case "tcp":
		conn, err := net.Dial("tcp", u.Host)
		if err != nil {
			return nil, err
		}
		return NewStream(conn), nil
	case "ws", "wss":
		origin := "http://" + u.Host
		if u.Scheme == "wss" {
			origin = "https://" + u.Host
		}
		return DialWebsocket(addr, origin)
	}
	return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
}
