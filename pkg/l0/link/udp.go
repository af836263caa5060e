package link

import (
	"errors"
	"net"
	"sync"
)

// MaxDatagramSize is the largest datagram UDPConn reads.
const MaxDatagramSize = 2048

// ErrNoPeer indicates a listening UDPConn has no peer to write to yet.
var ErrNoPeer = errors.New("no peer")

// UDPConn implements Conn over a UDP socket.
// A dialed conn talks to a fixed peer; a listening conn replies to
// whoever sent the most recent datagram.
type UDPConn struct {
	conn      *net.UDPConn
	connected bool

	peerLock sync.RWMutex
	peer     *net.UDPAddr
}

// DialUDP opens a socket bound to local (may be empty) and connected
// to remote.
func DialUDP(remote, local string) (*UDPConn, error) {
	raddr, err := net.ResolveUDPAddr("udp", remote)
	if err != nil {
		return nil, err
	}
	var laddr *net.UDPAddr
	if local != "" {
		if laddr, err = net.ResolveUDPAddr("udp", local); err != nil {
			return nil, err
		}
	}
	conn, err := net.DialUDP("udp", laddr, raddr)
	if err != nil {
		return nil, err
	}
	return &UDPConn{conn: conn, connected: true, peer: raddr}, nil
}

// ListenUDP opens a socket bound to local.
func ListenUDP(local string) (*UDPConn, error) {
	laddr, err := net.ResolveUDPAddr("udp", local)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, err
	}
	return &UDPConn{conn: conn}, nil
}

// LocalAddr returns the bound address.
func (c *UDPConn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// Peer returns the current peer, nil if unknown.
func (c *UDPConn) Peer() *net.UDPAddr {
	c.peerLock.RLock()
	defer c.peerLock.RUnlock()
	return c.peer
}

// ReadPacket implements PacketReader.
func (c *UDPConn) ReadPacket() ([]byte, error) {
	buf := make([]byte, MaxDatagramSize)
	n, addr, err := c.conn.ReadFromUDP(buf)
	if err != nil {
		return nil, err
	}
	if !c.connected {
		c.peerLock.Lock()
		c.peer = addr
		c.peerLock.Unlock()
	}
	return buf[:n], nil
}

// WritePacket implements PacketWriter.
func (c *UDPConn) WritePacket(pkt []byte) error {
	if c.connected {
		_, err := c.conn.Write(pkt)
		return err
	}
	peer := c.Peer()
	if peer == nil {
		return ErrNoPeer
	}
	_, err := c.conn.WriteToUDP(pkt, peer)
	return err
}

// Close implements io.Closer.
func (c *UDPConn) Close() error {
	return c.conn.Close()
}
