package link

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxStreamPacketSize limits the length prefix accepted by StreamReadWriter.
const MaxStreamPacketSize = 4096

// StreamReadWriter implements PacketReadWriter over a byte stream
// (TCP, serial port). Each packet is prefixed by 4-byte (little-endian)
// length.
type StreamReadWriter struct {
	io.ReadWriter
}

// NewStream creates a StreamReadWriter with io.ReadWriter.
func NewStream(s io.ReadWriter) *StreamReadWriter {
	return &StreamReadWriter{s}
}

// ReadPacket implements PacketReader.
func (p *StreamReadWriter) ReadPacket() ([]byte, error) {
	var size uint32
	if err := binary.Read(p, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxStreamPacketSize {
		return nil, fmt.Errorf("packet size %d exceeds %d", size, MaxStreamPacketSize)
	}
	pkt := make([]byte, size)
	_, err := io.ReadFull(p, pkt)
	return pkt, err
}

// WritePacket implements PacketWriter.
func (p *StreamReadWriter) WritePacket(pkt []byte) error {
	buf := make([]byte, 4+len(pkt))
	binary.LittleEndian.PutUint32(buf, uint32(len(pkt)))
	copy(buf[4:], pkt)
	_, err := p.Write(buf)
	return err
}

// Close closes the underlying stream if it's an io.Closer.
func (p *StreamReadWriter) Close() error {
	if c, ok := p.ReadWriter.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
