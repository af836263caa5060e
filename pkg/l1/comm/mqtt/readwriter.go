package mqtt

import (
	"io"
	"sync"

	"github.com/robotalks/rover.go/pkg/l1"
)

// Frame topics relative to the bridge name.
const (
	// TopicFramesTx carries raw L0 frames to be sent to the rover.
	TopicFramesTx = "frames/tx"
	// TopicFramesRx carries raw L0 frames received from the rover.
	TopicFramesRx = "frames/rx"
)

// ReadWriter implements link.Conn with raw L0 frames over MQTT.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh  chan []byte
	sub       *Subscription
	closeOnce sync.Once
	closed    chan struct{}
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		closed:   make(chan struct{}),
	}
}

// WithTopics specifies the topics and subscribes SubTopic.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	p.sub = p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	return p
}

// ForClient sets topics using default convention for clients of a bridge:
// SubTopic = prefix/frames/rx
// PubTopic = prefix/frames/tx
func (p *ReadWriter) ForClient(ref l1.ControllerRef) *ReadWriter {
	prefix := ref.Name() + "/"
	return p.WithTopics(prefix+TopicFramesRx, prefix+TopicFramesTx)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.closed:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Close implements io.Closer. The Queue is left open.
func (p *ReadWriter) Close() (err error) {
	p.closeOnce.Do(func() {
		close(p.closed)
		if p.sub != nil {
			err = p.sub.Close()
		}
	})
	return
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.closed:
	}
}
