package link

import (
	"context"
	"io"

	"github.com/robotalks/rover.go/pkg/l0/rover"
)

// PacketReader reads one frame per call.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes one frame per call.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes frames.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// Conn is a PacketReadWriter owning a connection.
type Conn interface {
	PacketReadWriter
	io.Closer
}

// Handler processes a decoded message.
type Handler interface {
	HandleMessage(context.Context, rover.Message)
}

// HandlerFunc is the func form of Handler.
type HandlerFunc func(context.Context, rover.Message)

// HandleMessage implements Handler.
func (f HandlerFunc) HandleMessage(ctx context.Context, msg rover.Message) {
	f(ctx, msg)
}

// Observer is notified about frames passing through the link.
// All methods must be safe for concurrent use.
type Observer interface {
	FrameSent(rover.Message)
	FrameReceived(rover.Message)
	SendFailed(*SendError)
	DecodeFailed(error)
}

// NopObserver ignores everything.
type NopObserver struct{}

// FrameSent implements Observer.
func (NopObserver) FrameSent(rover.Message) {}

// FrameReceived implements Observer.
func (NopObserver) FrameReceived(rover.Message) {}

// SendFailed implements Observer.
func (NopObserver) SendFailed(*SendError) {}

// DecodeFailed implements Observer.
func (NopObserver) DecodeFailed(error) {}
