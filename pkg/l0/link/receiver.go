package link

import (
	"context"
	"io"

	"github.com/golang/glog"

	fx "github.com/robotalks/rover.go/pkg/framework"
	"github.com/robotalks/rover.go/pkg/l0/rover"
)

// Receiver reads frames, decodes and dispatches them to Handler.
// Frames which fail to decode are logged and dropped.
type Receiver struct {
	Reader   PacketReader
	Handler  Handler
	Observer Observer
	// Strict drops frames carrying a wrong checksum.
	Strict bool
}

// NewReceiver creates a Receiver.
func NewReceiver(r PacketReader, h Handler) *Receiver {
	return &Receiver{Reader: r, Handler: h, Observer: NopObserver{}}
}

// WithObserver sets the Observer.
func (r *Receiver) WithObserver(o Observer) *Receiver {
	r.Observer = o
	return r
}

// WithStrict sets Strict.
func (r *Receiver) WithStrict(strict bool) *Receiver {
	r.Strict = strict
	return r
}

// Name implements Named.
func (r *Receiver) Name() string {
	return "receiver"
}

// Run implements Runnable. If Reader is an io.Closer, it's closed when
// ctx is canceled to unblock the pending read.
func (r *Receiver) Run(ctx context.Context) error {
	recv := func() error {
		for {
			pkt, err := r.Reader.ReadPacket()
			if err != nil {
				return err
			}
			r.Dispatch(ctx, pkt)
		}
	}
	if closer, ok := r.Reader.(io.Closer); ok {
		return fx.RunWithContextCloser(ctx, closer, recv)
	}
	return fx.RunWithContext(ctx, recv)
}

// Dispatch decodes a single frame and passes it to Handler.
func (r *Receiver) Dispatch(ctx context.Context, pkt []byte) {
	decode := rover.Decode
	if r.Strict {
		decode = rover.DecodeVerified
	}
	obs := r.Observer
	if obs == nil {
		obs = NopObserver{}
	}
	msg, err := decode(pkt)
	if err != nil {
		glog.Warningf("drop frame [% x]: %v", pkt, err)
		obs.DecodeFailed(err)
		return
	}
	glog.V(2).Infof("RCV %v", msg)
	obs.FrameReceived(msg)
	if r.Handler != nil {
		r.Handler.HandleMessage(ctx, msg)
	}
}
