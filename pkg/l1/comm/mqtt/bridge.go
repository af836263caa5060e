package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/rover.go/pkg/l0/link"
	"github.com/robotalks/rover.go/pkg/l0/rover"
	"github.com/robotalks/rover.go/pkg/l1"
	"github.com/robotalks/rover.go/pkg/l1/msgs"
)

// Bridge topics relative to the bridge name.
const (
	TopicCmd    = "cmd"
	TopicReply  = "reply"
	TopicEvents = "events"
)

// ErrUnsupportedCommand indicates the command can't be sent to the rover.
var ErrUnsupportedCommand = errors.New("unsupported command")

// Bridge forwards Typed commands from MQTT to the rover and publishes
// frames received from the rover as events.
//
//   <name>/meta        retained ControllerMeta (JSON), cleared on exit
//   <name>/cmd         Typed commands in
//   <name>/reply       CommandOK/CommandErr out, same sequence as command
//   <name>/events/KIND Typed events out, KIND is wheels, led, arm, science or imu
//   <name>/frames/tx   raw frames in
//   <name>/frames/rx   raw frames out
type Bridge struct {
	Queue      *Queue
	Info       l1.ControllerInfo
	Controller *link.Controller

	seq uint32
}

// NewBridgeQueue creates a Queue for a bridge with a will clearing meta.
func NewBridgeQueue(brokerURL string, info l1.ControllerInfo) (*Queue, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+info.Ref.Name()+"/"+TopicMeta, nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("rover:" + info.Ref.ID)
	}
	return NewQueue(opts, topicPrefix), nil
}

// NewBridge creates a Bridge.
func NewBridge(q *Queue, info l1.ControllerInfo, ctl *link.Controller) *Bridge {
	return &Bridge{Queue: q, Info: info, Controller: ctl}
}

// Name implements Named.
func (b *Bridge) Name() string {
	return "bridge"
}

func (b *Bridge) topic(name string) string {
	return b.Info.Ref.Name() + "/" + name
}

// Run implements Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	b.Queue.OnConnect = func(*Queue) { b.publishMeta() }
	cmdSub := b.Queue.Sub(b.topic(TopicCmd), b.HandleCommand)
	txSub := b.Queue.Sub(b.topic(TopicFramesTx), b.HandleFrame)
	if err := WaitToken(ctx, b.Queue.Connect()); err != nil {
		return err
	}
	glog.Infof("bridge %s started", b.Info.Ref.Name())
	<-ctx.Done()
	cmdSub.Close()
	txSub.Close()
	b.Queue.PubWith(b.topic(TopicMeta), nil, 1, true).WaitTimeout(time.Second)
	b.Queue.Close()
	glog.Infof("bridge %s stopped", b.Info.Ref.Name())
	return ctx.Err()
}

func (b *Bridge) publishMeta() {
	meta, err := json.Marshal(&b.Info.Meta)
	if err != nil {
		glog.Errorf("encode meta error: %v", err)
		return
	}
	b.Queue.PubWith(b.topic(TopicMeta), meta, 1, true)
}

// HandleMessage implements link.Handler and publishes a frame received
// from the rover.
func (b *Bridge) HandleMessage(ctx context.Context, msg rover.Message) {
	if frame, err := rover.Encode(msg); err == nil {
		b.Queue.Pub(b.topic(TopicFramesRx), frame)
	} else {
		glog.Errorf("re-encode %v error: %v", msg, err)
	}
	event, err := msgs.FromRover(msg)
	if err != nil {
		glog.Warningf("no event for %v: %v", msg, err)
		return
	}
	data, err := msgs.EncodeMessage(event, atomic.AddUint32(&b.seq, 1))
	if err != nil {
		glog.Errorf("encode event %v error: %v", msg, err)
		return
	}
	b.Queue.Pub(b.topic(TopicEvents+"/"+EventKind(msg)), data)
}

// EventKind names the events topic of a message.
func EventKind(msg rover.Message) string {
	if part := msg.Part(); part != rover.PartNone {
		return part.String()
	}
	return msg.Subsystem().String()
}

// HandleCommand processes a Typed command and publishes the reply.
func (b *Bridge) HandleCommand(_ string, payload []byte) {
	typed, err := msgs.DecodeTyped(payload)
	if err != nil {
		glog.Warningf("invalid command: %v", err)
		b.reply(0, err)
		return
	}
	b.reply(typed.Sequence, b.execute(typed))
}

func (b *Bridge) execute(typed *msgs.Typed) error {
	if !typed.IsCommand() {
		return ErrUnsupportedCommand
	}
	m, err := typed.Decode()
	if err != nil {
		return err
	}
	if raw, ok := m.(*msgs.RawFrame); ok {
		return b.Controller.SendFrame(raw.Frame)
	}
	rm, ok := m.(msgs.RoverMessage)
	if !ok {
		return ErrUnsupportedCommand
	}
	msg, err := rm.ToRover()
	if err != nil {
		return err
	}
	return b.Controller.Send(msg)
}

func (b *Bridge) reply(seq uint32, err error) {
	var res msgs.SerializableMessage = &msgs.CommandOK{}
	if err != nil {
		glog.Warningf("command %d error: %v", seq, err)
		res = msgs.NewCommandErr(err)
	}
	data, err := msgs.EncodeMessage(res, seq)
	if err != nil {
		glog.Errorf("encode reply error: %v", err)
		return
	}
	b.Queue.Pub(b.topic(TopicReply), data)
}

// HandleFrame sends a raw frame to the rover.
func (b *Bridge) HandleFrame(_ string, payload []byte) {
	if err := b.Controller.SendFrame(payload); err != nil {
		glog.Warningf("%v", err)
	}
}
