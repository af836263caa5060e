package link

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/rover.go/pkg/l0/rover"
)

// SendError is returned by Controller when a message can't be sent.
// Err is either a codec error (*rover.ParsingError, *rover.InvariantError)
// or the error from the transport.
type SendError struct {
	Msg   rover.Message
	Frame []byte
	Err   error
}

// Error implements error.
func (e *SendError) Error() string {
	if e.Msg == nil {
		return fmt.Sprintf("send [% x] error: %v", e.Frame, e.Err)
	}
	return fmt.Sprintf("send %v error: %v", e.Msg, e.Err)
}

// Unwrap returns the cause.
func (e *SendError) Unwrap() error {
	return e.Err
}

// IsCodecError tells if the message was rejected before reaching the
// transport.
func (e *SendError) IsCodecError() bool {
	var perr *rover.ParsingError
	var ierr *rover.InvariantError
	return errors.As(e.Err, &perr) || errors.As(e.Err, &ierr) || errors.Is(e.Err, rover.ErrNilMessage)
}

// Controller sends commands to the rover.
type Controller struct {
	Writer   PacketWriter
	Observer Observer
	// Strict rejects raw frames with a wrong checksum in SendFrame.
	Strict bool

	lock sync.Mutex
}

// NewController creates a Controller.
func NewController(w PacketWriter) *Controller {
	return &Controller{Writer: w, Observer: NopObserver{}}
}

// WithObserver sets the Observer.
func (c *Controller) WithObserver(o Observer) *Controller {
	c.Observer = o
	return c
}

// WithStrict sets Strict.
func (c *Controller) WithStrict(strict bool) *Controller {
	c.Strict = strict
	return c
}

// Send encodes and writes a message.
func (c *Controller) Send(msg rover.Message) error {
	frame, err := rover.Encode(msg)
	if err != nil {
		var ierr *rover.InvariantError
		if errors.As(err, &ierr) {
			glog.Errorf("%v", err)
		}
		return c.failed(&SendError{Msg: msg, Err: err})
	}
	return c.write(msg, frame)
}

// SendFrame validates a raw frame and writes it.
func (c *Controller) SendFrame(frame []byte) error {
	decode := rover.Decode
	if c.Strict {
		decode = rover.DecodeVerified
	}
	msg, err := decode(frame)
	if err != nil {
		return c.failed(&SendError{Frame: frame, Err: err})
	}
	return c.write(msg, frame)
}

// SendWheels sends wheel speeds.
func (c *Controller) SendWheels(left, right uint8) error {
	return c.Send(rover.NewWheels(left, right))
}

// Stop sends neutral wheel speeds.
func (c *Controller) Stop() error {
	return c.Send(rover.NewWheelsNeutral())
}

// SendLed sends the LED color.
func (c *Controller) SendLed(red, green, blue uint8) error {
	return c.Send(rover.NewLed(red, green, blue))
}

// SendArm sends arm joint positions.
func (c *Controller) SendArm(bicep, forearm, base, wristPitch, wristRoll, claw uint8) error {
	return c.Send(rover.NewArm(bicep, forearm, base, wristPitch, wristRoll, claw))
}

// SendScience sends science package actuator positions.
func (c *Controller) SendScience(bigActuator, drill, smallActuator, testTubes, cameraServo uint8) error {
	return c.Send(rover.NewScience(bigActuator, drill, smallActuator, testTubes, cameraServo))
}

func (c *Controller) write(msg rover.Message, frame []byte) error {
	c.lock.Lock()
	err := c.Writer.WritePacket(frame)
	c.lock.Unlock()
	if err != nil {
		glog.Errorf("send %v [% x] error: %v", msg, frame, err)
		return c.failed(&SendError{Msg: msg, Frame: frame, Err: err})
	}
	glog.V(2).Infof("SND %v [% x]", msg, frame)
	c.observer().FrameSent(msg)
	return nil
}

func (c *Controller) failed(err *SendError) error {
	c.observer().SendFailed(err)
	return err
}

func (c *Controller) observer() Observer {
	if c.Observer == nil {
		return NopObserver{}
	}
	return c.Observer
}
