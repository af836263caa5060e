package frames

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/rover.go/pkg/cli/sh"
	"github.com/robotalks/rover.go/pkg/l0/rover"
)

func sendCmd(kind string, aliases ...string) ishell.Cmd {
	return ishell.Cmd{
		Name:    kind,
		Aliases: aliases,
		Help:    Usage(kind),
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			msg, err := ParseMessage(kind, c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoSend(c, msg)
		}),
	}
}

var (
	// WheelsCmd sends wheel speeds.
	WheelsCmd = sendCmd("wheels", "w")
	// LedCmd sends the LED color.
	LedCmd = sendCmd("led")
	// ArmCmd sends arm joint positions.
	ArmCmd = sendCmd("arm")
	// ScienceCmd sends science actuator positions.
	ScienceCmd = sendCmd("science", "sci")

	// StopCmd sets both wheels to neutral.
	StopCmd = ishell.Cmd{
		Name:    "stop",
		Aliases: []string{"s"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoSend(c, rover.NewWheelsNeutral())
		}),
	}

	// SendCmd sends a raw frame after validating it.
	SendCmd = ishell.Cmd{
		Name:    "send",
		Aliases: []string{"raw"},
		Help:    "HEX",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			frame, err := ParseHex(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			if err := sh.ShellFrom(c).Controller.SendFrame(frame); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}

	// DecodeCmd decodes a frame without sending it.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"dec"},
		Help:    "HEX",
		Func: func(c *ishell.Context) {
			frame, err := ParseHex(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			msg, err := rover.Decode(frame)
			if err != nil {
				c.Err(err)
				return
			}
			sh.PrintMessage(c, msg)
			if cs, ok := msg.(rover.Checksummed); ok && !rover.IsChecksumCorrect(cs) {
				c.Printf("checksum mismatch: expect %d\n", rover.Checksum(cs))
			}
		},
	}

	// EncodeCmd prints the frame of a message without sending it.
	EncodeCmd = ishell.Cmd{
		Name:    "encode",
		Aliases: []string{"enc"},
		Help:    "wheels|led|arm|science VALUES...",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("KIND required"))
				return
			}
			msg, err := ParseMessage(c.Args[0], c.Args[1:])
			if err != nil {
				c.Err(err)
				return
			}
			frame, err := rover.Encode(msg)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("% x\n", frame)
		},
	}
)

func init() {
	sh.AddCmds(
		&WheelsCmd,
		&StopCmd,
		&LedCmd,
		&ArmCmd,
		&ScienceCmd,
		&SendCmd,
		&DecodeCmd,
		&EncodeCmd,
	)
}
