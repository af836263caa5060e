package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/rover.go/pkg/l0/link"
	"github.com/robotalks/rover.go/pkg/l0/rover"
	"github.com/robotalks/rover.go/pkg/l1"
	"github.com/robotalks/rover.go/pkg/l1/env"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool

	Shell      *ishell.Shell
	Config     *env.Config
	Conn       link.Conn
	Controller *link.Controller
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
	connectTimeout    = 5 * time.Second
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&DiscoverCmd,
		&ConnectCmd,
		&DisconnectCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requires a connection.
// The configured rover is connected on first use.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		s := ShellFrom(c)
		if s.Controller == nil && s.Config.RoverAddr != "" {
			if err := s.Connect(s.Config.RoverAddr); err != nil {
				c.Err(err)
				return
			}
		}
		if s.Controller == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

// FormatInfo prints ControllerInfo into friendly string for display.
func FormatInfo(info l1.ControllerInfo) string {
	str := info.Ref.Name()
	if info.Meta.RoverAddr != "" {
		str += " (" + info.Meta.RoverAddr + ")"
	}
	if info.Meta.Description != "" {
		str += ": " + info.Meta.Description
	}
	return str
}

// FormatMessage formats a message for display.
func FormatMessage(msg rover.Message, asJSON bool) (string, error) {
	if !asJSON {
		return msg.String(), nil
	}
	out, err := json.Marshal(struct {
		Kind    string        `json:"kind"`
		Message rover.Message `json:"message"`
	}{Kind: fmt.Sprintf("%s/%s", msg.Subsystem(), msg.Part()), Message: msg})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// PrintMessage prints a message honoring OutputJSON.
func PrintMessage(c *ishell.Context, msg rover.Message) {
	out, err := FormatMessage(msg, ShellFrom(c).OutputJSON)
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(out)
}

// DoSend sends a message and prints the result.
func DoSend(c *ishell.Context, msg rover.Message) error {
	s := ShellFrom(c)
	if err := s.Controller.Send(msg); err != nil {
		c.Err(err)
		return err
	}
	if s.OutputJSON {
		PrintMessage(c, msg)
		return nil
	}
	c.Println("OK")
	return nil
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// Connect connects the rover at addr, replacing the current connection.
func (s *Shell) Connect(addr string) error {
	conf := *s.Config
	conf.RoverAddr = addr
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	ctl, conn, err := conf.NewController(ctx)
	if err != nil {
		return err
	}
	s.Disconnect()
	s.Conn, s.Controller = conn, ctl
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", addr))
	return nil
}

// Disconnect disconnects the current rover.
func (s *Shell) Disconnect() {
	if s.Conn != nil {
		s.Conn.Close()
		s.Conn, s.Controller = nil, nil
		s.Shell.SetPrompt(unconnectedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect && s.Config.RoverAddr != "" {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", s.Config.RoverAddr)
		}
		if err := s.Connect(s.Config.RoverAddr); err != nil {
			log.Fatalf("connect %q failed: %v", s.Config.RoverAddr, err)
		}
	}
	defer s.Disconnect()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// DiscoverCmd discovers rover bridges.
	DiscoverCmd = ishell.Cmd{
		Name:    "discover",
		Aliases: []string{"list", "l"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			connector, err := s.Config.NewConnector()
			if err != nil {
				c.Err(err)
				return
			}
			infoList, err := connector.Discover(context.Background())
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if len(infoList) == 0 {
					// in case infoList is nil, make it empty slice.
					infoList = []l1.ControllerInfo{}
				}
				out, err := json.Marshal(infoList)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			if len(infoList) == 0 {
				c.Println("No bridges found")
				return
			}
			for _, info := range infoList {
				c.Println(FormatInfo(info))
			}
		},
	}

	// ConnectCmd connects a rover.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "[ADDR] (udp://host:port, tcp://host:port, ws://host/path, mqtt://BRIDGE-ID)",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			addr := s.Config.RoverAddr
			if len(c.Args) > 0 {
				addr = c.Args[0]
			}
			if addr == "" {
				c.Err(fmt.Errorf("ADDR required"))
				return
			}
			if err := s.Connect(addr); err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd disconnects current rover.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).Run(flag.Args()...)
}
