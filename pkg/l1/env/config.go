// Package env sets up rover links, bridges and metrics from flags,
// environment variables and an optional TOML file.
package env

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/robotalks/rover.go/pkg/l0/link"
	"github.com/robotalks/rover.go/pkg/l1"
	"github.com/robotalks/rover.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/rover.go/pkg/metrics"
)

// Config provides common options for rover commands.
type Config struct {
	Info l1.ControllerInfo

	// RoverAddr is the address of the rover microcontroller.
	// e.g. udp://192.168.1.101:1001, tcp://host:port, ws://host/path
	RoverAddr string
	// BindAddr is the local UDP address of the rover link.
	BindAddr string
	// ListenAddr is the local UDP address receiving telemetry.
	ListenAddr string
	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// MetricsAddr is where /metrics is served, disabled if empty.
	MetricsAddr string
	// StrictChecksum drops or rejects frames with a wrong checksum.
	StrictChecksum bool
	// ConfigFile is a TOML file overriding the above.
	ConfigFile string
}

var defaultConfig = Config{
	RoverAddr:     "udp://192.168.1.101:1001",
	ListenAddr:    ":1002",
	MQTTBrokerURL: "mqtt://localhost:1883/robo/",
}

func init() {
	if val := os.Getenv("ROVER_ADDR"); val != "" {
		defaultConfig.RoverAddr = val
	}
	if val := os.Getenv("ROVER_BIND"); val != "" {
		defaultConfig.BindAddr = val
	}
	if val := os.Getenv("ROVER_LISTEN"); val != "" {
		defaultConfig.ListenAddr = val
	}
	if val := os.Getenv("ROVER_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("ROVER_METRICS_ADDR"); val != "" {
		defaultConfig.MetricsAddr = val
	}
	if val, err := strconv.ParseBool(os.Getenv("ROVER_STRICT_CHECKSUM")); err == nil {
		defaultConfig.StrictChecksum = val
	}
	defaultConfig.ConfigFile = os.Getenv("ROVER_CONFIG")
	defaultConfig.Info.Ref.ID = MachineID()
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Bridge ID")
	flag.StringVar(&defaultConfig.Info.Meta.Description, "desc", defaultConfig.Info.Meta.Description, "Bridge description")
	flag.StringVar(&defaultConfig.RoverAddr, "rover", defaultConfig.RoverAddr, "Rover address")
	flag.StringVar(&defaultConfig.BindAddr, "bind", defaultConfig.BindAddr, "Local address of rover link")
	flag.StringVar(&defaultConfig.ListenAddr, "listen", defaultConfig.ListenAddr, "Local address receiving telemetry")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.MetricsAddr, "metrics", defaultConfig.MetricsAddr, "Serve Prometheus metrics on address")
	flag.BoolVar(&defaultConfig.StrictChecksum, "strict", defaultConfig.StrictChecksum, "Reject frames with wrong checksum")
	flag.StringVar(&defaultConfig.ConfigFile, "config", defaultConfig.ConfigFile, "TOML config file")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations,
// loading ConfigFile if specified.
func NewConfig() *Config {
	conf := defaultConfig
	if conf.ConfigFile != "" {
		if err := conf.LoadFile(conf.ConfigFile); err != nil {
			log.Fatalln(err)
		}
	}
	return &conf
}

// Validate checks the config.
func (c *Config) Validate() error {
	if !c.Info.Ref.IsValid() {
		return fmt.Errorf("invalid bridge id %q", c.Info.Ref.ID)
	}
	if c.RoverAddr == "" {
		return fmt.Errorf("rover address must be specified")
	}
	return nil
}

// Observer returns the link.Observer exporting metrics, or a no-op
// one if metrics are disabled.
func (c *Config) Observer() link.Observer {
	if c.MetricsAddr == "" {
		return link.NopObserver{}
	}
	return metrics.NewObserver()
}

// MetricsServer creates the metrics server, nil if disabled.
func (c *Config) MetricsServer() *metrics.Server {
	if c.MetricsAddr == "" {
		return nil
	}
	return &metrics.Server{Addr: c.MetricsAddr}
}

// Dial opens the link to the rover. An mqtt:// address reaches the rover
// through a bridge, using the broker in MQTTBrokerURL and the bridge ID
// in the host part, e.g. mqtt://0123456789abcdef.
func (c *Config) Dial(ctx context.Context) (link.Conn, error) {
	if ref, ok := parseBridgeAddr(c.RoverAddr); ok {
		connector, err := mqtt.NewConnector(c.MQTTBrokerURL)
		if err != nil {
			return nil, err
		}
		return connector.Connect(ctx, ref)
	}
	return link.Dial(c.RoverAddr, c.BindAddr)
}

// NewController dials the rover and creates a Controller.
func (c *Config) NewController(ctx context.Context) (*link.Controller, link.Conn, error) {
	conn, err := c.Dial(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("connect rover %s error: %w", c.RoverAddr, err)
	}
	ctl := link.NewController(conn).
		WithObserver(c.Observer()).
		WithStrict(c.StrictChecksum)
	return ctl, conn, nil
}

// MustNewController creates Controller and fails on error.
func (c *Config) MustNewController(ctx context.Context) (*link.Controller, link.Conn) {
	ctl, conn, err := c.NewController(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	return ctl, conn
}

// NewReceiver creates a Receiver reading telemetry from r.
func (c *Config) NewReceiver(r link.PacketReader, h link.Handler) *link.Receiver {
	return link.NewReceiver(r, h).
		WithObserver(c.Observer()).
		WithStrict(c.StrictChecksum)
}

// ListenTelemetry opens the UDP socket receiving telemetry.
func (c *Config) ListenTelemetry() (*link.UDPConn, error) {
	return link.ListenUDP(c.ListenAddr)
}

// NewBridge creates the MQTT bridge forwarding commands to ctl.
func (c *Config) NewBridge(ctl *link.Controller) (*mqtt.Bridge, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	info := c.Info
	info.Meta.RoverAddr = c.RoverAddr
	q, err := mqtt.NewBridgeQueue(c.MQTTBrokerURL, info)
	if err != nil {
		return nil, fmt.Errorf("create MQTT queue error: %w", err)
	}
	return mqtt.NewBridge(q, info, ctl), nil
}

// NewConnector creates the connector discovering bridges.
func (c *Config) NewConnector() (*mqtt.Connector, error) {
	return mqtt.NewConnector(c.MQTTBrokerURL)
}
