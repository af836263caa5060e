package env

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/robotalks/rover.go/pkg/l1"
)

// fileConfig is the layout of the TOML config file.
type fileConfig struct {
	ID             string            `toml:"id"`
	Description    string            `toml:"description"`
	Labels         map[string]string `toml:"labels"`
	RoverAddr      string            `toml:"rover_addr"`
	BindAddr       string            `toml:"bind_addr"`
	ListenAddr     string            `toml:"listen_addr"`
	MQTTBrokerURL  string            `toml:"mqtt_url"`
	MetricsAddr    string            `toml:"metrics_addr"`
	StrictChecksum bool              `toml:"strict_checksum"`
}

// LoadFile overlays keys defined in a TOML file onto c.
func (c *Config) LoadFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("id") {
		c.Info.Ref.ID = strings.TrimSpace(raw.ID)
	}
	if meta.IsDefined("description") {
		c.Info.Meta.Description = raw.Description
	}
	if meta.IsDefined("labels") {
		c.Info.Meta.Labels = raw.Labels
	}
	if meta.IsDefined("rover_addr") {
		c.RoverAddr = strings.TrimSpace(raw.RoverAddr)
	}
	if meta.IsDefined("bind_addr") {
		c.BindAddr = strings.TrimSpace(raw.BindAddr)
	}
	if meta.IsDefined("listen_addr") {
		c.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("mqtt_url") {
		c.MQTTBrokerURL = strings.TrimSpace(raw.MQTTBrokerURL)
	}
	if meta.IsDefined("metrics_addr") {
		c.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
	if meta.IsDefined("strict_checksum") {
		c.StrictChecksum = raw.StrictChecksum
	}
	return nil
}

func parseBridgeAddr(addr string) (l1.ControllerRef, bool) {
	if !strings.HasPrefix(addr, "mqtt://") {
		return l1.ControllerRef{}, false
	}
	u, err := url.Parse(addr)
	if err != nil {
		return l1.ControllerRef{}, false
	}
	ref := l1.ControllerRef{ID: u.Host}
	return ref, ref.IsValid()
}
