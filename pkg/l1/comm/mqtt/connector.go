package mqtt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/rover.go/pkg/l1"
)

// TopicMeta is the retained topic carrying bridge metadata.
const TopicMeta = "meta"

// Connector discovers rover bridges and opens raw frame links to them.
type Connector struct {
	DiscoverTimeout time.Duration

	options     *paho.ClientOptions
	topicPrefix string
}

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// NewConnector creates a Connector.
func NewConnector(brokerURL string) (*Connector, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	return &Connector{
		DiscoverTimeout: DefaultDiscoverTimeout,
		options:         opts,
		topicPrefix:     topicPrefix,
	}, nil
}

// ParseMeta extracts bridge info from a meta message. Empty payload
// means the bridge is gone.
func ParseMeta(topic string, payload []byte) (l1.ControllerInfo, bool) {
	if len(payload) == 0 || !strings.HasSuffix(topic, "/"+TopicMeta) {
		return l1.ControllerInfo{}, false
	}
	ref, ok := l1.ParseRef(strings.TrimSuffix(topic, "/"+TopicMeta))
	if !ok {
		return l1.ControllerInfo{}, false
	}
	info := l1.ControllerInfo{Ref: ref}
	if err := json.Unmarshal(payload, &info.Meta); err != nil {
		glog.Warningf("invalid meta of %s: %v", ref.Name(), err)
	}
	return info, true
}

// Discover enumerates bridges with retained meta.
func (c *Connector) Discover(ctx context.Context) (res []l1.ControllerInfo, err error) {
	q := NewQueue(c.options, c.topicPrefix)
	if err = WaitToken(ctx, q.Connect()); err != nil {
		return nil, err
	}
	defer q.Close()
	resCh := make(chan l1.ControllerInfo, 1)
	q.Sub(l1.RefType+"/+/"+TopicMeta, Handler(func(topic string, payload []byte) {
		if info, ok := ParseMeta(topic, payload); ok {
			select {
			case resCh <- info:
			case <-time.After(time.Second):
			}
		}
	}))

	dur := c.DiscoverTimeout
	if dur == 0 {
		dur = DefaultDiscoverTimeout
	}
	timeout := time.After(dur)
	for {
		select {
		case info := <-resCh:
			res = append(res, info)
		case <-timeout:
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}

// Connect opens a raw frame link to the bridge.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (*ClientConn, error) {
	q := NewQueue(c.options, c.topicPrefix)
	if err := WaitToken(ctx, q.Connect()); err != nil {
		return nil, err
	}
	return &ClientConn{ReadWriter: NewPacketReadWriter(q).ForClient(ref)}, nil
}

// ClientConn is a raw frame link owning its Queue.
type ClientConn struct {
	*ReadWriter
}

// Close implements io.Closer.
func (c *ClientConn) Close() error {
	err := c.ReadWriter.Close()
	c.Queue.Close()
	return err
}
