package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/rover.go/pkg/l0/link"
	"github.com/robotalks/rover.go/pkg/l0/rover"
)

type failingWriter struct{}

func (failingWriter) WritePacket([]byte) error { return errors.New("unreachable") }

func TestObserver(t *testing.T) {
	o := NewObserver()
	before := testutil.ToFloat64(framesReceived.WithLabelValues("imu", "none"))
	r := link.NewReceiver(nil, nil).WithObserver(o)
	r.Dispatch(context.Background(), rover.MustEncode(rover.NewImu(rover.Vector3{}, rover.Vector3{}, rover.Vector3{})))
	require.Equal(t, before+1, testutil.ToFloat64(framesReceived.WithLabelValues("imu", "none")))

	before = testutil.ToFloat64(decodeErrors.WithLabelValues("invalid subsystem"))
	r.Dispatch(context.Background(), []byte{9})
	require.Equal(t, before+1, testutil.ToFloat64(decodeErrors.WithLabelValues("invalid subsystem")))

	c := link.NewController(failingWriter{}).WithObserver(o)
	transport := testutil.ToFloat64(sendErrors.WithLabelValues("transport"))
	codec := testutil.ToFloat64(sendErrors.WithLabelValues("codec"))
	require.Error(t, c.SendLed(1, 2, 3))
	require.Error(t, c.SendFrame([]byte{1}))
	require.Equal(t, transport+1, testutil.ToFloat64(sendErrors.WithLabelValues("transport")))
	require.Equal(t, codec+1, testutil.ToFloat64(sendErrors.WithLabelValues("codec")))
}

func TestErrorKind(t *testing.T) {
	_, err := rover.Decode(nil)
	require.Equal(t, "zero length slice", ErrorKind(err))
	require.Equal(t, "unknown", ErrorKind(errors.New("x")))
}
