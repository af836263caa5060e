// Package metrics exports link counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/rover.go/pkg/l0/link"
	"github.com/robotalks/rover.go/pkg/l0/rover"
)

const namespace = "rover"

var (
	registerOnce sync.Once

	framesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "link",
			Name:      "frames_sent_total",
			Help:      "Frames sent to the rover.",
		},
		[]string{"subsystem", "part"},
	)
	framesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "link",
			Name:      "frames_received_total",
			Help:      "Frames received from the rover.",
		},
		[]string{"subsystem", "part"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "link",
			Name:      "decode_errors_total",
			Help:      "Received frames dropped because they failed to decode.",
		},
		[]string{"kind"},
	)
	sendErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "link",
			Name:      "send_errors_total",
			Help:      "Messages which failed to be sent.",
		},
		[]string{"cause"},
	)
)

// RegisterMetrics registers all collectors to the default registry.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(framesSent, framesReceived, decodeErrors, sendErrors)
	})
}

// Observer implements link.Observer.
type Observer struct{}

// NewObserver registers metrics and creates an Observer.
func NewObserver() *Observer {
	RegisterMetrics()
	return &Observer{}
}

// FrameSent implements link.Observer.
func (o *Observer) FrameSent(msg rover.Message) {
	framesSent.WithLabelValues(msg.Subsystem().String(), msg.Part().String()).Inc()
}

// FrameReceived implements link.Observer.
func (o *Observer) FrameReceived(msg rover.Message) {
	framesReceived.WithLabelValues(msg.Subsystem().String(), msg.Part().String()).Inc()
}

// SendFailed implements link.Observer.
func (o *Observer) SendFailed(err *link.SendError) {
	cause := "transport"
	if err.IsCodecError() {
		cause = "codec"
	}
	sendErrors.WithLabelValues(cause).Inc()
}

// DecodeFailed implements link.Observer.
func (o *Observer) DecodeFailed(err error) {
	decodeErrors.WithLabelValues(ErrorKind(err)).Inc()
}

// ErrorKind labels a decode error.
func ErrorKind(err error) string {
	var perr *rover.ParsingError
	if errors.As(err, &perr) {
		return perr.Kind.String()
	}
	return "unknown"
}

// Server serves /metrics.
type Server struct {
	Addr string
}

// Name implements Named.
func (s *Server) Name() string {
	return "metrics"
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	RegisterMetrics()
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: s.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		glog.Infof("metrics on %s", s.Addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}
