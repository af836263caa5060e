package framework

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Aggregate())
	errA, errB := errors.New("a"), errors.New("b")
	errs.Add(nil, errA)
	require.EqualError(t, errs.Aggregate(), "a")
	errs.Add(errB)
	err := errs.Aggregate()
	require.EqualError(t, err, "Multiple errors:\na\nb")
	require.True(t, errors.Is(err, errB))
}

func TestRunnerStopsAll(t *testing.T) {
	failure := errors.New("failure")
	r := NewRunner()
	err := r.Run(
		NamedRun("blocker", RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})),
		NamedRun("failing", RunFunc(func(context.Context) error {
			return failure
		})),
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, failure))
	require.EqualError(t, err, "failing: failure")
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	r.Stop()
	require.NoError(t, r.Wait())
}

type blockingCloser struct {
	ch chan struct{}
}

func (c *blockingCloser) Close() error {
	close(c.ch)
	return nil
}

func TestRunWithContextCloser(t *testing.T) {
	c := &blockingCloser{ch: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := RunWithContextCloser(ctx, c, func() error {
		<-c.ch
		return io.EOF
	})
	require.Equal(t, context.Canceled, err)

	c = &blockingCloser{ch: make(chan struct{})}
	err = RunWithContextCloser(context.Background(), c, func() error {
		return io.EOF
	})
	require.Equal(t, io.EOF, err)
	_, open := <-c.ch
	require.False(t, open)
}
