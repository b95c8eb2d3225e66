package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRunner_RunsImmediatelyAndOnTicks(t *testing.T) {
	var runs atomic.Int64

	r := NewRunner(zap.NewNop())
	r.Add(Job{
		Name:     "counter",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	r.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	r.Stop()

	got := runs.Load()
	if got < 2 {
		t.Errorf("job ran %d times, want at least 2 (immediate + ticks)", got)
	}
}

func TestRunner_StopCancelsContext(t *testing.T) {
	started := make(chan struct{})
	canceled := make(chan struct{})

	r := NewRunner(zap.NewNop())
	r.Add(Job{
		Name:     "blocker",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			close(canceled)
			return ctx.Err()
		},
	})

	r.Start(context.Background())
	<-started

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("job context was not canceled by Stop")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestRunner_JobErrorsAreNotFatal(t *testing.T) {
	var runs atomic.Int64

	r := NewRunner(zap.NewNop())
	r.Add(Job{
		Name:     "failing",
		Interval: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return errors.New("boom")
		},
	})

	r.Start(context.Background())
	time.Sleep(40 * time.Millisecond)
	r.Stop()

	if runs.Load() < 2 {
		t.Errorf("failing job should keep running, ran %d times", runs.Load())
	}
}

func TestRunner_NoJobs(t *testing.T) {
	r := NewRunner(zap.NewNop())
	r.Start(context.Background())
	r.Stop() // must not hang or panic
}
