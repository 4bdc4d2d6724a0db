package shutdown

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dwikikusuma/shopfront/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestRunGraceful(t *testing.T) {
	var forced atomic.Bool
	Run(logger.Discard(), time.Second, Stopper{
		Name:     "http",
		Graceful: func(context.Context) error { return nil },
		Force:    func() { forced.Store(true) },
	})
	assert.False(t, forced.Load())
}

func TestRunForcesAfterTimeout(t *testing.T) {
	release := make(chan struct{})
	var forced atomic.Bool

	Run(logger.Discard(), 20*time.Millisecond, Stopper{
		Name: "grpc",
		Graceful: func(context.Context) error {
			<-release
			return nil
		},
		Force: func() {
			forced.Store(true)
			close(release)
		},
	})
	assert.True(t, forced.Load())
}

func TestWithSignalsCancelledByParent(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithSignals(parent)
	defer cancel()

	cancelParent()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
}
