package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			slog.Info("signal received", slog.String("signal", sig.String()))
			cancel()
		}
	}()

	return ctx, cancel
}

// Stopper is a server that can drain gracefully and be killed.
type Stopper struct {
	Name     string
	Graceful func(ctx context.Context) error
	Force    func()
}

// Run stops every server concurrently. Servers still draining after timeout
// are forced.
func Run(log *slog.Logger, timeout time.Duration, stoppers ...Stopper) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan string, len(stoppers))
	for _, s := range stoppers {
		go func() {
			if err := s.Graceful(ctx); err != nil {
				log.Error("graceful stop failed", slog.String("server", s.Name), slog.Any("err", err))
			}
			done <- s.Name
		}()
	}

	for range stoppers {
		select {
		case name := <-done:
			log.Info("server stopped", slog.String("server", name))
		case <-ctx.Done():
			log.Warn("graceful stop timeout, forcing stop")
			for _, s := range stoppers {
				if s.Force != nil {
					s.Force()
				}
			}
			return
		}
	}
}
