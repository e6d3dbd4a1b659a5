// Package signals ties process signals to long-running commands: SIGINT and
// SIGTERM stop them, SIGHUP reloads their configuration.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/endorses/telnum/internal/pkg/logger"
)

// SetupHandler cancels the provided context on SIGINT or SIGTERM.
// Returns a cleanup function that should be called when the signal handler is no longer needed
func SetupHandler(ctx context.Context, cancel context.CancelFunc) (cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case sig := <-sigCh:
			logger.Info("Received signal, initiating shutdown", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return func() {
		signal.Stop(sigCh)
		<-done
	}
}

// OnReload calls reload for every SIGHUP until ctx is done.
// Returns a cleanup function that stops delivery and waits for a running reload.
func OnReload(ctx context.Context, reload func()) (cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-sigCh:
				logger.Info("Received SIGHUP, reloading")
				reload()
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(stop)
		<-done
	}
}
