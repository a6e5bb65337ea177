// Package signal turns SIGINT and SIGTERM into context cancellation so a
// blocking release check can be abandoned from the terminal.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Watcher cancels its context when the process is interrupted.
type Watcher struct {
	ctx         context.Context
	cancel      context.CancelFunc
	sigCh       chan os.Signal
	interrupted atomic.Bool
}

// Watch registers SIGINT and SIGTERM handlers. On the first signal it calls
// onInterrupt (if non-nil) and cancels the returned watcher's context.
//
// Call Stop when the guarded work is done to restore default signal
// behaviour and release the watcher goroutine.
//
//	w := signal.Watch(context.Background(), func() {
//	    logging.Warn("Interrupted")
//	})
//	defer w.Stop()
//	probe.CheckLatestVersion(w.Context())
func Watch(parent context.Context, onInterrupt func()) *Watcher {
	ctx, cancel := context.WithCancel(parent)
	w := &Watcher{
		ctx:    ctx,
		cancel: cancel,
		sigCh:  make(chan os.Signal, 1),
	}
	signal.Notify(w.sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-w.sigCh:
			w.interrupted.Store(true)
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
		}
	}()
	return w
}

// Context is cancelled on interrupt, on Stop, or when the parent is done.
func (w *Watcher) Context() context.Context {
	return w.ctx
}

// Interrupted reports whether a signal was received.
func (w *Watcher) Interrupted() bool {
	return w.interrupted.Load()
}

// Stop unregisters the handlers and cancels the context.
func (w *Watcher) Stop() {
	signal.Stop(w.sigCh)
	w.cancel()
}
