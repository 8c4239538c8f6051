package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// invalidator drops a cached catalog snapshot.
type invalidator interface {
	Invalidate()
}

// reloadOn invalidates cache for every signal received until ctx is done.
func reloadOn(ctx context.Context, signals <-chan os.Signal, cache invalidator, logger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-signals:
			cache.Invalidate()
			logger.Info("catalog cache invalidated", zap.String("signal", sig.String()))
		}
	}
}

// reloadOnHangup makes SIGHUP force a catalog reload on the next request.
// The returned func stops watching.
func reloadOnHangup(ctx context.Context, cache invalidator, logger *zap.Logger) func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		reloadOn(ctx, signals, cache, logger)
	}()

	return func() {
		signal.Stop(signals)
		cancel()
		<-done
	}
}
