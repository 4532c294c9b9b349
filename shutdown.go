package svcrun

import (
	"context"
	"sync"
)

// shutdownChannel is a one-shot, cross-thread cooperative termination
// signal. The zero value is not usable; construct with newShutdownChannel.
// signal is idempotent (repeated calls are silently ignored) and safe to
// call from a signal handler or an SCM control callback: it only ever
// closes a channel under a sync.Once, which never blocks and never
// allocates after the first call.
type shutdownChannel struct {
	once sync.Once
	ch   chan struct{}
}

func newShutdownChannel() *shutdownChannel {
	return &shutdownChannel{ch: make(chan struct{})}
}

// signal requests shutdown. Safe to call more than once and safe to call
// concurrently with recvChan/context.
func (s *shutdownChannel) signal() {
	s.once.Do(func() { close(s.ch) })
}

// recvChan is the synchronous, blocking-receive variant of the shutdown
// notifier: it yields a channel that is closed exactly once, when signal
// is called. This is handed directly to workloads as Manager.StopChan.
func (s *shutdownChannel) recvChan() <-chan struct{} {
	return s.ch
}

// context is the cooperative-async variant: a context.Context whose Done()
// channel closes when signal is called. This is the idiomatic Go analogue
// of a wakeable async-receive queue -- any code already built around
// context cancellation (most of the Go async ecosystem: net/http servers,
// database drivers, gRPC) can select on it directly instead of the raw
// channel.
func (s *shutdownChannel) context(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case <-s.ch:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx
}
