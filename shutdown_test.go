package svcrun

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownChannelSignalIsIdempotent(t *testing.T) {
	s := newShutdownChannel()

	assert.NotPanics(t, func() {
		s.signal()
		s.signal()
		s.signal()
	})

	select {
	case <-s.recvChan():
	default:
		t.Fatal("recvChan should be closed after signal")
	}
}

func TestShutdownChannelRecvChanBlocksUntilSignalled(t *testing.T) {
	s := newShutdownChannel()

	select {
	case <-s.recvChan():
		t.Fatal("recvChan should not be ready before signal")
	default:
	}

	s.signal()

	select {
	case <-s.recvChan():
	case <-time.After(time.Second):
		t.Fatal("recvChan did not unblock after signal")
	}
}

func TestShutdownChannelContextCancelsOnSignal(t *testing.T) {
	s := newShutdownChannel()
	ctx := s.context(context.Background())

	s.signal()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after signal")
	}
}

func TestShutdownChannelContextCancelsWithParent(t *testing.T) {
	s := newShutdownChannel()
	parent, cancel := context.WithCancel(context.Background())
	ctx := s.context(parent)

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled when parent was cancelled")
	}
}
