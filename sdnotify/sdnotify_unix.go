//go:build !windows

// Package sdnotify reports service readiness and status to systemd,
// wrapping coreos/go-systemd's notify socket client with a narrower API
// tailored to the handful of call sites in svcrun.
package sdnotify

import (
	"github.com/coreos/go-systemd/v22/daemon"
)

// ErrNoSocket is returned when the process was not started with
// NOTIFY_SOCKET set, i.e. it is not running under a systemd unit with
// Type=notify.
var ErrNoSocket = daemon.SdNotifyNoSocket

// Notify sends a raw sd_notify message (e.g. "READY=1\nSTATUS=...\n") to
// the systemd manager supervising this process, if any. unsetEnvironment
// is always false: the caller may need to notify more than once over the
// life of the service.
func Notify(state string) error {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		return err
	}
	if !sent {
		return ErrNoSocket
	}
	return nil
}
