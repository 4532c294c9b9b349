//go:build !windows

package svcrun

import (
	"os"

	"github.com/hlandau/svcrun/daemon"
	"github.com/hlandau/svcrun/daemon/pidfile"
	"github.com/hlandau/svcrun/sdnotify"
)

// EmptyChrootPath always points to a path the platform guarantees is an
// empty directory, suitable as a default chroot for a service that
// doesn't touch the filesystem once started. On Linux the FHS guarantees
// /var/empty exists.
var EmptyChrootPath = daemon.EmptyChrootPath

// serviceMain performs the UNIX-specific ambient setup (forking, process
// group detachment, PID file, systemd notify-socket detection) and then
// hands off to the platform-selection entry point. serviceMode is passed
// through unchanged; UNIX has no SCM dispatch, so it is informational
// only.
func (info *Info) serviceMain(serviceMode bool) error {
	if info.Config.Fork {
		isParent, err := daemon.Fork()
		if err != nil {
			return err
		}
		if isParent {
			os.Exit(0)
		}
		info.Config.Daemon = true
	}

	if err := daemon.Init(); err != nil {
		return err
	}

	if err := sdnotify.Notify("\n"); err == nil {
		info.systemd = true
	}

	if info.Config.Daemon || info.systemd {
		keepStderr := info.Config.Stderr
		if err := daemon.Daemonize(keepStderr); err != nil {
			return err
		}
	}

	if info.Config.PIDFile != "" {
		info.pidFileName = info.Config.PIDFile

		if err := pidfile.OpenPIDFile(info.pidFileName); err != nil {
			return err
		}
		info.pidFileOpen = true
		defer func() {
			pidfile.ClosePIDFile()
			info.pidFileOpen = false
		}()
	}

	return runService(info, serviceMode)
}
