//go:build !windows

package svcrun

import (
	"fmt"
	"strconv"

	"github.com/hlandau/svcrun/daemon"
	"github.com/hlandau/svcrun/daemon/bansuid"
	"github.com/hlandau/svcrun/daemon/caps"
	"github.com/hlandau/svcrun/passwd"
)

// DropPrivileges drops the process to the UID/GID named in Config, chroots
// if configured, and bans the ability to later reacquire privileges via a
// setuid/setgid/file-capability binary. Idempotent.
func (h *ihandler) DropPrivileges() error {
	if h.dropped {
		return nil
	}

	cfg := &h.info.Config

	if !h.info.NoBanSuid {
		// Best-effort: may not be supported on the current platform, and
		// Linux won't allow SECUREBITS to be set unless we have the right
		// capability.
		bansuid.BanSuid()
	}

	uidStr, gidStr := cfg.UID, cfg.GID
	if uidStr != "" && gidStr == "" {
		gid, err := passwd.GetGIDForUID(uidStr)
		if err != nil {
			return err
		}
		gidStr = strconv.FormatInt(int64(gid), 10)
	}

	if h.info.DefaultChroot == "" {
		h.info.DefaultChroot = "/"
	}

	chrootPath := cfg.Chroot
	if chrootPath == "" {
		chrootPath = h.info.DefaultChroot
	}

	uid, gid := -1, -1
	if uidStr != "" {
		var err error
		uid, err = passwd.ParseUID(uidStr)
		if err != nil {
			return err
		}
		gid, err = passwd.ParseGID(gidStr)
		if err != nil {
			return err
		}
	}

	if (uid <= 0) != (gid <= 0) {
		return fmt.Errorf("svcrun: either both or neither of UID and GID must be positive")
	}

	if uid > 0 {
		chrootErr, err := daemon.DropPrivileges(uid, gid, chrootPath)
		if err != nil {
			return fmt.Errorf("svcrun: failed to drop privileges: %w", err)
		}
		if chrootErr != nil && cfg.Chroot != "" && cfg.Chroot != "/" {
			return fmt.Errorf("svcrun: failed to chroot: %w", chrootErr)
		}
	} else if cfg.Chroot != "" && cfg.Chroot != "/" {
		return fmt.Errorf("svcrun: must use privilege dropping to use chroot; set Config.UID")
	}

	// If we still have any capabilities (maybe because we didn't setuid),
	// try and drop them.
	if err := caps.Drop(); err != nil {
		return fmt.Errorf("svcrun: cannot drop capabilities: %w", err)
	}

	if !h.info.AllowRoot && daemon.IsRoot() {
		return fmt.Errorf("svcrun: daemon must not run as root or with capabilities; run as non-root user or set Config.UID")
	}

	h.dropped = true
	return nil
}
