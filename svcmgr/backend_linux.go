//go:build linux

package svcmgr

import (
	"os"
	"path/filepath"

	"github.com/hlandau/svcrun/svcmgr/unitfile"
)

type linuxBackend struct {
	name        string
	userService bool
	unitPath    string
	busFlag     string // "--system" or "--user"
}

func newPlatformBackend(name, prefix string, userService bool) (backend, error) {
	unitName := prefix + name

	var unitPath string
	if userService {
		cfgHome := os.Getenv("XDG_CONFIG_HOME")
		if cfgHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, newErr(KindDirectoryNotFound, "cannot resolve home directory: %v", err)
			}
			cfgHome = filepath.Join(home, ".config")
		}
		unitPath = filepath.Join(cfgHome, "systemd", "user", unitName+".service")
	} else {
		unitPath = filepath.Join("/etc/systemd/system", unitName+".service")
	}

	busFlag := "--user"
	if !userService {
		busFlag = "--system"
	}

	return &linuxBackend{name: unitName, userService: userService, unitPath: unitPath, busFlag: busFlag}, nil
}

func (b *linuxBackend) install(spec *Spec) error {
	content, err := unitfile.Render(unitfile.Options{
		Description:   spec.description,
		ExecStart:     spec.commandLine(),
		RestartAlways: spec.restartOnFailure,
		WantedBy:      b.installTarget(),
	})
	if err != nil {
		return wrapErr(KindIOError, err, "failed to render unit file: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(b.unitPath), 0755); err != nil {
		return wrapErr(KindIOError, err, "failed to create unit directory: %v", err)
	}

	f, err := os.OpenFile(b.unitPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return wrapErr(KindIOError, err, "failed to write unit file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return wrapErr(KindIOError, err, "failed to write unit file: %v", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return wrapErr(KindIOError, err, "failed to sync unit file: %v", err)
	}
	if err := f.Close(); err != nil {
		return wrapErr(KindIOError, err, "failed to close unit file: %v", err)
	}

	if spec.autostart {
		if _, err := runCommand("systemctl", b.busFlag, "enable", b.name); err != nil {
			return err
		}
	}

	return nil
}

func (b *linuxBackend) installTarget() string {
	if b.userService {
		return "default.target"
	}
	return "multi-user.target"
}

func (b *linuxBackend) uninstall() error {
	if _, err := runCommand("systemctl", b.busFlag, "disable", b.name); err != nil {
		if svcErr, ok := err.(*Error); !ok || svcErr.Kind != KindBadExitStatus {
			return err
		}
	}

	if err := os.Remove(b.unitPath); err != nil && !os.IsNotExist(err) {
		return wrapErr(KindIOError, err, "failed to remove unit file: %v", err)
	}

	return nil
}

func (b *linuxBackend) start() error {
	_, err := runCommand("systemctl", b.busFlag, "start", b.name)
	return err
}

func (b *linuxBackend) stop() error {
	_, err := runCommand("systemctl", b.busFlag, "stop", b.name)
	return err
}

func (b *linuxBackend) status() (Status, error) {
	_, err := runCommand("systemctl", b.busFlag, "status", b.name)
	if err == nil {
		return Running, nil
	}

	svcErr, ok := err.(*Error)
	if !ok || svcErr.Kind != KindBadExitStatus {
		return 0, err
	}

	switch svcErr.Code {
	case 3:
		return Stopped, nil
	case 4:
		return NotInstalled, nil
	default:
		return 0, err
	}
}

func (b *linuxBackend) capabilities() Capability {
	return SupportsDescription | SupportsCustomGroup
}

func (b *linuxBackend) fullyQualifiedName() string {
	return b.name
}

func (b *linuxBackend) isUserService() bool {
	return b.userService
}
