//go:build darwin

package svcmgr

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/hlandau/svcrun/svcmgr/plist"
)

type darwinBackend struct {
	label       string
	userService bool
	domain      string // "system" or "gui/<uid>"
	plistPath   string
}

func newPlatformBackend(name, prefix string, userService bool) (backend, error) {
	label := prefix + name

	var domain, plistPath string
	if userService {
		u, err := user.Current()
		if err != nil {
			return nil, wrapErr(KindPlatformError, err, "cannot resolve current user: %v", err)
		}
		domain = "gui/" + u.Uid
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, wrapErr(KindDirectoryNotFound, err, "cannot resolve home directory: %v", err)
		}
		plistPath = filepath.Join(home, "Library", "LaunchAgents", label+".plist")
	} else {
		domain = "system"
		plistPath = filepath.Join("/Library/LaunchDaemons", label+".plist")
	}

	return &darwinBackend{label: label, userService: userService, domain: domain, plistPath: plistPath}, nil
}

func (b *darwinBackend) target() string {
	return b.domain + "/" + b.label
}

func (b *darwinBackend) install(spec *Spec) error {
	content, err := plist.Render(plist.Options{
		Label:            b.label,
		ProgramArguments: append([]string{spec.path}, spec.args...),
		RunAtLoad:        spec.autostart,
	})
	if err != nil {
		return wrapErr(KindIOError, err, "failed to render plist: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(b.plistPath), 0755); err != nil {
		return wrapErr(KindIOError, err, "failed to create LaunchAgents/LaunchDaemons directory: %v", err)
	}

	f, err := os.OpenFile(b.plistPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return wrapErr(KindIOError, err, "failed to write plist: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return wrapErr(KindIOError, err, "failed to write plist: %v", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return wrapErr(KindIOError, err, "failed to sync plist: %v", err)
	}
	if err := f.Close(); err != nil {
		return wrapErr(KindIOError, err, "failed to close plist: %v", err)
	}

	_, err = runCommand("launchctl", "bootstrap", b.domain, b.plistPath)
	return err
}

func (b *darwinBackend) uninstall() error {
	if _, err := runCommand("launchctl", "bootout", b.target()); err != nil {
		if svcErr, ok := err.(*Error); !ok || svcErr.Kind != KindBadExitStatus {
			return err
		}
	}

	if err := os.Remove(b.plistPath); err != nil && !os.IsNotExist(err) {
		return wrapErr(KindIOError, err, "failed to remove plist: %v", err)
	}

	return nil
}

func (b *darwinBackend) start() error {
	_, err := runCommand("launchctl", "kickstart", "-kp", b.target())
	return err
}

func (b *darwinBackend) stop() error {
	_, err := runCommand("launchctl", "kill", "SIGTERM", b.target())
	return err
}

func (b *darwinBackend) status() (Status, error) {
	_, err := runCommand("launchctl", "print", b.target())
	if err == nil {
		return Running, nil
	}

	svcErr, ok := err.(*Error)
	if !ok || svcErr.Kind != KindBadExitStatus {
		return 0, err
	}

	switch svcErr.Code {
	case 113:
		return NotInstalled, nil
	default:
		if _, statErr := os.Stat(b.plistPath); os.IsNotExist(statErr) {
			return NotInstalled, nil
		}
		return Stopped, nil
	}
}

func (b *darwinBackend) capabilities() Capability {
	return UsesNamePrefix
}

func (b *darwinBackend) fullyQualifiedName() string {
	return b.label
}

func (b *darwinBackend) isUserService() bool {
	return b.userService
}
