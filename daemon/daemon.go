//go:build !windows

// Package daemon provides functions to assist in writing UNIX-style
// daemons: forking, detaching from the controlling terminal, and
// dropping privileges.
package daemon

import (
	"os"
	"syscall"

	"github.com/hlandau/svcrun/daemon/dupfd"
	"github.com/hlandau/svcrun/exepath"
)

// Init initialises a daemon with recommended values. Called by
// Daemonize.
//
// Currently, this only calls umask(0) and chdir("/").
func Init() error {
	syscall.Umask(0)
	return syscall.Chdir("/")
}

const forkedArg = "$*_FORKED_*$"

// Fork pseudo-forks by re-executing the current binary with a special
// command line argument telling it not to re-execute itself again.
// Returns true in the parent process and false in the child.
func Fork() (isParent bool, err error) {
	if len(os.Args) > 0 && os.Args[len(os.Args)-1] == forkedArg {
		os.Args = os.Args[0 : len(os.Args)-1]
		return false, nil
	}

	newArgs := make([]string, 0, len(os.Args)+1)
	newArgs = append(newArgs, exepath.AbsExePath)
	newArgs = append(newArgs, os.Args[1:]...)
	newArgs = append(newArgs, forkedArg)

	proc, err := os.StartProcess(exepath.AbsExePath, newArgs, &os.ProcAttr{})
	if err != nil {
		return true, err
	}

	proc.Release()
	return true, nil
}

// Daemonize daemonizes but doesn't fork.
//
// The stdin and stdout fds are remapped to /dev/null, as is stderr
// unless keepStderr is set. setsid is called and the current directory
// is changed to /.
//
// If you intend to call DropPrivileges, call it after calling this
// function, as /dev/null will no longer be available after privileges
// are dropped.
func Daemonize(keepStderr bool) error {
	nullF, err := os.OpenFile("/dev/null", os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer nullF.Close()

	nullFd := int(nullF.Fd())
	if err := dupfd.Dup2(nullFd, int(os.Stdin.Fd())); err != nil {
		return err
	}
	if err := dupfd.Dup2(nullFd, int(os.Stdout.Fd())); err != nil {
		return err
	}
	if !keepStderr {
		if err := dupfd.Dup2(nullFd, int(os.Stderr.Fd())); err != nil {
			return err
		}
	}

	// May fail if we're not root; daemonizing a non-root session leader
	// is still useful, so the error is not fatal.
	syscall.Setsid()

	return Init()
}
