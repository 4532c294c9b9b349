// Package svcrun wraps the complexity of writing daemons while enabling
// seamless integration with OS service management facilities.
//
// It is the runtime half of the toolkit: it lets a single executable run
// either as an attended foreground process responding to a console
// interrupt, or as a child of the platform's service control manager,
// while delivering a uniform cooperative shutdown signal to the workload.
// The out-of-process half -- installing, starting, stopping and querying
// a service -- lives in the sibling package [github.com/hlandau/svcrun/svcmgr].
//
// # Platform-Specific Configuration Variables
//
// Some fields in [Config] are platform-specific. The fields are present on
// all platforms as Go provides no simple way to omit fields in structure
// definitions on certain platforms. The "platform" annotation on a field
// denotes if a field is platform-specific. If this annotation is omitted,
// the field is supported on all platforms. Pass the "platform" annotation
// to [UsingPlatform] to determine if a field is currently applicable.
package svcrun

import (
	"expvar"
	"time"
)

func init() {
	expvar.NewString("svcrun.startTime").Set(time.Now().String())
}

// Config holds the configuration variables which control how a service
// is run. These are ambient process options -- how the current process
// behaves attended or daemonized -- and are orthogonal to svcmgr.Spec,
// which describes what gets registered with the platform's service
// control manager.
type Config struct {
	// If this is non-empty, CPU profiling is initiated on startup and the
	// profile is written to the given file.
	CPUProfile string `help:"Write CPU profile to file"`

	// UNIX: If this is non-empty, privilege dropping is enabled. The value
	// can be a UID or username.
	UID string `help:"UID to run as (default: don't drop privileges)" platform:"unix"`

	// UNIX: If this is non-empty, it is the GID or group name used when
	// dropping privileges. If privilege dropping is enabled (UID is
	// non-empty) and this is empty, the GID for the given UID is looked up
	// from the system.
	GID string `help:"GID to run as (default: don't drop privileges)" platform:"unix"`

	// UNIX: Runs the service as a daemon (aside from forking). This sets up
	// the CWD, umask, calls setsid() and remaps stdin and stdout (and
	// stderr, if Stderr is not set) to /dev/null.
	Daemon bool `help:"Run as daemon? (doesn't fork)" platform:"unix"`

	// UNIX: Fork. Implies Daemon.
	Fork bool `help:"Fork? (implies daemon)" platform:"unix"`

	// UNIX: If non-empty, path to a file to write the process PID to.
	PIDFile string `help:"Write PID to file with given filename and hold a write lock" platform:"unix"`

	// UNIX: If not "/", the directory to chroot into. Only used if dropping
	// privileges (i.e., if UID is non-empty).
	Chroot string `help:"Chroot to a directory (must set UID, GID) ('/' disables)" platform:"unix"`

	// UNIX: Keep stderr open if Daemon is set and do not remap it to /dev/null.
	Stderr bool `help:"Keep stderr open when daemonizing" platform:"unix"`
}

// UsingPlatform returns true if a given platform tag (e.g. "", "unix",
// "windows") is applicable to the platform the binary is currently
// running on.
func UsingPlatform(platformTag string) bool {
	if platformTag == "" {
		return true
	}
	return usingPlatform(platformTag)
}
