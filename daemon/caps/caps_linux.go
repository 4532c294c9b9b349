//go:build linux

package caps

import (
	"golang.org/x/sys/unix"
)

const platformSupportsCaps = true

// capLastCap is the highest capability value compiled into a reasonably
// current Linux kernel (CAP_CHECKPOINT_RESTORE). Dropping the bounding
// set up to here and clearing the permitted/effective/inheritable sets
// is equivalent to renouncing every capability the process could hold.
const capLastCap = 40

func haveAny() bool {
	var hdr unix.CapUserHeader
	var data [2]unix.CapUserData
	hdr.Version = unix.LINUX_CAPABILITY_VERSION_3

	if err := unix.Capget(&hdr, &data[0]); err != nil {
		return false
	}

	return data[0].Effective != 0 || data[0].Permitted != 0 ||
		data[1].Effective != 0 || data[1].Permitted != 0
}

func ensureNone() error {
	if haveAny() {
		return unix.EPERM
	}
	return nil
}

func drop() error {
	for cap := 0; cap <= capLastCap; cap++ {
		// Best-effort: PR_CAPBSET_DROP fails with EINVAL for capability
		// numbers the running kernel doesn't know about, and EPERM if we
		// don't hold CAP_SETPCAP; neither should abort the whole drop.
		unix.Prctl(unix.PR_CAPBSET_DROP, uintptr(cap), 0, 0, 0)
	}

	var hdr unix.CapUserHeader
	var data [2]unix.CapUserData
	hdr.Version = unix.LINUX_CAPABILITY_VERSION_3

	return unix.Capset(&hdr, &data[0])
}
