package svcrun

// DropPrivileges is a no-op on Windows: there is no UNIX-style UID/GID
// privilege model to drop here. Present so application code can call it
// unconditionally on every platform.
func (h *ihandler) DropPrivileges() error {
	h.dropped = true
	return nil
}
