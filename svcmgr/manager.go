package svcmgr

import "time"

// pollInterval is how often WaitForStatus polls Status while waiting for
// a target state.
const pollInterval = 50 * time.Millisecond

// Manager is the uniform, capability-aware controller for one named
// service instance. It validates operations against the instance's
// current observed state and the backend's advertised capabilities
// before ever touching the platform.
type Manager struct {
	name         string
	prefix       string
	userService  bool
	backend      backend
}

// New constructs a Manager for the service "prefix+name" (prefix may be
// empty). userService selects a per-user install (launchd LaunchAgent,
// systemd --user, Windows user service) over a system-wide one.
func New(name, prefix string, userService bool) (*Manager, error) {
	if name == "" {
		return nil, newErr(KindInvalidNameOrPrefix, "service name must not be empty")
	}

	b, err := newPlatformBackend(name, prefix, userService)
	if err != nil {
		return nil, err
	}

	return &Manager{name: name, prefix: prefix, userService: userService, backend: b}, nil
}

// Capabilities reports the bitset of platform quirks this instance's
// backend is subject to.
func (m *Manager) Capabilities() Capability {
	return m.backend.capabilities()
}

// FullyQualifiedName is the name the platform actually tracks this
// service under, which on Windows user services includes a discovered
// per-session LUID suffix.
func (m *Manager) FullyQualifiedName() string {
	return m.backend.fullyQualifiedName()
}

// IsUserService reports whether this instance targets a per-user
// (rather than system-wide) installation.
func (m *Manager) IsUserService() bool {
	return m.userService
}

// Status queries the current observed state of the service. NotInstalled
// is a normal, successful result, not an error.
func (m *Manager) Status() (Status, error) {
	return m.backend.status()
}

// Install validates spec against this instance's state and the
// backend's capabilities, then asks the backend to register the
// service. Requires the current status to be NotInstalled.
func (m *Manager) Install(spec *Spec) error {
	st, err := m.backend.status()
	if err != nil {
		return err
	}
	if st != NotInstalled {
		return newErr(KindAlreadyInstalled, "service %q is already installed", m.name)
	}

	if m.userService && spec.hasCredentials() {
		return newErr(KindBadServiceSpec, "user services must not specify user, group or password")
	}

	caps := m.backend.capabilities()
	if caps.Has(CustomUserRequiresPassword) && spec.user != "" && spec.password == "" {
		return newErr(KindBadServiceSpec, "a custom user requires a password on this platform")
	}
	if caps.Has(RestartOnFailureRequiresAutostart) && spec.restartOnFailure && !spec.autostart {
		return newErr(KindBadServiceSpec, "restart-on-failure requires autostart on this platform")
	}
	if !caps.Has(SupportsCustomGroup) && spec.group != "" {
		return newErr(KindBadServiceSpec, "this platform does not support a custom group")
	}

	return m.backend.install(spec)
}

// Uninstall removes the service. Requires the current status to be
// Stopped.
func (m *Manager) Uninstall() error {
	st, err := m.backend.status()
	if err != nil {
		return err
	}
	if st != Stopped {
		return errWrongState(st)
	}
	return m.backend.uninstall()
}

// Start starts the service. Requires the current status to be Stopped.
func (m *Manager) Start() error {
	st, err := m.backend.status()
	if err != nil {
		return err
	}
	if st != Stopped {
		return errWrongState(st)
	}
	return m.backend.start()
}

// Stop stops the service. Requires the current status to be Running.
func (m *Manager) Stop() error {
	st, err := m.backend.status()
	if err != nil {
		return err
	}
	if st != Running {
		return errWrongState(st)
	}
	return m.backend.stop()
}

// WaitForStatus polls Status every 50ms until it observes target, or
// timeout elapses. At timeout it returns exactly one of: Timeout(last
// observed status) if the last poll succeeded, or TimeoutError(last
// error kind) if the last poll failed. Because NotInstalled is a
// regular status, WaitForStatus(NotInstalled, …) is the idiomatic way to
// wait for an uninstall to take effect.
func (m *Manager) WaitForStatus(target Status, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	var lastStatus Status
	var lastErr error
	haveStatus := false

	for {
		st, err := m.backend.status()
		if err == nil {
			haveStatus = true
			lastStatus = st
			lastErr = nil
			if st == target {
				return nil
			}
		} else {
			haveStatus = false
			lastErr = err
		}

		if time.Now().After(deadline) {
			if haveStatus {
				return errTimeout(lastStatus)
			}
			return errTimeoutError(errKindOf(lastErr))
		}

		time.Sleep(pollInterval)
	}
}

func errKindOf(err error) ErrKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}
