package svcmgr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a scriptable backend double used to exercise Manager's
// gate-check logic without touching a real platform.
type fakeBackend struct {
	statusFn func() (Status, error)
	caps     Capability

	installCalled   bool
	uninstallCalled bool
	startCalled     bool
	stopCalled      bool

	installErr   error
	uninstallErr error
	startErr     error
	stopErr      error
}

func (f *fakeBackend) install(spec *Spec) error { f.installCalled = true; return f.installErr }
func (f *fakeBackend) uninstall() error         { f.uninstallCalled = true; return f.uninstallErr }
func (f *fakeBackend) start() error             { f.startCalled = true; return f.startErr }
func (f *fakeBackend) stop() error              { f.stopCalled = true; return f.stopErr }
func (f *fakeBackend) status() (Status, error)  { return f.statusFn() }
func (f *fakeBackend) capabilities() Capability { return f.caps }
func (f *fakeBackend) fullyQualifiedName() string { return "fake" }
func (f *fakeBackend) isUserService() bool        { return false }

func fixedStatus(s Status) func() (Status, error) {
	return func() (Status, error) { return s, nil }
}

func TestManagerInstallRequiresNotInstalled(t *testing.T) {
	fb := &fakeBackend{statusFn: fixedStatus(Running)}
	m := &Manager{name: "svc", backend: fb}

	spec, err := NewSpec("/bin/true").Build()
	require.NoError(t, err)

	err = m.Install(spec)
	require.Error(t, err)
	assert.Equal(t, KindAlreadyInstalled, err.(*Error).Kind)
	assert.False(t, fb.installCalled)
}

func TestManagerInstallRejectsCredentialsForUserService(t *testing.T) {
	fb := &fakeBackend{statusFn: fixedStatus(NotInstalled)}
	m := &Manager{name: "svc", userService: true, backend: fb}

	spec, err := NewSpec("/bin/true").User("svc-user").Build()
	require.NoError(t, err)

	err = m.Install(spec)
	require.Error(t, err)
	assert.Equal(t, KindBadServiceSpec, err.(*Error).Kind)
	assert.False(t, fb.installCalled)
}

func TestManagerInstallEnforcesCapabilityGates(t *testing.T) {
	tests := []struct {
		name string
		caps Capability
		spec func() *Spec
	}{
		{
			name: "password required for custom user",
			caps: CustomUserRequiresPassword,
			spec: func() *Spec { s, _ := NewSpec("/bin/true").User("svc").Build(); return s },
		},
		{
			name: "restart on failure requires autostart",
			caps: RestartOnFailureRequiresAutostart,
			spec: func() *Spec { s, _ := NewSpec("/bin/true").RestartOnFailure(true).Build(); return s },
		},
		{
			name: "custom group unsupported",
			caps: 0,
			spec: func() *Spec { s, _ := NewSpec("/bin/true").Group("staff").Build(); return s },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := &fakeBackend{statusFn: fixedStatus(NotInstalled), caps: tc.caps}
			m := &Manager{name: "svc", backend: fb}

			err := m.Install(tc.spec())
			require.Error(t, err)
			assert.Equal(t, KindBadServiceSpec, err.(*Error).Kind)
			assert.False(t, fb.installCalled)
		})
	}
}

func TestManagerInstallSucceedsWhenGatesPass(t *testing.T) {
	fb := &fakeBackend{statusFn: fixedStatus(NotInstalled), caps: SupportsCustomGroup}
	m := &Manager{name: "svc", backend: fb}

	spec, err := NewSpec("/bin/true").Group("staff").Build()
	require.NoError(t, err)

	require.NoError(t, m.Install(spec))
	assert.True(t, fb.installCalled)
}

func TestManagerUninstallRequiresStopped(t *testing.T) {
	fb := &fakeBackend{statusFn: fixedStatus(Running)}
	m := &Manager{name: "svc", backend: fb}

	err := m.Uninstall()
	require.Error(t, err)
	assert.Equal(t, KindWrongState, err.(*Error).Kind)
	assert.Equal(t, Running, err.(*Error).Status)
}

func TestManagerStartRequiresStopped(t *testing.T) {
	fb := &fakeBackend{statusFn: fixedStatus(Running)}
	m := &Manager{name: "svc", backend: fb}

	require.Error(t, m.Start())
	assert.False(t, fb.startCalled)
}

func TestManagerStopRequiresRunning(t *testing.T) {
	fb := &fakeBackend{statusFn: fixedStatus(Stopped)}
	m := &Manager{name: "svc", backend: fb}

	require.Error(t, m.Stop())
	assert.False(t, fb.stopCalled)
}

func TestWaitForStatusReturnsNilWhenTargetObservedImmediately(t *testing.T) {
	fb := &fakeBackend{statusFn: fixedStatus(Running)}
	m := &Manager{name: "svc", backend: fb}

	require.NoError(t, m.WaitForStatus(Running, time.Second))
}

func TestWaitForStatusTimesOutWithLastObservedStatus(t *testing.T) {
	fb := &fakeBackend{statusFn: fixedStatus(Stopped)}
	m := &Manager{name: "svc", backend: fb}

	err := m.WaitForStatus(Running, 120*time.Millisecond)
	require.Error(t, err)

	svcErr := err.(*Error)
	assert.Equal(t, KindTimeout, svcErr.Kind)
	assert.Equal(t, Stopped, svcErr.Status)
}

func TestWaitForStatusTimesOutWithLastErrorKind(t *testing.T) {
	fb := &fakeBackend{statusFn: func() (Status, error) {
		return 0, newErr(KindAccessDenied, "denied")
	}}
	m := &Manager{name: "svc", backend: fb}

	err := m.WaitForStatus(Running, 120*time.Millisecond)
	require.Error(t, err)

	svcErr := err.(*Error)
	assert.Equal(t, KindTimeoutError, svcErr.Kind)
	assert.Equal(t, KindAccessDenied, svcErr.InnerKind)
}
