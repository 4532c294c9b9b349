package svcmgr

// backend fronts the platform-specific control surface (sc.exe/SCM,
// launchctl, systemctl) behind one trait. Exactly one implementation is
// compiled in per GOOS; newPlatformBackend selects it.
type backend interface {
	install(spec *Spec) error
	uninstall() error
	start() error
	stop() error
	status() (Status, error)
	capabilities() Capability
	fullyQualifiedName() string
	isUserService() bool
}
