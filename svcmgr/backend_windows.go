package svcmgr

import (
	"regexp"
	"strings"
)

// Windows services never support a custom group, and a template/instance
// Windows user service is where the per-session LUID discovery below
// applies; templates are installed once but run as per-logon instances.
type windowsBackend struct {
	name        string
	userService bool
	luid        string // non-empty only for a discovered user-service instance
}

var serviceNameLine = regexp.MustCompile(`(?m)^SERVICE_NAME:\s*(\S+)\s*$`)

func newPlatformBackend(name, prefix string, userService bool) (backend, error) {
	fullName := prefix + name

	b := &windowsBackend{name: fullName, userService: userService}
	if !userService {
		return b, nil
	}

	out, err := runCommand("sc.exe", "query", "type=", "userservice")
	if err != nil {
		return nil, err
	}

	suffix := "_"
	luid := ""
	for _, m := range serviceNameLine.FindAllStringSubmatch(out, -1) {
		svcName := m[1]
		if idx := strings.LastIndex(svcName, suffix); idx >= 0 {
			luid = svcName[idx+len(suffix):]
			break
		}
	}
	if luid == "" {
		return nil, newErr(KindServiceManagementNotAvailable, "no per-session LUID found: Windows user services are unsupported on this system")
	}

	b.luid = luid
	return b, nil
}

// templateName is registered by install/uninstall/description changes.
func (b *windowsBackend) templateName() string {
	return b.name
}

// instanceName is used for start/stop/query; on a non-user service it is
// the same as templateName.
func (b *windowsBackend) instanceName() string {
	if b.luid == "" {
		return b.name
	}
	return b.name + "_" + b.luid
}

func (b *windowsBackend) currentUserSID() (string, error) {
	out, err := runCommand("whoami.exe", "/user", "/fo", "csv", "/nh")
	if err != nil {
		return "", err
	}
	fields := strings.Split(strings.TrimSpace(out), ",")
	if len(fields) < 2 {
		return "", newErr(KindPlatformError, "unexpected whoami.exe output: %q", out)
	}
	return strings.Trim(fields[len(fields)-1], `"`), nil
}

func userServiceSDDL(userSID string) string {
	return "D:(A;;CCLCSWLOCRRC;;;IU)(A;;CCLCSWLOCRRC;;;SU)" +
		"(A;;CCDCLCSWRPWPDTLOCRSDRCWDWO;;;SY)(A;;CCDCLCSWRPWPDTLOCRSDRCWDWO;;;BA)" +
		"(A;;CCDCLCSWRPWPDTLOCRSDRCWDWO;;;" + userSID + ")"
}

func (b *windowsBackend) install(spec *Spec) error {
	args := []string{"create", b.templateName(), "binPath=", spec.commandLine()}
	if spec.displayName != "" {
		args = append(args, "DisplayName=", spec.displayName)
	}
	if spec.autostart {
		args = append(args, "start=", "auto")
	} else {
		args = append(args, "start=", "demand")
	}
	if b.userService {
		args = append(args, "type=", "userservice")
	}
	if _, err := runCommand("sc.exe", args...); err != nil {
		return err
	}

	if spec.description != "" {
		if _, err := runCommand("sc.exe", "description", b.templateName(), spec.description); err != nil {
			return err
		}
	}

	if spec.restartOnFailure {
		if _, err := runCommand("sc.exe", "failure", b.templateName(), "reset=", "0", "actions=", "restart/60000"); err != nil {
			return err
		}
	}

	if b.userService {
		sid, err := b.currentUserSID()
		if err != nil {
			return err
		}
		if _, err := runCommand("sc.exe", "sdset", b.templateName(), userServiceSDDL(sid)); err != nil {
			return err
		}
	}

	return nil
}

func (b *windowsBackend) uninstall() error {
	if b.userService {
		if _, err := runCommand("sc.exe", "delete", b.instanceName()); err != nil {
			if svcErr, ok := err.(*Error); !ok || svcErr.Kind != KindBadExitStatus || svcErr.Code != 1060 {
				return err
			}
		}
	}
	_, err := runCommand("sc.exe", "delete", b.templateName())
	return err
}

func (b *windowsBackend) start() error {
	_, err := runCommand("sc.exe", "start", b.instanceName())
	return err
}

func (b *windowsBackend) stop() error {
	_, err := runCommand("sc.exe", "stop", b.instanceName())
	return err
}

var scStateLine = regexp.MustCompile(`STATE\s*:\s*\d+\s*(\S+)`)

func (b *windowsBackend) status() (Status, error) {
	st, notInstalled, err := b.queryState(b.instanceName())
	if notInstalled && b.luid != "" {
		// A freshly installed user service has no per-logon instance until
		// next logon; fall back to the template's own state.
		st, _, err = b.queryState(b.templateName())
	}
	if err != nil {
		return 0, err
	}
	return st, nil
}

func (b *windowsBackend) queryState(name string) (st Status, notInstalled bool, err error) {
	out, runErr := runCommand("sc.exe", "query", name)
	if runErr == nil {
		m := scStateLine.FindStringSubmatch(out)
		if m == nil {
			return 0, false, newErr(KindPlatformError, "unexpected sc query output: %q", out)
		}
		return parseSCState(m[1]), false, nil
	}

	svcErr, ok := runErr.(*Error)
	if !ok || svcErr.Kind != KindBadExitStatus {
		return 0, false, runErr
	}

	switch svcErr.Code {
	case 1060:
		return NotInstalled, true, nil
	case 2:
		return 0, false, newErr(KindServicePathNotFound, "service binary path not found for %q", name)
	case 5:
		return 0, false, newErr(KindAccessDenied, "access denied querying %q", name)
	default:
		return 0, false, runErr
	}
}

func parseSCState(token string) Status {
	switch strings.ToUpper(token) {
	case "STOPPED":
		return Stopped
	case "START_PENDING":
		return StartPending
	case "STOP_PENDING":
		return StopPending
	case "RUNNING":
		return Running
	case "CONTINUE_PENDING":
		return ContinuePending
	case "PAUSE_PENDING":
		return PausePending
	case "PAUSED":
		return Paused
	default:
		return Stopped
	}
}

func (b *windowsBackend) capabilities() Capability {
	caps := SupportsDescription | SupportsDisplayName | SupportsPendingPausedStates | CustomUserRequiresPassword
	if b.userService {
		caps |= UserServicesRequireNewLogon | UserServiceNameIsDynamic | UserServicesRequireElevatedPrivForInstall
	}
	return caps
}

func (b *windowsBackend) fullyQualifiedName() string {
	return b.instanceName()
}

func (b *windowsBackend) isUserService() bool {
	return b.userService
}
