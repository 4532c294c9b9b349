package svcrun

import "golang.org/x/sys/windows/svc"

// EmptyChrootPath is always empty on Windows, which has no chroot
// equivalent. Present so code referencing it compiles on every platform.
var EmptyChrootPath = ""

// serviceMain determines whether this process is running attended (a
// human at a console) or as a child of the Service Control Manager, and
// routes accordingly. Windows provides a reliable API for this
// (svc.IsAnInteractiveSession), so it overrides the argv-based
// serviceMode guess made by the caller.
func (info *Info) serviceMain(serviceMode bool) error {
	interactive, err := svc.IsAnInteractiveSession()
	if err == nil && !interactive {
		serviceMode = true
	}

	return runService(info, serviceMode)
}
