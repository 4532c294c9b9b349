package svcrun

import (
	"fmt"
	"log"
	"sync"

	"golang.org/x/sys/windows/svc"
)

// registeredOK is process-wide, set-once storage for whether a service has
// already been registered with the SCM in this process. A process may
// host only one service application; a second registration attempt
// fails rather than silently clobbering the first. Access is serialized
// by registerMu for the lifetime of the dispatcher.
var (
	registerMu   sync.Mutex
	registeredOK bool
)

func registerOnce(name string) error {
	registerMu.Lock()
	defer registerMu.Unlock()
	if registeredOK {
		return fmt.Errorf("svcrun: a service (%q) is already registered in this process", name)
	}
	registeredOK = true
	return nil
}

// runAsDispatcher honors the Win32 Service Control Manager handshake: it
// registers the single application instance in process-wide storage, then
// hands control to the platform dispatcher, which calls back into
// dispatchHandler.Execute for the lifetime of the service.
func runAsDispatcher(info *Info, serviceMode bool) error {
	if err := registerOnce(info.Name); err != nil {
		return err
	}

	h := &dispatchHandler{app: newApplication(info, serviceMode)}
	return svc.Run(info.Name, h)
}

// dispatchHandler bridges the SCM protocol (golang.org/x/sys/windows/svc)
// to the application.
type dispatchHandler struct {
	app *application
}

// Execute implements svc.Handler. It reports status transitions in the
// order StartPending -> Running -> StopPending -> Stopped, with Stopped
// guaranteed to be reported on every return path via a deferred release,
// matching the "scoped resource release" design note.
func (h *dispatchHandler) Execute(args []string, r <-chan svc.ChangeRequest, changes chan<- svc.Status) (svcSpecificEC bool, exitCode uint32) {
	const cmdsAccepted = svc.AcceptStop | svc.AcceptShutdown

	changes <- svc.Status{State: svc.StartPending}

	releaseStopped := func(failed bool) {
		// Best-effort: errors reporting Stopped during teardown are
		// logged and swallowed so the process still exits cleanly.
		defer func() {
			if r := recover(); r != nil {
				log.Printf("svcrun: error reporting Stopped status: %v", r)
			}
		}()
		changes <- svc.Status{State: svc.Stopped}
	}
	defer releaseStopped(false)

	if err := h.app.Start(); err != nil {
		return false, 1
	}

	started := false
	stopping := false
	var workErr error

loop:
	for {
		select {
		case c := <-r:
			switch c.Cmd {
			case svc.Interrogate:
				changes <- c.CurrentStatus

			case svc.Stop, svc.Shutdown:
				changes <- svc.Status{State: svc.StopPending}
				if !stopping {
					stopping = true
					h.app.mgr.shutdown.signal()
				}

			default:
				// Unrecognized control request: NotImplemented is the
				// implicit response (we simply don't act on it).
			}

		case <-h.app.startedSignal():
			if started {
				panic("svcrun: must not call SetStarted() more than once")
			}
			started = true
			changes <- svc.Status{State: svc.Running, Accepts: cmdsAccepted}

		case <-h.app.statusNotify():
			h.app.updateStatus()

		case err := <-h.app.doneCh:
			h.app.mu.Lock()
			h.app.finished = true
			h.app.mu.Unlock()
			if stopping {
				// The workload exited in response to Stop/Shutdown; this
				// is the join, so its returned error decides the exit code.
				workErr = err
				break loop
			}
			changes <- svc.Status{State: svc.StopPending}
			workErr = h.app.Stop()
			break loop
		}
	}

	if workErr != nil {
		return false, 1
	}
	return false, 0
}
