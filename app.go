package svcrun

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hlandau/svcrun/gsptcall"
	"github.com/hlandau/svcrun/sdnotify"
)

// Manager is the interface between this package and application-specific
// code. The application calls the methods on the instance of this
// interface it is given at various stages of its lifecycle.
type Manager interface {
	// DropPrivileges must be called when the service is ready to drop
	// privileges. It must be called before SetStarted.
	DropPrivileges() error

	// SetStarted must be called by a service payload when it has finished
	// starting.
	SetStarted()

	// StopChan returns the synchronous, blocking-receive shutdown channel.
	// A service payload must stop when this channel is closed.
	StopChan() <-chan struct{}

	// StopContext returns a context.Context whose Done channel closes at
	// the same moment StopChan closes. This is the cooperative-async
	// variant of the shutdown signal, for workloads built around context
	// cancellation (HTTP servers, database pools, gRPC) rather than a bare
	// channel receive.
	StopContext() context.Context

	// SetStatus is called by a service payload to provide a single line of
	// information on the current status of that service.
	SetStatus(status string)
}

// Runnable is used only by the NewFunc interface.
type Runnable interface {
	// Start starts the runnable. Any initialization requiring root
	// privileges must already have been obtained as this will be called
	// after dropping privileges. Must return promptly.
	Start() error

	// Stop stops the runnable. Must return.
	Stop() error
}

// StatusSource is an upgrade interface for Runnable; implementing it is
// optional.
type StatusSource interface {
	// StatusChan returns a channel on which status messages will be sent.
	// If a Runnable implements this, the channel is guaranteed to be
	// consumed until Stop is called.
	StatusChan() <-chan string
}

// Info describes an instantiable service.
type Info struct {
	// Name is the codename for the service, e.g. "foobar". Recommended. If
	// this is not set, exepath.ProgramName is used.
	Name string

	// RunFunc starts the service. Required unless NewFunc is specified
	// instead. Must not return until the service has stopped. Must call
	// smgr.SetStarted() to indicate when it has finished starting and use
	// smgr.StopChan() or smgr.StopContext() to determine when to stop.
	//
	// Should call SetStatus() periodically with a status string.
	RunFunc func(smgr Manager) error

	// NewFunc is an alternative to RunFunc. If provided, RunFunc must not
	// be specified. NewFunc is called to instantiate the runnable service.
	// Privileges are then dropped and Start is called. Start must return.
	// When the service is to be stopped, Stop is called. Stop must return.
	//
	// To implement status notification, also implement StatusSource.
	NewFunc func() (Runnable, error)

	Title       string // Optional friendly name, e.g. "Foobar Web Server"
	Description string // Optional single line description

	AllowRoot     bool   // May the service run as root? If false, refuses unless privilege dropping is configured.
	DefaultChroot string // Default chroot path, used if the service can be chrooted without consequence.
	NoBanSuid     bool   // Set to true if the ability to execute suid binaries must be retained.

	// Config carries the ambient runtime options used to run the service;
	// it will generally be populated by an application from its own
	// command line parsing.
	Config Config

	// systemd is set if this process was started by systemd with
	// Type=notify, enabling sd_notify readiness reporting.
	systemd bool

	pidFileName string
	pidFileOpen bool
}

var errAlreadyStarted = errors.New("svcrun: workload already started")

// application wraps a user-supplied Info into the uniform
// name/start/stop/isRunning contract consumed by the interactive runner
// and the SCM dispatcher.
type application struct {
	info   *Info
	mgr    *ihandler
	doneCh chan error

	mu       sync.Mutex
	started  bool
	finished bool
}

func newApplication(info *Info, serviceMode bool) *application {
	mgr := &ihandler{
		info:             info,
		shutdown:         newShutdownChannel(),
		statusNotifyChan: make(chan struct{}, 1),
		startedChan:      make(chan struct{}, 1),
		serviceMode:      serviceMode,
	}
	return &application{
		info:   info,
		mgr:    mgr,
		doneCh: make(chan error, 1),
	}
}

func (a *application) Name() string { return a.info.Name }

// Start spawns the worker on a new goroutine, handing it the receiving
// end of the internal shutdown channel. Returns promptly; fails if
// already started.
func (a *application) Start() error {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return errAlreadyStarted
	}
	a.started = true
	a.mu.Unlock()

	go func() {
		err := a.info.RunFunc(a.mgr)
		a.mu.Lock()
		a.finished = true
		a.mu.Unlock()
		a.doneCh <- err
	}()
	return nil
}

// IsRunning reports whether the worker goroutine is believed to still be
// running. Cheap, read-only.
func (a *application) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started && !a.finished
}

// Stop signals the shutdown channel and joins the worker, propagating its
// returned error. If the worker had already finished on its own, logs and
// returns success.
func (a *application) Stop() error {
	a.mu.Lock()
	finished := a.finished
	a.mu.Unlock()

	if finished {
		select {
		case <-a.doneCh:
		default:
		}
		fmt.Printf("svcrun: service %q had already stopped before being signalled\n", a.Name())
		return nil
	}

	a.mgr.shutdown.signal()
	return <-a.doneCh
}

// startedSignal exposes the internal "SetStarted was called" notification
// for drivers that need to report a status transition at that moment.
func (a *application) startedSignal() <-chan struct{} { return a.mgr.startedChan }

// statusNotify exposes the internal status-change notification.
func (a *application) statusNotify() <-chan struct{} { return a.mgr.statusNotifyChan }

// updateStatus re-publishes the current status to systemd and the
// process title, mirroring it out of process wherever the platform
// supports it.
func (a *application) updateStatus() { a.mgr.updateStatus() }

// ihandler implements Manager and is handed to the workload.
type ihandler struct {
	info *Info

	shutdown *shutdownChannel

	statusMutex      sync.Mutex
	statusNotifyChan chan struct{}
	startedChan      chan struct{}
	status           string
	started          bool
	dropped          bool

	serviceMode bool
}

func (h *ihandler) SetStarted() {
	if !h.dropped {
		panic("svcrun: service must call DropPrivileges before calling SetStarted")
	}

	h.statusMutex.Lock()
	h.started = true
	h.statusMutex.Unlock()

	select {
	case h.startedChan <- struct{}{}:
	default:
	}
}

func (h *ihandler) StopChan() <-chan struct{} {
	return h.shutdown.recvChan()
}

func (h *ihandler) StopContext() context.Context {
	return h.shutdown.context(context.Background())
}

func (h *ihandler) SetStatus(status string) {
	h.statusMutex.Lock()
	h.status = status
	h.statusMutex.Unlock()

	select {
	case h.statusNotifyChan <- struct{}{}:
	default:
	}
}

func (h *ihandler) updateStatus() {
	h.statusMutex.Lock()
	status := h.status
	started := h.started
	h.statusMutex.Unlock()

	if h.info.systemd {
		s := ""
		if started {
			s += "READY=1\n"
		}
		if status != "" {
			s += "STATUS=" + status + "\n"
		}
		_ = sdnotify.Notify(s)
	}

	if status != "" {
		gsptcall.SetProcTitle(status)
	}
}

func (info *Info) setRunFunc() error {
	if info.RunFunc != nil {
		return nil
	}

	if info.NewFunc == nil {
		panic("svcrun: either RunFunc or NewFunc must be specified")
	}

	info.RunFunc = func(smgr Manager) error {
		r, err := info.NewFunc()
		if err != nil {
			return err
		}

		getStatusChan := func() <-chan string { return nil }
		if ss, ok := r.(StatusSource); ok {
			getStatusChan = func() <-chan string { return ss.StatusChan() }
		}

		if err := smgr.DropPrivileges(); err != nil {
			return err
		}

		if err := r.Start(); err != nil {
			return err
		}

		smgr.SetStarted()
		smgr.SetStatus(info.Name + ": running ok")

	loop:
		for {
			select {
			case statusMsg := <-getStatusChan():
				smgr.SetStatus(info.Name + ": " + statusMsg)
			case <-smgr.StopChan():
				break loop
			}
		}

		return r.Stop()
	}

	return nil
}
