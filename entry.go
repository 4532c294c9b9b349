package svcrun

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/hlandau/svcrun/exepath"
)

// Main should typically be called directly from func main(). It performs
// all housekeeping for running services (name resolution, CPU profiling,
// daemonizing on UNIX) and then routes to the interactive runner or the
// SCM dispatcher depending on whether this invocation is running under
// the service manager.
func Main(info *Info) {
	if err := info.mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in service: %+v\n", err)
		os.Exit(1)
	}
}

func (info *Info) mainErr() error {
	if info.Name == "" {
		info.Name = exepath.ProgramName
	}
	if info.Name == "" {
		panic("svcrun: service name must be specified")
	}
	if info.Title == "" {
		info.Title = info.Name
	}
	if info.Description == "" {
		info.Description = info.Title
	}

	if err := info.setRunFunc(); err != nil {
		return err
	}

	if info.Config.CPUProfile != "" {
		f, err := os.Create(info.Config.CPUProfile)
		if err != nil {
			return err
		}
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	// CLI convention: an installed service is invoked by the platform with
	// "service" as its first argument. Interactive invocation uses no
	// argument.
	serviceMode := len(os.Args) > 1 && os.Args[1] == "service"

	return info.serviceMain(serviceMode)
}

// RunService is the bare entry point, usable directly by applications
// that don't need Main's ambient daemonizing/profiling behavior. On
// Windows, serviceMode=true routes to the SCM dispatcher; everywhere else
// the interactive runner always runs. serviceMode is stored on the
// internal handler, but the Manager handed to the workload has no method
// that exposes it.
func RunService(info *Info, serviceMode bool) error {
	if err := info.setRunFunc(); err != nil {
		return err
	}
	return runService(info, serviceMode)
}

// runInteractively installs a process-wide interrupt handler, starts the
// workload, waits for either the interrupt or the workload's own
// completion, and stops the workload.
func runInteractively(info *Info, serviceMode bool) error {
	app := newApplication(info, serviceMode)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	if err := app.Start(); err != nil {
		return err
	}

	stopping := false

loop:
	for {
		select {
		case <-sig:
			if !stopping {
				stopping = true
				app.mgr.shutdown.signal()
			}
		case <-app.startedSignal():
			app.updateStatus()
		case <-app.statusNotify():
			app.updateStatus()
		case err := <-app.doneCh:
			app.mu.Lock()
			app.finished = true
			app.mu.Unlock()
			if stopping {
				// The workload exited in response to the interrupt; this
				// is the join, so its returned error is the result.
				return err
			}
			// The workload exited on its own (self-termination). It is
			// marked finished so app.Stop() below treats this as the
			// "already stopped" case instead of trying to join twice.
			break loop
		}
	}

	return app.Stop()
}
