//go:build !windows

package svcrun

// runService is the platform-selection half of the entry point. On every
// platform but Windows there is no SCM dispatcher to route to, so the
// interactive runner always runs; serviceMode does not change the route,
// and the Manager handed to the workload does not expose it.
func runService(info *Info, serviceMode bool) error {
	return runInteractively(info, serviceMode)
}
