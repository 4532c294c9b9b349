package svcrun

// runService is the platform-selection half of the entry point:
// serviceMode=true routes to the SCM dispatcher, otherwise to the
// interactive runner.
func runService(info *Info, serviceMode bool) error {
	if serviceMode {
		return runAsDispatcher(info, serviceMode)
	}
	return runInteractively(info, serviceMode)
}
