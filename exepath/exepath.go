package exepath

import "os"
import "path/filepath"

// Absolute path to EXE which was invoked. This is set at init()-time
// to ensure that argv[0] can be properly interpreted before chdir is called.
var AbsExePath string

// ProgramName is the base name of the invoked executable, used as the
// default service name when Info.Name is left unset.
var ProgramName string

func init() {
	AbsExePath = os.Args[0]
	dir, err := filepath.Abs(AbsExePath)
	if err != nil {
		return
	}

	AbsExePath = dir
	ProgramName = filepath.Base(AbsExePath)
}
