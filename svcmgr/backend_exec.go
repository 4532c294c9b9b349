package svcmgr

import (
	"bytes"
	"os"
	"os/exec"
	"sync"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
)

var (
	execLoggerOnce sync.Once
	execLogger     hclog.Logger
)

func logger() hclog.Logger {
	execLoggerOnce.Do(func() {
		execLogger = hclog.New(&hclog.LoggerOptions{
			Name:  "svcmgr",
			Level: hclog.LevelFromString(envLogLevel()),
		})
	})
	return execLogger
}

// runCommand execs name with args, with stdin closed (equivalent to
// /dev/null) and stdout/stderr captured separately. A non-zero exit
// becomes a *Error of kind BadExitStatus carrying the code and captured
// stderr; the caller maps specific codes to richer kinds (e.g.
// NotInstalled) before this error escapes the backend.
func runCommand(name string, args ...string) (stdout string, err error) {
	logger().Debug("executing command", "name", name, "args", args)

	cmd := exec.Command(name, args...)
	cmd.Stdin = nil

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()

	if !utf8.Valid(outBuf.Bytes()) || !utf8.Valid(errBuf.Bytes()) {
		return "", newErr(KindBadUTF8, "command %s produced non-UTF-8 output", name)
	}

	stdout = outBuf.String()
	stderrText := errBuf.String()

	if runErr == nil {
		return stdout, nil
	}

	if exitErr, ok := runErr.(*exec.ExitError); ok {
		code := exitErr.ExitCode()
		return stdout, errBadExitStatus(code, code >= 0, stderrText)
	}

	return stdout, wrapErr(KindIOError, runErr, "failed to execute %s: %v", name, runErr)
}

func envLogLevel() string {
	if v := os.Getenv("SVCMGR_LOG"); v != "" {
		return v
	}
	return "warn"
}
