// Package dupfd duplicates a file descriptor onto another, already-open
// descriptor number, using whichever syscall the target platform
// actually provides (arm64 Linux has no dup2, only dup3).
package dupfd

// Dup2 duplicates sourceFD onto targetFD, closing whatever targetFD
// previously referred to.
func Dup2(sourceFD, targetFD int) error {
	return dup2(sourceFD, targetFD)
}
