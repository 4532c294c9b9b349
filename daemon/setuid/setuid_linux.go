//go:build linux

package setuid

import "syscall"

// Linux's setuid(2)/setgid(2)/setresuid(2)/setresgid(2) only change the
// credentials of the calling thread, not the whole process, unlike every
// other UNIX. glibc papers over this by dispatching the syscall to every
// thread itself; syscall.AllThreadsSyscall does the same from Go, so
// these no longer need to go through cgo.

func setuid(uid int) error {
	_, _, errno := syscall.AllThreadsSyscall(syscall.SYS_SETUID, uintptr(uid), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

func setgid(gid int) error {
	_, _, errno := syscall.AllThreadsSyscall(syscall.SYS_SETGID, uintptr(gid), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

func setgroups(gids []int) error {
	return syscall.Setgroups(gids)
}

func setresgid(rgid, egid, sgid int) error {
	_, _, errno := syscall.AllThreadsSyscall(syscall.SYS_SETRESGID, uintptr(rgid), uintptr(egid), uintptr(sgid))
	if errno != 0 {
		return errno
	}
	return nil
}

func setresuid(ruid, euid, suid int) error {
	_, _, errno := syscall.AllThreadsSyscall(syscall.SYS_SETRESUID, uintptr(ruid), uintptr(euid), uintptr(suid))
	if errno != 0 {
		return errno
	}
	return nil
}
