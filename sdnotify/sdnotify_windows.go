package sdnotify

import "errors"

// ErrNoSocket is returned on Windows unconditionally: there is no systemd
// notify socket on this platform.
var ErrNoSocket = errors.New("sdnotify: not supported on windows")

// Notify is a no-op on Windows, present so callers can invoke it
// unconditionally on every platform.
func Notify(state string) error {
	return ErrNoSocket
}
