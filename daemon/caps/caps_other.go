//go:build !linux

package caps

const platformSupportsCaps = false

func haveAny() bool    { return false }
func ensureNone() error { return nil }
func drop() error       { return nil }
