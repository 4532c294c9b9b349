//go:build !windows

package svcrun

func usingPlatform(platformTag string) bool {
	return platformTag == "unix"
}
