package svcrun

func usingPlatform(platformTag string) bool {
	return platformTag == "windows"
}
