package gsptcall

// setProcTitle is a no-op on Windows: there is no equivalent of
// overwriting argv[0] that processes like "ps" read from.
func setProcTitle(title string) {}
