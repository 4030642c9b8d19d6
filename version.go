package forgegate

const serverSoftware = "ForgeGate"

// Software version can be set from git env using -ldflags
var softwareVer = "0.3.1"

// FormatVersion constructs the full version string for display.
func FormatVersion() string {
	return serverSoftware + " " + softwareVer
}

// ServerUserAgent returns a User-Agent string to use in external requests.
func ServerUserAgent(hostName string) string {
	ua := "Go (" + serverSoftware + "/" + softwareVer
	if hostName != "" {
		ua += "; +" + hostName
	}
	return ua + ")"
}
