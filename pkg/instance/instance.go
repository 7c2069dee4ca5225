package instance

import (
	"os"
	"strings"
)

const EnvInstanceID = "SGFOODCOURT_INSTANCE_ID"

// ID names this process in logs. It prefers SGFOODCOURT_INSTANCE_ID, then the platform
// DYNO, then the hostname.
func ID() string {
	for _, key := range []string{EnvInstanceID, "DYNO"} {
		if id := strings.TrimSpace(os.Getenv(key)); id != "" {
			return id
		}
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
