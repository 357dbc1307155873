// Package constant holds build-time stamps injected through -ldflags.
package constant

var (
	Version   = "dev"
	BuildTime = "unknown"
)
