// internal/version/version.go
package version

// Version can be overridden at build time:
//
//	go build -ldflags "-X github.com/maxgmarin/polyscan/internal/version.Version=v1.2.3"
var Version = "0.1.0"
