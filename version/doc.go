// Package version reports the build of the running binary.
//
// Version, commit and build time can be set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/golinq/version.Version=1.0.0" ./cmd/linqctl
//
// Fields left unset are filled from the module build information embedded
// by the Go toolchain.
package version
