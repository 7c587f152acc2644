// Package build exposes version information for the stamp binary.
package build

// Version is the release version reported by the version command. The
// default is overwritten by linker flags in release builds.
var Version = "dev"
