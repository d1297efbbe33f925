// Package build holds build-time information for the wxpack binary.
package build

// Version is the application version reported by `wxpack version`.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"
