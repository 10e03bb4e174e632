// Package version holds the build version of mcpsetup.
package version

// Version is set at build time via -ldflags "-X".
var Version = "dev"
