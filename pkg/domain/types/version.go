package types

// Version is the application version, overridable at build time via -ldflags.
var Version = "v0.1.0"
