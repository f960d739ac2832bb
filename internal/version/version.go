package version

// Version is overridable at build time via -ldflags "-X mhgcompare/internal/version.Version=...".
var Version = "0.2.0"
