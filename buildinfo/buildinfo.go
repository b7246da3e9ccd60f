package buildinfo

// Version is set at build time with -ldflags "-X github.com/ozontech/numscan/buildinfo.Version=...".
var Version = "v0.1.0-dev"
