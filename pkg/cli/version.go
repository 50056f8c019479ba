package cli

// Version is overridden at link time with -ldflags "-X github.com/Fepozopo/spherize/pkg/cli.Version=...".
var Version = "0.1.0"
