package config

// Version is the transitroute binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/transitroute/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
