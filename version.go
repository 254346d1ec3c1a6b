package figctx

// Version is the release version, overridden at build time via
// -ldflags "-X figctx.Version=v1.2.3".
var Version = "dev"
