package trnltk

// Version is the release of the library and the trnltk command. Release
// builds override it with -ldflags "-X github.com/aretw0/trnltk.Version=...".
var Version = "0.1.0-dev"
