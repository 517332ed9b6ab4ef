package casefy

// version is overridden at build time with -ldflags "-X github.com/viant/casefy.version=..."
var version = "v0.1.0"

// Version returns module version
func Version() string {
	return version
}
