// Package version exposes the build version of the slayerdex binary.
package version

// version is set at build time via -ldflags "-X github.com/rshade/slayerdex/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker at build time.
var version = "dev"

// GetVersion returns the build version, or "dev" for local builds.
func GetVersion() string {
	if version == "" {
		return "dev"
	}
	return version
}
