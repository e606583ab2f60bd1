package common

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is set via ldflags at build time:
// -ldflags "-X github.com/Alia5/CCereal/internal/codegen/common.Version=x.y.z"
var Version = ""

const devVersion = "0.0.1-dev"

// GetVersion returns the ldflags version, falling back to the module version
// recorded by `go install`, then to a development placeholder.
func GetVersion() (string, error) {
	v := Version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if v == "" {
		return devVersion, nil
	}

	v = strings.TrimPrefix(v, "v")
	if base, _, _ := strings.Cut(v, "-"); !strings.Contains(base, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", v)
	}
	return v, nil
}
