package common

import (
	"fmt"
	"strings"
)

// Version is stamped at build time:
// -ldflags "-X github.com/Alia5/fwgen/internal/codegen/common.Version=x.y.z"
var Version = ""

const devVersion = "0.0.1-dev"

// GetVersion returns the stamped version without its "v" prefix, or
// 0.0.1-dev for unstamped builds.
func GetVersion() (string, error) {
	if Version == "" {
		return devVersion, nil
	}
	v := strings.TrimPrefix(Version, "v")
	if base, _, _ := strings.Cut(v, "-"); !strings.Contains(base, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return v, nil
}
