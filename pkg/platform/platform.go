// Package platform resolves the host platform family once at startup and
// owns every platform-conditional decision the installer makes: the default
// prefix, exclusion of resource subtrees reserved for another platform, and
// PATH membership semantics.
package platform

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/acc-tools/accinst/pkg/types"
)

// Current returns the platform family of the running host.
func Current() types.Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value to a platform family.
func FromGOOS(goos string) types.Platform {
	if goos == "windows" {
		return types.PlatformWindows
	}
	return types.PlatformPOSIX
}

// DefaultPrefix returns the default installation prefix for a platform.
// Windows has no meaningful system prefix, so the flag is required there
// and the empty return triggers a configuration error upstream.
func DefaultPrefix(p types.Platform) string {
	if p == types.PlatformWindows {
		return ""
	}
	return "/usr"
}

// Excluded reports whether relPath falls inside a subtree reserved for a
// platform other than host. reserved maps a path segment name to the
// platform family it belongs to.
func Excluded(relPath string, host types.Platform, reserved map[string]types.Platform) bool {
	if len(reserved) == 0 {
		return false
	}
	for _, segment := range strings.Split(filepath.ToSlash(relPath), "/") {
		if owner, ok := reserved[segment]; ok && owner != host {
			return true
		}
	}
	return false
}

// ListSeparator returns the PATH-style list separator for a platform.
func ListSeparator(p types.Platform) string {
	if p == types.PlatformWindows {
		return ";"
	}
	return ":"
}

// OnSearchPath reports whether dir is one of the entries of pathEnv, the
// raw value of the PATH environment variable. Comparison is case-sensitive
// on POSIX platforms and case-insensitive on Windows.
func OnSearchPath(pathEnv, dir string, p types.Platform) bool {
	if pathEnv == "" || dir == "" {
		return false
	}
	want := filepath.Clean(dir)
	for _, entry := range strings.Split(pathEnv, ListSeparator(p)) {
		if entry == "" {
			continue
		}
		got := filepath.Clean(entry)
		if p == types.PlatformWindows {
			if strings.EqualFold(got, want) {
				return true
			}
		} else if got == want {
			return true
		}
	}
	return false
}
