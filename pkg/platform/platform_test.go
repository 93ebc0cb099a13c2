package platform_test

import (
	"testing"

	"github.com/acc-tools/accinst/pkg/platform"
	"github.com/acc-tools/accinst/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want types.Platform
	}{
		{"linux", types.PlatformPOSIX},
		{"darwin", types.PlatformPOSIX},
		{"freebsd", types.PlatformPOSIX},
		{"windows", types.PlatformWindows},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.FromGOOS(tt.goos))
		})
	}
}

func TestDefaultPrefix(t *testing.T) {
	assert.Equal(t, "/usr", platform.DefaultPrefix(types.PlatformPOSIX))
	assert.Empty(t, platform.DefaultPrefix(types.PlatformWindows), "windows has no default prefix")
}

func TestExcluded(t *testing.T) {
	reserved := map[string]types.Platform{
		"windows": types.PlatformWindows,
	}

	tests := []struct {
		name    string
		relPath string
		host    types.Platform
		want    bool
	}{
		{"reserved subtree on other platform", "Targets/windows/x.dat", types.PlatformPOSIX, true},
		{"reserved subtree on owning platform", "Targets/windows/x.dat", types.PlatformWindows, false},
		{"unreserved path", "core/y.dat", types.PlatformPOSIX, false},
		{"marker as substring does not match", "Targets/windowsill/x.dat", types.PlatformPOSIX, false},
		{"marker as leading segment", "windows/setup.dat", types.PlatformPOSIX, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.Excluded(tt.relPath, tt.host, reserved))
		})
	}
}

func TestExcludedNoReservations(t *testing.T) {
	assert.False(t, platform.Excluded("Targets/windows/x.dat", types.PlatformPOSIX, nil))
}

func TestOnSearchPath(t *testing.T) {
	tests := []struct {
		name    string
		pathEnv string
		dir     string
		p       types.Platform
		want    bool
	}{
		{"present", "/usr/local/bin:/usr/bin:/bin", "/usr/bin", types.PlatformPOSIX, true},
		{"absent", "/usr/local/bin:/bin", "/usr/bin", types.PlatformPOSIX, false},
		{"trailing slash normalized", "/usr/bin/:/bin", "/usr/bin", types.PlatformPOSIX, true},
		{"case sensitive on posix", "/USR/BIN", "/usr/bin", types.PlatformPOSIX, false},
		{"case insensitive on windows", `C:\Tools\BIN`, `c:\tools\bin`, types.PlatformWindows, true},
		{"empty path env", "", "/usr/bin", types.PlatformPOSIX, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.OnSearchPath(tt.pathEnv, tt.dir, tt.p))
		})
	}
}
