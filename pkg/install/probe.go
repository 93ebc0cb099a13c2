package install

import (
	"github.com/acc-tools/accinst/pkg/types"
)

// Installed reports whether an installation already occupies the target
// prefix: the installed executable or the resource directory exists. Used to
// block a bare install over an existing installation; update proceeds
// regardless because it removes first.
func Installed(fs types.FS, rp types.ResolvedPaths) bool {
	if _, err := fs.Stat(rp.ExecutablePath); err == nil {
		return true
	}
	if _, err := fs.Stat(rp.ResourceDir); err == nil {
		return true
	}
	return false
}
