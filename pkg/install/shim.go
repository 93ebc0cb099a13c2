package install

import (
	"github.com/acc-tools/accinst/pkg/types"
)

// ShimSuffix is the extension of the Windows launcher shim written next to
// the installed executable.
const ShimSuffix = ".cmd"

// launcherShim renders the Windows invocation wrapper. Windows cannot run
// the installed script directly, so the shim hands it to the configured
// interpreter with all arguments forwarded.
func launcherShim(m types.Manifest) []byte {
	return []byte("@echo off\r\n" + m.Interpreter + " \"%~dp0\\" + m.ToolName + "\" %*\r\n")
}
