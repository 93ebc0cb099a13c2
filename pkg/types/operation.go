package types

// Operation is the lifecycle operation a single accinst invocation performs.
// Exactly one operation is set per run; the CLI layer guarantees this by
// exposing each operation as its own subcommand.
type Operation string

const (
	// OperationInstall deploys the tool into the target prefix. Fails if an
	// installation is already present.
	OperationInstall Operation = "install"

	// OperationUpdate removes any existing installation and installs again,
	// unconditionally.
	OperationUpdate Operation = "update"

	// OperationRemove deletes the installed executable and resource tree.
	// Missing targets are not errors.
	OperationRemove Operation = "remove"
)

// Valid reports whether o is one of the known operations.
func (o Operation) Valid() bool {
	switch o {
	case OperationInstall, OperationUpdate, OperationRemove:
		return true
	}
	return false
}

// Platform is the host platform family, resolved once at startup and threaded
// through as configuration rather than re-queried per decision point.
type Platform string

const (
	// PlatformPOSIX covers Linux, the BSDs and macOS.
	PlatformPOSIX Platform = "posix"

	// PlatformWindows is the Windows family.
	PlatformWindows Platform = "windows"
)
