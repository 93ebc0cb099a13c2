package types

// Manifest describes the payload distribution being installed. It is loaded
// from install.toml / install.yaml at the distribution root, with compiled
// defaults matching the acc distribution layout.
type Manifest struct {
	// ToolName is the name the executable is installed under, and the
	// directory name used beneath share/.
	ToolName string `koanf:"tool_name" toml:"tool_name"`

	// ExecutableSource is the payload script filename at the distribution
	// root whose content is templated and installed.
	ExecutableSource string `koanf:"executable_source" toml:"executable_source"`

	// ResourceDir is the resource subtree name at the distribution root
	// (and under share/<tool>/ after installation).
	ResourceDir string `koanf:"resource_dir" toml:"resource_dir"`

	// PlaceholderToken is the marker string inside the payload source that
	// is rewritten to the resolved resource path at install time.
	PlaceholderToken string `koanf:"placeholder_token" toml:"placeholder_token"`

	// Interpreter is the command the Windows launcher shim invokes the
	// installed script with.
	Interpreter string `koanf:"interpreter" toml:"interpreter"`

	// ReservedSubtrees maps a path segment inside the resource tree to the
	// platform it is reserved for. Entries under a reserved segment are
	// skipped when installing on any other platform.
	ReservedSubtrees map[string]Platform `koanf:"reserved_subtrees" toml:"reserved_subtrees"`
}

// InstallConfig is the immutable per-invocation configuration. It is
// constructed once at startup from flags, environment and the distribution
// manifest, then passed into every component; no component reads ambient
// process state after this point.
type InstallConfig struct {
	// Operation is the lifecycle operation to perform.
	Operation Operation

	// Prefix is the installation prefix (bin/ and share/ go beneath it).
	Prefix string

	// DestDir is the optional staging root prepended to Prefix for
	// downstream packaging. Empty for a plain install.
	DestDir string

	// SourceRoot is the distribution root containing the payload script and
	// resource tree.
	SourceRoot string

	// Platform is the host platform family, resolved once.
	Platform Platform

	// Manifest is the payload distribution description.
	Manifest Manifest

	// DryRun reports the plan without touching the filesystem.
	DryRun bool
}
