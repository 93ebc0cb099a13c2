package types

// ResolvedPaths holds the absolute target paths derived from an
// InstallConfig. All fields are computed deterministically by the path
// resolver and never change after resolution.
type ResolvedPaths struct {
	// ExecutableDir is <destdir><prefix>/bin.
	ExecutableDir string

	// ExecutablePath is <destdir><prefix>/bin/<tool>.
	ExecutablePath string

	// ResourceDir is <destdir><prefix>/share/<tool>.
	ResourceDir string

	// TemplatedResourcePath is the string substituted for the placeholder
	// token in the installed executable: the absolute ResourceDir for a
	// plain install, or a path relative to ExecutableDir when staging under
	// a destdir so the staged tree stays relocatable.
	TemplatedResourcePath string

	// FinalBinDir is <prefix>/bin without the destdir component. This is
	// the directory the PATH advisory checks, since it is where the
	// executable ends up once a staged tree is unpacked onto a real root.
	FinalBinDir string

	// Staged is true when a destdir is in effect.
	Staged bool
}

// DeployEntry is one entry of the deployment manifest: a file or directory
// discovered under the source resource tree, identified by its path relative
// to the tree root. The manifest is transient and recomputed on every run.
type DeployEntry struct {
	RelPath string
	IsDir   bool
}
