// Package types defines the core types and interfaces used throughout
// accinst: the Operation and Platform enums, the immutable InstallConfig,
// the distribution Manifest, ResolvedPaths, and the FS interface.
package types
