package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Installer for the acc tool distribution"
	MsgRootLong  = `accinst installs, updates or removes the acc command-line tool and its
resource tree under a configurable prefix. Package builders can stage the
installation under a build root with --destdir; staged trees stay
relocatable because the installed executable references its resources by a
relative path.`

	MsgInstallShort  = "Install the tool into the target prefix"
	MsgUpdateShort   = "Remove any existing installation, then install"
	MsgRemoveShort   = "Remove the installed tool and its resources"
	MsgManifestShort = "Print the default distribution manifest"
	MsgVersionShort  = "Print version information"

	// Status messages
	MsgInstalledFormat    = "%s Installed %s\n"
	MsgResourcesFormat    = "  deployed %d files, %d directories under %s\n"
	MsgRemovedExecFormat  = "%s Removed %s\n"
	MsgRemovedResFormat   = "%s Removed %s\n"
	MsgNothingToRemove    = "Nothing to remove.\n"
	MsgShimFormat         = "  wrote launcher shim %s\n"
	MsgDryRunNotice       = "\nDRY RUN MODE - No changes were made\n"
	MsgManifestWrittenFmt = "Wrote %s\n"

	// Advisory messages
	MsgPathAdvisoryFormat = "%s %s is not on your PATH; the installed tool will not be found by your shell\n"
	MsgNoPlaceholderFmt   = "%s placeholder token %q not found in the payload source; the installed executable keeps its compiled-in resource path\n"

	// Error messages
	MsgErrNoOperation = "no operation specified; run install, update or remove"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagPrefix  = "Installation prefix (default: /usr on POSIX hosts; required on Windows)"
	MsgFlagDestdir = "Staging root prepended to the prefix (falls back to the DESTDIR environment variable)"
	MsgFlagSource  = "Distribution root containing the payload (default: directory of this executable)"
	MsgFlagWrite   = "Write the manifest to install.toml in the current directory instead of printing it"
)

// Install command long help
const (
	MsgInstallLong = `Install deploys the payload executable to <prefix>/bin and the resource
tree to <prefix>/share/<tool>. It refuses to overwrite an existing
installation; run remove first, or use update.

With --destdir the whole layout is staged under the build root and the
executable references its resources relatively, so the staged tree can be
packaged and unpacked onto any root.`

	MsgUpdateLong = `Update removes any existing installation and installs again,
unconditionally. It is exactly equivalent to running remove followed by
install.`

	MsgRemoveLong = `Remove deletes the installed executable and the resource tree. Missing
targets are not errors, so remove is safe to run repeatedly and against
partially-completed installations.`
)

// Example blocks
const (
	MsgInstallExample = `  # Install to the default prefix
  accinst install

  # Install to a custom prefix
  accinst install --prefix=/opt/acc

  # Stage for packaging
  accinst install --prefix=/usr --destdir=/tmp/build

  # Preview without touching the filesystem
  accinst install --dry-run`

	MsgRemoveExample = `  # Remove from the default prefix
  accinst remove

  # Remove from a custom prefix
  accinst remove --prefix=/opt/acc`
)
