// Package install implements the installation lifecycle: probing for an
// existing installation, templating the payload executable, deploying the
// resource tree, and orchestrating install, update and remove runs.
//
// All filesystem effects go through types.FS so the whole engine runs
// against a memory filesystem in tests. The engine is strictly sequential;
// a run either completes or aborts on the first I/O error, and recovery is
// the next invocation's idempotent semantics.
package install
