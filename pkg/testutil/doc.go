// Package testutil provides shared helpers for accinst tests: a memory
// filesystem environment pre-populated with a minimal distribution, and an
// environment lookup stub.
package testutil
