// Package testflags registers the testing flags during package initialization.
//
// The rest client calls flag.Parse from its init, before the test main registers
// the -test.* flags, so any test binary linking it must blank import this package.
// Packages initialize in import path order, which places this one ahead of the rest client.
package testflags

import "testing"

func init() {
	testing.Init()
}
