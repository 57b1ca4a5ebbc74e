// Package aoctest has helpers shared by the puzzle tests.
package aoctest

import "testing"

// MustPanic fails t if f returns without panicking.
func MustPanic(t testing.TB, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: did not panic", name)
		}
	}()
	f()
}
