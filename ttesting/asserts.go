// Package ttesting contains assertion helpers shared by the tests of this
// module. Every helper runs as a named subtest so failures read as a list of
// expectations.
package ttesting

import (
	"errors"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualUint32(t *testing.T, name string, got, want uint32) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertInRangeUint32(t *testing.T, name string, got, wantMin, wantMax uint32) {
	t.Run(name, func(t *testing.T) {
		if got < wantMin || got > wantMax {
			t.Errorf("got %d; want [%d,%d]", got, wantMin, wantMax)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func AssertEqualFloat32(t *testing.T, name string, got, want float32) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %g; want %g", got, want)
		}
	})
}

func AssertEqualBool(t *testing.T, name string, got, want bool) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %t; want %t", got, want)
		}
	})
}

// AssertErrorAs checks that err matches target the way errors.As does; target
// must be a pointer to an error type.
func AssertErrorAs(t *testing.T, name string, err error, target interface{}) {
	t.Run(name, func(t *testing.T) {
		if err == nil {
			t.Fatalf("got nil error; want %T", target)
		}
		if !errors.As(err, target) {
			t.Errorf("got %T (%v); want %T", err, err, target)
		}
	})
}
