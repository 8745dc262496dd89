package mathfs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// wantInvalidIndex runs fn and checks that it panics with an error wrapping
// ErrInvalidIndex.
func wantInvalidIndex(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		err, _ := recover().(error)
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("got panic value %v, want an error wrapping ErrInvalidIndex", err)
		}
	}()
	fn()
}
