package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats to within the given absolute tolerance.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s didn't panic", name)
		}
	}()
	fn()
}

// example is an open, uniform cubic through five planar points.
func example(t testing.TB) *BSpline[Vec2] {
	t.Helper()
	s, err := New([]Vec2{
		Vec(0, 0),
		Vec(1, 2),
		Vec(3, 3),
		Vec(4, 1),
		Vec(6, 0),
	}, 3)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
