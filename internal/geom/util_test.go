package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pointSet(pts []Point2d) map[Point2d]bool {
	set := make(map[Point2d]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}
