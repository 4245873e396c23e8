package crane

import "testing"

func TestNewDimensions(t *testing.T) {
	cases := []struct{ t1, t2, t3, t4 int }{
		{11, 16, 11, 3},
		{6, 11, 6, 2},
		{2, 7, 2, 0},
	}
	for _, c := range cases {
		d := NewDimensions(c.t1)
		if d.T1 != c.t1 || d.T2 != c.t2 || d.T3 != c.t3 || d.T4 != c.t4 {
			t.Fatalf("NewDimensions(%d) counts\nhave %d %d %d %d\nwant %d %d %d %d",
				c.t1, d.T1, d.T2, d.T3, d.T4, c.t1, c.t2, c.t3, c.t4)
		}
	}
	if d := DefaultDimensions(); d != NewDimensions(DefaultSegments) {
		t.Fatalf("DefaultDimensions\nhave %+v\nwant %+v", d, NewDimensions(DefaultSegments))
	}
}

func TestLimits(t *testing.T) {
	d := DefaultDimensions()
	l := d.Limits()
	if l.MinSectionHeight >= l.MaxSectionHeight {
		t.Fatalf("empty section range [%v, %v]", l.MinSectionHeight, l.MaxSectionHeight)
	}
	if l.MinCartPosition >= l.MaxCartPosition {
		t.Fatalf("empty cart range [%v, %v]", l.MinCartPosition, l.MaxCartPosition)
	}
	// Raising the section gives the rope the same extra room.
	lo, hi := l.MaxRopeLength(l.MinSectionHeight), l.MaxRopeLength(l.MaxSectionHeight)
	if diff := hi - lo; diff < l.MaxSectionHeight-l.MinSectionHeight-1e-4 || diff > l.MaxSectionHeight-l.MinSectionHeight+1e-4 {
		t.Fatalf("MaxRopeLength grows by %v over a section range of %v", diff, l.MaxSectionHeight-l.MinSectionHeight)
	}
	if lo <= l.MinRopeLength {
		t.Fatalf("MaxRopeLength(%v) = %v not above MinRopeLength %v", l.MinSectionHeight, lo, l.MinRopeLength)
	}
}
