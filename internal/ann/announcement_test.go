package ann

import "testing"

func intp(i int) *int   { return &i }
func boolp(b bool) *bool { return &b }

func TestOrigin(t *testing.T) {
	a := New("10.0.0.0/8", []int{3, 2, 1}, 0, nil, nil, nil, Customers, false, false, nil)
	if a.Origin() != 1 {
		t.Fatalf("Origin() = %d, want 1", a.Origin())
	}
}

func TestOriginEmptyPathSentinel(t *testing.T) {
	a := New("10.0.0.0/8", nil, 0, nil, nil, nil, Customers, false, false, nil)
	if a.Origin() != -1 {
		t.Fatalf("Origin() = %d, want -1", a.Origin())
	}
}

func TestPrefixPathAttributesEq(t *testing.T) {
	a := New("10.0.0.0/8", []int{2, 1}, 0, nil, nil, nil, Customers, false, false, nil)
	b := New("10.0.0.0/8", []int{2, 1}, 99, intp(1), nil, nil, Peers, true, true, []string{"x"})
	if !a.PrefixPathAttributesEq(b) {
		t.Fatalf("expected equal prefix/path")
	}
	c := New("10.0.0.0/8", []int{9, 1}, 0, nil, nil, nil, Customers, false, false, nil)
	if a.PrefixPathAttributesEq(c) {
		t.Fatalf("expected unequal path to compare unequal")
	}
	if a.PrefixPathAttributesEq(nil) {
		t.Fatalf("expected nil other to compare unequal")
	}
}

func TestROAPredicates(t *testing.T) {
	cases := []struct {
		name      string
		origin    *int
		validLen  *bool
		path      []int
		invalid   bool
		valid     bool
		unknown   bool
		roaRouted bool
	}{
		{"no roa", nil, nil, []int{1}, false, false, true, false},
		{"valid", intp(1), boolp(true), []int{1}, false, true, false, true},
		{"wrong origin", intp(2), boolp(true), []int{1}, true, false, false, true},
		{"bad length", intp(1), boolp(false), []int{1}, true, false, false, true},
		{"roa origin zero", intp(0), boolp(true), []int{0}, false, true, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := New("p", c.path, 0, nil, c.origin, c.validLen, Customers, false, false, nil)
			if a.InvalidByROA() != c.invalid {
				t.Errorf("InvalidByROA() = %v, want %v", a.InvalidByROA(), c.invalid)
			}
			if a.ValidByROA() != c.valid {
				t.Errorf("ValidByROA() = %v, want %v", a.ValidByROA(), c.valid)
			}
			if a.UnknownByROA() != c.unknown {
				t.Errorf("UnknownByROA() = %v, want %v", a.UnknownByROA(), c.unknown)
			}
			if a.CoveredByROA() == c.unknown {
				t.Errorf("CoveredByROA() should be !UnknownByROA()")
			}
			if a.ROARouted() != c.roaRouted {
				t.Errorf("ROARouted() = %v, want %v", a.ROARouted(), c.roaRouted)
			}
		})
	}
}

func TestNewCopiesSlices(t *testing.T) {
	path := []int{1, 2}
	comms := []string{"a"}
	a := New("p", path, 0, nil, nil, nil, Customers, false, false, comms)
	path[0] = 99
	comms[0] = "z"
	if a.ASPath[0] != 1 {
		t.Fatalf("New should copy ASPath, mutation leaked in")
	}
	if a.Communities[0] != "a" {
		t.Fatalf("New should copy Communities, mutation leaked in")
	}
}
