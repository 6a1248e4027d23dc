package rib

import (
	"testing"

	"github.com/Emeline-1/asgraphsim/internal/ann"
)

func mkann(prefix string, path ...int) *ann.Announcement {
	return ann.New(prefix, path, 0, nil, nil, nil, ann.Customers, false, false, nil)
}

func TestLocalRIBAddGetRemove(t *testing.T) {
	r := NewLocalRIB()
	if r.Get("1.0.0.0/8") != nil {
		t.Fatalf("expected nil on empty RIB")
	}
	a := mkann("1.0.0.0/8", 1)
	r.Add(a)
	if r.Get("1.0.0.0/8") != a {
		t.Fatalf("Get did not return the added announcement")
	}
	r.Remove("1.0.0.0/8")
	if r.Get("1.0.0.0/8") != nil {
		t.Fatalf("expected nil after Remove")
	}
}

func TestLocalRIBEntriesOrdered(t *testing.T) {
	r := NewLocalRIB()
	r.Add(mkann("9.0.0.0/8", 9))
	r.Add(mkann("1.0.0.0/8", 1))
	r.Add(mkann("5.0.0.0/8", 5))
	entries := r.Entries()
	want := []string{"1.0.0.0/8", "5.0.0.0/8", "9.0.0.0/8"}
	for i, w := range want {
		if entries[i].Prefix != w {
			t.Fatalf("Entries()[%d].Prefix = %s, want %s", i, entries[i].Prefix, w)
		}
	}
}

func TestRecvQueueAddEntriesClear(t *testing.T) {
	q := NewRecvQueue()
	a1 := mkann("1.0.0.0/8", 2, 1)
	a2 := mkann("1.0.0.0/8", 3, 1)
	q.Add(a1)
	q.Add(a2)

	entries := q.Entries()
	if len(entries) != 1 || entries[0].Prefix != "1.0.0.0/8" {
		t.Fatalf("expected single grouped prefix entry")
	}
	if len(entries[0].Anns) != 2 || entries[0].Anns[0] != a1 || entries[0].Anns[1] != a2 {
		t.Fatalf("expected insertion order preserved: %v", entries[0].Anns)
	}

	q.Clear()
	if len(q.Entries()) != 0 {
		t.Fatalf("expected empty queue after Clear")
	}
}
