package asgraph

import (
	"testing"

	"github.com/Emeline-1/asgraphsim/internal/ann"
)

type stubPolicy struct {
	as *AS
}

func (p *stubPolicy) ReceiveAnn(a *ann.Announcement)                                   {}
func (p *stubPolicy) ProcessIncomingAnns(ann.Relationship, int, bool) error             { return nil }
func (p *stubPolicy) PropagateToProviders() error                                       { return nil }
func (p *stubPolicy) PropagateToCustomers() error                                       { return nil }
func (p *stubPolicy) PropagateToPeers() error                                           { return nil }
func (p *stubPolicy) Initialize(as *AS)                                                 { p.as = as }

func TestInitializeWiresBackReference(t *testing.T) {
	as := &AS{ASN: 1, Policy: &stubPolicy{}}
	as.Initialize()
	sp := as.Policy.(*stubPolicy)
	if sp.as != as {
		t.Fatalf("Initialize did not install the back-reference")
	}
}

func TestCalculatePropagationRanks(t *testing.T) {
	g := New()
	g.AddAS(&AS{ASN: 3, PropagationRank: 1, Policy: &stubPolicy{}})
	g.AddAS(&AS{ASN: 1, PropagationRank: 0, Policy: &stubPolicy{}})
	g.AddAS(&AS{ASN: 2, PropagationRank: 0, Policy: &stubPolicy{}})

	if err := g.CalculatePropagationRanks(); err != nil {
		t.Fatalf("CalculatePropagationRanks: %v", err)
	}
	if g.MaxRank() != 1 {
		t.Fatalf("MaxRank() = %d, want 1", g.MaxRank())
	}
	if len(g.PropagationRanks[0]) != 2 || g.PropagationRanks[0][0].ASN != 1 || g.PropagationRanks[0][1].ASN != 2 {
		t.Fatalf("rank 0 bucket not sorted ascending by ASN: %+v", g.PropagationRanks[0])
	}
	if len(g.PropagationRanks[1]) != 1 || g.PropagationRanks[1][0].ASN != 3 {
		t.Fatalf("rank 1 bucket wrong: %+v", g.PropagationRanks[1])
	}
}

func TestCalculatePropagationRanksRejectsNegative(t *testing.T) {
	g := New()
	g.AddAS(&AS{ASN: 1, PropagationRank: -1, Policy: &stubPolicy{}})
	if err := g.CalculatePropagationRanks(); err == nil {
		t.Fatalf("expected error for negative propagation rank")
	}
}

func TestSortedASNs(t *testing.T) {
	g := New()
	g.AddAS(&AS{ASN: 30, Policy: &stubPolicy{}})
	g.AddAS(&AS{ASN: 10, Policy: &stubPolicy{}})
	g.AddAS(&AS{ASN: 20, Policy: &stubPolicy{}})
	got := g.SortedASNs()
	want := []int{10, 20, 30}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("SortedASNs() = %v, want %v", got, want)
		}
	}
}
