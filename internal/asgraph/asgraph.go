/* ============================================================= *\
   asgraph.go

   The AS-topology model: a single AS node's identity, edges and
   flags, and the ASGraph that owns every AS and the propagation
   ranks the simulation engine walks. Topology is built once by a
   reader (internal/asrel) and is immutable thereafter; only the
   Policy state hanging off each AS mutates during a run.
\* ============================================================= */

package asgraph

import (
	"fmt"
	"sort"

	"github.com/Emeline-1/asgraphsim/internal/ann"
)

// Policy is the set of operations the engine drives on every AS each
// round. The concrete implementation (internal/policy.BGPSimple and its
// variants) lives in a separate package; AS only needs to call through
// this interface, which is what keeps the AS<->Policy back-reference
// from becoming an import cycle.
type Policy interface {
	ReceiveAnn(a *ann.Announcement)
	ProcessIncomingAnns(fromRel ann.Relationship, round int, resetQueue bool) error
	PropagateToProviders() error
	PropagateToCustomers() error
	PropagateToPeers() error
}

// Initializer is implemented by policies that need a back-reference to
// their owning AS once the AS is fully constructed (the two-way link
// described in spec.md §9 "Cyclic ownership"). The engine calls
// Initialize exactly once, right after wiring a Policy onto an AS.
type Initializer interface {
	Initialize(as *AS)
}

// AS is one Autonomous System node. Peers/Customers/Providers are
// non-owning references into the same ASGraph: their lifetime is
// bounded by the graph's, never by the AS holding them.
type AS struct {
	ASN              int
	Peers            []*AS
	Customers        []*AS
	Providers        []*AS
	InputClique      bool
	IXP              bool
	Stub             bool
	Multihomed       bool
	Transit          bool
	CustomerConeSize int
	PropagationRank  int
	Policy           Policy
}

// Initialize installs the Policy's weak back-reference to this AS, if
// the Policy implements Initializer. Must be called after the AS has
// been placed in its final location (its neighbor slices populated),
// mirroring the C++ source's two-phase construction.
func (a *AS) Initialize() {
	if init, ok := a.Policy.(Initializer); ok {
		init.Initialize(a)
	}
}

// Graph owns every AS node, indexed by ASN, plus the precomputed
// propagation-rank buckets the engine's three-phase driver walks.
type Graph struct {
	ASDict           map[int]*AS
	PropagationRanks [][]*AS
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{ASDict: make(map[int]*AS)}
}

// AddAS registers as under its ASN. Overwriting an existing ASN is a
// caller bug; AddAS does not guard against it (the reader that builds a
// Graph is expected to de-duplicate rows itself).
func (g *Graph) AddAS(as *AS) {
	g.ASDict[as.ASN] = as
}

// Get returns the AS for asn, or nil if absent.
func (g *Graph) Get(asn int) *AS {
	return g.ASDict[asn]
}

// CalculatePropagationRanks buckets every AS into PropagationRanks by
// its PropagationRank field, sorting each bucket ascending by ASN. This
// is the ordering substrate the engine's phase A/C rank walks rely on.
func (g *Graph) CalculatePropagationRanks() error {
	maxRank := 0
	for _, as := range g.ASDict {
		if as.PropagationRank > maxRank {
			maxRank = as.PropagationRank
		}
		if as.PropagationRank < 0 {
			return fmt.Errorf("asgraph: AS%d has negative propagation rank %d", as.ASN, as.PropagationRank)
		}
	}

	ranks := make([][]*AS, maxRank+1)
	for _, as := range g.ASDict {
		ranks[as.PropagationRank] = append(ranks[as.PropagationRank], as)
	}
	for _, bucket := range ranks {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ASN < bucket[j].ASN })
	}
	g.PropagationRanks = ranks
	return nil
}

// MaxRank returns len(PropagationRanks)-1, or -1 if ranks have not been
// computed yet.
func (g *Graph) MaxRank() int {
	return len(g.PropagationRanks) - 1
}

// SortedASNs returns every ASN in the graph in ascending order, the
// deterministic "graph order" phase B (peer exchange) iterates in.
func (g *Graph) SortedASNs() []int {
	asns := make([]int, 0, len(g.ASDict))
	for asn := range g.ASDict {
		asns = append(asns, asn)
	}
	sort.Ints(asns)
	return asns
}
