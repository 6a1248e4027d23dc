/* ============================================================= *\
   engine.go

   SimulationEngine drives the three-phase propagation round over an
   ASGraph: setup assigns policies and installs seeds, run(round)
   walks ranks bubbling customer routes to providers, exchanges peers
   flat, then pushes the result back down to customers. The engine
   itself holds no routing state -- everything it touches lives on
   the AS nodes' Policy.
\* ============================================================= */

package engine

import (
	"fmt"

	"github.com/Emeline-1/asgraphsim/internal/ann"
	"github.com/Emeline-1/asgraphsim/internal/asgraph"
	"github.com/Emeline-1/asgraphsim/internal/policy"
	"github.com/Emeline-1/asgraphsim/internal/rib"
)

// SimulationEngine is the C7 module of the simulation: class
// assignment, seeding, and the round driver.
type SimulationEngine struct {
	Graph           *asgraph.Graph
	ReadyToRunRound int
}

// New returns an engine over graph, not yet set up.
func New(graph *asgraph.Graph) *SimulationEngine {
	return &SimulationEngine{Graph: graph, ReadyToRunRound: -1}
}

// ribHaver is implemented by every policy built on policy.BGPSimple:
// it exposes the LocalRIB the engine needs to seed directly, bypassing
// the RecvQueue.
type ribHaver interface {
	LocalRIB() *rib.LocalRIB
}

// Setup assigns a Policy to every AS (per_asn_overrides[asn] if
// present, else basePolicyName), installs every seed announcement
// directly into its origin AS's LocalRIB, and marks the engine ready to
// run round 0.
func (e *SimulationEngine) Setup(seeds []*ann.Announcement, basePolicyName string, perASNOverrides map[int]string) error {
	if err := e.Graph.CalculatePropagationRanks(); err != nil {
		return fmt.Errorf("engine: setup: %w", err)
	}

	for _, asn := range e.Graph.SortedASNs() {
		as := e.Graph.Get(asn)
		name := basePolicyName
		if override, ok := perASNOverrides[asn]; ok {
			name = override
		}
		p, err := policy.New(name, as)
		if err != nil {
			return fmt.Errorf("engine: setup: AS%d: %w", asn, err)
		}
		as.Policy = p
		as.Initialize()
	}

	for _, seed := range seeds {
		if seed.SeedASN == nil {
			return fmt.Errorf("engine: setup: seed announcement for %s has no seed_asn", seed.Prefix)
		}
		as := e.Graph.Get(*seed.SeedASN)
		if as == nil {
			return fmt.Errorf("engine: setup: seed ASN %d not present in graph", *seed.SeedASN)
		}
		rh, ok := as.Policy.(ribHaver)
		if !ok {
			return fmt.Errorf("engine: setup: AS%d policy exposes no LocalRIB to seed into", as.ASN)
		}
		localRIB := rh.LocalRIB()
		if localRIB.Get(seed.Prefix) != nil {
			return fmt.Errorf("engine: setup: seed conflict: AS%d already has a route for %s", as.ASN, seed.Prefix)
		}
		localRIB.Add(seed)
	}

	e.ReadyToRunRound = 0
	return nil
}

// Run executes the three propagation phases described in spec.md §4.7
// for the given round, which must equal ReadyToRunRound.
func (e *SimulationEngine) Run(round int) error {
	if round != e.ReadyToRunRound {
		return fmt.Errorf("engine: run(%d) called but engine is ready for round %d", round, e.ReadyToRunRound)
	}

	if err := e.phaseA(round); err != nil {
		return err
	}
	if err := e.phaseB(round); err != nil {
		return err
	}
	if err := e.phaseC(round); err != nil {
		return err
	}

	e.ReadyToRunRound++
	return nil
}

// phaseA bubbles customer-learned routes up to providers, rank 0 to
// max_rank.
func (e *SimulationEngine) phaseA(round int) error {
	maxRank := e.Graph.MaxRank()
	for r := 0; r <= maxRank; r++ {
		for _, as := range e.Graph.PropagationRanks[r] {
			if r > 0 {
				if err := as.Policy.ProcessIncomingAnns(ann.Customers, round, true); err != nil {
					return fmt.Errorf("engine: phase A: AS%d: %w", as.ASN, err)
				}
			}
			if err := as.Policy.PropagateToProviders(); err != nil {
				return fmt.Errorf("engine: phase A: AS%d: %w", as.ASN, err)
			}
		}
	}
	return nil
}

// phaseB exchanges peer routes once, flat, in ascending-ASN graph
// order.
func (e *SimulationEngine) phaseB(round int) error {
	for _, asn := range e.Graph.SortedASNs() {
		as := e.Graph.Get(asn)
		if err := as.Policy.PropagateToPeers(); err != nil {
			return fmt.Errorf("engine: phase B: AS%d: %w", as.ASN, err)
		}
	}
	for _, asn := range e.Graph.SortedASNs() {
		as := e.Graph.Get(asn)
		if err := as.Policy.ProcessIncomingAnns(ann.Peers, round, true); err != nil {
			return fmt.Errorf("engine: phase B: AS%d: %w", as.ASN, err)
		}
	}
	return nil
}

// phaseC pushes the converged result back down to customers, rank
// max_rank to 0.
func (e *SimulationEngine) phaseC(round int) error {
	maxRank := e.Graph.MaxRank()
	for r := maxRank; r >= 0; r-- {
		for _, as := range e.Graph.PropagationRanks[r] {
			if r != maxRank {
				if err := as.Policy.ProcessIncomingAnns(ann.Providers, round, true); err != nil {
					return fmt.Errorf("engine: phase C: AS%d: %w", as.ASN, err)
				}
			}
			if err := as.Policy.PropagateToCustomers(); err != nil {
				return fmt.Errorf("engine: phase C: AS%d: %w", as.ASN, err)
			}
		}
	}
	return nil
}
