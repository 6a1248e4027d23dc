/* ============================================================= *\
   bgpsimple.go

   BGPSimple is the baseline Gao-Rexford decision process: drain the
   RecvQueue into the LocalRIB, then export it to neighbors under the
   valley-free filter. Every overridable step described in spec.md
   §4.6/§9 (the export filter hook, the outgoing-dispatch hook, and
   the three Gao-Rexford comparators) is a plain function-valued field
   here, not an interface method, so a variant can replace exactly the
   step it needs -- see noexport.go for the one non-default example
   this repo carries.
\* ============================================================= */

package policy

import (
	"errors"
	"fmt"

	"github.com/Emeline-1/asgraphsim/internal/ann"
	"github.com/Emeline-1/asgraphsim/internal/asgraph"
	"github.com/Emeline-1/asgraphsim/internal/rib"
)

// GaoRexfordFunc is one step of the Gao-Rexford decision chain. It
// returns (winner, true) if it could decide between current and
// candidate, or (nil, false) on a tie, letting the next step in the
// chain run.
type GaoRexfordFunc func(current, candidate *ann.Announcement) (*ann.Announcement, bool)

// PolicyPropagateFunc lets a variant fully take over dispatch of one
// announcement to one neighbor. Returning true tells propagate the
// announcement was already handled and the default
// ProcessOutgoingAnnFunc must not run.
type PolicyPropagateFunc func(neighbor *asgraph.AS, a *ann.Announcement, targetRel ann.Relationship, allowedRecvRels map[ann.Relationship]bool) bool

// PrevSentFunc lets a variant suppress re-sending an announcement a
// neighbor has already seen. The baseline never tracks this and always
// returns false.
type PrevSentFunc func(neighbor *asgraph.AS, a *ann.Announcement) bool

// ProcessOutgoingAnnFunc performs the actual hand-off to a neighbor.
type ProcessOutgoingAnnFunc func(neighbor *asgraph.AS, a *ann.Announcement) error

// BGPSimple is the baseline policy described in spec.md §4.6.
type BGPSimple struct {
	as        *asgraph.AS
	localRIB  *rib.LocalRIB
	recvQueue *rib.RecvQueue

	GaoRexfordFuncs      []GaoRexfordFunc
	PolicyPropagateFn    PolicyPropagateFunc
	PrevSentFn           PrevSentFunc
	ProcessOutgoingAnnFn ProcessOutgoingAnnFunc
}

// NewBGPSimple builds a BGPSimple with the default Gao-Rexford chain
// and default (no-op) extension hooks.
func NewBGPSimple() *BGPSimple {
	p := &BGPSimple{
		localRIB:  rib.NewLocalRIB(),
		recvQueue: rib.NewRecvQueue(),
	}
	p.GaoRexfordFuncs = []GaoRexfordFunc{
		p.byLocalPref,
		p.byASPathLength,
		p.byLowestNeighborASNTiebreak,
	}
	p.PolicyPropagateFn = defaultPolicyPropagate
	p.PrevSentFn = defaultPrevSent
	p.ProcessOutgoingAnnFn = defaultProcessOutgoingAnn
	return p
}

// Initialize wires the weak back-reference to the owning AS. Called by
// the engine exactly once, after the AS's neighbor slices are populated
// (spec.md §4.4).
func (p *BGPSimple) Initialize(as *asgraph.AS) {
	p.as = as
}

// LocalRIB exposes the policy's RIB for read-only inspection (CLI
// output, diagnostics); nothing outside this package writes to it.
func (p *BGPSimple) LocalRIB() *rib.LocalRIB {
	return p.localRIB
}

var errStaleAS = errors.New("policy: weak reference to owning AS is stale")

// ReceiveAnn stages a into the RecvQueue under its prefix. No
// validation happens here -- that is ProcessIncomingAnns's job.
func (p *BGPSimple) ReceiveAnn(a *ann.Announcement) {
	p.recvQueue.Add(a)
}

// ProcessIncomingAnns drains the RecvQueue, selecting a new best path
// per prefix via Gao-Rexford, as described in spec.md §4.6.
func (p *BGPSimple) ProcessIncomingAnns(fromRel ann.Relationship, round int, resetQueue bool) error {
	if p.as == nil {
		return errStaleAS
	}

	for _, entry := range p.recvQueue.Entries() {
		current := p.localRIB.Get(entry.Prefix)

		// Seeded announcements are immovable.
		if current != nil && current.SeedASN != nil {
			continue
		}

		og := current
		for _, newAnn := range entry.Anns {
			if !p.validAnn(newAnn) {
				continue
			}
			processed := p.copyAndProcess(newAnn, fromRel)

			winner, err := p.gaoRexford(current, processed)
			if err != nil {
				return err
			}
			current = winner
		}

		if current != og {
			p.localRIB.Add(current)
		}
	}

	if resetQueue {
		p.recvQueue.Clear()
	}
	return nil
}

// validAnn is the sole loop-prevention check: the local ASN must not
// already appear anywhere in the announcement's AS path.
func (p *BGPSimple) validAnn(a *ann.Announcement) bool {
	for _, asn := range a.ASPath {
		if asn == p.as.ASN {
			return false
		}
	}
	return true
}

// copyAndProcess builds the announcement as seen after crossing this
// AS: the local ASN is prepended to the path and recv_relationship is
// stamped with how it arrived. Every other field, including seed_asn
// and the ROA fields, is carried through unchanged (spec.md §9).
func (p *BGPSimple) copyAndProcess(a *ann.Announcement, recvRelationship ann.Relationship) *ann.Announcement {
	newPath := make([]int, 0, len(a.ASPath)+1)
	newPath = append(newPath, p.as.ASN)
	newPath = append(newPath, a.ASPath...)

	return ann.New(a.Prefix, newPath, a.Timestamp, a.SeedASN, a.ROAOrigin, a.ROAValidLength,
		recvRelationship, a.Withdraw, a.TracebackEnd, a.Communities)
}

// PropagateToProviders exports ORIGIN/CUSTOMERS routes to providers.
func (p *BGPSimple) PropagateToProviders() error {
	return p.propagate(ann.Providers, map[ann.Relationship]bool{ann.Origin: true, ann.Customers: true})
}

// PropagateToCustomers exports everything (valley-free: a customer can
// hear any route this AS has chosen) down to customers.
func (p *BGPSimple) PropagateToCustomers() error {
	return p.propagate(ann.Customers, map[ann.Relationship]bool{
		ann.Origin: true, ann.Customers: true, ann.Peers: true, ann.Providers: true,
	})
}

// PropagateToPeers exports ORIGIN/CUSTOMERS routes to peers.
func (p *BGPSimple) PropagateToPeers() error {
	return p.propagate(ann.Peers, map[ann.Relationship]bool{ann.Origin: true, ann.Customers: true})
}

// propagate implements spec.md §4.6.c: resolve the neighbor list for
// targetRel, then for every LocalRIB entry allowed out by
// allowedRecvRels, hand it to each neighbor unless a hook intercepts.
func (p *BGPSimple) propagate(targetRel ann.Relationship, allowedRecvRels map[ann.Relationship]bool) error {
	if p.as == nil {
		return errStaleAS
	}

	var neighbors []*asgraph.AS
	switch targetRel {
	case ann.Providers:
		neighbors = p.as.Providers
	case ann.Peers:
		neighbors = p.as.Peers
	case ann.Customers:
		neighbors = p.as.Customers
	default:
		return fmt.Errorf("policy: unsupported propagation target relationship %s", targetRel)
	}

	for _, neighbor := range neighbors {
		for _, entry := range p.localRIB.Entries() {
			a := entry.Ann
			if !allowedRecvRels[a.RecvRelationship] {
				continue
			}
			if p.PrevSentFn(neighbor, a) {
				continue
			}
			if p.PolicyPropagateFn(neighbor, a, targetRel, allowedRecvRels) {
				continue
			}
			if err := p.ProcessOutgoingAnnFn(neighbor, a); err != nil {
				return err
			}
		}
	}
	return nil
}

func defaultPolicyPropagate(*asgraph.AS, *ann.Announcement, ann.Relationship, map[ann.Relationship]bool) bool {
	return false
}

func defaultPrevSent(*asgraph.AS, *ann.Announcement) bool {
	return false
}

func defaultProcessOutgoingAnn(neighbor *asgraph.AS, a *ann.Announcement) error {
	if neighbor == nil || neighbor.Policy == nil {
		return errStaleAS
	}
	neighbor.Policy.ReceiveAnn(a)
	return nil
}

/* ================== Gao-Rexford decision chain ================== */

// gaoRexford is spec.md §4.6.d: run the comparator chain in order; the
// first to decide wins. If current is nil, candidate always wins
// without consulting the chain. If every comparator ties, that is a
// program error -- the tiebreaker is required to always decide.
func (p *BGPSimple) gaoRexford(current, candidate *ann.Announcement) (*ann.Announcement, error) {
	if candidate == nil {
		return nil, errors.New("policy: candidate announcement must not be nil")
	}
	if current == nil {
		return candidate, nil
	}
	for _, f := range p.GaoRexfordFuncs {
		if winner, decided := f(current, candidate); decided {
			return winner, nil
		}
	}
	return nil, errors.New("policy: gao-rexford chain failed to select a winner")
}

// byLocalPref: higher recv_relationship numeric value wins (CUSTOMERS >
// PEERS > PROVIDERS, ORIGIN highest).
func (p *BGPSimple) byLocalPref(current, candidate *ann.Announcement) (*ann.Announcement, bool) {
	switch {
	case current.RecvRelationship > candidate.RecvRelationship:
		return current, true
	case current.RecvRelationship < candidate.RecvRelationship:
		return candidate, true
	default:
		return nil, false
	}
}

// byASPathLength: shorter AS path wins.
func (p *BGPSimple) byASPathLength(current, candidate *ann.Announcement) (*ann.Announcement, bool) {
	switch {
	case len(current.ASPath) < len(candidate.ASPath):
		return current, true
	case len(current.ASPath) > len(candidate.ASPath):
		return candidate, true
	default:
		return nil, false
	}
}

// byLowestNeighborASNTiebreak: compares the next-hop ASN (as_path[1],
// or as_path[0] for a one-hop path); lower wins. Ties retain current,
// so this comparator never returns (nil, false) -- it is the backstop
// of the chain.
func (p *BGPSimple) byLowestNeighborASNTiebreak(current, candidate *ann.Announcement) (*ann.Announcement, bool) {
	currentNeighbor := neighborASN(current)
	candidateNeighbor := neighborASN(candidate)
	if currentNeighbor <= candidateNeighbor {
		return current, true
	}
	return candidate, true
}

func neighborASN(a *ann.Announcement) int {
	if len(a.ASPath) > 1 {
		return a.ASPath[1]
	}
	return a.ASPath[0]
}
