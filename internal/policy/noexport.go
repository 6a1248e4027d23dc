/* ============================================================= *\
   noexport.go

   NoExportPolicy is the one non-default policy this repo carries, to
   exercise the PolicyPropagateFn extension point end to end: any
   announcement carrying the "no-export" community is withheld from
   providers and peers, matching the well-known BGP community's
   semantics, while still being sent on to customers.
\* ============================================================= */

package policy

import (
	"github.com/Emeline-1/asgraphsim/internal/ann"
	"github.com/Emeline-1/asgraphsim/internal/asgraph"
)

const noExportCommunity = "no-export"

// NoExportPolicy wraps BGPSimple, overriding only the export-dispatch
// hook. Every other step of the decision process (Gao-Rexford chain,
// loop checks, valley-free relationship filter) is inherited unchanged.
type NoExportPolicy struct {
	*BGPSimple
}

// NewNoExportPolicy builds a NoExportPolicy with the default
// Gao-Rexford chain and the no-export filter installed.
func NewNoExportPolicy() *NoExportPolicy {
	p := &NoExportPolicy{BGPSimple: NewBGPSimple()}
	p.PolicyPropagateFn = p.suppressNoExport
	return p
}

// suppressNoExport implements the PolicyPropagateFunc hook: returning
// true tells propagate the announcement was already "handled" (by doing
// nothing), so the default outgoing dispatch never runs for it.
func (p *NoExportPolicy) suppressNoExport(neighbor *asgraph.AS, a *ann.Announcement, targetRel ann.Relationship, allowedRecvRels map[ann.Relationship]bool) bool {
	if targetRel == ann.Customers {
		return false
	}
	for _, c := range a.Communities {
		if c == noExportCommunity {
			return true
		}
	}
	return false
}
