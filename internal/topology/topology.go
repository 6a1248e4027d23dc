/* ============================================================= *\
   topology.go

   Connectivity diagnostics over an ASGraph, independent of any
   simulation run: which ASes fall into the same connected component
   of the undirected peer/customer/provider graph. Grounded on the
   simulator's overlays_processing.go, which builds exactly this kind
   of ad-hoc undirected graph and walks its connected components via
   github.com/Emeline-1/basic_graph.
\* ============================================================= */

package topology

import (
	"sort"
	"strconv"

	graph "github.com/Emeline-1/basic_graph"

	"github.com/Emeline-1/asgraphsim/internal/asgraph"
)

// ConnectedComponents groups every ASN in g into its undirected
// connected component (an edge exists between two ASes for any of the
// peer/customer/provider relationships). Isolated ASes (no edges at
// all) come back as their own singleton component. Components are
// returned sorted by their lowest member ASN, and members within a
// component are sorted ascending.
func ConnectedComponents(g *asgraph.Graph) [][]int {
	bg := graph.New()
	isolated := map[int]bool{}

	for _, asn := range g.SortedASNs() {
		as := g.Get(asn)
		isolated[asn] = true
		for _, neighbors := range [][]*asgraph.AS{as.Peers, as.Customers, as.Providers} {
			for _, n := range neighbors {
				bg.Add_edge(strconv.Itoa(asn), strconv.Itoa(n.ASN))
				isolated[asn] = false
				isolated[n.ASN] = false
			}
		}
	}

	var components [][]int
	bg.Set_iterator()
	for bg.Next_connected_component() {
		component := bg.Connected_component()
		asns := make([]int, 0, len(component))
		for _, s := range component {
			asn, err := strconv.Atoi(s)
			if err != nil {
				continue
			}
			asns = append(asns, asn)
			delete(isolated, asn)
		}
		sort.Ints(asns)
		components = append(components, asns)
	}

	for asn, stillIsolated := range isolated {
		if stillIsolated {
			components = append(components, []int{asn})
		}
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}
