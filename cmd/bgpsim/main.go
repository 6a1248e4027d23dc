/* ============================================================= *\
   main.go

   CLI entry point: subcommand dispatch in the same bare switch style
   the simulator's main.go uses, each subcommand handling its own
   flag.FlagSet via args.go.
\* ============================================================= */

package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/Emeline-1/asgraphsim/internal/ann"
	"github.com/Emeline-1/asgraphsim/internal/asrel"
	"github.com/Emeline-1/asgraphsim/internal/engine"
	"github.com/Emeline-1/asgraphsim/internal/ribdiag"
	"github.com/Emeline-1/asgraphsim/internal/rib"
	"github.com/Emeline-1/asgraphsim/internal/seedfile"
	"github.com/Emeline-1/asgraphsim/internal/topology"
)

func usage() {
	println("\nUsage of bgpsim:\n")
	println("bgpsim has several modes:")
	println("  - run: run a simulation over an AS-relationship file and a seed file.")
	println("  - graph-info: report topology statistics for an AS-relationship file.")
	println("  - rib-diff: run a simulation then report more-specific/overlay routes per AS.\n")
	println("Type")
	println("  ./bgpsim [mode] -h")
	println("for further information on each mode.\n")
}

func main() {
	log.SetFlags(0)
	if len(os.Args) == 1 {
		usage()
		return
	}

	switch command := os.Args[1]; command {
	case "run":
		runCommand(os.Args[1:])
	case "graph-info":
		graphInfoCommand(os.Args[1:])
	case "rib-diff":
		ribDiffCommand(os.Args[1:])
	default:
		usage()
		log.Fatalf("[main]: unknown mode %q", command)
	}
}

// ribHaver mirrors the interface internal/engine uses internally; any
// policy built on policy.BGPSimple satisfies it.
type ribHaver interface {
	LocalRIB() *rib.LocalRIB
}

func runCommand(args []string) {
	asRelFile, seedFile, basePolicy, rounds := handleArgsRun(args)
	if asRelFile == "" || seedFile == "" {
		log.Fatal("[run]: -asrel and -seeds are required")
	}

	graph, err := asrel.Read(asRelFile)
	if err != nil {
		log.Fatalf("[run]: %v", err)
	}
	seeds, err := seedfile.Read(seedFile)
	if err != nil {
		log.Fatalf("[run]: %v", err)
	}

	e := engine.New(graph)
	if err := e.Setup(seeds, basePolicy, nil); err != nil {
		log.Fatalf("[run]: setup: %v", err)
	}
	for r := 0; r < rounds; r++ {
		if err := e.Run(r); err != nil {
			log.Fatalf("[run]: round %d: %v", r, err)
		}
	}

	for _, asn := range graph.SortedASNs() {
		as := graph.Get(asn)
		rh, ok := as.Policy.(ribHaver)
		if !ok {
			continue
		}
		for _, entry := range rh.LocalRIB().Entries() {
			fmt.Printf("AS%d\t%s\t%v\n", asn, entry.Prefix, pathOf(entry.Ann))
		}
	}
}

func graphInfoCommand(args []string) {
	asRelFile := handleArgsGraphInfo(args)
	if asRelFile == "" {
		log.Fatal("[graph-info]: -asrel is required")
	}

	graph, err := asrel.Read(asRelFile)
	if err != nil {
		log.Fatalf("[graph-info]: %v", err)
	}
	if err := graph.CalculatePropagationRanks(); err != nil {
		log.Fatalf("[graph-info]: %v", err)
	}

	fmt.Printf("ASes: %d\n", len(graph.ASDict))
	fmt.Printf("Max propagation rank: %d\n", graph.MaxRank())
	for r, bucket := range graph.PropagationRanks {
		fmt.Printf("  rank %d: %d ASes\n", r, len(bucket))
	}

	components := topology.ConnectedComponents(graph)
	fmt.Printf("Connected components: %d\n", len(components))
	sort.Slice(components, func(i, j int) bool { return len(components[i]) > len(components[j]) })
	for i, c := range components {
		if i >= 5 {
			fmt.Printf("  ... %d more\n", len(components)-i)
			break
		}
		fmt.Printf("  component of size %d, smallest ASN %d\n", len(c), c[0])
	}
}

func ribDiffCommand(args []string) {
	asRelFile, seedFile := handleArgsRibDiff(args)
	if asRelFile == "" || seedFile == "" {
		log.Fatal("[rib-diff]: -asrel and -seeds are required")
	}

	graph, err := asrel.Read(asRelFile)
	if err != nil {
		log.Fatalf("[rib-diff]: %v", err)
	}
	seeds, err := seedfile.Read(seedFile)
	if err != nil {
		log.Fatalf("[rib-diff]: %v", err)
	}

	e := engine.New(graph)
	if err := e.Setup(seeds, "BGPSimple", nil); err != nil {
		log.Fatalf("[rib-diff]: setup: %v", err)
	}
	if err := e.Run(0); err != nil {
		log.Fatalf("[rib-diff]: %v", err)
	}

	for _, asn := range graph.SortedASNs() {
		as := graph.Get(asn)
		rh, ok := as.Policy.(ribHaver)
		if !ok {
			continue
		}
		overlays, err := ribdiag.FindOverlays(rh.LocalRIB())
		if err != nil {
			log.Fatalf("[rib-diff]: AS%d: %v", asn, err)
		}
		for _, o := range overlays {
			fmt.Printf("AS%d\t%s covers %s\tsame_path=%v\n", asn, o.Aggregate, o.MoreSpecific, o.SamePathAsParent)
		}
	}
}

func pathOf(a *ann.Announcement) []int {
	return a.ASPath
}
