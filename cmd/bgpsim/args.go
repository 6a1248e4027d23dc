/* ============================================================= *\
   args.go

   Program argument handling, one handler per subcommand, in the same
   per-subcommand flag.NewFlagSet style the simulator CLI uses.
\* ============================================================= */

package main

import (
	"flag"
	"os"
)

func handleArgsRun(args []string) (_asRelFile, _seedFile, _basePolicy string, _rounds int) {
	if len(args) <= 0 {
		println("Missing arguments")
		os.Exit(-1)
	}
	cmd := flag.NewFlagSet(args[0], flag.ExitOnError)

	cmd.StringVar(&_asRelFile, "asrel", "", "CAIDA-format AS-relationship file")
	cmd.StringVar(&_seedFile, "seeds", "", "Seed announcement file")
	cmd.StringVar(&_basePolicy, "policy", "BGPSimple", "Default policy name assigned to every AS")
	cmd.IntVar(&_rounds, "rounds", 1, "Number of propagation rounds to run")

	cmd.Parse(args[1:])
	return
}

func handleArgsGraphInfo(args []string) (_asRelFile string) {
	if len(args) <= 0 {
		println("Missing arguments")
		os.Exit(-1)
	}
	cmd := flag.NewFlagSet(args[0], flag.ExitOnError)

	cmd.StringVar(&_asRelFile, "asrel", "", "CAIDA-format AS-relationship file")

	cmd.Parse(args[1:])
	return
}

func handleArgsRibDiff(args []string) (_asRelFile, _seedFile string) {
	if len(args) <= 0 {
		println("Missing arguments")
		os.Exit(-1)
	}
	cmd := flag.NewFlagSet(args[0], flag.ExitOnError)

	cmd.StringVar(&_asRelFile, "asrel", "", "CAIDA-format AS-relationship file")
	cmd.StringVar(&_seedFile, "seeds", "", "Seed announcement file")

	cmd.Parse(args[1:])
	return
}
