/* ============================================================= *\
   batch.go

   Runs a set of independent simulation scenarios (distinct seed
   files over the same or different graphs) across a bounded worker
   pool. Scenarios share nothing -- each gets its own ASGraph and
   SimulationEngine -- so this is a straight application of the
   simulator's pool.Launch_pool fan-out, the same pattern rib.go and
   readers.go use to parse many independent collector files at once.
\* ============================================================= */

package batch

import (
	"sync"

	pool "github.com/Emeline-1/pool"
)

// Result pairs a scenario's name with its outcome (and any error
// encountered running it).
type Result struct {
	Scenario string
	Err      error
}

// RunAll runs run(scenario) for every entry in scenarios, using workers
// concurrent goroutines. Results are returned in the same order as
// scenarios, regardless of completion order.
func RunAll(workers int, scenarios []string, run func(scenario string) error) []Result {
	results := make([]Result, len(scenarios))
	index := make(map[string]int, len(scenarios))
	var mu sync.Mutex
	for i, s := range scenarios {
		index[s] = i
	}

	worker := func(scenario string) {
		err := run(scenario)
		mu.Lock()
		results[index[scenario]] = Result{Scenario: scenario, Err: err}
		mu.Unlock()
	}

	pool.Launch_pool(workers, scenarios, worker)
	return results
}
