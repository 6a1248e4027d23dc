/* ============================================================= *\
   seedfile.go

   Spec.md treats seed announcements as provided in-process, not
   parsed from any wire format by the core -- but cmd/bgpsim still
   needs a way to load them from disk. This is a thin, optional
   convenience reader: one seed per line, "#"-comment lines skipped,
   in the same spirit as the simulator's read_as_rel/read_providers
   line readers.

   Line format (tab-separated):
       prefix  asn  [roa_origin  roa_valid_length]
   roa_origin/roa_valid_length are optional; when present, both must
   be given together.
\* ============================================================= */

package seedfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Emeline-1/asgraphsim/internal/ann"
	"github.com/Emeline-1/asgraphsim/internal/fileio"
)

// Read parses filename into a slice of seed announcements suitable for
// passing straight to engine.SimulationEngine.Setup.
func Read(filename string) ([]*ann.Announcement, error) {
	r := fileio.NewCompressedReader(filename)
	if err := r.Open(); err != nil {
		return nil, fmt.Errorf("seedfile: %w", err)
	}
	defer r.Close()

	scanner := r.Scanner()
	var seeds []*ann.Announcement

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Split(line, "\t")
		if len(tokens) != 2 && len(tokens) != 4 {
			return nil, fmt.Errorf("seedfile: %s:%d: expected 2 or 4 tab-separated columns, got %d", filename, lineNo, len(tokens))
		}

		prefix := tokens[0]
		asn, err := strconv.Atoi(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("seedfile: %s:%d: unparseable asn %q: %w", filename, lineNo, tokens[1], err)
		}

		var roaOrigin *int
		var roaValidLength *bool
		if len(tokens) == 4 {
			origin, err := strconv.Atoi(tokens[2])
			if err != nil {
				return nil, fmt.Errorf("seedfile: %s:%d: unparseable roa_origin %q: %w", filename, lineNo, tokens[2], err)
			}
			validLength, err := strconv.ParseBool(tokens[3])
			if err != nil {
				return nil, fmt.Errorf("seedfile: %s:%d: unparseable roa_valid_length %q: %w", filename, lineNo, tokens[3], err)
			}
			roaOrigin = &origin
			roaValidLength = &validLength
		}

		seeds = append(seeds, ann.New(prefix, []int{asn}, 0, &asn, roaOrigin, roaValidLength, ann.Origin, false, false, nil))
	}

	return seeds, nil
}
