/* ============================================================= *\
   asmeta.go

   Optional AS organization/country metadata, read from a sqlite3
   file and keyed by ASN -- reporting only, never the LocalRIB or any
   routing state. Grounded on the simulator's SqliteReader/ReadSqlite
   (readers.go), which opens a sqlite3 file via
   github.com/mattn/go-sqlite3 and scans its rows into Go values the
   same way.
\* ============================================================= */

package asmeta

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Info is one AS's organizational metadata.
type Info struct {
	ASN     int
	Org     string
	Country string
}

// Store maps ASN to Info, loaded once from a sqlite3 file.
type Store struct {
	byASN map[int]Info
}

// Load opens filename (a sqlite3 database with an "as_org" table of
// columns asn, org, country) and reads every row into a Store.
func Load(filename string) (*Store, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("asmeta: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT asn, org, country FROM as_org")
	if err != nil {
		return nil, fmt.Errorf("asmeta: querying as_org: %w", err)
	}
	defer rows.Close()

	store := &Store{byASN: make(map[int]Info)}
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.ASN, &info.Org, &info.Country); err != nil {
			return nil, fmt.Errorf("asmeta: scanning as_org row: %w", err)
		}
		store.byASN[info.ASN] = info
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("asmeta: reading as_org rows: %w", err)
	}

	return store, nil
}

// Lookup returns the metadata for asn, or (Info{}, false) if unknown.
func (s *Store) Lookup(asn int) (Info, bool) {
	info, ok := s.byASN[asn]
	return info, ok
}

// Len reports how many ASNs have metadata loaded.
func (s *Store) Len() int {
	return len(s.byASN)
}
