/* ============================================================= *\
   announcement.go

   The immutable route record propagated between ASes. Once built
   by New, only the predicate methods below are meant to be called;
   nothing in this package ever mutates a *Announcement in place.
\* ============================================================= */

package ann

import "fmt"

// Relationship records how an announcement reached the AS that is
// holding it. The numeric ordering is significant: it IS the Gao-Rexford
// local-preference order (customer > peer > provider), so don't
// renumber these without re-reading the byLocalPref comparator in
// internal/policy/bgpsimple.go.
type Relationship int

const (
	Providers Relationship = iota + 1
	Peers
	Customers
	Origin
	Unknown
)

func (r Relationship) String() string {
	switch r {
	case Providers:
		return "providers"
	case Peers:
		return "peers"
	case Customers:
		return "customers"
	case Origin:
		return "origin"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Relationship(%d)", int(r))
	}
}

// Announcement is a single route advertisement for a prefix.
// Prefix is treated opaquely: any CIDR-like token the caller wants to
// use as a RIB key works, the core never parses it.
type Announcement struct {
	Prefix           string
	ASPath           []int
	Timestamp        int
	SeedASN          *int
	ROAValidLength   *bool
	ROAOrigin        *int
	RecvRelationship Relationship
	Withdraw         bool
	TracebackEnd     bool
	Communities      []string
}

// New builds an Announcement. asPath, communities are copied so the
// caller's backing arrays can be reused/mutated afterwards without
// affecting the announcement.
func New(prefix string, asPath []int, timestamp int, seedASN, roaOrigin *int, roaValidLength *bool,
	recvRelationship Relationship, withdraw, tracebackEnd bool, communities []string) *Announcement {

	pathCopy := make([]int, len(asPath))
	copy(pathCopy, asPath)
	var commCopy []string
	if len(communities) > 0 {
		commCopy = make([]string, len(communities))
		copy(commCopy, communities)
	}

	return &Announcement{
		Prefix:           prefix,
		ASPath:           pathCopy,
		Timestamp:        timestamp,
		SeedASN:          seedASN,
		ROAValidLength:   roaValidLength,
		ROAOrigin:        roaOrigin,
		RecvRelationship: recvRelationship,
		Withdraw:         withdraw,
		TracebackEnd:     tracebackEnd,
		Communities:      commCopy,
	}
}

// Origin returns the last hop of the AS path, i.e. the AS that
// originated the route. The core never constructs an announcement with
// an empty path; -1 is returned as a sentinel if one somehow occurs.
func (a *Announcement) Origin() int {
	if len(a.ASPath) == 0 {
		return -1
	}
	return a.ASPath[len(a.ASPath)-1]
}

// PrefixPathAttributesEq reports whether a and other carry the same
// prefix and AS path (ignoring every other attribute).
func (a *Announcement) PrefixPathAttributesEq(other *Announcement) bool {
	if other == nil {
		return false
	}
	if a.Prefix != other.Prefix || len(a.ASPath) != len(other.ASPath) {
		return false
	}
	for i, asn := range a.ASPath {
		if other.ASPath[i] != asn {
			return false
		}
	}
	return true
}

// InvalidByROA reports whether the announcement conflicts with its own
// seeded ROA (origin mismatch or an overly specific prefix).
func (a *Announcement) InvalidByROA() bool {
	if a.ROAOrigin == nil {
		return false
	}
	return a.Origin() != *a.ROAOrigin || a.ROAValidLength == nil || !*a.ROAValidLength
}

// ValidByROA reports whether the announcement's origin and prefix
// length both match its seeded ROA.
func (a *Announcement) ValidByROA() bool {
	return a.ROAOrigin != nil && a.Origin() == *a.ROAOrigin && a.ROAValidLength != nil && *a.ROAValidLength
}

// UnknownByROA reports whether no ROA verdict could be reached.
func (a *Announcement) UnknownByROA() bool {
	return !a.InvalidByROA() && !a.ValidByROA()
}

// CoveredByROA is the negation of UnknownByROA.
func (a *Announcement) CoveredByROA() bool {
	return !a.UnknownByROA()
}

// ROARouted reports whether a ROA exists for this prefix with a non-zero
// origin; a ROA with origin ASN 0 (the RPKI convention for "no route
// allowed") reports false.
func (a *Announcement) ROARouted() bool {
	return a.ROAOrigin != nil && *a.ROAOrigin != 0
}
