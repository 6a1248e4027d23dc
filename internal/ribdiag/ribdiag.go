/* ============================================================= *\
   ribdiag.go

   Overlay detection over a converged LocalRIB: which installed
   prefixes are more-specifics of another installed prefix, and
   whether the more-specific actually diverges from its covering
   aggregate's chosen path. Grounded directly on the simulator's
   overlays_processing.go, which builds the same radix tree over
   binary-encoded prefixes and walks it post-order via
   github.com/Emeline-1/radix; the prefix<->binary-string conversion
   is adapted from ip_addresses.go's get_binary_string /
   get_prefix_from_binary.
\* ============================================================= */

package ribdiag

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	radix "github.com/Emeline-1/radix"

	"github.com/Emeline-1/asgraphsim/internal/rib"
)

// Overlay is one more-specific prefix nested under an aggregate, both
// present in the same LocalRIB.
type Overlay struct {
	Aggregate       string
	MoreSpecific    string
	SamePathAsParent bool
}

// FindOverlays walks localRIB's prefixes as a radix (patricia) tree and
// reports every direct parent/child pair, flagging whether the child's
// AS path matches its parent's (an "overlay" proper, in CAIDA
// terminology) or diverges (a genuine more-specific route).
func FindOverlays(localRIB *rib.LocalRIB) ([]Overlay, error) {
	tree := radix.New()
	for _, entry := range localRIB.Entries() {
		binary, err := binaryKey(entry.Prefix)
		if err != nil {
			return nil, fmt.Errorf("ribdiag: %w", err)
		}
		tree.Insert(binary, pathString(entry.Ann.ASPath))
	}

	var overlays []Overlay
	tree.Walk_post(func(parent *radix.LeafNode, children []*radix.LeafNode) {
		aggregate := prefixFromBinary(parent.Key)
		aggregatePath, _ := parent.Val.(string)

		for _, child := range children {
			childPath, _ := child.Val.(string)
			overlays = append(overlays, Overlay{
				Aggregate:        aggregate,
				MoreSpecific:     prefixFromBinary(child.Key),
				SamePathAsParent: childPath == aggregatePath,
			})
		}
	})

	return overlays, nil
}

// binaryKey renders prefix (e.g. "1.0.4.0/22") as a binary string
// truncated at its mask length, the radix tree's key space.
func binaryKey(prefix string) (string, error) {
	ip, _, err := net.ParseCIDR(prefix)
	if err != nil {
		return "", fmt.Errorf("%q: %w", prefix, err)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return "", fmt.Errorf("%q: not an IPv4 prefix", prefix)
	}

	maskLen, err := maskLength(prefix)
	if err != nil {
		return "", err
	}

	bits := fmt.Sprintf("%08b%08b%08b%08b", ip4[0], ip4[1], ip4[2], ip4[3])
	return bits[:maskLen], nil
}

func maskLength(prefix string) (int, error) {
	parts := strings.Split(prefix, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%q: missing mask length", prefix)
	}
	return strconv.Atoi(parts[1])
}

// prefixFromBinary is the inverse of binaryKey, padding the remaining
// bits with zero.
func prefixFromBinary(binary string) string {
	maskLen := len(binary)
	padded := binary + strings.Repeat("0", 32-maskLen)

	octets := make([]string, 0, 4)
	for start := 0; start < 32; start += 8 {
		v, _ := strconv.ParseUint(padded[start:start+8], 2, 8)
		octets = append(octets, strconv.Itoa(int(v)))
	}
	return strings.Join(octets, ".") + "/" + strconv.Itoa(maskLen)
}

func pathString(path []int) string {
	parts := make([]string, len(path))
	for i, asn := range path {
		parts[i] = strconv.Itoa(asn)
	}
	return strings.Join(parts, " ")
}
