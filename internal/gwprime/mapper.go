package gwprime

import (
	"errors"
	"fmt"
)

// recoverable per-CDS failures. callers skip the CDS with a warning and
// move on to the next one.
var (
	// ErrMappingNotFound is returned when a CDS doesn't occur in its gene sequence.
	ErrMappingNotFound = errors.New("CDS not found in gene sequence")

	// ErrAmbiguousMapping is returned when a CDS occurs more than once in its gene sequence.
	ErrAmbiguousMapping = errors.New("CDS maps to more than one site in gene sequence")
)

// mapCDS locates a spliced CDS within its parent gene sequence. The mapping
// must be unique. start and end are 0-based offsets into the gene sequence,
// end exclusive.
func mapCDS(gene, cds string) (start, end int, err error) {
	ends := search(gene, cds)

	switch len(ends) {
	case 0:
		return 0, 0, ErrMappingNotFound
	case 1:
		return ends[0] - len(cds), ends[0], nil
	default:
		return 0, 0, fmt.Errorf("%w: %d sites", ErrAmbiguousMapping, len(ends))
	}
}
