package gwprime

import (
	"strings"
)

// complement between bases. case is preserved per base.
var complement = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
	'a': 't',
	't': 'a',
	'g': 'c',
	'c': 'g',
}

// reverseComplement returns the reverse complement of a sequence.
func reverseComplement(seq string) string {
	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		rc[len(seq)-1-i] = complement[seq[i]]
	}

	return string(rc)
}

// search returns the 1-based end offset of every case-insensitive,
// non-overlapping, left-to-right occurrence of needle in haystack.
// The needle is matched literally, never as a pattern. An empty result
// means no match.
//
// Both CDS-to-gene mapping and primer uniqueness checks run through here.
func search(haystack, needle string) (ends []int) {
	if needle == "" {
		return nil
	}

	h := strings.ToUpper(haystack)
	n := strings.ToUpper(needle)

	for i := 0; ; {
		j := strings.Index(h[i:], n)
		if j < 0 {
			return
		}

		i += j + len(n)
		ends = append(ends, i)
	}
}
