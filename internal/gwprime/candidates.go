package gwprime

import (
	"errors"
	"sort"
)

// usable primer lengths, inclusive.
const (
	primerMinLength = 18
	primerMaxLength = 25
)

// widestSeed is the furthest index any seed window reaches into a CDS.
const widestSeed = 29

// ErrShortCDS is returned for CDSs too short to hold a seed window.
// Recoverable: the CDS is skipped with a warning.
var ErrShortCDS = errors.New("CDS too short for primer design")

// ErrNoPrimerFound is returned when no candidate on a side survives the
// uniqueness and Tm filters. Recoverable per CDS.
var ErrNoPrimerFound = errors.New("no primer candidate passed filtering")

// seedWindows returns the fixed-position seed windows near the two termini
// of a CDS. Primer candidates are prefixes of these.
//
// The offsets are domain convention, kept as-is: without an N-terminal
// fusion the forward windows skip the first base of the start codon
// (assumed Kozak/ATG context), and with a C-terminal fusion the reverse
// window stops short of the stop codon so a tag stays in frame. Reverse
// windows are reverse-complemented here, once, so the generator treats
// both sides the same way.
func seedWindows(cds string, nFusion, cFusion bool) (fwd, rev []string, err error) {
	if len(cds) < widestSeed {
		return nil, nil, ErrShortCDS
	}

	if nFusion {
		fwd = []string{cds[0:25], cds[3:28]}
	} else {
		fwd = []string{cds[1:26], cds[4:29]}
	}

	l := len(cds)
	if cFusion {
		rev = []string{reverseComplement(cds[l-28 : l-3])}
	} else {
		rev = []string{reverseComplement(cds[l-25:])} // includes the stop codon
	}

	return fwd, rev, nil
}

// generateCandidates expands each seed window into progressively longer
// prefixes, one per usable primer length, and filters them down to the
// candidates that both map uniquely into the target sequence and melt
// within [minTm, maxTm]. Survivors are grouped under their Tm rounded to
// two decimals, deduplicated by sequence.
//
// An empty map means no primer was found for this side of the CDS.
func generateCandidates(seeds []string, target string, cond Conditions, minTm, maxTm float64) map[float64][]string {
	byTm := make(map[float64]map[string]bool)

	for _, seed := range seeds {
		for length := primerMinLength; length <= primerMaxLength && length <= len(seed); length++ {
			cand := seed[:length]

			// a primer that anneals zero or 2+ times is unusable
			if len(search(target, cand)) != 1 {
				continue
			}

			tm := calcTm(cand, cond)
			if tm < minTm || tm > maxTm {
				continue
			}

			key := roundTm(tm)
			if byTm[key] == nil {
				byTm[key] = make(map[string]bool)
			}
			byTm[key][cand] = true
		}
	}

	// freeze the sets into sorted slices so downstream output is deterministic
	candidates := make(map[float64][]string, len(byTm))
	for tm, set := range byTm {
		seqs := make([]string, 0, len(set))
		for seq := range set {
			seqs = append(seqs, seq)
		}
		sort.Strings(seqs)
		candidates[tm] = seqs
	}

	return candidates
}

// tmKeys returns the sorted Tm keys of a candidate map.
func tmKeys(candidates map[float64][]string) []float64 {
	keys := make([]float64, 0, len(candidates))
	for tm := range candidates {
		keys = append(keys, tm)
	}
	sort.Float64s(keys)

	return keys
}
