package gwprime

import (
	"errors"
	"math"
	"sort"
)

// ErrNoPairFound is returned when no forward/reverse Tm combination
// satisfies the pairing policy. Recoverable per CDS.
var ErrNoPairFound = errors.New("no primer pair within the Tm-difference policy")

// tmPair is one forward/reverse melting temperature combination.
type tmPair struct {
	// forward and reverse Tm (2 decimals)
	fTm float64
	rTm float64

	// diff is fTm - rTm, signed, rounded to 2 decimals
	diff float64
}

// selectPairs combines forward and reverse candidate Tms into pairs.
//
// With closestOnly every combination whose absolute Tm difference equals
// the minimum observed is kept, both signs included. Otherwise every
// combination with an absolute difference within maxDiff is kept. The
// candidates were already filtered into [minTm, maxTm], so no absolute-Tm
// check happens here, only the difference.
func selectPairs(forwardTms, reverseTms []float64, closestOnly bool, maxDiff float64) []tmPair {
	if closestOnly {
		maxDiff = math.Inf(1)
		for _, f := range forwardTms {
			for _, r := range reverseTms {
				if d := math.Abs(roundTm(f - r)); d < maxDiff {
					maxDiff = d
				}
			}
		}
	}

	var pairs []tmPair
	for _, f := range forwardTms {
		for _, r := range reverseTms {
			d := roundTm(f - r)
			if math.Abs(d) <= maxDiff {
				pairs = append(pairs, tmPair{fTm: f, rTm: r, diff: d})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].fTm != pairs[j].fTm {
			return pairs[i].fTm < pairs[j].fTm
		}
		return pairs[i].rTm < pairs[j].rTm
	})

	return pairs
}
