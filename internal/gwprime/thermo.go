package gwprime

import (
	"math"
	"strings"
)

// rGas is the gas constant in cal/(K*mol).
const rGas = 1.987

// nnEntry is one nearest-neighbor parameter: enthalpy in kcal/mol and
// entropy in cal/(K*mol).
type nnEntry struct {
	H float64
	S float64
}

// nnTable holds the SantaLucia (1998) unified nearest-neighbor parameters:
// a 1 M NaCl entry for each of the 16 dinucleotide steps, an initiation
// entry for each terminal base and a symmetry correction for
// self-complementary duplexes. Populated once, read-only.
var nnTable = map[string]nnEntry{
	"AA": {-7.9, -22.2},
	"TT": {-7.9, -22.2},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7},
	"TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4},
	"AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0},
	"AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2},
	"TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9},
	"CC": {-8.0, -19.9},

	"initA": {2.3, 4.1},
	"initT": {2.3, 4.1},
	"initC": {0.1, -2.8},
	"initG": {0.1, -2.8},

	"sym": {0.0, -1.4},
}

// Conditions are the reaction conditions consumed by calcTm. All
// concentrations are in mM except Primer, which is in nM.
type Conditions struct {
	// monovalent cation concentration (mM)
	Cation float64

	// Mg2+ concentration (mM)
	Magnesium float64

	// dNTP concentration (mM)
	DNTP float64

	// primer concentration (nM)
	Primer float64
}

// calcTm computes the melting temperature of a primer, in Celsius, with the
// nearest-neighbor model:
//
//  1. sum dH/dS over each adjacent dinucleotide
//  2. add the initiation entries for the first and last base
//  3. correct dS for the effective monovalent cation concentration, where
//     free Mg2+ (less what the dNTPs chelate) counts 120-fold
//  4. two-state Tm = dH*1000 / (dS + R*ln(CT/4)) - 273.15
func calcTm(primer string, cond Conditions) float64 {
	p := strings.ToUpper(primer)

	dH := 0.0
	dS := 0.0
	for i := 0; i < len(p)-1; i++ {
		e := nnTable[p[i:i+2]]
		dH += e.H
		dS += e.S
	}

	first := nnTable["init"+p[:1]]
	last := nnTable["init"+p[len(p)-1:]]
	dH += first.H + last.H
	dS += first.S + last.S

	if p == reverseComplement(p) {
		dH += nnTable["sym"].H
		dS += nnTable["sym"].S
	}

	saltCorrection := math.Sqrt(math.Max(0, cond.Magnesium-cond.DNTP))
	effectiveNa := (cond.Cation + 120.0*saltCorrection) / 1000.0 // molar
	dS += 0.368 * float64(len(p)-1) * math.Log(effectiveNa)

	oligoMolar := cond.Primer / 1e9

	return dH*1000.0/(dS+rGas*math.Log(oligoMolar/4.0)) - 273.15
}

// roundTm rounds a melting temperature to two decimal places. Rounded Tms
// key the candidate maps and are what gets reported.
func roundTm(tm float64) float64 {
	return math.Round(tm*100.0) / 100.0
}
