package gwprime

import (
	"testing"
)

// the default reaction conditions: 50 mM cation, 1.5 mM Mg2+,
// 0.2 mM dNTP, 200 nM primer.
var defaultConditions = Conditions{
	Cation:    50.0,
	Magnesium: 1.5,
	DNTP:      0.2,
	Primer:    200.0,
}

func Test_calcTm(t *testing.T) {
	type args struct {
		primer string
		cond   Conditions
	}
	tests := []struct {
		name string
		args args
		want float64 // rounded to 2 decimals
	}{
		{
			"22mer under default conditions",
			args{"ATGGCTAGCAAAGGAGAAGAAC", defaultConditions},
			60.87,
		},
		{
			"20mer under default conditions",
			args{"TGGCTAGCAAAGGAGAAGAA", defaultConditions},
			59.13,
		},
		{
			"21mer under default conditions",
			args{"TTATGTTGCATCACCTTCACC", defaultConditions},
			59.04,
		},
		{
			"lower case input",
			args{"tggctagcaaaggagaagaa", defaultConditions},
			59.13,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundTm(calcTm(tt.args.primer, tt.args.cond)); got != tt.want {
				t.Errorf("calcTm() = %v, want %v", got, tt.want)
			}
		})
	}
}

// raising the monovalent cation concentration must not decrease Tm:
// the entropy correction is monotonic in ln(effectiveNa).
func Test_calcTm_cationMonotonic(t *testing.T) {
	primer := "ATGGCTAGCAAAGGAGAAGAAC"

	last := -300.0
	for _, cation := range []float64{10, 50, 100, 200} {
		cond := defaultConditions
		cond.Cation = cation

		tm := calcTm(primer, cond)
		if tm < last {
			t.Errorf("calcTm() decreased from %v to %v when cation rose to %v mM", last, tm, cation)
		}
		last = tm
	}
}

func Test_nnTable(t *testing.T) {
	bases := "ACGT"

	// every dinucleotide step has an entry
	for _, a := range bases {
		for _, b := range bases {
			key := string(a) + string(b)
			if _, ok := nnTable[key]; !ok {
				t.Errorf("nnTable missing dinucleotide %s", key)
			}
		}
	}

	// every terminal base has an initiation entry
	for _, b := range bases {
		if _, ok := nnTable["init"+string(b)]; !ok {
			t.Errorf("nnTable missing init%s", string(b))
		}
	}

	if _, ok := nnTable["sym"]; !ok {
		t.Error("nnTable missing the symmetry correction")
	}

	// 16 dinucleotides + 4 init terms + 1 symmetry term
	if len(nnTable) != 21 {
		t.Errorf("nnTable has %d entries, want 21", len(nnTable))
	}
}

func Test_roundTm(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{60.866150957410866, 60.87},
		{59.044917321895014, 59.04},
		{-1.004999, -1.0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := roundTm(tt.in); got != tt.want {
			t.Errorf("roundTm(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
