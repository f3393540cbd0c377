package gwprime

import (
	"bytes"
	"strings"
	"testing"
)

func Test_newPrimerPair(t *testing.T) {
	p := newPrimerPair(
		"NM_000001.1_NP_000001.1_1",
		adapterForwardNative, "TGGCTAGCAAAGGAGAAGAAC", 60.49,
		adapterReverseNative, "TTATGTTGCATCACCTTCACC", 59.04,
		1.45,
	)

	if p.FwdSeq != adapterForwardNative+"TGGCTAGCAAAGGAGAAGAAC" {
		t.Errorf("newPrimerPair() FwdSeq = %v", p.FwdSeq)
	}
	if p.RevSeq != adapterReverseNative+"TTATGTTGCATCACCTTCACC" {
		t.Errorf("newPrimerPair() RevSeq = %v", p.RevSeq)
	}
	if p.FwdTm != 60.49 || p.RevTm != 59.04 || p.TmDiff != 1.45 {
		t.Errorf("newPrimerPair() Tms = %v/%v/%v", p.FwdTm, p.RevTm, p.TmDiff)
	}

	if p.FwdGC <= 0 || p.FwdGC >= 100 || p.RevGC <= 0 || p.RevGC >= 100 {
		t.Errorf("newPrimerPair() GC = %v/%v, want percentages", p.FwdGC, p.RevGC)
	}
}

func Test_amplicon(t *testing.T) {
	p := newPrimerPair(
		"NM_000001.1_NP_000001.1_1",
		adapterForwardNative, "TGGCTAGCAAAGGAGAAGAAC", 60.49,
		adapterReverseNative, "TTATGTTGCATCACCTTCACC", 59.04,
		1.45,
	)

	want := adapterForwardNative + egfpGene[30:149] + reverseComplement(adapterReverseNative)
	if got := amplicon(egfpGene, p); got != want {
		t.Errorf("amplicon() = %v, want %v", got, want)
	}

	// a primer that doesn't anneal yields nothing
	p.FwdPrimer = "GGGGGGGGGGGGGGGGGG"
	if got := amplicon(egfpGene, p); got != "" {
		t.Errorf("amplicon() = %v, want empty", got)
	}
}

func Test_writeSeqBlock(t *testing.T) {
	var b bytes.Buffer
	writeSeqBlock(&b, "AAAAAAAAAATTTTTTTTTTGGGGG", 10)

	want := "        1 AAAAAAAAAA\n" +
		"       11 TTTTTTTTTT\n" +
		"       21 GGGGG\n"
	if got := b.String(); got != want {
		t.Errorf("writeSeqBlock() = %q, want %q", got, want)
	}
}

func Test_writeText(t *testing.T) {
	target := TargetResult{
		Accession: "NM_000001.1",
		Gene:      "EGFP",
		ProteinID: "NP_000001.1",
		GeneSeq:   egfpGene,
		CdsStart:  29,
		CdsEnd:    149,
		Pairs: []PrimerPair{
			newPrimerPair(
				"NM_000001.1_NP_000001.1_1",
				adapterForwardNative, "TGGCTAGCAAAGGAGAAGAAC", 60.49,
				adapterReverseNative, "TTATGTTGCATCACCTTCACC", 59.04,
				1.45,
			),
		},
	}

	var b bytes.Buffer
	writeText(&b, []TargetResult{target}, 60)

	out := b.String()
	for _, want := range []string{
		"NM_000001.1 EGFP NP_000001.1  CDS 29..149",
		"NM_000001.1_NP_000001.1_1",
		adapterForwardNative + "TGGCTAGCAAAGGAGAAGAAC",
		"60.49",
		"59.04",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("writeText() output missing %q:\n%s", want, out)
		}
	}
}
