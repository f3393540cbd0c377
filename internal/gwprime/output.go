package gwprime

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"text/tabwriter"
	"time"

	"github.com/bebop/poly/checks"
)

// PrimerPair is one accepted primer pair for a target CDS.
type PrimerPair struct {
	// ID identifies the pair, e.g. "NM_000001.1_NP_000001.1_3"
	ID string `json:"id"`

	// FwdSeq and RevSeq are the full ordering sequences: adapter + primer
	FwdSeq string `json:"fwdSeq"`
	RevSeq string `json:"revSeq"`

	// FwdPrimer and RevPrimer are just the annealing parts
	FwdPrimer string `json:"fwdPrimer"`
	RevPrimer string `json:"revPrimer"`

	// melting temperatures of the annealing parts (2 decimals)
	FwdTm float64 `json:"fwdTm"`
	RevTm float64 `json:"revTm"`

	// TmDiff is FwdTm - RevTm, signed
	TmDiff float64 `json:"tmDiff"`

	// GC percentage of the annealing parts
	FwdGC float64 `json:"fwdGC"`
	RevGC float64 `json:"revGC"`
}

// newPrimerPair assembles a reported pair from its adapters, annealing
// sequences and Tms.
func newPrimerPair(id, fwdAdapter, fwd string, fwdTm float64, revAdapter, rev string, revTm, diff float64) PrimerPair {
	return PrimerPair{
		ID:        id,
		FwdSeq:    fwdAdapter + fwd,
		RevSeq:    revAdapter + rev,
		FwdPrimer: fwd,
		RevPrimer: rev,
		FwdTm:     fwdTm,
		RevTm:     revTm,
		TmDiff:    diff,
		FwdGC:     roundTm(100.0 * checks.GcContent(fwd)),
		RevGC:     roundTm(100.0 * checks.GcContent(rev)),
	}
}

// TargetResult is the design output for one coding transcript. It carries
// the gene sequence and the CDS mapping so a renderer can reconstruct the
// cloned amplicon.
type TargetResult struct {
	// Accession of the source record
	Accession string `json:"accession"`

	// Gene symbol, if annotated
	Gene string `json:"gene,omitempty"`

	// ProteinID of the transcript
	ProteinID string `json:"proteinId"`

	// GeneSeq is the full gene-level sequence
	GeneSeq string `json:"geneSeq"`

	// CDS offsets within GeneSeq. 0-based, end exclusive
	CdsStart int `json:"cdsStart"`
	CdsEnd   int `json:"cdsEnd"`

	// Pairs are the accepted primer pairs
	Pairs []PrimerPair `json:"pairs"`
}

// Output is a struct containing design results for a whole run.
type Output struct {
	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Targets are the per-CDS results
	Targets []TargetResult `json:"targets"`
}

// writeJSON writes the targets to the filename requested as JSON.
func writeJSON(filename string, targets []TargetResult, seconds float64) (output []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	timestamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	if targets == nil {
		targets = []TargetResult{}
	}

	out := Output{
		Time:      timestamp,
		Execution: seconds,
		Targets:   targets,
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = ioutil.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %v", err)
	}

	return output, nil
}

// writeText renders each target for operator eyeballing: a table of its
// pairs and, for the first pair, the cloned amplicon wrapped at width
// columns.
func writeText(w io.Writer, targets []TargetResult, width int) {
	for _, target := range targets {
		fmt.Fprintf(
			w, "%s %s %s  CDS %d..%d\n",
			target.Accession, target.Gene, target.ProteinID, target.CdsStart, target.CdsEnd,
		)

		tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
		fmt.Fprintf(tw, "id\tfwd\trev\tfwdTm\trevTm\tdiff\t\n")
		for _, p := range target.Pairs {
			fmt.Fprintf(
				tw, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\n",
				p.ID, p.FwdSeq, p.RevSeq, p.FwdTm, p.RevTm, p.TmDiff,
			)
		}
		tw.Flush()

		if len(target.Pairs) > 0 {
			fmt.Fprintln(w)
			writeSeqBlock(w, amplicon(target.GeneSeq, target.Pairs[0]), width)
		}
		fmt.Fprintln(w)
	}
}

// amplicon reconstructs the cloned product of a pair: the forward adapter,
// the stretch of the gene sequence between the two annealing sites
// (inclusive) and the reverse complement of the reverse adapter.
func amplicon(gene string, p PrimerPair) string {
	fwdEnds := search(gene, p.FwdPrimer)
	revEnds := search(gene, reverseComplement(p.RevPrimer))
	if len(fwdEnds) != 1 || len(revEnds) != 1 {
		return ""
	}

	start := fwdEnds[0] - len(p.FwdPrimer)
	end := revEnds[0]
	if start >= end {
		return ""
	}

	return p.FwdSeq[:len(p.FwdSeq)-len(p.FwdPrimer)] +
		gene[start:end] +
		reverseComplement(p.RevSeq[:len(p.RevSeq)-len(p.RevPrimer)])
}

// writeSeqBlock writes a sequence in width-column rows with 1-based offsets,
// like a genbank ORIGIN block.
func writeSeqBlock(w io.Writer, seq string, width int) {
	if width < 1 {
		width = 60
	}

	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		fmt.Fprintf(w, "%9d %s\n", i+1, seq[i:end])
	}
}
