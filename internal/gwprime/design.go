package gwprime

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gatewaytools/gwprime/config"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Gateway recombination adapter sequences prefixed onto each reported
// primer. Fixed literals selected by fusion mode, not derived data. The
// native forward adapter carries an ACC Kozak context ahead of the start
// codon; the fusion reverse adapter carries an extra base to keep a
// C-terminal tag in frame.
const (
	adapterForwardNative = "GGGGACAAGTTTGTACAAAAAAGCAGGCTTCACC"
	adapterForwardFusion = "GGGGACAAGTTTGTACAAAAAAGCAGGCTTC"
	adapterReverseNative = "GGGGACCACTTTGTACAAGAAAGCTGGGTC"
	adapterReverseFusion = "GGGGACCACTTTGTACAAGAAAGCTGGGTCC"
)

// Flags contains parsed cobra flags like "in" and "out" that are used by
// the design command.
type Flags struct {
	// the record files to process, one record per file
	in []string

	// the name of the file to write the output to
	out string
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in []string, out string) *Flags {
	return &Flags{in: in, out: out}
}

// DesignCmd takes a cobra command (with its flags) and runs Design.
func DesignCmd(cmd *cobra.Command, args []string) {
	Design(parseCmdFlags(cmd, args))
}

// parseCmdFlags gathers the in paths and out path from a cobra cmd object.
// Returns Flags and a Config struct for Design.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	fs := &Flags{}
	c := config.New()

	if in, err := cmd.Flags().GetString("in"); err == nil && in != "" {
		splitFunc := func(r rune) bool {
			return r == ' ' || r == ',' // space or comma separated
		}
		fs.in = strings.FieldsFunc(in, splitFunc)
	}
	fs.in = append(fs.in, args...)

	if len(fs.in) == 0 {
		cmd.Help()
		stderr.Fatalln("\nno input records passed.")
	}

	if fs.out, _ = cmd.Flags().GetString("out"); fs.out == "" {
		fs.out = guessOutput(fs.in[0])
	}

	return fs, c
}

// guessOutput gets an output path from an input path (if no output path
// is specified). It uses the same name as the input path.
func guessOutput(in string) (out string) {
	ext := filepath.Ext(in)
	return in[0:len(in)-len(ext)] + ".output.json"
}

// Design runs primer design against every input record and writes the
// accepted primer pairs to the output file.
//
// A record that fails to parse is fatal for that record only: it is logged
// and the remaining records still proceed. Per-CDS failures inside a record
// are recoverable and reported the same way.
func Design(flags *Flags, conf *config.Config) []TargetResult {
	start := time.Now()

	var targets []TargetResult
	for _, path := range flags.in {
		rec, err := readRecord(path)
		if err != nil {
			stderr.Printf("warning: rejecting record %s: %v\n", path, err)
			continue
		}

		results, err := designRecord(rec, conf)
		for _, diag := range multierr.Errors(err) {
			stderr.Printf("warning: %s: %v\n", rec.Accession, diag)
		}
		targets = append(targets, results...)
	}

	elapsed := time.Since(start)
	if _, err := writeJSON(flags.out, targets, elapsed.Seconds()); err != nil {
		stderr.Fatalln(err)
	}

	if conf.Verbose {
		writeText(os.Stdout, targets, conf.LineWidth)
		fmt.Printf("%s\n\n", elapsed)
	}

	return targets
}

// designRecord designs primer pairs for every coding transcript in a
// record. Failures are per CDS: each is aggregated into the returned error
// with enough context to adjust the Tm bounds and rerun, and the remaining
// transcripts still proceed.
func designRecord(rec *Record, conf *config.Config) (targets []TargetResult, errs error) {
	cond := Conditions{
		Cation:    conf.Cation,
		Magnesium: conf.Magnesium,
		DNTP:      conf.DNTP,
		Primer:    conf.Primer,
	}

	for _, cds := range rec.CDSs {
		target, err := designCDS(rec, cds, cond, conf)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf(
				"skipping %s: %w (Tm bounds %.1f-%.1f)",
				cds.ProteinID, err, conf.MinTm, conf.MaxTm,
			))
			continue
		}

		targets = append(targets, target)
	}

	return targets, errs
}

// designCDS maps one CDS into its gene sequence, builds the candidate
// primers for both termini and pairs them by Tm difference.
func designCDS(rec *Record, cds CDS, cond Conditions, conf *config.Config) (TargetResult, error) {
	start, end, err := mapCDS(rec.Seq, cds.Seq)
	if err != nil {
		return TargetResult{}, err
	}

	fwdSeeds, revSeeds, err := seedWindows(cds.Seq, conf.NTerminalFusion, conf.CTerminalFusion)
	if err != nil {
		return TargetResult{}, err
	}

	// forward primers anneal to the plus strand, reverse primers to the
	// minus strand: each side's uniqueness is checked against its own strand
	fwd := generateCandidates(fwdSeeds, rec.Seq, cond, conf.MinTm, conf.MaxTm)
	if len(fwd) == 0 {
		return TargetResult{}, fmt.Errorf("forward: %w", ErrNoPrimerFound)
	}

	rev := generateCandidates(revSeeds, reverseComplement(rec.Seq), cond, conf.MinTm, conf.MaxTm)
	if len(rev) == 0 {
		return TargetResult{}, fmt.Errorf("reverse: %w", ErrNoPrimerFound)
	}

	tmPairs := selectPairs(tmKeys(fwd), tmKeys(rev), conf.ClosestOnly, conf.MaxTmDiff)
	if len(tmPairs) == 0 {
		return TargetResult{}, ErrNoPairFound
	}

	fwdAdapter := adapterForwardNative
	if conf.NTerminalFusion {
		fwdAdapter = adapterForwardFusion
	}
	revAdapter := adapterReverseNative
	if conf.CTerminalFusion {
		revAdapter = adapterReverseFusion
	}

	gene := cds.Gene
	if gene == "" {
		gene = rec.Gene
	}

	target := TargetResult{
		Accession: rec.Accession,
		Gene:      gene,
		ProteinID: cds.ProteinID,
		GeneSeq:   rec.Seq,
		CdsStart:  start,
		CdsEnd:    end,
	}

	// each Tm pair expands to the cartesian product of the sequences
	// grouped under its two Tm keys
	for _, tp := range tmPairs {
		for _, f := range fwd[tp.fTm] {
			for _, r := range rev[tp.rTm] {
				target.Pairs = append(target.Pairs, newPrimerPair(
					fmt.Sprintf("%s_%s_%d", rec.Accession, cds.ProteinID, len(target.Pairs)+1),
					fwdAdapter, f, tp.fTm,
					revAdapter, r, tp.rTm,
					tp.diff,
				))
			}
		}
	}

	return target, nil
}
