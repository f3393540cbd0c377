package gwprime

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Record is one sequence record from the provider: a single accession, its
// one gene-level sequence and the coding transcripts annotated on it.
type Record struct {
	// Accession identifies the record
	Accession string

	// Gene is the gene symbol, if annotated
	Gene string

	// Seq is the gene-level sequence the CDSs map into
	Seq string

	// CDSs are the coding transcripts to design primers for
	CDSs []CDS
}

// CDS is one coding transcript in a Record.
type CDS struct {
	// ProteinID keys the transcript, e.g. "NP_000001.1"
	ProteinID string

	// Gene is the parent gene name
	Gene string

	// Seq is the spliced coding sequence
	Seq string
}

var (
	// bracketed qualifiers in a FASTA description, e.g. [gene=EGFP]
	qualifierRegex = regexp.MustCompile(`\[(\w+)=([^\]]+)\]`)

	// NCBI-style CDS entry token, e.g. lcl|NM_000001.1_cds_NP_000001.1_1
	cdsTokenRegex = regexp.MustCompile(`^(?:lcl\|)?(\S+?)_cds_(\S+)`)

	// for cleaning sequence lines
	unwantedChars = regexp.MustCompile(`(?im)[^atgc]|\W`)
)

// readRecord reads one record file (by its path on the local FS) into a Record.
func readRecord(path string) (*Record, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to record file: %v", err)
		}
		path = abs
	}

	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseRecord(path, string(dat))
}

// parseRecord parses a record out of multi-FASTA contents. One entry is the
// gene-level sequence; entries with a [protein_id=..] qualifier or an
// NCBI-style "_cds_" token are its coding transcripts.
//
// A record with more than one gene-level sequence, or whose entries resolve
// to more than one accession, is rejected whole.
func parseRecord(path, contents string) (*Record, error) {
	lines := strings.Split(contents, "\n")

	// find the headers, then accumulate the sequences between them
	var headerIndices []int
	var headers []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			headers = append(headers, line[1:])
		}
	}

	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqJoined := strings.Join(lines[headerIndex+1:nextLine], "")
		seq := unwantedChars.ReplaceAllString(seqJoined, "")
		seqs = append(seqs, strings.ToUpper(seq))
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("failed to parse any sequence from %s", path)
	}

	rec := &Record{}
	accessions := make(map[string]bool)
	for i, header := range headers {
		fields := strings.Fields(header)
		if len(fields) == 0 {
			continue // bare ">" line
		}

		quals := make(map[string]string)
		for _, m := range qualifierRegex.FindAllStringSubmatch(header, -1) {
			quals[m[1]] = m[2]
		}

		token := fields[0]
		cdsToken := cdsTokenRegex.FindStringSubmatch(token)

		if quals["protein_id"] != "" || cdsToken != nil {
			cds := CDS{
				ProteinID: quals["protein_id"],
				Gene:      quals["gene"],
				Seq:       seqs[i],
			}
			if cdsToken != nil {
				accessions[cdsToken[1]] = true
				if cds.ProteinID == "" {
					cds.ProteinID = cdsToken[2]
				}
			}
			rec.CDSs = append(rec.CDSs, cds)

			if rec.Gene == "" {
				rec.Gene = cds.Gene
			}
			continue
		}

		// a gene-level entry
		if rec.Seq != "" {
			return nil, fmt.Errorf("more than one gene sequence in %s", path)
		}
		rec.Accession = token
		rec.Seq = seqs[i]
		accessions[token] = true
	}

	if rec.Seq == "" {
		return nil, fmt.Errorf("no gene sequence in %s", path)
	}

	if len(accessions) > 1 {
		list := make([]string, 0, len(accessions))
		for acc := range accessions {
			list = append(list, acc)
		}
		sort.Strings(list)
		return nil, fmt.Errorf("more than one accession in %s: %s", path, strings.Join(list, ", "))
	}

	return rec, nil
}
