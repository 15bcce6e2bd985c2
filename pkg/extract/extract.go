// Package extract defines the contract and result types for
// taxon-based read extraction.
//
// The heavy lifting (classifier output scanning, sequence streaming)
// lives in internal/ioextract; this package only describes what an
// extractor does and what comes back from a run.
package extract

import (
	"context"
)

// Extractor runs one extraction pass: it resolves the requested taxon
// IDs, builds the read membership set from the classifier output, and
// streams the matching reads from the input file(s) to the output
// file(s).
type Extractor interface {
	// Extract performs the whole run and returns its summary.
	// It makes one pass over the classification data and one pass
	// over each sequence file; nothing persists between runs.
	Extract(ctx context.Context) (*Summary, error)
}

// ReadCounts reports per-file read totals. Read1 and Read2 are only
// set for paired-end runs.
type ReadCounts struct {
	Total int  `json:"total"`
	Read1 *int `json:"read1,omitempty"`
	Read2 *int `json:"read2,omitempty"`
}

// Summary is the result of one extraction run.
type Summary struct {
	// TaxonCount is the number of resolved taxon IDs.
	TaxonCount int `json:"taxon_count"`

	// TaxonIDs is the resolved, sorted taxon ID set.
	TaxonIDs []int `json:"taxon_ids"`

	// ReadsByTaxon maps each resolved taxon ID to the number of
	// reads kept for it.
	ReadsByTaxon map[int]int `json:"reads_by_taxon"`

	// ReadsIn counts records scanned per input file.
	ReadsIn ReadCounts `json:"reads_in"`

	// ReadsOut counts records written per output file.
	ReadsOut ReadCounts `json:"reads_out"`

	// InputFormat is "single" or "paired".
	InputFormat string `json:"input_format"`
}
