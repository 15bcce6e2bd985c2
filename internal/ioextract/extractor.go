// Package ioextract implements the extract.Extractor contract: it
// resolves the requested taxon IDs, builds the read membership set
// from the classifier output, and streams matching reads from the
// input sequence file(s) to the output file(s).
package ioextract

import (
	"context"
	"log/slog"

	"github.com/gnames/gnreads/internal/iokraken"
	"github.com/gnames/gnreads/pkg/config"
	"github.com/gnames/gnreads/pkg/extract"
)

type ioExtractor struct {
	cfg *config.Config
}

// New creates an Extractor for one run described by the config.
func New(cfg *config.Config) extract.Extractor {
	return &ioExtractor{cfg: cfg}
}

// Extract performs the whole run: one pass over the classification
// data, then one concurrent pass over each sequence file.
func (e *ioExtractor) Extract(ctx context.Context) (*extract.Summary, error) {
	ext := e.cfg.Extract

	taxa, err := iokraken.CollectTaxa(ext)
	if err != nil {
		return nil, err
	}
	slog.Info("Resolved taxon IDs for extraction", "count", len(taxa))

	membership, records, err := iokraken.ProcessOutput(
		ext.KrakenFile, ext.Exclude, taxa,
	)
	if err != nil {
		return nil, err
	}
	slog.Info("Built read membership set",
		"classifier_records", records, "reads", membership.Len())

	results, err := e.runPairs(ctx, membership)
	if err != nil {
		return nil, err
	}

	summary := &extract.Summary{
		TaxonCount:   len(taxa),
		TaxonIDs:     taxa,
		ReadsByTaxon: membership.ByTaxon(),
	}

	if len(results) == 2 {
		summary.InputFormat = "paired"
		summary.ReadsIn = pairedCounts(results[0].scanned, results[1].scanned)
		summary.ReadsOut = pairedCounts(results[0].written, results[1].written)
	} else {
		summary.InputFormat = "single"
		summary.ReadsIn = extract.ReadCounts{Total: results[0].scanned}
		summary.ReadsOut = extract.ReadCounts{Total: results[0].written}
	}

	return summary, nil
}

func pairedCounts(first, second int) extract.ReadCounts {
	return extract.ReadCounts{
		Total: first + second,
		Read1: &first,
		Read2: &second,
	}
}
