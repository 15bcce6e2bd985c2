package iokraken

import (
	"log/slog"
	"os"
	"slices"

	"github.com/gnames/gn"
	"github.com/gnames/gnreads/pkg/config"
	"github.com/gnames/gnreads/pkg/taxonomy"
)

// CollectTaxa resolves the taxon IDs an extraction run selects.
//
// Without a report the requested IDs are used as given. With a report
// the taxonomy tree is built first; --parents widens every ID to its
// ancestor chain, --children to its whole subtree. Requested IDs
// absent from the report are reported with a warning; the run only
// fails when none of them can be resolved.
//
// The result is sorted and de-duplicated.
func CollectTaxa(ext config.ExtractConfig) ([]int, error) {
	if ext.ReportFile == "" {
		if ext.Parents || ext.Children {
			return nil, reportRequiredError()
		}
		slog.Debug("No report provided, using taxon IDs as given",
			"taxa", ext.TaxonIDs)
		return normalize(ext.TaxonIDs)
	}

	slog.Info("Processing classification report", "file", ext.ReportFile)
	f, err := os.Open(ext.ReportFile)
	if err != nil {
		return nil, ReportOpenError(ext.ReportFile, err)
	}
	defer f.Close()

	tree, missing, err := taxonomy.New(f, ext.TaxonIDs)
	if err != nil {
		return nil, err
	}

	for _, id := range missing {
		gn.Warn("Taxon ID <em>%d</em> is not in the report, skipping", id)
		slog.Warn("Requested taxon ID not found in report", "taxon_id", id)
	}
	if len(missing) == len(ext.TaxonIDs) && (ext.Parents || ext.Children) {
		return nil, noTaxaError()
	}

	var res []int
	switch {
	case ext.Children:
		for _, id := range ext.TaxonIDs {
			if slices.Contains(missing, id) {
				continue
			}
			sub, err := tree.Subtree(id)
			if err != nil {
				return nil, err
			}
			res = append(res, sub...)
		}
	case ext.Parents:
		for _, id := range ext.TaxonIDs {
			if slices.Contains(missing, id) {
				continue
			}
			chain, err := tree.Parents(id)
			if err != nil {
				return nil, err
			}
			res = append(res, chain...)
		}
	default:
		res = ext.TaxonIDs
	}

	return normalize(res)
}

// normalize sorts and de-duplicates the resolved taxon ID set.
func normalize(ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, noTaxaError()
	}
	res := slices.Clone(ids)
	slices.Sort(res)
	res = slices.Compact(res)
	return res, nil
}
