package taxonomy

import (
	"strconv"
	"strings"
)

// ReportRecord is one parsed line of a classification report.
type ReportRecord struct {
	// Percent of fragments covered by the clade rooted at this taxon.
	Percent float64

	// FragmentsClade is the number of fragments covered by the clade.
	FragmentsClade int

	// FragmentsTaxon is the number of fragments assigned directly to
	// the taxon.
	FragmentsTaxon int

	// Rank is the rank code (U, R, D, K, P, C, O, F, G, S ...).
	Rank string

	// TaxonID is the NCBI taxonomy ID.
	TaxonID int

	// Depth is derived from the indentation of Name: two leading
	// spaces per level.
	Depth int

	// Name is the scientific name with its indentation stripped.
	Name string
}

// ParseReportLine parses one tab-separated report line. A line carries
// exactly six fields: percent, clade fragment count, taxon fragment
// count, rank code, taxon ID and an indented name.
func ParseReportLine(line string) (ReportRecord, error) {
	var rec ReportRecord
	fields := strings.Split(line, "\t")
	if len(fields) != 6 {
		return rec, fieldCountError(len(fields))
	}

	var err error
	rec.Percent, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return rec, fieldParseError("percent", fields[0])
	}
	rec.FragmentsClade, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return rec, fieldParseError("fragments clade", fields[1])
	}
	rec.FragmentsTaxon, err = strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return rec, fieldParseError("fragments taxon", fields[2])
	}
	rec.Rank = fields[3]
	rec.TaxonID, err = strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return rec, fieldParseError("taxon ID", fields[4])
	}

	name := fields[5]
	var spaces int
	for spaces < len(name) && name[spaces] == ' ' {
		spaces++
	}
	rec.Depth = spaces / 2
	rec.Name = name[spaces:]

	return rec, nil
}
