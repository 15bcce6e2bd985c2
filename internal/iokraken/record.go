// Package iokraken reads Kraken2 classifier files: the per-read
// output that drives read membership, and the hierarchical report
// that feeds the taxonomy tree.
package iokraken

import (
	"strconv"
	"strings"
)

// Record is one parsed line of per-read classifier output.
type Record struct {
	// Classified is true when the read was assigned to a taxon
	// ("C" flag, as opposed to "U").
	Classified bool

	// ReadID is the read identifier as it appears in the sequence
	// file header.
	ReadID string

	// TaxonID is the taxon the read was assigned to.
	TaxonID int

	// Length and LCAMap are passed through unexamined.
	Length string
	LCAMap string
}

// ParseOutputLine parses one tab-separated classifier output line.
// A line carries exactly five fields: classification flag, read ID,
// taxon ID, length and LCA mapping annotation.
func ParseOutputLine(line string) (Record, error) {
	var rec Record
	fields := strings.Split(line, "\t")
	if len(fields) != 5 {
		return rec, fieldCountError(len(fields))
	}

	rec.Classified = fields[0] == "C"
	rec.ReadID = fields[1]

	taxonID, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return rec, fieldParseError("taxon ID", fields[2])
	}
	rec.TaxonID = taxonID
	rec.Length = fields[3]
	rec.LCAMap = fields[4]

	return rec, nil
}
