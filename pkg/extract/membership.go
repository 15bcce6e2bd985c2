package extract

// Membership is the set of read identifiers to keep during
// extraction, with a companion per-taxon count of kept reads.
//
// It is built once from the classifier output and must be treated as
// read-only afterwards: the pipeline shares one Membership across all
// of its reader goroutines without locking.
type Membership struct {
	reads   map[string]struct{}
	byTaxon map[int]int
}

// NewMembership creates an empty membership set counting reads for
// the given resolved taxon IDs.
func NewMembership(taxonIDs []int) *Membership {
	m := &Membership{
		reads:   make(map[string]struct{}),
		byTaxon: make(map[int]int, len(taxonIDs)),
	}
	for _, id := range taxonIDs {
		m.byTaxon[id] = 0
	}
	return m
}

// Add inserts a read identifier and credits the taxon it was
// classified to. Only taxa from the resolved set are counted.
func (m *Membership) Add(readID string, taxonID int) {
	m.reads[readID] = struct{}{}
	if _, ok := m.byTaxon[taxonID]; ok {
		m.byTaxon[taxonID]++
	}
}

// Contains reports whether a read identifier is in the set.
func (m *Membership) Contains(readID string) bool {
	_, ok := m.reads[readID]
	return ok
}

// Len returns the number of read identifiers in the set.
func (m *Membership) Len() int {
	return len(m.reads)
}

// ByTaxon returns the per-taxon kept-read counts.
func (m *Membership) ByTaxon() map[int]int {
	return m.byTaxon
}
