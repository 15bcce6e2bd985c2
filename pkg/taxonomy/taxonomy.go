// Package taxonomy builds an in-memory taxonomic tree from a Kraken2
// classification report and provides lineage traversals over it.
//
// The report encodes the hierarchy through indentation: every two
// leading spaces of the taxon name field add one level of depth. The
// tree is reconstructed in a single forward pass and is immutable
// afterwards.
//
// Nodes live in a flat arena ([]Node) and reference each other by
// index. Only taxon IDs requested by the caller are recorded in the
// ID lookup map, so lookups stay O(1) without indexing every taxon of
// a large report.
package taxonomy

import (
	"bufio"
	"io"
	"slices"
)

// Node is one taxon of the classification report.
type Node struct {
	// TaxonID is the integer identifier from the report.
	TaxonID int

	// Depth is the indentation level of the taxon name field.
	Depth int

	// Parent is the arena index of the owning ancestor, or -1 for
	// roots.
	Parent int

	// Children holds arena indices of child nodes in report order.
	Children []int
}

// Tree is an immutable forest of taxonomy nodes built from a
// classification report.
type Tree struct {
	nodes []Node
	index map[int]int
}

// New reads a classification report and builds the taxonomy tree.
// Only taxon IDs listed in targets are recorded in the lookup map.
// It returns the tree and the subset of targets that never appeared
// in the report. Callers decide whether missing IDs are fatal.
func New(r io.Reader, targets []int) (*Tree, []int, error) {
	t := &Tree{index: make(map[int]int)}
	wanted := make(map[int]struct{}, len(targets))
	for _, id := range targets {
		wanted[id] = struct{}{}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	prev := -1
	var lineNum int
	for sc.Scan() {
		lineNum++
		rec, err := ParseReportLine(sc.Text())
		if err != nil {
			return nil, nil, lineError(lineNum, err)
		}

		var node Node
		switch {
		case rec.TaxonID == 0:
			// The unclassified bucket is a depth-0 root and never
			// takes part in the sibling back-chase.
			node = Node{TaxonID: 0, Depth: 0, Parent: -1}
			t.record(wanted, 0, len(t.nodes))
			t.nodes = append(t.nodes, node)
			continue
		case rec.TaxonID == 1:
			node = Node{TaxonID: 1, Depth: rec.Depth, Parent: -1}
		default:
			// Walk back up until the previous chain offers a parent
			// exactly one level above the current line.
			for prev != -1 && rec.Depth != t.nodes[prev].Depth+1 {
				prev = t.nodes[prev].Parent
			}
			node = Node{TaxonID: rec.TaxonID, Depth: rec.Depth, Parent: prev}
		}

		idx := len(t.nodes)
		t.nodes = append(t.nodes, node)
		if node.Parent != -1 {
			t.nodes[node.Parent].Children =
				append(t.nodes[node.Parent].Children, idx)
		}
		prev = idx
		t.record(wanted, rec.TaxonID, idx)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, readError(err)
	}

	var missing []int
	for _, id := range targets {
		if _, ok := t.index[id]; !ok {
			missing = append(missing, id)
		}
	}
	slices.Sort(missing)

	return t, missing, nil
}

// record stores the arena index of a requested taxon ID at its first
// occurrence.
func (t *Tree) record(wanted map[int]struct{}, taxonID, idx int) {
	if _, ok := wanted[taxonID]; !ok {
		return
	}
	if _, ok := t.index[taxonID]; !ok {
		t.index[taxonID] = idx
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// At returns the node at the given arena index.
func (t *Tree) At(idx int) (Node, error) {
	if idx < 0 || idx >= len(t.nodes) {
		return Node{}, corruptError(idx, len(t.nodes))
	}
	return t.nodes[idx], nil
}

// Index returns the arena index of a requested taxon ID.
func (t *Tree) Index(taxonID int) (int, bool) {
	idx, ok := t.index[taxonID]
	return idx, ok
}

// Parents returns the ancestor chain of a taxon as
// [self, parent, grandparent, ..., root]. The taxon ID must have been
// requested when the tree was built.
func (t *Tree) Parents(taxonID int) ([]int, error) {
	idx, ok := t.index[taxonID]
	if !ok {
		return nil, notFoundError(taxonID)
	}

	chain := []int{taxonID}
	cur := idx
	for t.nodes[cur].Parent != -1 {
		parent := t.nodes[cur].Parent
		if parent < 0 || parent >= len(t.nodes) {
			return nil, corruptError(parent, len(t.nodes))
		}
		chain = append(chain, t.nodes[parent].TaxonID)
		cur = parent
	}
	return chain, nil
}

// Children appends the taxon IDs of the subtree rooted at the given
// arena index to result. The traversal is post-order with children in
// report order, so the start node's own taxon ID comes last.
func (t *Tree) Children(start int, result *[]int) error {
	if start < 0 || start >= len(t.nodes) {
		return corruptError(start, len(t.nodes))
	}
	for _, child := range t.nodes[start].Children {
		if child < 0 || child >= len(t.nodes) {
			return corruptError(child, len(t.nodes))
		}
		if err := t.Children(child, result); err != nil {
			return err
		}
	}
	*result = append(*result, t.nodes[start].TaxonID)
	return nil
}

// Subtree returns the descendant-inclusive set of taxon IDs for a
// requested taxon ID, the taxon itself last.
func (t *Tree) Subtree(taxonID int) ([]int, error) {
	idx, ok := t.index[taxonID]
	if !ok {
		return nil, notFoundError(taxonID)
	}
	var res []int
	if err := t.Children(idx, &res); err != nil {
		return nil, err
	}
	return res, nil
}
