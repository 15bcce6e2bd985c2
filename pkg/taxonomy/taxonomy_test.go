package taxonomy_test

import (
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnreads/pkg/errcode"
	"github.com/gnames/gnreads/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testReport mirrors the layout of a Kraken2 report: pre-order
// depth-first, two leading spaces per level in the name field.
const testReport = `  0.00	10	10	U	0	unclassified
100.00	100	0	R	1	root
 99.00	99	0	R1	131567	  cellular organisms
 80.00	80	0	D	2	    Bacteria
 60.00	60	0	D1	1783272	      Terrabacteria group
 50.00	50	5	P	1239	        Firmicutes
 30.00	30	30	C	91061	          Bacilli
 15.00	15	15	C	91062	          Clostridia
 19.00	19	19	D	2157	    Archaea
`

func testTree(t *testing.T, targets []int) (*taxonomy.Tree, []int) {
	t.Helper()
	tree, missing, err := taxonomy.New(strings.NewReader(testReport), targets)
	require.NoError(t, err)
	return tree, missing
}

func TestBuildTree(t *testing.T) {
	tree, missing := testTree(t, []int{0, 1, 2, 1239, 91061, 91062, 2157})
	assert.Empty(t, missing)
	assert.Equal(t, 9, tree.Len())

	t.Run("every edge increments depth by one", func(t *testing.T) {
		for i := range tree.Len() {
			node, err := tree.At(i)
			require.NoError(t, err)
			if node.Parent == -1 {
				continue
			}
			parent, err := tree.At(node.Parent)
			require.NoError(t, err)
			assert.Equal(t, parent.Depth+1, node.Depth,
				"taxon %d", node.TaxonID)
		}
	})

	t.Run("unclassified bucket is a parentless root", func(t *testing.T) {
		idx, ok := tree.Index(0)
		require.True(t, ok)
		node, err := tree.At(idx)
		require.NoError(t, err)
		assert.Equal(t, -1, node.Parent)
		assert.Equal(t, 0, node.Depth)
		assert.Empty(t, node.Children)
	})

	t.Run("dedent finds the correct parent", func(t *testing.T) {
		idx, ok := tree.Index(2157)
		require.True(t, ok)
		node, err := tree.At(idx)
		require.NoError(t, err)
		parent, err := tree.At(node.Parent)
		require.NoError(t, err)
		assert.Equal(t, 131567, parent.TaxonID)
	})
}

func TestParents(t *testing.T) {
	tree, _ := testTree(t, []int{0, 1, 1239})

	tests := []struct {
		msg     string
		taxonID int
		chain   []int
	}{
		{"root chain is itself", 1, []int{1}},
		{"unclassified chain is itself", 0, []int{0}},
		{
			"lineage from self to root",
			1239,
			[]int{1239, 1783272, 2, 131567, 1},
		},
	}

	for _, v := range tests {
		chain, err := tree.Parents(v.taxonID)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.chain, chain, v.msg)
	}

	t.Run("reversed chain is a root-to-node path", func(t *testing.T) {
		chain, err := tree.Parents(1239)
		require.NoError(t, err)
		assert.Equal(t, 1, chain[len(chain)-1])
		assert.Equal(t, 1239, chain[0])
	})

	t.Run("unrequested taxon is not indexed", func(t *testing.T) {
		_, err := tree.Parents(91061)
		require.Error(t, err)
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.TaxonNotFoundError, gnErr.Code)
	})
}

func TestSubtree(t *testing.T) {
	tree, _ := testTree(t, []int{1, 2, 1239, 91061, 91062})

	t.Run("post-order with self last", func(t *testing.T) {
		res, err := tree.Subtree(1239)
		require.NoError(t, err)
		assert.Equal(t, []int{91061, 91062, 1239}, res)
	})

	t.Run("leaf subtree is the leaf itself", func(t *testing.T) {
		res, err := tree.Subtree(91061)
		require.NoError(t, err)
		assert.Equal(t, []int{91061}, res)
	})

	t.Run("children subtrees plus self equal the subtree", func(t *testing.T) {
		whole, err := tree.Subtree(1239)
		require.NoError(t, err)

		var union []int
		for _, child := range []int{91061, 91062} {
			sub, err := tree.Subtree(child)
			require.NoError(t, err)
			union = append(union, sub...)
		}
		union = append(union, 1239)
		assert.ElementsMatch(t, whole, union)
	})

	t.Run("no duplicates in descendant set", func(t *testing.T) {
		res, err := tree.Subtree(2)
		require.NoError(t, err)
		seen := make(map[int]bool)
		for _, id := range res {
			assert.False(t, seen[id], "taxon %d repeated", id)
			seen[id] = true
		}
		assert.Len(t, res, 5)
	})
}

func TestMissingTargets(t *testing.T) {
	tree, missing := testTree(t, []int{1239, 555, 42})
	assert.Equal(t, []int{42, 555}, missing)

	_, ok := tree.Index(1239)
	assert.True(t, ok)
}

func TestMalformedReport(t *testing.T) {
	tests := []struct {
		msg    string
		report string
	}{
		{
			"wrong field count",
			"100.00\t100\t0\tR\t1\n",
		},
		{
			"non-numeric percent",
			"abc\t100\t0\tR\t1\troot\n",
		},
		{
			"non-numeric taxon ID",
			"100.00\t100\t0\tR\tone\troot\n",
		},
		{
			"non-numeric fragment count",
			"100.00\tmany\t0\tR\t1\troot\n",
		},
	}

	for _, v := range tests {
		_, _, err := taxonomy.New(strings.NewReader(v.report), nil)
		require.Error(t, err, v.msg)
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr, v.msg)
		assert.Equal(t, errcode.ReportLineParseError, gnErr.Code, v.msg)
	}

	t.Run("error names the offending line", func(t *testing.T) {
		report := "100.00\t100\t0\tR\t1\troot\nbroken line\n"
		_, _, err := taxonomy.New(strings.NewReader(report), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestParseReportLine(t *testing.T) {
	rec, err := taxonomy.ParseReportLine(
		" 50.00\t50\t5\tP\t1239\t        Firmicutes")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, rec.Percent, 0.0001)
	assert.Equal(t, 50, rec.FragmentsClade)
	assert.Equal(t, 5, rec.FragmentsTaxon)
	assert.Equal(t, "P", rec.Rank)
	assert.Equal(t, 1239, rec.TaxonID)
	assert.Equal(t, 4, rec.Depth)
	assert.Equal(t, "Firmicutes", rec.Name)
}
