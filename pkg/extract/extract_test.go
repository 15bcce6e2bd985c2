package extract_test

import (
	"testing"

	"github.com/gnames/gnreads/internal/ioextract"
	"github.com/gnames/gnreads/pkg/config"
	"github.com/gnames/gnreads/pkg/extract"
	"github.com/stretchr/testify/assert"
)

// TestExtractorContract ensures that the ioextract implementation
// satisfies the extract.Extractor interface.
// This is a compile-time check, and the test will not run if the
// contract is broken.
func TestExtractorContract(t *testing.T) {
	// The following line is a compile-time check.
	var _ extract.Extractor = ioextract.New(config.New())

	assert.True(t, true, "ioextract must implement extract.Extractor")
}

func TestMembership(t *testing.T) {
	m := extract.NewMembership([]int{562, 1337})

	m.Add("read_1", 1337)
	m.Add("read_2", 1337)
	m.Add("read_3", 9999) // not a resolved taxon, counted nowhere

	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Contains("read_1"))
	assert.False(t, m.Contains("read_4"))
	assert.Equal(t, map[int]int{562: 0, 1337: 2}, m.ByTaxon())
}
