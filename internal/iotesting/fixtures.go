// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnreads/pkg/config"
	"github.com/stretchr/testify/require"
)

// Fastq1 and Fastq2 form a small paired-end dataset. Read IDs match
// across the two files, as mates do in real sequencer output.
const Fastq1 = `@read1
ACGTACGT
+
IIIIIIII
@read2
TTTTTTTT
+
IIIIIIII
`

const Fastq2 = `@read1
CCCCCCCC
+
IIIIIIII
@read2
GGGGGGGG
+
IIIIIIII
`

// Kraken classifies read1 to taxon 1337 and read2 to taxon 2.
const Kraken = `C	read1	1337	8	1337:8
C	read2	2	8	2:8
`

// WriteFile drops content into dir under the given name and returns
// the resulting path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Config returns a configuration pointing at a fresh temporary
// directory with the Kraken fixture already written. Logs go to
// stderr so tests never touch the user's home directory.
func Config(t *testing.T, opts ...config.Option) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptKrakenFile(WriteFile(t, dir, "kraken.out", Kraken)),
		config.OptTaxonIDs([]int{1337}),
		config.OptLogDestination("stderr"),
	})
	cfg.Update(opts)
	return cfg, dir
}
