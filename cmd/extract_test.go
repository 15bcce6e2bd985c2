package cmd

import (
	"testing"

	"github.com/gnames/gnreads/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseFlags builds a fresh root command and parses args without
// executing it, so extractOpts can be tested in isolation.
func parseFlags(t *testing.T, args ...string) ([]config.Option, error) {
	t.Helper()
	cmd := getRootCmd()
	require.NoError(t, cmd.ParseFlags(args))
	return extractOpts(cmd)
}

func TestExtractOpts_Valid(t *testing.T) {
	opts, err := parseFlags(t,
		"-i", "in.fq", "-o", "out.fq",
		"-k", "kraken.out", "-t", "1337",
	)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(opts)

	assert.Equal(t, []string{"in.fq"}, cfg.Extract.Inputs)
	assert.Equal(t, []string{"out.fq"}, cfg.Extract.Outputs)
	assert.Equal(t, "kraken.out", cfg.Extract.KrakenFile)
	assert.Equal(t, []int{1337}, cfg.Extract.TaxonIDs)
	assert.False(t, cfg.Extract.Exclude)
	// compression level comes from config defaults, not flags
	assert.Equal(t, 2, cfg.CompressionLevel)
}

func TestExtractOpts_PairedEnd(t *testing.T) {
	opts, err := parseFlags(t,
		"-i", "r1.fq", "-i", "r2.fq",
		"-o", "out1.fq", "-o", "out2.fq",
		"-k", "kraken.out", "-t", "9606", "--exclude",
	)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(opts)

	assert.Len(t, cfg.Extract.Inputs, 2)
	assert.Len(t, cfg.Extract.Outputs, 2)
	assert.True(t, cfg.Extract.Exclude)
}

func TestExtractOpts_FlagOverrides(t *testing.T) {
	opts, err := parseFlags(t,
		"-i", "in.fq", "-o", "out.fq",
		"-k", "kraken.out", "-t", "1337",
		"-O", "gz", "-l", "7", "--fasta", "--json",
	)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(opts)

	assert.Equal(t, "gz", cfg.Extract.Compression)
	assert.Equal(t, 7, cfg.CompressionLevel)
	assert.True(t, cfg.Extract.Fasta)
	assert.True(t, cfg.Extract.JSONSummary)
}

func TestExtractOpts_Invalid(t *testing.T) {
	tests := []struct {
		msg  string
		args []string
	}{
		{
			"no inputs",
			[]string{"-o", "out.fq", "-k", "k.out", "-t", "1"},
		},
		{
			"three inputs",
			[]string{
				"-i", "a.fq", "-i", "b.fq", "-i", "c.fq",
				"-o", "a", "-o", "b", "-o", "c",
				"-k", "k.out", "-t", "1",
			},
		},
		{
			"output count mismatch",
			[]string{
				"-i", "a.fq", "-i", "b.fq", "-o", "out.fq",
				"-k", "k.out", "-t", "1",
			},
		},
		{
			"missing kraken file",
			[]string{"-i", "a.fq", "-o", "out.fq", "-t", "1"},
		},
		{
			"missing taxon IDs",
			[]string{"-i", "a.fq", "-o", "out.fq", "-k", "k.out"},
		},
		{
			"parents and children together",
			[]string{
				"-i", "a.fq", "-o", "out.fq", "-k", "k.out",
				"-t", "1", "-r", "rep.txt",
				"--parents", "--children",
			},
		},
		{
			"parents without report",
			[]string{
				"-i", "a.fq", "-o", "out.fq", "-k", "k.out",
				"-t", "1", "--parents",
			},
		},
		{
			"children without report",
			[]string{
				"-i", "a.fq", "-o", "out.fq", "-k", "k.out",
				"-t", "1", "--children",
			},
		},
		{
			"compression level too low",
			[]string{
				"-i", "a.fq", "-o", "out.fq", "-k", "k.out",
				"-t", "1", "-l", "0",
			},
		},
		{
			"compression level too high",
			[]string{
				"-i", "a.fq", "-o", "out.fq", "-k", "k.out",
				"-t", "1", "-l", "10",
			},
		},
	}

	for _, v := range tests {
		_, err := parseFlags(t, v.args...)
		assert.Error(t, err, v.msg)
	}
}
