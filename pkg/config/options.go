package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputs sets the input sequence file paths (one or two).
// Runtime-only field - not in ToOptions().
func OptInputs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Extract.Inputs = ss
		}
	}
}

// OptOutputs sets the output sequence file paths (one or two).
// Runtime-only field - not in ToOptions().
func OptOutputs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Extract.Outputs = ss
		}
	}
}

// OptKrakenFile sets the path to the per-read classifier output.
// Runtime-only field - not in ToOptions().
func OptKrakenFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Kraken File", s) {
			c.Extract.KrakenFile = s
		}
	}
}

// OptReportFile sets the path to the classification report.
// Runtime-only field - not in ToOptions().
func OptReportFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Extract.ReportFile = s
	}
}

// OptTaxonIDs sets the taxon IDs selected for extraction.
// Runtime-only field - not in ToOptions().
func OptTaxonIDs(ii []int) Option {
	return func(c *Config) {
		if len(ii) > 0 {
			c.Extract.TaxonIDs = ii
		}
	}
}

// OptParents widens the selection to ancestors of each taxon ID.
// Runtime-only field - not in ToOptions().
func OptParents(b bool) Option {
	return func(c *Config) {
		c.Extract.Parents = b
	}
}

// OptChildren widens the selection to the subtree of each taxon ID.
// Runtime-only field - not in ToOptions().
func OptChildren(b bool) Option {
	return func(c *Config) {
		c.Extract.Children = b
	}
}

// OptExclude inverts the selection.
// Runtime-only field - not in ToOptions().
func OptExclude(b bool) Option {
	return func(c *Config) {
		c.Extract.Exclude = b
	}
}

// OptFasta switches the output format to FASTA.
// Runtime-only field - not in ToOptions().
func OptFasta(b bool) Option {
	return func(c *Config) {
		c.Extract.Fasta = b
	}
}

// OptCompression overrides the output compression format.
// Valid values: "gz", "bz2", "none".
// Runtime-only field - not in ToOptions().
func OptCompression(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if s == "" {
			return
		}
		if isValidEnum("Extract.Compression", s) {
			c.Extract.Compression = s
		}
	}
}

// OptJSONSummary prints the run summary as JSON to STDOUT.
// Runtime-only field - not in ToOptions().
func OptJSONSummary(b bool) Option {
	return func(c *Config) {
		c.Extract.JSONSummary = b
	}
}

// OptCompressionLevel sets the level for compressed output (1-9).
func OptCompressionLevel(i int) Option {
	return func(c *Config) {
		if i < 1 || i > 9 {
			warnRange("Compression Level", i, 1, 9)
			return
		}
		c.CompressionLevel = i
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where log records go.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory used to derive config and log
// paths. Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
