// Package config provides configuration management for gnreads.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Log: level, format, destination
//   - General: compression_level
//
// Runtime-only fields (CLI flags only):
//   - Extract: inputs, outputs, kraken file, report file, taxon IDs,
//     parents/children/exclude/fasta flags, output compression, JSON
//     summary (per-invocation)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNREADS_ prefix with underscores for nesting:
//
//	GNREADS_LOG_LEVEL=info
//	GNREADS_LOG_FORMAT=json
//	GNREADS_COMPRESSION_LEVEL=2
package config

// Config represents the complete gnreads configuration.
type Config struct {
	// Extract contains per-invocation extraction settings. They come
	// from CLI flags only and never persist in config.yaml.
	Extract ExtractConfig

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// CompressionLevel is the level used when writing compressed
	// output files. Valid range is 1-9.
	CompressionLevel int `mapstructure:"compression_level" yaml:"compression_level"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ExtractConfig contains settings for one extraction run.
type ExtractConfig struct {
	// Inputs holds one (single-end) or two (paired-end) sequence file
	// paths.
	Inputs []string

	// Outputs holds the output file paths; its length must equal the
	// length of Inputs.
	Outputs []string

	// KrakenFile is the path to the per-read classifier output.
	KrakenFile string

	// ReportFile is the path to the hierarchical classification
	// report. Optional unless Parents or Children is set.
	ReportFile string

	// TaxonIDs is the list of taxon IDs selected for extraction.
	TaxonIDs []int

	// Parents widens the selection to the ancestors of each taxon ID.
	Parents bool

	// Children widens the selection to the whole subtree of each
	// taxon ID.
	Children bool

	// Exclude inverts the selection: reads whose taxon ID is NOT in
	// the resolved set are kept.
	Exclude bool

	// Fasta emits output in FASTA format (uncompressed) instead of
	// FASTQ.
	Fasta bool

	// Compression overrides the output compression format.
	// Valid values: "gz", "bz2", "none". Empty means infer from the
	// output file extension.
	Compression string

	// JSONSummary prints the run summary as JSON to STDOUT.
	JSONSummary bool
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		CompressionLevel: 2,
	}

	return res
}
