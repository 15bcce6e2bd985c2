/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnreads/internal/iofs"
	"github.com/gnames/gnreads/internal/iologger"
	app "github.com/gnames/gnreads/pkg"
	"github.com/gnames/gnreads/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd builds the base command. Each call returns an
// independent instance.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnreads",
		Short:   "GNreads extracts sequencing reads classified to chosen taxa",
		Long: `GNreads extracts the reads that belong to chosen taxa from
Kraken2 classifier results, streaming one or two FASTQ files without
loading them into memory.

A classification report (--report) allows widening the selection to a
taxon's lineage (--parents) or its whole subtree (--children), and
--exclude inverts the selection. Output is FASTQ by default, FASTA
with --fasta. Output compression follows the file extension unless
overridden with --compression.

Configuration precedence (highest to lowest):
  1. CLI flags (--compression-level, etc.)
  2. Environment variables (GNREADS_*)
  3. Config file (~/.config/gnreads/config.yaml)
  4. Built-in defaults

Examples:
  # All reads classified to Firmicutes (taxon 1239) and its subtree
  gnreads -i reads.fq.gz -o out.fq.gz -k kraken.out \
    -r report.txt -t 1239 --children

  # Paired-end extraction of everything NOT human (taxon 9606)
  gnreads -i r1.fq.gz -i r2.fq.gz -o out1.fq.gz -o out2.fq.gz \
    -k kraken.out -t 9606 --exclude`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnreads version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnreads")

	rootCmd.Flags().StringSliceP("input", "i", nil,
		"input FASTQ file, repeat for paired-end data")
	rootCmd.Flags().StringSliceP("output", "o", nil,
		"output file, must match the number of inputs")
	rootCmd.Flags().StringP("kraken", "k", "",
		"Kraken2 per-read output file")
	rootCmd.Flags().StringP("report", "r", "",
		"Kraken2 classification report")
	rootCmd.Flags().IntSliceP("taxid", "t", nil,
		"taxon ID to extract reads for, repeatable")
	rootCmd.Flags().Bool("parents", false,
		"include the lineage of each taxon ID (requires --report)")
	rootCmd.Flags().Bool("children", false,
		"include the subtree of each taxon ID (requires --report)")
	rootCmd.Flags().Bool("exclude", false,
		"keep reads NOT matching the taxon IDs")
	rootCmd.Flags().Bool("fasta", false,
		"write output in FASTA format (uncompressed)")
	rootCmd.Flags().StringP("compression", "O", "",
		"output compression: gz, bz2, none (default: from extension)")
	rootCmd.Flags().IntP("compression-level", "l", 0,
		"compression level, 1-9")
	rootCmd.Flags().BoolP("json", "j", false,
		"print run summary as JSON to STDOUT")
	rootCmd.Flags().BoolP("verbose", "v", false,
		"log debug details to STDERR")

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// -v shortcuts the log settings to debug on stderr.
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Update([]config.Option{
			config.OptLogLevel("debug"),
			config.OptLogDestination("stderr"),
		})
	}

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Debug("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, false)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNREADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("compression_level", "COMPRESSION_LEVEL")

	v.AutomaticEnv()
}
