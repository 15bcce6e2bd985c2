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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnreads/internal/ioextract"
	"github.com/gnames/gnreads/pkg/config"
	"github.com/gnames/gnreads/pkg/extract"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := extractOpts(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg.Update(opts)

	start := time.Now()
	summary, err := ioextract.New(cfg).Extract(context.Background())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	reportSummary(summary, time.Since(start))

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := gnfmt.GNjson{Pretty: true}
		out, err := enc.Encode(summary)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		fmt.Println(string(out))
	}

	return nil
}

// extractOpts converts command line flags into config options,
// rejecting flag combinations the extraction cannot honor.
func extractOpts(cmd *cobra.Command) ([]config.Option, error) {
	var res []config.Option

	inputs, _ := cmd.Flags().GetStringSlice("input")
	outputs, _ := cmd.Flags().GetStringSlice("output")
	kraken, _ := cmd.Flags().GetString("kraken")
	report, _ := cmd.Flags().GetString("report")
	taxonIDs, _ := cmd.Flags().GetIntSlice("taxid")
	parents, _ := cmd.Flags().GetBool("parents")
	children, _ := cmd.Flags().GetBool("children")
	exclude, _ := cmd.Flags().GetBool("exclude")
	fasta, _ := cmd.Flags().GetBool("fasta")
	compression, _ := cmd.Flags().GetString("compression")
	level, _ := cmd.Flags().GetInt("compression-level")

	if len(inputs) < 1 || len(inputs) > 2 {
		return nil, badFlags(
			"Provide one input file, or two for paired-end data",
			"got %d input files", len(inputs),
		)
	}
	if len(outputs) != len(inputs) {
		return nil, badFlags(
			"The number of output files must match the number of inputs",
			"got %d inputs and %d outputs", len(inputs), len(outputs),
		)
	}
	if kraken == "" {
		return nil, badFlags(
			"A Kraken2 output file is required (--kraken)",
			"missing --kraken flag",
		)
	}
	if len(taxonIDs) == 0 {
		return nil, badFlags(
			"At least one taxon ID is required (--taxid)",
			"missing --taxid flag",
		)
	}
	if parents && children {
		return nil, badFlags(
			"--parents and --children cannot be combined",
			"invalid flag combination",
		)
	}
	if (parents || children) && report == "" {
		return nil, badFlags(
			"--parents and --children require a classification report (--report)",
			"missing --report flag",
		)
	}
	if cmd.Flags().Changed("compression-level") && (level < 1 || level > 9) {
		return nil, badFlags(
			"Compression level must be between 1 and 9",
			"got compression level %d", level,
		)
	}

	res = append(res,
		config.OptInputs(inputs),
		config.OptOutputs(outputs),
		config.OptKrakenFile(kraken),
		config.OptReportFile(report),
		config.OptTaxonIDs(taxonIDs),
		config.OptParents(parents),
		config.OptChildren(children),
		config.OptExclude(exclude),
		config.OptFasta(fasta),
	)
	if cmd.Flags().Changed("compression") {
		res = append(res, config.OptCompression(compression))
	}
	if cmd.Flags().Changed("compression-level") {
		res = append(res, config.OptCompressionLevel(level))
	}
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		res = append(res, config.OptJSONSummary(true))
	}

	return res, nil
}

func badFlags(msg, format string, a ...any) error {
	gn.Warn("<warn>" + msg + "</warn>")
	err := fmt.Errorf(format, a...)
	slog.Error("invalid flag usage", "error", err)
	return err
}

func reportSummary(s *extract.Summary, dur time.Duration) {
	gn.Info(
		"Kept <em>%d</em> of <em>%d</em> reads for <em>%d</em> taxa in %s",
		s.ReadsOut.Total, s.ReadsIn.Total, s.TaxonCount,
		gnfmt.TimeString(dur.Seconds()),
	)
	slog.Info("Extraction finished",
		"reads_in", s.ReadsIn.Total,
		"reads_out", s.ReadsOut.Total,
		"taxa", s.TaxonCount,
		"input_format", s.InputFormat,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
}
