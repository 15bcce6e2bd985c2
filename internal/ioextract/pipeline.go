package ioextract

import (
	"context"
	"io"
	"log/slog"

	"github.com/gnames/gnreads/internal/iofastx"
	"github.com/gnames/gnreads/internal/iofs"
	"github.com/gnames/gnreads/pkg/extract"
	"golang.org/x/sync/errgroup"
)

// chanBuffer bounds the records in flight between a reader and its
// writer.
const chanBuffer = 1024

type pairResult struct {
	scanned int
	written int
}

// runPairs spawns one reader and one writer goroutine per sequence
// file. Pairs share the read-only membership set but are otherwise
// independent: records flow FIFO from a reader to its own writer, and
// no ordering holds between pairs. All goroutines are joined before
// the call returns; the first observed failure cancels the siblings
// so no goroutine is left blocked on a dead channel.
func (e *ioExtractor) runPairs(
	ctx context.Context,
	membership *extract.Membership,
) ([]pairResult, error) {
	ext := e.cfg.Extract
	results := make([]pairResult, len(ext.Inputs))

	g, ctx := errgroup.WithContext(ctx)
	for i := range ext.Inputs {
		in, out := ext.Inputs[i], ext.Outputs[i]
		res := &results[i]
		ch := make(chan iofastx.Record, chanBuffer)

		g.Go(capture(func() error {
			defer close(ch)
			return e.readFile(ctx, in, membership, ch, &res.scanned)
		}))
		g.Go(capture(func() error {
			return e.writeFile(out, ch, &res.written)
		}))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// capture converts a goroutine panic into an ordinary error so the
// joining caller observes a failure instead of a process abort.
func capture(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = panicError(r)
			}
		}()
		return fn()
	}
}

// readFile streams records from one input file, forwarding those
// whose ID is in the membership set. It counts every record scanned.
func (e *ioExtractor) readFile(
	ctx context.Context,
	path string,
	membership *extract.Membership,
	ch chan<- iofastx.Record,
	scanned *int,
) error {
	r, err := iofastx.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()
	slog.Debug("Detected input compression",
		"file", path, "format", r.Format().String())

	var count int
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		count++
		if count%progressChunk == 0 {
			progressReport(count, path)
		}

		if !membership.Contains(rec.ID) {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ch <- rec:
		}
	}
	if count >= progressChunk {
		progressClear()
	}

	*scanned = count
	return nil
}

// writeFile drains the channel into one output file until the reader
// closes it. It counts every record written.
func (e *ioExtractor) writeFile(
	path string,
	ch <-chan iofastx.Record,
	written *int,
) error {
	if err := iofs.EnsureOutputDir(path); err != nil {
		return err
	}
	w, err := e.newWriter(path)
	if err != nil {
		return err
	}

	var count int
	for rec := range ch {
		if err := w.Write(rec); err != nil {
			w.Close()
			return err
		}
		count++
	}
	if err := w.Close(); err != nil {
		return err
	}

	*written = count
	return nil
}

// newWriter negotiates the output format: FASTA is always
// uncompressed; FASTQ compression comes from the explicit override
// or, failing that, from the output file extension.
func (e *ioExtractor) newWriter(path string) (iofastx.Writer, error) {
	if e.cfg.Extract.Fasta {
		return iofastx.NewFastaWriter(path)
	}

	var format iofastx.Format
	if s := e.cfg.Extract.Compression; s != "" {
		var err error
		format, err = iofastx.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		slog.Debug("Output compression overridden",
			"file", path, "format", format.String())
	} else {
		format = iofastx.InferFormat(path)
		slog.Debug("Inferred output compression",
			"file", path, "format", format.String())
	}

	return iofastx.NewFastqWriter(path, format, e.cfg.CompressionLevel)
}
