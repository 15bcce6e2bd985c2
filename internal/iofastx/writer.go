package iofastx

import (
	"bufio"
	"os"

	bzip2 "github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// Writer serializes records to an output file. FASTQ and FASTA
// writers both satisfy it.
type Writer interface {
	Write(rec Record) error
	Close() error
}

// FastqWriter writes records in FASTQ syntax, optionally compressed.
type FastqWriter struct {
	path  string
	f     *os.File
	buf   *bufio.Writer
	out   *bufio.Writer
	close []func() error
}

// NewFastqWriter creates the output file and sets up the compression
// codec. Level applies to codecs that support one (1-9).
func NewFastqWriter(path string, format Format, level int) (*FastqWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, OutputCreateError(path, err)
	}

	w := &FastqWriter{path: path, f: f}
	w.buf = bufio.NewWriter(f)

	switch format {
	case Gzip:
		gz, err := gzip.NewWriterLevel(w.buf, level)
		if err != nil {
			f.Close()
			return nil, OutputCreateError(path, err)
		}
		w.out = bufio.NewWriter(gz)
		w.close = []func() error{gz.Close}
	case Bzip2:
		bz, err := bzip2.NewWriter(w.buf, &bzip2.WriterConfig{Level: level})
		if err != nil {
			f.Close()
			return nil, OutputCreateError(path, err)
		}
		w.out = bufio.NewWriter(bz)
		w.close = []func() error{bz.Close}
	case Zstd:
		enc, err := zstd.NewWriter(w.buf,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		if err != nil {
			f.Close()
			return nil, OutputCreateError(path, err)
		}
		w.out = bufio.NewWriter(enc)
		w.close = []func() error{enc.Close}
	case Xz:
		xzw, err := xz.NewWriter(w.buf)
		if err != nil {
			f.Close()
			return nil, OutputCreateError(path, err)
		}
		w.out = bufio.NewWriter(xzw)
		w.close = []func() error{xzw.Close}
	default:
		w.out = w.buf
	}

	return w, nil
}

// Write serializes one record in four-line FASTQ syntax.
func (w *FastqWriter) Write(rec Record) error {
	if err := w.writeHeader('@', rec); err != nil {
		return err
	}
	for _, part := range [][]byte{rec.Seq, []byte("\n+\n"), rec.Qual} {
		if _, err := w.out.Write(part); err != nil {
			return OutputEncodeError(w.path, err)
		}
	}
	if err := w.out.WriteByte('\n'); err != nil {
		return OutputEncodeError(w.path, err)
	}
	return nil
}

func (w *FastqWriter) writeHeader(prefix byte, rec Record) error {
	if err := w.out.WriteByte(prefix); err != nil {
		return OutputEncodeError(w.path, err)
	}
	if _, err := w.out.WriteString(rec.ID); err != nil {
		return OutputEncodeError(w.path, err)
	}
	if rec.Desc != "" {
		if err := w.out.WriteByte(' '); err != nil {
			return OutputEncodeError(w.path, err)
		}
		if _, err := w.out.WriteString(rec.Desc); err != nil {
			return OutputEncodeError(w.path, err)
		}
	}
	if err := w.out.WriteByte('\n'); err != nil {
		return OutputEncodeError(w.path, err)
	}
	return nil
}

// Close flushes buffers, finalizes the compressor and closes the file.
func (w *FastqWriter) Close() error {
	var err error
	if ferr := w.out.Flush(); ferr != nil {
		err = OutputEncodeError(w.path, ferr)
	}
	for _, fn := range w.close {
		if cerr := fn(); cerr != nil && err == nil {
			err = OutputEncodeError(w.path, cerr)
		}
	}
	if ferr := w.buf.Flush(); ferr != nil && err == nil {
		err = OutputEncodeError(w.path, ferr)
	}
	if cerr := w.f.Close(); cerr != nil && err == nil {
		err = OutputEncodeError(w.path, cerr)
	}
	return err
}

// FastaWriter writes records as uncompressed FASTA: identifier and
// sequence only, quality discarded.
type FastaWriter struct {
	path string
	f    *os.File
	out  *bufio.Writer
}

// NewFastaWriter creates the output file for FASTA serialization.
func NewFastaWriter(path string) (*FastaWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, OutputCreateError(path, err)
	}
	return &FastaWriter{path: path, f: f, out: bufio.NewWriter(f)}, nil
}

// Write serializes one record in two-line FASTA syntax.
func (w *FastaWriter) Write(rec Record) error {
	if err := w.out.WriteByte('>'); err != nil {
		return OutputEncodeError(w.path, err)
	}
	if _, err := w.out.WriteString(rec.ID); err != nil {
		return OutputEncodeError(w.path, err)
	}
	if err := w.out.WriteByte('\n'); err != nil {
		return OutputEncodeError(w.path, err)
	}
	if _, err := w.out.Write(rec.Seq); err != nil {
		return OutputEncodeError(w.path, err)
	}
	if err := w.out.WriteByte('\n'); err != nil {
		return OutputEncodeError(w.path, err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (w *FastaWriter) Close() error {
	var err error
	if ferr := w.out.Flush(); ferr != nil {
		err = OutputEncodeError(w.path, ferr)
	}
	if cerr := w.f.Close(); cerr != nil && err == nil {
		err = OutputEncodeError(w.path, cerr)
	}
	return err
}
