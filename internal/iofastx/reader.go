package iofastx

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// Record is one FASTQ read. Seq and Qual are owned by the record and
// survive subsequent Next calls.
type Record struct {
	// ID is the read identifier: the first whitespace-separated token
	// of the header line, without the leading '@'.
	ID string

	// Desc is the remainder of the header line, if any.
	Desc string

	Seq  []byte
	Qual []byte
}

// Reader streams FASTQ records from a possibly compressed file.
type Reader struct {
	path   string
	format Format
	br     *bufio.Reader
	close  []func() error
	line   int
}

// OpenReader opens a FASTQ file, detects its compression from the
// file contents and prepares record decoding.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, InputOpenError(path, err)
	}

	r := &Reader{path: path, close: []func() error{f.Close}}

	fileBuf := bufio.NewReader(f)
	r.format = DetectFormat(fileBuf)

	var stream io.Reader
	switch r.format {
	case Gzip:
		gz, err := gzip.NewReader(fileBuf)
		if err != nil {
			f.Close()
			return nil, InputOpenError(path, err)
		}
		r.close = append([]func() error{gz.Close}, r.close...)
		stream = gz
	case Bzip2:
		stream = bzip2.NewReader(fileBuf)
	case Zstd:
		dec, err := zstd.NewReader(fileBuf)
		if err != nil {
			f.Close()
			return nil, InputOpenError(path, err)
		}
		r.close = append([]func() error{func() error {
			dec.Close()
			return nil
		}}, r.close...)
		stream = dec
	case Xz:
		xzr, err := xz.NewReader(fileBuf)
		if err != nil {
			f.Close()
			return nil, InputOpenError(path, err)
		}
		stream = xzr
	default:
		stream = fileBuf
	}

	r.br = bufio.NewReader(stream)
	return r, nil
}

// Format returns the detected compression format of the input.
func (r *Reader) Format() Format {
	return r.format
}

// Next decodes the next record. It returns io.EOF once the input is
// exhausted.
func (r *Reader) Next() (Record, error) {
	var rec Record

	header, err := r.readLine()
	if err != nil {
		if err == io.EOF {
			return rec, io.EOF
		}
		return rec, InputDecodeError(r.path, r.line, err)
	}
	if len(header) == 0 || header[0] != '@' {
		return rec, InputDecodeError(r.path, r.line,
			malformedError("record header must start with '@'"))
	}

	id, desc, _ := bytes.Cut(header[1:], []byte(" "))
	rec.ID = string(id)
	rec.Desc = string(desc)

	seq, err := r.readLine()
	if err != nil {
		return rec, InputDecodeError(r.path, r.line,
			malformedError("truncated record: missing sequence"))
	}
	rec.Seq = append([]byte(nil), seq...)

	plus, err := r.readLine()
	if err != nil || len(plus) == 0 || plus[0] != '+' {
		return rec, InputDecodeError(r.path, r.line,
			malformedError("record separator must start with '+'"))
	}

	qual, err := r.readLine()
	if err != nil {
		return rec, InputDecodeError(r.path, r.line,
			malformedError("truncated record: missing quality"))
	}
	if len(qual) != len(rec.Seq) {
		return rec, InputDecodeError(r.path, r.line,
			malformedError("quality length differs from sequence length"))
	}
	rec.Qual = append([]byte(nil), qual...)

	return rec, nil
}

// readLine returns the next line without its trailing newline.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.br.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, err
	}
	r.line++
	line = bytes.TrimRight(line, "\r\n")
	return line, nil
}

// Close releases the decompressor (if any) and the underlying file.
func (r *Reader) Close() error {
	var err error
	for _, fn := range r.close {
		if cerr := fn(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
