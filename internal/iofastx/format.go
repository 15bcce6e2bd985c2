// Package iofastx provides the FASTQ/FASTA record codec used by the
// extraction pipeline, together with compression negotiation.
//
// Input compression is detected from file contents (magic bytes),
// never from the file name. Output compression is chosen from an
// explicit override or inferred from the output file extension.
package iofastx

import (
	"bufio"
	"bytes"
	"path/filepath"
)

// Format is a closed enumeration of the compression formats the
// pipeline can negotiate.
type Format int

const (
	None Format = iota
	Gzip
	Bzip2
	Zstd
	Xz
)

var magics = []struct {
	format Format
	magic  []byte
}{
	{Gzip, []byte{0x1f, 0x8b}},
	{Bzip2, []byte("BZh")},
	{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{Xz, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
}

func (f Format) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case Zstd:
		return "zstd"
	case Xz:
		return "xz"
	default:
		return "none"
	}
}

// DetectFormat sniffs the compression format from the first bytes of
// the stream. The bufio.Reader is only peeked, so decoding can start
// from the beginning of the stream afterwards.
func DetectFormat(br *bufio.Reader) Format {
	head, _ := br.Peek(6)
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.format
		}
	}
	return None
}

// ParseFormat converts a user-supplied compression name to a Format.
// Valid names are "gz", "bz2" and "none".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "gz":
		return Gzip, nil
	case "bz2":
		return Bzip2, nil
	case "none", "":
		return None, nil
	default:
		return None, unknownFormatError(s)
	}
}

// InferFormat chooses the output compression from a file extension:
// ".gz" means gzip, ".bz2" means bzip2, anything else means no
// compression.
func InferFormat(path string) Format {
	switch filepath.Ext(path) {
	case ".gz":
		return Gzip
	case ".bz2":
		return Bzip2
	default:
		return None
	}
}
