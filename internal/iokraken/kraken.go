package iokraken

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnreads/pkg/extract"
)

// ProcessOutput makes one pass over the classifier output and builds
// the membership set of read IDs to keep.
//
// With exclude false a read is kept when its taxon ID is in taxonIDs;
// with exclude true the check is inverted. Memory cost is
// proportional to the number of reads kept, not to the total number
// of reads.
//
// It returns the membership set and the total number of output lines
// scanned.
func ProcessOutput(
	path string,
	exclude bool,
	taxonIDs []int,
) (*extract.Membership, int, error) {
	slog.Info("Processing classifier output", "file", path)

	keep := make(map[int]struct{}, len(taxonIDs))
	for _, id := range taxonIDs {
		keep[id] = struct{}{}
	}
	membership := extract.NewMembership(taxonIDs)

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, OpenError(path, err)
	}
	defer f.Close()

	bar := sizeBar(f)
	defer bar.Finish()

	sc := bufio.NewScanner(bar.NewProxyReader(f))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var lineNum int
	for sc.Scan() {
		lineNum++
		rec, err := ParseOutputLine(sc.Text())
		if err != nil {
			return nil, 0, LineParseError(path, lineNum, err)
		}

		_, inSet := keep[rec.TaxonID]
		if inSet != exclude {
			membership.Add(rec.ReadID, rec.TaxonID)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, OpenError(path, err)
	}

	slog.Debug("Identified reads to save",
		"reads", membership.Len(), "scanned", lineNum)
	return membership, lineNum, nil
}

// sizeBar builds a byte-based progress bar over the classifier
// output file. The bar goes to STDERR so it never mixes with the
// JSON summary on STDOUT.
func sizeBar(f *os.File) *pb.ProgressBar {
	var size int64
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}
	bar := pb.Full.Start64(size)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	bar.SetWriter(os.Stderr)
	return bar
}
