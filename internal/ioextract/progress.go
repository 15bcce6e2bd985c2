package ioextract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// progressChunk is how many scanned records pass between progress
// updates.
const progressChunk = 5_000_000

// progressReport logs reader progress to stderr with humanized
// numbers. It clears the line before writing to avoid leftover
// characters.
func progressReport(recNum int, file string) {
	str := fmt.Sprintf("Scanned %s reads from %s",
		humanize.Comma(int64(recNum)), filepath.Base(file))
	fmt.Fprintf(os.Stderr, "\r%s", strings.Repeat(" ", 80))
	fmt.Fprintf(os.Stderr, "\r%s", str)
}

func progressClear() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", 80))
}
