// Package main provides the gnreads CLI application.
// gnreads extracts sequencing reads classified to chosen taxa
// from Kraken2 results.
package main

import "github.com/gnames/gnreads/cmd"

func main() {
	cmd.Execute()
}
