// Package main is the entry point for the molden2abins CLI tool, which reads
// vibrational data from Molden files and writes the JSON document consumed by
// the Abins/Abins2D algorithms in Mantid.
package main

import "github.com/ajjackson/molden-to-abins/cmd"

func main() {
	cmd.Execute()
}
