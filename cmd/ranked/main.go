// Command ranked explores ranking-theoretic inference on a set of worked
// example domains: circuit fault diagnosis, hidden Markov weather decoding,
// robot localisation, a small ranking network, and spelling correction.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
