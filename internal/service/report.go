package service

import (
	"fmt"
	"io"

	"entropylab/internal/model"
)

// PrintReport writes the entropy and redundancy blocks with the given number of decimals.
func PrintReport(w io.Writer, r model.Report, precision int) {
	if precision < 0 {
		precision = 0
	}
	fmt.Fprintf(w, "\n--- Entropy ---\n")
	fmt.Fprintf(w, "H0 (with spaces): %.*f\n", precision, r.MaxEntropy)
	fmt.Fprintf(w, "H0 (without spaces): %.*f\n", precision, r.MaxEntropyNoSep)
	for _, e := range r.Estimates {
		fmt.Fprintf(w, "%s: %.*f\n", e.Label, precision, e.Entropy)
	}

	fmt.Fprintf(w, "\n--- Redundancy ---\n")
	for _, e := range r.Estimates {
		fmt.Fprintf(w, "R for %s: %.*f\n", e.Label, precision, e.Redundancy)
	}
}
