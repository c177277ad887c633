package menu

import (
	"fmt"
	"io"
	"strings"

	"rescue-animals/internal/domain/animals"
)

const tableHeader = "Name | Type/Species | Training Status | Reserved | Acquisition Country | In Service Country"

func printTable(w io.Writer, items []animals.Animal) {
	if len(items) == 0 {
		_, _ = fmt.Fprint(w, "\nNo animals to display.\n\n")
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s\n%s\n", tableHeader, strings.Repeat("-", 95))
	for _, a := range items {
		_, _ = fmt.Fprintf(w, "%s | %s | %s | %t | %s | %s\n",
			a.Name,
			a.TypeOrSpecies(),
			a.TrainingStatus,
			a.Reserved,
			a.AcquisitionCountry,
			a.InServiceCountry,
		)
	}
	_, _ = fmt.Fprintln(w)
}
