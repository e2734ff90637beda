package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// row writes label and value as one aligned line. Empty values print as "-".
func row(tw *tabwriter.Writer, label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(tw, "%s:\t%s\n", label, value)
}
