package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Analysis is a rendered result table plus a one-line summary. Commands
// build one and either print it (String) or embed it in an email (html).
type Analysis struct {
	results [][]string
	summary string
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(a.results[0])
	for _, row := range a.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	fmt.Fprintf(out, "%s\n", a.summary)
	return out.String()
}

func (a Analysis) html() string {
	out := new(bytes.Buffer)
	if len(a.results) <= 1 {
		fmt.Fprintf(out, "<div>No data found.</div>\n")
	} else {
		fmt.Fprintf(out, "<table>\n<thead>\n<tr>\n")
		for _, header := range a.results[0] {
			fmt.Fprintf(out, "<th>%s</th>", header)
		}
		fmt.Fprintf(out, "\n</tr>\n</thead>\n<tbody>\n")
		for _, row := range a.results[1:] {
			fmt.Fprintf(out, "<tr>\n")
			for _, column := range row {
				fmt.Fprintf(out, "<td>%s</td>\n", column)
			}
			fmt.Fprintf(out, "</tr>\n")
		}
		fmt.Fprintf(out, "</tbody>\n</table>\n")
	}
	fmt.Fprintf(out, "<div>%s</div>\n", a.summary)
	return out.String()
}
