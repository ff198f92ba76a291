package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const tablePadding = 2

// table collects rows for the aligned, human-readable command output.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

// add appends a row. Missing trailing cells render empty.
func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) write(out io.Writer) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(t.headers) > 0 {
		fmt.Fprintln(writer, strings.Join(t.headers, "\t"))
	}
	for _, row := range t.rows {
		fmt.Fprintln(writer, strings.TrimRight(strings.Join(row, "\t"), "\t"))
	}
	return writer.Flush()
}

// tokenSetKind labels where a listed token set comes from.
func tokenSetKind(info TokenSetInfo) string {
	switch {
	case info.Builtin:
		return "builtin"
	case info.Extends != "":
		return "extends " + info.Extends
	default:
		return "file"
	}
}

func formatOnOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}
