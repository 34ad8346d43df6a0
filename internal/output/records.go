package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/contrastx/internal/termcolor"
	"github.com/phyten/contrastx/internal/textutil"
)

var tsvReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// WriteRecords renders plain rows in one of the tabular formats (table, tsv,
// csv, md). JSON formats are left to callers since they encode typed values.
// rightAlign names header columns that are right aligned in tables.
func WriteRecords(w io.Writer, format string, headers []string, rows [][]string, color bool, rightAlign ...string) error {
	switch format {
	case "table":
		return writeTableRows(w, headers, rows, color, rightAlign)
	case "tsv":
		return writeTSVRows(w, headers, rows)
	case "csv":
		return writeCSVRows(w, headers, rows)
	case "md":
		return writeMarkdownRows(w, headers, rows, rightAlign)
	default:
		return fmt.Errorf("unsupported tabular format: %s", format)
	}
}

func writeCSVRows(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTSVRows(w io.Writer, headers []string, rows [][]string) error {
	if _, err := io.WriteString(w, strings.Join(headers, "\t")+"\n"); err != nil {
		return err
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = tsvReplacer.Replace(v)
		}
		if _, err := io.WriteString(w, strings.Join(cells, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRows(w io.Writer, headers []string, rows [][]string, rightAlign []string) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i, h := range headers {
		sep[i] = "---"
		if contains(rightAlign, h) {
			sep[i] = "---:"
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = escapeMarkdownCell(v)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func writeTableRows(w io.Writer, headers []string, rows [][]string, color bool, rightAlign []string) error {
	cols := make([]textutil.Column, len(headers))
	for i, h := range headers {
		cols[i] = textutil.Column{Header: h}
		if contains(rightAlign, h) {
			cols[i].Align = textutil.AlignRight
		}
	}
	grid := textutil.NewGrid(cols...)
	for _, row := range rows {
		grid.Append(row...)
	}
	return grid.Render(w, func(s string) string {
		return termcolor.Apply(termcolor.HeaderStyle(), s, color)
	})
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return strings.ReplaceAll(s, "|", "\\|")
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
