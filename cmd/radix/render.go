package main

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/bft-labs/radix/pkg/radix"
)

var historyHeader = []string{"#", "INPUT", "", "OUTPUT", "BASES", "TIME", "DATE"}

// renderHistory writes h as an aligned table, or a placeholder when empty.
func renderHistory(w io.Writer, h radix.History) {
	if len(h) == 0 {
		fmt.Fprintln(w, "No conversions yet")
		return
	}

	rows := make([][]string, 0, len(h)+1)
	rows = append(rows, historyHeader)
	for i, rec := range h {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			rec.Input,
			"→",
			rec.Output,
			fmt.Sprintf("%s → %s", rec.FromBase.Name(), rec.ToBase.Name()),
			rec.Timestamp,
			rec.Date,
		})
	}

	widths := make([]int, len(historyHeader))
	for _, row := range rows {
		for i, cell := range row {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for _, row := range rows {
		line := ""
		for i, cell := range row {
			if i > 0 {
				line += "  "
			}
			if i == len(row)-1 {
				line += cell
				continue
			}
			line += runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, line)
	}
}
