package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List available personas",
	Run: func(cmd *cobra.Command, args []string) {
		rows := [][]string{{"ID", "NAME", "DESCRIPTION"}}
		for _, p := range persona.All() {
			rows = append(rows, []string{string(p.ID), p.Name, p.Description})
		}
		renderTable(cmd.OutOrStdout(), rows)
	},
}

func init() {
	rootCmd.AddCommand(personasCmd)
}

// renderTable pads every column but the last to its widest cell, measured in
// display width.
func renderTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		var sb strings.Builder
		for i, cell := range row {
			sb.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)+2))
		}
		fmt.Fprintln(w, sb.String())
	}
}
