package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

var usageTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// WriteUsage writes the usage guide, including a table of every option.
func WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "%s - look up words in the dictionary of your choice\n\n", usageTitleStyle.Render("define"))
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "    define <word> [OPTIONS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, optionsTable())
}

func optionsTable() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	tw.Style().Options = table.OptionsNoBordersAndSeparators
	tw.Style().Box.PaddingLeft = "   "

	for _, o := range options {
		tw.AppendRow(table.Row{strings.Join(o.flagNames(), " "), o.arg, o.help})
	}

	return tw.Render()
}
