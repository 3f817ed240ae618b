package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/frederic-klein/altcmp/internal/compare"
)

// Table renders records as a three column table.
type Table struct {
	records []compare.Record
	opts    Options
}

// NewTable creates a table presenter.
func NewTable(records []compare.Record, opts Options) *Table {
	return &Table{records: records, opts: opts}
}

// Present writes the title line and the table.
func (t *Table) Present(w io.Writer) error {
	title := color.New(color.FgBlue, color.Bold)
	if t.opts.Color {
		title.EnableColor()
	} else {
		title.DisableColor()
	}
	if _, err := fmt.Fprintf(w, "\n%s\n\n", title.Sprintf("%s vs %s Package Comparison", t.opts.Labels.Alt, t.opts.Labels.Second)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		fmt.Sprintf("Package (%s/%s)", t.opts.Labels.Alt, t.opts.Labels.Second),
		t.opts.Labels.Alt + " Version",
		t.opts.Labels.Second + " Version",
	})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	if t.opts.Color {
		table.SetHeaderColor(
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgGreenColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgMagentaColor},
		)
	}

	for _, r := range t.records {
		row := []string{r.Name, r.A.DisplayVersion(), r.B.DisplayVersion()}
		if t.opts.Color {
			altColor, secondColor := versionColors(r.Outcome)
			table.Rich(row, []tablewriter.Colors{{tablewriter.FgYellowColor}, altColor, secondColor})
			continue
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// versionColors marks the newer side green and the older or missing side red.
func versionColors(o compare.Outcome) (tablewriter.Colors, tablewriter.Colors) {
	green := tablewriter.Colors{tablewriter.FgGreenColor}
	red := tablewriter.Colors{tablewriter.FgRedColor}
	plain := tablewriter.Colors{tablewriter.Normal}

	switch o {
	case compare.ANewer, compare.BMissing:
		return green, red
	case compare.BNewer:
		return red, green
	case compare.AMissing:
		return red, tablewriter.Colors{tablewriter.FgMagentaColor}
	case compare.BothMissing:
		return red, red
	}
	return plain, plain
}
