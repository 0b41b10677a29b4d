package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/idilsaglam/citas/internal/model"
	"github.com/idilsaglam/citas/internal/render"
	"github.com/idilsaglam/citas/internal/ui"
)

var columnWidths = []int{3, 12, 14, 11, 10, 10, 17, 20, 8}

// tableView is the record table. It implements form.View.
type tableView struct {
	table table.Model
	rows  []render.Row
	loc   *time.Location
}

func newTableView(loc *time.Location) *tableView {
	cols := make([]table.Column, len(render.Headers))
	for i, h := range render.Headers {
		cols[i] = table.Column{Title: h, Width: columnWidths[i]}
	}
	th := ui.Current()
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(th.Border).
		BorderForeground(th.BorderColor).
		BorderBottom(true).
		Bold(true)
	styles.Selected = th.Selected

	t := table.New(
		table.WithColumns(cols),
		table.WithHeight(8),
		table.WithStyles(styles),
	)
	return &tableView{table: t, loc: loc}
}

func (v *tableView) Render(records []model.Appointment) {
	v.rows = render.Rows(records, v.loc)
	out := make([]table.Row, len(v.rows))
	for i, r := range v.rows {
		out[i] = table.Row(r.Cells())
	}
	v.table.SetRows(out)
	if c := v.table.Cursor(); c >= len(out) {
		v.table.SetCursor(len(out) - 1)
	}
}

// selected returns the row under the cursor, ok=false on the placeholder.
func (v *tableView) selected() (render.Row, bool) {
	c := v.table.Cursor()
	if c < 0 || c >= len(v.rows) || v.rows[c].Placeholder {
		return render.Row{}, false
	}
	return v.rows[c], true
}
