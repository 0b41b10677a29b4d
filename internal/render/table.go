package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/idilsaglam/citas/internal/ui"
)

// Headers are the table columns, in order.
var Headers = []string{"#", "First name", "Last name", "National ID", "Phone", "Birth date", "Appointment", "Notes", "ID"}

const notesWidth = 30

// Cells flattens a row to table cells matching Headers.
func (r Row) Cells() []string {
	if r.Placeholder {
		return []string{"", Placeholder, "", "", "", "", "", "", ""}
	}
	return []string{
		strconv.Itoa(r.Index),
		r.FirstName,
		r.LastName,
		r.NationalID,
		r.Phone,
		r.BirthDate,
		r.Appointment,
		OneLine(r.Notes, notesWidth),
		ShortID(r.ID),
	}
}

// Table draws rows as a bordered text table using the current theme.
func Table(rows []Row) string {
	th := ui.Current()
	t := table.New().
		Border(th.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(th.BorderColor)).
		Headers(Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return th.Header.Padding(0, 1)
			case row >= 0 && row < len(rows) && rows[row].Placeholder:
				return th.Muted.Padding(0, 1)
			case col == 0 || col == len(Headers)-1:
				return th.Muted.Padding(0, 1)
			}
			return base
		})
	for _, r := range rows {
		t.Row(r.Cells()...)
	}
	return t.String()
}
