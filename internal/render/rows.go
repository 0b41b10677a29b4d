// Package render turns the record list into table rows. Everything here is a
// pure function of its inputs; drawing is left to the caller.
package render

import (
	"strings"
	"time"

	"github.com/idilsaglam/citas/internal/model"
)

// Placeholder is the text of the single row shown for an empty list.
const Placeholder = "no data"

// DisplayLayout mirrors es-ES toLocaleString with 2-digit day, month, hour and minute.
const DisplayLayout = "02/01/2006, 15:04"

// Input layouts accepted for appointmentDateTime, most specific first.
var inputLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// Row is one rendered table line. ID tags the edit and delete actions.
type Row struct {
	Placeholder bool
	Index       int
	ID          string
	FirstName   string
	LastName    string
	NationalID  string
	Phone       string
	BirthDate   string
	Appointment string
	Notes       string
}

// Rows renders records in list order with 1-based indexes.
// An empty list yields exactly one placeholder row.
func Rows(records []model.Appointment, loc *time.Location) []Row {
	if len(records) == 0 {
		return []Row{{Placeholder: true}}
	}
	out := make([]Row, 0, len(records))
	for i, r := range records {
		out = append(out, Row{
			Index:       i + 1,
			ID:          r.ID,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			NationalID:  r.NationalID,
			Phone:       r.Phone,
			BirthDate:   r.BirthDate,
			Appointment: FormatDateTime(r.AppointmentDateTime, loc),
			Notes:       r.Notes,
		})
	}
	return out
}

// ParseDateTime reads an appointment date/time. Zone-less values are taken as
// wall time in loc; RFC 3339 values are converted to loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// FormatDateTime formats an appointment date/time for display.
// Empty input gives "", unparseable input is returned unchanged.
func FormatDateTime(s string, loc *time.Location) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t, ok := ParseDateTime(s, loc)
	if !ok {
		return s
	}
	return t.Format(DisplayLayout)
}

// Stats counts appointments relative to now. Unparseable dates count only toward Total.
type Stats struct {
	Upcoming, Past, Total int
}

// Count computes Stats for records at now.
func Count(records []model.Appointment, now time.Time) Stats {
	st := Stats{Total: len(records)}
	for _, r := range records {
		t, ok := ParseDateTime(r.AppointmentDateTime, now.Location())
		if !ok {
			continue
		}
		if t.Before(now) {
			st.Past++
		} else {
			st.Upcoming++
		}
	}
	return st
}

// ShortID trims an id for narrow tables.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// OneLine flattens s and cuts it to max runes, marking the cut with "...".
func OneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if max > 3 && len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}
