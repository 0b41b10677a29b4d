package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/citas/internal/model"
)

func madrid(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return loc
}

func records(n int) []model.Appointment {
	out := make([]model.Appointment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Appointment{
			ID:                  string(rune('a' + i)),
			FirstName:           "name" + string(rune('a'+i)),
			AppointmentDateTime: "2026-05-0" + string(rune('1'+i)) + "T09:15",
		})
	}
	return out
}

func TestRowsEmptyIsOnePlaceholder(t *testing.T) {
	for _, in := range [][]model.Appointment{nil, {}} {
		rows := Rows(in, time.UTC)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Placeholder)
		assert.Equal(t, Placeholder, rows[0].Cells()[1])
	}
}

func TestRowsIndexedInListOrder(t *testing.T) {
	in := records(4)
	rows := Rows(in, time.UTC)

	require.Len(t, rows, 4)
	for i, r := range rows {
		assert.False(t, r.Placeholder)
		assert.Equal(t, i+1, r.Index)
		assert.Equal(t, in[i].ID, r.ID)
		assert.Equal(t, in[i].FirstName, r.FirstName)
	}
	assert.Equal(t, "01/05/2026, 09:15", rows[0].Appointment)
}

func TestFormatDateTime(t *testing.T) {
	loc := madrid(t)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"datetime-local", "2026-03-07T08:05", "07/03/2026, 08:05"},
		{"with seconds", "2026-03-07T08:05:59", "07/03/2026, 08:05"},
		{"rfc3339 converted", "2026-07-01T10:30:00Z", "01/07/2026, 12:30"},
		{"empty", "", ""},
		{"garbage kept", "next tuesday", "next tuesday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateTime(tt.in, loc))
		})
	}
}

func TestCount(t *testing.T) {
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	in := records(3) // May 1, 2, 3 at 09:15
	in = append(in, model.Appointment{ID: "z", AppointmentDateTime: "soon"})

	st := Count(in, now)
	assert.Equal(t, Stats{Upcoming: 1, Past: 2, Total: 4}, st)
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b c", OneLine(" a\nb\t c ", 30))
	assert.Equal(t, "abcdefg...", OneLine(strings.Repeat("abcdefghij", 3), 10))
	assert.Equal(t, "ñandú", OneLine("ñandú", 5))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0b8f5e2a", ShortID("0b8f5e2a-1c7d-4a51-9a8e-3d6f0c2b1a77"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestTableContainsRows(t *testing.T) {
	out := Table(Rows(records(2), time.UTC))
	for _, want := range []string{"First name", "namea", "nameb", "01/05/2026, 09:15"} {
		assert.Contains(t, out, want)
	}

	empty := Table(Rows(nil, time.UTC))
	assert.Contains(t, empty, Placeholder)
}
