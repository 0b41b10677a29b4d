package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/citas/internal/model"
	"github.com/idilsaglam/citas/internal/ui"
	"github.com/idilsaglam/citas/internal/validate"
)

// single-line inputs in form order; notes is the textarea after them.
// No CharLimit: Fill must load stored values untouched.
var formInputs = []struct {
	field       validate.Field
	label       string
	placeholder string
}{
	{validate.FirstName, "First name", "Ana"},
	{validate.LastName, "Last name", "García López"},
	{validate.NationalID, "National ID", "12345678A"},
	{validate.Phone, "Phone", "612345678"},
	{validate.BirthDate, "Birth date", "YYYY-MM-DD"},
	{validate.AppointmentDateTime, "Appointment", "YYYY-MM-DDTHH:MM"},
}

const labelWidth = 12

// formState is the terminal form. It implements form.Form.
type formState struct {
	inputs []textinput.Model
	notes  textarea.Model
	errs   validate.Errors
}

func newFormState() *formState {
	f := &formState{}
	for _, fi := range formInputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fi.placeholder
		ti.Width = 32
		f.inputs = append(f.inputs, ti)
	}
	f.notes = textarea.New()
	f.notes.Placeholder = "Notes..."
	f.notes.ShowLineNumbers = false
	f.notes.CharLimit = 0
	f.notes.SetWidth(48)
	f.notes.SetHeight(3)
	return f
}

// fieldCount is the number of focusable form fields (inputs + notes).
func (f *formState) fieldCount() int { return len(f.inputs) + 1 }

func (f *formState) Read() model.Fields {
	return model.Fields{
		FirstName:           f.inputs[0].Value(),
		LastName:            f.inputs[1].Value(),
		NationalID:          f.inputs[2].Value(),
		Phone:               f.inputs[3].Value(),
		BirthDate:           f.inputs[4].Value(),
		AppointmentDateTime: f.inputs[5].Value(),
		Notes:               f.notes.Value(),
	}
}

func (f *formState) Fill(v model.Fields) {
	values := []string{v.FirstName, v.LastName, v.NationalID, v.Phone, v.BirthDate, v.AppointmentDateTime}
	for i := range f.inputs {
		f.inputs[i].SetValue(values[i])
		f.inputs[i].CursorEnd()
	}
	f.notes.SetValue(v.Notes)
}

func (f *formState) Clear() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.notes.Reset()
	f.errs = nil
}

func (f *formState) ShowErrors(errs validate.Errors) {
	f.errs = errs
}

// firstError is the focus index of the first failing field, or -1.
func (f *formState) firstError() int {
	for i, fi := range formInputs {
		if f.errs.Has(fi.field) {
			return i
		}
	}
	return -1
}

// focus moves the cursor to field i; i outside the form blurs everything.
func (f *formState) focus(i int) tea.Cmd {
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	if i == len(f.inputs) {
		cmd = f.notes.Focus()
	} else {
		f.notes.Blur()
	}
	return cmd
}

// update routes a message to field i.
func (f *formState) update(i int, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case i >= 0 && i < len(f.inputs):
		f.inputs[i], cmd = f.inputs[i].Update(msg)
	case i == len(f.inputs):
		f.notes, cmd = f.notes.Update(msg)
	}
	return cmd
}

func (f *formState) view(focused int) string {
	th := ui.Current()
	var b strings.Builder
	for i, fi := range formInputs {
		b.WriteString(fieldLine(fi.label, f.inputs[i].View(), i == focused, f.errs[fi.field]))
		b.WriteString("\n")
	}
	label := th.Label.Width(labelWidth).Render("Notes")
	if focused == len(f.inputs) {
		label = th.Focused.Width(labelWidth).Render("Notes")
	}
	b.WriteString(label + "\n" + f.notes.View())
	return b.String()
}

func fieldLine(label, input string, focused bool, errMsg string) string {
	th := ui.Current()
	l := th.Label.Width(labelWidth).Render(label)
	if focused {
		l = th.Focused.Width(labelWidth).Render(label)
	}
	line := l + " " + input
	if errMsg != "" {
		line += "  " + th.Error.Render(errMsg)
	}
	return line
}
