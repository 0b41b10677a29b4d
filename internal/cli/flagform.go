package cli

import (
	"flag"
	"io"

	"github.com/idilsaglam/citas/internal/model"
	"github.com/idilsaglam/citas/internal/validate"
)

// flagForm is a form.Form filled from command-line flags.
type flagForm struct {
	values model.Fields
	errs   validate.Errors
}

func (f *flagForm) Read() model.Fields              { return f.values }
func (f *flagForm) Fill(v model.Fields)             { f.values = v }
func (f *flagForm) Clear()                          { f.values, f.errs = model.Fields{}, nil }
func (f *flagForm) ShowErrors(errs validate.Errors) { f.errs = errs }

// quietView drops renders; commands print their own output.
type quietView struct{}

func (quietView) Render([]model.Appointment) {}

// fieldFlags binds one flag per form field.
type fieldFlags struct {
	fs     *flag.FlagSet
	values model.Fields
}

func newFieldFlags(name string) *fieldFlags {
	ff := &fieldFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	ff.fs.SetOutput(io.Discard)
	ff.fs.StringVar(&ff.values.FirstName, "first", "", "first name")
	ff.fs.StringVar(&ff.values.LastName, "last", "", "last name")
	ff.fs.StringVar(&ff.values.NationalID, "id", "", "national ID (7-8 digits + letter)")
	ff.fs.StringVar(&ff.values.Phone, "phone", "", "phone (9 digits)")
	ff.fs.StringVar(&ff.values.BirthDate, "birth", "", "birth date (YYYY-MM-DD)")
	ff.fs.StringVar(&ff.values.AppointmentDateTime, "at", "", "appointment (YYYY-MM-DDTHH:MM)")
	ff.fs.StringVar(&ff.values.Notes, "notes", "", "free-text notes")
	return ff
}

func (ff *fieldFlags) parse(args []string) error {
	return ff.fs.Parse(args)
}

// overlay copies only the flags given on the command line onto base.
func (ff *fieldFlags) overlay(base model.Fields) model.Fields {
	ff.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "first":
			base.FirstName = ff.values.FirstName
		case "last":
			base.LastName = ff.values.LastName
		case "id":
			base.NationalID = ff.values.NationalID
		case "phone":
			base.Phone = ff.values.Phone
		case "birth":
			base.BirthDate = ff.values.BirthDate
		case "at":
			base.AppointmentDateTime = ff.values.AppointmentDateTime
		case "notes":
			base.Notes = ff.values.Notes
		}
	})
	return base
}
