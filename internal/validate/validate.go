// Package validate checks appointment form input.
//
// Every field is checked on each call and every failure is reported together,
// so a form can mark all bad fields at once.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/citas/internal/model"
)

// Field names a form input. Order follows the form layout.
type Field int

const (
	FirstName Field = iota
	LastName
	NationalID
	Phone
	BirthDate
	AppointmentDateTime
	Notes
)

// Order is the form layout order.
var Order = []Field{FirstName, LastName, NationalID, Phone, BirthDate, AppointmentDateTime, Notes}

var fieldNames = map[Field]string{
	FirstName:           "first name",
	LastName:            "last name",
	NationalID:          "national ID",
	Phone:               "phone",
	BirthDate:           "birth date",
	AppointmentDateTime: "appointment date",
	Notes:               "notes",
}

func (f Field) String() string { return fieldNames[f] }

// Messages shown next to failing fields.
const (
	MsgFirstNameRequired = "first name is required"
	MsgLastNameRequired  = "last name is required"
	MsgNationalIDFormat  = "invalid format (e.g. 12345678A)"
	MsgPhoneFormat       = "invalid phone (9 digits)"
	MsgRequired          = "required"
)

var (
	nationalIDRe = regexp.MustCompile(`^\d{7,8}[A-Z]$`)
	phoneRe      = regexp.MustCompile(`^\d{9}$`)
)

// byStructField maps model.Fields names back to form fields.
var byStructField = map[string]Field{
	"FirstName":           FirstName,
	"LastName":            LastName,
	"NationalID":          NationalID,
	"Phone":               Phone,
	"BirthDate":           BirthDate,
	"AppointmentDateTime": AppointmentDateTime,
}

var messages = map[Field]string{
	FirstName:           MsgFirstNameRequired,
	LastName:            MsgLastNameRequired,
	NationalID:          MsgNationalIDFormat,
	Phone:               MsgPhoneFormat,
	BirthDate:           MsgRequired,
	AppointmentDateTime: MsgRequired,
}

var checker = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	must(v.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
		return nationalIDRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("phone9", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Errors maps each failing field to its message.
type Errors map[Field]string

// Has reports whether f failed.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Fields returns the failing fields in form order.
func (e Errors) Fields() []Field {
	out := make([]Field, 0, len(e))
	for _, f := range Order {
		if e.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Error joins all messages, in form order, as "field: message; ...".
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f.String()+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// NormalizeNationalID trims and upper-cases a national ID.
func NormalizeNationalID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NationalIDValid reports whether s is 7-8 digits followed by a letter, after normalization.
func NationalIDValid(s string) bool {
	return checker.Var(NormalizeNationalID(s), "nationalid") == nil
}

// PhoneValid reports whether s is exactly 9 digits, ignoring surrounding space.
func PhoneValid(s string) bool {
	return checker.Var(strings.TrimSpace(s), "phone9") == nil
}

// Check validates f and returns the failures plus a validity flag.
// The returned Errors is empty (never nil) when ok is true.
func Check(f model.Fields) (errs Errors, ok bool) {
	err := checker.Struct(Normalize(f))
	return fromValidator(err), err == nil
}

// fromValidator turns validator failures into per-field messages.
func fromValidator(err error) Errors {
	errs := Errors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs
	}
	for _, fe := range verrs {
		field, ok := byStructField[fe.StructField()]
		if !ok {
			continue
		}
		errs[field] = messages[field]
	}
	return errs
}

// Normalize returns f as it is stored: text trimmed, national ID upper-cased.
// Notes keep inner whitespace and line breaks.
func Normalize(f model.Fields) model.Fields {
	return model.Fields{
		FirstName:           strings.TrimSpace(f.FirstName),
		LastName:            strings.TrimSpace(f.LastName),
		NationalID:          NormalizeNationalID(f.NationalID),
		Phone:               strings.TrimSpace(f.Phone),
		BirthDate:           strings.TrimSpace(f.BirthDate),
		AppointmentDateTime: strings.TrimSpace(f.AppointmentDateTime),
		Notes:               strings.TrimSpace(f.Notes),
	}
}
