package model

// Appointment is one stored appointment record.
// Field names on the wire match the snapshot format; all values are strings.
type Appointment struct {
	ID                  string `json:"id"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	NationalID          string `json:"nationalId"`
	Phone               string `json:"phone"`
	BirthDate           string `json:"birthDate"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Notes               string `json:"notes"`
}

// Fields is what a form yields: an appointment without its id.
// The validate tags are checked against normalized values.
type Fields struct {
	FirstName           string `validate:"required"`
	LastName            string `validate:"required"`
	NationalID          string `validate:"nationalid"`
	Phone               string `validate:"phone9"`
	BirthDate           string `validate:"required"`
	AppointmentDateTime string `validate:"required"`
	Notes               string
}

// Fields returns the editable part of the record.
func (a Appointment) Fields() Fields {
	return Fields{
		FirstName:           a.FirstName,
		LastName:            a.LastName,
		NationalID:          a.NationalID,
		Phone:               a.Phone,
		BirthDate:           a.BirthDate,
		AppointmentDateTime: a.AppointmentDateTime,
		Notes:               a.Notes,
	}
}

// WithID builds a full record from form fields.
func (f Fields) WithID(id string) Appointment {
	return Appointment{
		ID:                  id,
		FirstName:           f.FirstName,
		LastName:            f.LastName,
		NationalID:          f.NationalID,
		Phone:               f.Phone,
		BirthDate:           f.BirthDate,
		AppointmentDateTime: f.AppointmentDateTime,
		Notes:               f.Notes,
	}
}

// FullName is "first last", used by the table and the CLI.
func (a Appointment) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
