// Package form drives the appointment form: it validates submissions, applies
// them to the record store, persists the snapshot and refreshes the view.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/idilsaglam/citas/internal/appointments"
	"github.com/idilsaglam/citas/internal/logging"
	"github.com/idilsaglam/citas/internal/model"
	"github.com/idilsaglam/citas/internal/validate"
)

// Form is the input side of a UI.
type Form interface {
	// Read returns the current field values.
	Read() model.Fields
	// Fill puts a record's values into the fields.
	Fill(model.Fields)
	// Clear empties every field and drops any error marks.
	Clear()
	// ShowErrors marks the failing fields; an empty set clears all marks.
	ShowErrors(validate.Errors)
}

// View is the output side of a UI.
type View interface {
	Render([]model.Appointment)
}

// Mode is the controller state.
type Mode int

const (
	Creating Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "creating"
}

// Controller is the form state machine: creating, or editing one record.
type Controller struct {
	store  *appointments.Store
	form   Form
	view   View
	log    *logging.Logger
	mode   Mode
	editID string
}

// NewController starts in creating mode. A nil log discards output.
func NewController(store *appointments.Store, form Form, view View, log *logging.Logger) *Controller {
	if log == nil {
		log = logging.Discard()
	}
	return &Controller{store: store, form: form, view: view, log: log}
}

// Mode returns the current state and, when editing, the record id.
func (c *Controller) Mode() (Mode, string) { return c.mode, c.editID }

// Records is a copy of the current list.
func (c *Controller) Records() []model.Appointment { return c.store.List() }

// Start loads the snapshot and draws the first table.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.store.Load(ctx); err != nil {
		return err
	}
	c.log.Info("snapshot loaded", "key", c.store.Key(), "records", c.store.Len())
	c.view.Render(c.store.List())
	return nil
}

// Submit validates the form and, if valid, creates or replaces a record,
// saves, re-renders and resets to creating. Invalid input only marks the
// fields: the state, the store and the view stay as they were.
func (c *Controller) Submit(ctx context.Context) (bool, error) {
	fields := c.form.Read()
	errs, ok := validate.Check(fields)
	if !ok {
		c.form.ShowErrors(errs)
		c.log.Debug("submission rejected", "mode", c.mode.String(), "fields", errs.Error())
		return false, nil
	}
	fields = validate.Normalize(fields)

	switch c.mode {
	case Editing:
		rec, err := c.store.Update(c.editID, fields)
		if err != nil {
			c.Reset()
			return false, err
		}
		c.log.Info("appointment updated", "id", rec.ID)
	default:
		rec := c.store.Create(fields)
		c.log.Info("appointment created", "id", rec.ID)
	}

	if err := c.persist(ctx); err != nil {
		return false, err
	}
	c.Reset()
	return true, nil
}

// Edit loads the record with id into the form and switches to editing it.
func (c *Controller) Edit(id string) error {
	rec, err := c.store.Get(id)
	if err != nil {
		return err
	}
	c.form.Clear()
	c.form.Fill(rec.Fields())
	c.mode, c.editID = Editing, id
	return nil
}

// Delete removes the record with id, saves, re-renders and resets the form,
// whether or not that record was being edited.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(id); err != nil {
		return err
	}
	c.log.Info("appointment deleted", "id", id)
	if err := c.persist(ctx); err != nil {
		return err
	}
	c.Reset()
	return nil
}

// Reset clears the form and returns to creating.
func (c *Controller) Reset() {
	c.form.Clear()
	c.mode, c.editID = Creating, ""
}

func (c *Controller) persist(ctx context.Context) error {
	if err := c.store.Save(ctx); err != nil {
		c.log.Error("snapshot save failed", "key", c.store.Key(), "error", err)
		return fmt.Errorf("persist: %w", err)
	}
	c.view.Render(c.store.List())
	return nil
}

// IsNotFound reports whether err is an unknown-id error.
func IsNotFound(err error) bool {
	return errors.Is(err, appointments.ErrNotFound)
}
