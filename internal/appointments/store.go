// Package appointments owns the in-memory appointment list for a session and
// keeps it in sync with its persisted snapshot.
package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/idilsaglam/citas/internal/model"
	"github.com/idilsaglam/citas/internal/snapshot"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("appointment not found")

// Store is the authoritative record list. Order is insertion order.
// It is not safe for concurrent use; callers handle one event at a time.
type Store struct {
	kv      snapshot.KV
	key     string
	newID   func() string
	records []model.Appointment
}

// Option customizes a Store.
type Option func(*Store)

// WithIDGenerator replaces the id source (uuid v4 by default).
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// New returns an empty Store persisted to kv under key (snapshot.DefaultKey if empty).
func New(kv snapshot.KV, key string, opts ...Option) *Store {
	if key == "" {
		key = snapshot.DefaultKey
	}
	s := &Store{kv: kv, key: key, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key is the snapshot key this store reads and writes.
func (s *Store) Key() string { return s.key }

// Load replaces the list with the stored snapshot. A missing or blank snapshot leaves it empty.
func (s *Store) Load(ctx context.Context) error {
	b, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.key, err)
	}
	if !found || len(bytes.TrimSpace(b)) == 0 {
		s.records = nil
		return nil
	}
	var records []model.Appointment
	if err := json.Unmarshal(b, &records); err != nil {
		return fmt.Errorf("json unmarshal %s: %w", s.key, err)
	}
	s.records = records
	return nil
}

// Save overwrites the stored snapshot with the whole list.
func (s *Store) Save(ctx context.Context) error {
	records := s.records
	if records == nil {
		records = []model.Appointment{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, b); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// Len is the number of records.
func (s *Store) Len() int { return len(s.records) }

// List returns a copy of the records in order.
func (s *Store) List() []model.Appointment {
	out := make([]model.Appointment, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the record with id.
func (s *Store) Get(id string) (model.Appointment, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Appointment{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.records[i], nil
}

// Create appends a record with a fresh id and returns it. Nothing is persisted.
func (s *Store) Create(f model.Fields) model.Appointment {
	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}
	rec := f.WithID(id)
	s.records = append(s.records, rec)
	return rec
}

// Update replaces every field of the record with id, keeping its position.
func (s *Store) Update(id string, f model.Fields) (model.Appointment, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Appointment{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.records[i] = f.WithID(id)
	return s.records[i], nil
}

// Delete removes the record with id, keeping the others in order.
func (s *Store) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}
