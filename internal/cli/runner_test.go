package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/citas/internal/appointments"
	"github.com/idilsaglam/citas/internal/config"
	"github.com/idilsaglam/citas/internal/model"
	"github.com/idilsaglam/citas/internal/store/jsonstore"
	"github.com/idilsaglam/citas/internal/store/memstore"
	"github.com/idilsaglam/citas/internal/ui"
	"github.com/idilsaglam/citas/internal/validate"
)

type testEnv struct {
	Env
	kv  *memstore.Store
	out *bytes.Buffer
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	var out bytes.Buffer
	setOutput(t, &out)

	kv := memstore.New()
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("%08d-aaaa-bbbb-cccc-dddddddddddd", n)
	}
	return &testEnv{
		Env: Env{
			Store: appointments.New(kv, "citas", appointments.WithIDGenerator(newID)),
			Loc:   time.UTC,
			Now:   func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) },
		},
		kv:  kv,
		out: &out,
	}
}

func (e *testEnv) run(args ...string) int {
	e.out.Reset()
	return Run(context.Background(), args, e.Env)
}

func (e *testEnv) stored(t *testing.T) []model.Appointment {
	t.Helper()
	s := appointments.New(e.kv, "citas")
	require.NoError(t, s.Load(context.Background()))
	return s.List()
}

var addAna = []string{"add",
	"--first", "Ana", "--last", "García", "--id", "12345678a", "--phone", "612345678",
	"--birth", "1990-04-12", "--at", "2026-11-03T09:30", "--notes", "first visit"}

func TestAddThenList(t *testing.T) {
	e := newEnv(t)

	require.Equal(t, 0, e.run(addAna...))
	assert.Contains(t, e.out.String(), "added 00000001")

	recs := e.stored(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "12345678A", recs[0].NationalID)

	require.Equal(t, 0, e.run("ls"))
	out := e.out.String()
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "03/11/2026, 09:30")
	assert.Contains(t, out, "00000001")
}

func TestListEmpty(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run("ls"))
	assert.Contains(t, e.out.String(), "no data")
}

func TestAddInvalidReportsAllFields(t *testing.T) {
	e := newEnv(t)

	code := e.run("add", "--first", "Ana", "--id", "123456789A", "--phone", "6123456789")
	assert.Equal(t, 2, code)

	out := e.out.String()
	for _, msg := range []string{validate.MsgLastNameRequired, validate.MsgNationalIDFormat, validate.MsgPhoneFormat} {
		assert.Contains(t, out, msg)
	}
	assert.Empty(t, e.stored(t))
}

func TestAddRejectsStrayArgs(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, 2, e.run("add", "--first", "Ana", "extra"))
	assert.Equal(t, 2, e.run("add", "--nope"))
}

func TestEditKeepsUnsetFields(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run(addAna...))

	require.Equal(t, 0, e.run("edit", "00000001", "--at", "2026-11-04T10:00", "--notes", ""))
	recs := e.stored(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "2026-11-04T10:00", recs[0].AppointmentDateTime)
	assert.Equal(t, "", recs[0].Notes)
	assert.Equal(t, "Ana", recs[0].FirstName)
	assert.Equal(t, "00000001-aaaa-bbbb-cccc-dddddddddddd", recs[0].ID)
}

func TestEditRejectsStrayArgs(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run(addAna...))

	assert.Equal(t, 2, e.run("edit", "00000001", "--first", "Luisa", "extra"))
	assert.Contains(t, e.out.String(), "unexpected argument extra")
	assert.Equal(t, "Ana", e.stored(t)[0].FirstName)
}

func TestEditInvalid(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run(addAna...))

	assert.Equal(t, 2, e.run("edit", "00000001", "--phone", "61234567"))
	assert.Equal(t, "612345678", e.stored(t)[0].Phone)
}

func TestRemove(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run(addAna...))
	require.Equal(t, 0, e.run(addAna...))

	require.Equal(t, 0, e.run("rm", "00000001-aaaa-bbbb-cccc-dddddddddddd"))
	recs := e.stored(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "00000002-aaaa-bbbb-cccc-dddddddddddd", recs[0].ID)

	assert.Equal(t, 2, e.run("rm", "00000001"))
}

func TestShow(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run(addAna...))

	require.Equal(t, 0, e.run("show", "0000000"))
	out := e.out.String()
	assert.Contains(t, out, "Ana García")
	assert.Contains(t, out, "first visit")
}

func TestAmbiguousPrefix(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, 0, e.run(addAna...))
	require.Equal(t, 0, e.run(addAna...))

	assert.Equal(t, 2, e.run("show", "0000"))
	assert.Contains(t, e.out.String(), "ambiguous id")
}

func TestUsageErrors(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, 2, e.run("show"))
	assert.Equal(t, 2, e.run("rm"))
	assert.Equal(t, 2, e.run("edit"))
	assert.Equal(t, 2, e.run("edit", "--first", "x"))
	assert.Equal(t, 2, e.run("frobnicate"))
	assert.Equal(t, 0, e.run("help"))
	assert.Contains(t, e.out.String(), "Subcommands:")
}

func TestMalformedSnapshotFails(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.kv.Set(context.Background(), "citas", []byte("{")))
	assert.Equal(t, 1, e.run("ls"))
	assert.Equal(t, 1, e.run(addAna...))
}

func TestResolveID(t *testing.T) {
	recs := []model.Appointment{{ID: "abc-1"}, {ID: "abc-2"}, {ID: "abd-2"}, {ID: "abc"}}

	id, err := resolveID(recs, "abd")
	require.NoError(t, err)
	assert.Equal(t, "abd-2", id)

	id, err = resolveID(recs, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", id, "exact match wins over prefix")

	_, err = resolveID(recs, "ab")
	assert.ErrorIs(t, err, errAmbiguous)

	_, err = resolveID(recs, "zz")
	assert.ErrorIs(t, err, appointments.ErrNotFound)
}

func TestOpenBackendFile(t *testing.T) {
	dir := t.TempDir()
	kv, closeFn, err := OpenBackend(context.Background(), &config.Config{Storage: config.StorageFile, DataDir: dir})
	require.NoError(t, err)
	defer closeFn()

	_, ok := kv.(*jsonstore.Store)
	assert.True(t, ok)
}

func TestOpenBackendUnknown(t *testing.T) {
	_, closeFn, err := OpenBackend(context.Background(), &config.Config{Storage: "tape"})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}

func setOutput(t *testing.T, w *bytes.Buffer) {
	t.Helper()
	ui.SetOutput(w, w)
	t.Cleanup(func() { ui.SetOutput(os.Stdout, os.Stderr) })
}
