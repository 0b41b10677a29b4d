package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/citas/internal/appointments"
	"github.com/idilsaglam/citas/internal/form"
	"github.com/idilsaglam/citas/internal/logging"
	"github.com/idilsaglam/citas/internal/model"
	"github.com/idilsaglam/citas/internal/render"
	"github.com/idilsaglam/citas/internal/tui"
	"github.com/idilsaglam/citas/internal/ui"
	"github.com/idilsaglam/citas/internal/validate"
)

// Env is what every subcommand runs against.
type Env struct {
	Store *appointments.Store
	Loc   *time.Location
	Log   *logging.Logger
	Now   func() time.Time
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now().In(e.Loc)
	}
	return time.Now().In(e.Loc)
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, env Env) int {
	if env.Log == nil {
		env.Log = logging.Discard()
	}
	if env.Loc == nil {
		env.Loc = time.Local
	}
	if len(args) == 0 {
		args = []string{"ui"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		if err := tui.Run(ctx, env.Store, env.Loc, env.Log); err != nil {
			ui.Fail(err.Error())
			return 1
		}
		return 0

	case "ls":
		return doList(ctx, env)

	case "show":
		if len(a) != 1 {
			ui.Fail("usage: citas show <id>")
			return 2
		}
		return doShow(ctx, env, a[0])

	case "add":
		return doAdd(ctx, env, a)

	case "edit":
		if len(a) == 0 || strings.HasPrefix(a[0], "-") {
			ui.Fail("usage: citas edit <id> [--first ...] [--last ...] ...")
			return 2
		}
		return doEdit(ctx, env, a[0], a[1:])

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: citas rm <id>")
			return 2
		}
		return doRemove(ctx, env, a[0])
	}

	ui.Fail("unknown subcommand: " + cmd)
	ui.Println()
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout(), `citas - appointment records

Usage:
  citas [flags] <subcommand> [args]

Subcommands:
  ui                 Interactive form and table (default)
  ls                 List appointments
  show <id>          Show one appointment
  add [fields]       Add an appointment
  edit <id> [fields] Replace fields of an appointment (unset flags keep their value)
  rm <id>            Delete an appointment

Fields:
  --first <name>  --last <surname>  --id <national ID>  --phone <9 digits>
  --birth <YYYY-MM-DD>  --at <YYYY-MM-DDTHH:MM>  --notes <text>

Ids may be shortened to any unique prefix (as shown by ls).

Examples:
  citas add --first Ana --last "García López" --id 12345678A --phone 612345678 \
            --birth 1990-04-12 --at 2026-11-03T09:30
  citas ls
  citas edit 0b8f5e2a --at 2026-11-04T10:00
  citas rm 0b8f5e2a
`)
}

// -------------- subcommand impls ----------------

func load(ctx context.Context, env Env) bool {
	if err := env.Store.Load(ctx); err != nil {
		env.Log.Error("load failed", "error", err)
		ui.Fail("load: " + err.Error())
		return false
	}
	return true
}

func doList(ctx context.Context, env Env) int {
	if !load(ctx, env) {
		return 1
	}
	records := env.Store.List()
	th := ui.Current()
	st := render.Count(records, env.now())

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		th.Title.Render("Citas"),
		th.Pending.Render(th.SymUpcoming+" upcoming"), st.Upcoming,
		th.Muted.Render(th.SymPast+" past"), st.Past,
		th.Accent.Render("Total"), st.Total,
	)

	lines := []string{
		header,
		"",
		render.Table(render.Rows(records, env.Loc)),
		"",
		th.Muted.Render("Tip: add with `citas add --first Ana --last Soler ...`"),
	}
	ui.Panel(lines)
	return 0
}

func doShow(ctx context.Context, env Env, arg string) int {
	if !load(ctx, env) {
		return 1
	}
	id, code := resolve(env.Store, arg)
	if code != 0 {
		return code
	}
	rec, err := env.Store.Get(id)
	if err != nil {
		ui.Fail(err.Error())
		return 2
	}
	ui.Panel(detailLines(rec, env.Loc))
	return 0
}

func doAdd(ctx context.Context, env Env, args []string) int {
	ff := newFieldFlags("add")
	if err := ff.parse(args); err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}
	if ff.fs.NArg() > 0 {
		ui.Fail("add: unexpected argument " + ff.fs.Arg(0))
		return 2
	}

	f := &flagForm{}
	ctl := form.NewController(env.Store, f, quietView{}, env.Log)
	if err := ctl.Start(ctx); err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	f.Fill(ff.values)
	before := map[string]bool{}
	for _, r := range ctl.Records() {
		before[r.ID] = true
	}

	if code := submit(ctx, ctl, f, "add"); code != 0 {
		return code
	}
	for _, r := range ctl.Records() {
		if !before[r.ID] {
			ui.OK("added " + render.ShortID(r.ID))
			return 0
		}
	}
	ui.OK("added")
	return 0
}

func doEdit(ctx context.Context, env Env, arg string, args []string) int {
	ff := newFieldFlags("edit")
	if err := ff.parse(args); err != nil {
		ui.Fail("edit: " + err.Error())
		return 2
	}
	if ff.fs.NArg() > 0 {
		ui.Fail("edit: unexpected argument " + ff.fs.Arg(0))
		return 2
	}

	f := &flagForm{}
	ctl := form.NewController(env.Store, f, quietView{}, env.Log)
	if err := ctl.Start(ctx); err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	id, code := resolve(env.Store, arg)
	if code != 0 {
		return code
	}
	if err := ctl.Edit(id); err != nil {
		ui.Fail("edit: " + err.Error())
		return 2
	}
	f.Fill(ff.overlay(f.Read()))

	if code := submit(ctx, ctl, f, "edit"); code != 0 {
		return code
	}
	ui.OK("updated " + render.ShortID(id))
	return 0
}

func doRemove(ctx context.Context, env Env, arg string) int {
	ctl := form.NewController(env.Store, &flagForm{}, quietView{}, env.Log)
	if err := ctl.Start(ctx); err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	id, code := resolve(env.Store, arg)
	if code != 0 {
		return code
	}
	if err := ctl.Delete(ctx, id); err != nil {
		ui.Fail("rm: " + err.Error())
		return 1
	}
	ui.OK("removed " + render.ShortID(id))
	return 0
}

func submit(ctx context.Context, ctl *form.Controller, f *flagForm, verb string) int {
	ok, err := ctl.Submit(ctx)
	if err != nil {
		ui.Fail(verb + ": " + err.Error())
		if form.IsNotFound(err) {
			return 2
		}
		return 1
	}
	if !ok {
		for _, field := range f.errs.Fields() {
			ui.Fail(fmt.Sprintf("%s: %s", field, f.errs[field]))
		}
		ui.Hint("Hint: run `citas help` for the expected formats")
		return 2
	}
	return 0
}

// errAmbiguous is returned when an id prefix matches more than one record.
var errAmbiguous = errors.New("ambiguous id")

// resolveID accepts a full id or a unique prefix of one.
func resolveID(records []model.Appointment, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("%w: empty id", appointments.ErrNotFound)
	}
	for _, r := range records {
		if r.ID == arg {
			return r.ID, nil
		}
	}
	var match string
	for _, r := range records {
		if strings.HasPrefix(r.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", errAmbiguous, arg)
			}
			match = r.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", appointments.ErrNotFound, arg)
	}
	return match, nil
}

func resolve(store *appointments.Store, arg string) (string, int) {
	id, err := resolveID(store.List(), arg)
	if err != nil {
		ui.Fail(err.Error())
		ui.Hint("Hint: run `citas ls` to see valid ids")
		return "", 2
	}
	return id, 0
}

// -------------- rendering helpers --------------

func detailLines(rec model.Appointment, loc *time.Location) []string {
	th := ui.Current()
	label := func(s string) string { return th.Label.Width(18).Render(s) }
	notes := rec.Notes
	if notes == "" {
		notes = th.Muted.Render("(none)")
	}
	return []string{
		th.Title.Render(rec.FullName()),
		"",
		label(validate.NationalID.String()) + rec.NationalID,
		label(validate.Phone.String()) + rec.Phone,
		label(validate.BirthDate.String()) + rec.BirthDate,
		label(validate.AppointmentDateTime.String()) + render.FormatDateTime(rec.AppointmentDateTime, loc),
		label(validate.Notes.String()) + notes,
		"",
		th.Muted.Render("id " + rec.ID),
	}
}
