package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/citas/internal/appointments"
	"github.com/idilsaglam/citas/internal/form"
	"github.com/idilsaglam/citas/internal/logging"
	"github.com/idilsaglam/citas/internal/render"
	"github.com/idilsaglam/citas/internal/ui"
)

type modelTUI struct {
	ctx  context.Context
	ctl  *form.Controller
	form *formState
	view *tableView

	// focus is a form field index, or tableFocus for the record table
	focus int

	keys keyMap
	help help.Model

	status    string
	statusErr bool
	width     int
}

// Run loads the snapshot and starts the interactive form. Every save, edit and
// delete is persisted immediately.
func Run(ctx context.Context, store *appointments.Store, loc *time.Location, log *logging.Logger) error {
	m, err := newModel(ctx, store, loc, log)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func newModel(ctx context.Context, store *appointments.Store, loc *time.Location, log *logging.Logger) (modelTUI, error) {
	fs := newFormState()
	tv := newTableView(loc)
	ctl := form.NewController(store, fs, tv, log)
	if err := ctl.Start(ctx); err != nil {
		return modelTUI{}, err
	}
	m := modelTUI{
		ctx:  ctx,
		ctl:  ctl,
		form: fs,
		view: tv,
		keys: defaultKeys(),
		help: help.New(),
	}
	m.setFocus(0)
	return m, nil
}

func (m *modelTUI) tableFocus() int { return m.form.fieldCount() }

func (m *modelTUI) setFocus(i int) tea.Cmd {
	n := m.form.fieldCount() + 1
	m.focus = ((i % n) + n) % n
	if m.focus == m.tableFocus() {
		m.form.focus(-1)
		m.view.table.Focus()
		return nil
	}
	m.view.table.Blur()
	return m.form.focus(m.focus)
}

func (m *modelTUI) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		h := msg.Height - 24
		if h < 3 {
			h = 3
		}
		m.view.table.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.Reset):
			m.ctl.Reset()
			m.setStatus("form cleared", false)
			return m, m.setFocus(0)
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		}
		if m.focus == m.tableFocus() {
			return m.updateTable(msg)
		}
		if key.Matches(msg, m.keys.Back) {
			return m, m.setFocus(m.tableFocus())
		}
		// enter advances through single-line inputs; the notes area keeps it
		if msg.Type == tea.KeyEnter && m.focus < len(m.form.inputs) {
			return m, m.setFocus(m.focus + 1)
		}
	}

	if m.focus == m.tableFocus() {
		var cmd tea.Cmd
		m.view.table, cmd = m.view.table.Update(msg)
		return m, cmd
	}
	return m, m.form.update(m.focus, msg)
}

func (m modelTUI) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		row, ok := m.view.selected()
		if !ok {
			return m, nil
		}
		if err := m.ctl.Edit(row.ID); err != nil {
			m.setStatus("edit: "+err.Error(), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("editing #%d", row.Index), false)
		return m, m.setFocus(0)
	case key.Matches(msg, m.keys.Delete):
		row, ok := m.view.selected()
		if !ok {
			return m, nil
		}
		if err := m.ctl.Delete(m.ctx, row.ID); err != nil {
			m.setStatus("delete: "+err.Error(), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("deleted #%d", row.Index), false)
		return m, nil
	}
	var cmd tea.Cmd
	m.view.table, cmd = m.view.table.Update(msg)
	return m, cmd
}

func (m *modelTUI) submit() tea.Cmd {
	mode, _ := m.ctl.Mode()
	ok, err := m.ctl.Submit(m.ctx)
	switch {
	case err != nil:
		m.setStatus("save: "+err.Error(), true)
		return nil
	case !ok:
		m.setStatus("check the highlighted fields", true)
		if i := m.form.firstError(); i >= 0 {
			return m.setFocus(i)
		}
		return nil
	}
	if mode == form.Editing {
		m.setStatus("appointment updated", false)
	} else {
		m.setStatus("appointment saved", false)
	}
	return m.setFocus(0)
}

func (m modelTUI) View() string {
	th := ui.Current()
	mode, _ := m.ctl.Mode()

	title := "New appointment"
	if mode == form.Editing {
		title = "Editing appointment"
	}
	st := render.Count(m.ctl.Records(), time.Now().In(m.view.loc))
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		th.Title.Render("Citas"),
		th.Pending.Render(th.SymUpcoming+" upcoming"), st.Upcoming,
		th.Muted.Render(th.SymPast+" past"), st.Past,
		th.Accent.Render("Total"), st.Total,
	)

	box := lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.BorderColor).
		Padding(0, 1)
	formBox := box
	tableBox := box
	if m.focus == m.tableFocus() {
		tableBox = tableBox.BorderForeground(th.Focused.GetForeground())
	} else {
		formBox = formBox.BorderForeground(th.Focused.GetForeground())
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = th.Error.Render(th.SymFail + " " + m.status)
		} else {
			status = th.Success.Render(th.SymOK + " " + m.status)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		formBox.Render(th.Title.Render(title)+"\n"+m.form.view(m.focus)),
		tableBox.Render(m.view.table.View()),
		status,
		m.help.View(m.keys),
	)
}
