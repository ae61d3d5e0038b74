// Package ui renders the commit wizard in the terminal. All state changes go
// through the wizard controller; the model only translates key presses and
// draws what the controller reports.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/renatogalera/coco/pkg/committypes"
	"github.com/renatogalera/coco/pkg/i18n"
	"github.com/renatogalera/coco/pkg/wizard"
)

// CommitTimeout bounds a single commit operation.
const CommitTimeout = 15 * time.Second

type commitDoneMsg struct{ result wizard.CommitResult }

type Model struct {
	ctrl    *wizard.Controller
	tr      *i18n.Translator
	keys    keyMap
	st      *styles
	fields  map[wizard.FocusKey]field
	spinner spinner.Model
	help    help.Model

	// Terminal dimensions
	width  int
	height int
}

// NewModel builds the renderer for ctrl. Fields the configuration does not
// ask for get no component.
func NewModel(ctrl *wizard.Controller, tr *i18n.Translator) Model {
	cfg := ctrl.Config()
	st := newStyles(cfg.Theme)
	keys := newKeyMap(tr)

	fields := map[wizard.FocusKey]field{
		wizard.TypeSelector: newTypeSelector(cfg.Types, cfg.UseEmoji, &st),
		wizard.SummarySelector: newTextField(wizard.SummarySelector, tr.T("summary"), "",
			true, maxSummaryLength, tr, &st),
	}
	if cfg.AskScope {
		if len(cfg.Scopes) > 0 {
			fields[wizard.ScopeSelector] = newScopeSelector(cfg.Scopes, &st)
		} else {
			fields[wizard.ScopeSelector] = newTextField(wizard.ScopeSelector, tr.T("scope"), "",
				false, maxScopeLength, tr, &st)
		}
	}
	if cfg.AskBody {
		fields[wizard.BodySelector] = newAreaField(wizard.BodySelector, tr.T("body"), "", keys.NewLine, tr, &st)
	}
	if cfg.AskFooter {
		fields[wizard.FooterSelector] = newAreaField(wizard.FooterSelector, tr.T("footer"), "", keys.NewLine, tr, &st)
	}
	if cfg.AskBreakingChange {
		fields[wizard.BreakingSelector] = &switchField{tr: tr, st: &st}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctrl:    ctrl,
		tr:      tr,
		keys:    keys,
		st:      &st,
		fields:  fields,
		spinner: s,
		help:    help.New(),
	}
}

// NewProgram creates a new Bubble Tea program with the given model.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Init is the Bubble Tea initialization command.
func (m Model) Init() tea.Cmd {
	return m.syncFocus()
}

// --- UPDATE ------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case commitDoneMsg:
		if m.ctrl.Resolve(msg.result) {
			if msg.result.Err != nil {
				log.Debug().Err(msg.result.Err).Msg("commit failed")
			} else {
				log.Debug().Str("hash", msg.result.Hash).Msg("commit created")
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Pending() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Cursor blinks and similar messages belong to the focused component.
	if f, ok := m.fields[m.ctrl.Focus()]; ok {
		cmd, _ := f.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.ctrl.Stage() == wizard.StageReview {
		if m.ctrl.Result() != nil && key.Matches(msg, m.keys.Exit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.ctrl.ToggleHelp()
		log.Debug().Str("stage", string(m.ctrl.Stage())).Msg("help toggled")
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.ctrl.Escape()
		log.Debug().Stringer("focus", m.ctrl.Focus()).Str("stage", string(m.ctrl.Stage())).Msg("escape")
		return m, m.syncFocus()
	}

	if m.ctrl.InHelp() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		if !m.ctrl.Next() {
			log.Debug().Stringer("focus", m.ctrl.Focus()).Msg("next step blocked")
			return m, nil
		}
		log.Debug().Stringer("focus", m.ctrl.Focus()).Str("stage", string(m.ctrl.Stage())).Msg("moved forward")
		return m, m.syncFocus()
	case key.Matches(msg, m.keys.Prev):
		if !m.ctrl.Prev() {
			log.Debug().Stringer("focus", m.ctrl.Focus()).Msg("previous step blocked")
			return m, nil
		}
		log.Debug().Stringer("focus", m.ctrl.Focus()).Str("stage", string(m.ctrl.Stage())).Msg("moved back")
		return m, m.syncFocus()
	}

	if m.ctrl.Focus() == wizard.ConfirmSelector {
		return m.handleConfirm(msg)
	}

	f, ok := m.fields[m.ctrl.Focus()]
	if !ok {
		return m, nil
	}
	cmd, sel := f.Update(msg)
	if sel != nil && m.ctrl.Select(*sel) {
		log.Debug().Stringer("field", sel.Focus).Stringer("focus", m.ctrl.Focus()).Msg("field selected")
		return m, tea.Batch(cmd, m.syncFocus())
	}
	return m, cmd
}

func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		dispatch, ok := m.ctrl.Confirm()
		if !ok {
			return m, nil
		}
		log.Debug().Str("message", m.ctrl.CommittedMessage()).Msg("commit confirmed")
		return m, tea.Batch(m.spinner.Tick, commitCmd(dispatch))
	case key.Matches(msg, m.keys.No):
		if m.ctrl.Cancel() {
			log.Debug().Stringer("focus", m.ctrl.Focus()).Str("stage", string(m.ctrl.Stage())).Msg("commit cancelled")
			return m, m.syncFocus()
		}
	}
	return m, nil
}

// syncFocus focuses the component of the focused step and blurs the rest.
func (m Model) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for k, f := range m.fields {
		if k == m.ctrl.Focus() {
			cmd = f.Focus()
			continue
		}
		f.Blur()
	}
	return cmd
}

func commitCmd(dispatch wizard.Dispatch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), CommitTimeout)
		defer cancel()
		return commitDoneMsg{result: dispatch(ctx)}
	}
}

// --- VIEWS -------------------------------------------------------------------

func (m Model) View() string {
	switch m.ctrl.Stage() {
	case wizard.StageHelp:
		return m.viewHelp()
	case wizard.StageReview:
		return m.viewReview()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader() + "\n\n")

	switch m.ctrl.Stage() {
	case wizard.StageTypeSetup:
		b.WriteString(m.st.label.Render(m.tr.T("Select the type of your commit (use arrows to move around, enter to select)")) + "\n")
		b.WriteString(m.fields[wizard.TypeSelector].View())
	case wizard.StageScopeSetup:
		b.WriteString(m.viewSummaryLine() + "\n\n")
		if _, ok := m.fields[wizard.ScopeSelector].(*selectorField); ok {
			b.WriteString(m.st.label.Render(m.tr.T("Select the scope of your commit (use arrows to move around, enter to select)")) + "\n")
		}
		b.WriteString(m.fields[wizard.ScopeSelector].View())
	case wizard.StageMessageSetup:
		b.WriteString(m.viewSummaryLine() + "\n\n")
		b.WriteString(m.viewMessageFields())
	case wizard.StageBreaking:
		b.WriteString(m.viewSummaryLine() + "\n\n")
		b.WriteString(m.fields[wizard.BreakingSelector].View())
	case wizard.StageConfirm:
		b.WriteString(m.viewConfirm())
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) viewHeader() string {
	if m.ctrl.Stage() == wizard.StageTypeSetup {
		return m.st.logo.Render(logoTextLarge) + "\n" +
			m.st.info.Render(m.tr.T("an interactive cli for creating conventional commits"))
	}
	return m.st.logo.Render(logoText)
}

// viewSummaryLine describes the commit chosen so far.
func (m Model) viewSummaryLine() string {
	cfg := m.ctrl.Config()
	d := m.ctrl.Draft()
	if d.Type == "" {
		return ""
	}
	line := m.tr.T("Creating a %{type} commit", "type", m.st.typeChip.Render(d.Type))
	if d.Scope.Value != "" {
		line += " " + m.tr.T("on scope %{scope}", "scope", m.st.scopeChip.Render(d.Scope.Value))
	}
	if t, ok := committypes.Find(cfg.Types, d.Type); ok {
		detail := t.Desc
		if cfg.UseEmoji && t.Emoji != "" {
			detail = strings.TrimSpace(t.Emoji + " " + detail)
		}
		if detail != "" {
			line += " " + m.st.subtle.Render("| "+detail)
		}
	}
	return line
}

// viewMessageFields shows summary, then body once the summary is accepted,
// then footer once the body is.
func (m Model) viewMessageFields() string {
	d := m.ctrl.Draft()
	var b strings.Builder
	b.WriteString(m.fields[wizard.SummarySelector].View())
	if f, ok := m.fields[wizard.BodySelector]; ok && (d.Summary.IsValid || m.ctrl.Focus() == wizard.BodySelector) {
		b.WriteString("\n" + f.View())
	}
	if f, ok := m.fields[wizard.FooterSelector]; ok && (d.Body.IsValid || m.ctrl.Focus() == wizard.FooterSelector) {
		b.WriteString("\n" + f.View())
	}
	return b.String()
}

func (m Model) boxWidth() int {
	if m.width == 0 {
		return 76
	}
	return max(min(m.width-4, 100), 20)
}

func (m Model) viewConfirm() string {
	box := m.st.commitBox.Width(m.boxWidth()).Render(m.ctrl.Preview())
	return box + "\n" + m.st.label.Render(m.tr.T("Commit this message?")) + " " +
		m.st.subtle.Render("(y/n)") + "\n"
}

func (m Model) viewReview() string {
	var b strings.Builder
	b.WriteString(m.st.logo.Render(logoText) + "\n\n")

	res := m.ctrl.Result()
	if res == nil {
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), m.tr.T("Committing...")))
		b.WriteString(m.st.commitBox.Width(m.boxWidth()).Render(m.ctrl.CommittedMessage()) + "\n")
		return b.String()
	}

	if res.Err != nil {
		b.WriteString(m.st.errorBox.Width(m.boxWidth()).Render(
			m.tr.T("Commit failed") + "\n\n" + res.Err.Error()))
	} else {
		b.WriteString(m.st.success.Render(m.tr.T("Commit created successfully!")) + "\n")
		info := []string{m.st.highlight.Render(res.Hash)}
		if res.Branch != "" {
			info = append(info, m.tr.T("on branch %{branch}", "branch", res.Branch))
		}
		if res.Author != "" {
			info = append(info, m.tr.T("by %{author}", "author", res.Author))
		}
		if !res.When.IsZero() {
			info = append(info, humanize.Time(res.When))
		}
		b.WriteString(m.st.info.Render(strings.Join(info, " ")) + "\n")
		b.WriteString(m.st.commitBox.Width(m.boxWidth()).Render(m.ctrl.CommittedMessage()))
	}
	b.WriteString("\n" + m.st.subtle.Render(m.tr.T("Press q to exit.")) + "\n")
	return b.String()
}

func (m Model) viewHelp() string {
	h := m.help
	h.ShowAll = true
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		m.st.label.Render(m.tr.T("General")), "  ", m.st.label.Render(m.tr.T("Fields")))
	return m.st.logo.Render(logoText) + "\n\n" + title + "\n" + h.View(m.keys) + "\n"
}
