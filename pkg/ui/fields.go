package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renatogalera/coco/pkg/committypes"
	"github.com/renatogalera/coco/pkg/i18n"
	"github.com/renatogalera/coco/pkg/wizard"
)

const (
	maxScopeLength   = 20
	maxSummaryLength = 72
)

// field is one step of the wizard. Update returns a selection once the user
// completes the step.
type field interface {
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) (tea.Cmd, *wizard.Selection)
	View() string
}

// selectorField picks one of a fixed list of options.
type selectorField struct {
	key     wizard.FocusKey
	options []string
	details []string
	cursor  int
	focused bool
	st      *styles
}

func newTypeSelector(types []committypes.CommitType, useEmoji bool, st *styles) *selectorField {
	f := &selectorField{key: wizard.TypeSelector, options: committypes.Names(types), st: st}
	for _, t := range types {
		detail := t.Desc
		if useEmoji && t.Emoji != "" {
			detail = strings.TrimSpace(t.Emoji + " " + detail)
		}
		f.details = append(f.details, detail)
	}
	return f
}

func newScopeSelector(scopes []string, st *styles) *selectorField {
	return &selectorField{key: wizard.ScopeSelector, options: scopes, st: st}
}

func (f *selectorField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *selectorField) Blur() { f.focused = false }

func (f *selectorField) Update(msg tea.Msg) (tea.Cmd, *wizard.Selection) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(f.options) == 0 {
		return nil, nil
	}
	switch km.String() {
	case "up", "k", "left", "h":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j", "right", "l":
		if f.cursor < len(f.options)-1 {
			f.cursor++
		}
	case "enter":
		var sel wizard.Selection
		if f.key == wizard.TypeSelector {
			sel = wizard.TypeSelected(f.options[f.cursor])
		} else {
			sel = wizard.RawSelected(f.key, f.options[f.cursor])
		}
		return nil, &sel
	}
	return nil, nil
}

func (f *selectorField) View() string {
	var b strings.Builder
	for i, opt := range f.options {
		line := "  " + opt
		if i == f.cursor {
			line = f.st.highlight.Render("> " + opt)
			if f.focused && i < len(f.details) && f.details[i] != "" {
				line += " " + f.st.info.Render(f.details[i])
			}
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// textField is a single line input with optional length and presence rules.
type textField struct {
	key      wizard.FocusKey
	label    string
	input    textinput.Model
	required bool
	max      int
	err      string
	tr       *i18n.Translator
	st       *styles
}

func newTextField(k wizard.FocusKey, label, placeholder string, required bool, max int, tr *i18n.Translator, st *styles) *textField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Width = max
	return &textField{key: k, label: label, input: ti, required: required, max: max, tr: tr, st: st}
}

func (f *textField) Focus() tea.Cmd { return f.input.Focus() }
func (f *textField) Blur()          { f.input.Blur() }

// validate returns the translated rule violation for value, "" when valid.
func (f *textField) validate(value string) string {
	value = strings.TrimSpace(value)
	if f.required && value == "" {
		return f.tr.T("This field is required")
	}
	if f.max > 0 && utf8.RuneCountInString(value) > f.max {
		return f.tr.T("At most %{max} characters", "max", fmt.Sprint(f.max))
	}
	return ""
}

func (f *textField) Update(msg tea.Msg) (tea.Cmd, *wizard.Selection) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEnter {
		value := f.input.Value()
		if f.err = f.validate(value); f.err != "" {
			return nil, nil
		}
		sel := wizard.ValueSelected(f.key, wizard.Valid(value))
		return nil, &sel
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.err != "" {
		f.err = f.validate(f.input.Value())
	}
	return cmd, nil
}

func (f *textField) View() string {
	var b strings.Builder
	b.WriteString(f.st.label.Render(f.label))
	if f.required {
		b.WriteString(" " + f.st.subtle.Render(f.tr.T("* required")))
	} else {
		b.WriteString(" " + f.st.subtle.Render("("+f.tr.T("optional")+")"))
	}
	b.WriteString("\n" + f.st.input.Render(f.input.View()) + "\n")
	if f.err != "" {
		b.WriteString(f.st.errorLine.Render(f.err) + "\n")
	}
	return b.String()
}

// areaField is a multi line input. Enter submits; the newline binding
// inserts a line break.
type areaField struct {
	key   wizard.FocusKey
	label string
	area  textarea.Model
	tr    *i18n.Translator
	st    *styles
}

func newAreaField(k wizard.FocusKey, label, placeholder string, newline key.Binding, tr *i18n.Translator, st *styles) *areaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(4)
	ta.KeyMap.InsertNewline.SetKeys(newline.Keys()...)
	return &areaField{key: k, label: label, area: ta, tr: tr, st: st}
}

func (f *areaField) Focus() tea.Cmd { return f.area.Focus() }
func (f *areaField) Blur()          { f.area.Blur() }

func (f *areaField) Update(msg tea.Msg) (tea.Cmd, *wizard.Selection) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEnter && !km.Alt {
		sel := wizard.ValueSelected(f.key, wizard.Valid(f.area.Value()))
		return nil, &sel
	}
	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	return cmd, nil
}

func (f *areaField) View() string {
	return f.st.label.Render(f.label) + " " +
		f.st.subtle.Render("("+f.tr.T("optional")+")") + "\n" +
		f.area.View() + "\n"
}

// switchField answers the breaking change question.
type switchField struct {
	value bool
	tr    *i18n.Translator
	st    *styles
}

func (f *switchField) Focus() tea.Cmd { return nil }
func (f *switchField) Blur()          {}

func (f *switchField) Update(msg tea.Msg) (tea.Cmd, *wizard.Selection) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	switch km.String() {
	case " ", "left", "right", "h", "l":
		f.value = !f.value
	case "y":
		f.value = true
	case "n":
		f.value = false
	case "enter":
		sel := wizard.BreakingSelected(f.value)
		return nil, &sel
	}
	return nil, nil
}

func (f *switchField) View() string {
	yes, no := f.tr.T("yes"), f.tr.T("no")
	if f.value {
		yes = f.st.typeChip.Render(yes)
		no = f.st.subtle.Render(no)
	} else {
		yes = f.st.subtle.Render(yes)
		no = f.st.typeChip.Render(no)
	}
	return f.st.label.Render(f.tr.T("Is this a breaking change?")) + "\n" + no + " " + yes + "\n"
}
