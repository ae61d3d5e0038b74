package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renatogalera/coco/pkg/i18n"
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Help    key.Binding
	Escape  key.Binding
	Quit    key.Binding
	Select  key.Binding
	Move    key.Binding
	NewLine key.Binding
	Toggle  key.Binding
	Yes     key.Binding
	No      key.Binding
	Exit    key.Binding
}

func newKeyMap(tr *i18n.Translator) keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", tr.T("next step")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", tr.T("previous step")),
		),
		Help: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", tr.T("toggle help")),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", tr.T("close help / refocus")),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", tr.T("quit")),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T("select")),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "k", "j", "h", "l"),
			key.WithHelp("←↑↓→", tr.T("move")),
		),
		NewLine: key.NewBinding(
			key.WithKeys("alt+enter", "ctrl+j"),
			key.WithHelp("alt+enter", tr.T("new line")),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", tr.T("toggle")),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", tr.T("commit")),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", tr.T("back to start")),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "enter"),
			key.WithHelp("q", tr.T("quit")),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Next, k.Prev, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Help, k.Escape, k.Quit},
		{k.Select, k.Move, k.NewLine, k.Toggle, k.Yes, k.No},
	}
}
