package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renatogalera/coco/pkg/config"
)

const (
	logoText      = `COCO`
	logoTextLarge = `╔═╗╔═╗╔═╗╔═╗
║  ║ ║║  ║ ║
╚═╝╚═╝╚═╝╚═╝`
)

type styles struct {
	logo      lipgloss.Style
	info      lipgloss.Style
	highlight lipgloss.Style
	subtle    lipgloss.Style
	label     lipgloss.Style
	input     lipgloss.Style
	scopeChip lipgloss.Style
	typeChip  lipgloss.Style
	commitBox lipgloss.Style
	errorBox  lipgloss.Style
	errorLine lipgloss.Style
	success   lipgloss.Style
}

func color(theme config.Theme, key, fallback string) lipgloss.Color {
	if c := theme.Get(key); c != "" {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(fallback)
}

func newStyles(theme config.Theme) styles {
	primary := color(theme, "primary", "#dcff3f")
	primaryFg := color(theme, "primary-fg", "#000000")

	return styles{
		logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true),
		highlight: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		label: lipgloss.NewStyle().
			Bold(true),
		input: lipgloss.NewStyle().
			Background(color(theme, "textarea:bg", "#050f21")).
			Foreground(color(theme, "textarea:fg", "#ffffff")).
			Padding(0, 1),
		scopeChip: lipgloss.NewStyle().
			Background(color(theme, "scope:bg", "#125acc")).
			Foreground(color(theme, "scope:fg", "#ffffff")).
			Padding(0, 1),
		typeChip: lipgloss.NewStyle().
			Background(primary).
			Foreground(primaryFg).
			Bold(true).
			Padding(0, 1),
		commitBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Margin(1, 1),
		errorBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Padding(1, 2).
			Margin(1, 1),
		errorLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
	}
}
