package wizard

import "strings"

// Message is the input of Compose.
type Message struct {
	Type     string
	Scope    string
	Summary  string
	Body     string
	Footer   string
	Emoji    string
	Breaking bool
	UseEmoji bool
}

// Compose renders m as a conventional commit message:
//
//	type(scope)!: emoji summary
//
//	body
//
//	footer
func Compose(m Message) string {
	var b strings.Builder
	b.WriteString(m.Type)
	if m.Scope != "" {
		b.WriteString("(" + m.Scope + ")")
	}
	if m.Breaking {
		b.WriteString("!")
	}
	b.WriteString(":")
	if m.UseEmoji {
		b.WriteString(" " + m.Emoji)
	}
	b.WriteString(" " + m.Summary)
	if m.Body != "" {
		b.WriteString("\n\n" + m.Body)
	}
	if m.Footer != "" {
		b.WriteString("\n\n" + m.Footer)
	}
	return b.String()
}
