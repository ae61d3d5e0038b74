package wizard

import (
	"strings"

	"github.com/renatogalera/coco/pkg/committypes"
	"github.com/renatogalera/coco/pkg/config"
)

// ValidatedValue is a field value together with the verdict of that field's
// validation rule for it. Both are always replaced together.
type ValidatedValue struct {
	Value   string
	IsValid bool
}

// Valid wraps an already accepted value.
func Valid(value string) ValidatedValue {
	return ValidatedValue{Value: value, IsValid: true}
}

// Draft is the field state of the commit being built. An empty Type means no
// type has been picked yet.
type Draft struct {
	Type     string
	Scope    ValidatedValue
	Summary  ValidatedValue
	Body     ValidatedValue
	Footer   ValidatedValue
	Breaking bool
}

// NewDraft returns the initial field state for cfg. Fields the configuration
// does not ask for start valid so the guard never blocks on them.
func NewDraft(cfg *config.Config) Draft {
	return Draft{
		Scope:  ValidatedValue{IsValid: !cfg.AskScope},
		Body:   ValidatedValue{IsValid: !cfg.AskBody},
		Footer: ValidatedValue{IsValid: !cfg.AskFooter},
	}
}

// Message collects what Compose needs from the draft and cfg.
func (d Draft) Message(cfg *config.Config) Message {
	m := Message{
		Type:     d.Type,
		Scope:    d.Scope.Value,
		Summary:  d.Summary.Value,
		Body:     d.Body.Value,
		Footer:   d.Footer.Value,
		Breaking: d.Breaking,
		UseEmoji: cfg.UseEmoji,
	}
	if t, ok := committypes.Find(cfg.Types, d.Type); ok {
		m.Emoji = t.Emoji
	}
	return m
}

// Selection is the single terminal event a field component emits when the
// user completes it.
type Selection struct {
	Focus    FocusKey
	Value    ValidatedValue
	Breaking bool
}

// TypeSelected is emitted by the type selector.
func TypeSelected(name string) Selection {
	return Selection{Focus: TypeSelector, Value: Valid(name)}
}

// RawSelected is emitted by components that only produce plain text; the
// value is accepted as valid.
func RawSelected(k FocusKey, raw string) Selection {
	return Selection{Focus: k, Value: Valid(raw)}
}

// ValueSelected is emitted by components that validated their own value.
func ValueSelected(k FocusKey, v ValidatedValue) Selection {
	return Selection{Focus: k, Value: v}
}

// BreakingSelected is emitted by the breaking change switch.
func BreakingSelected(breaking bool) Selection {
	return Selection{Focus: BreakingSelector, Breaking: breaking}
}

func sanitize(s string) string {
	return strings.TrimSpace(s)
}

// Focusable reports whether cfg lets the user land on k. Steps the
// configuration does not ask for are passed over when moving.
func Focusable(cfg *config.Config, k FocusKey) bool {
	switch k {
	case ScopeSelector:
		return cfg.AskScope
	case BodySelector:
		return cfg.AskBody
	case FooterSelector:
		return cfg.AskFooter
	case BreakingSelector:
		return cfg.AskBreakingChange
	}
	return true
}
