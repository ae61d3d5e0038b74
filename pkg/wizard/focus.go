// Package wizard holds the commit wizard's state machine: the fixed step
// order, the step to stage mapping, the navigation guard, the field state and
// the commit message composer. It knows nothing about rendering.
package wizard

import "fmt"

// FocusKey identifies a step of the wizard. The declaration order is the
// traversal order.
type FocusKey int

const (
	TypeSelector FocusKey = iota
	ScopeSelector
	SummarySelector
	BodySelector
	FooterSelector
	BreakingSelector
	ConfirmSelector
	ReviewSelector
)

var focusNames = [...]string{
	TypeSelector:     "typeSelector",
	ScopeSelector:    "scopeSelector",
	SummarySelector:  "summarySelector",
	BodySelector:     "bodySelector",
	FooterSelector:   "footerSelector",
	BreakingSelector: "breakingSelector",
	ConfirmSelector:  "confirmSelector",
	ReviewSelector:   "reviewSelector",
}

// FocusKeys returns every step in traversal order.
func FocusKeys() []FocusKey {
	keys := make([]FocusKey, 0, len(focusNames))
	for k := TypeSelector; k <= ReviewSelector; k++ {
		keys = append(keys, k)
	}
	return keys
}

func (k FocusKey) String() string {
	if k < TypeSelector || k > ReviewSelector {
		return fmt.Sprintf("FocusKey(%d)", int(k))
	}
	return focusNames[k]
}

// Next returns the step after k, false on the last step.
func (k FocusKey) Next() (FocusKey, bool) {
	if k >= ReviewSelector {
		return k, false
	}
	return k + 1, true
}

// Prev returns the step before k, false on the first step.
func (k FocusKey) Prev() (FocusKey, bool) {
	if k <= TypeSelector {
		return k, false
	}
	return k - 1, true
}

// Stage is the visible section of the UI. Several steps share a stage.
type Stage string

const (
	StageTypeSetup    Stage = "type_setup"
	StageScopeSetup   Stage = "scope_setup"
	StageMessageSetup Stage = "message_setup"
	StageBreaking     Stage = "breaking"
	StageConfirm      Stage = "confirm"
	StageReview       Stage = "review"
	StageHelp         Stage = "help"
)

// Stages lists every stage value.
func Stages() []Stage {
	return []Stage{
		StageTypeSetup,
		StageScopeSetup,
		StageMessageSetup,
		StageBreaking,
		StageConfirm,
		StageReview,
		StageHelp,
	}
}

// StageFromFocused maps the focused step to the stage that shows it. It
// panics on a step without a mapping.
func StageFromFocused(k FocusKey) Stage {
	switch k {
	case TypeSelector:
		return StageTypeSetup
	case ScopeSelector:
		return StageScopeSetup
	case SummarySelector, BodySelector, FooterSelector:
		return StageMessageSetup
	case BreakingSelector:
		return StageBreaking
	case ConfirmSelector:
		return StageConfirm
	case ReviewSelector:
		return StageReview
	}
	panic(fmt.Sprintf("wizard: no stage mapped for %s", k))
}
