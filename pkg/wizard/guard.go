package wizard

// CanContinue reports whether the field governing step is settled, so focus
// may move forward. Skipped fields are seeded valid by NewDraft and need no
// special case here.
func CanContinue(step FocusKey, typ string, scope, summary, body, footer ValidatedValue) bool {
	switch step {
	case TypeSelector:
		return typ != ""
	case ScopeSelector:
		return scope.IsValid
	case SummarySelector:
		return summary.IsValid
	case BodySelector:
		return body.IsValid
	case FooterSelector:
		return footer.IsValid
	case BreakingSelector, ConfirmSelector:
		return true
	}
	return false
}

// CanGoBack reports whether focus may move back from step. The first step has
// nothing before it and the review step is final once a commit was attempted.
func CanGoBack(step FocusKey) bool {
	return step != TypeSelector && step != ReviewSelector
}
