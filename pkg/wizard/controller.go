package wizard

import (
	"context"
	"time"

	"github.com/renatogalera/coco/pkg/committypes"
	"github.com/renatogalera/coco/pkg/config"
)

// CommitResult is the outcome of the commit operation. It is written once and
// never changed afterwards.
type CommitResult struct {
	Hash   string
	Branch string
	Author string
	Email  string
	When   time.Time
	Err    error
}

// Committer performs the commit for a composed message.
type Committer interface {
	Commit(ctx context.Context, message string) CommitResult
}

// CommitterFunc adapts a function to Committer.
type CommitterFunc func(ctx context.Context, message string) CommitResult

func (f CommitterFunc) Commit(ctx context.Context, message string) CommitResult {
	return f(ctx, message)
}

// Dispatch runs the commit for a confirmed message. It is meant to run off
// the input loop; its result goes back through Controller.Resolve.
type Dispatch func(ctx context.Context) CommitResult

// Controller is the single owner of the wizard state. Renderers read it and
// report user input through its methods; nothing else mutates the draft.
type Controller struct {
	cfg       *config.Config
	committer Committer

	draft     Draft
	focus     FocusKey
	stage     Stage
	prevStage Stage

	message    string
	dispatched bool
	result     *CommitResult
}

func NewController(cfg *config.Config, committer Committer) *Controller {
	return &Controller{
		cfg:       cfg,
		committer: committer,
		draft:     NewDraft(cfg),
		focus:     TypeSelector,
		stage:     StageTypeSetup,
	}
}

func (c *Controller) Config() *config.Config { return c.cfg }
func (c *Controller) Draft() Draft           { return c.draft }
func (c *Controller) Focus() FocusKey        { return c.focus }
func (c *Controller) Stage() Stage           { return c.stage }

// InHelp reports whether the help overlay is shown.
func (c *Controller) InHelp() bool { return c.stage == StageHelp }

// Pending reports whether the commit was dispatched and has not resolved yet.
func (c *Controller) Pending() bool { return c.dispatched && c.result == nil }

// Result returns the commit outcome, nil while none is known.
func (c *Controller) Result() *CommitResult { return c.result }

// CommittedMessage is the message handed to the committer, "" before confirm.
func (c *Controller) CommittedMessage() string { return c.message }

// Preview composes the message from the current draft.
func (c *Controller) Preview() string {
	return Compose(c.draft.Message(c.cfg))
}

// CanContinue applies the guard to the current focus and draft.
func (c *Controller) CanContinue() bool {
	d := c.draft
	return CanContinue(c.focus, d.Type, d.Scope, d.Summary, d.Body, d.Footer)
}

// Next moves focus forward when the guard allows it. A denied move is a no-op.
// The review step is only reachable through Confirm.
func (c *Controller) Next() bool {
	if c.stage == StageReview || c.stage == StageHelp {
		return false
	}
	if !c.CanContinue() {
		return false
	}
	next, ok := c.nextFocusable(c.focus)
	if !ok || next == ReviewSelector {
		return false
	}
	c.setFocus(next)
	return true
}

// Prev moves focus back when the guard allows it.
func (c *Controller) Prev() bool {
	if c.stage == StageReview || c.stage == StageHelp {
		return false
	}
	if !CanGoBack(c.focus) {
		return false
	}
	prev, ok := c.prevFocusable(c.focus)
	if !ok {
		return false
	}
	c.setFocus(prev)
	return true
}

// ToggleHelp enters the help overlay, or leaves it restoring the stage that
// was visible before.
func (c *Controller) ToggleHelp() {
	switch c.stage {
	case StageReview:
		return
	case StageHelp:
		c.stage = c.prevStage
	default:
		c.prevStage = c.stage
		c.stage = StageHelp
	}
}

// Escape leaves the help overlay, otherwise re-syncs the stage with the
// focused step.
func (c *Controller) Escape() {
	switch c.stage {
	case StageReview:
		return
	case StageHelp:
		c.stage = c.prevStage
	default:
		c.stage = StageFromFocused(c.focus)
	}
}

// Select stores a field's terminal value and advances focus by one step. It
// is ignored unless sel belongs to the focused step.
func (c *Controller) Select(sel Selection) bool {
	if c.stage == StageHelp || sel.Focus != c.focus {
		return false
	}
	switch sel.Focus {
	case TypeSelector:
		name := sanitize(sel.Value.Value)
		if !committypes.IsValidCommitType(c.cfg.Types, name) {
			return false
		}
		c.draft.Type = name
	case ScopeSelector:
		c.draft.Scope = ValidatedValue{Value: sanitize(sel.Value.Value), IsValid: sel.Value.IsValid}
	case SummarySelector:
		c.draft.Summary = ValidatedValue{Value: sanitize(sel.Value.Value), IsValid: sel.Value.IsValid}
	case BodySelector:
		c.draft.Body = ValidatedValue{Value: sanitize(sel.Value.Value), IsValid: sel.Value.IsValid}
	case FooterSelector:
		c.draft.Footer = ValidatedValue{Value: sanitize(sel.Value.Value), IsValid: sel.Value.IsValid}
	case BreakingSelector:
		c.draft.Breaking = sel.Breaking
	default:
		return false
	}
	if next, ok := c.nextFocusable(c.focus); ok && next != ReviewSelector {
		c.setFocus(next)
	}
	return true
}

// Confirm moves to the review step, composes the message and returns the
// dispatch that performs the commit. It succeeds at most once and only from
// the confirm step.
func (c *Controller) Confirm() (Dispatch, bool) {
	if c.focus != ConfirmSelector || c.stage != StageConfirm || c.dispatched {
		return nil, false
	}
	c.setFocus(ReviewSelector)
	c.message = c.Preview()
	c.dispatched = true

	message, committer := c.message, c.committer
	return func(ctx context.Context) CommitResult {
		return committer.Commit(ctx, message)
	}, true
}

// Cancel sends focus back to the first step, keeping every answer.
func (c *Controller) Cancel() bool {
	if c.focus != ConfirmSelector || c.stage != StageConfirm {
		return false
	}
	c.setFocus(TypeSelector)
	return true
}

// Resolve stores the commit outcome. Only the first outcome of a dispatched
// commit is kept.
func (c *Controller) Resolve(res CommitResult) bool {
	if !c.dispatched || c.result != nil {
		return false
	}
	c.result = &res
	return true
}

func (c *Controller) setFocus(k FocusKey) {
	c.focus = k
	c.stage = StageFromFocused(k)
}

func (c *Controller) nextFocusable(k FocusKey) (FocusKey, bool) {
	for {
		next, ok := k.Next()
		if !ok {
			return k, false
		}
		if Focusable(c.cfg, next) {
			return next, true
		}
		k = next
	}
}

func (c *Controller) prevFocusable(k FocusKey) (FocusKey, bool) {
	for {
		prev, ok := k.Prev()
		if !ok {
			return k, false
		}
		if Focusable(c.cfg, prev) {
			return prev, true
		}
		k = prev
	}
}
