package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renatogalera/coco/pkg/config"
)

type recordingCommitter struct {
	messages []string
	result   CommitResult
}

func (r *recordingCommitter) Commit(_ context.Context, message string) CommitResult {
	r.messages = append(r.messages, message)
	return r.result
}

func newTestController(t *testing.T, mutate func(*config.Config)) (*Controller, *recordingCommitter) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	rec := &recordingCommitter{result: CommitResult{Hash: "abc1234", Branch: "main"}}
	return NewController(cfg, rec), rec
}

func fillToConfirm(t *testing.T, c *Controller) {
	t.Helper()
	require.True(t, c.Select(TypeSelected("feat")))
	if c.Focus() == ScopeSelector {
		require.True(t, c.Select(RawSelected(ScopeSelector, "")))
	}
	require.True(t, c.Select(ValueSelected(SummarySelector, Valid("add login"))))
	if c.Focus() == BodySelector {
		require.True(t, c.Select(ValueSelected(BodySelector, Valid(""))))
	}
	if c.Focus() == FooterSelector {
		require.True(t, c.Select(ValueSelected(FooterSelector, Valid(""))))
	}
	if c.Focus() == BreakingSelector {
		require.True(t, c.Select(BreakingSelected(false)))
	}
	require.Equal(t, ConfirmSelector, c.Focus())
}

func TestControllerInitialState(t *testing.T) {
	c, _ := newTestController(t, nil)

	assert.Equal(t, TypeSelector, c.Focus())
	assert.Equal(t, StageTypeSetup, c.Stage())
	assert.False(t, c.InHelp())
	assert.False(t, c.Pending())
	assert.Nil(t, c.Result())

	d := c.Draft()
	assert.Empty(t, d.Type)
	assert.False(t, d.Scope.IsValid)
	assert.False(t, d.Summary.IsValid)
	assert.False(t, d.Body.IsValid)
	assert.False(t, d.Footer.IsValid)
	assert.False(t, d.Breaking)
}

func TestControllerNextIsSoftBlockedUntilFieldIsValid(t *testing.T) {
	c, _ := newTestController(t, nil)

	assert.False(t, c.Next())
	assert.Equal(t, TypeSelector, c.Focus())

	require.True(t, c.Select(TypeSelected("feat")))
	assert.Equal(t, ScopeSelector, c.Focus())
	assert.Equal(t, StageScopeSetup, c.Stage())

	assert.False(t, c.Next(), "scope was never emitted")
	assert.True(t, c.Prev())
	assert.Equal(t, TypeSelector, c.Focus())
	assert.True(t, c.Next(), "type is already chosen")
	assert.Equal(t, ScopeSelector, c.Focus())
}

func TestControllerSelectSanitizesAndAdvances(t *testing.T) {
	c, _ := newTestController(t, nil)

	require.True(t, c.Select(TypeSelected("fix")))
	require.True(t, c.Select(RawSelected(ScopeSelector, "  auth \n")))
	assert.Equal(t, Valid("auth"), c.Draft().Scope)
	assert.Equal(t, SummarySelector, c.Focus())
	assert.Equal(t, StageMessageSetup, c.Stage())

	require.True(t, c.Select(ValueSelected(SummarySelector, Valid("\tnull check  "))))
	assert.Equal(t, "null check", c.Draft().Summary.Value)
	assert.Equal(t, BodySelector, c.Focus())
	assert.Equal(t, StageMessageSetup, c.Stage())
}

func TestControllerRejectsOutOfOrderSelection(t *testing.T) {
	c, _ := newTestController(t, nil)

	assert.False(t, c.Select(ValueSelected(SummarySelector, Valid("too early"))))
	assert.Empty(t, c.Draft().Summary.Value)
	assert.Equal(t, TypeSelector, c.Focus())
}

func TestControllerRejectsUnknownType(t *testing.T) {
	c, _ := newTestController(t, nil)

	assert.False(t, c.Select(TypeSelected("nope")))
	assert.Empty(t, c.Draft().Type)
	assert.Equal(t, TypeSelector, c.Focus())
}

func TestControllerReselectReplacesValue(t *testing.T) {
	c, _ := newTestController(t, nil)
	require.True(t, c.Select(TypeSelected("feat")))
	require.True(t, c.Select(RawSelected(ScopeSelector, "api")))

	require.True(t, c.Prev())
	require.Equal(t, ScopeSelector, c.Focus())
	require.True(t, c.Select(ValueSelected(ScopeSelector, ValidatedValue{Value: "cli", IsValid: true})))

	assert.Equal(t, Valid("cli"), c.Draft().Scope)
	assert.Equal(t, SummarySelector, c.Focus())
}

func TestControllerSkipsDisabledScope(t *testing.T) {
	c, _ := newTestController(t, func(cfg *config.Config) { cfg.AskScope = false })

	assert.True(t, c.Draft().Scope.IsValid)
	require.True(t, c.Select(TypeSelected("feat")))
	assert.Equal(t, SummarySelector, c.Focus())

	require.True(t, c.Prev())
	assert.Equal(t, TypeSelector, c.Focus())
}

func TestControllerNeverBlocksOnDisabledScope(t *testing.T) {
	for _, value := range []string{"", "anything", "   "} {
		c, _ := newTestController(t, func(cfg *config.Config) { cfg.AskScope = false })
		c.draft.Type = "feat"
		c.draft.Scope.Value = value
		c.setFocus(ScopeSelector)

		assert.True(t, c.CanContinue())
		assert.True(t, c.Next(), "value %q", value)
		assert.Equal(t, SummarySelector, c.Focus())
	}
}

func TestControllerSkipsDisabledOptionalSteps(t *testing.T) {
	c, _ := newTestController(t, func(cfg *config.Config) {
		cfg.AskBody = false
		cfg.AskFooter = false
		cfg.AskBreakingChange = false
	})

	require.True(t, c.Select(TypeSelected("feat")))
	require.True(t, c.Select(RawSelected(ScopeSelector, "")))
	require.True(t, c.Select(ValueSelected(SummarySelector, Valid("add login"))))
	assert.Equal(t, ConfirmSelector, c.Focus())

	require.True(t, c.Prev())
	assert.Equal(t, SummarySelector, c.Focus())
}

func TestControllerTabNeverEntersReview(t *testing.T) {
	c, rec := newTestController(t, nil)
	fillToConfirm(t, c)

	assert.False(t, c.Next())
	assert.Equal(t, ConfirmSelector, c.Focus())
	assert.Empty(t, rec.messages)
}

func TestControllerHelpOverlay(t *testing.T) {
	c, _ := newTestController(t, nil)
	require.True(t, c.Select(TypeSelected("feat")))

	c.ToggleHelp()
	assert.Equal(t, StageHelp, c.Stage())
	assert.True(t, c.InHelp())

	assert.False(t, c.Prev(), "navigation is inert while help is shown")
	assert.False(t, c.Next())
	assert.False(t, c.Select(RawSelected(ScopeSelector, "x")))
	assert.Equal(t, ScopeSelector, c.Focus())

	c.ToggleHelp()
	assert.Equal(t, StageScopeSetup, c.Stage())

	c.ToggleHelp()
	c.Escape()
	assert.Equal(t, StageScopeSetup, c.Stage())
}

func TestControllerEscapeResyncsStage(t *testing.T) {
	c, _ := newTestController(t, nil)
	c.stage = StageConfirm

	c.Escape()
	assert.Equal(t, StageTypeSetup, c.Stage())
	assert.Equal(t, TypeSelector, c.Focus())
}

func TestControllerConfirmCommitsOnce(t *testing.T) {
	c, rec := newTestController(t, nil)
	fillToConfirm(t, c)

	dispatch, ok := c.Confirm()
	require.True(t, ok)
	assert.Equal(t, ReviewSelector, c.Focus())
	assert.Equal(t, StageReview, c.Stage())
	assert.True(t, c.Pending())
	assert.Equal(t, "feat: add login", c.CommittedMessage())

	_, again := c.Confirm()
	assert.False(t, again)

	res := dispatch(context.Background())
	assert.Equal(t, []string{"feat: add login"}, rec.messages)

	require.True(t, c.Resolve(res))
	assert.False(t, c.Pending())
	require.NotNil(t, c.Result())
	assert.Equal(t, "abc1234", c.Result().Hash)

	assert.False(t, c.Resolve(CommitResult{Err: errors.New("late")}))
	assert.NoError(t, c.Result().Err)
}

func TestControllerReviewIsTerminal(t *testing.T) {
	c, rec := newTestController(t, nil)
	rec.result = CommitResult{Err: errors.New("hook rejected")}
	fillToConfirm(t, c)

	dispatch, ok := c.Confirm()
	require.True(t, ok)
	require.True(t, c.Resolve(dispatch(context.Background())))

	assert.False(t, c.Prev())
	assert.False(t, c.Next())
	assert.False(t, c.Cancel())
	c.ToggleHelp()
	c.Escape()
	assert.Equal(t, StageReview, c.Stage())
	assert.Equal(t, ReviewSelector, c.Focus())
	assert.EqualError(t, c.Result().Err, "hook rejected")
}

func TestControllerResolveWithoutDispatchIsIgnored(t *testing.T) {
	c, _ := newTestController(t, nil)
	assert.False(t, c.Resolve(CommitResult{Hash: "x"}))
	assert.Nil(t, c.Result())
}

func TestControllerConfirmOnlyFromConfirmStep(t *testing.T) {
	c, rec := newTestController(t, nil)
	_, ok := c.Confirm()
	assert.False(t, ok)
	assert.False(t, c.Cancel())
	assert.Empty(t, rec.messages)
}

func TestControllerCancelKeepsAnswers(t *testing.T) {
	c, rec := newTestController(t, func(cfg *config.Config) { cfg.UseEmoji = true })
	require.True(t, c.Select(TypeSelected("fix")))
	require.True(t, c.Select(RawSelected(ScopeSelector, "auth")))
	require.True(t, c.Select(ValueSelected(SummarySelector, Valid("null check"))))
	require.True(t, c.Select(ValueSelected(BodySelector, Valid("details"))))
	require.True(t, c.Select(ValueSelected(FooterSelector, Valid("Closes #1"))))
	require.True(t, c.Select(BreakingSelected(true)))
	before := c.Preview()

	require.True(t, c.Cancel())
	assert.Equal(t, TypeSelector, c.Focus())
	assert.Equal(t, StageTypeSetup, c.Stage())
	assert.Equal(t, "fix", c.Draft().Type)

	for c.Focus() != ConfirmSelector {
		require.True(t, c.Next(), "blocked at %s", c.Focus())
	}
	dispatch, ok := c.Confirm()
	require.True(t, ok)
	dispatch(context.Background())

	assert.Equal(t, before, c.CommittedMessage())
	assert.Equal(t, []string{"fix(auth)!: 🚑 null check\n\ndetails\n\nCloses #1"}, rec.messages)
}
