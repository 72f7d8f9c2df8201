package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"portfolio/content"
	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGenerator returns a canned answer and records prompts.
type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	calls   int32
	prompts []string
	// gate, when set, blocks GenerateContent until it is closed.
	gate chan struct{}
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) GetStatus() map[string]interface{} {
	return map[string]interface{}{"calls": atomic.LoadInt32(&f.calls)}
}

func (f *fakeGenerator) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}

func (f *fakeGenerator) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func newTestSite(gen Generator, overrides map[string]models.Fallbacks) *Site {
	lookup := func(slug, action string) models.Fallbacks {
		return overrides[actionKey(slug, action)]
	}
	return NewSite(NewGateway(gen, zap.NewNop()), lookup, zap.NewNop())
}

func TestEmptyInputNeverCallsGenerator(t *testing.T) {
	cases := []struct {
		slug, action string
		in           models.ActionRequest
		message      string
	}{
		{"lester-wright-sr-the-man-who-outran-time", "ask", models.ActionRequest{Input: "   "}, "Please enter a question."},
		{"ageless-velocity", "ask", models.ActionRequest{}, "Please enter a question."},
		{"sleep-for-active-folk", "debunk", models.ActionRequest{Input: "\n\t"}, "Please type your sleep question or myth first."},
		{"secret-life-of-the-fishers-cottontail", "garden", models.ActionRequest{}, "Please describe your garden problem first."},
		{"secret-life-of-the-fishers-cottontail", "podcast", models.ActionRequest{}, "Please select a topic first."},
		{"diaphragmatic-breathing-ai", "plan", models.ActionRequest{Duration: "5"}, "Please select at least one goal."},
		{"endocannabinoid-system-curriculum-infographic", "chat", models.ActionRequest{Input: " "}, "Please type a question first."},
		{"nss-natural-short-sleep-ai", "ask", models.ActionRequest{}, "Please enter a question."},
		{"making-sense-of-statistics", "translate", models.ActionRequest{Input: " "}, "Please paste a statistical finding first."},
		{"making-sense-of-statistics", "risk", models.ActionRequest{Input: "40% higher risk"}, "Please fill in both fields."},
		{"making-sense-of-statistics", "risk", models.ActionRequest{Context: "1 in 1000"}, "Please fill in both fields."},
		{"skeptics-guide-to-statistics", "deconstruct", models.ActionRequest{Input: "Coffee cures all", Context: "  "}, "Please enter a headline and the real statistic."},
		{"skeptics-guide-to-statistics", "flaw", models.ActionRequest{Item: "1"}, "Please pick the flaw you spotted."},
		{"skeptics-guide-to-statistics", "flaw", models.ActionRequest{Choice: "Biased Sample"}, "Please choose an item first."},
		{"scientific-study-infographic", "simplify", models.ActionRequest{}, "Please enter some text to simplify."},
		{"scientific-study-infographic", "bias", models.ActionRequest{Item: "2"}, "Please pick the most likely issue."},
		{"enduring-power-of-hoodoo", "inspiration", models.ActionRequest{Input: "\n"}, "Please describe an intention first."},
		{"sacred-act-of-burning-hair", "ask", models.ActionRequest{Item: "Baluba (Death Rituals)"}, "Please enter a question."},
	}
	for _, tc := range cases {
		t.Run(tc.slug+"/"+tc.action, func(t *testing.T) {
			gen := &fakeGenerator{text: "should not be used"}
			site := newTestSite(gen, nil)

			var phases []Phase
			res, err := site.Run(context.Background(), tc.slug, tc.action, tc.in, func(p Phase, _ models.GenerationState) {
				phases = append(phases, p)
			})

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.message, vErr.Message)
			assert.Equal(t, 0, gen.Calls())
			assert.Equal(t, []Phase{PhaseIdle}, phases)
			assert.False(t, res.State.IsLoading)
			require.NotNil(t, res.State.Error)
			assert.Equal(t, tc.message, *res.State.Error)
			assert.Nil(t, res.State.Result)
		})
	}
}

func TestUnknownOptionsAreRejected(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	site := newTestSite(gen, nil)
	ctx := context.Background()

	_, err := site.Run(ctx, "ageless-athletes", "insight", models.ActionRequest{Item: "Nobody"}, nil)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = site.Run(ctx, "diaphragmatic-breathing-ai", "plan", models.ActionRequest{Goals: []string{"Flying"}}, nil)
	assert.ErrorAs(t, err, &vErr)

	_, err = site.Run(ctx, "diaphragmatic-breathing-ai", "plan", models.ActionRequest{Goals: []string{"Better Sleep"}, Duration: "45"}, nil)
	assert.ErrorAs(t, err, &vErr)

	_, err = site.Run(ctx, "secret-life-of-the-fishers-cottontail", "podcast", models.ActionRequest{Choice: "dragons"}, nil)
	assert.ErrorAs(t, err, &vErr)

	_, err = site.Run(ctx, "sacred-act-of-burning-hair", "ask", models.ActionRequest{Item: "Atlantis", Input: "Why burn it?"}, nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, `Unknown item "Atlantis".`, vErr.Message)

	_, err = site.Run(ctx, "skeptics-guide-to-statistics", "flaw", models.ActionRequest{Item: "9", Choice: "Biased Sample"}, nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, `Unknown item "9".`, vErr.Message)

	_, err = site.Run(ctx, "skeptics-guide-to-statistics", "flaw", models.ActionRequest{Item: "1", Choice: "Bad Vibes"}, nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, `Unknown answer "Bad Vibes".`, vErr.Message)

	_, err = site.Run(ctx, "interactive-indiana-corvid-species-analysis", "myth", models.ActionRequest{Item: "Crows are fish."}, nil)
	assert.ErrorAs(t, err, &vErr)

	assert.Equal(t, 0, gen.Calls())
}

func TestRunNotFound(t *testing.T) {
	site := newTestSite(&fakeGenerator{}, nil)

	_, err := site.Run(context.Background(), "no-such-page", "ask", models.ActionRequest{}, nil)
	assert.ErrorIs(t, err, ErrPageNotFound)

	_, err = site.Run(context.Background(), "ageless-athletes", "nope", models.ActionRequest{}, nil)
	assert.ErrorIs(t, err, ErrActionNotFound)
}

func TestRunSettlesWithResult(t *testing.T) {
	gen := &fakeGenerator{text: "  Keep moving!  "}
	site := newTestSite(gen, nil)

	res, err := site.Run(context.Background(), "ageless-athletes", "insight", models.ActionRequest{Item: "Orville Rogers"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.Calls())
	assert.Contains(t, gen.LastPrompt(), "Orville Rogers")
	require.NotNil(t, res.State.Result)
	assert.Equal(t, "  Keep moving!  ", *res.State.Result)
	assert.Nil(t, res.State.Error)
	assert.False(t, res.Outcome.Fallback)
}

func TestPlanDefaultsDuration(t *testing.T) {
	gen := &fakeGenerator{text: "plan"}
	site := newTestSite(gen, nil)

	_, err := site.Run(context.Background(), "diaphragmatic-breathing-ai", "plan",
		models.ActionRequest{Goals: []string{"Stress Reduction", "Better Sleep"}}, nil)
	require.NoError(t, err)
	assert.Contains(t, gen.LastPrompt(), "Stress Reduction, Better Sleep")
	assert.Contains(t, gen.LastPrompt(), "approximately 10 minutes")
}

func TestFallbackPlacement(t *testing.T) {
	gen := &fakeGenerator{err: &StatusError{Code: 500}}
	site := newTestSite(gen, nil)
	ctx := context.Background()

	// Result slot.
	res, err := site.Run(ctx, "ageless-velocity", "insights", models.ActionRequest{}, nil)
	require.NoError(t, err)
	require.NotNil(t, res.State.Result)
	assert.Equal(t, "Error: Could not connect to the insight service. Please check your connection and try again.", *res.State.Result)
	assert.Nil(t, res.State.Error)

	// Error slot.
	res, err = site.Run(ctx, "sleep-for-active-folk", "debunk", models.ActionRequest{Input: "Do I need 8 hours?"}, nil)
	require.NoError(t, err)
	assert.Nil(t, res.State.Result)
	require.NotNil(t, res.State.Error)
	assert.Equal(t, "An unexpected error occurred. Please try again.", *res.State.Error)
}

func TestOverridesReplacePageFallbacks(t *testing.T) {
	gen := &fakeGenerator{err: ErrUnexpectedResponse}
	site := newTestSite(gen, map[string]models.Fallbacks{
		"ageless-velocity/insights": {Unexpected: "custom empty"},
	})

	res, err := site.Run(context.Background(), "ageless-velocity", "insights", models.ActionRequest{}, nil)
	require.NoError(t, err)
	require.NotNil(t, res.State.Result)
	assert.Equal(t, "custom empty", *res.State.Result)
}

func TestBlockedReasonIsAppended(t *testing.T) {
	gen := &fakeGenerator{err: &BlockedError{Reason: "SAFETY"}}
	site := newTestSite(gen, nil)

	res, err := site.Run(context.Background(), "lester-wright-sr-the-man-who-outran-time", "ask",
		models.ActionRequest{Input: "How fast was he?"}, nil)
	require.NoError(t, err)
	require.NotNil(t, res.State.Error)
	assert.Equal(t, "Your request was blocked. Reason: SAFETY", *res.State.Error)
}

func TestBlockedReasonIsWrapped(t *testing.T) {
	gen := &fakeGenerator{err: &BlockedError{Reason: "SAFETY"}}
	site := newTestSite(gen, nil)

	res, err := site.Run(context.Background(), "nss-natural-short-sleep-ai", "ask",
		models.ActionRequest{Input: "Can I sleep four hours?"}, nil)
	require.NoError(t, err)
	assert.Nil(t, res.State.Error)
	require.NotNil(t, res.State.Result)
	assert.Equal(t, "Blocked: SAFETY. Please rephrase.", *res.State.Result)
}

func TestTwoActionPagesDispatchByAction(t *testing.T) {
	gen := &fakeGenerator{text: "plain english"}
	site := newTestSite(gen, nil)
	ctx := context.Background()

	_, err := site.Run(ctx, "making-sense-of-statistics", "translate",
		models.ActionRequest{Input: "OR 1.4 (95% CI 1.1-1.8), p=0.01"}, nil)
	require.NoError(t, err)
	assert.Contains(t, gen.LastPrompt(), "data journalist")
	assert.Contains(t, gen.LastPrompt(), "OR 1.4 (95% CI 1.1-1.8), p=0.01")

	_, err = site.Run(ctx, "making-sense-of-statistics", "risk",
		models.ActionRequest{Input: "Bacon raises risk by 18%", Context: "6 in 100"}, nil)
	require.NoError(t, err)
	assert.Contains(t, gen.LastPrompt(), "public health communicator")
	assert.Contains(t, gen.LastPrompt(), `Relative Risk Statement: "Bacon raises risk by 18%"`)
	assert.Contains(t, gen.LastPrompt(), `Baseline Risk: "6 in 100"`)

	_, err = site.Run(ctx, "nss-natural-short-sleep-ai", "hypothesis", models.ActionRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, gen.Calls())
}

func TestQuizPromptCarriesScenarioAndAnswer(t *testing.T) {
	gen := &fakeGenerator{text: "Correct!"}
	site := newTestSite(gen, nil)

	res, err := site.Run(context.Background(), "skeptics-guide-to-statistics", "flaw",
		models.ActionRequest{Item: " 1 ", Choice: "Biased Sample"}, nil)
	require.NoError(t, err)
	require.NotNil(t, res.State.Result)
	assert.Equal(t, "Correct!", *res.State.Result)
	assert.Contains(t, gen.LastPrompt(), "luxury car dealership")
	assert.Contains(t, gen.LastPrompt(), `The User's Guess: "Biased Sample"`)
	assert.Contains(t, gen.LastPrompt(), `The Correct Flaw: "Biased Sample"`)
}

func TestItemActionsFindTheirContent(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	site := newTestSite(gen, nil)
	ctx := context.Background()

	_, err := site.Run(ctx, "sacred-act-of-burning-hair", "ask",
		models.ActionRequest{Item: "Baluba (Death Rituals)", Input: "Why burn it?"}, nil)
	require.NoError(t, err)
	assert.Contains(t, gen.LastPrompt(), "Baluba (Death Rituals)'s beliefs")
	assert.Contains(t, gen.LastPrompt(), `"Why burn it?"`)

	_, err = site.Run(ctx, "indiana-corvid-species-analysis", "summary", models.ActionRequest{Item: "Common Raven"}, nil)
	require.NoError(t, err)
	assert.Contains(t, gen.LastPrompt(), "Common Raven")
}

func TestObserverSeesLoadingThenSettled(t *testing.T) {
	gen := &fakeGenerator{text: "tip", gate: make(chan struct{})}
	site := newTestSite(gen, nil)

	loading := make(chan models.GenerationState, 1)
	done := make(chan RunResult, 1)
	go func() {
		res, err := site.Run(context.Background(), "centenarian-athletes-an-interactive-infographic", "tip",
			models.ActionRequest{Item: content.Centenarians()[0].Name},
			func(p Phase, st models.GenerationState) {
				if p == PhaseRequesting {
					loading <- st
				}
			})
		assert.NoError(t, err)
		done <- res
	}()

	st := <-loading
	assert.True(t, st.IsLoading)
	assert.Nil(t, st.Result)
	assert.Nil(t, st.Error)

	close(gen.gate)
	res := <-done
	assert.False(t, res.State.IsLoading)
	require.NotNil(t, res.State.Result)
	assert.Equal(t, "tip", *res.State.Result)
}

func TestCanceledContextFallsBackToTransport(t *testing.T) {
	gen := &fakeGenerator{gate: make(chan struct{})}
	site := newTestSite(gen, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := site.Run(ctx, "secret-life-of-the-fishers-cottontail", "garden",
		models.ActionRequest{Input: "rabbits eat my lettuce"}, nil)
	require.NoError(t, err)
	assert.True(t, errors.Is(res.Outcome.Err, context.Canceled))
	assert.True(t, res.Outcome.Fallback)
}

func TestSiteStatus(t *testing.T) {
	site := newTestSite(&fakeGenerator{}, nil)
	status := site.GetStatus()
	assert.Equal(t, "running", status["status"])
	assert.Equal(t, len(content.Pages()), status["pages"])
	assert.Equal(t, len(promptBuilders), status["actions"])
}

func TestEveryPageActionHasAPrompt(t *testing.T) {
	for _, p := range content.Pages() {
		for _, a := range p.Actions {
			_, ok := promptBuilders[actionKey(p.Slug, a.ID)]
			assert.True(t, ok, "%s/%s", p.Slug, a.ID)
		}
	}
}
