package services

import (
	"fmt"
	"strings"

	"portfolio/content"
	"portfolio/models"
	"portfolio/prompts"
)

// ValidationError is a reader-facing input problem. No request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PromptFunc builds the prompt for one page action from validated input.
type PromptFunc func(a content.Action, in models.ActionRequest) (string, error)

func actionKey(slug, action string) string {
	return slug + "/" + action
}

var promptBuilders = map[string]PromptFunc{
	actionKey("ageless-athletes", "insight"): func(a content.Action, in models.ActionRequest) (string, error) {
		athlete, ok := content.FindAgelessAthlete(in.Item)
		if !ok {
			return "", invalid("Unknown athlete %q.", in.Item)
		}
		return prompts.AthleteInsight(athlete), nil
	},
	actionKey("centenarian-athletes-an-interactive-infographic", "tip"): func(a content.Action, in models.ActionRequest) (string, error) {
		c, ok := content.FindCentenarian(in.Item)
		if !ok {
			return "", invalid("Unknown athlete %q.", in.Item)
		}
		return prompts.CentenarianTip(c), nil
	},
	actionKey("lester-wright-sr-the-man-who-outran-time", "ask"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.BiographyAnswer(content.LesterWrightBiography, in.Input), nil
	},
	actionKey("ageless-velocity", "insights"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.LongevityInsights(), nil
	},
	actionKey("ageless-velocity", "ask"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.HealthQuery(in.Input), nil
	},
	actionKey("diaphragmatic-breathing-ai", "explain"): func(a content.Action, in models.ActionRequest) (string, error) {
		b, ok := content.FindBenefit(in.Item)
		if !ok {
			return "", invalid("Unknown benefit %q.", in.Item)
		}
		return prompts.BenefitExplanation(b), nil
	},
	actionKey("diaphragmatic-breathing-ai", "plan"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.PracticePlan(in.Goals, in.Duration), nil
	},
	actionKey("endocannabinoid-system-curriculum-infographic", "chat"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.ECSQuestion(content.ParseAudience(in.Choice), in.Input), nil
	},
	actionKey("sleep-for-active-folk", "debunk"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.SleepQuery(in.Input), nil
	},
	actionKey("secret-life-of-the-fishers-cottontail", "garden"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.GardenPlan(in.Input), nil
	},
	actionKey("secret-life-of-the-fishers-cottontail", "podcast"): func(a content.Action, in models.ActionRequest) (string, error) {
		t, ok := content.FindPodcastTopic(in.Choice)
		if !ok {
			return "", invalid("Unknown topic %q.", in.Choice)
		}
		return prompts.PodcastScript(t), nil
	},
	actionKey("nss-natural-short-sleep-ai", "ask"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.SleepGeneticsAnswer(in.Input), nil
	},
	actionKey("nss-natural-short-sleep-ai", "hypothesis"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.SleepHypothesis(), nil
	},
	actionKey("making-sense-of-statistics", "translate"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.StatTranslation(in.Input), nil
	},
	actionKey("making-sense-of-statistics", "risk"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.RiskExplanation(in.Input, in.Context), nil
	},
	actionKey("skeptics-guide-to-statistics", "deconstruct"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.HeadlineAnalysis(in.Input, in.Context), nil
	},
	actionKey("skeptics-guide-to-statistics", "flaw"): func(a content.Action, in models.ActionRequest) (string, error) {
		sc, ok := content.FindFlawScenario(in.Item)
		if !ok {
			return "", invalid("Unknown scenario %q.", in.Item)
		}
		if !hasOption(a.Options, in.Choice) {
			return "", invalid("Unknown answer %q.", in.Choice)
		}
		return prompts.FlawExplanation(sc, in.Choice), nil
	},
	actionKey("scientific-study-infographic", "simplify"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.ScienceSimplification(in.Input), nil
	},
	actionKey("scientific-study-infographic", "bias"): func(a content.Action, in models.ActionRequest) (string, error) {
		sc, ok := content.FindBiasScenario(in.Item)
		if !ok {
			return "", invalid("Unknown scenario %q.", in.Item)
		}
		if !hasOption(a.Options, in.Choice) {
			return "", invalid("Unknown answer %q.", in.Choice)
		}
		return prompts.BiasExplanation(sc, in.Choice), nil
	},
	actionKey("indiana-corvid-species-analysis", "summary"):             corvidSummary(false),
	actionKey("interactive-indiana-corvid-species-analysis", "summary"): corvidSummary(true),
	actionKey("interactive-indiana-corvid-species-analysis", "myth"): func(a content.Action, in models.ActionRequest) (string, error) {
		m, ok := content.FindMyth(in.Item)
		if !ok {
			return "", invalid("Unknown myth %q.", in.Item)
		}
		return prompts.MythDebunk(m), nil
	},
	actionKey("enduring-power-of-hoodoo", "lore"): func(a content.Action, in models.ActionRequest) (string, error) {
		c, ok := content.FindCurio(in.Item)
		if !ok {
			return "", invalid("Unknown curio %q.", in.Item)
		}
		return prompts.CurioLore(c), nil
	},
	actionKey("enduring-power-of-hoodoo", "inspiration"): func(a content.Action, in models.ActionRequest) (string, error) {
		return prompts.SymbolicInspiration(in.Input), nil
	},
	actionKey("journey-into-african-spiritual-traditions", "proverb"):    traditionPrompt(prompts.TraditionProverb),
	actionKey("journey-into-african-spiritual-traditions", "reflection"): traditionPrompt(prompts.TraditionReflection),
	actionKey("sacred-act-of-burning-hair", "ask"): func(a content.Action, in models.ActionRequest) (string, error) {
		c, ok := content.FindHairCulture(in.Item)
		if !ok {
			return "", invalid("Unknown tradition %q.", in.Item)
		}
		return prompts.HairBeliefAnswer(c, in.Input), nil
	},
}

func corvidSummary(brief bool) PromptFunc {
	return func(a content.Action, in models.ActionRequest) (string, error) {
		c, ok := content.FindCorvid(in.Item)
		if !ok {
			return "", invalid("Unknown species %q.", in.Item)
		}
		return prompts.CorvidSummary(c, brief), nil
	}
}

func traditionPrompt(build func(content.Tradition) string) PromptFunc {
	return func(a content.Action, in models.ActionRequest) (string, error) {
		t, ok := content.FindTradition(in.Item)
		if !ok {
			return "", invalid("Unknown tradition %q.", in.Item)
		}
		return build(t), nil
	}
}

func hasOption(opts []content.Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// normalize validates the request against the action's input kind and
// fills defaults. The returned request is what the prompt builder sees.
func normalize(a content.Action, in models.ActionRequest) (models.ActionRequest, error) {
	if len(a.Items) > 0 {
		in.Item = strings.TrimSpace(in.Item)
		if in.Item == "" {
			return in, invalid("Please choose an item first.")
		}
		if !hasOption(a.Items, in.Item) {
			return in, invalid("Unknown item %q.", in.Item)
		}
	}
	switch a.Input {
	case content.InputText:
		if strings.TrimSpace(in.Input) == "" {
			return in, &ValidationError{Message: a.EmptyMessage}
		}
	case content.InputPair:
		if strings.TrimSpace(in.Input) == "" || strings.TrimSpace(in.Context) == "" {
			return in, &ValidationError{Message: a.EmptyMessage}
		}
	case content.InputItem:
		in.Item = strings.TrimSpace(in.Item)
		if in.Item == "" {
			return in, invalid("Please choose an item first.")
		}
	case content.InputChoice:
		in.Choice = strings.TrimSpace(in.Choice)
		if in.Choice == "" {
			return in, &ValidationError{Message: a.EmptyMessage}
		}
	case content.InputPlan:
		if len(in.Goals) == 0 {
			return in, &ValidationError{Message: a.EmptyMessage}
		}
		for _, g := range in.Goals {
			if !hasOption(a.Options, g) {
				return in, invalid("Unknown goal %q.", g)
			}
		}
		if in.Duration == "" {
			in.Duration = a.DefaultDuration
		}
		if !hasOption(a.Durations, in.Duration) {
			return in, invalid("Unknown session duration %q.", in.Duration)
		}
	}
	return in, nil
}
