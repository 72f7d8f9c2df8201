package prompts

import (
	"testing"

	"portfolio/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAthleteInsight(t *testing.T) {
	a, ok := content.FindAgelessAthlete("Lester Wright")
	require.True(t, ok)

	p := AthleteInsight(a)
	assert.Contains(t, p, "Based on the story of Lester Wright, an athlete known for their achievements in 100m Dash")
	assert.Contains(t, p, `"`+a.Facts+`"`)
	assert.Equal(t, p, AthleteInsight(a))
}

func TestCentenarianTipTheme(t *testing.T) {
	ida, ok := content.FindCentenarian("Ida Keeling")
	require.True(t, ok)
	assert.Contains(t, CentenarianTip(ida), "themes of resilience")

	lester, ok := content.FindCentenarian("Lester Wright")
	require.True(t, ok)
	p := CentenarianTip(lester)
	assert.Contains(t, p, "Lester Wright (100), who achieved 100m in 26.34s")
	assert.Contains(t, p, "themes of dedication")
}

func TestBiographyAnswerEmbedsSource(t *testing.T) {
	p := BiographyAnswer("BIO TEXT", "How long was he married?")
	assert.Contains(t, p, "Based *only* on the following biography")
	assert.Contains(t, p, "BIO TEXT")
	assert.Contains(t, p, "How long was he married?")
}

func TestHealthQueryEndsWithDisclaimer(t *testing.T) {
	p := HealthQuery("Is walking enough?")
	assert.Contains(t, p, `User Query: "Is walking enough?"`)
	assert.Contains(t, p, "---\n"+content.HealthDisclaimer())
}

func TestPracticePlan(t *testing.T) {
	p := PracticePlan([]string{"Stress Reduction", "Better Sleep"}, "15")
	assert.Contains(t, p, "The user's goals are: Stress Reduction, Better Sleep.")
	assert.Contains(t, p, "approximately 15 minutes long")
}

func TestECSQuestionAudience(t *testing.T) {
	tests := []struct {
		audience content.Audience
		want     string
	}{
		{content.AudienceGeneral, "helping the general public understand"},
		{content.AudienceStudent, "helping students understand"},
		{content.AudienceHealthcare, "helping healthcare professionals understand"},
	}
	for _, tt := range tests {
		t.Run(string(tt.audience), func(t *testing.T) {
			p := ECSQuestion(tt.audience, "What is 2-AG?")
			assert.Contains(t, p, tt.want)
			assert.Contains(t, p, "Please answer this question about the ECS: What is 2-AG?")
			assert.Contains(t, p, "for a "+string(tt.audience)+" audience")
		})
	}
}

func TestPodcastAndGarden(t *testing.T) {
	topic, ok := content.FindPodcastTopic("nesting")
	require.True(t, ok)
	assert.Contains(t, PodcastScript(topic), topic.Info)
	assert.Contains(t, GardenPlan("beans eaten"), `User's specific problem: "beans eaten"`)
	assert.Contains(t, SleepQuery("naps?"), `User's query: "naps?"`)
	assert.Contains(t, BenefitExplanation(content.Benefit{Title: "Enhanced Focus"}), `contributes to "Enhanced Focus"`)
	assert.NotEmpty(t, LongevityInsights())
}

func TestTwoFieldPrompts(t *testing.T) {
	p := RiskExplanation("doubles the risk", "1 in 10,000")
	assert.Contains(t, p, `Relative Risk Statement: "doubles the risk"`)
	assert.Contains(t, p, `Baseline Risk: "1 in 10,000"`)

	p = HeadlineAnalysis("Chocolate Cures Cancer", "mice, n=12")
	assert.Contains(t, p, `Headline: "Chocolate Cures Cancer"`)
	assert.Contains(t, p, `The Actual Statistic: "mice, n=12"`)
}

func TestQuizPromptsCarryCorrectAnswer(t *testing.T) {
	sc, ok := content.FindFlawScenario("2")
	require.True(t, ok)
	p := FlawExplanation(sc, "Biased Sample")
	assert.Contains(t, p, sc.Text)
	assert.Contains(t, p, `The User's Guess: "Biased Sample"`)
	assert.Contains(t, p, `The Correct Flaw: "Small Sample Size"`)

	bias, ok := content.FindBiasScenario("1")
	require.True(t, ok)
	assert.Contains(t, BiasExplanation(bias, "Sensationalism"), "Conflict of Interest")
}

func TestCorvidSummaryVariants(t *testing.T) {
	raven, ok := content.FindCorvid("Common Raven")
	require.True(t, ok)
	full := CorvidSummary(raven, false)
	brief := CorvidSummary(raven, true)
	assert.Contains(t, full, "Wingspan: 132cm")
	assert.NotContains(t, brief, "Wingspan")
	assert.Contains(t, brief, "Mass: 1300g")
}

func TestTraditionAndHairPrompts(t *testing.T) {
	tr, ok := content.FindTradition("Akan Spirituality")
	require.True(t, ok)
	assert.Contains(t, TraditionProverb(tr), "proverb")
	assert.Contains(t, TraditionReflection(tr), "question for personal reflection")

	hc, ok := content.FindHairCulture("Igbo (Widowhood Rituals)")
	require.True(t, ok)
	p := HairBeliefAnswer(hc, "Why is it shaved?")
	assert.Contains(t, p, "Igbo (Widowhood Rituals)'s beliefs")
	assert.Contains(t, p, hc.Beliefs)
	assert.Contains(t, p, `"Why is it shaved?"`)
}
