package content

import (
	"portfolio/charts"
	"portfolio/models"
)

// Benefit is one health benefit card of the breathing guide.
type Benefit struct {
	Icon  string
	Title string
	Text  string
}

var benefits = []Benefit{
	{"📉", "Stress & Anxiety Reduction", "Directly activates your body's relaxation response, lowering stress hormones."},
	{"🧠", "Enhanced Focus", "Improves sustained attention and cognitive performance by increasing oxygen saturation."},
	{"❤️", "Cardiovascular Health", "Contributes to lower resting heart rate, blood pressure, and improved heart rate variability."},
	{"🫁", "Improved Respiratory Function", "Strengthens the diaphragm, enhances lung efficiency, and supports conditions like COPD."},
	{"🚶", "Better Core Stability", "Engages a key postural muscle, improving core strength and reducing back pain risk."},
	{"🌟", "Promotes Healthy Aging", "Helps mitigate age-related declines in respiratory, cardiovascular, and cognitive function."},
}

// Benefits returns the six benefit cards.
func Benefits() []Benefit {
	return append([]Benefit(nil), benefits...)
}

// FindBenefit looks a benefit up by title.
func FindBenefit(title string) (Benefit, bool) {
	for _, b := range benefits {
		if b.Title == title {
			return b, true
		}
	}
	return Benefit{}, false
}

func benefitCards() []Card {
	cards := make([]Card, len(benefits))
	for i, b := range benefits {
		cards[i] = Card{Icon: b.Icon, Title: b.Title, Text: b.Text, Actions: []string{"explain"}}
	}
	return cards
}

func benefitOptions() []Option {
	opts := make([]Option, len(benefits))
	for i, b := range benefits {
		opts[i] = Option{Value: b.Title, Label: b.Title}
	}
	return opts
}

// practiceGoals are the goals the plan generator offers.
var practiceGoals = []Option{
	{"Stress Reduction", "Stress Reduction"},
	{"Improved Focus", "Improved Focus"},
	{"Better Sleep", "Better Sleep"},
	{"General Well-being", "General Well-being"},
}

var sessionDurations = []Option{
	{"5", "5 minutes"},
	{"10", "10 minutes"},
	{"15", "15 minutes"},
}

func cardioChart() charts.Chart {
	return charts.Chart{
		ID:     "cardio",
		Type:   charts.TypeBar,
		Labels: charts.Labels("Heart Rate (bpm)", "Systolic BP (mmHg)", "Diastolic BP (mmHg)"),
		Datasets: []charts.Dataset{
			{
				Label:           "Typical State",
				Data:            []float64{85, 135, 88},
				BackgroundColor: []string{"rgba(54, 162, 235, 0.6)"},
				BorderColor:     []string{"rgba(54, 162, 235, 1)"},
				BorderWidth:     1,
			},
			{
				Label:           "After Consistent Practice",
				Data:            []float64{70, 125, 80},
				BackgroundColor: []string{"rgba(75, 192, 192, 0.6)"},
				BorderColor:     []string{"rgba(75, 192, 192, 1)"},
				BorderWidth:     1,
			},
		},
		Options: map[string]interface{}{
			"scales": map[string]interface{}{
				"y": map[string]interface{}{"beginAtZero": false, "suggestedMin": 50},
			},
		},
	}
}

func voiceChart() charts.Chart {
	return charts.Chart{
		ID:     "voice",
		Type:   charts.TypeRadar,
		Labels: charts.Labels("Vocal Stamina", "Breath Control", "Vocal Power", "Resonance", "Reduced Strain"),
		Datasets: []charts.Dataset{{
			Label:           "With Diaphragmatic Support",
			Data:            []float64{9, 9, 8, 8, 9},
			BackgroundColor: []string{"rgba(75, 192, 192, 0.2)"},
			BorderColor:     []string{"rgba(75, 192, 192, 1)"},
		}},
		Options: map[string]interface{}{
			"scales": map[string]interface{}{
				"r": map[string]interface{}{"suggestedMin": 0, "suggestedMax": 10},
			},
		},
	}
}

var breathingPage = Page{
	Slug:       "diaphragmatic-breathing-ai",
	Title:      "The Power of Breath: A Guide to Diaphragmatic Breathing",
	Subtitle:   "Unlock health, longevity, and vocal excellence by mastering your body's most fundamental rhythm.",
	Summary:    "An interactive guide exploring the mechanics and benefits of diaphragmatic breathing, enhanced with dynamic visualizations and AI-driven insights from the Gemini API.",
	Date:       "June 17, 2025",
	Categories: []string{"Health Tech", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:    "what",
			Title: "What is Diaphragmatic Breathing?",
			Paragraphs: []string{
				"Diaphragmatic breathing, or belly breathing, engages the dome-shaped muscle under the lungs so the abdomen rather than the chest rises with each breath.",
			},
		},
		{ID: "benefits", Title: "A Cascade of Health Benefits", Cards: benefitCards()},
		{ID: "cardio", Title: "Impact on Cardiovascular Markers", Charts: []string{"cardio"}},
		{ID: "voice", Title: "The Singer's Secret Weapon", Charts: []string{"voice"}},
		{ID: "plan", Title: "Create Your Personalized Practice Plan", Actions: []string{"plan"}},
	},
	Actions: []Action{
		{
			ID:        "explain",
			Label:     "✨ Explain Further",
			BusyLabel: "Generating…",
			Title:     "Explaining: ",
			Input:     InputItem,
			Options:   benefitOptions(),
			Markdown:  true,
			Fallbacks: models.Fallbacks{
				Status:     "Sorry, we couldn't fetch more details at this time.",
				Unexpected: "Sorry, we couldn't fetch more details at this time.",
				Transport:  "Sorry, we couldn't fetch more details at this time.",
			},
		},
		{
			ID:              "plan",
			Label:           "✨ Generate My 7-Day Plan",
			BusyLabel:       "Generating…",
			Input:           InputPlan,
			Options:         practiceGoals,
			Durations:       sessionDurations,
			DefaultDuration: "10",
			EmptyMessage:    "Please select at least one goal.",
			FallbackAsError: true,
			Markdown:        true,
			Fallbacks: models.Fallbacks{
				Status:     "Sorry, we couldn't generate your plan.",
				Unexpected: "Sorry, we couldn't generate your plan.",
				Transport:  "Sorry, we couldn't generate your plan.",
			},
		},
	},
	Charts: []charts.Chart{cardioChart(), voiceChart()},
}
