package content

import (
	"portfolio/charts"
	"portfolio/models"
)

func performanceChart() charts.Chart {
	return charts.Chart{
		ID:         "performance",
		Type:       charts.TypeBar,
		Labels:     charts.Labels("Skill Control Accuracy", "Aerobic Endurance", "Explosive Power", "Maximum Strength"),
		Horizontal: true,
		Datasets: []charts.Dataset{{
			Label:           "Performance Decrease due to Sleep Deprivation",
			Data:            []float64{-53, -10, -7, -4},
			BackgroundColor: []string{"#00A1E4", "#33B5E5", "#66C7E6", "#99D9E7"},
			BorderColor:     []string{"#003366"},
			BorderWidth:     2,
		}},
		Options: map[string]interface{}{
			"scales": map[string]interface{}{
				"x": map[string]interface{}{"title": map[string]interface{}{"display": true, "text": "PERCENTAGE DECREASE (%)"}},
			},
		},
	}
}

func sleepLongevityChart() charts.Chart {
	return charts.Chart{
		ID:     "longevity",
		Type:   charts.TypeBar,
		Labels: charts.Labels("≤5 hrs", "6 hrs", "7 hrs", "8 hrs", "9 hrs", "≥10 hrs"),
		Datasets: []charts.Dataset{{
			Label:           "Relative All-Cause Mortality Risk",
			Data:            []float64{1.15, 1.12, 1.0, 1.0, 1.08, 1.30},
			BackgroundColor: []string{"#33B5E5", "#66C7E6", "#00A1E4", "#00A1E4", "#66C7E6", "#33B5E5"},
			BorderColor:     []string{"#003366"},
			BorderWidth:     2,
		}},
		Options: map[string]interface{}{
			"scales": map[string]interface{}{
				"y": map[string]interface{}{"beginAtZero": false, "min": 0.9, "title": map[string]interface{}{"display": true, "text": "RELATIVE MORTALITY RISK"}},
				"x": map[string]interface{}{"title": map[string]interface{}{"display": true, "text": "AVERAGE NIGHTLY SLEEP DURATION"}},
			},
		},
	}
}

const sleepError = "An unexpected error occurred. Please try again."

var sleepPage = Page{
	Slug:       "sleep-for-active-folk",
	Title:      "The Athlete's Sleep Advantage",
	Subtitle:   "Unlock Peak Performance & Longevity",
	Summary:    "Why highly active people need 9-10 hours of sleep, what sleep debt costs, and an AI sleep myth debunker.",
	Date:       "July 8, 2025",
	Categories: []string{"Health Tech", "Data Viz", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:    "hook",
			Title: "Your Elevated Sleep Need",
			Paragraphs: []string{
				"Your high activity level is commendable, placing extreme demands on your body. Standard recovery isn't enough. The single most powerful tool to sustain performance, accelerate recovery, and extend your active years is sleep.",
				"With peak weeks over 17 hours, your physiological demands rival elite athletes. To fully recover and adapt, aim for 9-10 hours.",
			},
		},
		{
			ID:    "pillars",
			Title: "The 4 Pillars of Sleep-Driven Recovery",
			Cards: []Card{
				{Title: "Physiological Repair", Text: "Maximizes muscle protein synthesis and growth hormone release to rebuild tissue."},
				{Title: "Cognitive Enhancement", Text: "Consolidates motor skills and sharpens reaction time, focus, and decision-making."},
				{Title: "Immune Fortification", Text: "Strengthens immune defenses, reducing susceptibility to illnesses that disrupt training."},
				{Title: "Hormonal Balance", Text: "Promotes an anabolic state by regulating cortisol, testosterone, and growth hormones."},
			},
		},
		{
			ID:    "debt",
			Title: "The High Cost of Sleep Debt",
			Paragraphs: []string{
				"Insufficient sleep measurably degrades your physical capabilities.",
				"Athletes sleeping less than 8 hours per night face 1.7x greater injury risk.",
			},
			Charts: []string{"performance"},
		},
		{ID: "longevity", Title: "The Longevity Equation", Charts: []string{"longevity"}},
		{ID: "debunker", Title: "AI Sleep Myth Debunker", Actions: []string{"debunk"}},
	},
	Actions: []Action{{
		ID:              "debunk",
		Label:           "GET AI INSIGHT",
		BusyLabel:       "ANALYZING…",
		Input:           InputText,
		Placeholder:     "e.g., 'Can you catch up on sleep on weekends?'",
		EmptyMessage:    "Please type your sleep question or myth first.",
		FallbackAsError: true,
		Fallbacks: models.Fallbacks{
			Status:     sleepError,
			Unexpected: "Could not generate an insight. The AI returned an empty response.",
			Transport:  sleepError,
		},
	}},
	Charts: []charts.Chart{performanceChart(), sleepLongevityChart()},
}
