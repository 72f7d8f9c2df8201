package content

import (
	"portfolio/charts"
	"portfolio/models"
)

func sik3Chart() charts.Chart {
	return charts.Chart{
		ID:         "sik3",
		Type:       charts.TypeBar,
		Labels:     charts.Labels("Total Sleep Reduction (24h)", "Sleep Rebound Post-Deprivation", "NREM Sleep Intensity (Delta Power)"),
		Horizontal: true,
		Datasets: []charts.Dataset{{
			Label:           "Change vs. Control",
			Data:            []float64{-31.8, -54, 15},
			BackgroundColor: []string{"rgba(212, 80, 135, 0.7)", "rgba(102, 81, 145, 0.7)", "rgba(0, 63, 92, 0.7)"},
			BorderColor:     []string{"#d45087", "#665191", "#003f5c"},
			BorderWidth:     2,
		}},
		Options: map[string]interface{}{
			"plugins": map[string]interface{}{"legend": map[string]interface{}{"display": false}},
			"scales": map[string]interface{}{
				"x": map[string]interface{}{"beginAtZero": true, "title": map[string]interface{}{"display": true, "text": "Change (Minutes or %)"}},
			},
		},
	}
}

// The endpoint's block reason is wrapped in the page's own sentence.
var nssFallbacks = models.Fallbacks{
	Status:        "An error occurred: the AI request failed. Please try again.",
	Unexpected:    "Sorry, I couldn't get a proper answer. The response was unexpected.",
	Transport:     "An error occurred: the AI service could not be reached. Please try again.",
	Blocked:       "Blocked: ",
	BlockedSuffix: ". Please rephrase.",
}

var nssPage = Page{
	Slug:       "nss-natural-short-sleep-ai",
	Title:      "The Genetics of Efficient Sleep",
	Subtitle:   "An Interactive Analysis of the SIK3-N783Y Mutation",
	Summary:    "Natural short sleepers, the SIK3 signaling pathway, and a mutation that makes sleep shorter but deeper. With an AI sleep-science assistant and hypothesis generator.",
	Date:       "July 10, 2025",
	Categories: []string{"Health Tech", "Genetics", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:    "overview",
			Title: "Market Overview: The Natural Short Sleeper",
			Paragraphs: []string{
				"A small but significant segment of the population, known as **Natural Short Sleepers (NSS)**, thrive on 4-6.5 hours of sleep per night without ill effects. This unique trait points to a highly efficient biological system for sleep restoration.",
			},
			Highlights: []Highlight{
				{Title: "1-3%", Content: "Estimated Population Prevalence", Color: "blue"},
				{Title: "Zero", Content: "Known Adverse Health Effects", Color: "amber"},
			},
			Cards: []Card{
				{Icon: "✓", Title: "Natural Short Sleep", Text: "Genetically efficient, feels well-rested."},
				{Icon: "✗", Title: "Insomnia", Text: "Pathological, struggles to sleep, feels fatigued."},
			},
		},
		{
			ID:    "pathway",
			Title: "The Regulatory Pathway: SIK3's Role",
			Paragraphs: []string{
				"The **SIK3 gene** is a master regulator of sleep need. It operates within a critical signaling cascade that controls when and how deeply we sleep.",
			},
			Timeline: []TimelineEntry{
				{Year: "LKB1", Event: "Activates SIK3"},
				{Year: "SIK3", Event: "Phosphorylates HDAC4"},
				{Year: "HDAC4", Event: "Regulates Sleep Genes"},
			},
		},
		{
			ID:    "mutation",
			Title: "The Game Changer: SIK3-N783Y Mutation",
			Paragraphs: []string{
				"This rare mutation paradoxically *reduces* SIK3's activity, yet results in shorter, more intense sleep. This suggests it impairs a \"sleep need\" signal, leading to higher efficiency.",
			},
			Charts: []string{"sik3"},
		},
		{
			ID:    "outlook",
			Title: "Future Outlook & AI-Generated Hypothesis",
			Paragraphs: []string{
				"The SIK3-N783Y variant offers a blueprint for new sleep therapies. Instead of inducing sleep, future drugs could mimic this mutation to enhance sleep *quality* and *efficiency*.",
				"This opens doors to treatments for sleep disorders and provides insights into healthy aging, where efficient cellular repair during sleep is crucial.",
			},
			Actions: []string{"hypothesis"},
		},
		{
			ID:         "ask",
			Title:      "Ask AI About Sleep Science",
			Paragraphs: []string{"Ask a question about SIK3, sleep genetics, or related concepts from the report."},
			Actions:    []string{"ask"},
		},
	},
	Actions: []Action{
		{
			ID:        "hypothesis",
			Label:     "✨ Generate with AI",
			BusyLabel: "Generating...",
			Title:     "AI Hypothesis",
			Input:     InputNone,
			Fallbacks: nssFallbacks,
		},
		{
			ID:           "ask",
			Label:        "Submit Question",
			BusyLabel:    "Getting Answer...",
			Input:        InputText,
			Placeholder:  "e.g., Explain why lower SIK3 activity leads to less sleep.",
			EmptyMessage: "Please enter a question.",
			Fallbacks:    nssFallbacks,
		},
	},
	Charts: []charts.Chart{sik3Chart()},
}
