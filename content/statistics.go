package content

import "portfolio/models"

// Scenario is a quiz case with the pitfall it illustrates.
type Scenario struct {
	ID     string
	Text   string
	Answer string
}

var flawScenarios = []Scenario{
	{"1", "A study wants to know the average income in a city. They survey people at a luxury car dealership. The results show a very high average income.", "Biased Sample"},
	{"2", "A political poll of 20 people is used to declare that '55% of the country' supports a candidate.", "Small Sample Size"},
	{"3", "A company reports: '90% of dentists surveyed recommend our toothpaste!' They don't mention that they only surveyed 10 dentists who they have a relationship with.", "Cherry-Picking / Biased Sample"},
	{"4", "After a study shows people who drink red wine live longer, a website claims: 'Drinking red wine makes you live longer!'", "Correlation vs. Causation"},
}

var flawGuesses = []string{"Biased Sample", "Small Sample Size", "Cherry-Picking", "Correlation vs. Causation"}

var biasScenarios = []Scenario{
	{"1", "A new study published by 'The Soda Council' finds that daily soda consumption is not linked to weight gain in adults. The study surveyed 5,000 people about their diets.", "Conflict of Interest"},
	{"2", "After a local news story about shark attacks, a person claims, 'I'm never swimming in the ocean again! It's too dangerous!' despite statistics showing bee stings cause more deaths annually.", "Availability Heuristic / Sensationalism"},
	{"3", "A blog post reads: 'A study shows ice cream sales are linked to higher crime rates. Therefore, to reduce crime, we should ban ice cream.'", "Correlation vs. Causation"},
	{"4", "A supplement ad states: 'In our study, users who took our 'MegaBrain' pill had a 200% increase in memory scores!' The study tested 10 people and the 'score' was how many items they remembered from a list of 3.", "Small Sample Size / Misleading Percentages"},
}

var biasGuesses = []string{"Conflict of Interest", "Correlation vs. Causation", "Small Sample Size", "Sensationalism"}

func findScenario(list []Scenario, id string) (Scenario, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// FindFlawScenario looks up a "find the flaw" scenario by ID.
func FindFlawScenario(id string) (Scenario, bool) {
	return findScenario(flawScenarios, id)
}

// FindBiasScenario looks up a "spot the bias" scenario by ID.
func FindBiasScenario(id string) (Scenario, bool) {
	return findScenario(biasScenarios, id)
}

func scenarioCards(list []Scenario) []Card {
	cards := make([]Card, len(list))
	for i, s := range list {
		cards[i] = Card{Title: "Scenario " + s.ID, Text: s.Text}
	}
	return cards
}

func scenarioOptions(list []Scenario) []Option {
	opts := make([]Option, len(list))
	for i, s := range list {
		opts[i] = Option{Value: s.ID, Label: "Scenario " + s.ID}
	}
	return opts
}

func guessOptions(guesses []string) []Option {
	opts := make([]Option, len(guesses))
	for i, g := range guesses {
		opts[i] = Option{Value: g, Label: g}
	}
	return opts
}

func tipCards(tips ...string) []Card {
	cards := make([]Card, len(tips))
	for i, t := range tips {
		cards[i] = Card{Icon: "💡", Text: t}
	}
	return cards
}

var statisticsFallbacks = models.Fallbacks{
	Status:     "API Error: the AI service returned an error.",
	Unexpected: "Invalid API response structure.",
	Transport:  "An error occurred.",
}

var statisticsPage = Page{
	Slug:       "making-sense-of-statistics",
	Title:      "Making Sense of Statistics",
	Subtitle:   "A Guide to Understanding & Explaining Data",
	Summary:    "Means, medians, p-values and confidence intervals explained, with an AI stat translator and a relative-versus-absolute risk explainer.",
	Date:       "July 12, 2025",
	Categories: []string{"Science", "Education", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:         "fundamentals",
			Title:      "Fundamental Statistical Concepts",
			Paragraphs: []string{"Statistics help us describe data and draw inferences. These are the building blocks."},
			Cards: []Card{
				{Title: "Mean (Average)", Text: "The sum of all values divided by the number of values. Can be skewed by very high or low numbers (outliers)."},
				{Title: "Median", Text: "The middle value in an ordered dataset. It's often a better measure of the 'center' when outliers are present."},
				{Title: "Standard Deviation", Text: "Measures how spread out the data points are from the mean. A small SD means data is clustered tightly."},
				{Title: "Sample vs. Population", Text: "A population is the entire group of interest. A sample is a smaller, manageable subset of that population."},
			},
		},
		{
			ID:         "claims",
			Title:      "How We Make Claims from Data",
			Paragraphs: []string{"Inferential statistics allow us to make educated guesses (inferences) about a whole population based on a smaller sample."},
			Cards: []Card{
				{Title: "P-value & Hypothesis Testing", Text: "Researchers start with a 'null hypothesis' (a statement of no effect). The p-value tells you the probability of seeing your data if that 'no effect' idea was true. A small p-value (e.g., < 0.05) suggests the effect you saw is probably real and not just random chance."},
				{Title: "Confidence Intervals (CI)", Text: "This gives a range of plausible values for the true effect in the whole population. A 95% CI means we're 95% confident the true value lies within that range. A narrow CI is more precise than a wide one."},
			},
			Highlights: []Highlight{{
				Title:   "The Most Important Distinction",
				Content: "Statistical Significance (p-value) just means an effect is unlikely to be a fluke. Practical/Clinical Importance (Effect Size) tells you if the effect is large enough to actually matter in the real world. A tiny, useless effect can still be 'statistically significant' in a large study!",
				Color:   "amber",
			}},
		},
		{
			ID:         "translate",
			Title:      "Translate a Stat",
			Paragraphs: []string{"Paste a statistical finding (e.g., from a paper's abstract) and let our AI helper translate it into plain English."},
			Actions:    []string{"translate"},
		},
		{
			ID:         "risk",
			Title:      "Risk Explainer",
			Paragraphs: []string{`Headlines often use "Relative Risk" which can be misleading. Use this tool to see the real-world "Absolute Risk".`},
			Actions:    []string{"risk"},
		},
		{
			ID:    "cheatsheet",
			Title: "Communication Cheat Sheet",
			Cards: tipCards(
				"Focus on the 'So What?' - what does this number mean for people?",
				"Use analogies. 'Unlikely to be a fluke' is better than 'statistically significant'.",
				"Always provide the Absolute Risk alongside the Relative Risk to give context.",
				"Explain the Confidence Interval as a 'range of plausible results'.",
				"State the limitations. What does the study *not* tell us?",
			),
		},
	},
	Actions: []Action{
		{
			ID:              "translate",
			Label:           "Translate",
			BusyLabel:       "Translating…",
			Title:           "Plain English Translation",
			Input:           InputText,
			Placeholder:     "e.g., mean difference = -15.2 mg/dL; 95% CI...",
			EmptyMessage:    "Please paste a statistical finding first.",
			Fallbacks:       statisticsFallbacks,
			FallbackAsError: true,
			Markdown:        true,
		},
		{
			ID:                 "risk",
			Label:              "Explain the Real Risk",
			BusyLabel:          "Explaining…",
			Title:              "Putting Risk in Context",
			Input:              InputPair,
			Placeholder:        "Relative risk, e.g., 'doubles the risk' or '30% lower'",
			ContextPlaceholder: "Baseline risk, e.g., '1 in 100' or '5%'",
			EmptyMessage:       "Please fill in both fields.",
			Fallbacks:          statisticsFallbacks,
			FallbackAsError:    true,
			Markdown:           true,
		},
	},
}

var skepticsPage = Page{
	Slug:       "skeptics-guide-to-statistics",
	Title:      "The Skeptic's Guide to Statistics",
	Subtitle:   "How Data Can Be Misused & What to Look For",
	Summary:    "Cherry-picking, correlation versus causation, tiny samples and misleading framing, with an AI headline deconstructor and a find-the-flaw quiz.",
	Date:       "July 13, 2025",
	Categories: []string{"Science", "Media Literacy", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:         "traps",
			Title:      "Common Statistical Traps",
			Paragraphs: []string{"Misinformation isn't always about fake data. Often, it's about presenting real data in a misleading way. Here are the most common traps."},
			Cards: []Card{
				{Title: "Cherry-Picking Data", Text: "Presenting only the data that supports a specific argument while ignoring data that contradicts it. Also known as selective reporting."},
				{Title: "Correlation vs. Causation Fallacy", Text: "Claiming that because two things happen together, one must be causing the other. Always ask: could a third factor be influencing both?"},
				{Title: "Biased Samples & Overgeneralization", Text: "Drawing broad conclusions from a group that isn't representative of the larger population (e.g., studying only college students and applying it to everyone)."},
				{Title: "Tiny Sample Sizes", Text: "Results from very small studies are less reliable and can be due to random chance. Be skeptical of big claims from small groups."},
			},
		},
		{
			ID:         "framing",
			Title:      "The Power of Framing & Language",
			Paragraphs: []string{"The way a finding is worded can dramatically change its perception, even if the numbers are the same."},
			Cards: []Card{
				{Title: "Relative vs. Absolute Risk", Text: "A headline might scream 'Doubles Your Risk!' (a relative risk). But if the initial risk was tiny (1 in a million), the new risk (2 in a million) is still tiny. The absolute risk increase is what matters for real-world impact."},
				{Title: "Misleading Percentages", Text: "Watch out for percentages without context. A '200% improvement' sounds amazing, but if it's an improvement from 1 to 3 on a 100-point scale, it's not very meaningful."},
			},
		},
		{
			ID:         "deconstruct",
			Title:      "Headline Deconstructor",
			Paragraphs: []string{"See how headlines can spin the truth. Enter a headline and the real stat to see the analysis."},
			Actions:    []string{"deconstruct"},
		},
		{
			ID:         "flaw",
			Title:      "Find the Flaw",
			Paragraphs: []string{"Read the scenario and spot the statistical pitfall. Our AI helper will explain."},
			Cards:      scenarioCards(flawScenarios),
			Actions:    []string{"flaw"},
		},
	},
	Actions: []Action{
		{
			ID:                 "deconstruct",
			Label:              "Deconstruct",
			BusyLabel:          "Deconstructing…",
			Title:              "Analysis",
			Input:              InputPair,
			Placeholder:        "Miracle Veggie Cuts Cancer Risk by 50%!",
			ContextPlaceholder: "Study finds relative risk reduction from 2 in 10,000 to 1 in 10,000 for a rare cancer.",
			EmptyMessage:       "Please enter a headline and the real statistic.",
			Markdown:           true,
			Fallbacks: models.Fallbacks{
				Status:     "Sorry, an error occurred while analyzing.",
				Unexpected: "Sorry, an error occurred while analyzing.",
				Transport:  "Sorry, an error occurred while analyzing.",
			},
		},
		{
			ID:           "flaw",
			Label:        "Check My Guess",
			BusyLabel:    "Fetching explanation...",
			Input:        InputChoice,
			Items:        scenarioOptions(flawScenarios),
			Options:      guessOptions(flawGuesses),
			EmptyMessage: "Please pick the flaw you spotted.",
			Markdown:     true,
			Fallbacks:    quizFallbacks,
		},
	},
}

var quizFallbacks = models.Fallbacks{
	Status:     "Sorry, I couldn't fetch an explanation right now.",
	Unexpected: "Sorry, I couldn't fetch an explanation right now.",
	Transport:  "Sorry, I couldn't fetch an explanation right now.",
}

var studyPage = Page{
	Slug:       "scientific-study-infographic",
	Title:      "Understanding Scientific Studies",
	Subtitle:   "An Interactive Guide to Reading & Communicating Science",
	Summary:    "Study designs, key terminology and how to read a paper, with an AI science simplifier and a spot-the-bias quiz.",
	Date:       "July 14, 2025",
	Categories: []string{"Science", "Education", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:         "types",
			Title:      "Types of Studies",
			Paragraphs: []string{"The design of a study determines the strength of its conclusions. Understanding the type is the first step to critical appraisal."},
			Tabs: []Tab{
				{Label: "Observational Studies", Cards: []Card{{Title: "Observational Studies", Text: "Researchers observe subjects and measure variables without intervening. These can show associations and correlations, but not causation."}}},
				{Label: "Experimental Studies", Cards: []Card{{Title: "Experimental Studies", Text: "Researchers actively intervene by manipulating variables. This is the only way to determine cause and effect."}}},
				{Label: "Meta-Analyses", Cards: []Card{{Title: "Studies of Studies", Text: "These synthesize evidence from multiple existing studies to provide a more robust and comprehensive conclusion."}}},
			},
		},
		{
			ID:    "terms",
			Title: "Key Terminology",
			Cards: []Card{
				{Title: "Hypothesis", Text: "A testable prediction about the relationship between variables."},
				{Title: "P-value & Significance", Text: "The p-value is the probability a result occurred by chance. A small p-value (e.g., <0.05) suggests it's statistically significant, but not necessarily important."},
				{Title: "Correlation vs. Causation", Text: "Correlation is a relationship between two variables. Causation is when one variable directly causes a change in another. Don't mix them up!"},
				{Title: "Control Group", Text: "The group in an experiment that does not receive the treatment, serving as a baseline for comparison."},
				{Title: "Peer Review", Text: "Evaluation of scientific work by other experts in the same field to ensure quality and validity before publication."},
				{Title: "Effect Size", Text: "Measures the magnitude (the 'how much') of an effect, which is often more important than just statistical significance."},
			},
		},
		{
			ID:    "reading",
			Title: "How to Read a Scientific Paper",
			Timeline: []TimelineEntry{
				{Year: "1. Abstract", Event: "Read this first. It's a full summary: purpose, methods, results, and conclusion."},
				{Year: "2. Introduction", Event: "Understand the 'why'. It provides background and states the hypothesis."},
				{Year: "3. Methods", Event: "Critically assess the 'how'. Is the study design appropriate? Who was studied?"},
				{Year: "4. Results", Event: "Look at the objective findings. This section presents raw data, often in tables and graphs, without interpretation."},
				{Year: "5. Discussion / Conclusion", Event: "Interpret the 'so what'. Authors discuss implications, limitations, and future research."},
			},
		},
		{
			ID:         "simplify",
			Title:      "Simplify The Science",
			Paragraphs: []string{"Paste a confusing snippet from a study below and let our AI-powered helper explain it in simple terms."},
			Actions:    []string{"simplify"},
		},
		{
			ID:         "bias",
			Title:      "Spot The Bias",
			Paragraphs: []string{"Test your critical thinking skills. Read the scenario and pick the most likely issue. Our AI helper will explain the answer."},
			Cards:      scenarioCards(biasScenarios),
			Actions:    []string{"bias"},
		},
		{
			ID:    "communicating",
			Title: "Communicating Your Findings",
			Cards: tipCards(
				"Start with the 'So What?' - explain why it matters.",
				"Use analogies and simple language instead of jargon.",
				"Clearly distinguish correlation from causation.",
				"Acknowledge limitations and what the study *doesn't* tell us.",
				"Focus on the effect size (the magnitude) to explain practical importance.",
			),
		},
	},
	Actions: []Action{
		{
			ID:              "simplify",
			Label:           "Simplify",
			BusyLabel:       "Simplifying…",
			Title:           "Simplified Explanation",
			Input:           InputText,
			Placeholder:     "Paste scientific text here...",
			EmptyMessage:    "Please enter some text to simplify.",
			FallbackAsError: true,
			Markdown:        true,
			Fallbacks: models.Fallbacks{
				Status:     "API error: the AI service returned an error.",
				Unexpected: "Invalid response structure from API.",
				Transport:  "An unknown error occurred.",
			},
		},
		{
			ID:           "bias",
			Label:        "Check My Answer",
			BusyLabel:    "Fetching explanation...",
			Input:        InputChoice,
			Items:        scenarioOptions(biasScenarios),
			Options:      guessOptions(biasGuesses),
			EmptyMessage: "Please pick the most likely issue.",
			Markdown:     true,
			Fallbacks:    quizFallbacks,
		},
	},
}
