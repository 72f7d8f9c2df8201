package content

import (
	"portfolio/charts"
	"portfolio/models"
)

// PodcastTopic is a selectable topic of the podcast script generator.
type PodcastTopic struct {
	Key   string
	Label string
	Info  string
}

var podcastTopics = []PodcastTopic{
	{"diet", "Seasonal Diet & Coprophagy", "A Cottontail's Seasonal Diet and the strategy of Coprophagy. In summer, they eat greens. In winter, they eat bark and twigs. They re-ingest special fecal pellets (cecotropes) to absorb more nutrients."},
	{"predators", "The Predator Gauntlet", "The Predator Gauntlet. Cottontails are a key food source for coyotes, foxes, hawks, and owls. Up to 80% of the population is lost to predation annually, which is why their high birth rate is so important."},
	{"nesting", "Nesting & Rearing Cycle", "The secret life of a rabbit nest. A doe digs a shallow nest, visits only at dawn and dusk to avoid detection, and the kits are independent in just 4-5 weeks."},
	{"coexistence", "Gardener's Guide to Coexistence", "How gardeners can coexist with rabbits. Damage is a clean, 45-degree cut. They favor plants like tulips but avoid smelly or fuzzy plants. The best deterrents are exclusion (fencing) and habitat modification."},
	{"habitat", `The "Edge Habitat" Advantage`, "Why suburbia is a rabbit paradise. They thrive in 'edge habitats' - open lawns for feeding right next to dense cover (shrubs, decks) for safety. Suburban yards perfectly mimic this."},
}

// PodcastTopics returns the topics in display order.
func PodcastTopics() []PodcastTopic {
	return append([]PodcastTopic(nil), podcastTopics...)
}

// FindPodcastTopic looks a topic up by key.
func FindPodcastTopic(key string) (PodcastTopic, bool) {
	for _, t := range podcastTopics {
		if t.Key == key {
			return t, true
		}
	}
	return PodcastTopic{}, false
}

func podcastOptions() []Option {
	opts := make([]Option, len(podcastTopics))
	for i, t := range podcastTopics {
		opts[i] = Option{Value: t.Key, Label: t.Label}
	}
	return opts
}

func cottontailCharts() []charts.Chart {
	return []charts.Chart{
		{
			ID:      "diet",
			Type:    charts.TypeBar,
			Labels:  charts.Labels("Spring/Summer", "Fall/Winter"),
			Stacked: true,
			Datasets: []charts.Dataset{
				{Label: "Grasses & Greens", Data: []float64{60, 10}, BackgroundColor: []string{"#99B898"}},
				{Label: "Woody Plants & Bark", Data: []float64{10, 65}, BackgroundColor: []string{"#6C5B7B"}},
				{Label: "Other (Clover, Fruits, etc.)", Data: []float64{30, 25}, BackgroundColor: []string{"#FECEA8"}},
			},
		},
		{
			ID:         "predators",
			Type:       charts.TypeBar,
			Horizontal: true,
			Labels:     charts.Labels("Coyote", "Red Fox", "Hawks", "Great Horned Owls", "Domestic Dogs & Cats", "Raccoons", "Bobcat (Less Common)"),
			Datasets: []charts.Dataset{{
				Label:           "Commonality / Impact",
				Data:            []float64{95, 90, 85, 80, 78, 60, 30},
				BackgroundColor: []string{"#355C7D", "#6C5B7B", "#C06C84", "#E84A5F", "#FF847C", "#FECEA8", "#99B898"},
				BorderColor:     []string{"#ffffff"},
				BorderWidth:     2,
			}},
		},
		{
			ID:     "population",
			Type:   charts.TypeLine,
			Labels: charts.Labels("Yr 1", "Yr 2", "Yr 3", "Yr 4", "Yr 5 (Peak)", "Yr 6", "Yr 7", "Yr 8 (Low)", "Yr 9", "Yr 10"),
			Datasets: []charts.Dataset{{
				Label:           "Relative Population Size",
				Data:            []float64{3, 4.5, 7, 9, 10, 7.5, 5, 2.5, 4, 6},
				Fill:            true,
				BorderColor:     []string{"#6C5B7B"},
				BackgroundColor: []string{"rgba(108, 91, 123, 0.2)"},
				Tension:         0.4,
			}},
		},
	}
}

var cottontailFallbacks = models.Fallbacks{
	Status:     "An error occurred: the AI service returned an error. Please try again later.",
	Unexpected: "Sorry, I couldn't generate a response. The model returned empty content.",
	Transport:  "An unknown error occurred. Please try again later.",
}

var cottontailPage = Page{
	Slug:       "secret-life-of-the-fishers-cottontail",
	Title:      "The Suburban Cottontail",
	Subtitle:   "Unseen dramas, surprising behaviors, and complex survival strategies unfold every day in the backyards of Fishers, Indiana.",
	Summary:    "The Eastern Cottontail of Fishers, Indiana: seasonal diet, predators, population cycles, a humane garden advisor and a podcast script generator.",
	Date:       "July 15, 2025",
	Categories: []string{"Nature", "Data Viz", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:    "stats",
			Title: "By the Numbers",
			Cards: []Card{
				{Title: "11", Text: "Month Average Lifespan"},
				{Title: "18", Text: "MPH Top Speed"},
				{Title: "~25", Text: "Offspring Per Year"},
			},
		},
		{
			ID:    "day",
			Title: "A Day in the Life",
			Paragraphs: []string{
				"A rabbit's diet in Fishers is a tale of two seasons. Summer brings lush greens, while winter forces a switch to woody browse, a shift that often brings them into conflict with homeowners.",
				"A mother cottontail only visits her nest at dawn and dusk to avoid attracting predators, an instinct that often leads humans to mistakenly believe a nest is abandoned.",
			},
			Charts: []string{"diet"},
		},
		{
			ID:    "coexistence",
			Title: "Backyard Coexistence",
			Paragraphs: []string{
				"Describe your specific rabbit problem below, and our AI assistant will generate a custom, humane action plan.",
				"Lasting solutions focus on making plants inaccessible or the area uninviting.",
			},
			Actions: []string{"garden"},
		},
		{
			ID:    "edge",
			Title: "A Life on the Edge",
			Paragraphs: []string{
				"Cottontails are a vital food source for a wide range of animals in Fishers, from coyotes to hawks. This constant pressure shapes their very existence.",
				`Suburban yards are ideal for cottontails because they provide "edges": open lawns for feeding right next to protective cover like shrubs and decks for a quick escape.`,
			},
			Charts: []string{"predators"},
		},
		{ID: "population", Title: "Boom and Bust", Charts: []string{"population"}},
		{ID: "podcast", Title: "Suburban Wildlife Podcast", Actions: []string{"podcast"}},
	},
	Actions: []Action{
		{
			ID:           "garden",
			Label:        "Get My Action Plan",
			BusyLabel:    "Generating…",
			Title:        "Your Personalized Garden Plan",
			Input:        InputText,
			Placeholder:  "e.g., 'Rabbits are eating my bean sprouts and chewing the bark of my new apple tree.'",
			EmptyMessage: "Please describe your garden problem first.",
			Markdown:     true,
			Fallbacks:    cottontailFallbacks,
		},
		{
			ID:           "podcast",
			Label:        "✨ Generate Podcast Script",
			BusyLabel:    "Generating…",
			Title:        "Your Podcast Script Segment",
			Input:        InputChoice,
			Options:      podcastOptions(),
			EmptyMessage: "Please select a topic first.",
			Markdown:     true,
			Fallbacks:    cottontailFallbacks,
		},
	},
	Charts: cottontailCharts(),
}
