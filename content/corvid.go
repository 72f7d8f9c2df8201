package content

import (
	"fmt"

	"portfolio/charts"
	"portfolio/models"
)

// Corvid is one Indiana corvid species profile.
type Corvid struct {
	Species        string
	EQ             string
	Habitat        string
	Beak           string
	MassGrams      int
	SizeCm         int
	WingspanCm     int
	Plumage        string
	Vocalization   string
	SocialBehavior string
	FlightStyle    string
	Nesting        string
}

var corvids = []Corvid{
	{
		Species:        "American Crow",
		EQ:             "High (approx. 1.2-2.5)",
		Habitat:        "Ubiquitous: woodlands, agricultural areas, suburbs, urban parks.",
		Beak:           "Strong, stout, versatile.",
		MassGrams:      450,
		SizeCm:         46,
		WingspanCm:     92,
		Plumage:        "Entirely black with a glossy, iridescent sheen.",
		Vocalization:   "Familiar 'caw-caw', clicks, rattles.",
		SocialBehavior: "Highly social, forms large flocks and roosts.",
		FlightStyle:    "Direct, steady, purposeful wingbeats.",
		Nesting:        "Bulky stick nests high in trees, often with helpers.",
	},
	{
		Species:        "Blue Jay",
		EQ:             "High",
		Habitat:        "Woodlands (especially oak), suburban yards, parks.",
		Beak:           "Stout, pointed, strong.",
		MassGrams:      85,
		SizeCm:         28,
		WingspanCm:     38,
		Plumage:        "Bright blue crest and back, white face, black necklace.",
		Vocalization:   "Loud 'jay-jay', whistles, excellent mimic (e.g., hawks).",
		SocialBehavior: "Social in family groups, bold, assertive, known for mobbing predators.",
		FlightStyle:    "Undulating flight with quick wingbeats and glides.",
		Nesting:        "Cup-shaped nest of twigs, grass, and mud in trees.",
	},
	{
		Species:        "Fish Crow",
		EQ:             "High (similar to American Crow)",
		Habitat:        "Primarily southern/central IN, near rivers, lakes.",
		Beak:           "Slightly more slender than American Crow, subtle hook.",
		MassGrams:      300,
		SizeCm:         38,
		WingspanCm:     88,
		Plumage:        "Entirely black, often slightly glossier than American Crow.",
		Vocalization:   "Distinctly nasal 'cah' or a two-note 'uh-uh'.",
		SocialBehavior: "Gregarious, often in flocks, especially when foraging.",
		FlightStyle:    "Direct with steady wingbeats, similar to American Crow.",
		Nesting:        "Stick nests in trees, often near water.",
	},
	{
		Species:        "Common Raven",
		EQ:             "Very High (often cited ~2.49)",
		Habitat:        "Rare but increasing; rugged, forested areas, bluffs.",
		Beak:           "Large, heavy, powerful, with a distinct curve.",
		MassGrams:      1300,
		SizeCm:         62,
		WingspanCm:     132,
		Plumage:        "Entirely black, shaggy throat feathers (hackles), glossy.",
		Vocalization:   "Deep, resonant 'gronk-gronk', croaks, toots.",
		SocialBehavior: "Often in pairs or family groups; complex social interactions.",
		FlightStyle:    "Powerful, soars frequently, performs aerial acrobatics.",
		Nesting:        "Large stick nests on cliffs or in tall trees; pairs for life.",
	},
}

// Corvids returns the species profiles in display order.
func Corvids() []Corvid {
	return append([]Corvid(nil), corvids...)
}

// FindCorvid looks a species up by name.
func FindCorvid(species string) (Corvid, bool) {
	for _, c := range corvids {
		if c.Species == species {
			return c, true
		}
	}
	return Corvid{}, false
}

// Myth is a corvid misconception the debunker explains.
type Myth struct {
	ID    string
	Title string
}

var corvidMyths = []Myth{
	{"omen", "Corvids are omens of bad luck."},
	{"talk", "Splitting a crow's tongue helps it talk."},
	{"intelligence", `Corvids are unintelligent "bird brains".`},
}

// FindMyth looks a myth up by its statement.
func FindMyth(title string) (Myth, bool) {
	for _, m := range corvidMyths {
		if m.Title == title {
			return m, true
		}
	}
	return Myth{}, false
}

func corvidCards() []Card {
	cards := make([]Card, len(corvids))
	for i, c := range corvids {
		cards[i] = Card{
			Title: c.Species,
			Text:  c.Habitat,
			Meta: []string{
				fmt.Sprintf("Mass: %d g", c.MassGrams),
				fmt.Sprintf("Size: %d cm", c.SizeCm),
				fmt.Sprintf("Wingspan: %d cm", c.WingspanCm),
				"Vocalization: " + c.Vocalization,
				"Key Behavior: " + c.SocialBehavior,
			},
			Actions: []string{"summary"},
		}
	}
	return cards
}

func mythCards() []Card {
	cards := make([]Card, len(corvidMyths))
	for i, m := range corvidMyths {
		cards[i] = Card{Title: m.Title, Actions: []string{"myth"}}
	}
	return cards
}

func corvidMassChart() charts.Chart {
	labels := make([]string, len(corvids))
	data := make([]float64, len(corvids))
	for i, c := range corvids {
		labels[i] = c.Species
		data[i] = float64(c.MassGrams)
	}
	return charts.Chart{
		ID:     "mass",
		Type:   charts.TypeBar,
		Labels: charts.Labels(labels...),
		Datasets: []charts.Dataset{{
			Label:           "Average Mass (g)",
			Data:            data,
			BackgroundColor: []string{"rgba(54, 162, 235, 0.6)"},
			BorderColor:     []string{"rgba(54, 162, 235, 1)"},
			BorderWidth:     1,
		}},
		Options: map[string]interface{}{
			"scales": map[string]interface{}{"y": map[string]interface{}{"beginAtZero": true}},
		},
	}
}

var corvidPage = Page{
	Slug:       "indiana-corvid-species-analysis",
	Title:      "Indiana Corvid Species Analysis",
	Subtitle:   "An Interactive Infographic",
	Summary:    "Crows, jays and ravens of Indiana compared by mass, habitat and behavior, with AI-generated species summaries.",
	Date:       "July 16, 2025",
	Categories: []string{"Nature", "Data Viz", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:         "mass",
			Title:      "Comparative Mass Analysis",
			Paragraphs: []string{"This chart visualizes the significant size differences among Indiana's common corvids."},
			Charts:     []string{"mass"},
		},
		{ID: "species", Title: "Species Deep Dive", Cards: corvidCards()},
	},
	Actions: []Action{{
		ID:        "summary",
		Label:     "✨ Generate AI Summary",
		BusyLabel: "Generating...",
		Title:     "AI-Generated Overview: ",
		Input:     InputItem,
		Fallbacks: models.Fallbacks{
			// A failed status still has its body read, which lacks candidates.
			Status:     "Could not generate summary.",
			Unexpected: "Could not generate summary.",
			Transport:  "Error generating summary: the AI service could not be reached.",
		},
	}},
	Charts: []charts.Chart{corvidMassChart()},
}

var interactiveCorvidPage = Page{
	Slug:       "interactive-indiana-corvid-species-analysis",
	Title:      "Interactive Corvid Analysis",
	Subtitle:   "An AI-Enhanced Infographic for Indiana Species",
	Summary:    "Indiana's corvids side by side, with AI species overviews and a myth debunker for common corvid folklore.",
	Date:       "July 17, 2025",
	Categories: []string{"Nature", "Data Viz", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{ID: "species", Title: "Species Deep Dive", Cards: corvidCards()},
		{ID: "mass", Title: "Comparative Mass", Charts: []string{"mass"}},
		{ID: "myths", Title: "AI Myth Debunker", Cards: mythCards()},
	},
	Actions: []Action{
		{
			ID:        "summary",
			Label:     "✨ Generate AI Summary",
			BusyLabel: "Generating...",
			Title:     "AI-Generated Overview: ",
			Input:     InputItem,
			Fallbacks: interactiveCorvidFallbacks,
		},
		{
			ID:        "myth",
			Label:     "✨ Explain with AI",
			BusyLabel: "Debunking...",
			Input:     InputItem,
			Fallbacks: interactiveCorvidFallbacks,
		},
	},
	Charts: []charts.Chart{corvidMassChart()},
}

var interactiveCorvidFallbacks = models.Fallbacks{
	Status:     "Error: API request failed.",
	Unexpected: "Could not generate a response. The AI model returned an unexpected format.",
	Transport:  "An error occurred while contacting the AI. Please try again.",
}
