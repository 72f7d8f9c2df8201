package content

import (
	"portfolio/charts"
	"portfolio/models"
)

// Curio is a Hoodoo materia medica entry.
type Curio struct {
	Name string
	Uses string
}

var curios = []Curio{
	{"High John the Conqueror Root", "Success, power, gambling luck, protection."},
	{"Five Finger Grass", "Success in endeavors done with the hands."},
	{"Graveyard Dirt", "Spirit work, protection, jinxing."},
	{"Red Brick Dust", "Protection, neutralizing enemy powders."},
	{"Hyssop", "Purification, home cleansing, uncrossing."},
	{"Patchouli Leaf", "Love-drawing, money-drawing, fertility."},
	{"Lodestone", "Drawing love, money, or luck."},
	{"Devil's Shoestring", "Protection from gossip, gambling luck, job-getting."},
}

// FindCurio looks a curio up by name.
func FindCurio(name string) (Curio, bool) {
	for _, c := range curios {
		if c.Name == name {
			return c, true
		}
	}
	return Curio{}, false
}

func curioCards() []Card {
	cards := make([]Card, len(curios))
	for i, c := range curios {
		cards[i] = Card{Title: c.Name, Text: c.Uses, Actions: []string{"lore"}}
	}
	return cards
}

func hoodooCharts() []charts.Chart {
	return []charts.Chart{
		{
			ID:         "aims",
			Type:       charts.TypeBar,
			Title:      "Primary Aims of Workings",
			Labels:     charts.Labels("Protection", "Justice", "Love", "Luck & Money", "Healing", "Cleansing & Uncrossing"),
			Horizontal: true,
			Datasets: []charts.Dataset{{
				Label:           "Frequency of Workings",
				Data:            []float64{95, 85, 75, 80, 70, 90},
				BackgroundColor: []string{"#593C1F", "#A6763D", "#F2C144", "#7d5c34", "#c79a63", "#d4af72"},
				BorderColor:     []string{"#FFFFFF"},
				BorderWidth:     2,
			}},
			Options: map[string]interface{}{
				"plugins": map[string]interface{}{"legend": map[string]interface{}{"display": false}},
			},
		},
		{
			ID:     "mojo",
			Type:   charts.TypeDoughnut,
			Title:  "Anatomy of a Mojo Bag",
			Labels: charts.Labels("Roots & Herbs", "Minerals & Curios", "Personal Concerns", "Symbolic Items (e.g., coins)"),
			Datasets: []charts.Dataset{{
				Label:           "Mojo Components",
				Data:            []float64{40, 25, 15, 20},
				BackgroundColor: []string{"#593C1F", "#A6763D", "#F2C144", "#7d5c34"},
				BorderColor:     []string{"#F2EBDC"},
				BorderWidth:     4,
			}},
			Options: map[string]interface{}{
				"plugins": map[string]interface{}{"legend": map[string]interface{}{"display": true, "position": "bottom"}},
			},
		},
	}
}

var hoodooFallbacks = models.Fallbacks{
	Status:     "Sorry, there was an error connecting to the AI. Please try again later.",
	Unexpected: "Sorry, I couldn't retrieve that information. The response from the AI was not as expected.",
	Transport:  "Sorry, there was an error connecting to the AI. Please try again later.",
}

var hoodooPage = Page{
	Slug:       "enduring-power-of-hoodoo",
	Title:      "The Enduring Power of Hoodoo",
	Subtitle:   "A spiritual tradition of resistance, resilience, and empowerment.",
	Summary:    "Rootwork's African, Indigenous and European roots, its materia medica and the aims of its workings, with AI folklore notes and symbolic inspiration.",
	Date:       "July 19, 2025",
	Categories: []string{"Culture", "History", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:    "what",
			Title: "What is Hoodoo?",
			Paragraphs: []string{
				"Hoodoo, also known as Rootwork or Conjure, is an African-American spiritual tradition focused on personal empowerment and achieving tangible results in everyday life. It is a system of folk magic, not an organized religion.",
				`Practitioners use knowledge of herbs, roots, minerals, and spirits to create "workings" for protection, love, luck, and justice, rooted in West and Central African spiritual beliefs and adapted for survival in the American South.`,
			},
			Cards: []Card{
				{Title: "Hoodoo (Rootwork)", Text: "Folk magic system, informal, individualized, focused on practical results."},
				{Title: "Voodoo (Vodou)", Text: "Organized religion with a priesthood, communal rituals, and worship of spirits (Lwa)."},
			},
		},
		{
			ID:         "roots",
			Title:      "The Roots of the Work",
			Paragraphs: []string{"Hoodoo is a syncretic tradition, weaving together spiritual technologies from across the globe, a testament to the resilience of ancestral knowledge."},
			Cards: []Card{
				{Title: "West & Central Africa", Text: "Bakongo, Fon, Ewe, Yoruba & Islamic concepts."},
				{Title: "Indigenous Americas", Text: "Local botanical and healing knowledge."},
				{Title: "Europe", Text: "Folk magic & Christian elements (Bible, Psalms)."},
			},
		},
		{ID: "toolkit", Title: "The Rootworker's Toolkit", Cards: curioCards()},
		{
			ID:         "analysis",
			Title:      "Analyzing the Work",
			Paragraphs: []string{`The goals of Hoodoo "workings" reflect the core desires for a better, more secure life, often using talismans like the Mojo Bag, a "prayer in a bag" containing curated items to achieve a specific goal.`},
			Charts:     []string{"aims", "mojo"},
		},
		{
			ID:         "inspiration",
			Title:      "✨ Find Symbolic Inspiration",
			Paragraphs: []string{"Describe an intention and receive reflective, symbolic concepts. No spells or instructions are given."},
			Actions:    []string{"inspiration"},
		},
	},
	Actions: []Action{
		{
			ID:        "lore",
			Label:     "✨ Get Folkloric Insight",
			BusyLabel: "Loading...",
			Input:     InputItem,
			Fallbacks: hoodooFallbacks,
		},
		{
			ID:           "inspiration",
			Label:        "✨ Find Inspiration",
			BusyLabel:    "Reflecting...",
			Input:        InputText,
			Placeholder:  "e.g., 'seeking clarity' or 'needing protection'",
			EmptyMessage: "Please describe an intention first.",
			Fallbacks:    hoodooFallbacks,
		},
	},
	Charts: hoodooCharts(),
}

// Tradition is one African spiritual tradition with the context its
// generated proverbs and reflections draw on.
type Tradition struct {
	Name        string
	Region      string
	Description string
	Context     string
}

var traditions = []Tradition{
	{
		Name:        "Yoruba Ifá/Orisha",
		Region:      "West Africa",
		Description: "This tradition features a Supreme Creator, Olodumare, and a vast pantheon of Orishas who govern aspects of life and nature.",
		Context:     "Yoruba tradition, which values wisdom (Ifá), community, destiny (Ori), and the power of nature through Orishas like Shango (justice) and Oshun (love).",
	},
	{
		Name:        "Zulu Ancestral Veneration",
		Region:      "Southern Africa",
		Description: "Zulu spirituality centers on the Supreme Being, Unkulunkulu, and the Amadlozi (ancestral spirits) who act as vital intermediaries.",
		Context:     "Zulu tradition, which is centered on ancestral veneration (Amadlozi), the concept of Ubuntu (I am because we are), and a deep respect for social order and lineage.",
	},
	{
		Name:        "Kongo Religion",
		Region:      "Central Africa",
		Description: "The Kongo worldview is captured in the Dikenga cosmogram. It represents the cyclical journey of the soul through birth, life, death, and spiritual existence, connecting the two worlds.",
		Context:     "Kongo spirituality, which is symbolized by the Dikenga cosmogram representing the cyclical nature of life and the connection between the physical and spirit worlds (Ku Nseke and Ku Mpèmba).",
	},
	{
		Name:        "San Traditional Religion",
		Region:      "Southern Africa",
		Description: "As one of the world's oldest cultures, San spirituality is deeply tied to nature and shamanism. The trance dance is the central ritual, connecting the community to the spirit world for healing and guidance.",
		Context:     "San tradition, one of the world's oldest, which involves a deep connection to nature, the spirit world through a trance dance, and the creator-trickster god ǀKágge̥n.",
	},
	{
		Name:        "Igbo Odinani",
		Region:      "West Africa",
		Description: "Odinani features a Supreme Being, Chukwu, a personal spirit (Chi), and deities called Arusi. The earth goddess Ala is paramount.",
		Context:     "Igbo Odinani, which emphasizes a personal spiritual guide (Chi), a supreme creator (Chukwu), and the moral authority of the earth goddess Ala, who governs ethics and justice.",
	},
	{
		Name:        "Akan Spirituality",
		Region:      "West Africa",
		Description: "Akan ethics are transmitted through a rich visual language of Adinkra symbols. Each symbol represents a concept or proverb that guides communal life and moral conduct.",
		Context:     "Akan tradition, which uses Adinkra symbols to convey concepts like God's supremacy (Gye Nyame) and the wisdom of learning from the past (Sankofa), all rooted in a belief in the creator Onyame.",
	},
}

// FindTradition looks a tradition up by name.
func FindTradition(name string) (Tradition, bool) {
	for _, t := range traditions {
		if t.Name == name {
			return t, true
		}
	}
	return Tradition{}, false
}

func traditionCards() []Card {
	cards := make([]Card, len(traditions))
	for i, t := range traditions {
		cards[i] = Card{Title: t.Name, Subtitle: t.Region, Text: t.Description, Actions: []string{"proverb", "reflection"}}
	}
	return cards
}

var scribeFallbacks = models.Fallbacks{
	Status:     "The AI scribe is resting. Please try again later.",
	Unexpected: "The AI scribe is resting. Please try again later.",
	Transport:  "Could not connect to the AI scribe.",
}

var traditionsPage = Page{
	Slug:       "journey-into-african-spiritual-traditions",
	Title:      "Unveiling the Myriad Worlds",
	Subtitle:   "A journey into African spiritual traditions",
	Summary:    "Core concepts shared across African spiritual traditions and six traditions up close, with AI-generated proverbs and reflection questions.",
	Date:       "July 21, 2025",
	Categories: []string{"Culture", "History", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:    "core-concepts",
			Title: "Core Concepts: The Fabric of Belief",
			Cards: []Card{
				{Icon: "🌍", Title: "Rich Diversity", Text: `"African Spirituality" is an umbrella for countless distinct ethnic religions, not a single monolithic faith.`},
				{Icon: "🗣️", Title: "Oral Traditions", Text: "Knowledge is a living thing, passed down through stories, songs, and proverbs, not static scripture."},
				{Icon: "🙏", Title: "Ancestor Veneration", Text: "The deceased remain active community members, guiding and influencing the living from the spirit world."},
				{Icon: "🌿", Title: "Animism & Nature", Text: "A life force connects all things. Spirits inhabit animals, plants, rivers, and mountains, demanding respect."},
			},
		},
		{ID: "traditions", Title: "A Glimpse into Specific Traditions", Cards: traditionCards()},
		{
			ID:    "diaspora",
			Title: "Global Echoes: Diaspora and Resilience",
			Paragraphs: []string{
				"Through the transatlantic slave trade, these spiritual traditions were carried to the Americas. They didn't just survive; they adapted and evolved, blending with other faiths and giving rise to new religions like Santería in Cuba (from Yoruba) and Palo Mayombe in Cuba (from Kongo).",
			},
		},
	},
	Actions: []Action{
		{
			ID:        "proverb",
			Label:     "✨ Generate Proverb",
			BusyLabel: "Generating...",
			Input:     InputItem,
			Fallbacks: scribeFallbacks,
		},
		{
			ID:        "reflection",
			Label:     "🤔 Generate Reflection",
			BusyLabel: "Generating...",
			Input:     InputItem,
			Fallbacks: scribeFallbacks,
		},
	},
}

// HairCulture is one tradition's beliefs about cut hair and how it is
// disposed of. Methods are shares in percent.
type HairCulture struct {
	Name    string
	Beliefs string
	Reasons string
	Methods map[string]float64
}

var hairMethods = []string{"Burning", "Burying", "Sacred Storage", "Offering to Nature"}

var hairCultures = []HairCulture{
	{
		Name:    "African American (Hoodoo)",
		Beliefs: "Hair holds spirit and energy, making it a powerful ingredient in rootwork. It maintains a strong connection to the individual and can be used for control or harm.",
		Reasons: "Primarily, for protection from witchcraft and malevolent spells. It also serves as a method for spiritual cleansing and releasing old, negative energy.",
		Methods: map[string]float64{"Burning": 100},
	},
	{
		Name:    "General African Traditions",
		Beliefs: "Often considered the 'seat of the soul.' A sympathetic connection to the owner persists even after being cut, allowing sorcerers to use it for magical manipulation.",
		Reasons: "Protection from witchcraft and sorcery. Preventing enemies from gaining spiritual power over the individual.",
		Methods: map[string]float64{"Burning": 50, "Burying": 40, "Sacred Storage": 10},
	},
	{
		Name:    "Native American Traditions",
		Beliefs: "Hair is a physical extension of one's thoughts, prayers, and spirit. It holds personal history and energy.",
		Reasons: "Honoring deceased loved ones, releasing prayers to the Creator, marking personal transformation, spiritual release, and self-renewal.",
		Methods: map[string]float64{"Burning": 60, "Burying": 20, "Offering to Nature": 20},
	},
	{
		Name:    "Igbo (Widowhood Rituals)",
		Beliefs: "Hair is a component of ritual purification, symbolizing a transition from one state of being to another.",
		Reasons: "Primarily for ritual cleansing for widows, marking the end of the mourning period and a return to society.",
		Methods: map[string]float64{"Burning": 100},
	},
	{
		Name:    "Baluba (Death Rituals)",
		Beliefs: "Bodily matter such as hair and nails are intrinsically connected to a person's soul and its proper journey after death.",
		Reasons: "To ensure the soul is properly buried in its ancestral ground for a peaceful transition, even if the person died far from home.",
		Methods: map[string]float64{"Burying": 100},
	},
}

// FindHairCulture looks a culture up by name.
func FindHairCulture(name string) (HairCulture, bool) {
	for _, c := range hairCultures {
		if c.Name == name {
			return c, true
		}
	}
	return HairCulture{}, false
}

func hairCultureOptions() []Option {
	opts := make([]Option, len(hairCultures))
	for i, c := range hairCultures {
		opts[i] = Option{Value: c.Name, Label: c.Name}
	}
	return opts
}

func hairCultureCards() []Card {
	cards := make([]Card, len(hairCultures))
	for i, c := range hairCultures {
		cards[i] = Card{Title: c.Name, Text: c.Beliefs, Meta: []string{"Primary reason for disposal: " + c.Reasons}}
	}
	return cards
}

func hairMethodsChart() charts.Chart {
	names := make([]string, len(hairCultures))
	for i, c := range hairCultures {
		names[i] = c.Name
	}
	colors := []string{"#8B4513", "#A0522D", "#DAA520", "#6B8E23"}
	sets := make([]charts.Dataset, len(hairMethods))
	for i, m := range hairMethods {
		data := make([]float64, len(hairCultures))
		for j, c := range hairCultures {
			data[j] = c.Methods[m]
		}
		sets[i] = charts.Dataset{Label: m, Data: data, BackgroundColor: []string{colors[i]}}
	}
	return charts.Chart{
		ID:       "disposal",
		Type:     charts.TypeBar,
		Title:    "Disposal Methods by Tradition (%)",
		Labels:   charts.Labels(names...),
		Datasets: sets,
		Stacked:  true,
	}
}

var hairPage = Page{
	Slug:       "sacred-act-of-burning-hair",
	Title:      "The Sacred Act of Burning Hair",
	Subtitle:   "An interactive infographic tracing a profound spiritual practice from its African origins to its enduring presence in the diaspora.",
	Summary:    "Why cut hair is burned, buried or kept across African, diasporic and Native American traditions, with an AI assistant for each tradition's beliefs.",
	Date:       "July 23, 2025",
	Categories: []string{"Culture", "History", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:         "motivations",
			Title:      "The Core Motivations",
			Paragraphs: []string{"The custom is driven by a rich tapestry of spiritual beliefs, all pointing to hair as a potent extension of the self."},
			Cards: []Card{
				{Title: "Spiritual Protection", Text: `The primary reason is to neutralize hair's potential use in malevolent magic or "Hoodoo" by rendering it spiritually inert.`},
				{Title: "Energetic Cleansing", Text: "Hair is a repository of energy. Burning it is a ritual of release, symbolizing letting go of the past and embracing renewal."},
				{Title: "Folk Beliefs", Text: "Other traditions include preventing headaches caused by birds using hair in nests or sending prayers to the universe via smoke."},
			},
		},
		{
			ID:         "legacy",
			Title:      "A Transatlantic Legacy",
			Paragraphs: []string{"This practice is a direct cultural inheritance that journeyed across the Atlantic and was solidified in the diaspora."},
			Timeline: []TimelineEntry{
				{Year: "African Origins", Event: `Belief in "contagious magic": separated hair retains a spiritual connection to its owner.`},
				{Year: "Diasporic Amplification", Event: "Hoodoo emphasized protective magic, solidifying hair burning as a key defensive ritual."},
				{Year: "Modern Resilience", Event: "The practice continues as a living link to ancestral knowledge and spiritual self-preservation."},
			},
		},
		{
			ID:         "compare",
			Title:      "Explore & Compare Beliefs",
			Paragraphs: []string{"Select a tradition to compare its hair disposal methods and the beliefs behind them. Then, ask our AI assistant for more details."},
			Cards:      hairCultureCards(),
			Charts:     []string{"disposal"},
			Actions:    []string{"ask"},
		},
	},
	Actions: []Action{{
		ID:              "ask",
		Label:           "Ask Gemini",
		BusyLabel:       "Thinking...",
		Title:           "Gemini's insight on ",
		Input:           InputText,
		Items:           hairCultureOptions(),
		Placeholder:     "e.g., How does this relate to other rituals?",
		EmptyMessage:    "Please enter a question.",
		FallbackAsError: true,
		Markdown:        true,
		Fallbacks: models.Fallbacks{
			Status:     "Sorry, an error occurred. The AI request failed.",
			Unexpected: "Sorry, an error occurred. Received an unexpected response structure from the API.",
			Transport:  "Sorry, an error occurred. The AI service could not be reached.",
		},
	}},
	Charts: []charts.Chart{hairMethodsChart()},
}
