package content

import (
	"fmt"

	"portfolio/charts"
	"portfolio/models"
)

// AgelessAthlete is a competitor featured on the decades page.
type AgelessAthlete struct {
	Name     string
	Sport    string
	Facts    string
	ImageURL string
}

// Decade groups athletes under a tab label.
type Decade struct {
	Label    string
	Athletes []AgelessAthlete
}

var decades = []Decade{
	{"40s", []AgelessAthlete{
		{"Cristiano Ronaldo", "Soccer", "Continues to compete at the highest levels, attributing his longevity to meticulous diet, training, and mental well-being.", "https://placehold.co/400x400/c0392b/ffffff?text=CR7"},
		{"Thiago Silva", "Soccer", "A leading defender who returned to his boyhood club in Brazil after a distinguished career in Europe.", "https://placehold.co/400x400/2980b9/ffffff?text=TS"},
		{"Lee Hyun-il", "Badminton", "Known for his exceptionally smooth and stable movements, allowing him to compete at a world-class level well into his late 30s.", "https://placehold.co/400x400/27ae60/ffffff?text=LHI"},
	}},
	{"50s", []AgelessAthlete{
		{"Kazuyoshi Miura", "Soccer", `Known as "King Kazu", he is one of the oldest professional soccer players, with a career spanning nearly four decades.`, "https://placehold.co/400x400/f39c12/ffffff?text=King+Kazu"},
		{"Andy Macdonald", "Skateboarding", "A professional skateboarder who, at 50, aimed to compete in the Olympics, showcasing incredible longevity in action sports.", "https://placehold.co/400x400/8e44ad/ffffff?text=Andy+M"},
	}},
	{"60s", []AgelessAthlete{
		{"Lana Zilberman", "Badminton", "Won a round at the US Open at age 65, competing in mixed doubles with her son, a testament to skill and family teamwork.", "https://placehold.co/400x400/16a085/ffffff?text=LZ"},
		{"Dave Stanley", "Curling", "Inducted into the Governor General's Curling Club at 69, reflecting a long and successful amateur career with numerous championships.", "https://placehold.co/400x400/34495e/ffffff?text=DS"},
	}},
	{"70s", []AgelessAthlete{
		{"Dy Gray", "Running", "Started her running journey in her 70s and was still competing at age 90, proving it's never too late to start.", "https://placehold.co/400x400/7f8c8d/ffffff?text=Dy+G"},
		{"Edwina Ellis", "Inline Skating", "Began inline skating at 69 and was still enjoying it at 73, even touring internationally with her skates.", "https://placehold.co/400x400/95a5a6/ffffff?text=EE"},
	}},
	{"80s", []AgelessAthlete{
		{"Dixon Hemphill", "Running", "At 91, he continued to run to maintain his high level of activity, demonstrating an ongoing commitment to fitness in very advanced age.", "https://placehold.co/400x400/d35400/ffffff?text=DH"},
	}},
	{"90s", []AgelessAthlete{
		{"Orville Rogers", "Running", "Began running at 50 and continued to break world records in track and field until he was nearly 100 years old.", "https://placehold.co/400x400/2c3e50/ffffff?text=OR"},
	}},
	{"100+", []AgelessAthlete{
		{"Lester Wright", "100m Dash", "Set a new centenarian world record at 100 years old with a time of 26.34 seconds, continuing a passion for running that began in the 1930s.", "https://placehold.co/400x400/3498db/ffffff?text=Lester+W"},
		{"Donald Pellmann", "Track & Field", "Set five world records in a single day at age 100. He only started competing seriously at age 70.", "https://placehold.co/400x400/2ecc71/ffffff?text=Donald+P"},
		{"Julia Hawkins", "100m Dash", `Nicknamed "Hurricane," she set world records for women over 100 and began her competitive running career at 101.`, "https://placehold.co/400x400/f1c40f/ffffff?text=Julia+H"},
	}},
}

// Decades returns the athlete tabs in display order.
func Decades() []Decade {
	out := make([]Decade, len(decades))
	for i, d := range decades {
		out[i] = Decade{Label: d.Label, Athletes: append([]AgelessAthlete(nil), d.Athletes...)}
	}
	return out
}

// FindAgelessAthlete looks an athlete up by name across every decade.
func FindAgelessAthlete(name string) (AgelessAthlete, bool) {
	for _, d := range decades {
		for _, a := range d.Athletes {
			if a.Name == name {
				return a, true
			}
		}
	}
	return AgelessAthlete{}, false
}

// Centenarian is a record-setting athlete aged 100 or more.
type Centenarian struct {
	Name        string
	Age         int
	Nationality string
	Achievement string
	Date        string
	Location    string
	Bio         string
	ImageURL    string
}

var centenarians = []Centenarian{
	{
		Name:        "Lester Wright",
		Age:         100,
		Nationality: "United States",
		Achievement: "100m in 26.34s",
		Date:        "2022-04-30",
		Location:    "Philadelphia, PA",
		Bio:         "A WWII veteran who earned four Bronze Battle Stars, Wright was also a successful dentist. He started running in the 1930s and was married to his high school sweetheart for over 80 years. His consistent training showcased a lifelong dedication to fitness.",
		ImageURL:    "https://placehold.co/400x400/3498db/ffffff?text=Lester+W.",
	},
	{
		Name:        "Donald Pellmann",
		Age:         100,
		Nationality: "United States",
		Achievement: "100m in 26.99s",
		Date:        "2015-09-20",
		Location:    "San Diego, CA",
		Bio:         "Set five world records in a single day at 100. He started competitive running at age 70 after a career at General Motors where he worked on the Apollo space program. His life motto was 'Someone has to do it'.",
		ImageURL:    "https://placehold.co/400x400/2ecc71/ffffff?text=Donald+P.",
	},
	{
		Name:        "Hidekichi Miyazaki",
		Age:         105,
		Nationality: "Japan",
		Achievement: "100m in 42.22s",
		Date:        "2015-09-23",
		Location:    "Kyoto, Japan",
		Bio:         "Nicknamed 'Golden Bolt', he started sprinting in his 90s. He famously mimicked Usain Bolt's lightning pose and expressed a desire to race him. He attributed his health to daily exercise and mindful eating.",
		ImageURL:    "https://placehold.co/400x400/e74c3c/ffffff?text=Hidekichi+M.",
	},
	{
		Name:        "Ida Keeling",
		Age:         100,
		Nationality: "United States",
		Achievement: "100m in 1:17.33",
		Date:        "2016-04-30",
		Location:    "Philadelphia, PA",
		Bio:         "Began running at 67 to cope with personal tragedy. Her journey became a powerful example of using fitness for healing and resilience. She held multiple world records and believed in exercise for both body and mind.",
		ImageURL:    "https://placehold.co/400x400/9b59b6/ffffff?text=Ida+K.",
	},
	{
		Name:        "Julia Hawkins",
		Age:         105,
		Nationality: "United States",
		Achievement: "100m in 1:02.95",
		Date:        "2021",
		Location:    "Louisiana, USA",
		Bio:         "Nicknamed 'Hurricane', she transitioned from competitive cycling to running after turning 100. She advised everyone to 'stay active if you want to be healthy and happy' and to find 'magic moments' in everyday life.",
		ImageURL:    "https://placehold.co/400x400/f1c40f/ffffff?text=Julia+H.",
	},
	{
		Name:        "Stanisław Kowalski",
		Age:         105,
		Nationality: "Poland",
		Achievement: "100m in 34.50s",
		Date:        "2015-06-27",
		Location:    "Torun, Poland",
		Bio:         "Became the oldest person in Europe to run a 100m race. He credited his longevity to never going to the doctor and doing whatever he wanted. He began running competitively at age 104.",
		ImageURL:    "https://placehold.co/400x400/e67e22/ffffff?text=Stanisław+K.",
	},
}

// Centenarians returns the six centenarian records, Lester Wright first.
func Centenarians() []Centenarian {
	return append([]Centenarian(nil), centenarians...)
}

// FindCentenarian looks a centenarian up by name.
func FindCentenarian(name string) (Centenarian, bool) {
	for _, c := range centenarians {
		if c.Name == name {
			return c, true
		}
	}
	return Centenarian{}, false
}

// Sprinter is a point of the centenarian 100m chart. Time is in seconds.
type Sprinter struct {
	Name   string
	Age    int
	Time   float64
	Gender string
}

var sprinters = []Sprinter{
	{"Lester Wright", 100, 26.34, "M"},
	{"Donald Pellmann", 100, 26.99, "M"},
	{"Waldo McBurney", 100, 39.97, "M"},
	{"Everett Hosack", 100, 43.00, "M"},
	{"Julia Hawkins", 101, 39.62, "F"},
	{"Ida Keeling", 100, 77.33, "F"}, // 1:17.33
}

// Sprinters returns the velocity chart data.
func Sprinters() []Sprinter {
	return append([]Sprinter(nil), sprinters...)
}

func athleteCards(athletes []AgelessAthlete) []Card {
	cards := make([]Card, len(athletes))
	for i, a := range athletes {
		cards[i] = Card{Title: a.Name, Subtitle: a.Sport, Text: a.Facts, ImageURL: a.ImageURL, Actions: []string{"insight"}}
	}
	return cards
}

func decadeTabs() []Tab {
	tabs := make([]Tab, len(decades))
	for i, d := range decades {
		tabs[i] = Tab{Label: d.Label, Cards: athleteCards(d.Athletes)}
	}
	return tabs
}

func athleteNames() []Option {
	var opts []Option
	for _, d := range decades {
		for _, a := range d.Athletes {
			opts = append(opts, Option{Value: a.Name, Label: a.Name})
		}
	}
	return opts
}

var agelessAthletesPage = Page{
	Slug:       "ageless-athletes",
	Title:      "Ageless Athletes",
	Subtitle:   "Celebrating athletes who redefine the limits of age, decade by decade.",
	Summary:    "Athletes from their 40s to past 100 who keep competing, with an AI insight on each journey.",
	Date:       "June 24, 2025",
	Categories: []string{"Health Tech", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{{
		ID:    "decades",
		Title: "Athletes by Decade",
		Tabs:  decadeTabs(),
	}},
	Actions: []Action{{
		ID:        "insight",
		Label:     "Get AI Insight",
		BusyLabel: "Generating…",
		Input:     InputItem,
		Options:   athleteNames(),
		Fallbacks: models.Fallbacks{
			Status:     "The journey of a thousand miles begins with a single step, at any age.",
			Unexpected: "Embrace movement as a lifelong gift to yourself.",
			Transport:  "Passion is the fuel that keeps the engine of dedication running for a lifetime.",
		},
	}},
	Footer: "Athlete data compiled from public records.",
}

func centenarianCards() []Card {
	cards := make([]Card, len(centenarians))
	for i, c := range centenarians {
		cards[i] = Card{
			Title:    c.Name,
			Subtitle: fmt.Sprintf("Age: %d", c.Age),
			Text:     c.Bio,
			ImageURL: c.ImageURL,
			Meta:     []string{c.Achievement, c.Date, c.Location, c.Nationality},
			Actions:  []string{"tip"},
		}
	}
	return cards
}

func centenarianNames() []Option {
	opts := make([]Option, len(centenarians))
	for i, c := range centenarians {
		opts[i] = Option{Value: c.Name, Label: c.Name}
	}
	return opts
}

const centenarianError = "Start small, stay consistent, and celebrate every step of your journey."

var centenarianPage = Page{
	Slug:       "centenarian-athletes-an-interactive-infographic",
	Title:      "Ageless Wonders",
	Subtitle:   "Discover the incredible stories of centenarian athletes who defy the limits of age.",
	Summary:    "Six record-setting sprinters aged 100 and over, with AI fitness tips and a CSV export of the data.",
	Date:       "June 20, 2025",
	Categories: []string{"Health Tech", "Data Viz"},
	Kind:       KindInfographic,
	Sections: []Section{{
		ID:    "athletes",
		Title: "Centenarian Record Holders",
		Cards: centenarianCards(),
	}},
	Actions: []Action{{
		ID:        "tip",
		Label:     "Get AI Fitness Tip",
		BusyLabel: "Generating…",
		Input:     InputItem,
		Options:   centenarianNames(),
		Fallbacks: models.Fallbacks{
			Status:     centenarianError,
			Unexpected: "Embrace every day as a new opportunity to move and be well.",
			Transport:  centenarianError,
		},
	}},
	Exportable: true,
	Footer:     "Powered by Go & Gemini. Data compiled from public records.",
}

func sprinterChart() charts.Chart {
	men := charts.Dataset{Label: "Men", BackgroundColor: []string{"rgba(59, 130, 246, 0.7)"}}
	women := charts.Dataset{Label: "Women", BackgroundColor: []string{"rgba(236, 72, 153, 0.7)"}}
	for _, s := range sprinters {
		p := charts.Point{X: s.Time, Y: float64(s.Age), R: 8}
		if s.Gender == "F" {
			women.Points = append(women.Points, p)
		} else {
			men.Points = append(men.Points, p)
		}
	}
	return charts.Chart{
		ID:       "sprinters",
		Type:     charts.TypeBubble,
		Title:    "Centenarian 100m Times",
		Datasets: []charts.Dataset{men, women},
		Options: map[string]interface{}{
			"scales": map[string]interface{}{
				"x": map[string]interface{}{"min": 5, "max": 80, "title": map[string]interface{}{"display": true, "text": "100m Time (Seconds)"}},
				"y": map[string]interface{}{"min": 99, "max": 106, "title": map[string]interface{}{"display": true, "text": "Age (Years)"}},
			},
		},
	}
}

func sprinterCards() []Card {
	cards := make([]Card, len(sprinters))
	for i, s := range sprinters {
		cards[i] = Card{Title: s.Name, Subtitle: fmt.Sprintf("Age: %d", s.Age), Meta: []string{fmt.Sprintf("Time: %.2fs", s.Time)}}
	}
	return cards
}

const healthDisclaimer = "**Disclaimer:** This information is for educational purposes only and is not a substitute for professional medical advice, diagnosis, or treatment. Always seek the advice of your physician or other qualified health provider with any questions you may have regarding a medical condition."

var agelessVelocityPage = Page{
	Slug:       "ageless-velocity",
	Title:      "Ageless Velocity",
	Subtitle:   "A visual exploration of centenarian sprinters who challenge the limits of age.",
	Summary:    "Centenarian 100m times plotted by age, with research-backed longevity insights and a health Q&A.",
	Date:       "June 22, 2025",
	Categories: []string{"Health Tech", "Data Viz", "AI"},
	Kind:       KindInfographic,
	Sections: []Section{
		{
			ID:     "chart",
			Title:  "Speed After 100",
			Cards:  sprinterCards(),
			Charts: []string{"sprinters"},
		},
		{
			ID:      "insights",
			Title:   "AI-Powered Longevity Insights",
			Actions: []string{"insights"},
		},
		{
			ID:      "qa",
			Title:   "AI-Powered Health & Longevity Q&A",
			Actions: []string{"ask"},
		},
	},
	Actions: []Action{
		{
			ID:        "insights",
			Label:     "Get Longevity Insights",
			BusyLabel: "Generating Insights…",
			Input:     InputNone,
			Markdown:  true,
			Fallbacks: models.Fallbacks{
				Status:     "Error: Could not connect to the insight service. Please check your connection and try again.",
				Unexpected: "Could not retrieve insights at this time. Remember that regular physical activity, a balanced diet, and strong social connections are widely recognized as key pillars of healthy aging.",
				Transport:  "Error: Could not connect to the insight service. Please check your connection and try again.",
			},
		},
		{
			ID:           "ask",
			Label:        "Ask AI",
			BusyLabel:    "Searching…",
			Input:        InputText,
			Placeholder:  "e.g., What are the benefits of cardiovascular exercise?",
			EmptyMessage: "Please enter a question.",
			Markdown:     true,
			Fallbacks: models.Fallbacks{
				Status:     "Error: Could not connect to the information service. Please check your connection.",
				Unexpected: "Could not retrieve information at this time. Please try again.",
				Transport:  "Error: Could not connect to the information service. Please check your connection.",
			},
		},
	},
	Charts: []charts.Chart{sprinterChart()},
	Footer: healthDisclaimer + " Athlete data from public records.",
}

// HealthDisclaimer is the mandatory note appended to health answers.
func HealthDisclaimer() string {
	return healthDisclaimer
}
