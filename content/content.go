// Package content holds the hard-coded datasets and page descriptors of the
// site. Everything here is built once at package load and never mutated;
// accessors hand out copies.
package content

import (
	"strings"

	"portfolio/charts"
	"portfolio/models"
)

// Page kinds
const (
	KindInfographic = "infographic"
	KindChat        = "chat"
)

// InputKind describes what an action reads from the reader.
type InputKind string

const (
	InputNone   InputKind = "none"
	InputText   InputKind = "text"
	InputItem   InputKind = "item"
	InputChoice InputKind = "choice"
	InputPlan   InputKind = "plan"
	// InputPair reads two free-text fields, Input and Context.
	InputPair InputKind = "pair"
)

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Action describes one "ask the AI" interaction on a page.
type Action struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	BusyLabel string    `json:"busy_label"`
	Title     string    `json:"title,omitempty"` // heading of the result slot
	Input     InputKind `json:"input"`

	Placeholder        string `json:"placeholder,omitempty"`
	ContextPlaceholder string `json:"context_placeholder,omitempty"`
	EmptyMessage       string `json:"-"`

	// Items, when set, renders an item selector in the action's form and
	// restricts the request item to these values.
	Items []Option `json:"items,omitempty"`

	// Options lists the choices of InputChoice actions and the goals of
	// InputPlan actions.
	Options         []Option `json:"options,omitempty"`
	Durations       []Option `json:"durations,omitempty"`
	DefaultDuration string   `json:"default_duration,omitempty"`

	Fallbacks models.Fallbacks `json:"-"`
	// FallbackAsError shows fallback sentences in the error slot instead of
	// the result slot.
	FallbackAsError bool `json:"-"`
	// Markdown results are rendered through the sanitizing renderer; others
	// are shown as quoted plain text.
	Markdown bool `json:"markdown"`
}

// TimelineEntry is one dated event.
type TimelineEntry struct {
	Year  string
	Event string
}

// Highlight is an at-a-glance fact card.
type Highlight struct {
	Title   string
	Content string
	Color   string
}

// Card is one tile of a section. Each of its Actions renders a button that
// runs that action with the card title as the item.
type Card struct {
	Title    string
	Subtitle string
	Text     string
	ImageURL string
	Icon     string
	Meta     []string
	Actions  []string
}

// Tab groups cards under a label.
type Tab struct {
	Label string
	Cards []Card
}

// Section is a block of a page.
type Section struct {
	ID         string
	Title      string
	Paragraphs []string
	Cards      []Card
	Tabs       []Tab
	Highlights []Highlight
	Timeline   []TimelineEntry
	Charts     []string // chart IDs
	Actions    []string // action IDs rendered as forms
}

// Page describes one blog page.
type Page struct {
	Slug       string
	Title      string
	Subtitle   string
	Summary    string
	Date       string
	Categories []string
	Kind       string
	Sections   []Section
	Actions    []Action
	Charts     []charts.Chart
	Exportable bool
	Chat       bool
	Footer     string
}

// Action returns the page action with the given ID.
func (p Page) Action(id string) (Action, bool) {
	for _, a := range p.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Chart returns the page chart with the given ID.
func (p Page) Chart(id string) (charts.Chart, bool) {
	for _, c := range p.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return charts.Chart{}, false
}

// URL is the page's route.
func (p Page) URL() string {
	return "/blog/" + p.Slug
}

// Text flattens the page's readable copy for indexing.
func (p Page) Text() string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString(". ")
	b.WriteString(p.Subtitle)
	b.WriteString(". ")
	b.WriteString(p.Summary)
	b.WriteString(" ")
	b.WriteString(strings.Join(p.Categories, " "))
	for _, s := range p.Sections {
		b.WriteString(" ")
		b.WriteString(s.Title)
		for _, para := range s.Paragraphs {
			b.WriteString(" ")
			b.WriteString(para)
		}
		cards := append([]Card(nil), s.Cards...)
		for _, t := range s.Tabs {
			cards = append(cards, t.Cards...)
		}
		for _, c := range cards {
			b.WriteString(" ")
			b.WriteString(c.Title)
			b.WriteString(" ")
			b.WriteString(c.Subtitle)
			b.WriteString(" ")
			b.WriteString(c.Text)
		}
		for _, h := range s.Highlights {
			b.WriteString(" ")
			b.WriteString(h.Title)
			b.WriteString(" ")
			b.WriteString(h.Content)
		}
		for _, e := range s.Timeline {
			b.WriteString(" ")
			b.WriteString(e.Event)
		}
	}
	return b.String()
}

// PageSummary returns the JSON listing entry of the page.
func (p Page) PageSummary() models.PageSummary {
	ids := make([]string, len(p.Actions))
	for i, a := range p.Actions {
		ids[i] = a.ID
	}
	return models.PageSummary{
		Slug:       p.Slug,
		Title:      p.Title,
		Summary:    p.Summary,
		Date:       p.Date,
		Categories: append([]string(nil), p.Categories...),
		Actions:    ids,
	}
}

var pages = []Page{
	agelessAthletesPage,
	centenarianPage,
	lesterWrightPage,
	agelessVelocityPage,
	breathingPage,
	ecsPage,
	sleepPage,
	cottontailPage,
	nssPage,
	statisticsPage,
	skepticsPage,
	studyPage,
	corvidPage,
	interactiveCorvidPage,
	hoodooPage,
	traditionsPage,
	hairPage,
}

// Pages returns every blog page in index order.
func Pages() []Page {
	out := make([]Page, len(pages))
	for i, p := range pages {
		out[i] = p.clone()
	}
	return out
}

// Lookup finds a page by slug.
func Lookup(slug string) (Page, bool) {
	for _, p := range pages {
		if p.Slug == slug {
			return p.clone(), true
		}
	}
	return Page{}, false
}

// clone copies every slice reachable from the page.
func (p Page) clone() Page {
	p.Categories = append([]string(nil), p.Categories...)
	p.Sections = cloneSections(p.Sections)
	p.Charts = cloneCharts(p.Charts)
	if p.Actions != nil {
		actions := make([]Action, len(p.Actions))
		for i, a := range p.Actions {
			a.Options = append([]Option(nil), a.Options...)
			a.Durations = append([]Option(nil), a.Durations...)
			a.Items = append([]Option(nil), a.Items...)
			actions[i] = a
		}
		p.Actions = actions
	}
	return p
}

func cloneSections(in []Section) []Section {
	if in == nil {
		return nil
	}
	out := make([]Section, len(in))
	for i, s := range in {
		s.Paragraphs = append([]string(nil), s.Paragraphs...)
		s.Cards = cloneCards(s.Cards)
		if s.Tabs != nil {
			tabs := make([]Tab, len(s.Tabs))
			for j, t := range s.Tabs {
				t.Cards = cloneCards(t.Cards)
				tabs[j] = t
			}
			s.Tabs = tabs
		}
		s.Highlights = append([]Highlight(nil), s.Highlights...)
		s.Timeline = append([]TimelineEntry(nil), s.Timeline...)
		s.Charts = append([]string(nil), s.Charts...)
		s.Actions = append([]string(nil), s.Actions...)
		out[i] = s
	}
	return out
}

func cloneCards(in []Card) []Card {
	if in == nil {
		return nil
	}
	out := make([]Card, len(in))
	for i, c := range in {
		c.Meta = append([]string(nil), c.Meta...)
		c.Actions = append([]string(nil), c.Actions...)
		out[i] = c
	}
	return out
}

func cloneCharts(in []charts.Chart) []charts.Chart {
	if in == nil {
		return nil
	}
	out := make([]charts.Chart, len(in))
	for i, c := range in {
		labels := make([]charts.Label, len(c.Labels))
		for j, l := range c.Labels {
			labels[j] = append(charts.Label(nil), l...)
		}
		c.Labels = labels
		if c.Datasets != nil {
			sets := make([]charts.Dataset, len(c.Datasets))
			for j, d := range c.Datasets {
				d.Data = append([]float64(nil), d.Data...)
				d.Points = append([]charts.Point(nil), d.Points...)
				d.BackgroundColor = append([]string(nil), d.BackgroundColor...)
				d.BorderColor = append([]string(nil), d.BorderColor...)
				sets[j] = d
			}
			c.Datasets = sets
		}
		out[i] = c
	}
	return out
}

// SiteFallbacks are used for any fallback a page leaves empty.
var SiteFallbacks = models.Fallbacks{
	Status:     "The AI service is unavailable right now. Please try again later.",
	Unexpected: "The AI returned an unexpected response.",
	Transport:  "An error occurred while contacting the AI service. Please try again.",
	Blocked:    "Your request was blocked. Reason: ",
}
