package views

import (
	"fmt"
	"html/template"

	"portfolio/content"
	"portfolio/models"
	"portfolio/services"
)

// SlotView is the render state of one action's result area.
type SlotView struct {
	Slug   string
	Action content.Action
	Item   string

	Loading   bool
	Settled   bool
	HasResult bool
	Result    string
	Error     string
	// HTML is the sanitized rendering of Result for Markdown actions.
	HTML template.HTML
}

// NewSlot derives the slot view from an interaction state.
func NewSlot(slug string, a content.Action, item string, phase services.Phase, st models.GenerationState) SlotView {
	v := SlotView{
		Slug:    slug,
		Action:  a,
		Item:    item,
		Loading: st.IsLoading,
		Settled: phase == services.PhaseSettled,
	}
	if st.Result != nil {
		v.HasResult = true
		v.Result = *st.Result
		if a.Markdown {
			v.HTML = services.RenderMarkdown(v.Result)
		}
	}
	if st.Error != nil {
		v.Error = *st.Error
	}
	return v
}

// ID is the DOM id of the slot.
func (v SlotView) ID() string {
	return domID("slot", v.Action.ID, v.Item)
}

// ShowButton reports whether the trigger button is still rendered. Card
// actions replace their button with the settled result.
func (v SlotView) ShowButton() bool {
	return !(v.Settled && v.Action.Input == content.InputItem)
}

// ChartView is a chart canvas with its Chart.js config.
type ChartView struct {
	ID     string
	Title  string
	Config template.JS
}

// CardView is a card with one slot per card action.
type CardView struct {
	content.Card
	Slots []SlotView
}

// TabView is a labelled group of cards.
type TabView struct {
	Label string
	Cards []CardView
}

// SectionView is a page section with its charts, cards and forms resolved.
type SectionView struct {
	content.Section
	CardViews  []CardView
	TabViews   []TabView
	ChartViews []ChartView
	Forms      []SlotView
}

// PageData drives the infographic template.
type PageData struct {
	Layout
	Page     content.Page
	Sections []SectionView
	// Chat is the chat action of chat-style pages.
	Chat       *content.Action
	Disclaimer string
}

// NewPageData resolves a page for rendering with every action idle.
func NewPageData(p content.Page) (PageData, error) {
	data := PageData{Layout: NewLayout(p.Title, "/blog"), Page: p}
	for _, s := range p.Sections {
		sv := SectionView{Section: s, CardViews: cardViews(p, s.Cards)}
		for _, t := range s.Tabs {
			sv.TabViews = append(sv.TabViews, TabView{Label: t.Label, Cards: cardViews(p, t.Cards)})
		}
		for _, id := range s.Charts {
			c, ok := p.Chart(id)
			if !ok {
				return data, fmt.Errorf("page %s: unknown chart %q", p.Slug, id)
			}
			cfg, err := c.JSON()
			if err != nil {
				return data, fmt.Errorf("page %s: chart %s: %w", p.Slug, id, err)
			}
			sv.ChartViews = append(sv.ChartViews, ChartView{ID: domID("chart", c.ID), Title: c.Title, Config: cfg})
		}
		for _, id := range s.Actions {
			a, ok := p.Action(id)
			if !ok {
				return data, fmt.Errorf("page %s: unknown action %q", p.Slug, id)
			}
			sv.Forms = append(sv.Forms, NewSlot(p.Slug, a, "", services.PhaseIdle, models.GenerationState{}))
		}
		data.Sections = append(data.Sections, sv)
	}
	if p.Chat {
		if a, ok := p.Action("chat"); ok {
			data.Chat = &a
		}
	}
	return data, nil
}

func cardViews(p content.Page, cards []content.Card) []CardView {
	out := make([]CardView, len(cards))
	for i, c := range cards {
		out[i] = CardView{Card: c}
		for _, id := range c.Actions {
			if a, ok := p.Action(id); ok {
				out[i].Slots = append(out[i].Slots, NewSlot(p.Slug, a, c.Title, services.PhaseIdle, models.GenerationState{}))
			}
		}
	}
	return out
}

// HomeData drives the home template.
type HomeData struct {
	Layout
	Page     content.StaticPage
	Featured *models.PageSummary
	Posts    []models.PageSummary
}

// StaticData drives the about, contact and projects templates.
type StaticData struct {
	Layout
	Page content.StaticPage
}

// BlogData drives the blog index.
type BlogData struct {
	Layout
	Page  content.StaticPage
	Posts []models.PageSummary
}

// NotFoundData drives the 404 page.
type NotFoundData struct {
	Layout
	Path string
}

// InputName is the form control kind of the slot's action.
func (v SlotView) InputName() string {
	return string(v.Action.Input)
}
