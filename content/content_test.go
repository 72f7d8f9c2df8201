package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesAreUniqueAndResolvable(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Pages() {
		assert.False(t, seen[p.Slug], "duplicate slug %s", p.Slug)
		seen[p.Slug] = true

		got, ok := Lookup(p.Slug)
		require.True(t, ok)
		assert.Equal(t, p.Title, got.Title)
		assert.NotEmpty(t, p.Actions, "page %s has no actions", p.Slug)
	}
	assert.Len(t, seen, 17)

	_, ok := Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestSectionReferencesExist(t *testing.T) {
	for _, p := range Pages() {
		for _, s := range p.Sections {
			for _, id := range s.Charts {
				_, ok := p.Chart(id)
				assert.True(t, ok, "%s section %s references missing chart %s", p.Slug, s.ID, id)
			}
			for _, id := range s.Actions {
				_, ok := p.Action(id)
				assert.True(t, ok, "%s section %s references missing action %s", p.Slug, s.ID, id)
			}
			cards := append([]Card(nil), s.Cards...)
			for _, tab := range s.Tabs {
				cards = append(cards, tab.Cards...)
			}
			for _, c := range cards {
				for _, id := range c.Actions {
					_, ok := p.Action(id)
					assert.True(t, ok, "%s card %s references missing action %s", p.Slug, c.Title, id)
				}
			}
		}
	}
}

func TestActionsNeedingInputHaveEmptyMessage(t *testing.T) {
	for _, p := range Pages() {
		for _, a := range p.Actions {
			switch a.Input {
			case InputText, InputPlan, InputChoice, InputPair:
				assert.NotEmpty(t, a.EmptyMessage, "%s/%s", p.Slug, a.ID)
			}
			assert.NotEmpty(t, a.Fallbacks.Transport, "%s/%s", p.Slug, a.ID)
		}
	}
}

func TestDecadeOrder(t *testing.T) {
	var labels []string
	for _, d := range Decades() {
		labels = append(labels, d.Label)
	}
	assert.Equal(t, []string{"40s", "50s", "60s", "70s", "80s", "90s", "100+"}, labels)
}

func TestFindAgelessAthlete(t *testing.T) {
	a, ok := FindAgelessAthlete("Lester Wright")
	require.True(t, ok)
	assert.Equal(t, "100m Dash", a.Sport)
	assert.Contains(t, a.Facts, "26.34 seconds")

	_, ok = FindAgelessAthlete("Nobody")
	assert.False(t, ok)
}

func TestCentenarians(t *testing.T) {
	all := Centenarians()
	require.Len(t, all, 6)
	assert.Equal(t, "Lester Wright", all[0].Name)

	all[0].Name = "changed"
	assert.Equal(t, "Lester Wright", Centenarians()[0].Name, "accessor must return a copy")
}

func TestModulesAreCopies(t *testing.T) {
	mods := Modules()
	require.Len(t, mods, 5)
	mods[0].Expanded[AudienceGeneral] = "changed"
	assert.NotEqual(t, "changed", Modules()[0].Expanded[AudienceGeneral])
}

func TestPagesAreCopies(t *testing.T) {
	first := Pages()[0]
	require.NotEmpty(t, first.Actions)
	require.NotEmpty(t, first.Sections)
	require.NotEmpty(t, first.Categories)
	label := first.Actions[0].Label
	title := first.Sections[0].Title

	first.Actions[0].Label = "MUTATED"
	first.Sections[0].Title = "MUTATED"
	first.Categories[0] = "MUTATED"

	again, ok := Lookup(first.Slug)
	require.True(t, ok)
	assert.Equal(t, label, again.Actions[0].Label)
	assert.Equal(t, title, again.Sections[0].Title)
	assert.NotEqual(t, "MUTATED", again.Categories[0])

	again.Sections[0].Title = "MUTATED"
	if len(again.Sections[0].Cards) > 0 && len(again.Sections[0].Cards[0].Actions) > 0 {
		again.Sections[0].Cards[0].Actions[0] = "MUTATED"
	}
	for _, p := range Pages() {
		if p.Slug != first.Slug {
			continue
		}
		assert.Equal(t, title, p.Sections[0].Title)
		for _, c := range p.Sections[0].Cards {
			assert.NotContains(t, c.Actions, "MUTATED")
		}
	}
}

func TestPageChartsAreCopies(t *testing.T) {
	p, ok := Lookup("sleep-for-active-folk")
	require.True(t, ok)
	require.NotEmpty(t, p.Charts)
	want := p.Charts[0].Datasets[0].Data[0]

	p.Charts[0].Datasets[0].Data[0] = 999
	p.Charts[0].Labels[0][0] = "MUTATED"

	again, _ := Lookup("sleep-for-active-folk")
	assert.Equal(t, want, again.Charts[0].Datasets[0].Data[0])
	assert.NotEqual(t, "MUTATED", again.Charts[0].Labels[0][0])
}

func TestParseAudience(t *testing.T) {
	assert.Equal(t, AudienceStudent, ParseAudience("student"))
	assert.Equal(t, AudienceHealthcare, ParseAudience("healthcare"))
	assert.Equal(t, AudienceGeneral, ParseAudience(""))
	assert.Equal(t, AudienceGeneral, ParseAudience("martian"))
}

func TestStaticPages(t *testing.T) {
	pages := StaticPages()
	for _, name := range []string{"home", "about", "contact", "projects", "blog"} {
		_, ok := pages[name]
		assert.True(t, ok, name)
	}
	contact, _ := Static("contact")
	assert.Equal(t, "mailto:a@awews.com", contact.Links[0].URL)
}

func TestPageTextIncludesItems(t *testing.T) {
	p, ok := Lookup("ageless-athletes")
	require.True(t, ok)
	assert.Contains(t, p.Text(), "Kazuyoshi Miura")
}
