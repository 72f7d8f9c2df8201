package views

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"portfolio/content"
	"portfolio/models"
	"portfolio/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func insightAction(t *testing.T) content.Action {
	t.Helper()
	p, ok := content.Lookup("ageless-athletes")
	require.True(t, ok)
	a, ok := p.Action("insight")
	require.True(t, ok)
	return a
}

func strptr(s string) *string { return &s }

func TestCardSlotStates(t *testing.T) {
	r := newRenderer(t)
	a := insightAction(t)

	idle, err := r.Slot(NewSlot("ageless-athletes", a, "Lester Wright", services.PhaseIdle, models.GenerationState{}))
	require.NoError(t, err)
	assert.Contains(t, string(idle), ">Get AI Insight</button>")
	assert.NotContains(t, string(idle), "disabled")

	loading, err := r.Slot(NewSlot("ageless-athletes", a, "Lester Wright", services.PhaseRequesting,
		models.GenerationState{IsLoading: true}))
	require.NoError(t, err)
	assert.Contains(t, string(loading), "disabled")
	assert.Contains(t, string(loading), ">Generating…</button>")

	settled, err := r.Slot(NewSlot("ageless-athletes", a, "Lester Wright", services.PhaseSettled,
		models.GenerationState{Result: strptr("Run your race.")}))
	require.NoError(t, err)
	assert.Contains(t, string(settled), `<p class="ai-result">"Run your race."</p>`)
	assert.NotContains(t, string(settled), "<button")
}

func TestSlotEscapesPlainResults(t *testing.T) {
	r := newRenderer(t)
	out, err := r.Slot(NewSlot("ageless-athletes", insightAction(t), "Lester Wright", services.PhaseSettled,
		models.GenerationState{Result: strptr(`<script>alert("x")</script>`)}))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestSlotRejectedKeepsButton(t *testing.T) {
	r := newRenderer(t)
	p, _ := content.Lookup("lester-wright-sr-the-man-who-outran-time")
	a, _ := p.Action("ask")

	out, err := r.Slot(NewSlot(p.Slug, a, "", services.PhaseIdle, models.GenerationState{Error: strptr("Please enter a question.")}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Please enter a question.")
	assert.Contains(t, string(out), ">Ask Gemini</button>")
}

func TestSlotMarkdownIsSanitized(t *testing.T) {
	r := newRenderer(t)
	p, _ := content.Lookup("diaphragmatic-breathing-ai")
	a, _ := p.Action("explain")

	out, err := r.Slot(NewSlot(p.Slug, a, "Stress Reduction", services.PhaseSettled,
		models.GenerationState{Result: strptr("**Calm** <img src=x onerror=alert(1)>")}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>Calm</strong>")
	assert.NotContains(t, string(out), "onerror")
	assert.Contains(t, string(out), "Explaining: Stress Reduction")
}

func TestEveryPageRenders(t *testing.T) {
	r := newRenderer(t)
	for _, p := range content.Pages() {
		t.Run(p.Slug, func(t *testing.T) {
			data, err := NewPageData(p)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, InfographicTemplate, data))
			html := buf.String()
			assert.Contains(t, html, "<h1>"+escapeTitle(p.Title)+"</h1>")
			for _, s := range p.Sections {
				for _, id := range s.Charts {
					assert.Contains(t, html, `data-chart="`+domID("chart", id)+`"`)
				}
			}
			if p.Exportable {
				assert.Contains(t, html, "/blog/"+p.Slug+"/export.csv")
			}
			if p.Chat {
				assert.Contains(t, html, `data-chat="/api/blog/`+p.Slug+`/chat"`)
			}
		})
	}
}

// escapeTitle escapes text the way html/template does for the characters
// used in page titles.
func escapeTitle(s string) string {
	return strings.NewReplacer("&", "&amp;", "'", "&#39;", `"`, "&#34;").Replace(s)
}

func TestStaticPagesRender(t *testing.T) {
	r := newRenderer(t)
	for _, name := range []string{"about", "contact"} {
		sp, ok := content.Static(name)
		require.True(t, ok)
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, StaticTemplate, StaticData{Layout: NewLayout(sp.Title, sp.Route), Page: sp}))
		assert.Contains(t, buf.String(), `aria-current="page"`)
	}
	about, _ := content.Static("about")
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, StaticTemplate, StaticData{Layout: NewLayout(about.Title, about.Route), Page: about}))
	assert.Contains(t, buf.String(), "<strong>Artificial Intelligence</strong>")
}

func TestUnknownTemplate(t *testing.T) {
	r := newRenderer(t)
	assert.Error(t, r.Render(&bytes.Buffer{}, "nope.html", nil))
}

func TestStaticAssets(t *testing.T) {
	_, err := fs.Stat(Static(), "app.js")
	assert.NoError(t, err)
}

func TestChatScriptRecoversFromNetworkFailure(t *testing.T) {
	js, err := fs.ReadFile(Static(), "app.js")
	require.NoError(t, err)
	src := string(js)

	start := strings.Index(src, "postJSON(chat.dataset.chat")
	require.GreaterOrEqual(t, start, 0)
	handler := src[start:]
	reset := strings.Index(handler, "button.disabled = false")
	require.Greater(t, reset, 0)
	assert.Contains(t, handler[:reset], ".catch(function ()")
}

func TestTwoFieldAndItemFormsRender(t *testing.T) {
	r := newRenderer(t)
	p, ok := content.Lookup("skeptics-guide-to-statistics")
	require.True(t, ok)
	data, err := NewPageData(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, InfographicTemplate, data))
	html := buf.String()
	assert.Contains(t, html, `<textarea name="context"`)
	assert.Contains(t, html, `<select name="item">`)
	assert.Contains(t, html, "Scenario 1")
}

func TestDomID(t *testing.T) {
	assert.Equal(t, "slot-insight-lester-wright", domID("slot", "insight", "Lester Wright"))
}

func TestNewLayout(t *testing.T) {
	assert.Equal(t, content.SiteTitle, NewLayout("", "/").Title)
	assert.Equal(t, "Blog | "+content.SiteTitle, NewLayout("Blog", "/blog").Title)
}
