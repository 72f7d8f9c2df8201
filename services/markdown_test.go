package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("**Day 1**: breathe\n\n- one\n- two"))
	assert.Contains(t, out, "<strong>Day 1</strong>")
	assert.Contains(t, out, "<li>one</li>")
}

func TestRenderMarkdownRule(t *testing.T) {
	out := string(RenderMarkdown("Answer text\n\n---\n\nDisclaimer"))
	assert.Contains(t, out, "<hr")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := string(RenderMarkdown(`<p onclick="x()">hi</p><script>alert(1)</script>`))
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "hi")
}

func TestRenderMarkdownKeepsSafeHTML(t *testing.T) {
	out := string(RenderMarkdown(`<h3>Plan</h3><ul><li>Fence</li></ul>`))
	assert.Contains(t, out, "<h3>Plan</h3>")
	assert.Contains(t, out, "<li>Fence</li>")
}
