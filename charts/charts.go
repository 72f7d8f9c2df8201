// Package charts builds configuration objects for the client-side charting
// library. The server only describes charts; drawing happens in the browser.
package charts

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

// Chart types understood by the client.
const (
	TypeBar      = "bar"
	TypeLine     = "line"
	TypeRadar    = "radar"
	TypeDoughnut = "doughnut"
	TypeBubble   = "bubble"
	TypePie      = "pie"
)

// DefaultLabelWidth is the wrap width used for long category labels.
const DefaultLabelWidth = 16

// Label is one category label, possibly wrapped over several lines.
type Label []string

// MarshalJSON emits a single-line label as a plain string.
func (l Label) MarshalJSON() ([]byte, error) {
	if len(l) == 1 {
		return json.Marshal(l[0])
	}
	return json.Marshal([]string(l))
}

// Point is a bubble chart datum.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Dataset is one series of a chart. Bubble charts use Points, all other
// types use Data.
type Dataset struct {
	Label           string
	Data            []float64
	Points          []Point
	BackgroundColor []string
	BorderColor     []string
	BorderWidth     int
	Fill            bool
	Tension         float64
	Stack           string
}

// MarshalJSON renders the dataset in the client library's shape.
func (d Dataset) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"label": d.Label,
	}
	if d.Points != nil {
		out["data"] = d.Points
	} else {
		data := d.Data
		if data == nil {
			data = []float64{}
		}
		out["data"] = data
	}
	if c := colorValue(d.BackgroundColor); c != nil {
		out["backgroundColor"] = c
	}
	if c := colorValue(d.BorderColor); c != nil {
		out["borderColor"] = c
	}
	if d.BorderWidth > 0 {
		out["borderWidth"] = d.BorderWidth
	}
	if d.Fill {
		out["fill"] = true
	}
	if d.Tension > 0 {
		out["tension"] = d.Tension
	}
	if d.Stack != "" {
		out["stack"] = d.Stack
	}
	return json.Marshal(out)
}

func colorValue(colors []string) interface{} {
	switch len(colors) {
	case 0:
		return nil
	case 1:
		return colors[0]
	default:
		return colors
	}
}

// Chart is a complete chart description.
type Chart struct {
	ID         string
	Type       string
	Title      string
	Labels     []Label
	Datasets   []Dataset
	Horizontal bool
	Stacked    bool
	// Options are merged over the generated options.
	Options map[string]interface{}
}

type chartData struct {
	Labels   []Label   `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type chartConfig struct {
	Type    string                 `json:"type"`
	Data    chartData              `json:"data"`
	Options map[string]interface{} `json:"options"`
}

// Config returns the chart in the client library's configuration shape.
func (c Chart) Config() interface{} {
	opts := map[string]interface{}{
		"responsive":          true,
		"maintainAspectRatio": false,
	}
	if c.Title != "" {
		opts["plugins"] = map[string]interface{}{
			"title": map[string]interface{}{"display": true, "text": c.Title},
		}
	}
	if c.Horizontal {
		opts["indexAxis"] = "y"
	}
	if c.Stacked {
		opts["scales"] = map[string]interface{}{
			"x": map[string]interface{}{"stacked": true},
			"y": map[string]interface{}{"stacked": true},
		}
	}
	for k, v := range c.Options {
		opts[k] = v
	}

	labels := c.Labels
	if labels == nil {
		labels = []Label{}
	}
	return chartConfig{
		Type:    c.Type,
		Data:    chartData{Labels: labels, Datasets: c.Datasets},
		Options: opts,
	}
}

// JSON marshals the chart configuration for embedding in a
// <script type="application/json"> element.
func (c Chart) JSON() (template.JS, error) {
	data, err := json.Marshal(c.Config())
	if err != nil {
		return "", fmt.Errorf("failed to marshal chart %s: %w", c.ID, err)
	}
	return template.JS(data), nil
}

// WrapLabel word-wraps s into lines of at most max characters. A word longer
// than max stays on its own line.
func WrapLabel(s string, max int) Label {
	if len(s) <= max {
		return Label{s}
	}

	var lines []string
	current := ""
	for _, word := range strings.Split(s, " ") {
		candidate := strings.TrimSpace(current + " " + word)
		if len(candidate) > max && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return Label(lines)
}

// Labels builds labels from plain strings, wrapping any longer than the
// default width.
func Labels(names ...string) []Label {
	out := make([]Label, len(names))
	for i, n := range names {
		out[i] = WrapLabel(n, DefaultLabelWidth)
	}
	return out
}
