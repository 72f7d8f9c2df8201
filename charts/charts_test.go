package charts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want Label
	}{
		{"short stays whole", "Heart Rate", 16, Label{"Heart Rate"}},
		{"exact width", "Aerobic Endurance", 17, Label{"Aerobic Endurance"}},
		{"wraps on words", "Skill Control Accuracy", 16, Label{"Skill Control", "Accuracy"}},
		{"long word alone", "Supercalifragilistic is long", 10, Label{"Supercalifragilistic", "is long"}},
		{"many lines", "a bb ccc dddd eeeee", 5, Label{"a bb", "ccc", "dddd", "eeeee"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapLabel(tt.in, tt.max))
		})
	}
}

func TestLabelMarshal(t *testing.T) {
	data, err := json.Marshal([]Label{{"one"}, {"two", "lines"}})
	require.NoError(t, err)
	assert.JSONEq(t, `["one",["two","lines"]]`, string(data))
}

func TestChartJSON(t *testing.T) {
	c := Chart{
		ID:         "performance",
		Type:       TypeBar,
		Labels:     Labels("Skill Control Accuracy", "Explosive Power"),
		Horizontal: true,
		Datasets: []Dataset{{
			Label:           "Change (%)",
			Data:            []float64{-53, -7},
			BackgroundColor: []string{"#ef4444"},
		}},
	}

	js, err := c.JSON()
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(js), &got))
	assert.Equal(t, "bar", got["type"])

	options := got["options"].(map[string]interface{})
	assert.Equal(t, "y", options["indexAxis"])

	data := got["data"].(map[string]interface{})
	labels := data["labels"].([]interface{})
	assert.Equal(t, []interface{}{"Skill Control", "Accuracy"}, labels[0])
	assert.Equal(t, "Explosive Power", labels[1])

	ds := data["datasets"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "#ef4444", ds["backgroundColor"])
	assert.Equal(t, []interface{}{-53.0, -7.0}, ds["data"])
}

func TestBubbleDatasetUsesPoints(t *testing.T) {
	data, err := json.Marshal(Dataset{Label: "Men", Points: []Point{{X: 100, Y: 26.34, R: 8}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Men","data":[{"x":100,"y":26.34,"r":8}]}`, string(data))
}
