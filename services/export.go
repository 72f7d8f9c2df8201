package services

import (
	"net/url"
	"strconv"
	"strings"

	"portfolio/content"
)

// CentenarianCSVHeader is the first line of every export.
const CentenarianCSVHeader = "Name,Age,Nationality,Achievement,Date,Location,Bio"

// CentenarianExportFilename is the download name of the export.
const CentenarianExportFilename = "centenarian_athletes.csv"

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CentenarianCSV renders the athletes as CSV. Every string field is quoted,
// age is bare and lines are joined without a trailing newline.
func CentenarianCSV(athletes []content.Centenarian) string {
	lines := make([]string, 0, len(athletes)+1)
	lines = append(lines, CentenarianCSVHeader)
	for _, a := range athletes {
		lines = append(lines, strings.Join([]string{
			quoteField(a.Name),
			strconv.Itoa(a.Age),
			quoteField(a.Nationality),
			quoteField(a.Achievement),
			quoteField(a.Date),
			quoteField(a.Location),
			quoteField(a.Bio),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// DataURI wraps a CSV payload as a downloadable data URI.
func DataURI(csv string) string {
	return "data:text/csv;charset=utf-8," + strings.ReplaceAll(url.QueryEscape(csv), "+", "%20")
}
