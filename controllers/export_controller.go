package controllers

import (
	"net/http"

	"portfolio/content"
	"portfolio/services"

	"github.com/gorilla/mux"
)

// ExportHandler downloads the centenarian table of exportable pages as CSV.
func (c *Controller) ExportHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := content.Lookup(mux.Vars(r)["slug"])
	if !ok || !page.Exportable {
		c.NotFoundHandler(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+services.CentenarianExportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(services.CentenarianCSV(content.Centenarians())))
}
