package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"portfolio/models"
	"portfolio/views"

	"go.uber.org/zap"
)

// writeJSON encodes v with the given status.
func (c *Controller) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		c.logger.Error("error encoding response", zap.Error(err))
	}
}

// writeError sends a BaseResponse failure.
func (c *Controller) writeError(w http.ResponseWriter, status int, msg string) {
	c.writeJSON(w, status, models.NewFailure(msg))
}

// renderTemplate renders a page template with data
func (c *Controller) renderTemplate(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := c.views.Render(&buf, name, data); err != nil {
		c.logger.Error("error rendering template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFoundHandler renders the 404 page for browsers and JSON for the API.
func (c *Controller) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	if isAPI(r) {
		c.writeError(w, http.StatusNotFound, "not found")
		return
	}
	c.renderTemplate(w, http.StatusNotFound, views.NotFoundTemplate, views.NotFoundData{
		Layout: views.NewLayout("Not found", ""),
		Path:   r.URL.Path,
	})
}

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

// HealthHandler reports the status of every service
func (c *Controller) HealthHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":    "healthy",
		"uptime":    time.Since(c.startTime).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"site":      c.site.GetStatus(),
		"chat":      c.chat.GetStatus(),
		"search":    c.search.GetStatus(),
	}
	if c.discord != nil {
		health["discord"] = c.discord.GetStatus()
	}
	if c.carousel != nil {
		health["carousel"] = map[string]interface{}{"index": c.carousel.Index()}
	}
	c.writeJSON(w, http.StatusOK, health)
}
