package controllers

import (
	"net/http"
	"strconv"

	"portfolio/models"
)

// SearchHandler ranks blog pages against ?q=
func (c *Controller) SearchHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.writeError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = n
	}
	resp, err := c.search.Query(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

// PagesHandler lists every blog page.
func (c *Controller) PagesHandler(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": models.StatusSuccess,
		"pages":  summaries(),
	})
}

// FeaturedHandler returns the carousel's current post.
func (c *Controller) FeaturedHandler(w http.ResponseWriter, r *http.Request) {
	if c.carousel == nil {
		c.writeError(w, http.StatusNotFound, "no featured post")
		return
	}
	f, ok := c.carousel.Featured()
	if !ok {
		c.writeError(w, http.StatusNotFound, "no featured post")
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   models.StatusSuccess,
		"index":    c.carousel.Index(),
		"featured": f,
	})
}
