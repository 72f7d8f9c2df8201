package controllers

import (
	"net/http"

	"portfolio/content"
	"portfolio/models"
	"portfolio/views"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func summaries() []models.PageSummary {
	pages := content.Pages()
	out := make([]models.PageSummary, len(pages))
	for i, p := range pages {
		out[i] = p.PageSummary()
	}
	return out
}

// IndexHandler serves the home page with the current featured post
func (c *Controller) IndexHandler(w http.ResponseWriter, r *http.Request) {
	home, _ := content.Static("home")
	data := views.HomeData{
		Layout: views.NewLayout("", "/"),
		Page:   home,
		Posts:  summaries(),
	}
	if c.carousel != nil {
		if f, ok := c.carousel.Featured(); ok {
			data.Featured = &f
		}
	}
	c.renderTemplate(w, http.StatusOK, views.HomeTemplate, data)
}

// StaticHandler serves one of the marketing pages.
func (c *Controller) StaticHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, ok := content.Static(name)
		if !ok {
			c.NotFoundHandler(w, r)
			return
		}
		c.renderTemplate(w, http.StatusOK, views.StaticTemplate, views.StaticData{
			Layout: views.NewLayout(sp.Title, sp.Route),
			Page:   sp,
		})
	}
}

// ProjectsHandler serves the project list.
func (c *Controller) ProjectsHandler(w http.ResponseWriter, r *http.Request) {
	sp, _ := content.Static("projects")
	c.renderTemplate(w, http.StatusOK, views.ProjectsTemplate, views.StaticData{
		Layout: views.NewLayout(sp.Title, "/projects"),
		Page:   sp,
	})
}

// BlogHandler serves the blog index.
func (c *Controller) BlogHandler(w http.ResponseWriter, r *http.Request) {
	sp, _ := content.Static("blog")
	c.renderTemplate(w, http.StatusOK, views.BlogTemplate, views.BlogData{
		Layout: views.NewLayout(sp.Title, "/blog"),
		Page:   sp,
		Posts:  summaries(),
	})
}

// BlogPageHandler serves one infographic or chat page.
func (c *Controller) BlogPageHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := content.Lookup(mux.Vars(r)["slug"])
	if !ok {
		c.NotFoundHandler(w, r)
		return
	}
	data, err := views.NewPageData(page)
	if err != nil {
		c.logger.Error("error preparing page", zap.String("page", page.Slug), zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	c.renderTemplate(w, http.StatusOK, views.InfographicTemplate, data)
}
