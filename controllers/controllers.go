package controllers

import (
	"net/http"
	"time"

	"portfolio/services"
	"portfolio/views"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Services are the collaborators the HTTP surface needs.
type Services struct {
	Site     *services.Site
	Chat     *services.ChatService
	Search   *services.SearchService
	Carousel *services.Carousel
	Discord  *services.DiscordService
}

// Controller handles all HTTP requests of the site
type Controller struct {
	site      *services.Site
	chat      *services.ChatService
	search    *services.SearchService
	carousel  *services.Carousel
	discord   *services.DiscordService
	views     *views.Renderer
	logger    *zap.Logger
	startTime time.Time
}

// NewController creates a new controller instance
func NewController(svc Services, renderer *views.Renderer, logger *zap.Logger) *Controller {
	return &Controller{
		site:      svc.Site,
		chat:      svc.Chat,
		search:    svc.Search,
		carousel:  svc.Carousel,
		discord:   svc.Discord,
		views:     renderer,
		logger:    logger.Named("http"),
		startTime: time.Now(),
	}
}

// Routes builds the router with CORS applied.
func (c *Controller) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", c.IndexHandler).Methods(http.MethodGet)
	r.HandleFunc("/about", c.StaticHandler("about")).Methods(http.MethodGet)
	r.HandleFunc("/contact", c.StaticHandler("contact")).Methods(http.MethodGet)
	r.HandleFunc("/projects", c.ProjectsHandler).Methods(http.MethodGet)
	r.HandleFunc("/blog", c.BlogHandler).Methods(http.MethodGet)
	r.HandleFunc("/blog/{slug}", c.BlogPageHandler).Methods(http.MethodGet)
	r.HandleFunc("/blog/{slug}/export.csv", c.ExportHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/pages", c.PagesHandler).Methods(http.MethodGet)
	api.HandleFunc("/featured", c.FeaturedHandler).Methods(http.MethodGet)
	api.HandleFunc("/search", c.SearchHandler).Methods(http.MethodGet)
	api.HandleFunc("/blog/{slug}/actions/{action}", c.ActionHandler).Methods(http.MethodPost)
	api.HandleFunc("/blog/{slug}/chat", c.ChatHandler).Methods(http.MethodPost)
	api.HandleFunc("/blog/{slug}/chat/{session}", c.ChatHistoryHandler).Methods(http.MethodGet)

	r.HandleFunc("/health", c.HealthHandler).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(views.Static()))))
	r.NotFoundHandler = http.HandlerFunc(c.NotFoundHandler)

	r.Use(c.logRequests)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)
}

func (c *Controller) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
