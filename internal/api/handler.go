// Package api exposes the operator HTTP surface: event queries, the manual
// scrape trigger, and scraper status.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/olade/naija-events/internal/scheduler"
	"github.com/olade/naija-events/internal/store"
)

// Handler routes the HTTP surface.
type Handler struct {
	store     store.Store
	scheduler *scheduler.Scheduler
	sourceID  string
	router    *gin.Engine
}

// New creates the handler and registers its routes.
func New(st store.Store, sched *scheduler.Scheduler, sourceID string) *Handler {
	h := &Handler{
		store:     st,
		scheduler: sched,
		sourceID:  sourceID,
		router:    gin.Default(),
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.GET("/events", h.listEvents)
	h.router.GET("/events/upcoming", h.upcomingEvents)
	h.router.GET("/events/stats", h.eventStats)
	h.router.POST("/scrapers/tix-africa", h.triggerScrape)
	h.router.GET("/scrapers/status", h.scraperStatus)
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listEvents handles GET /events with category/city/search filters and
// pagination.
func (h *Handler) listEvents(c *gin.Context) {
	q := store.Query{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Search:   c.Query("search"),
		Page:     intQuery(c, "page", 1),
		Limit:    intQuery(c, "limit", 10),
	}

	page, err := h.store.FindAll(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// upcomingEvents handles GET /events/upcoming.
func (h *Handler) upcomingEvents(c *gin.Context) {
	events, err := h.store.FindUpcoming(c.Request.Context(), intQuery(c, "limit", 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// eventStats handles GET /events/stats.
func (h *Handler) eventStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// triggerScrape handles POST /scrapers/tix-africa. The batch runs inline;
// the response reports the structured run result either way, never a
// per-event failure.
func (h *Handler) triggerScrape(c *gin.Context) {
	result := h.scheduler.TriggerManual(c.Request.Context())

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{
		"success":   result.Success,
		"message":   result.Message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// scraperStatus handles GET /scrapers/status.
func (h *Handler) scraperStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"available_scrapers": []string{h.sourceID},
		"status":             "ready",
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
