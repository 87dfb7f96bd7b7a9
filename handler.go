package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"lg/macromate-go-api/internal/macro"
	"lg/macromate-go-api/internal/mealplan"
)

// Handler holds shared dependencies for all route handlers. It carries no
// per-request state.
type Handler struct {
	mealPlans    *mealplan.Service
	apiTokenHash []byte
}

/* ─── Response helpers ────────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// isValidationError reports whether err came from parsing or range-checking
// a profile, i.e. the client's fault.
func isValidationError(err error) bool {
	return errors.Is(err, macro.ErrInvalidActivityLevel) ||
		errors.Is(err, macro.ErrInvalidGoalOrPace) ||
		errors.Is(err, macro.ErrInvalidSex) ||
		errors.Is(err, macro.ErrOutOfRange)
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/health", h.health)
	api.GET("/activity-levels", h.getActivityLevels)
	api.POST("/targets", h.postTargets)
	api.POST("/meal-plan", h.tokenMiddleware(), h.postMealPlan)
}

// newServerHandler builds the gin engine and wraps it with CORS for browser
// form clients.
func newServerHandler(h *Handler, allowedOrigins []string) http.Handler {
	registerMetrics()

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)
}

// health handles GET /api/health.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"meal_plan_enabled": h.mealPlans != nil && h.mealPlans.Available(),
	})
}
