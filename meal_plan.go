package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/macromate-go-api/internal/mealplan"
)

// postMealPlan computes targets for the profile and asks the configured text
// service for a sample meal plan. The service's text is returned as-is.
// POST /api/meal-plan.
func (h *Handler) postMealPlan(c *gin.Context) {
	// Refuse before parsing anything: without a credential there is nothing
	// useful this endpoint can do.
	if h.mealPlans == nil || !h.mealPlans.Available() {
		mealPlanResults.WithLabelValues(h.provider(), "unconfigured").Inc()
		apiError(c, http.StatusServiceUnavailable, "meal plan generation is not configured")
		return
	}

	result, ok := h.bindAndCalculate(c, "meal-plan")
	if !ok {
		return
	}

	text, err := h.mealPlans.Generate(c.Request.Context(), result.Profile, result.Plan)
	if err != nil {
		if errors.Is(err, mealplan.ErrMissingCredential) {
			mealPlanResults.WithLabelValues(h.provider(), "unconfigured").Inc()
			apiError(c, http.StatusServiceUnavailable, "meal plan generation is not configured")
			return
		}
		log.Printf("[postMealPlan] %s error: %v", h.provider(), err)
		mealPlanResults.WithLabelValues(h.provider(), "error").Inc()
		apiError(c, http.StatusBadGateway, "meal plan generation failed")
		return
	}

	mealPlanResults.WithLabelValues(h.provider(), "ok").Inc()
	c.JSON(http.StatusOK, mealPlanResponse{
		ID:       uuid.New().String(),
		Provider: h.provider(),
		Targets:  result,
		Text:     text,
	})
}

func (h *Handler) provider() string {
	if h.mealPlans == nil {
		return "none"
	}
	return h.mealPlans.Provider()
}
