package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/macromate-go-api/internal/macro"
)

// getActivityLevels returns the activity tiers in display order.
// GET /api/activity-levels.
func (h *Handler) getActivityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, macro.ActivityTiers())
}

// postTargets computes BMR, TDEE, the calorie target, macro grams and the
// percentage split for a profile.
// POST /api/targets.
func (h *Handler) postTargets(c *gin.Context) {
	result, ok := h.bindAndCalculate(c, "targets")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// bindAndCalculate parses the profile body and runs the calculation. On
// failure it writes the error response and returns ok=false.
func (h *Handler) bindAndCalculate(c *gin.Context, endpoint string) (macro.Result, bool) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestsRejected.WithLabelValues(endpoint).Inc()
		apiError(c, http.StatusBadRequest, "invalid request body")
		return macro.Result{}, false
	}

	profile, err := req.toProfile()
	if err != nil {
		requestsRejected.WithLabelValues(endpoint).Inc()
		apiError(c, http.StatusBadRequest, err.Error())
		return macro.Result{}, false
	}

	result, err := macro.Calculate(profile)
	if err != nil {
		requestsRejected.WithLabelValues(endpoint).Inc()
		if isValidationError(err) {
			apiError(c, http.StatusBadRequest, err.Error())
		} else {
			log.Printf("[%s] calculate failed: %v", endpoint, err)
			apiError(c, http.StatusInternalServerError, "failed to compute targets")
		}
		return macro.Result{}, false
	}

	targetsComputed.WithLabelValues(string(profile.Goal)).Inc()
	return result, true
}
