package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealping/mealping-coaching-core/internal/domain"
	"github.com/mealping/mealping-coaching-core/internal/service/coach"
)

type CoachHandler struct {
	coachService *coach.Service
}

func NewCoachHandler(coachService *coach.Service) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
	}
}

// HandleCoachRun executes one coaching run for a user. The optional "from"
// query parameter substitutes a virtual now, which makes runs reproducible
// in tests and backfills.
func (h *CoachHandler) HandleCoachRun(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}

	now := time.Now().Truncate(time.Minute)
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid from time format, expected RFC3339")
			return
		}
		now = parsed
		slog.InfoContext(ctx, "using virtual time",
			slog.Time("virtual_now", now),
		)
	}

	runID := c.GetHeader("X-Run-ID")

	resp, err := h.coachService.RunCoaching(ctx, userID, now, runID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTarget) ||
			errors.Is(err, domain.ErrInvalidConsumed) ||
			errors.Is(err, domain.ErrStaleEvaluationDay) {
			respondError(c, http.StatusUnprocessableEntity, "validation_error", err.Error())
			return
		}

		slog.ErrorContext(ctx, "coaching run failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", "coaching run failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":   code,
		"message": message,
	})
}
