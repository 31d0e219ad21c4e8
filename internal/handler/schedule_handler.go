package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealping/mealping-coaching-core/internal/service/coach"
)

type ScheduleHandler struct {
	coachService *coach.Service
}

func NewScheduleHandler(coachService *coach.Service) *ScheduleHandler {
	return &ScheduleHandler{
		coachService: coachService,
	}
}

// HandleAssessment runs the stateless schedule analysis. Supports the same
// virtual-time override as the coach run, plus a slot_minutes override for
// callers looking for longer free slots.
func (h *ScheduleHandler) HandleAssessment(c *gin.Context) {
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
	}

	var slotDuration time.Duration
	if slotStr := c.Query("slot_minutes"); slotStr != "" {
		minutes, err := strconv.Atoi(slotStr)
		if err != nil || minutes <= 0 {
			respondError(c, http.StatusBadRequest, "validation_error", "slot_minutes must be a positive integer")
			return
		}
		slotDuration = time.Duration(minutes) * time.Minute
	}

	assessment, err := h.coachService.Assess(ctx, userID, now, slotDuration)
	if err != nil {
		slog.ErrorContext(ctx, "schedule assessment failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "upstream_error", "failed to fetch schedule data")
		return
	}

	c.JSON(http.StatusOK, assessment)
}
