// Package stub is an in-memory stand-in for the calendar provider, the
// intake-history service and the mealping-tasks delivery service, so the
// coaching core can be load tested without its real upstreams.
package stub

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	storage *SeedStorage
}

func NewHandler(storage *SeedStorage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) Register(r *gin.Engine) {
	r.POST("/admin/seed", h.HandleSeed)
	r.POST("/admin/reset", h.HandleReset)
	r.GET("/admin/tasks", h.HandleGetTasks)

	r.GET("/api/v1/busy", h.HandleGetBusy)
	r.GET("/api/v1/intake/daily", h.HandleGetDailyIntake)
	r.GET("/api/v1/intake/pattern", h.HandleGetPatternSummary)

	r.POST("/tasks", h.HandleEnqueueTask)
	r.POST("/tasks/:queue", h.HandleEnqueueTask)
}

func (h *Handler) HandleReset(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	h.storage.Reset(runID)

	slog.Info("reset data", slog.String("run_id", runID))

	c.JSON(http.StatusOK, gin.H{
		"status": "reset complete",
		"run_id": runID,
	})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, user := range req.Users {
		intervals := make([]intervalResponse, 0, len(user.BusyIntervals))
		for _, seed := range user.BusyIntervals {
			start, err := time.Parse(time.RFC3339, seed.Start)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interval start: " + seed.Start})
				return
			}
			end, err := time.Parse(time.RFC3339, seed.End)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interval end: " + seed.End})
				return
			}
			intervals = append(intervals, intervalResponse{Start: start, End: end})
		}

		contributions := make([]contributionResponse, 0, len(user.Contributions))
		for _, seed := range user.Contributions {
			at, err := time.Parse(time.RFC3339, seed.At)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contribution time: " + seed.At})
				return
			}
			contributions = append(contributions, contributionResponse{
				At:     at,
				Source: seed.Source,
				Amount: seed.Amount,
			})
		}

		h.storage.SeedUser(runID, user, intervals, contributions)
	}

	slog.Info("seeded data",
		slog.String("run_id", runID),
		slog.Int("user_count", len(req.Users)),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":     "seeded",
		"run_id":     runID,
		"user_count": len(req.Users),
	})
}

// GET /api/v1/busy?user_id=...&day=...&run_id=...
func (h *Handler) HandleGetBusy(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")
	userID := c.Query("user_id")
	day := c.Query("day")

	if userID == "" || day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and day query parameters are required"})
		return
	}

	intervals := h.storage.BusyIntervalsForDay(runID, userID, day)

	c.JSON(http.StatusOK, busyResponse{
		UserID:    userID,
		Day:       day,
		Intervals: intervals,
		Count:     len(intervals),
	})
}

// GET /api/v1/intake/daily?user_id=...&day=...&run_id=...
func (h *Handler) HandleGetDailyIntake(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")
	userID := c.Query("user_id")
	day := c.Query("day")

	if userID == "" || day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and day query parameters are required"})
		return
	}

	data := h.storage.GetUser(runID, userID)

	contributions := data.Contributions
	if contributions == nil {
		contributions = []contributionResponse{}
	}

	c.JSON(http.StatusOK, dailyIntakeResponse{
		UserID:        userID,
		Day:           day,
		Target:        data.Target,
		Consumed:      data.Consumed,
		Contributions: contributions,
	})
}

// GET /api/v1/intake/pattern?user_id=...&run_id=...
func (h *Handler) HandleGetPatternSummary(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")
	userID := c.Query("user_id")

	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	data := h.storage.GetUser(runID, userID)

	hours := data.PatternHours
	if hours == nil {
		hours = []int{}
	}

	c.JSON(http.StatusOK, patternSummaryResponse{
		UserID:   userID,
		TopHours: hours,
	})
}

// POST /tasks and /tasks/:queue record what the core would have delivered.
func (h *Handler) HandleEnqueueTask(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	var task ReminderTask
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.storage.AddTask(runID, task)

	slog.Debug("task recorded",
		slog.String("run_id", runID),
		slog.String("identifier", task.Identifier),
		slog.String("user_id", task.UserID),
		slog.Time("fire_at", task.FireAt),
	)

	c.JSON(http.StatusCreated, gin.H{
		"task_id": uuid.NewString(),
		"status":  "created",
	})
}

// GET /admin/tasks?run_id=... returns the recorded tasks for assertions.
func (h *Handler) HandleGetTasks(c *gin.Context) {
	runID := c.DefaultQuery("run_id", "default")

	tasks := h.storage.Tasks(runID)

	c.JSON(http.StatusOK, tasksResponse{
		Tasks: tasks,
		Count: len(tasks),
	})
}
