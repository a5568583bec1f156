package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jenozu/fittrack-plus/services"
)

type DashboardController struct {
	Summaries *services.SummaryService
	Streaks   *services.StreakService
	Ranges    *services.RangeService
	Weights   *services.WeightService
}

func NewDashboardController(
	summaries *services.SummaryService,
	streaks *services.StreakService,
	ranges *services.RangeService,
	weights *services.WeightService,
) *DashboardController {
	return &DashboardController{
		Summaries: summaries,
		Streaks:   streaks,
		Ranges:    ranges,
		Weights:   weights,
	}
}

// GET /dashboard/summary?date=YYYY-MM-DD (defaults to today)
func (h *DashboardController) GetDailySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	out, err := h.Summaries.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /dashboard/streak
func (h *DashboardController) GetStreak(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := h.Streaks.Streak(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /dashboard/progress/calories?days=N
func (h *DashboardController) GetCalorieProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start, end, ok := daysWindow(c, 7, 90)
	if !ok {
		return
	}

	out, err := h.Ranges.CalorieSeries(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /dashboard/progress/macros?days=N
func (h *DashboardController) GetMacroProgress(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start, end, ok := daysWindow(c, 7, 90)
	if !ok {
		return
	}

	out, err := h.Ranges.MacroSeries(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /dashboard/weight?days=N
func (h *DashboardController) GetWeightLogs(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start, end, ok := daysWindow(c, 30, 365)
	if !ok {
		return
	}

	out, err := h.Ranges.WeightSeries(c.Request.Context(), userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type weightLogInput struct {
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
	LogDate  string  `json:"log_date" binding:"required"`
	Notes    string  `json:"notes"`
}

// POST /dashboard/weight
func (h *DashboardController) LogWeight(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in weightLogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logDate, err := time.ParseInLocation("2006-01-02", in.LogDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log_date format. Use YYYY-MM-DD"})
		return
	}

	out, err := h.Weights.Log(c.Request.Context(), userID, in.WeightKg, logDate, in.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// --- helpers shared by the controllers ---

// daysWindow resolves ?days=N to "the N most recent calendar days ending
// today, inclusive". Writes the error response itself when N is out of range.
func daysWindow(c *gin.Context, def, max int) (start, end time.Time, ok bool) {
	days := def
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return time.Time{}, time.Time{}, false
		}
		days = n
	}
	if days < 1 || days > max {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days out of range"})
		return time.Time{}, time.Time{}, false
	}

	end = time.Now()
	start = end.AddDate(0, 0, -(days - 1))
	return start, end, true
}

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	case float64:
		return uint(id), true
	default:
		return 0, false
	}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDate), errors.Is(err, services.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
