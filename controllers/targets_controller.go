package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenozu/fittrack-plus/services"
)

type TargetsController struct {
	Svc *services.TargetsService
}

func NewTargetsController(svc *services.TargetsService) *TargetsController {
	return &TargetsController{Svc: svc}
}

// GET /users/me/targets
func (h *TargetsController) GetTargets(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	targets, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

type targetsInput struct {
	Calories float64 `json:"target_calories" binding:"min=0"`
	Protein  float64 `json:"target_protein_g" binding:"min=0"`
	Carbs    float64 `json:"target_carbs_g" binding:"min=0"`
	Fat      float64 `json:"target_fat_g" binding:"min=0"`
}

// PUT /users/me/targets
func (h *TargetsController) UpdateTargets(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in targetsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets, err := h.Svc.Upsert(c.Request.Context(), userID, in.Calories, in.Protein, in.Carbs, in.Fat)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}
