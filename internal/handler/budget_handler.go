package handler

import (
	"errors"
	"log"
	"net/http"

	"budget_tracker/internal/model"
	"budget_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles budget settings and statistics requests
type BudgetHandler struct {
	service service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(s service.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: s}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.service.CreateBudget(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrBudgetAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating budget: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.service.UpdateBudget(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrBudgetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating budget: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.GetBudget(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrBudgetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting budget: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BudgetHandler) GetStats(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.GetStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrBudgetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error computing budget stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// RegisterBudgetRoutes registers budget and stats routes
func (h *BudgetHandler) RegisterBudgetRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	budgetRoutes := rg.Group("/budget")
	budgetRoutes.Use(authMW)
	{
		budgetRoutes.POST("", h.CreateBudget)
		budgetRoutes.PUT("", h.UpdateBudget)
		budgetRoutes.GET("", h.GetBudget)
	}

	statsRoutes := rg.Group("/stats")
	statsRoutes.Use(authMW)
	{
		statsRoutes.GET("", h.GetStats)
	}
}
