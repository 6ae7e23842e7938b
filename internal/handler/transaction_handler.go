package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"budget_tracker/internal/middleware"
	"budget_tracker/internal/model"
	"budget_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// TransactionHandler handles transaction related requests
type TransactionHandler struct {
	service service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// Helper to get authenticated user role from context
func getAuthUserRole(c *gin.Context) (string, error) {
	roleVal, exists := c.Get(middleware.AuthRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	role, ok := roleVal.(string)
	if !ok {
		return "", errors.New("invalid user role type in context")
	}
	return role, nil
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	transaction, err := h.service.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

func (h *TransactionHandler) GetMyTransactions(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var filters model.UserTransactionFilters
	if categoryParam := c.Query("category"); categoryParam != "" {
		filters.Category = &categoryParam
	}
	if kindParam := c.Query("kind"); kindParam != "" {
		if kindParam != model.TransactionKindExpense && kindParam != model.TransactionKindIncome {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'kind', use 'expense' or 'income'"})
			return
		}
		filters.Kind = &kindParam
	}
	if dateParam := c.Query("date"); dateParam != "" {
		parsedDate, err := time.Parse(dateLayout, dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format for 'date', use YYYY-MM-DD"})
			return
		}
		filters.StartDate = &parsedDate
		filters.EndDate = &parsedDate
	} else {
		if fromParam := c.Query("from"); fromParam != "" {
			from, err := time.Parse(dateLayout, fromParam)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format for 'from', use YYYY-MM-DD"})
				return
			}
			filters.StartDate = &from
		}
		if toParam := c.Query("to"); toParam != "" {
			to, err := time.Parse(dateLayout, toParam)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format for 'to', use YYYY-MM-DD"})
				return
			}
			filters.EndDate = &to
		}
	}

	transactions, err := h.service.GetUserTransactions(c.Request.Context(), userID, filters)
	if err != nil {
		log.Printf("Error getting user transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found"})
		return
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	transaction, err := h.service.GetTransactionByID(c.Request.Context(), transactionID, userID, userRole)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error getting transaction by ID: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	var req model.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	transaction, err := h.service.UpdateTransaction(c.Request.Context(), transactionID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error updating transaction: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found"})
		return
	}

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	if err := h.service.DeleteTransaction(c.Request.Context(), transactionID, userID, userRole); err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			log.Printf("Error deleting transaction: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// --- Admin Handlers ---

func adminFiltersFromQuery(c *gin.Context) (model.AdminTransactionFilters, error) {
	var filters model.AdminTransactionFilters
	if userIDParam := c.Query("user_id"); userIDParam != "" {
		userID, err := strconv.Atoi(userIDParam)
		if err != nil {
			return filters, errors.New("invalid 'user_id'")
		}
		filters.UserID = &userID
	}
	if categoryParam := c.Query("category"); categoryParam != "" {
		filters.Category = &categoryParam
	}
	if kindParam := c.Query("kind"); kindParam != "" {
		if kindParam != model.TransactionKindExpense && kindParam != model.TransactionKindIncome {
			return filters, errors.New("invalid 'kind', use 'expense' or 'income'")
		}
		filters.Kind = &kindParam
	}
	if fromParam := c.Query("from"); fromParam != "" {
		from, err := time.Parse(dateLayout, fromParam)
		if err != nil {
			return filters, errors.New("invalid date format for 'from', use YYYY-MM-DD")
		}
		filters.StartDate = &from
	}
	if toParam := c.Query("to"); toParam != "" {
		to, err := time.Parse(dateLayout, toParam)
		if err != nil {
			return filters, errors.New("invalid date format for 'to', use YYYY-MM-DD")
		}
		filters.EndDate = &to
	}
	return filters, nil
}

func (h *TransactionHandler) GetAllTransactionsAdmin(c *gin.Context) {
	filters, err := adminFiltersFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transactions, err := h.service.GetAllTransactionsAdmin(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error getting all transactions for admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) GetStatisticsAdmin(c *gin.Context) {
	filters, err := adminFiltersFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.service.GetStatisticsAdmin(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error getting aggregated stats for admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RegisterTransactionRoutes registers transaction routes
func (h *TransactionHandler) RegisterTransactionRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	// User-specific transaction routes (requires auth, any authenticated user)
	userTxRoutes := rg.Group("/transactions")
	userTxRoutes.Use(authMW)
	{
		userTxRoutes.POST("", h.CreateTransaction)
		userTxRoutes.GET("", h.GetMyTransactions)
		userTxRoutes.GET("/:id", h.GetTransactionByID)   // Service layer handles ownership for non-admins
		userTxRoutes.PUT("/:id", h.UpdateTransaction)    // Service layer handles ownership
		userTxRoutes.DELETE("/:id", h.DeleteTransaction) // Service layer handles ownership for non-admins
	}

	// Admin-specific transaction routes
	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(authMW)
	adminRoutes.Use(adminMW)
	{
		adminRoutes.GET("/transactions", h.GetAllTransactionsAdmin)
		adminRoutes.GET("/stats", h.GetStatisticsAdmin)
	}
}
