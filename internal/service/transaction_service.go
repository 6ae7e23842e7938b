package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budget_tracker/internal/model"
	"budget_tracker/internal/repository"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrForbidden           = errors.New("forbidden: user does not have permission for this action")
	ErrInvalidDate         = errors.New("invalid date, use YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// TransactionService defines operations for transactions
type TransactionService interface {
	CreateTransaction(ctx context.Context, userID int, req model.CreateTransactionRequest) (*model.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID int64, userID int, userRole string) (*model.Transaction, error)
	GetUserTransactions(ctx context.Context, userID int, filters model.UserTransactionFilters) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID int64, userID int, req model.UpdateTransactionRequest) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64, userID int, userRole string) error

	// Admin methods
	GetAllTransactionsAdmin(ctx context.Context, filters model.AdminTransactionFilters) ([]model.Transaction, error)
	GetStatisticsAdmin(ctx context.Context, filters model.AdminTransactionFilters) (*model.AggregatedStats, error)
}

type transactionService struct {
	repo repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(repo repository.TransactionRepository) TransactionService {
	return &transactionService{repo: repo}
}

// parseDay parses a YYYY-MM-DD string into a calendar date
func parseDay(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID int, req model.CreateTransactionRequest) (*model.Transaction, error) {
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	transaction := &model.Transaction{
		UserID:    userID,
		Amount:    req.Amount,
		Category:  req.Category,
		Date:      date,
		Note:      req.Note,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction in repo: %w", err)
	}
	return transaction, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID int64, userID int, userRole string) (*model.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by ID: %w", err)
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	if userRole != model.RoleAdmin && transaction.UserID != userID {
		return nil, ErrForbidden
	}
	return transaction, nil
}

func (s *transactionService) GetUserTransactions(ctx context.Context, userID int, filters model.UserTransactionFilters) ([]model.Transaction, error) {
	transactions, err := s.repo.FindByUser(ctx, userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get user transactions from repo: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID int64, userID int, req model.UpdateTransactionRequest) (*model.Transaction, error) {
	existingTx, err := s.repo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction for update: %w", err)
	}
	if existingTx == nil {
		return nil, ErrTransactionNotFound
	}
	if existingTx.UserID != userID { // Only author can edit
		return nil, ErrForbidden
	}

	// Apply updates
	if req.Amount != nil {
		existingTx.Amount = *req.Amount
	}
	if req.Category != nil {
		existingTx.Category = *req.Category
	}
	if req.Note != nil { // handles setting to "" or null
		existingTx.Note = req.Note
	}
	if req.Date != nil {
		date, err := parseDay(*req.Date)
		if err != nil {
			return nil, err
		}
		existingTx.Date = date
	}
	existingTx.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existingTx); err != nil {
		return nil, fmt.Errorf("failed to update transaction in repo: %w", err)
	}
	return existingTx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID int64, userID int, userRole string) error {
	existingTx, err := s.repo.FindByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to find transaction for deletion: %w", err)
	}
	if existingTx == nil {
		return ErrTransactionNotFound
	}

	if userRole != model.RoleAdmin && existingTx.UserID != userID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction in repo: %w", err)
	}
	return nil
}

// --- Admin Methods ---

func (s *transactionService) GetAllTransactionsAdmin(ctx context.Context, filters model.AdminTransactionFilters) ([]model.Transaction, error) {
	transactions, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get all transactions for admin: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) GetStatisticsAdmin(ctx context.Context, filters model.AdminTransactionFilters) (*model.AggregatedStats, error) {
	stats, err := s.repo.GetAggregatedStats(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get aggregated stats for admin: %w", err)
	}
	return stats, nil
}
