package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budget_tracker/internal/budget"
	"budget_tracker/internal/model"
	"budget_tracker/internal/repository"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found, create one first")
	ErrBudgetAlreadyExists = errors.New("budget already exists for this user")
)

// BudgetService owns budget settings and drives the analytics engine. The
// engine itself is pure; this coordinator loads state, captures "now" once
// per computation and hands everything over.
type BudgetService interface {
	CreateBudget(ctx context.Context, userID int, req model.BudgetRequest) (*model.Budget, error)
	UpdateBudget(ctx context.Context, userID int, req model.BudgetRequest) (*model.Budget, error)
	GetBudget(ctx context.Context, userID int) (*model.Budget, error)
	GetStats(ctx context.Context, userID int) (*model.StatsSnapshot, error)
}

type budgetService struct {
	budgetRepo repository.BudgetRepository
	txRepo     repository.TransactionRepository
	now        func() time.Time
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo repository.BudgetRepository, txRepo repository.TransactionRepository) BudgetService {
	return &budgetService{
		budgetRepo: budgetRepo,
		txRepo:     txRepo,
		now:        time.Now,
	}
}

func (s *budgetService) CreateBudget(ctx context.Context, userID int, req model.BudgetRequest) (*model.Budget, error) {
	existing, err := s.budgetRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}
	if existing != nil {
		return nil, ErrBudgetAlreadyExists
	}

	b := &model.Budget{
		UserID:        userID,
		DailyTarget:   req.DailyTarget,
		MonthlyTarget: req.MonthlyTarget,
		Currency:      req.Currency,
		MonthStartDay: req.MonthStartDay,
		BankBalance:   req.BankBalance,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.budgetRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create budget in repo: %w", err)
	}
	return b, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID int, req model.BudgetRequest) (*model.Budget, error) {
	existing, err := s.budgetRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget for update: %w", err)
	}
	if existing == nil {
		return nil, ErrBudgetNotFound
	}

	existing.DailyTarget = req.DailyTarget
	existing.MonthlyTarget = req.MonthlyTarget
	existing.Currency = req.Currency
	existing.MonthStartDay = req.MonthStartDay
	existing.BankBalance = req.BankBalance

	if err := s.budgetRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update budget in repo: %w", err)
	}
	return existing, nil
}

func (s *budgetService) GetBudget(ctx context.Context, userID int) (*model.Budget, error) {
	b, err := s.budgetRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if b == nil {
		return nil, ErrBudgetNotFound
	}
	return b, nil
}

// GetStats recomputes the statistics snapshot for the user. A missing budget
// is the precondition failure the engine leaves to its caller, so it is
// checked here before anything is computed.
func (s *budgetService) GetStats(ctx context.Context, userID int) (*model.StatsSnapshot, error) {
	b, err := s.budgetRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget for stats: %w", err)
	}
	if b == nil {
		return nil, ErrBudgetNotFound
	}

	txns, err := s.txRepo.FindByUser(ctx, userID, model.UserTransactionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for stats: %w", err)
	}

	// Capture "now" exactly once so the whole snapshot sees the same
	// calendar day even across a midnight boundary.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return &model.StatsSnapshot{
		Stats:          budget.CalculateStats(txns, b, today),
		RunningBalance: budget.RunningBalance(txns, b.BankBalance),
		Currency:       b.Currency,
		AsOf:           today.Format(dateLayout),
	}, nil
}
