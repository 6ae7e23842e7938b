package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget_tracker/internal/model"
)

type fakeBudgetRepo struct {
	budget  *model.Budget
	updated *model.Budget
}

func (f *fakeBudgetRepo) Create(_ context.Context, b *model.Budget) error {
	b.ID = 1
	f.budget = b
	return nil
}

func (f *fakeBudgetRepo) Update(_ context.Context, b *model.Budget) error {
	f.updated = b
	return nil
}

func (f *fakeBudgetRepo) FindByUserID(_ context.Context, _ int) (*model.Budget, error) {
	return f.budget, nil
}

type fakeTxRepo struct {
	txns []model.Transaction
}

func (f *fakeTxRepo) Create(_ context.Context, _ *model.Transaction) error { return nil }
func (f *fakeTxRepo) FindByID(_ context.Context, _ int64) (*model.Transaction, error) {
	return nil, nil
}
func (f *fakeTxRepo) FindByUser(_ context.Context, _ int, _ model.UserTransactionFilters) ([]model.Transaction, error) {
	return f.txns, nil
}
func (f *fakeTxRepo) Update(_ context.Context, _ *model.Transaction) error { return nil }
func (f *fakeTxRepo) Delete(_ context.Context, _ int64) error              { return nil }
func (f *fakeTxRepo) FindAll(_ context.Context, _ model.AdminTransactionFilters) ([]model.Transaction, error) {
	return f.txns, nil
}
func (f *fakeTxRepo) GetAggregatedStats(_ context.Context, _ model.AdminTransactionFilters) (*model.AggregatedStats, error) {
	return &model.AggregatedStats{}, nil
}

func fixedClock(date string) func() time.Time {
	return func() time.Time {
		// Mid-afternoon, to prove the snapshot truncates to the calendar day.
		d, _ := time.Parse("2006-01-02 15:04", date+" 15:30")
		return d
	}
}

func dayTx(date string, amount float64) model.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return model.Transaction{Amount: decimal.NewFromFloat(amount), Category: "Food", Date: d}
}

func TestBudgetService_GetStats(t *testing.T) {
	budgetRepo := &fakeBudgetRepo{budget: &model.Budget{
		ID:            1,
		UserID:        7,
		DailyTarget:   decimal.NewFromInt(50),
		MonthlyTarget: decimal.NewFromInt(500),
		Currency:      "USD",
		MonthStartDay: 1,
		BankBalance:   decimal.NewFromInt(1000),
	}}
	txRepo := &fakeTxRepo{txns: []model.Transaction{
		dayTx("2025-02-04", 40.5),
		dayTx("2025-02-03", 10),
		dayTx("2025-02-02", 5),
	}}

	svc := &budgetService{budgetRepo: budgetRepo, txRepo: txRepo, now: fixedClock("2025-02-04")}
	snapshot, err := svc.GetStats(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "2025-02-04", snapshot.AsOf)
	assert.Equal(t, "USD", snapshot.Currency)
	assert.True(t, snapshot.Stats.SpentToday.Equal(decimal.NewFromFloat(40.5)), "spentToday %s", snapshot.Stats.SpentToday)
	assert.True(t, snapshot.Stats.SpentMonthToDate.Equal(decimal.NewFromFloat(55.5)))
	assert.Equal(t, 3, snapshot.Stats.Streak)
	// 1000 - 55.5 net spend
	assert.True(t, snapshot.RunningBalance.Equal(decimal.NewFromFloat(944.5)), "runningBalance %s", snapshot.RunningBalance)
}

func TestBudgetService_GetStats_NoBudget(t *testing.T) {
	svc := &budgetService{budgetRepo: &fakeBudgetRepo{}, txRepo: &fakeTxRepo{}, now: time.Now}

	_, err := svc.GetStats(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestBudgetService_CreateBudget_Duplicate(t *testing.T) {
	budgetRepo := &fakeBudgetRepo{budget: &model.Budget{ID: 1, UserID: 7}}
	svc := &budgetService{budgetRepo: budgetRepo, txRepo: &fakeTxRepo{}, now: time.Now}

	_, err := svc.CreateBudget(context.Background(), 7, model.BudgetRequest{Currency: "USD", MonthStartDay: 1})
	assert.ErrorIs(t, err, ErrBudgetAlreadyExists)
}

func TestBudgetService_UpdateBudget_NotFound(t *testing.T) {
	svc := &budgetService{budgetRepo: &fakeBudgetRepo{}, txRepo: &fakeTxRepo{}, now: time.Now}

	_, err := svc.UpdateBudget(context.Background(), 7, model.BudgetRequest{Currency: "USD", MonthStartDay: 1})
	assert.ErrorIs(t, err, ErrBudgetNotFound)
}
