package state

import (
	"context"
	"time"

	"github.com/Qathar8/ums-portal/internal/domain/activity"
	"github.com/Qathar8/ums-portal/internal/domain/expense"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
)

// RecordExpense lança uma despesa pendente de aprovação contra a loja indicada
func (c *Container) RecordExpense(ctx context.Context, actorID, description string, amount float64, shopID, category, receipt string) (*expense.Expense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}
	shp := c.findShopLocked(shopID)
	if shp == nil {
		return nil, ErrShopNotFound
	}

	created, err := expense.NewExpense(description, amount, shp.ID, shp.Name, category, actorID, receipt)
	if err != nil {
		return nil, err
	}
	created.ID = c.nextIDLocked()
	created.Date = time.Now()

	oldExpenses := c.expenses
	oldActivities := c.activities

	next := make([]expense.Expense, 0, len(c.expenses)+1)
	next = append(next, c.expenses...)
	c.expenses = append(next, *created)

	c.appendActivityLocked(ctx, actor, activity.ActionExpenseCreate, activity.Details{
		EntityID:   created.ID,
		EntityName: created.Description,
		Amount:     created.Amount,
		Currency:   c.settings.Currency,
	}, shopID)

	if err := c.persistLocked(ctx, storage.KeyExpenses, storage.KeyActivityLogs); err != nil {
		c.expenses = oldExpenses
		c.activities = oldActivities
		return nil, err
	}

	c.log.Info("Despesa registrada", "description", created.Description, "shop", created.ShopName)
	return created, nil
}

// ApproveExpense marca a despesa indicada como aprovada
func (c *Container) ApproveExpense(ctx context.Context, actorID, expenseID string) (*expense.Expense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actor := c.findUserLocked(actorID)
	if actor == nil {
		return nil, ErrUserNotFound
	}

	var approved *expense.Expense
	next := make([]expense.Expense, len(c.expenses))
	for i := range c.expenses {
		next[i] = c.expenses[i]
		if next[i].ID == expenseID {
			next[i].Approved = true
			approved = &next[i]
		}
	}
	if approved == nil {
		return nil, ErrExpenseNotFound
	}

	oldExpenses := c.expenses
	oldActivities := c.activities
	c.expenses = next

	c.appendActivityLocked(ctx, actor, activity.ActionExpenseApprove, activity.Details{
		EntityID:   approved.ID,
		EntityName: approved.Description,
	}, approved.ShopID)

	if err := c.persistLocked(ctx, storage.KeyExpenses, storage.KeyActivityLogs); err != nil {
		c.expenses = oldExpenses
		c.activities = oldActivities
		return nil, err
	}

	out := *approved
	return &out, nil
}
