package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

func newTxn(t *testing.T, amount string, txnType entity.TransactionType, category, date string) *entity.Transaction {
	t.Helper()
	d, err := ParseDate(date)
	if err != nil {
		t.Fatalf("ParseDate(%q) error = %v", date, err)
	}
	return &entity.Transaction{
		ID:       uuid.New(),
		Amount:   decimal.RequireFromString(amount),
		Type:     txnType,
		Category: category,
		Date:     d,
	}
}

func income(t *testing.T, amount, category, date string) *entity.Transaction {
	t.Helper()
	return newTxn(t, amount, entity.TransactionTypeIncome, category, date)
}

func expense(t *testing.T, amount, category, date string) *entity.Transaction {
	t.Helper()
	return newTxn(t, amount, entity.TransactionTypeExpense, category, date)
}

func newGoal(target string, month, year int) *entity.Goal {
	return &entity.Goal{
		ID:           uuid.New(),
		TargetAmount: decimal.RequireFromString(target),
		TargetMonth:  month,
		TargetYear:   year,
	}
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got.String(), want)
	}
}
