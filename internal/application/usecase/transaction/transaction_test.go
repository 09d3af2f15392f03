package transaction

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateTransaction(t *testing.T) {
	userID := uuid.New()
	valid := CreateTransactionInput{
		UserID:      userID,
		Amount:      decimal.RequireFromString("42.50"),
		Description: " Groceries ",
		Type:        entity.TransactionTypeExpense,
		Category:    "Food",
		Date:        day(2024, time.March, 3),
	}

	tests := []struct {
		name     string
		mutate   func(*CreateTransactionInput)
		wantCode domainerror.TransactionErrorCode
	}{
		{"valid", func(*CreateTransactionInput) {}, ""},
		{"zero amount allowed", func(in *CreateTransactionInput) { in.Amount = decimal.Zero }, ""},
		{"negative amount", func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-1) }, domainerror.ErrCodeInvalidTransactionAmount},
		{"unknown type", func(in *CreateTransactionInput) { in.Type = "transfer" }, domainerror.ErrCodeInvalidTransactionType},
		{"missing description", func(in *CreateTransactionInput) { in.Description = "  " }, domainerror.ErrCodeMissingTransactionFields},
		{"missing date", func(in *CreateTransactionInput) { in.Date = time.Time{} }, domainerror.ErrCodeMissingTransactionFields},
		{"description too long", func(in *CreateTransactionInput) { in.Description = strings.Repeat("d", 256) }, domainerror.ErrCodeDescriptionTooLong},
		{"category too long", func(in *CreateTransactionInput) { in.Category = strings.Repeat("c", 101) }, domainerror.ErrCodeCategoryTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeTransactionRepo()
			pub := &recordingPublisher{}
			input := valid
			tt.mutate(&input)

			out, err := NewCreateTransactionUseCase(repo, pub).Execute(context.Background(), input)
			if tt.wantCode != "" {
				if got := txnCode(err); got != tt.wantCode {
					t.Fatalf("error code = %q, want %q (err = %v)", got, tt.wantCode, err)
				}
				if len(pub.events) != 0 {
					t.Error("no event should be published for a rejected write")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Transaction.Description != "Groceries" {
				t.Errorf("description = %q, want trimmed", out.Transaction.Description)
			}
			if _, err := repo.FindByID(context.Background(), out.Transaction.ID); err != nil {
				t.Error("transaction was not persisted")
			}
			if len(pub.events) != 1 || pub.events[0].Action != entity.LedgerActionCreated || pub.events[0].EntityID != out.Transaction.ID {
				t.Errorf("events = %+v", pub.events)
			}
		})
	}
}

func TestCreateTransaction_PublishFailureDoesNotFailWrite(t *testing.T) {
	repo := newFakeTransactionRepo()
	uc := NewCreateTransactionUseCase(repo, &recordingPublisher{fail: true})

	_, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:      uuid.New(),
		Amount:      decimal.NewFromInt(10),
		Description: "Salary",
		Type:        entity.TransactionTypeIncome,
		Category:    "Job",
		Date:        day(2024, time.January, 31),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.items) != 1 {
		t.Errorf("stored = %d, want 1", len(repo.items))
	}
}

func TestListTransactions(t *testing.T) {
	userID := uuid.New()
	march := entity.NewTransaction(userID, decimal.NewFromInt(5), "a", entity.TransactionTypeExpense, "Food", day(2024, time.March, 10))
	april := entity.NewTransaction(userID, decimal.NewFromInt(7), "b", entity.TransactionTypeIncome, "Job", day(2024, time.April, 1))
	other := entity.NewTransaction(uuid.New(), decimal.NewFromInt(9), "c", entity.TransactionTypeIncome, "Job", day(2024, time.March, 1))
	uc := NewListTransactionsUseCase(newFakeTransactionRepo(march, april, other))

	month, year := 3, 2024
	badMonth := 13

	tests := []struct {
		name     string
		input    ListTransactionsInput
		wantLen  int
		wantCode domainerror.TransactionErrorCode
	}{
		{"all of the user", ListTransactionsInput{UserID: userID}, 2, ""},
		{"by period", ListTransactionsInput{UserID: userID, Month: &month, Year: &year}, 1, ""},
		{"month without year", ListTransactionsInput{UserID: userID, Month: &month}, 0, domainerror.ErrCodeInvalidTransactionPeriod},
		{"month out of range", ListTransactionsInput{UserID: userID, Month: &badMonth, Year: &year}, 0, domainerror.ErrCodeInvalidTransactionPeriod},
		{"empty user", ListTransactionsInput{UserID: uuid.New()}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				if got := txnCode(err); got != tt.wantCode {
					t.Fatalf("error code = %q, want %q", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Transactions == nil {
				t.Fatal("transactions must be an empty slice, not nil")
			}
			if len(out.Transactions) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(out.Transactions), tt.wantLen)
			}
		})
	}
}

func TestGetTransaction_Ownership(t *testing.T) {
	owner := uuid.New()
	txn := entity.NewTransaction(owner, decimal.NewFromInt(1), "x", entity.TransactionTypeExpense, "Misc", day(2024, time.May, 5))
	uc := NewGetTransactionUseCase(newFakeTransactionRepo(txn))

	if got, err := uc.Execute(context.Background(), owner, txn.ID); err != nil || got.ID != txn.ID {
		t.Fatalf("owner lookup = %v, %v", got, err)
	}
	if _, err := uc.Execute(context.Background(), uuid.New(), txn.ID); txnCode(err) != domainerror.ErrCodeNotAuthorizedTransaction {
		t.Errorf("foreign lookup error = %v", err)
	}
	if _, err := uc.Execute(context.Background(), owner, uuid.New()); txnCode(err) != domainerror.ErrCodeTransactionNotFound {
		t.Errorf("missing lookup error = %v", err)
	}
}

func TestUpdateTransaction_Partial(t *testing.T) {
	owner := uuid.New()
	txn := entity.NewTransaction(owner, decimal.NewFromInt(10), "Lunch", entity.TransactionTypeExpense, "Food", day(2024, time.May, 5))
	repo := newFakeTransactionRepo(txn)
	pub := &recordingPublisher{}
	uc := NewUpdateTransactionUseCase(repo, pub)

	amount := decimal.RequireFromString("12.75")
	out, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txn.ID,
		UserID:        owner,
		Amount:        &amount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Transaction.Amount.Equal(amount) {
		t.Errorf("amount = %s, want %s", out.Transaction.Amount, amount)
	}
	if out.Transaction.Description != "Lunch" || out.Transaction.Category != "Food" {
		t.Error("untouched fields changed")
	}
	if len(pub.events) != 1 || pub.events[0].Action != entity.LedgerActionUpdated {
		t.Errorf("events = %+v", pub.events)
	}

	badType := entity.TransactionType("gift")
	_, err = uc.Execute(context.Background(), UpdateTransactionInput{TransactionID: txn.ID, UserID: owner, Type: &badType})
	if txnCode(err) != domainerror.ErrCodeInvalidTransactionType {
		t.Errorf("bad type error = %v", err)
	}

	_, err = uc.Execute(context.Background(), UpdateTransactionInput{TransactionID: txn.ID, UserID: uuid.New(), Amount: &amount})
	if txnCode(err) != domainerror.ErrCodeNotAuthorizedTransaction {
		t.Errorf("foreign update error = %v", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	owner := uuid.New()
	txn := entity.NewTransaction(owner, decimal.NewFromInt(10), "Lunch", entity.TransactionTypeExpense, "Food", day(2024, time.May, 5))
	repo := newFakeTransactionRepo(txn)
	pub := &recordingPublisher{}
	uc := NewDeleteTransactionUseCase(repo, pub)

	if _, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: txn.ID, UserID: uuid.New()}); txnCode(err) != domainerror.ErrCodeNotAuthorizedTransaction {
		t.Fatalf("foreign delete error = %v", err)
	}

	out, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: txn.ID, UserID: owner})
	if err != nil || !out.Success {
		t.Fatalf("delete = %v, %v", out, err)
	}
	if len(pub.events) != 1 || pub.events[0].Action != entity.LedgerActionDeleted || pub.events[0].UserID != owner {
		t.Errorf("events = %+v", pub.events)
	}

	if _, err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: txn.ID, UserID: owner}); txnCode(err) != domainerror.ErrCodeTransactionNotFound {
		t.Errorf("second delete error = %v", err)
	}
}
