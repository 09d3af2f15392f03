package report

import (
	"encoding/json"
	"testing"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

func TestAggregate_Empty(t *testing.T) {
	result := Aggregate(nil)

	assertDecimal(t, "Totals.Income", result.Totals.Income, "0")
	assertDecimal(t, "Totals.Expenses", result.Totals.Expenses, "0")
	assertDecimal(t, "Totals.Net", result.Totals.Net, "0")
	assertDecimal(t, "Averages.Income", result.Averages.Income, "0")
	assertDecimal(t, "Averages.Expenses", result.Averages.Expenses, "0")

	if result.Counts != (Counts{}) {
		t.Errorf("Counts = %+v, want zero", result.Counts)
	}
	if result.CategoryBreakdown.Income.Len() != 0 || result.CategoryBreakdown.Expenses.Len() != 0 {
		t.Error("expected empty category breakdowns")
	}
	if len(result.TopCategories.Income) != 0 || len(result.TopCategories.Expenses) != 0 {
		t.Error("expected empty top categories")
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name         string
		txns         func(t *testing.T) []*entity.Transaction
		wantIncome   string
		wantExpenses string
		wantNet      string
		wantCounts   Counts
		wantAvgInc   string
		wantAvgExp   string
	}{
		{
			name: "one income and one expense",
			txns: func(t *testing.T) []*entity.Transaction {
				return []*entity.Transaction{
					income(t, "100", "salary", "2024-03-01"),
					expense(t, "40", "food", "2024-03-05"),
				}
			},
			wantIncome:   "100",
			wantExpenses: "40",
			wantNet:      "60",
			wantCounts:   Counts{Income: 1, Expenses: 1, Total: 2},
			wantAvgInc:   "100",
			wantAvgExp:   "40",
		},
		{
			name: "expenses only",
			txns: func(t *testing.T) []*entity.Transaction {
				return []*entity.Transaction{
					expense(t, "10.50", "food", "2024-03-01"),
					expense(t, "19.50", "transport", "2024-03-02"),
				}
			},
			wantIncome:   "0",
			wantExpenses: "30",
			wantNet:      "-30",
			wantCounts:   Counts{Income: 0, Expenses: 2, Total: 2},
			wantAvgInc:   "0",
			wantAvgExp:   "15",
		},
		{
			name: "several incomes",
			txns: func(t *testing.T) []*entity.Transaction {
				return []*entity.Transaction{
					income(t, "1000", "salary", "2024-01-01"),
					income(t, "200", "freelance", "2024-01-10"),
					income(t, "300", "freelance", "2024-01-20"),
					expense(t, "500", "rent", "2024-01-02"),
				}
			},
			wantIncome:   "1500",
			wantExpenses: "500",
			wantNet:      "1000",
			wantCounts:   Counts{Income: 3, Expenses: 1, Total: 4},
			wantAvgInc:   "500",
			wantAvgExp:   "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := tt.txns(t)
			result := Aggregate(txns)

			assertDecimal(t, "Totals.Income", result.Totals.Income, tt.wantIncome)
			assertDecimal(t, "Totals.Expenses", result.Totals.Expenses, tt.wantExpenses)
			assertDecimal(t, "Totals.Net", result.Totals.Net, tt.wantNet)
			assertDecimal(t, "Averages.Income", result.Averages.Income, tt.wantAvgInc)
			assertDecimal(t, "Averages.Expenses", result.Averages.Expenses, tt.wantAvgExp)

			if result.Counts != tt.wantCounts {
				t.Errorf("Counts = %+v, want %+v", result.Counts, tt.wantCounts)
			}
			if result.Counts.Total != result.Counts.Income+result.Counts.Expenses {
				t.Errorf("Counts.Total = %d, want Income+Expenses", result.Counts.Total)
			}
			if result.Counts.Total != len(txns) {
				t.Errorf("Counts.Total = %d, want %d", result.Counts.Total, len(txns))
			}
			if !result.Totals.Net.Equal(result.Totals.Income.Sub(result.Totals.Expenses)) {
				t.Errorf("Net %s != Income - Expenses", result.Totals.Net)
			}
		})
	}
}

func TestAggregate_CategoryBreakdown(t *testing.T) {
	txns := []*entity.Transaction{
		expense(t, "20", "food", "2024-05-01"),
		expense(t, "50", "rent", "2024-05-02"),
		expense(t, "30", "food", "2024-05-03"),
		income(t, "900", "salary", "2024-05-04"),
	}

	result := Aggregate(txns)

	food, ok := result.CategoryBreakdown.Expenses.Get("food")
	if !ok {
		t.Fatal("expected food in expense breakdown")
	}
	assertDecimal(t, "food", food, "50")

	if _, ok := result.CategoryBreakdown.Expenses.Get("salary"); ok {
		t.Error("salary must not appear in expense breakdown")
	}
	if result.CategoryBreakdown.Income.Len() != 1 {
		t.Errorf("income categories = %d, want 1", result.CategoryBreakdown.Income.Len())
	}
}

func TestAggregate_TopCategories(t *testing.T) {
	txns := []*entity.Transaction{
		expense(t, "10", "a", "2024-05-01"),
		expense(t, "60", "b", "2024-05-01"),
		expense(t, "30", "c", "2024-05-01"),
		expense(t, "30", "d", "2024-05-01"),
		expense(t, "5", "e", "2024-05-01"),
		expense(t, "70", "f", "2024-05-01"),
		expense(t, "30", "g", "2024-05-01"),
		income(t, "10", "gift", "2024-05-01"),
	}

	result := Aggregate(txns)
	top := result.TopCategories.Expenses

	want := []string{"f", "b", "c", "d", "g"}
	if len(top) != len(want) {
		t.Fatalf("len(top) = %d, want %d", len(top), len(want))
	}
	for i, name := range want {
		if top[i].Category != name {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Category, name)
		}
	}

	if len(result.TopCategories.Income) != 1 || result.TopCategories.Income[0].Category != "gift" {
		t.Errorf("income top = %+v, want [gift]", result.TopCategories.Income)
	}
}

func TestAggregate_JSONAmountEncoding(t *testing.T) {
	result := Aggregate([]*entity.Transaction{income(t, "100", "salary", "2024-05-01")})

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var decoded struct {
		Totals        map[string]json.RawMessage `json:"totals"`
		TopCategories struct {
			Income []struct {
				Amount json.RawMessage `json:"amount"`
			} `json:"income"`
		} `json:"top_categories"`
		CategoryBreakdown struct {
			Income map[string]json.RawMessage `json:"income"`
		} `json:"category_breakdown"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	want := `"100"`
	if got := string(decoded.Totals["income"]); got != want {
		t.Errorf("totals.income = %s, want %s", got, want)
	}
	if len(decoded.TopCategories.Income) != 1 {
		t.Fatalf("top_categories.income = %d entries, want 1", len(decoded.TopCategories.Income))
	}
	if got := string(decoded.TopCategories.Income[0].Amount); got != want {
		t.Errorf("top_categories.income[0].amount = %s, want %s", got, want)
	}
	if got := string(decoded.CategoryBreakdown.Income["salary"]); got != want {
		t.Errorf("category_breakdown.income.salary = %s, want %s", got, want)
	}
}
