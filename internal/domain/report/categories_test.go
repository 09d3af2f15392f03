package report

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCategoryTotals_ZeroValue(t *testing.T) {
	var c CategoryTotals

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get on zero value should report missing")
	}
	if got := c.Top(5); len(got) != 0 {
		t.Errorf("Top() = %v, want empty", got)
	}
}

func TestCategoryTotals_TopTieBreak(t *testing.T) {
	var c CategoryTotals
	for _, name := range []string{"zeta", "alpha", "mid", "beta"} {
		c.Add(name, decimal.NewFromInt(10))
	}
	c.Add("mid", decimal.NewFromInt(5))

	top := c.Top(3)
	want := []string{"mid", "zeta", "alpha"}
	for i, name := range want {
		if top[i].Category != name {
			t.Errorf("Top(3)[%d] = %s, want %s", i, top[i].Category, name)
		}
	}
}

func TestCategoryTotals_JSON(t *testing.T) {
	var c CategoryTotals
	c.Add("rent", decimal.RequireFromString("1200"))
	c.Add("food", decimal.RequireFromString("45.5"))
	c.Add("bills", decimal.RequireFromString("80"))

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	want := `{"rent":"1200","food":"45.5","bills":"80"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded CategoryTotals
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	items := decoded.Items()
	if len(items) != 3 {
		t.Fatalf("decoded %d items, want 3", len(items))
	}
	for i, name := range []string{"rent", "food", "bills"} {
		if items[i].Category != name {
			t.Errorf("decoded[%d] = %s, want %s", i, items[i].Category, name)
		}
	}
	assertDecimal(t, "food", items[1].Amount, "45.5")
}

func TestCategoryTotals_JSONEmptyAndNull(t *testing.T) {
	data, err := json.Marshal(CategoryTotals{})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal = %s, want {}", data)
	}

	var c CategoryTotals
	if err := json.Unmarshal([]byte("null"), &c); err != nil {
		t.Errorf("Unmarshal(null) error = %v", err)
	}
	if err := json.Unmarshal([]byte("[1,2]"), &c); err == nil {
		t.Error("Unmarshal(array) should fail")
	}
}
