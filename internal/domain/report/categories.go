package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryAmount is a single category total.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryTotals accumulates amounts per category and remembers the order in
// which categories were first seen. The zero value is ready to use.
type CategoryTotals struct {
	order []string
	sums  map[string]decimal.Decimal
}

// Add adds amount to category, registering the category on first use.
func (c *CategoryTotals) Add(category string, amount decimal.Decimal) {
	if c.sums == nil {
		c.sums = make(map[string]decimal.Decimal)
	}
	sum, ok := c.sums[category]
	if !ok {
		c.order = append(c.order, category)
	}
	c.sums[category] = sum.Add(amount)
}

// Get returns the total for category.
func (c CategoryTotals) Get(category string) (decimal.Decimal, bool) {
	sum, ok := c.sums[category]
	return sum, ok
}

// Len returns the number of distinct categories.
func (c CategoryTotals) Len() int {
	return len(c.order)
}

// Items returns every category total in first-seen order.
func (c CategoryTotals) Items() []CategoryAmount {
	items := make([]CategoryAmount, 0, len(c.order))
	for _, name := range c.order {
		items = append(items, CategoryAmount{Category: name, Amount: c.sums[name]})
	}
	return items
}

// Top returns up to n categories ordered by amount descending. Equal amounts
// keep first-seen order.
func (c CategoryTotals) Top(n int) []CategoryAmount {
	items := c.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount.GreaterThan(items[j].Amount)
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// MarshalJSON encodes the totals as a JSON object whose keys keep first-seen
// order. Amounts use the same quoted-string encoding as every other decimal.
func (c CategoryTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		amount, err := c.sums[name].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(amount)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object produced by MarshalJSON, preserving key order.
func (c *CategoryTotals) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*c = CategoryTotals{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category totals: expected object, got %v", tok)
	}

	var out CategoryTotals
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("category totals: expected string key, got %v", keyTok)
		}
		var amount decimal.Decimal
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("category totals: %s: %w", key, err)
		}
		out.Add(key, amount)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}
