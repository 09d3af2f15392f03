package templates

import (
	"strings"
	"testing"
)

func TestRenderer(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error = %v", err)
	}

	t.Run("html escapes user input", func(t *testing.T) {
		html, text, err := r.Render("welcome", WelcomeData{UserName: "<b>Eve</b>"})
		if err != nil {
			t.Fatalf("Render error = %v", err)
		}
		if strings.Contains(html, "<b>Eve</b>") {
			t.Error("HTML body should escape the user name")
		}
		if !strings.Contains(text, "Welcome, <b>Eve</b>!") {
			t.Errorf("text body = %q", text)
		}
	})

	t.Run("monthly report without goal", func(t *testing.T) {
		_, text, err := r.Render("monthly_report", MonthlyReportData{
			UserName:  "Ana",
			MonthName: "March",
			Year:      "2024",
			Net:       "-20.00",
		})
		if err != nil {
			t.Fatalf("Render error = %v", err)
		}
		if strings.Contains(text, "Savings goal") {
			t.Errorf("text body should omit the goal section:\n%s", text)
		}
		if !strings.Contains(text, "-20.00") {
			t.Errorf("text body missing net:\n%s", text)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		if _, _, err := r.Render("newsletter", nil); err == nil {
			t.Error("expected error for unknown template")
		}
	})
}
