package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
	"github.com/finance-tracker/reports-api/internal/domain/report"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	TargetAmount *decimal.Decimal `json:"target_amount" binding:"required"`
	TargetMonth  int              `json:"target_month"`
	TargetYear   int              `json:"target_year"`
}

// UpdateGoalRequest represents the request body for a partial goal update.
type UpdateGoalRequest struct {
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	TargetMonth  *int             `json:"target_month,omitempty"`
	TargetYear   *int             `json:"target_year,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TargetAmount string    `json:"target_amount"`
	TargetMonth  int       `json:"target_month"`
	TargetYear   int       `json:"target_year"`
	MonthName    string    `json:"month_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:           g.ID.String(),
		UserID:       g.UserID.String(),
		TargetAmount: g.TargetAmount.StringFixed(2),
		TargetMonth:  g.TargetMonth,
		TargetYear:   g.TargetYear,
		MonthName:    report.MonthName(g.TargetMonth),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// ToGoalListResponse converts a slice of goals, never returning a nil list.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: responses}
}
