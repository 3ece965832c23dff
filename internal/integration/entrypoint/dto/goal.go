// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/usecase/goal"
)

// SaveGoalRequest represents the request body for goal creation and update.
type SaveGoalRequest struct {
	Name                 string           `json:"name" binding:"required"`
	TargetAmount         decimal.Decimal  `json:"target_amount"`
	SavedAmount          *decimal.Decimal `json:"saved_amount,omitempty"`
	TargetDate           *string          `json:"target_date,omitempty"`
	PercentageAllocation *float64         `json:"percentage_allocation,omitempty"`
	Description          string           `json:"description,omitempty"`
}

// ContributeRequest represents the request body for adding money to a goal.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse represents a single saving goal in API responses.
type GoalResponse struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	TargetAmount          string   `json:"target_amount"`
	SavedAmount           string   `json:"saved_amount"`
	TargetDate            *string  `json:"target_date,omitempty"`
	PercentageAllocation  *float64 `json:"percentage_allocation,omitempty"`
	Description           string   `json:"description,omitempty"`
	MonthlyContribution   string   `json:"monthly_contribution"`
	ProgressPercent       float64  `json:"progress_percent"`
	RemainingAmount       string   `json:"remaining_amount"`
	MonthsToTarget        *int     `json:"months_to_target"`
	IsCompleted           bool     `json:"is_completed"`
	MonthsUntilTargetDate *int     `json:"months_until_target_date,omitempty"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals               []GoalResponse `json:"goals"`
	SavingsLimit        string         `json:"savings_limit"`
	TotalAllocation     float64        `json:"total_allocation"`
	RemainingAllocation float64        `json:"remaining_allocation"`
}

// ToGoalResponse converts a goal output to a GoalResponse DTO.
func ToGoalResponse(g *goal.GoalOutput) GoalResponse {
	return GoalResponse{
		ID:                   g.ID,
		Name:                 g.Name,
		TargetAmount:         FormatMoney(g.TargetAmount),
		SavedAmount:          FormatMoney(g.SavedAmount),
		TargetDate:           FormatDate(g.TargetDate),
		PercentageAllocation: g.PercentageAllocation,
		Description:          g.Description,
		MonthlyContribution:  FormatMoney(g.MonthlyContribution),
		ProgressPercent:      g.ProgressPercent,
		RemainingAmount:      FormatMoney(g.RemainingAmount),
		MonthsToTarget:       g.MonthsToTarget,
		IsCompleted:          g.IsCompleted,
	}
}

// ToGoalListResponse converts the output of the list goals use case.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals:               goals,
		SavingsLimit:        FormatMoney(output.SavingsLimit),
		TotalAllocation:     output.TotalAllocation,
		RemainingAllocation: output.RemainingAllocation,
	}
}
