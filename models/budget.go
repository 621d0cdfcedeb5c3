package models

import "time"

// Budget is a short budget summary from GET /budgets.
type Budget struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	LastModifiedOn *time.Time `json:"last_modified_on,omitempty"`
}

// BudgetsResponse is the envelope of GET /budgets.
type BudgetsResponse struct {
	Data struct {
		Budgets []Budget `json:"budgets"`
	} `json:"data"`
}
