package domain

import "time"

// UsageOperation names the metered operation of a usage event.
type UsageOperation string

const (
	// UsageOperationSuggest is recorded for every stored suggestion run.
	UsageOperationSuggest UsageOperation = "domain_suggestions"
)

// UsageEvent is an append-only ledger entry.
type UsageEvent struct {
	ID           int64          `json:"id"`
	UserID       UserID         `json:"userId"`
	SuggestionID SuggestionID   `json:"suggestionId"`
	Operation    UsageOperation `json:"operation"`
	// Candidates is the number of validated candidates of the run.
	Candidates int `json:"candidates"`
	// Available is the number of returned results that were available.
	Available int `json:"available"`
	// EstimatedProfit is the yearly profit of the recommended domain.
	EstimatedProfit float64   `json:"estimatedProfit"`
	CreatedAt       time.Time `json:"createdAt"`
}

// UsageSummary totals a user's ledger entries since a point in time.
type UsageSummary struct {
	Since           time.Time `json:"since"`
	Requests        int64     `json:"requests"`
	Candidates      int64     `json:"candidates"`
	Available       int64     `json:"available"`
	EstimatedProfit float64   `json:"estimatedProfit"`
}
