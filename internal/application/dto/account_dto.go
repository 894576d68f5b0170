package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest body para POST /accounts/new/:userId/business/:businessId.
// OpeningBalance acepta número o string JSON; ausente equivale a cero.
type CreateAccountRequest struct {
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	Phone          string           `json:"phone"`
	Type           string           `json:"type"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
}

// AccountResponse cuenta en respuestas.
type AccountResponse struct {
	ID             int64           `json:"id"`
	BusinessID     int64           `json:"business_id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Type           string          `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CreatedAt      time.Time       `json:"created_at"`
}
