package models

import (
	"time"
)

// Transaction is a ledger entry owned by one user. Type is opaque text to
// this backend; the client uses it to tag income vs expense.
type Transaction struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Value     float64   `json:"value"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type AddTransactionRequest struct {
	UserID int64   `json:"user_id"`
	Title  string  `json:"title"`
	Value  float64 `json:"value"`
	Type   string  `json:"type"`
}
