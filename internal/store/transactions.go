package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sam44cordeiro/backend-financeiro/internal/models"
)

// TransactionStore records and lists ledger entries scoped to a user id.
type TransactionStore struct {
	db *sql.DB
}

func NewTransactionStore(db *sql.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Add inserts one entry and returns the full row, including the
// store-assigned id and created_at. The owning user is not looked up here;
// the foreign key on user_id rejects unknown owners.
func (s *TransactionStore) Add(ctx context.Context, userID int64, title string, value float64, txType string) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO transactions (user_id, title, value, type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, title, value, type, created_at`,
		userID, title, value, txType).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Value, &t.Type, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

// ListByUser returns the user's entries, newest first. A user with no
// entries gets an empty slice, not an error.
func (s *TransactionStore) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, title, value, type, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Value, &t.Type, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return transactions, nil
}
