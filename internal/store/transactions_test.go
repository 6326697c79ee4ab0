package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam44cordeiro/backend-financeiro/internal/models"
)

const (
	insertTransactionQuery = `(?s)^INSERT INTO transactions \(user_id, title, value, type\)\s+VALUES \(\$1, \$2, \$3, \$4\)\s+RETURNING id, user_id, title, value, type, created_at$`
	listTransactionsQuery  = `(?s)^SELECT id, user_id, title, value, type, created_at\s+FROM transactions\s+WHERE user_id = \$1\s+ORDER BY created_at DESC$`
)

func newTransactionStoreWithMock(t *testing.T) (*TransactionStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewTransactionStore(db), mock, db
}

func TestAdd_ReturnsInsertedRow(t *testing.T) {
	s, mock, db := newTransactionStoreWithMock(t)
	defer db.Close()

	createdAt := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery(insertTransactionQuery).
		WithArgs(int64(1), "Salário", 3500.0, "income").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "value", "type", "created_at"}).
			AddRow(7, 1, "Salário", 3500.0, "income", createdAt))

	transaction, err := s.Add(context.Background(), 1, "Salário", 3500.0, "income")
	require.NoError(t, err)

	assert.Equal(t, &models.Transaction{
		ID:        7,
		UserID:    1,
		Title:     "Salário",
		Value:     3500.0,
		Type:      "income",
		CreatedAt: createdAt,
	}, transaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_DBError(t *testing.T) {
	s, mock, db := newTransactionStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertTransactionQuery).
		WithArgs(int64(1), "Aluguel", 1200.0, "expense").
		WillReturnError(errors.New("connection refused"))

	_, err := s.Add(context.Background(), 1, "Aluguel", 1200.0, "expense")
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
}

func TestListByUser_NewestFirst(t *testing.T) {
	s, mock, db := newTransactionStoreWithMock(t)
	defer db.Close()

	newer := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(listTransactionsQuery).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "value", "type", "created_at"}).
			AddRow(2, 1, "Aluguel", 1200.0, "expense", newer).
			AddRow(1, 1, "Salário", 3500.0, "income", older))

	transactions, err := s.ListByUser(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, int64(2), transactions[0].ID)
	assert.Equal(t, int64(1), transactions[1].ID)
	assert.True(t, transactions[0].CreatedAt.After(transactions[1].CreatedAt))
}

func TestListByUser_Empty(t *testing.T) {
	s, mock, db := newTransactionStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listTransactionsQuery).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "value", "type", "created_at"}))

	transactions, err := s.ListByUser(context.Background(), 99)
	require.NoError(t, err)

	// empty slice, not nil, so the response serializes as []
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestListByUser_DBError(t *testing.T) {
	s, mock, db := newTransactionStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listTransactionsQuery).WithArgs(int64(1)).
		WillReturnError(errors.New("connection refused"))

	_, err := s.ListByUser(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
}
