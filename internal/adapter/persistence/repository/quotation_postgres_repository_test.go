package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "chef_id", "status", "subtotal", "discount_type", "discount_value", "tax_iva", "tax_service", "tax_other", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*QuotationPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewQuotationPostgresRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestQuotationPostgresRepository_ListAll(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).
		AddRow(int64(1), int64(7), "completed", "100", "percentage", "10", "15", "5", "0", created, created).
		AddRow(int64(2), nil, "pending", "20.50", nil, nil, "0", "0", "0", created, created)
	mock.ExpectQuery(`SELECT .+ FROM quotations ORDER BY id`).WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].ChefID)
	assert.Equal(t, int64(7), *got[0].ChefID)
	require.NotNil(t, got[0].Discount)
	assert.Equal(t, money.DiscountTypePercentage, got[0].Discount.Type)
	assert.True(t, got[0].Discount.Value.Equal(decimal.NewFromInt(10)))
	assert.True(t, got[0].FinalTotal().Equal(decimal.NewFromInt(108)))

	assert.Nil(t, got[1].ChefID)
	assert.Nil(t, got[1].Discount)
	assert.True(t, got[1].Subtotal.Equal(decimal.RequireFromString("20.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuotationPostgresRepository_GetByID(t *testing.T) {
	t.Run("not found returns zero value", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT .+ FROM quotations WHERE id = \$1`).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

		got, err := repo.GetByID(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT .+ FROM quotations WHERE id = \$1`).WithArgs(int64(9)).WillReturnError(errors.New("boom"))

		_, err := repo.GetByID(context.Background(), 9)
		assert.ErrorContains(t, err, "boom")
	})
}

func TestQuotationPostgresRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	chef := int64(3)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	q := entities.Quotation{
		ID: 4, ChefID: &chef, Status: entities.QuotationStatusPending,
		Subtotal:  decimal.NewFromInt(50),
		Discount:  &money.Discount{Type: money.DiscountTypeFixed, Value: decimal.NewFromInt(5)},
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO quotations`).
		WithArgs(int64(4), int64(3), "pending", "50", "fixed", "5", "0", "0", "0", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, q.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuotationPostgresRepository_CreateDuplicate(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`INSERT INTO quotations`).WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), entities.Quotation{ID: 4, Status: entities.QuotationStatusPending})
	assert.True(t, errors.Is(err, interfaces.ErrQuotationExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuotationPostgresRepository_UpdateStatusByID(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(columns).
			AddRow(int64(1), nil, "approved", "100", nil, nil, "0", "0", "0", created, created)
		mock.ExpectQuery(`UPDATE quotations SET status = \$1, updated_at = \$2 WHERE id = \$3 AND status = \$4`).
			WithArgs("approved", sqlmock.AnyArg(), int64(1), "pending").
			WillReturnRows(rows)

		got, err := repo.UpdateStatusByID(context.Background(), 1, entities.QuotationStatusPending, entities.QuotationStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, entities.QuotationStatusApproved, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status moved on or row missing", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`UPDATE quotations SET status = \$1`).
			WithArgs("approved", sqlmock.AnyArg(), int64(2), "pending").
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.UpdateStatusByID(context.Background(), 2, entities.QuotationStatusPending, entities.QuotationStatusApproved)
		assert.True(t, errors.Is(err, interfaces.ErrStatusChanged))
		assert.Equal(t, int64(0), got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuotationPostgresRepository_EnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS quotations`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
