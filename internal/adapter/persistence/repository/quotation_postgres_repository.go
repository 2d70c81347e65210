package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const quotationsSchema = `
CREATE TABLE IF NOT EXISTS quotations (
    id             BIGINT PRIMARY KEY,
    chef_id        BIGINT,
    status         TEXT        NOT NULL,
    subtotal       NUMERIC     NOT NULL,
    discount_type  TEXT,
    discount_value NUMERIC,
    tax_iva        NUMERIC     NOT NULL DEFAULT 0,
    tax_service    NUMERIC     NOT NULL DEFAULT 0,
    tax_other      NUMERIC     NOT NULL DEFAULT 0,
    created_at     TIMESTAMPTZ NOT NULL,
    updated_at     TIMESTAMPTZ NOT NULL
)`

const quotationColumns = `id, chef_id, status, subtotal, discount_type, discount_value, tax_iva, tax_service, tax_other, created_at, updated_at`

const uniqueViolation = "23505"

type quotationRow struct {
	ID            int64               `db:"id"`
	ChefID        sql.NullInt64       `db:"chef_id"`
	Status        string              `db:"status"`
	Subtotal      decimal.Decimal     `db:"subtotal"`
	DiscountType  sql.NullString      `db:"discount_type"`
	DiscountValue decimal.NullDecimal `db:"discount_value"`
	TaxIVA        decimal.Decimal     `db:"tax_iva"`
	TaxService    decimal.Decimal     `db:"tax_service"`
	TaxOther      decimal.Decimal     `db:"tax_other"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
}

// QuotationPostgresRepository persists Quotation entities in PostgreSQL.
type QuotationPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IQuotationRepository = (*QuotationPostgresRepository)(nil)

func NewQuotationPostgresRepository(db *sqlx.DB) *QuotationPostgresRepository {
	return &QuotationPostgresRepository{db: db}
}

// EnsureSchema creates the quotations table when it does not exist.
func (r *QuotationPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, quotationsSchema); err != nil {
		return fmt.Errorf("failed to create quotations table: %w", err)
	}
	return nil
}

func (r *QuotationPostgresRepository) ListAll(ctx context.Context) ([]entities.Quotation, error) {
	var rows []quotationRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+quotationColumns+` FROM quotations ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}

	out := make([]entities.Quotation, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromQuotationRow(row))
	}
	zerolog.Ctx(ctx).Debug().Str("layer", "repository").Int("items", len(out)).Msg("quotations loaded")
	return out, nil
}

func (r *QuotationPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Quotation, error) {
	var row quotationRow
	err := r.db.GetContext(ctx, &row, `SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quotation{}, nil
	}
	if err != nil {
		return entities.Quotation{}, fmt.Errorf("failed to get quotation %d: %w", id, err)
	}
	return fromQuotationRow(row), nil
}

func (r *QuotationPostgresRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	row := toQuotationRow(q)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quotations (`+quotationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		row.ID, row.ChefID, row.Status, row.Subtotal, row.DiscountType, row.DiscountValue,
		row.TaxIVA, row.TaxService, row.TaxOther, row.CreatedAt, row.UpdatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entities.Quotation{}, fmt.Errorf("%w: %d", interfaces.ErrQuotationExists, q.ID)
	}
	if err != nil {
		return entities.Quotation{}, fmt.Errorf("failed to create quotation %d: %w", q.ID, err)
	}
	return q, nil
}

func (r *QuotationPostgresRepository) UpdateStatusByID(ctx context.Context, id int64, from, to entities.QuotationStatus) (entities.Quotation, error) {
	var row quotationRow
	err := r.db.GetContext(ctx, &row,
		`UPDATE quotations SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4 RETURNING `+quotationColumns,
		string(to), time.Now().UTC(), id, string(from),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quotation{}, fmt.Errorf("%w: %d", interfaces.ErrStatusChanged, id)
	}
	if err != nil {
		return entities.Quotation{}, fmt.Errorf("failed to update quotation %d: %w", id, err)
	}
	return fromQuotationRow(row), nil
}

func toQuotationRow(q entities.Quotation) quotationRow {
	row := quotationRow{
		ID:         q.ID,
		Status:     string(q.Status),
		Subtotal:   q.Subtotal,
		TaxIVA:     q.TaxRates.IVA,
		TaxService: q.TaxRates.Service,
		TaxOther:   q.TaxRates.Other,
		CreatedAt:  q.CreatedAt.UTC(),
		UpdatedAt:  q.UpdatedAt.UTC(),
	}
	if q.ChefID != nil {
		row.ChefID = sql.NullInt64{Int64: *q.ChefID, Valid: true}
	}
	if q.Discount != nil {
		row.DiscountType = sql.NullString{String: string(q.Discount.Type), Valid: true}
		row.DiscountValue = decimal.NewNullDecimal(q.Discount.Value)
	}
	return row
}

func fromQuotationRow(row quotationRow) entities.Quotation {
	q := entities.Quotation{
		ID:       row.ID,
		Status:   entities.QuotationStatus(row.Status),
		Subtotal: row.Subtotal,
		TaxRates: entities.TaxRates{
			IVA:     row.TaxIVA,
			Service: row.TaxService,
			Other:   row.TaxOther,
		},
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
	if row.ChefID.Valid {
		chefID := row.ChefID.Int64
		q.ChefID = &chefID
	}
	if row.DiscountType.Valid && row.DiscountType.String != "" {
		q.Discount = &money.Discount{Type: money.DiscountType(row.DiscountType.String), Value: decimal.Zero}
		if row.DiscountValue.Valid {
			q.Discount.Value = row.DiscountValue.Decimal
		}
	}
	return q
}
