package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/analytics"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrQuotationAlreadyExists  = errors.New("quotation already exists")
	ErrInvalidQuotation        = errors.New("invalid quotation")
	ErrInvalidStatusTransition = errors.New("invalid quotation status transition")
)

// allowedTransitions lists the statuses each status may move to.
var allowedTransitions = map[entities.QuotationStatus][]entities.QuotationStatus{
	entities.QuotationStatusPending:  {entities.QuotationStatusApproved, entities.QuotationStatusCancelled},
	entities.QuotationStatusApproved: {entities.QuotationStatusCompleted, entities.QuotationStatusCancelled},
}

// IQuotationUseCase exposes the quotation lifecycle that feeds the reports.

type IQuotationUseCase interface {
	Register(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id int64) (entities.Quotation, error)
	Approve(ctx context.Context, id int64) (entities.Quotation, error)
	Cancel(ctx context.Context, id int64) (entities.Quotation, error)
	Complete(ctx context.Context, id int64) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo interfaces.IQuotationRepository
	now  func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Register stores a new pending quotation. CreatedAt is kept when supplied so
// historical records can be imported.
func (u *QuotationUseCase) Register(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	q.Status = entities.QuotationStatusPending
	if err := q.Validate(); err != nil {
		return entities.Quotation{}, fmt.Errorf("%w: %w", ErrInvalidQuotation, err)
	}

	// Enforce: ids are unique.
	if existing, err := u.repo.GetByID(ctx, q.ID); err != nil {
		return entities.Quotation{}, err
	} else if existing.ID != 0 {
		return entities.Quotation{}, ErrQuotationAlreadyExists
	}

	now := u.now()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if errors.Is(err, interfaces.ErrQuotationExists) {
		return entities.Quotation{}, ErrQuotationAlreadyExists
	}
	if err != nil {
		return entities.Quotation{}, err
	}
	zerolog.Ctx(ctx).Info().Int64("quotation_id", created.ID).Msg("quotation registered")
	return created, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id int64) (entities.Quotation, error) {
	if id <= 0 {
		return entities.Quotation{}, invalidID(id)
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == 0 {
		return entities.Quotation{}, &analytics.QuotationNotFoundError{QuotationID: id}
	}
	return q, nil
}

func (u *QuotationUseCase) Approve(ctx context.Context, id int64) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusApproved)
}

func (u *QuotationUseCase) Cancel(ctx context.Context, id int64) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusCancelled)
}

func (u *QuotationUseCase) Complete(ctx context.Context, id int64) (entities.Quotation, error) {
	return u.transition(ctx, id, entities.QuotationStatusCompleted)
}

func (u *QuotationUseCase) transition(ctx context.Context, id int64, to entities.QuotationStatus) (entities.Quotation, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !canTransition(current.Status, to) {
		return entities.Quotation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, to)
	}

	// The write only lands while the status is still current.Status.
	updated, err := u.repo.UpdateStatusByID(ctx, id, current.Status, to)
	if errors.Is(err, interfaces.ErrStatusChanged) {
		latest, gerr := u.GetByID(ctx, id)
		if gerr != nil {
			return entities.Quotation{}, gerr
		}
		return entities.Quotation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, latest.Status, to)
	}
	if err != nil {
		return entities.Quotation{}, err
	}
	zerolog.Ctx(ctx).Info().Int64("quotation_id", id).Str("from", string(current.Status)).Str("to", string(to)).Msg("quotation status updated")
	return updated, nil
}

func canTransition(from, to entities.QuotationStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func invalidID(id int64) error {
	return &analytics.InvalidArgumentError{Field: "id", Value: fmt.Sprint(id), Reason: "must be a positive integer"}
}
