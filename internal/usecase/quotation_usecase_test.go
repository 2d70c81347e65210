package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/analytics"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"
	mock_interfaces "github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newQuotationUseCase(repo *mock_interfaces.MockIQuotationRepository) *QuotationUseCase {
	uc := NewQuotationUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestQuotationUseCase_Register(t *testing.T) {
	t.Run("invalid quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		_, err := uc.Register(context.Background(), entities.Quotation{ID: 1, Subtotal: dec("-1")})
		if !errors.Is(err, ErrInvalidQuotation) || !errors.Is(err, entities.ErrInvalidQuotationSubtotal) {
			t.Fatalf("expected ErrInvalidQuotation wrapping subtotal error, got %v", err)
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Quotation{}, errors.New("db"))

		_, err := uc.Register(context.Background(), entities.Quotation{ID: 1, Subtotal: dec("10")})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Quotation{ID: 1}, nil)

		_, err := uc.Register(context.Background(), entities.Quotation{ID: 1, Subtotal: dec("10")})
		if !errors.Is(err, ErrQuotationAlreadyExists) {
			t.Fatalf("expected ErrQuotationAlreadyExists, got %v", err)
		}
	})

	t.Run("success forces pending and stamps dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Quotation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.Status != entities.QuotationStatusPending {
					t.Fatalf("expected pending status, got %s", q.Status)
				}
				if !q.CreatedAt.Equal(fixedNow) || !q.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps to be stamped, got %v / %v", q.CreatedAt, q.UpdatedAt)
				}
				return q, nil
			})

		res, err := uc.Register(context.Background(), entities.Quotation{ID: 5, Status: entities.QuotationStatusCompleted, Subtotal: dec("10")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 5 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("keeps supplied creation date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		created := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), int64(6)).Return(entities.Quotation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				return q, nil
			})

		res, err := uc.Register(context.Background(), entities.Quotation{ID: 6, Subtotal: dec("10"), CreatedAt: created})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.CreatedAt.Equal(created) {
			t.Fatalf("expected supplied creation date, got %v", res.CreatedAt)
		}
	})

	t.Run("store rejects a duplicate created concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Quotation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, fmt.Errorf("%w: %d", interfaces.ErrQuotationExists, 5))

		_, err := uc.Register(context.Background(), entities.Quotation{ID: 5, Subtotal: dec("10")})
		if !errors.Is(err, ErrQuotationAlreadyExists) {
			t.Fatalf("expected ErrQuotationAlreadyExists, got %v", err)
		}
	})

	t.Run("create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Quotation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, errors.New("write"))

		_, err := uc.Register(context.Background(), entities.Quotation{ID: 5, Subtotal: dec("10")})
		if err == nil || err.Error() != "write" {
			t.Fatalf("expected write error, got %v", err)
		}
	})
}

func TestQuotationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.GetByID(context.Background(), 0)
		if !errors.Is(err, analytics.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Quotation{}, nil)

		_, err := uc.GetByID(context.Background(), 9)
		if !errors.Is(err, analytics.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Quotation{ID: 9}, nil)

		res, err := uc.GetByID(context.Background(), 9)
		if err != nil || res.ID != 9 {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})
}

func TestQuotationUseCase_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entities.QuotationStatus
		apply   func(uc *QuotationUseCase) (entities.Quotation, error)
		to      entities.QuotationStatus
		allowed bool
	}{
		{"approve pending", entities.QuotationStatusPending, func(uc *QuotationUseCase) (entities.Quotation, error) { return uc.Approve(context.Background(), 3) }, entities.QuotationStatusApproved, true},
		{"cancel pending", entities.QuotationStatusPending, func(uc *QuotationUseCase) (entities.Quotation, error) { return uc.Cancel(context.Background(), 3) }, entities.QuotationStatusCancelled, true},
		{"cancel approved", entities.QuotationStatusApproved, func(uc *QuotationUseCase) (entities.Quotation, error) { return uc.Cancel(context.Background(), 3) }, entities.QuotationStatusCancelled, true},
		{"complete approved", entities.QuotationStatusApproved, func(uc *QuotationUseCase) (entities.Quotation, error) { return uc.Complete(context.Background(), 3) }, entities.QuotationStatusCompleted, true},
		{"complete pending", entities.QuotationStatusPending, func(uc *QuotationUseCase) (entities.Quotation, error) { return uc.Complete(context.Background(), 3) }, entities.QuotationStatusCompleted, false},
		{"approve cancelled", entities.QuotationStatusCancelled, func(uc *QuotationUseCase) (entities.Quotation, error) { return uc.Approve(context.Background(), 3) }, entities.QuotationStatusApproved, false},
		{"cancel completed", entities.QuotationStatusCompleted, func(uc *QuotationUseCase) (entities.Quotation, error) { return uc.Cancel(context.Background(), 3) }, entities.QuotationStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := newQuotationUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Quotation{ID: 3, Status: tt.from}, nil)
			if tt.allowed {
				repo.EXPECT().UpdateStatusByID(gomock.Any(), int64(3), tt.from, tt.to).Return(entities.Quotation{ID: 3, Status: tt.to}, nil)
			}

			res, err := tt.apply(uc)
			if !tt.allowed {
				if !errors.Is(err, ErrInvalidStatusTransition) {
					t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tt.to {
				t.Fatalf("expected status %s, got %s", tt.to, res.Status)
			}
		})
	}

	t.Run("cancelled between read and update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Quotation{ID: 3, Status: entities.QuotationStatusPending}, nil),
			repo.EXPECT().UpdateStatusByID(gomock.Any(), int64(3), entities.QuotationStatusPending, entities.QuotationStatusApproved).
				Return(entities.Quotation{}, interfaces.ErrStatusChanged),
			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Quotation{ID: 3, Status: entities.QuotationStatusCancelled}, nil),
		)

		res, err := uc.Approve(context.Background(), 3)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %+v, %v", res, err)
		}
		if res.Status == entities.QuotationStatusApproved {
			t.Fatalf("cancelled quotation must not be approved")
		}
	})

	t.Run("vanished between read and update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := newQuotationUseCase(repo)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Quotation{ID: 3, Status: entities.QuotationStatusPending}, nil),
			repo.EXPECT().UpdateStatusByID(gomock.Any(), int64(3), entities.QuotationStatusPending, entities.QuotationStatusApproved).
				Return(entities.Quotation{}, interfaces.ErrStatusChanged),
			repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Quotation{}, nil),
		)

		_, err := uc.Approve(context.Background(), 3)
		if !errors.Is(err, analytics.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
