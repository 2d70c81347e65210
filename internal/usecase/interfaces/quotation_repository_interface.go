package interfaces

import (
	"context"
	"errors"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
)

var (
	// ErrQuotationExists is returned by Create when the id is already stored.
	ErrQuotationExists = errors.New("quotation already stored")
	// ErrStatusChanged is returned by UpdateStatusByID when the record is gone
	// or its status is no longer the expected one.
	ErrStatusChanged = errors.New("quotation status changed")
)

//go:generate mockgen -source=quotation_repository_interface.go -destination=mocks/mock_quotation_repository_interface.go -package=mock_interfaces

// IQuotationReader is the read side of the quotation store. Reports only
// ever need this view.
//
// Implementations return a zero-value Quotation (ID == 0) when GetByID finds
// nothing, and a freshly allocated slice from ListAll so callers may read it
// without coordination.
type IQuotationReader interface {
	ListAll(ctx context.Context) ([]entities.Quotation, error)
	GetByID(ctx context.Context, id int64) (entities.Quotation, error)
}

// IQuotationRepository abstracts persistence for Quotation.
//
// The service must be able to:
//   - register a quotation with a caller supplied id
//   - move a quotation through its lifecycle (approve/cancel/complete), writing
//     only while the stored status still equals from
//   - feed the four reports through IQuotationReader
type IQuotationRepository interface {
	IQuotationReader
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	UpdateStatusByID(ctx context.Context, id int64, from, to entities.QuotationStatus) (entities.Quotation, error)
}
