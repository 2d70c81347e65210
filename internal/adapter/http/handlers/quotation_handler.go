package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/aicedeno1/quotations-business-rules/internal/adapter/http/dto/request"
	response "github.com/aicedeno1/quotations-business-rules/internal/adapter/http/dto/response"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"
	"github.com/aicedeno1/quotations-business-rules/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles the quotation lifecycle that feeds the reports.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation godoc
// @Summary      Register a quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        quotation  body      request.CreateQuotationRequest  true  "Quotation"
// @Success      201        {object}  response.QuotationResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(created))
}

// GetQuotation godoc
// @Summary      Fetch a quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      int  true  "Quotation id"
// @Success      200  {object}  response.QuotationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id, err := parseQuotationID(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	q, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// ApproveQuotation godoc
// @Summary      Approve a quotation
// @Description  Moves a pending quotation to approved.
// @Tags         quotations
// @Produce      json
// @Param        id   path      int  true  "Quotation id"
// @Success      200  {object}  response.QuotationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotations/{id}/approve [patch]
func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.Approve)
}

// CancelQuotation godoc
// @Summary      Cancel a quotation
// @Description  Cancels a pending or approved quotation.
// @Tags         quotations
// @Produce      json
// @Param        id   path      int  true  "Quotation id"
// @Success      200  {object}  response.QuotationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotations/{id}/cancel [patch]
func (h *QuotationHandler) CancelQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.Cancel)
}

// CompleteQuotation godoc
// @Summary      Complete a quotation
// @Description  Moves an approved quotation to completed.
// @Tags         quotations
// @Produce      json
// @Param        id   path      int  true  "Quotation id"
// @Success      200  {object}  response.QuotationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotations/{id}/complete [patch]
func (h *QuotationHandler) CompleteQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.Complete)
}

func (h *QuotationHandler) patchQuotationStatus(
	c *gin.Context,
	updater func(ctx context.Context, id int64) (entities.Quotation, error),
) {
	id, err := parseQuotationID(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	q, err := updater(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) fail(c *gin.Context, err error) {
	appErr := mapQuotationError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Str("layer", "handler").Err(err).Msg("quotation request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotation):
		return pkg.NewDomainError("INVALID_QUOTATION", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationAlreadyExists), errors.Is(err, interfaces.ErrQuotationExists):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_EXISTS", "Quotation already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition), errors.Is(err, interfaces.ErrStatusChanged):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	default:
		return mapReportError(err)
	}
}
