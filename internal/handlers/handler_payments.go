package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hpvvs/salesops_backend/internal/apperrors"
	portssvc "github.com/hpvvs/salesops_backend/internal/core/ports/services"
	"github.com/hpvvs/salesops_backend/internal/dto"
	"github.com/hpvvs/salesops_backend/internal/middleware"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
)

// paymentsHandler handles HTTP requests for the payments ledger.
type paymentsHandler struct {
	paymentsService portssvc.PaymentsSvcFacade
	timeUtil        *timeutil.TimeUtil
}

// newPaymentsHandler creates a new paymentsHandler.
func newPaymentsHandler(ps portssvc.PaymentsSvcFacade, tu *timeutil.TimeUtil) *paymentsHandler {
	return &paymentsHandler{
		paymentsService: ps,
		timeUtil:        tu,
	}
}

// RegisterPaymentsRoutes registers the payments ledger routes on rg.
func RegisterPaymentsRoutes(rg *gin.RouterGroup, paymentsService portssvc.PaymentsSvcFacade, tu *timeutil.TimeUtil) {
	useJSONFieldNames()
	h := newPaymentsHandler(paymentsService, tu)

	payments := rg.Group("/payments")
	{
		payments.POST("/record", h.recordPayment)
		payments.GET("/summary", h.summarizePayments)
		payments.GET("/documents/:docNumber", h.getDocument)
	}
}

// useJSONFieldNames makes binding errors report the json name of the offending field.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// recordPayment godoc
// @Summary Record a financial document
// @Description Validates, fingerprints and upserts an invoice, receipt or credit memo. Resubmitting identical content returns status UPDATED with the same docNumber.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordPaymentRequest true "Document submission"
// @Success 200 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /payments/record [post]
func (h *paymentsHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := bindingFieldError(verrs[0])
			logger.Warn("Payment submission failed binding", slog.String("field", fe.Field))
			c.JSON(http.StatusBadRequest, gin.H{"error": fe.Message, "field": fe.Field})
			return
		}
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.paymentsService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordPaymentResponse(*result, h.timeUtil))
}

// summarizePayments godoc
// @Summary Summarize payments for an anchor
// @Description Aggregates every document of a root appointment and/or sales order. At least one identifier is required.
// @Tags payments
// @Produce  json
// @Param   rootApptId query string false "Root appointment ID"
// @Param   soNumber query string false "Sales order number"
// @Success 200 {object} dto.PaymentsSummaryResponse
// @Failure 400 {object} map[string]string "Missing identifier"
// @Failure 500 {object} map[string]string "Failed to summarize payments"
// @Router /payments/summary [get]
func (h *paymentsHandler) summarizePayments(c *gin.Context) {
	rootApptID := c.Query("rootApptId")
	soNumber := c.Query("soNumber")

	summary, err := h.paymentsService.SummarizePayments(c.Request.Context(), rootApptID, soNumber)
	if err != nil {
		h.writeError(c, err, "Failed to summarize payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentsSummaryResponse(*summary, h.timeUtil))
}

// getDocument godoc
// @Summary Get a ledger document
// @Description Retrieves a single ledger document by its document number
// @Tags payments
// @Produce  json
// @Param   docNumber path string true "Document number"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Router /payments/documents/{docNumber} [get]
func (h *paymentsHandler) getDocument(c *gin.Context) {
	docNumber := c.Param("docNumber")

	doc, err := h.paymentsService.GetDocument(c.Request.Context(), docNumber)
	if err != nil {
		h.writeError(c, err, "Failed to retrieve document")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(*doc, h.timeUtil))
}

// writeError maps service errors onto HTTP responses. Store failures never leak their cause.
func (h *paymentsHandler) writeError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var fe *apperrors.FieldError
	switch {
	case errors.As(err, &fe):
		c.JSON(http.StatusBadRequest, gin.H{"error": fe.Message, "field": fe.Field})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     fallback,
			"requestId": middleware.GetRequestIDFromCtx(c.Request.Context()),
		})
	}
}

// bindingFieldError renders a struct tag failure with the same wording the validator uses.
func bindingFieldError(fe validator.FieldError) *apperrors.FieldError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.NewFieldError(field, field+" is required")
	default:
		return apperrors.NewFieldError(field, field+" is invalid")
	}
}
