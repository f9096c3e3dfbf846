package services

import (
	"fmt"
	"strings"

	"github.com/hpvvs/salesops_backend/internal/apperrors"
	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/hpvvs/salesops_backend/internal/dto"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	"github.com/shopspring/decimal"
)

// DefaultFeeTolerance is the largest accepted gap between a percent-derived fee and a supplied fee amount.
var DefaultFeeTolerance = decimal.RequireFromString("0.02")

// enumValue maps a lower-cased alias to its canonical label.
type enumValue struct {
	alias     string
	canonical string
}

var anchorTypes = []enumValue{
	{"so", string(domain.AnchorSalesOrder)},
	{"appt", string(domain.AnchorAppointment)},
}

var docTypes = []enumValue{
	{"deposit invoice", domain.DocTypeDepositInvoice},
	{"deposit receipt", domain.DocTypeDepositReceipt},
	{"sales invoice", domain.DocTypeSalesInvoice},
	{"sales receipt", domain.DocTypeSalesReceipt},
	{"credit memo", domain.DocTypeCreditMemo},
	{"payment receipt", domain.DocTypePaymentReceipt},
}

var docStatuses = []enumValue{
	{"draft", domain.DocStatusDraft},
	{"issued", domain.DocStatusIssued},
}

var paymentMethods = []enumValue{
	{"card", "Card"},
	{"wire", "Wire"},
	{"zelle", "Zelle"},
	{"cash", "Cash"},
	{"check", "Check"},
	{"cheque", "Check"},
	{"other", "Other"},
}

var receiptDocTypes = map[string]bool{
	domain.DocTypeDepositReceipt: true,
	domain.DocTypeSalesReceipt:   true,
	domain.DocTypePaymentReceipt: true,
}

var maxFeePercent = decimal.NewFromInt(100)

// PaymentsValidator normalizes a raw submission into a domain.ValidatedPayment. It does no I/O.
type PaymentsValidator struct {
	timeUtil     *timeutil.TimeUtil
	feeTolerance decimal.Decimal
}

// NewPaymentsValidator creates a validator. A negative tolerance falls back to DefaultFeeTolerance.
func NewPaymentsValidator(tu *timeutil.TimeUtil, feeTolerance decimal.Decimal) *PaymentsValidator {
	if feeTolerance.IsNegative() {
		feeTolerance = DefaultFeeTolerance
	}
	return &PaymentsValidator{timeUtil: tu, feeTolerance: feeTolerance}
}

// Validate checks every field of req and returns the normalized record, or an
// *apperrors.FieldError naming the first offending field.
func (v *PaymentsValidator) Validate(req dto.RecordPaymentRequest) (*domain.ValidatedPayment, error) {
	anchor, err := resolveEnum(req.AnchorType, anchorTypes, "anchorType")
	if err != nil {
		return nil, err
	}
	anchorType := domain.AnchorType(anchor)
	rootApptID := trimToNil(req.RootApptID)
	soNumber := trimToNil(req.SONumber)

	if anchorType == domain.AnchorSalesOrder && soNumber == nil {
		return nil, apperrors.NewFieldError("soNumber", "soNumber is required when anchorType=SO")
	}
	if anchorType == domain.AnchorAppointment && rootApptID == nil {
		return nil, apperrors.NewFieldError("rootApptId", "rootApptId is required when anchorType=APPT")
	}

	docType, err := resolveEnum(req.DocType, docTypes, "docType")
	if err != nil {
		return nil, err
	}

	docStatus := domain.DocStatusIssued
	if status := trimToNil(req.DocStatus); status != nil {
		if docStatus, err = resolveEnum(*status, docStatuses, "docStatus"); err != nil {
			return nil, err
		}
	}

	method, err := resolveEnum(req.Method, paymentMethods, "method")
	if err != nil {
		return nil, err
	}

	docRole := inferDocRole(docType)
	if role := trimToNil(req.DocRole); role != nil {
		docRole = domain.DocumentRole(strings.ToUpper(*role))
	}

	if req.AmountGross == nil {
		return nil, apperrors.NewFieldError("amountGross", "amountGross is required")
	}
	amountGross := domain.RoundMoney(*req.AmountGross)
	if !amountGross.IsPositive() {
		return nil, apperrors.NewFieldError("amountGross", "amountGross must be greater than zero")
	}

	var feePercent *decimal.Decimal
	if req.FeePercent != nil {
		if req.FeePercent.IsNegative() || req.FeePercent.GreaterThan(maxFeePercent) {
			return nil, apperrors.NewFieldError("feePercent", "feePercent must be between 0 and 100")
		}
		p := domain.RoundPercent(*req.FeePercent)
		feePercent = &p
	}

	var feeAmount *decimal.Decimal
	if req.FeeAmount != nil {
		if req.FeeAmount.IsNegative() {
			return nil, apperrors.NewFieldError("feeAmount", "feeAmount must be >= 0")
		}
		f := domain.RoundMoney(*req.FeeAmount)
		feeAmount = &f
	}

	paymentDateTime, err := v.timeUtil.ParseDateTime(req.PaymentDateTime)
	if err != nil {
		return nil, apperrors.NewFieldError("paymentDateTime", "paymentDateTime must be a valid ISO-8601 string")
	}

	lines, err := sanitizeLines(req.Lines)
	if err != nil {
		return nil, err
	}
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}

	fee, err := v.resolveFee(amountGross, feePercent, feeAmount)
	if err != nil {
		return nil, err
	}
	amountNet := domain.RoundMoney(amountGross.Sub(fee))
	if amountNet.IsNegative() {
		return nil, apperrors.NewFieldError("amountNet", "amountNet cannot be negative")
	}

	return &domain.ValidatedPayment{
		DocNumber:       trimToNil(req.DocNumber),
		DocRole:         docRole,
		AnchorType:      anchorType,
		RootApptID:      rootApptID,
		SONumber:        soNumber,
		DocType:         docType,
		DocStatus:       docStatus,
		PaymentDateTime: paymentDateTime,
		Method:          method,
		Reference:       trimToNil(req.Reference),
		Notes:           trimToNil(req.Notes),
		AmountGross:     amountGross,
		FeePercent:      feePercent,
		FeeAmount:       feeAmount,
		Subtotal:        domain.RoundMoney(subtotal),
		AmountNet:       amountNet,
		Lines:           lines,
	}, nil
}

// resolveFee picks the supplied fee amount, else the percent-derived fee, else zero.
// When both inputs are present they must agree within the configured tolerance.
func (v *PaymentsValidator) resolveFee(gross decimal.Decimal, feePercent, feeAmount *decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case feeAmount != nil && feePercent != nil:
		derived := domain.PercentOf(gross, *feePercent)
		if derived.Sub(*feeAmount).Abs().GreaterThan(v.feeTolerance) {
			return decimal.Zero, apperrors.NewFieldError("feeAmount", "feePercent and feeAmount disagree; provide only one or ensure they align")
		}
		return *feeAmount, nil
	case feeAmount != nil:
		return *feeAmount, nil
	case feePercent != nil:
		return domain.PercentOf(gross, *feePercent), nil
	default:
		return decimal.Zero, nil
	}
}

func sanitizeLines(lines []dto.RecordPaymentLine) ([]domain.LedgerLine, error) {
	sanitized := make([]domain.LedgerLine, 0, len(lines))
	for i, line := range lines {
		// a JSON null element decodes to the zero line
		if line == (dto.RecordPaymentLine{}) {
			continue
		}
		qty := decimal.NewFromInt(1)
		if line.Qty != nil {
			if line.Qty.IsNegative() {
				return nil, apperrors.NewFieldError(fmt.Sprintf("lines[%d].qty", i), "lines[].qty must be >= 0")
			}
			qty = *line.Qty
		}
		if line.Amt == nil {
			return nil, apperrors.NewFieldError(fmt.Sprintf("lines[%d].amt", i), "lines[].amt is required")
		}
		if line.Amt.IsNegative() {
			return nil, apperrors.NewFieldError(fmt.Sprintf("lines[%d].amt", i), "lines[].amt must be >= 0")
		}
		amt := domain.RoundMoney(*line.Amt)
		sanitized = append(sanitized, domain.LedgerLine{
			Description: trimToNil(line.Desc),
			Quantity:    qty,
			Amount:      amt,
			LineTotal:   domain.RoundMoney(amt.Mul(qty)),
		})
	}
	return sanitized, nil
}

func inferDocRole(docType string) domain.DocumentRole {
	if receiptDocTypes[docType] {
		return domain.RoleReceipt
	}
	if docType == domain.DocTypeCreditMemo {
		return domain.RoleCredit
	}
	return domain.RoleInvoice
}

func resolveEnum(raw string, allowed []enumValue, field string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", apperrors.NewFieldError(field, field+" is required")
	}
	for _, candidate := range allowed {
		if candidate.alias == value {
			return candidate.canonical, nil
		}
	}
	return "", apperrors.NewFieldError(field, field+" must be one of: "+strings.Join(canonicalLabels(allowed), ", "))
}

func canonicalLabels(allowed []enumValue) []string {
	labels := make([]string, 0, len(allowed))
	seen := make(map[string]bool, len(allowed))
	for _, candidate := range allowed {
		if !seen[candidate.canonical] {
			seen[candidate.canonical] = true
			labels = append(labels, candidate.canonical)
		}
	}
	return labels
}

func trimToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
