package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/hpvvs/salesops_backend/internal/utils/mapping"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	"github.com/shopspring/decimal"
)

const hashFieldSeparator = "\x1f"

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// RequestHasher fingerprints normalized payments.
type RequestHasher struct {
	timeUtil *timeutil.TimeUtil
}

// NewRequestHasher creates a hasher that renders timestamps in the zone of tu.
func NewRequestHasher(tu *timeutil.TimeUtil) *RequestHasher {
	return &RequestHasher{timeUtil: tu}
}

// ComputeRequestHash returns the lowercase hex SHA-256 of the economically significant fields of p.
func (h *RequestHasher) ComputeRequestHash(p domain.ValidatedPayment) (string, error) {
	linesJSON, err := mapping.LinesToJSON(p.Lines)
	if err != nil {
		return "", err
	}

	fields := []string{
		string(p.AnchorType),
		deref(p.RootApptID),
		deref(p.SONumber),
		p.DocType,
		p.DocStatus,
		string(p.DocRole),
		p.Method,
		deref(p.Reference),
		deref(p.Notes),
		p.AmountGross.StringFixed(domain.MoneyScale),
		fixedOrEmpty(p.FeePercent, domain.PercentScale),
		fixedOrEmpty(p.FeeAmount, domain.MoneyScale),
		p.Subtotal.StringFixed(domain.MoneyScale),
		p.AmountNet.StringFixed(domain.MoneyScale),
		h.timeUtil.FormatDateTime(p.PaymentDateTime),
		string(linesJSON),
	}

	sum := sha256.Sum256([]byte(strings.Join(fields, hashFieldSeparator)))
	return hex.EncodeToString(sum[:]), nil
}

// GenerateDocNumber synthesizes a stable document number:
// {anchor}-{role}-{type}-{epochMillis|TS0}-{hash[:8]}, upper-cased.
func GenerateDocNumber(p domain.ValidatedPayment, requestHash string) string {
	ts := "TS0"
	if !p.PaymentDateTime.IsZero() {
		ts = strconv.FormatInt(p.PaymentDateTime.UnixMilli(), 10)
	}
	prefix := requestHash
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	number := fmt.Sprintf("%s-%s-%s-%s-%s",
		anchorToken(p.AnchorType),
		normalizeToken(string(p.DocRole)),
		normalizeToken(p.DocType),
		ts,
		prefix,
	)
	return strings.ToUpper(number)
}

func anchorToken(anchor domain.AnchorType) string {
	if anchor == "" {
		return "NA"
	}
	return string(anchor)
}

func normalizeToken(value string) string {
	if value == "" {
		return "NA"
	}
	return strings.ToUpper(nonAlphanumeric.ReplaceAllString(value, ""))
}

func fixedOrEmpty(d *decimal.Decimal, places int32) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(places)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
