package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// LenientDecimal is a numeric input that may arrive as a JSON number, a quoted
// string or null. Unparseable input never fails decoding; it is flagged instead.
type LenientDecimal struct {
	Value     decimal.Decimal
	Present   bool
	Malformed bool
}

// Amounts are stored as NUMERIC(18,4).
const (
	StoredScale        = 4
	maxStoredIntDigits = 14
	minParsedExponent  = -32
)

var storageLimit = decimal.New(1, maxStoredIntDigits)

// FitsStorage reports whether d fits a NUMERIC(18,4) column without rounding.
// The exponent is checked first so huge inputs are rejected before any rescaling.
func FitsStorage(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := d.Exponent()
	if exp > maxStoredIntDigits || exp < minParsedExponent {
		return false
	}
	if !d.Round(StoredScale).Equal(d) {
		return false
	}
	return d.Abs().LessThan(storageLimit)
}

// NewLenientDecimal wraps a well-formed value.
func NewLenientDecimal(d decimal.Decimal) LenientDecimal {
	return LenientDecimal{Value: d, Present: true}
}

// ParseLenientDecimal interprets free text, flagging rather than rejecting bad input.
func ParseLenientDecimal(raw string) LenientDecimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return LenientDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !FitsStorage(d) {
		return LenientDecimal{Present: true, Malformed: true}
	}
	if d.IsZero() {
		return LenientDecimal{Value: decimal.Zero, Present: true}
	}
	return LenientDecimal{Value: d.Round(StoredScale), Present: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LenientDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = LenientDecimal{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*l = LenientDecimal{Present: true, Malformed: true}
			return nil
		}
		*l = ParseLenientDecimal(s)
		return nil
	}
	*l = ParseLenientDecimal(string(data))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l LenientDecimal) MarshalJSON() ([]byte, error) {
	if !l.Present || l.Malformed {
		return []byte("null"), nil
	}
	return json.Marshal(l.Value)
}

// Usable reports whether the input carries a well-formed number.
func (l LenientDecimal) Usable() bool {
	return l.Present && !l.Malformed
}

// Null converts to the storage representation; malformed or absent input is null.
func (l LenientDecimal) Null() decimal.NullDecimal {
	if !l.Usable() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(l.Value)
}

// DeriveTotal computes the stored total of a new ledger entry. A supplied total
// wins; otherwise hours * ratePerHour, rounded to the stored scale, when both
// are supplied. Any parse failure on the inputs that feed the total, or a
// product too large to store, degrades it to zero.
func DeriveTotal(total, hours, rate LenientDecimal) decimal.NullDecimal {
	if total.Usable() {
		return decimal.NewNullDecimal(total.Value)
	}
	if total.Malformed || hours.Malformed || rate.Malformed {
		return decimal.NewNullDecimal(decimal.Zero)
	}
	if hours.Present && rate.Present {
		product := hours.Value.Mul(rate.Value).Round(StoredScale)
		if !FitsStorage(product) {
			return decimal.NewNullDecimal(decimal.Zero)
		}
		return decimal.NewNullDecimal(product)
	}
	return decimal.NullDecimal{}
}

// OrZero returns the value or zero when null.
func OrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
