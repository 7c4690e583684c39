package models

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Hours is an exact decimal quantity of worked hours. Business rules
// allow 0.25 to 24.00 in quarter-hour increments, so float64 is not an
// option here.
type Hours struct {
	dec decimal.Decimal
}

var quarter = decimal.NewFromFloat(0.25)

func NewHours(s string) (Hours, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Hours{}, fmt.Errorf("invalid hours %q: %w", s, err)
	}
	return Hours{dec: d}, nil
}

func HoursFromFloat(f float64) Hours {
	return Hours{dec: decimal.NewFromFloat(f)}
}

func (h Hours) Add(other Hours) Hours {
	return Hours{dec: h.dec.Add(other.dec)}
}

func (h Hours) Cmp(other Hours) int {
	return h.dec.Cmp(other.dec)
}

func (h Hours) IsZero() bool {
	return h.dec.IsZero()
}

// Valid reports whether h is within [0.25, 24] and on a quarter-hour step.
func (h Hours) Valid() bool {
	if h.dec.Cmp(quarter) < 0 || h.dec.Cmp(decimal.NewFromInt(24)) > 0 {
		return false
	}
	return h.dec.Mod(quarter).IsZero()
}

func (h Hours) String() string {
	return h.dec.String()
}

func (h *Hours) Scan(value interface{}) error {
	if value == nil {
		h.dec = decimal.Zero
		return nil
	}
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		h.dec = d
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		h.dec = d
	case float64:
		h.dec = decimal.NewFromFloat(v)
	case int64:
		h.dec = decimal.NewFromInt(v)
	default:
		return errors.New(fmt.Sprint("failed to scan hours value:", value))
	}
	return nil
}

func (h Hours) Value() (driver.Value, error) {
	return h.dec.String(), nil
}

func (h Hours) MarshalJSON() ([]byte, error) {
	return []byte(h.dec.String()), nil
}

func (h *Hours) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid hours %q: %w", s, err)
	}
	h.dec = d
	return nil
}
