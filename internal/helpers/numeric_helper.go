package helpers

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// NumericFromDecimal converts a decimal value into a pgtype.Numeric for storage.
func NumericFromDecimal(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("failed to convert decimal to numeric: %w", err)
	}
	return n, nil
}

// NumericFromFloat converts a float64 into a pgtype.Numeric for storage.
func NumericFromFloat(f float64) (pgtype.Numeric, error) {
	return NumericFromDecimal(decimal.NewFromFloat(f))
}

// NumericToDecimal converts a pgtype.Numeric into a decimal value.
// An invalid (NULL) numeric converts to zero.
func NumericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, nil
	}
	v, err := n.Value()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read numeric value: %w", err)
	}
	s, ok := v.(string)
	if !ok {
		return decimal.Zero, fmt.Errorf("unexpected numeric driver value %T", v)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse numeric %q: %w", s, err)
	}
	return d, nil
}

// NumericToFloat converts a pgtype.Numeric into a float64.
// An invalid (NULL) numeric converts to zero.
func NumericToFloat(n pgtype.Numeric) (float64, error) {
	d, err := NumericToDecimal(n)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}
