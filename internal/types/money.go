// Package types implements special types for banktrack.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places stored for monetary values.
const MoneyScale = 4

// MaxMoney is the largest absolute value accepted as a single amount.
var MaxMoney = decimal.New(1, 11)

// MaxBalanceMinor is the largest balance in minor units. Balances are
// stored as int64, which leaves room for roughly 9000 maximum-sized amounts per bank.
const MaxBalanceMinor int64 = math.MaxInt64

var (
	ErrMoneyNegative  = errors.New("must not be negative")
	ErrMoneyPrecision = fmt.Errorf("must not have more than %d decimal places", MoneyScale)
	ErrMoneyTooLarge  = fmt.Errorf("must not be larger than %s", MaxMoney)
)

// Money is an exact monetary value.
//
// It is stored as an integer number of minor units (10^-MoneyScale) so that
// the database can add and subtract amounts without floating point drift.
type Money decimal.Decimal

// NewMoney returns a Money for the decimal. The decimal is rounded
// to MoneyScale places.
func NewMoney(d decimal.Decimal) Money {
	return Money(d.Round(MoneyScale))
}

// MoneyFromMinor returns the Money for an amount of minor units.
func MoneyFromMinor(minor int64) Money {
	return Money(decimal.New(minor, -MoneyScale))
}

// ValidateAmount checks that d can be used as a transaction amount or balance.
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrMoneyNegative
	}

	if !d.Equal(d.Round(MoneyScale)) {
		return ErrMoneyPrecision
	}

	if d.GreaterThan(MaxMoney) {
		return ErrMoneyTooLarge
	}

	return nil
}

// Decimal returns the value as decimal.Decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.Decimal(m)
}

// Minor returns the value in minor units.
func (m Money) Minor() int64 {
	return decimal.Decimal(m).Shift(MoneyScale).IntPart()
}

// String returns the value formatted without trailing zeros.
func (m Money) String() string {
	return decimal.Decimal(m).String()
}

// Add returns m + n.
func (m Money) Add(n Money) Money {
	return Money(m.Decimal().Add(n.Decimal()))
}

// Sub returns m - n.
func (m Money) Sub(n Money) Money {
	return Money(m.Decimal().Sub(n.Decimal()))
}

// Equal reports whether m and n represent the same amount.
func (m Money) Equal(n Money) bool {
	return m.Decimal().Equal(n.Decimal())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both JSON numbers and numeric strings are accepted.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	*m = Money(d)
	return nil
}

// Scan writes the value from the database.
func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = Money(decimal.Zero)
	case int64:
		*m = MoneyFromMinor(v)
	case []byte:
		return m.scanString(string(v))
	case string:
		return m.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}

	return nil
}

func (m *Money) scanString(s string) error {
	minor, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Money: %w", s, err)
	}

	*m = MoneyFromMinor(minor)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Money) Value() (driver.Value, error) {
	return m.Minor(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Money) GormDataType() string {
	return "integer"
}
