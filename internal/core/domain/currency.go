package domain

import (
	"fmt"
	"math"
	"sort"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LedgerPlaces is the fixed-point precision of ledger balances: one ledger unit is
// 10^-4 of the scaled base unit.
const LedgerPlaces = 4

var ledgerPrecision = decimal.New(1, LedgerPlaces)

// CurrencySpec maps a provider currency code onto ledger minor units.
// The scaled base unit is Multiplier times the provider's amount, and the ledger holds it
// with LedgerPlaces decimals. Scale is the number of decimals balances are reported with.
type CurrencySpec struct {
	Code       string
	Multiplier int64
	Scale      int32
}

var currencyTable = map[string]CurrencySpec{
	"MMK":  {Code: "MMK", Multiplier: 1, Scale: 2},
	"IDR":  {Code: "IDR", Multiplier: 1, Scale: 2},
	"IDR2": {Code: "IDR2", Multiplier: 100, Scale: 4},
	"KRW2": {Code: "KRW2", Multiplier: 10, Scale: 4},
	"MMK2": {Code: "MMK2", Multiplier: 1000, Scale: 4},
	"VND2": {Code: "VND2", Multiplier: 1000, Scale: 4},
	"LAK2": {Code: "LAK2", Multiplier: 10, Scale: 4},
	"KHR2": {Code: "KHR2", Multiplier: 100, Scale: 4},
}

// LookupCurrency returns the settings for code. Unknown codes are rejected, never defaulted.
func LookupCurrency(code string) (CurrencySpec, error) {
	spec, ok := currencyTable[code]
	if !ok {
		return CurrencySpec{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, code)
	}
	return spec, nil
}

// SupportedCurrencies lists the accepted currency codes in sorted order.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencyTable))
	for code := range currencyTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ToLedger converts a provider amount into ledger minor units without rounding.
// Zero converts to zero. Negative amounts and amounts with more than LedgerPlaces
// decimals are ErrInvalidAmount.
func (c CurrencySpec) ToLedger(amount decimal.Decimal) (int64, error) {
	if !amount.Equal(amount.Truncate(LedgerPlaces)) {
		return 0, fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrInvalidAmount, amount.String(), LedgerPlaces)
	}
	scaled := amount.Mul(decimal.NewFromInt(c.Multiplier)).Mul(ledgerPrecision)
	if scaled.IsZero() {
		return 0, nil
	}
	return NormalizeAmount(scaled)
}

// ToProvider converts a ledger balance back into the provider's unit. Precision beyond
// LedgerPlaces is truncated.
func (c CurrencySpec) ToProvider(balance int64) decimal.Decimal {
	return decimal.NewFromInt(balance).
		Div(decimal.NewFromInt(c.Multiplier).Mul(ledgerPrecision)).
		Truncate(LedgerPlaces)
}

// Report renders a ledger balance in the provider's unit, truncated to Scale.
func (c CurrencySpec) Report(balance int64) decimal.Decimal {
	return c.ToProvider(balance).Truncate(c.Scale)
}

// NormalizeAmount converts a decimal into a positive integer amount of minor units.
func NormalizeAmount(d decimal.Decimal) (int64, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %s is not a whole number of minor units", apperrors.ErrInvalidAmount, d.String())
	}
	if d.Sign() <= 0 {
		return 0, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, d.String())
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("%w: %s overflows", apperrors.ErrInvalidAmount, d.String())
	}
	return d.IntPart(), nil
}

// ValidateAmount rejects non-positive minor-unit amounts.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", apperrors.ErrInvalidAmount, amount)
	}
	return nil
}
