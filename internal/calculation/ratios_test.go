package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetOperatingIncome(t *testing.T) {
	assert.True(t, NetOperatingIncome(d("3000"), d("1000")).Equal(d("24000")))
	assert.True(t, NetOperatingIncome(d("1000"), d("1500")).Equal(d("-6000")))
}

func TestCapRate(t *testing.T) {
	rate, err := CapRate(d("24000"), d("400000"))
	require.NoError(t, err)
	assert.True(t, rate.Equal(d("6")))

	_, err = CapRate(d("24000"), decimal.Zero)
	var degenerate *domain.ErrDegenerateInput
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, "property_value", degenerate.Field)
}

func TestCashOnCashReturn(t *testing.T) {
	rate, err := CashOnCashReturn(d("6000"), d("110000"))
	require.NoError(t, err)
	assertDecimalNear(t, d("5.4545"), rate, d("0.0001"))

	rate, err = CashOnCashReturn(d("-1200"), d("60000"))
	require.NoError(t, err)
	assert.True(t, rate.Equal(d("-2")))

	_, err = CashOnCashReturn(d("6000"), decimal.Zero)
	assert.Error(t, err)
}

func TestROI(t *testing.T) {
	rate, err := ROI(d("87289.3844"), d("500000"))
	require.NoError(t, err)
	assertDecimalNear(t, d("17.4579"), rate, d("0.0001"))

	_, err = ROI(d("1"), d("-5"))
	assert.Error(t, err)
}
