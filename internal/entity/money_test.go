package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoney_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "£0.00", Money(0).String())
	require.Equal(t, "£9.50", Money(950).String())
	require.Equal(t, "£278.00", Money(27800).String())
	require.Equal(t, "£0.05", Money(5).String())
	require.Equal(t, "-£1.25", Money(-125).String())
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Parallel()

	require.Equal(t, Money(10000), Money(2500).Mul(4))
	require.Equal(t, Money(11400), Money(950).MulFloat(12))
	// округление до ближайшего пенса
	require.Equal(t, Money(317), Money(950).MulFloat(1.0/3))
	require.Equal(t, Money(9267), Money(27800).Div(3))
}

func TestMoney_Pounds(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 278.0, Money(27800).Pounds(), 1e-9)
	require.InDelta(t, 9.5, Money(950).Pounds(), 1e-9)
}
