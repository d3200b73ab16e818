package num

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofend/fend/interrupt"
)

func TestAddSub(t *testing.T) {
	a := FromInt(2)
	b := FromInt(3)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "5", sum.String())

	diff, err := sum.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, "3", diff.String())
}

func TestMulDiv(t *testing.T) {
	a := FromRat(big.NewRat(3, 2))
	b := FromInt(2)
	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, "3", prod.String())

	quot, err := FromInt(1).Div(FromInt(4))
	require.NoError(t, err)
	assert.Equal(t, "0.25", quot.String())
}

func TestDivByZero(t *testing.T) {
	_, err := FromInt(1).Div(FromInt(0))
	require.Error(t, err)
}

func TestPowInteger(t *testing.T) {
	r, err := FromInt(2).Pow(FromInt(10), nil)
	require.NoError(t, err)
	assert.Equal(t, "1024", r.String())
}

func TestPowNegative(t *testing.T) {
	r, err := FromInt(2).Pow(FromInt(-1), nil)
	require.NoError(t, err)
	assert.Equal(t, "0.5", r.String())
}

func TestFactorial(t *testing.T) {
	r, err := FromInt(5).Factorial(nil)
	require.NoError(t, err)
	assert.Equal(t, "120", r.String())

	_, err = FromInt(-1).Factorial(nil)
	require.Error(t, err)
}

func TestPowInterruptedDuringSquaringLoop(t *testing.T) {
	_, err := FromInt(2).Pow(FromInt(1_000_000), alwaysInterrupt{})
	require.Error(t, err)
	assert.ErrorIs(t, err, interrupt.ErrInterrupted)
}

func TestFactorialInterruptedDuringMultiplicationLoop(t *testing.T) {
	_, err := FromInt(1_000_000).Factorial(alwaysInterrupt{})
	require.Error(t, err)
	assert.ErrorIs(t, err, interrupt.ErrInterrupted)
}

type alwaysInterrupt struct{}

func (alwaysInterrupt) ShouldInterrupt() bool { return true }

func TestUnitConversionFeetToInches(t *testing.T) {
	foot := Number{Real: big.NewRat(1, 1), Unit: Unit{
		Components: map[string]*big.Rat{"length": big.NewRat(1, 1)},
		Scale:      big.NewRat(3048, 10000),
		Singular:   "foot", Plural: "feet",
	}, Base: 10}
	inch := Number{Real: big.NewRat(1, 1), Unit: Unit{
		Components: map[string]*big.Rat{"length": big.NewRat(1, 1)},
		Scale:      big.NewRat(254, 10000),
		Singular:   "inch", Plural: "inches",
	}, Base: 10}

	fiveFeet, err := FromInt(5).Mul(foot)
	require.NoError(t, err)
	converted, err := fiveFeet.ConvertTo(inch)
	require.NoError(t, err)
	assert.Equal(t, "60 inches", converted.String())
}

func TestIncompatibleUnitsError(t *testing.T) {
	a := NewBaseUnit("meow", "meows")
	b := NewBaseUnit("woof", "woofs")
	_, err := a.Add(b)
	require.Error(t, err)
}

func TestSameDimension(t *testing.T) {
	length := Unit{Components: map[string]*big.Rat{"length": big.NewRat(1, 1)}}
	mass := Unit{Components: map[string]*big.Rat{"mass": big.NewRat(1, 1)}}
	assert.True(t, SameDimension(length, length))
	assert.False(t, SameDimension(length, mass))
	assert.False(t, SameDimension(unitless(), length))
}

func TestIsUnitlessOne(t *testing.T) {
	assert.True(t, FromInt(1).IsUnitlessOne())
	assert.False(t, FromInt(2).IsUnitlessOne())
	assert.False(t, I().IsUnitlessOne())
}

func TestTemperatureConversionIsAffineNotScaled(t *testing.T) {
	celsius := Unit{
		Components: map[string]*big.Rat{"temperature": big.NewRat(1, 1)},
		Scale:      big.NewRat(1, 1),
		Singular:   "celsius", Plural: "celsius",
	}
	fahrenheit := Unit{
		Components: map[string]*big.Rat{"temperature": big.NewRat(1, 1)},
		Scale:      big.NewRat(1, 1),
		Singular:   "fahrenheit", Plural: "fahrenheit",
	}

	zeroC := Number{Real: big.NewRat(0, 1), Unit: celsius, Base: 10}
	inF, err := zeroC.ConvertTo(Number{Unit: fahrenheit})
	require.NoError(t, err)
	assert.Equal(t, "32 fahrenheit", inF.String())

	boiling := Number{Real: big.NewRat(100, 1), Unit: celsius, Base: 10}
	inF, err = boiling.ConvertTo(Number{Unit: fahrenheit})
	require.NoError(t, err)
	assert.Equal(t, "212 fahrenheit", inF.String())
}
