package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofend/fend/interrupt"
	"github.com/gofend/fend/parse"
	"github.com/gofend/fend/value"
)

func run(t *testing.T, src string) value.Value {
	t.Helper()
	expr, err := parse.Parse(src)
	require.NoError(t, err)
	v, err := Evaluate(expr, nil, &Context{}, interrupt.Never{})
	require.NoError(t, err)
	return v
}

func runNum(t *testing.T, src string) string {
	t.Helper()
	v := run(t, src)
	n, ok := v.(value.Num)
	require.True(t, ok, "expected value.Num, got %T", v)
	return n.N.String()
}

func TestEvaluateArithmetic(t *testing.T) {
	assert.Equal(t, "7", runNum(t, "1 + 2 * 3"))
	assert.Equal(t, "9", runNum(t, "(1 + 2) * 3"))
	assert.Equal(t, "0.5", runNum(t, "1/2"))
}

func TestEvaluateBuiltinCall(t *testing.T) {
	assert.Equal(t, "0", runNum(t, "sin 0"))
}

func TestEvaluateUnitConversion(t *testing.T) {
	assert.Equal(t, "60 inches", runNum(t, "5 feet as inch"))
}

func TestEvaluateImplicitAdditionOfCompatibleUnits(t *testing.T) {
	result := runNum(t, "5 feet 3 inches as inch")
	assert.Equal(t, "63 inches", result)
}

func TestEvaluateComposedFunctions(t *testing.T) {
	assert.Equal(t, "1", runNum(t, "(sin + 1)(0)"))
}

func TestEvaluateBuiltinInversion(t *testing.T) {
	assert.Equal(t, "0", runNum(t, "sin^-1 0"))
}

func TestEvaluateLambda(t *testing.T) {
	assert.Equal(t, "6", runNum(t, "(x: x * 2)(3)"))
}

func TestEvaluateObjectMember(t *testing.T) {
	v := run(t, "gravity of earth")
	n, ok := v.(value.Num)
	require.True(t, ok)
	assert.Contains(t, n.N.String(), "9.80665")
}

func TestEvaluateStringConversion(t *testing.T) {
	v := run(t, `"hello" as string`)
	s, ok := v.(value.StringVal)
	require.True(t, ok)
	assert.Equal(t, "hello", s.S)
}

func TestEvaluateIncompatibleUnitAdditionErrors(t *testing.T) {
	expr, err := parse.Parse("5 feet + 3 kg")
	require.NoError(t, err)
	_, err = Evaluate(expr, nil, &Context{}, interrupt.Never{})
	require.Error(t, err)
}

type alwaysInterrupt struct{}

func (alwaysInterrupt) ShouldInterrupt() bool { return true }

func TestEvaluateRespectsInterrupt(t *testing.T) {
	expr, err := parse.Parse("1 + 1")
	require.NoError(t, err)
	_, err = Evaluate(expr, nil, &Context{}, alwaysInterrupt{})
	require.ErrorIs(t, err, interrupt.ErrInterrupted)
}
