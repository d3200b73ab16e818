package fend

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofend/fend/interrupt"
)

func TestEvaluateArithmetic(t *testing.T) {
	ctx := NewContext()
	result, err := Evaluate("1 + 2 * 3", ctx)
	require.NoError(t, err)
	assert.Equal(t, "7", result.MainResult())
}

func TestEvaluateEmptyInput(t *testing.T) {
	ctx := NewContext()
	result, err := Evaluate("", ctx)
	require.NoError(t, err)
	assert.Equal(t, "", result.MainResult())
}

func TestEvaluateUnitConversion(t *testing.T) {
	ctx := NewContext()
	result, err := Evaluate("5 feet as inch", ctx)
	require.NoError(t, err)
	assert.Equal(t, "60 inches", result.MainResult())
}

func TestEvaluateDebugPrefix(t *testing.T) {
	ctx := NewContext()
	result, err := Evaluate("!debug 1 + 2", ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.MainResult(), "Num("), "expected dump to start with Num(, got %q", result.MainResult())
}

func TestEvaluateRepairsUnmatchedClosingParen(t *testing.T) {
	ctx := NewContext()
	result, err := Evaluate("1 + 2)", ctx)
	require.NoError(t, err)
	assert.Equal(t, "3", result.MainResult())
}

func TestEvaluateRepairsSlashNumberIdent(t *testing.T) {
	ctx := NewContext()
	result, err := Evaluate("/3 kg", ctx)
	require.NoError(t, err)
	assert.Contains(t, result.MainResult(), "kilogram")
}

func TestEvaluateWithInterruptTimeout(t *testing.T) {
	ctx := NewContext()
	_, err := EvaluateWithInterrupt("1 + 1", ctx, interrupt.NewTimeout(0))
	require.Error(t, err)
}

// A bare "1 + 1" under a zero timeout is only ever caught by the single
// check at the top of Evaluate, so it never actually exercises a
// cancellation point inside a long-running number-kernel loop. "10 ^
// 1000000" does: squaring a rational up to a million-bit exponent runs
// long enough that, without a check inside powInt's loop, a short
// timeout would never have a chance to fire before the computation
// finished on its own.
func TestEvaluateWithInterruptDuringLargePower(t *testing.T) {
	ctx := NewContext()
	_, err := EvaluateWithInterrupt("10 ^ 1000000", ctx, interrupt.NewTimeout(10*time.Millisecond))
	require.Error(t, err)
}

func TestSetCurrentTimeAffectsToday(t *testing.T) {
	ctx := NewContext()
	fixed := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	ctx.SetCurrentTime(fixed.UnixMilli(), 0)
	result, err := Evaluate("today", ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-07-30", result.MainResult())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
}
