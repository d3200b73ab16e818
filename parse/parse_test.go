package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofend/fend/ast"
)

func mustParse(t *testing.T, s string) ast.Expr {
	t.Helper()
	e, err := Parse(s)
	require.NoError(t, err)
	return e
}

func TestParseSimpleArithmetic(t *testing.T) {
	e := mustParse(t, "1 + 2 * 3")
	assert.Equal(t, "(1+(2*3))", e.String())
}

func TestParseFunctionApplicationBindsFirstNumber(t *testing.T) {
	e := mustParse(t, "sin 0")
	apply, ok := e.(ast.Apply)
	require.True(t, ok, "expected ast.Apply, got %T", e)
	assert.Equal(t, "sin", apply.Fn.(ast.Ident).Name)
	assert.Equal(t, "0", apply.Arg.String())
}

func TestParseImplicitAdditionSplitsSecondNumber(t *testing.T) {
	e := mustParse(t, "5 feet 3 inches")
	add, ok := e.(ast.ImplicitAdd)
	require.True(t, ok, "expected ast.ImplicitAdd, got %T", e)
	assert.Equal(t, "(5 (feet))", add.LHS.String())
	assert.Equal(t, "(3 (inches))", add.RHS.String())
}

func TestParseParenthesizedCall(t *testing.T) {
	e := mustParse(t, "sqrt(4) + 1")
	add, ok := e.(ast.Add)
	require.True(t, ok)
	call, ok := add.LHS.(ast.ApplyFunctionCall)
	require.True(t, ok)
	assert.Equal(t, "sqrt", call.Fn.(ast.Ident).Name)
}

func TestParseLambda(t *testing.T) {
	e := mustParse(t, "x: x + 1")
	fn, ok := e.(ast.Fn)
	require.True(t, ok)
	assert.Equal(t, "x", fn.Param)
}

func TestParseAsConversion(t *testing.T) {
	e := mustParse(t, "5 km as miles")
	asExpr, ok := e.(ast.As)
	require.True(t, ok)
	assert.Equal(t, "miles", asExpr.Target.(ast.Ident).Name)
}

func TestParseOfMemberAccess(t *testing.T) {
	e := mustParse(t, "axial_tilt of earth")
	of, ok := e.(ast.Of)
	require.True(t, ok)
	assert.Equal(t, "axial_tilt", of.Member)
	assert.Equal(t, "earth", of.Inner.(ast.Ident).Name)
}

func TestParsePowRightAssociative(t *testing.T) {
	e := mustParse(t, "2^3^2")
	assert.Equal(t, "(2^(3^2))", e.String())
}

func TestParseUnaryMinus(t *testing.T) {
	e := mustParse(t, "-5 + 3")
	add, ok := e.(ast.Add)
	require.True(t, ok)
	_, ok = add.LHS.(ast.UnaryMinus)
	assert.True(t, ok)
}

func TestParseFactorial(t *testing.T) {
	e := mustParse(t, "5!")
	_, ok := e.(ast.Factorial)
	assert.True(t, ok)
}

func TestParseUnmatchedParenErrors(t *testing.T) {
	_, err := Parse("(1 + 2")
	require.Error(t, err)
}

// Trees with no num.Number leaves can be diffed structurally with
// go-cmp instead of reconstructed field by field.
func TestParseLambdaTreeShape(t *testing.T) {
	e := mustParse(t, "x => x")
	want := ast.Fn{Param: "x", Body: ast.Ident{Name: "x"}}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("unexpected lambda tree (-want +got):\n%s", diff)
	}
}

func TestParseOfTreeShape(t *testing.T) {
	e := mustParse(t, "gravity of earth")
	want := ast.Of{Member: "gravity", Inner: ast.Ident{Name: "earth"}}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("unexpected 'of' tree (-want +got):\n%s", diff)
	}
}
