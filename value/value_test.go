package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofend/fend/num"
)

func TestIsCallable(t *testing.T) {
	assert.True(t, IsCallable(Builtin{Tag: Sin}))
	assert.True(t, IsCallable(Fn{}))
	assert.True(t, IsCallable(Derivative{}))
	assert.False(t, IsCallable(Num{}))
	assert.False(t, IsCallable(StringVal{}))
}

func TestExpectNum(t *testing.T) {
	n, err := ExpectNum(Num{N: num.FromInt(5)})
	require.NoError(t, err)
	assert.Equal(t, "5", n.String())

	_, err = ExpectNum(StringVal{S: "x"})
	require.Error(t, err)
}

func TestComposeUnary(t *testing.T) {
	double := func(n num.Number) (num.Number, error) { return n.Mul(num.FromInt(2)) }
	composed := ComposeUnary(Builtin{Tag: Sin}, double)
	c, ok := composed.(Composed)
	require.True(t, ok)
	out, err := c.Transform(num.FromInt(3))
	require.NoError(t, err)
	assert.Equal(t, "6", out.String())
}

func TestComposeUnaryChainsExistingComposed(t *testing.T) {
	addOne := func(n num.Number) (num.Number, error) { return n.Add(num.FromInt(1)) }
	double := func(n num.Number) (num.Number, error) { return n.Mul(num.FromInt(2)) }
	first := ComposeUnary(Builtin{Tag: Sin}, addOne).(Composed)
	second := ComposeUnary(first, double).(Composed)
	out, err := second.Transform(num.FromInt(3))
	require.NoError(t, err)
	assert.Equal(t, "8", out.String())
}

func TestGetObjectMember(t *testing.T) {
	obj := Object{Order: []string{"a"}, Members: map[string]Value{"a": Num{N: num.FromInt(1)}}}
	v, err := GetObjectMember(obj, "a")
	require.NoError(t, err)
	assert.Equal(t, Num{N: num.FromInt(1)}, v)

	_, err = GetObjectMember(obj, "missing")
	require.Error(t, err)

	_, err = GetObjectMember(Num{}, "a")
	require.Error(t, err)
}
