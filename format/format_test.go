package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gofend/fend/num"
	"github.com/gofend/fend/value"
)

func TestValueNumberNoUnit(t *testing.T) {
	spans := Value(value.Num{N: num.FromInt(5)})
	assert.Equal(t, []Span{{Text: "5", Kind: Number}}, spans)
}

func TestValueNumberWithUnit(t *testing.T) {
	n, _ := num.FromInt(5).Mul(num.NewBaseUnit("foot", "feet"))
	spans := Value(value.Num{N: n})
	assert.Equal(t, []Span{
		{Text: "5", Kind: Number},
		{Text: " ", Kind: Whitespace},
		{Text: "feet", Kind: Ident},
	}, spans)
}

func TestValueString(t *testing.T) {
	spans := Value(value.StringVal{S: "hi"})
	assert.Equal(t, []Span{{Text: `"hi"`, Kind: String}}, spans)
}

func TestPlainStringConcatenatesSpans(t *testing.T) {
	n, _ := num.FromInt(5).Mul(num.NewBaseUnit("foot", "feet"))
	assert.Equal(t, "5 feet", PlainString(value.Num{N: n}))
}

func TestSpanKindString(t *testing.T) {
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "whitespace", Whitespace.String())
}
