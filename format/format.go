// Package format renders a fully evaluated value.Value as a sequence
// of kind-tagged spans, the way a terminal or editor would syntax
// highlight fend's output (numbers, units, strings, dates...).
package format

import (
	"fmt"
	"strings"

	"github.com/gofend/fend/value"
)

// SpanKind classifies one piece of formatted output.
type SpanKind int

const (
	Number SpanKind = iota
	BuiltInFunction
	Keyword
	String
	Date
	Whitespace
	Ident
	Other
)

func (k SpanKind) String() string {
	switch k {
	case Number:
		return "number"
	case BuiltInFunction:
		return "builtin-function"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Date:
		return "date"
	case Whitespace:
		return "whitespace"
	case Ident:
		return "ident"
	default:
		return "other"
	}
}

// Span is one contiguous, uniformly-kinded piece of rendered output.
type Span struct {
	Text string
	Kind SpanKind
}

// Value renders v as a list of spans. Concatenating every Span.Text
// reproduces the same text PlainString(v) would return.
func Value(v value.Value) []Span {
	switch t := v.(type) {
	case value.Num:
		return numberSpans(t.N.String())
	case value.StringVal:
		return []Span{{Text: fmt.Sprintf("%q", t.S), Kind: String}}
	case value.DateVal:
		return []Span{{Text: fmt.Sprintf("%04d-%02d-%02d", t.Year, t.Month, t.Day), Kind: Date}}
	case value.Builtin:
		return []Span{{Text: t.Tag.String(), Kind: BuiltInFunction}}
	case value.Object:
		var spans []Span
		for i, name := range t.Order {
			if i > 0 {
				spans = append(spans, Span{Text: ", ", Kind: Other})
			}
			spans = append(spans, Span{Text: name, Kind: Ident}, Span{Text: ": ", Kind: Other})
			spans = append(spans, Value(t.Members[name])...)
		}
		return spans
	default:
		return []Span{{Text: fmt.Sprintf("%v", v), Kind: Other}}
	}
}

// PlainString concatenates Value's spans, matching "x as string".
func PlainString(v value.Value) string {
	var b strings.Builder
	for _, s := range Value(v) {
		b.WriteString(s.Text)
	}
	return b.String()
}

// numberSpans splits a rendered number such as "5.25 feet" into a
// Number span, a Whitespace span, and a trailing Ident span for the
// unit name, when a unit suffix is present.
func numberSpans(s string) []Span {
	idx := strings.IndexByte(s, ' ')
	if idx < 0 {
		return []Span{{Text: s, Kind: Number}}
	}
	return []Span{
		{Text: s[:idx], Kind: Number},
		{Text: " ", Kind: Whitespace},
		{Text: s[idx+1:], Kind: Ident},
	}
}
