package eval

import (
	"github.com/gofend/fend/format"
	"github.com/gofend/fend/value"
)

// FormatPlain renders v the way "x as string" does: no unit spans, no
// interactive formatting, just the text a user would read.
func FormatPlain(v value.Value) string {
	return format.PlainString(v)
}
