package eval

import (
	"fmt"
	"strings"

	"github.com/gofend/fend/value"
)

// DebugString renders v the way "!debug" is meant to: one line per
// variant, named after the Value kind it holds, mirroring the
// original evaluator's derive(Debug) dump of its Value enum rather
// than Go's generic %#v struct layout.
func DebugString(v value.Value) string {
	switch t := v.(type) {
	case value.Num:
		return fmt.Sprintf("Num(Number { value: %q, approx: %t })", t.N.String(), t.N.Approx)
	case value.StringVal:
		return fmt.Sprintf("StringVal(%q)", t.S)
	case value.DateVal:
		return fmt.Sprintf("DateVal { year: %d, month: %d, day: %d }", t.Year, t.Month, t.Day)
	case value.Builtin:
		return fmt.Sprintf("Builtin(%s)", t.Tag.String())
	case value.Fn:
		return fmt.Sprintf("Fn { param: %q }", t.Param)
	case value.Composed:
		return fmt.Sprintf("Composed(%s)", DebugString(t.Inner))
	case value.Derivative:
		return fmt.Sprintf("Derivative(%s)", DebugString(t.Inner))
	case value.Object:
		members := make([]string, len(t.Order))
		for i, k := range t.Order {
			members[i] = k
		}
		return fmt.Sprintf("Object { members: [%s] }", strings.Join(members, ", "))
	default:
		return fmt.Sprintf("%T", v)
	}
}
