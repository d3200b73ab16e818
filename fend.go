// Package fend evaluates expressions in the fend calculator language:
// exact arbitrary-precision arithmetic, a dimensional unit system, and
// single-parameter lambdas that compose with plain arithmetic.
package fend

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gofend/fend/eval"
	"github.com/gofend/fend/format"
	"github.com/gofend/fend/interrupt"
	"github.com/gofend/fend/lex"
	"github.com/gofend/fend/parse"
)

const versionString = "0.1.14"

// Context carries state that should persist across many calls to
// Evaluate: the wall-clock time "today" resolves against, and the
// logger Evaluate writes its debug diagnostics to. Building one is cheap; keep a single Context for the
// lifetime of a session rather than constructing one per call.
type Context struct {
	currentTime *time.Time
	Log         *logrus.Logger
}

// NewContext returns a Context with no fixed current time (today
// resolves against the real wall clock) and a logrus logger at the
// Warn level, matching how a library embedder would want quiet
// default diagnostics.
func NewContext() *Context {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return &Context{Log: log}
}

// SetCurrentTime pins "today"/"tomorrow"/"yesterday" to msSince1970
// (Unix milliseconds, UTC) rather than the real wall clock. Intended
// for reproducible tests and sandboxes.
func (c *Context) SetCurrentTime(msSince1970 int64, tzOffsetSecs int64) {
	t := time.UnixMilli(msSince1970).In(time.FixedZone("", int(tzOffsetSecs)))
	c.currentTime = &t
}

func (c *Context) evalContext() *eval.Context {
	ec := &eval.Context{Version: versionString}
	if c != nil && c.currentTime != nil {
		t := *c.currentTime
		ec.Now = func() time.Time { return t }
	}
	return ec
}

// Span is one syntax-highlighted piece of a Result's output.
type Span = format.Span

// SpanKind classifies a Span; see format.SpanKind for the constants
// (format.Number, format.Ident, format.Whitespace, and so on).
type SpanKind = format.SpanKind

// Result is the outcome of a successful Evaluate call.
type Result struct {
	plain string
	spans []Span
}

// MainResult returns the plain-text rendering of the computation.
func (r Result) MainResult() string { return r.plain }

// MainResultSpans returns the syntax-highlighted rendering.
func (r Result) MainResultSpans() []Span { return r.spans }

// Evaluate runs input against ctx with no way to cancel it. For
// expressions that might run long (an unbounded factorial, a huge
// exponent), prefer EvaluateWithInterrupt with a timeout.
func Evaluate(input string, ctx *Context) (Result, error) {
	return EvaluateWithInterrupt(input, ctx, interrupt.Never{})
}

// EvaluateWithInterrupt runs input against ctx, polling ii for
// cancellation. A leading "!debug " prefix switches the result to a
// raw dump of the evaluated value instead of its normal rendering.
func EvaluateWithInterrupt(input string, ctx *Context, ii interrupt.Interrupt) (Result, error) {
	if input == "" {
		return Result{}, nil
	}
	debug := false
	if rest, ok := stripDebugPrefix(input); ok {
		debug = true
		input = rest
	}
	if ctx != nil && ctx.Log != nil {
		ctx.Log.WithField("input", input).Debug("evaluating")
	}

	toks, err := lex.Scan(input)
	if err != nil {
		return Result{}, err
	}
	toks = repairTokens(toks)
	expr, err := parse.ParseTokens(toks)
	if err != nil {
		return Result{}, err
	}
	v, err := eval.Evaluate(expr, nil, ctx.evalContext(), ii)
	if err != nil {
		if err == interrupt.ErrInterrupted {
			return Result{}, fmt.Errorf("interrupted")
		}
		return Result{}, err
	}
	if debug {
		text := eval.DebugString(v)
		return Result{plain: text, spans: []Span{{Text: text, Kind: format.Other}}}, nil
	}
	spans := format.Value(v)
	return Result{plain: format.PlainString(v), spans: spans}, nil
}

func stripDebugPrefix(input string) (string, bool) {
	const prefix = "!debug "
	if len(input) > len(prefix) && input[:len(prefix)] == prefix {
		return input[len(prefix):], true
	}
	return input, false
}

// Version returns the version fend reports via the "version"
// identifier and the CLI's --version flag.
func Version() string { return versionString }
