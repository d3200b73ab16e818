package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofend/fend"
)

func TestEvalAndPrint(t *testing.T) {
	ctx := fend.NewContext()
	var buf bytes.Buffer
	err := evalAndPrint(ctx, "1 + 2 * 3", &buf)
	require.NoError(t, err)
	assert.Equal(t, "7\n", buf.String())
}

func TestEvalAndPrintReportsErrorsWithoutFailing(t *testing.T) {
	ctx := fend.NewContext()
	var buf bytes.Buffer
	err := evalAndPrint(ctx, "1 / 0", &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "error:")
}

func TestRepl(t *testing.T) {
	ctx := fend.NewContext()
	in := strings.NewReader("1 + 1\nquit\n")
	var out bytes.Buffer
	err := repl(ctx, in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2")
}
