// Command fend evaluates fend-language expressions, either once via
// -e or interactively from a REPL reading stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gofend/fend"
)

var (
	execExpr string
	debug    bool
	prompt   string
)

func main() {
	root := &cobra.Command{
		Use:     "fend [expression]",
		Short:   "fend evaluates arithmetic, unit conversions, and lambda expressions",
		Version: fend.Version(),
		RunE:    run,
	}
	root.Flags().StringVarP(&execExpr, "expression", "e", "", "evaluate a single expression and exit")
	root.Flags().BoolVar(&debug, "debug", false, "log evaluation steps to stderr")
	root.Flags().StringVar(&prompt, "prompt", "> ", "interactive prompt string")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := fend.NewContext()
	if debug {
		ctx.Log.SetLevel(logrus.DebugLevel)
	}

	if execExpr != "" {
		return evalAndPrint(ctx, execExpr, cmd.OutOrStdout())
	}
	if len(args) > 0 {
		return evalAndPrint(ctx, strings.Join(args, " "), cmd.OutOrStdout())
	}
	return repl(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

func evalAndPrint(ctx *fend.Context, input string, out io.Writer) error {
	start := time.Now()
	result, err := fend.Evaluate(input, ctx)
	ctx.Log.WithField("elapsed", time.Since(start)).Debug("evaluated")
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return nil
	}
	fmt.Fprintln(out, result.MainResult())
	return nil
}

func repl(ctx *fend.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := evalAndPrint(ctx, line, out); err != nil {
			return err
		}
	}
}
