package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/karrick/postfix"
)

func newEvalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions and print their results",
		Long: `Evaluate each argument as a postfix expression and print its result on its own line.
With no arguments, expressions are read one per line from standard input; blank lines are skipped.
Evaluation stops at the first error.`,
		Example: `  postfix eval "1 1 +" "2 -3 *"
  echo "10 1 2 + 2 + 5 + +" | postfix eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				for _, arg := range args {
					if err := evalOne(cmd.OutOrStdout(), opts.log, arg); err != nil {
						return err
					}
				}
				return nil
			}
			return evalLines(cmd.InOrStdin(), cmd.OutOrStdout(), opts.log)
		},
	}
}

func evalLines(r io.Reader, w io.Writer, log *zap.Logger) error {
	scanner := bufio.NewScanner(r)
	var line int
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := evalOne(w, log, text); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return errors.Wrap(scanner.Err(), "cannot read expressions")
}

func evalOne(w io.Writer, log *zap.Logger, expression string) error {
	value, err := postfix.Evaluate(expression)
	if err != nil {
		log.Error("evaluation failed", zap.String("expression", expression), zap.Error(err))
		return errors.Wrapf(err, "cannot evaluate %q", expression)
	}
	log.Debug("evaluated", zap.String("expression", expression), zap.Float64("result", value))
	_, err = fmt.Fprintln(w, strconv.FormatFloat(value, 'g', -1, 64))
	return err
}
