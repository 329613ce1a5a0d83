package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karrick/postfix/internal/selftest"
)

func newSelftestCmd(opts *rootOptions) *cobra.Command {
	var casesFile string

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in or a YAML suite of expression checks",
		Example: `  postfix selftest
  postfix selftest --cases suite.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := selftest.Default()
			if casesFile != "" {
				var err error
				if suite, err = selftest.LoadFile(casesFile); err != nil {
					return err
				}
			}
			if err := suite.Run(opts.log); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}

	cmd.Flags().StringVar(&casesFile, "cases", "", "YAML file of expression cases (tolerance, cases[].expression, cases[].expected)")

	return cmd
}
