package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/gogskit/version"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetVersionInfo()
			if cmd.Flags().Changed("output") {
				if err := validateOutput(a.flags.output); err != nil {
					return err
				}
				return a.printResult(cmd.OutOrStdout(), info)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}
