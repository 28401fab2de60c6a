package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newImpactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impact <changed files...>",
		Short: "List the files the next run would analyze",
		Long: "List the files the next run would analyze after the given files changed.\n" +
			"Nothing is analyzed and no cache is written.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			impact, err := c.app.Impact(cmd.Context(), options(cmd), args)
			if err != nil {
				return err
			}

			for _, file := range impact.Files {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), file)
			}
			if impact.Full {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "full analysis required: all %d files\n", impact.Total)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files affected\n", len(impact.Files), impact.Total)
			return nil
		},
	}
}
