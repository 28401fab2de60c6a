package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	names := make([]string, 0, len(domain.AllKinds()))
	for _, kind := range domain.AllKinds() {
		names = append(names, kind.FileName())
	}

	return &cobra.Command{
		Use:       "inspect <cache>",
		Short:     "Print the content of one cache as YAML",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			v, ok, err := c.app.Inspect(options(cmd), kind)
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s is not available for the current configuration\n", kind)
				return nil
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to render cache"), "cache", kind.String())
			}
			return enc.Close()
		},
	}
}
