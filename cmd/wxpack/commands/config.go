package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/wxpack/internal/app"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the assembled pipeline configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			write, _ := cmd.Flags().GetBool("write")
			if err := app.ValidateFormat(format); err != nil {
				return err
			}

			if write {
				res, err := c.app.Write(c.request(cmd), format)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.Fingerprint, res.Path)
				return nil
			}

			cfg, err := c.app.Assemble(c.request(cmd))
			if err != nil {
				return err
			}
			return app.Encode(cmd.OutOrStdout(), cfg, format)
		},
	}
	cmd.Flags().StringP("format", "f", app.FormatYAML, "Output format (yaml or json)")
	cmd.Flags().BoolP("write", "w", false, "Write the config under <root>/.wxpack instead of printing it")
	return cmd
}
