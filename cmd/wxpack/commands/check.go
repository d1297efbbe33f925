package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every copy directive names an existing source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			missing, err := c.app.Check(cmd.Context(), c.request(cmd))
			for _, m := range missing {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "missing copy source: %s\n", m.From)
			}
			return err
		},
	}
}
