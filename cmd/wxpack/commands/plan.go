package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show how each source file is classified",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assets, err := c.app.Plan(cmd.Context(), c.request(cmd))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, a := range assets {
				class := "copy"
				if a.Matched {
					class = a.Class.String()
				}
				note := ""
				if len(a.Shadowed) > 0 {
					names := make([]string, len(a.Shadowed))
					for i, s := range a.Shadowed {
						names[i] = s.String()
					}
					note = "shadows " + strings.Join(names, ", ")
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", class, a.Path, note)
			}
			if err := tw.Flush(); err != nil {
				return zerr.Wrap(err, "failed to write plan")
			}
			return nil
		},
	}
}
