package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project <file>",
		Short: "Resolve the project owning a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := c.app.ProjectByPath(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n",
				summary.Name, summary.FilePath)
			return nil
		},
	}
}
