package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/attune/internal/ui/output"
	"go.trai.ch/attune/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Run one refresh cycle and print the workspace contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, _ := cmd.Flags().GetBool("sources")
			asJSON, _ := cmd.Flags().GetBool("json")

			snap, err := c.app.Status(cmd.Context(), sources)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}

			styled := output.New(out)
			for _, project := range snap.Projects {
				dot := styled.String(style.Dot).Foreground(styled.Color(string(style.Iris)))
				_, _ = fmt.Fprintf(out, "%s %s\n    %s\n",
					dot, project.Name, project.FilePath)
				if sources {
					for _, source := range project.SourceFiles {
						_, _ = fmt.Fprintf(out, "      %s\n", source)
					}
				}
			}
			_, _ = fmt.Fprintf(out, "%d projects\n", len(snap.Projects))
			return nil
		},
	}

	cmd.Flags().BoolP("sources", "s", false, "Include source files in the listing")
	cmd.Flags().BoolP("json", "j", false, "Print the snapshot as JSON")
	return cmd
}
