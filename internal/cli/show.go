package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitwrapped/pkg/render"
)

// showCommand prints every panel of a snapshot, or its JSON.
func (c *CLI) showCommand() *cobra.Command {
	var (
		asJSON bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "show <username>",
		Short: "Print a wrapped summary without the interactive deck",
		Example: `  gitwrapped show torvalds
  gitwrapped show https://github.com/sindresorhus --json | jq .stats`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := c.newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			vm, cached, err := c.generate(ctx, a, args[0], !asJSON)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(vm)
			}

			fmt.Fprintln(out, render.Default().WithWidth(width).RenderAll(vm))
			fmt.Fprintln(out)
			printLookupStats(vm, cached)
			printNextStep("Share it", "gitwrapped card "+vm.Profile.Login)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON")
	cmd.Flags().IntVarP(&width, "width", "w", render.DefaultWidth, "panel width in columns")
	return cmd
}
