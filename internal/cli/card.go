package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitwrapped/pkg/render/card"
)

// cardCommand writes the shareable summary card.
func (c *CLI) cardCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "card <username>",
		Short: "Render a shareable card as SVG, PNG or PDF",
		Long: `Render a shareable card summarizing a GitHub profile.

SVG is rendered directly. PNG and PDF are converted from the SVG with
rsvg-convert, which must be on PATH.`,
		Example: `  gitwrapped card torvalds
  gitwrapped card torvalds -o torvalds.png --format png
  gitwrapped card torvalds -o - > card.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := card.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := c.newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			toStdout := output == "-"
			vm, _, err := c.generate(ctx, a, args[0], !toStdout)
			if err != nil {
				return err
			}

			data, err := card.Render(vm, f)
			if err != nil {
				return fmt.Errorf("render card: %w", err)
			}

			if toStdout {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = fmt.Sprintf("%s-wrapped.%s", vm.Profile.Login, f)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Rendered card for %s", StyleHighlight.Render("@"+vm.Profile.Login))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default <login>-wrapped.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", string(card.FormatSVG), "output format: svg, png or pdf")
	return cmd
}
