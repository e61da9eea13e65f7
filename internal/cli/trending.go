package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitwrapped/pkg/render"
	"github.com/matzehuels/gitwrapped/pkg/wrapped"
)

// trendingCommand lists popular repositories created in the last week.
func (c *CLI) trendingCommand() *cobra.Command {
	var (
		filter string
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "List the most starred repositories created this week",
		Example: `  gitwrapped trending
  gitwrapped trending --filter rust`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := c.newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			since := wrapped.TrendingSince(time.Now())
			var s *Spinner
			if !asJSON {
				s = newSpinnerWithContext(ctx, "Fetching trending repositories...")
				s.Start()
			}
			repos, err := a.github.FetchTrending(ctx, since, c.refresh)
			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}

			items := wrapped.FilterTrending(wrapped.TrendingFromGitHub(repos), filter)
			if limit > 0 && len(items) > limit {
				items = items[:limit]
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			fmt.Fprintln(out, StyleTitle.Render("Trending since "+since.Format("Jan 2")))
			if len(items) == 0 {
				printWarning("No repositories match %q", filter)
				return nil
			}
			fmt.Fprintln(out, trendingTable(items))
			if filter != "" {
				printDetail("%d of %d repositories match %q", len(items), len(repos), filter)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "keep repositories whose name, description or language contains this")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n repositories")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as JSON")
	return cmd
}

func trendingTable(items []wrapped.TrendingRepo) string {
	rows := make([][]string, 0, len(items))
	for i, r := range items {
		lang := r.Language
		if lang == "" {
			lang = "—"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.FullName,
			lang,
			render.FormatInt(r.Stars),
			truncate(r.Description, 48),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Repository", "Lang", "Stars", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorWhite)
			case col == 3:
				return StyleNumber
			case col == 2:
				return lipgloss.NewStyle().Foreground(lipgloss.Color(render.LanguageColor(items[row].Language)))
			default:
				return StyleDim
			}
		}).
		Render()
}

// truncate shortens s to n runes with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
