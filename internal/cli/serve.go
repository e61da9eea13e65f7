package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitwrapped/internal/server"
)

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve wrapped snapshots, cards and trending over HTTP",
		Long: `Serve wrapped snapshots over HTTP.

Routes:
  GET /healthz
  GET /api/users/{username}
  GET /api/users/{username}/card.svg
  GET /api/users/{username}/share
  GET /api/trending?q=`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := c.newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			printInfo("Serving on %s", StyleLink.Render(displayAddr(addr)))
			printKeyValue("Cache", a.cfg.Cache.Backend)
			printNextStep("Try", "curl "+displayAddr(addr)+"/api/users/torvalds")

			return server.New(a.svc, a.github, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

// displayAddr turns a listen address into a URL a user can open.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
