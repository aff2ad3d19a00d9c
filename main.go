package main

import (
	"embed"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

//go:embed static
var staticFS embed.FS

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "chatai-website",
		Short: "ChatAI landing page with the n8n chat widget",
		Long: `Serves the ChatAI marketing landing page. Each page load is mounted as a
server-side view that holds the testimonial carousel, billing period, mobile
menu and scroll reveal state, and boots the n8n chat widget once.`,
		SilenceUsage: true,
	}

	serve := newServeCommand()
	root.AddCommand(serve, newWidgetConfigCommand())

	// Running without a subcommand serves the site.
	root.RunE = serve.RunE
	return root
}

func staticAssets() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
