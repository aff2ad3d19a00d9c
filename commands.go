package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/chatwidget"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/handlers"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/scheduler"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/server"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the website",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()

			assets, err := staticAssets()
			if err != nil {
				return fmt.Errorf("access static files: %w", err)
			}

			app := fx.New(
				fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
					return &fxevent.SlogLogger{Logger: log}
				}),

				fx.Supply(server.Assets{FS: assets}),
				fx.Provide(func(s *scheduler.Scheduler) handlers.Jobs { return s }),

				logger.Module,
				config.Module,
				pageview.Module,
				chatwidget.Module,
				handlers.Module,
				server.Module,
				scheduler.Module,
			)
			if err := app.Err(); err != nil {
				return err
			}

			app.Run()
			return nil
		},
	}
}

func newWidgetConfigCommand() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "widget-config",
		Short: "Print the chat widget configuration as JSON",
		Long: `Prints the createChat payload the landing page boots the n8n chat widget
with, after applying environment configuration. Useful for embedding the same
widget on other sites.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			b, err := chatwidget.NewBootstrapper(cfg, log)
			if err != nil {
				return err
			}

			out := b.ConfigJSON()
			if pretty {
				var buf bytes.Buffer
				if err := json.Indent(&buf, out, "", "  "); err != nil {
					return err
				}
				out = buf.Bytes()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}
