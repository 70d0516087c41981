package cmd

import (
	"fmt"

	"p5-manager/core/config"
	"p5-manager/core/logger"
	"p5-manager/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort string

// serveCmd runs the local dev server over a sketch directory.
var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve a sketch directory on a local dev server",
	Long: `Serve a sketch directory (default: current directory) as static files.

Examples:
  p5-manager serve
  p5-manager serve my-sketch --port 8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if servePort != "" {
			cfg.Server.Port = servePort
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		app := server.New(cfg.Server, root, l)

		l.Info("Serving sketch",
			zap.String("dir", root),
			zap.String("addr", "http://localhost"+cfg.Server.Address()),
		)
		return app.Listen(cfg.Server.Address())
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (default from config: 5555)")

	RootCmd.AddCommand(serveCmd)
}
