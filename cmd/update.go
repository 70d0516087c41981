package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"p5-manager/core/config"
	"p5-manager/core/logger"
	"p5-manager/core/prompt"
	"p5-manager/core/reconcile"
	"p5-manager/core/registry"
	"p5-manager/core/storage"
	"p5-manager/feature/project"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	updateVersion string
	updateMode    string
	yesConfirm    bool
)

// promptChoices caps how many versions the interactive picker offers.
const promptChoices = 10

// updateCmd re-reconciles the sketch in the current directory.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the sketch's p5.js reference, library copy and typings",
	Long: `Update the sketch in the current directory to a new p5.js version or
delivery mode. Without --version, the published versions are fetched and
offered interactively.

Examples:
  # Pick a version interactively
  p5-manager update

  # Jump straight to a version, non-interactive
  p5-manager update --version 1.9.4 --yes

  # Switch the sketch to a local library copy
  p5-manager update --mode local --yes`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "p5.js version (default: choose interactively)")
	updateCmd.Flags().StringVar(&updateMode, "mode", "", "delivery mode: cdn or local (default: keep recorded mode)")
	updateCmd.Flags().BoolVar(&yesConfirm, "yes", false, "skip the confirmation prompt")

	RootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var mode reconcile.Mode
	if updateMode != "" {
		var err error
		if mode, err = parseMode(updateMode); err != nil {
			return err
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client := registry.NewClient(cfg.Registry)
	prompter := prompt.New(os.Stdin, os.Stdout)

	version := updateVersion
	if version == "" {
		versions, err := client.Versions(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch version list: %w", err)
		}

		choices := registry.Sorted(versions)
		if len(choices) > promptChoices {
			choices = choices[:promptChoices]
		}
		version, err = prompter.Select("Select a p5.js version:", choices)
		if errors.Is(err, prompt.ErrCanceled) {
			l.Info("Update aborted")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if !yesConfirm {
		ok, err := prompter.Confirm(fmt.Sprintf("Update this sketch to p5.js %s?", version))
		if err != nil {
			return err
		}
		if !ok {
			l.Info("Update aborted")
			return nil
		}
	}

	store := storage.NewStore(afero.NewOsFs(), ".")
	svc := project.NewService(store, client, l)

	outcome, err := svc.Update(ctx, project.UpdateOptions{Version: version, Mode: mode})
	if err != nil {
		return err
	}

	if outcome.Strategy == reconcile.StrategyNoAnchor {
		// Reported no-op: the document gave the engine nowhere to act.
		l.Warn("Nothing updated: index.html has no reference, marker or <head>")
		return nil
	}

	l.Info("Sketch updated",
		zap.String("strategy", string(outcome.Strategy)),
		zap.String("reference", outcome.Reference),
	)
	return nil
}
