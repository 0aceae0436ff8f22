package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/items"
)

var (
	verbose  bool
	vaultRef string
	cfg      *platform.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Keep markdown notes organized in vaults and folders",
	Long: `Jot manages vaults: plain directories of folders and markdown notes,
with a small sidecar record (.jot/data) remembering the active folder and aliases.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		setLogger(cmd.ErrOrStderr(), level)

		loaded, err := platform.NewLoader(slog.Default()).Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if !verbose && cfg.Level() != level {
			setLogger(cmd.ErrOrStderr(), cfg.Level())
		}
		return nil
	},
}

func setLogger(w io.Writer, level slog.Level) {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultRef, "vault", "", "Vault name (under vaults_dir) or path; defaults to the vault above the working directory")
}

// openVault loads the vault selected by --vault, the working directory or the config.
func openVault() (*items.Vault, error) {
	return platform.OpenVault(vaultRef,
		platform.WithConfig(cfg),
		platform.WithLogger(slog.Default()),
	)
}

var errNeedsConfirmation = errors.New("refusing to continue without --yes")

func confirm(yes bool, what string) error {
	if !yes {
		return fmt.Errorf("%w: this will %s", errNeedsConfirmation, what)
	}
	return nil
}

// describe renders err with a hint matching its kind.
func describe(err error) string {
	switch core.KindOf(err) {
	case core.KindInvalidPath:
		return fmt.Sprintf("Error: %v\n  (names may not be empty, '.', '..' or %q, and must not point at a file)", err, items.MetadataDir)
	case core.KindAlreadyExists:
		return fmt.Sprintf("Error: %v\n  (choose another name or remove the existing path)", err)
	case core.KindPathNotFound:
		return fmt.Sprintf("Error: %v\n  (check the path with 'jot ls')", err)
	case core.KindOutOfBounds:
		return fmt.Sprintf("Error: %v\n  (paths are relative to the active folder and cannot leave the vault)", err)
	case core.KindIO:
		return fmt.Sprintf("Error: filesystem operation failed: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func exitCode(err error) int {
	switch core.KindOf(err) {
	case core.KindInvalidPath, core.KindOutOfBounds:
		return 2
	case core.KindPathNotFound, core.KindAlreadyExists:
		return 3
	case core.KindIO:
		return 4
	default:
		return 1
	}
}
