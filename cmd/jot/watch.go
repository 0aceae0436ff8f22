package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/spf13/cobra"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/items"
	"github.com/aretw0/jot/pkg/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow external changes to the vault until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := platform.ResolveVault(vaultRef, platform.WithConfig(cfg), platform.WithLogger(slog.Default()))
		if err != nil {
			return err
		}
		v, err := items.LoadVault(root, items.WithLogger(slog.Default()))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		folders, notes := v.Count()
		fmt.Fprintf(out, "Watching %s (%d folders, %d notes), press Ctrl+C to stop\n", root, folders, notes)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events := make(chan watch.Event)
		spec := supervisor.Spec{
			Name: "vault-watcher",
			Type: string(worker.TypeGoroutine),
			Factory: func() (worker.Worker, error) {
				return watch.New(root, events,
					watch.WithLogger(slog.Default()),
					watch.WithDebounce(watchDebounce),
				), nil
			},
			Backoff: supervisor.Backoff{
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     5 * time.Second,
				Multiplier:      2,
				ResetDuration:   30 * time.Second,
				MaxRestarts:     5,
				MaxDuration:     time.Minute,
			},
			RestartPolicy: supervisor.RestartOnFailure,
		}

		sup := supervisor.New("jot-watch", supervisor.StrategyOneForOne, spec)
		if err := sup.Start(ctx); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := sup.Stop(stopCtx); err != nil {
				slog.Warn("watcher did not stop cleanly", "error", err)
			}
		}()

		source := watch.NewSource(events)
		if err := source.Start(ctx); err != nil {
			return err
		}

		for {
			select {
			case <-ctx.Done():
				fmt.Fprintln(out, "Stopped")
				return nil
			case e, ok := <-source.Events():
				if !ok {
					return nil
				}
				change, ok := e.(watch.Change)
				if !ok {
					continue
				}
				fmt.Fprintf(out, "[%s] #%d %s: %d folders, %d notes\n",
					change.Time.Format(time.TimeOnly), change.Seq,
					relToVault(change.Vault, change.Path), change.Folders, change.Notes)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before reloading")
}
