package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/items"
)

var (
	deleteYes     bool
	statusJSON    bool
	statusDiagram bool
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Create, move and inspect vaults",
}

var vaultCreateCmd = &cobra.Command{
	Use:   "create [name|path]",
	Short: "Create a new empty vault",
	Long: `Create a new vault. A bare name is placed under vaults_dir from the config,
anything that looks like a path is used as given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(cfg.VaultPath(args[0]))
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return core.IOFailure("create vaults directory", filepath.Dir(path), err)
		}

		v, err := items.CreateVault(path, items.WithLogger(slog.Default()))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created vault %s at %s\n", v.Name(), v.Location())
		return nil
	},
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the vault and everything in it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		if err := confirm(deleteYes, "permanently delete "+v.Location().String()); err != nil {
			return err
		}
		if err := v.Delete(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted vault %s\n", v.Location())
		return nil
	},
}

var vaultRenameCmd = &cobra.Command{
	Use:   "rename [new-name]",
	Short: "Rename the vault directory in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		if err := v.Rename(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Vault is now at %s\n", v.Location())
		return nil
	},
}

var vaultMoveCmd = &cobra.Command{
	Use:   "move [new-path]",
	Short: "Move the vault to a new location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		dst, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if err := v.Relocate(dst); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Vault is now at %s\n", v.Location())
		return nil
	},
}

var vaultStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a summary of the vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		state, ok := v.State().(items.VaultState)
		if !ok {
			return fmt.Errorf("unexpected state type %T", v.State())
		}

		switch {
		case statusJSON:
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(state)
		case statusDiagram:
			config := introspection.DefaultDiagramConfig()
			config.SecondaryID = "vault"
			config.SecondaryLabel = "Vault Topology"
			fmt.Fprintln(out, introspection.TreeDiagram(buildDiagramTree(v.Folder), config))
			return nil
		}

		active := state.ActiveFolder
		if active == "" {
			active = "/"
		}
		fmt.Fprintf(out, "%s: %s\n", v.ComponentType(), state.Name)
		fmt.Fprintf(out, "  path:          %s\n", state.Path)
		fmt.Fprintf(out, "  data:          %s\n", state.DataPath)
		fmt.Fprintf(out, "  active folder: %s\n", active)
		fmt.Fprintf(out, "  folders:       %d\n", state.Folders)
		fmt.Fprintf(out, "  notes:         %d\n", state.Notes)
		fmt.Fprintf(out, "  aliases:       %d\n", state.Aliases)
		return nil
	},
}

type diagramNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []diagramNode
}

// buildDiagramTree mirrors the folder tree. Status must be one of the
// classes in introspection.DefaultStyles().
func buildDiagramTree(f *items.Folder) diagramNode {
	n := diagramNode{
		Name:   f.Name(),
		Status: "running",
		Metadata: map[string]string{
			"type":  "container",
			"notes": fmt.Sprintf("%d", len(f.Notes())),
		},
	}
	for _, child := range f.SortedFolders() {
		n.Children = append(n.Children, buildDiagramTree(child))
	}
	return n
}

func init() {
	rootCmd.AddCommand(vaultCmd)
	vaultCmd.AddCommand(vaultCreateCmd, vaultDeleteCmd, vaultRenameCmd, vaultMoveCmd, vaultStatusCmd)

	vaultDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Confirm deletion")
	vaultStatusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	vaultStatusCmd.Flags().BoolVar(&statusDiagram, "diagram", false, "Output the folder tree as a Mermaid diagram")
}
