package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/items"
	"github.com/aretw0/jot/pkg/jotpath"
)

var rmdirYes bool

var mkdirCmd = &cobra.Command{
	Use:   "mkdir [path]",
	Short: "Create a folder relative to the active folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		clean := filepath.Clean(args[0])
		if target := v.ResolvePath(clean); items.ThroughMetadata(v.Location().String(), target) {
			return core.InvalidPath("folder", target)
		}
		parent, err := v.FolderAt(filepath.Dir(clean))
		if err != nil {
			return err
		}
		f, err := parent.AddFolder(filepath.Base(clean))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created folder %s\n", relToVault(v, f.Location().String()))
		return nil
	},
}

var rmdirCmd = &cobra.Command{
	Use:   "rmdir [path]",
	Short: "Delete a folder and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		f, err := folderBelowRoot(v, args[0])
		if err != nil {
			return err
		}
		rel := relToVault(v, f.Location().String())
		if err := confirm(rmdirYes, "permanently delete "+rel); err != nil {
			return err
		}

		gone := f.Location().String()
		if err := f.Delete(); err != nil {
			return err
		}
		if jotpath.IsWithin(gone, v.ActiveFolderPath().String()) {
			if err := v.Store().SetFolderPath(nil); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted folder %s\n", rel)
		return nil
	},
}

var mvdirCmd = &cobra.Command{
	Use:   "mvdir [source] [destination]",
	Short: "Move or rename a folder inside the vault",
	Long: `Move a folder. When the destination is an existing folder the source is moved
into it, otherwise the source is moved to the destination path.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		f, err := folderBelowRoot(v, args[0])
		if err != nil {
			return err
		}

		root := v.Location().String()
		dst := v.ResolvePath(args[1])
		if !jotpath.IsWithin(root, dst) {
			return fmt.Errorf("%w: %s", core.ErrOutOfBounds, args[1])
		}
		if target, err := jotpath.New(dst); err == nil && target.IsDir() {
			dst = jotpath.Join(dst, f.Name())
		}
		if items.ThroughMetadata(root, dst) {
			return core.InvalidPath("folder", dst)
		}

		from := f.Location().String()
		active := v.ActiveFolderPath().String()
		if err := f.Relocate(dst); err != nil {
			return err
		}
		if err := followActive(v, from, dst, active); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", relToVault(v, from), relToVault(v, dst))
		return nil
	},
}

// folderBelowRoot resolves path to a folder that is not the vault itself.
func folderBelowRoot(v *items.Vault, path string) (*items.Folder, error) {
	f, err := v.FolderAt(path)
	if err != nil {
		return nil, err
	}
	if f.Location().String() == v.Location().String() {
		return nil, fmt.Errorf("%w: %s is the vault root, use 'jot vault' instead", core.ErrInvalidPath, path)
	}
	return f, nil
}

// followActive keeps the active folder pointing at the same directory after
// it (or one of its ancestors) moved from "from" to "to".
func followActive(v *items.Vault, from, to, active string) error {
	rel, ok := jotpath.RelativeTo(from, active)
	if !ok {
		return nil
	}
	moved, ok := jotpath.RelativeTo(v.Location().String(), jotpath.Join(to, rel))
	if !ok || moved == "" {
		return v.Store().SetFolderPath(nil)
	}
	slashed := jotpath.ToSlash(moved)
	return v.Store().SetFolderPath(&slashed)
}

// relToVault renders path relative to the vault root, "/" for the root itself.
func relToVault(v *items.Vault, path string) string {
	rel, ok := jotpath.RelativeTo(v.Location().String(), path)
	if !ok {
		return path
	}
	return "/" + jotpath.ToSlash(rel)
}

func init() {
	rootCmd.AddCommand(mkdirCmd, rmdirCmd, mvdirCmd)
	rmdirCmd.Flags().BoolVar(&rmdirYes, "yes", false, "Confirm deletion")
}
