package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/items"
)

var listGlob string

var listCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "Show the folder tree below the active folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		f, err := v.FolderAt(path)
		if err != nil {
			return err
		}

		if listGlob != "" {
			notes, err := f.Find(listGlob)
			if err != nil {
				return err
			}
			for _, n := range notes {
				fmt.Fprintln(out, relToVault(v, n.Location().String()))
			}
			return nil
		}

		fmt.Fprintln(out, relToVault(v, f.Location().String()))
		printTree(out, f, "")
		return nil
	},
}

func printTree(w io.Writer, f *items.Folder, prefix string) {
	folders := f.SortedFolders()
	notes := f.SortedNotes()
	total := len(folders) + len(notes)

	branch := func(i int) (string, string) {
		if i == total-1 {
			return "└── ", "    "
		}
		return "├── ", "│   "
	}

	for i, sub := range folders {
		connector, indent := branch(i)
		fmt.Fprintf(w, "%s%s%s/\n", prefix, connector, sub.Name())
		printTree(w, sub, prefix+indent)
	}
	for i, n := range notes {
		connector, _ := branch(len(folders) + i)
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, n.Location().FileName())
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listGlob, "glob", "", "List only notes matching a ** glob relative to the folder")
}
