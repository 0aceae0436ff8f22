package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cdCmd = &cobra.Command{
	Use:   "cd [path]",
	Short: "Change the active folder",
	Long: `Change the active folder of the vault. The path is relative to the current
active folder; without a path the vault root becomes active again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			err = v.Store().SetFolderPath(nil)
		} else {
			err = v.ChangeFolder(args[0])
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), relToVault(v, v.ActiveFolderPath().String()))
		return nil
	},
}

var pwdCmd = &cobra.Command{
	Use:   "pwd",
	Short: "Print the active folder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), relToVault(v, v.ActiveFolderPath().String()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cdCmd, pwdCmd)
}
