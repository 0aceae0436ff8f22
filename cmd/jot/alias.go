package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage short names for notes",
}

var aliasSetCmd = &cobra.Command{
	Use:   "set [name] [note]",
	Short: "Point an alias at a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		if err := v.Store().SetAlias(args[0], args[1]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], args[1])
		return nil
	},
}

var aliasRmCmd = &cobra.Command{
	Use:   "rm [name]",
	Short: "Remove an alias",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		if _, ok := v.Store().Alias(args[0]); !ok {
			return fmt.Errorf("unknown alias %q", args[0])
		}
		return v.Store().RemoveAlias(args[0])
	},
}

var aliasLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List aliases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		for _, name := range v.Store().AliasNames() {
			note, _ := v.Store().Alias(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, note)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aliasCmd)
	aliasCmd.AddCommand(aliasSetCmd, aliasRmCmd, aliasLsCmd)
}
