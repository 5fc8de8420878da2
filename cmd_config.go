package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := defaultConfigPath()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				path = args[0]
			}

			force, _ := cmd.Flags().GetBool("force")
			if err := writeConfigFile(path, defaultConfig(), force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file in use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			path := viper.ConfigFileUsed()
			if path == "" {
				path = "(none)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
