package main

import (
	"fmt"

	"github.com/spf13/cobra"

	conf "github.com/0xalexb/hjarta-conf"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hconf %s (compiled %s)\n", conf.Version, conf.CompiledAt)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
