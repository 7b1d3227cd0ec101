package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "unlocker",
		Short: "Unlocks due time capsules and notifies their recipients",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zlog.Init()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ./config/config.yml)")

	rootCmd.AddCommand(newServeCmd(), newRunOnceCmd(), newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
