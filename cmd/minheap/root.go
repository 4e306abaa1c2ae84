package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wwqdrh/minheap/config"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfgFile string
	rootCmd := &cobra.Command{
		Use:          "minheap",
		Short:        "Fixed-capacity integer min-heap",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(v, cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	flags.String("log-dir", "", "directory for rotated log files")
	flags.String("log-level", "info", "log level: debug|info|warn|error")
	_ = v.BindPFlag(config.KeyLogDir, flags.Lookup("log-dir"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(newDemoCmd(), newSortCmd(), newServeCmd(v))
	return rootCmd
}
