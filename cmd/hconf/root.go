package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/logging"
)

var rootCmd = &cobra.Command{
	Use:   "hconf",
	Short: "Hierarchical configuration inspector",
	Long: "hconf parses hierarchical configuration documents and answers " +
		"dotted-path queries against them.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		config := logging.LoggerConfig{
			Level:  viper.GetString("log_level"),
			Format: viper.GetString("log_format"),
		}
		slog.SetDefault(logging.NewLogger(config, os.Stderr))

		startProfiler(viper.GetString("pprof"), viper.GetString("pprof_dir"))
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		stopProfiler()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "Log output format (json or text)")
	rootCmd.PersistentFlags().Int64("max-size", 0, "Maximum input file size in bytes (0 disables the limit)")
	rootCmd.PersistentFlags().Int("max-depth", conf.DefaultMaxDepth, "Maximum section nesting depth")
	rootCmd.PersistentFlags().String("env", "", "Environment tag attached to parsed documents")
	rootCmd.PersistentFlags().String("pprof", "", "Profiling mode (cpu, mem, trace, ...)")
	rootCmd.PersistentFlags().String("pprof-dir", "", "Directory for profile output (default: temp dir)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("max_size", rootCmd.PersistentFlags().Lookup("max-size"))
	_ = viper.BindPFlag("max_depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	_ = viper.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
	_ = viper.BindPFlag("pprof", rootCmd.PersistentFlags().Lookup("pprof"))
	_ = viper.BindPFlag("pprof_dir", rootCmd.PersistentFlags().Lookup("pprof-dir"))
}

func initConfig() {
	viper.SetEnvPrefix("HCONF")
	viper.AutomaticEnv()
}
