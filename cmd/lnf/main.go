// Package main provides the lnf CLI: it serves a parent's look and feel to child processes,
// runs as a child, and inspects, queries and diffs snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lookandfeel/internal/logger"
	"lookandfeel/internal/output"
	"lookandfeel/internal/version"
)

var (
	logLevel   string
	logFile    string
	configFile string
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lnf",
	Short: "Share native look-and-feel metrics between processes",
	Long: `lnf extracts a complete snapshot of appearance metrics (colors, fonts, sizes and
behavior flags) in a parent process and hands it to child processes, which answer the same
queries from the snapshot without touching the platform.`,
	SilenceUsage: true,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		detailed, _ := cmd.Flags().GetBool("detailed")
		if detailed {
			output.Println(version.GetDetailedVersion())
			return
		}
		output.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if noColor {
		output.ConfigureGlobal(output.PlainText())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file [default: ./lnf.yaml or $XDG_CONFIG_HOME/lnf/lnf.yaml]")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}

	versionCmd.Flags().Bool("detailed", false, "Show build details")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(childCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(idsCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(viper.GetString("log-level"), viper.GetString("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
	if noColor {
		output.ConfigureGlobal(output.PlainText())
	}
}
