package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyenyou/scala-js-ts-importer/cmd/ts2scala/commands"
	"github.com/nguyenyou/scala-js-ts-importer/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ts2scala",
	Short: "ts2scala - TypeScript declaration to Scala.js facade converter",
	Long: `ts2scala converts TypeScript ambient declaration files (.d.ts) into
Scala.js facade source.

Available commands:
  convert - Convert a single declaration file (or stdin)
  batch   - Convert every declaration file under a directory tree
  version - Show version information

Examples:
  ts2scala convert three.d.ts --package three   # Convert one file
  ts2scala convert --package lib < lib.d.ts     # Convert stdin
  ts2scala batch --input types/ --output src/   # Convert a tree
  ts2scala batch -i types/ -o src/ --watch      # Re-convert on change`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format (machine consumption)")

	rootCmd.AddCommand(commands.ConvertCmd)
	rootCmd.AddCommand(commands.BatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
