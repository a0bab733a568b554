package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyenyou/scala-js-ts-importer/batch"
	"github.com/nguyenyou/scala-js-ts-importer/config"
	"github.com/nguyenyou/scala-js-ts-importer/scalagen"
)

var (
	convertPackage string
	convertOutput  string
)

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert one declaration file to a Scala.js facade",
	Long: `Convert a single TypeScript ambient declaration file into Scala.js
facade source. With no file argument the declaration text is read from
stdin, in which case --package is required.

Examples:
  ts2scala convert three.d.ts                       # Package derived from filename
  ts2scala convert three.d.ts --package three       # Explicit package
  ts2scala convert three.d.ts --output three.scala  # Write to file
  ts2scala convert --package lib < lib.d.ts         # Convert stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	ConvertCmd.Flags().StringVarP(&convertPackage, "package", "p", "", "Package name for the emitted source (default: derived from filename)")
	ConvertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var source []byte
	packageName := convertPackage

	if len(args) == 1 {
		source, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if packageName == "" {
			base := filepath.Base(args[0])
			packageName = cfg.PackageFor(batch.PackageName(base, cfg.Batch.InputSuffix))
		}
	} else {
		if packageName == "" {
			return fmt.Errorf("--package is required when reading from stdin")
		}
		source, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	output, err := scalagen.Convert(source, packageName)
	if err != nil {
		return err
	}

	if convertOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}
	if dir := filepath.Dir(convertOutput); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(convertOutput, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", convertOutput, err)
	}
	fmt.Printf("✓ Wrote %s (package %s)\n", convertOutput, packageName)
	return nil
}
