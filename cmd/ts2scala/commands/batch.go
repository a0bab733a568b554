package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nguyenyou/scala-js-ts-importer/batch"
	"github.com/nguyenyou/scala-js-ts-importer/config"
)

var (
	batchInput  string
	batchOutput string
	batchWatch  bool
)

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every declaration file under a directory tree",
	Long: `Walk an input directory for declaration files and write the converted
Scala.js facade source to the mirrored paths under the output
directory. Files that fail to convert are reported and skipped; the
rest of the tree still converts.

With --watch the command keeps running and re-converts a file whenever
it is written or created.

Examples:
  ts2scala batch --input types/ --output src/main/scala/
  ts2scala batch -i types/ -o src/ --watch`,
	RunE: runBatch,
}

func init() {
	BatchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input directory to walk (required)")
	BatchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output directory for converted files (required)")
	BatchCmd.Flags().BoolVarP(&batchWatch, "watch", "w", false, "Keep running and re-convert files on change")
	BatchCmd.MarkFlagRequired("input")
	BatchCmd.MarkFlagRequired("output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	result, err := batch.Run(batchInput, batchOutput, cfg)
	if err != nil {
		return err
	}

	printSummary(result)

	if !batchWatch {
		if result.Failed > 0 {
			return fmt.Errorf("%d of %d files failed to convert", result.Failed, result.Failed+result.Converted)
		}
		return nil
	}

	watcher, err := batch.NewWatcher(batchInput, batchOutput, cfg)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	watcher.Start()

	pterm.Info.Printf("Watching %s for changes (Ctrl-C to stop)\n", batchInput)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func printSummary(result *batch.Result) {
	pterm.Printf("%s %s converted\n",
		pterm.LightGreen("✓"),
		pterm.Green(fmt.Sprintf("%d", result.Converted)))
	if result.Failed > 0 {
		pterm.Printf("%s %s failed\n",
			pterm.Red("✗"),
			pterm.Red(fmt.Sprintf("%d", result.Failed)))
		for _, failure := range result.Failures {
			pterm.Printf("  %s %s: %v\n",
				pterm.Gray("→"),
				pterm.Yellow(failure.Path),
				failure.Err)
		}
	}
}
